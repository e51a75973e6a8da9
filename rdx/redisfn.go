package rdx

import (
	"log"
	"time"

	"staymate/globals"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

// Init connects the shared Redis client. A dead Redis is tolerated: every
// helper below degrades to a miss, the service keeps serving.
func Init(addr, password string) {
	Conn = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	if err := Conn.Ping(globals.Ctx).Err(); err != nil {
		log.Printf("[rdx] redis ping failed (%v) — caching and rating persistence degraded", err)
	}
}

func RdxGet(key string) (string, error) {
	if Conn == nil {
		return "", nil
	}
	val, err := Conn.Get(globals.Ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		log.Println("[rdx] GET error:", err)
		return "", err
	}
	return val, nil
}

func RdxSet(key, value string) error {
	return RdxSetTTL(key, value, 0)
}

func RdxSetTTL(key, value string, ttl time.Duration) error {
	if Conn == nil {
		return nil
	}
	if err := Conn.Set(globals.Ctx, key, value, ttl).Err(); err != nil {
		log.Println("[rdx] SET error:", err)
		return err
	}
	return nil
}

func RdxDel(key string) error {
	if Conn == nil {
		return nil
	}
	if err := Conn.Del(globals.Ctx, key).Err(); err != nil {
		log.Println("[rdx] DEL error:", err)
		return err
	}
	return nil
}
