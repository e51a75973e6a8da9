package live

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"staymate/models"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

// Hub fans newly registered listings out to every connected grid/map view,
// so open views refresh without polling.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}
	mu         sync.Mutex
}

type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

// event is what subscribers receive.
type event struct {
	Action    string         `json:"action"` // only "listing_created" for now
	Listing   models.Listing `json:"listing"`
	Timestamp int64          `json:"timestamp"`
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if h.clients[c] {
				delete(h.clients, c)
				close(c.Send)
			}
			h.mu.Unlock()

		case data := <-h.broadcast:
			h.mu.Lock()
			for c := range h.clients {
				select {
				case c.Send <- data:
				default:
					close(c.Send)
					delete(h.clients, c)
				}
			}
			h.mu.Unlock()

		case <-h.done:
			h.mu.Lock()
			for c := range h.clients {
				close(c.Send)
				delete(h.clients, c)
			}
			h.mu.Unlock()
			return
		}
	}
}

func (h *Hub) Stop() {
	close(h.done)
}

// add subscribes a client. Returns false when the hub has already stopped,
// so connection handlers do not block forever during shutdown.
func (h *Hub) add(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) remove(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// BroadcastListing publishes a freshly registered listing to all
// subscribers. Never blocks the caller.
func (h *Hub) BroadcastListing(l models.Listing) {
	data, err := json.Marshal(event{
		Action:    "listing_created",
		Listing:   l,
		Timestamp: time.Now().Unix(),
	})
	if err != nil {
		log.Println("hub marshal:", err)
		return
	}
	select {
	case h.broadcast <- data:
	case <-h.done:
	}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

func WebSocketHandler(hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade:", err)
			return
		}
		client := &Client{
			Conn: conn,
			Send: make(chan []byte, 256),
		}
		if !hub.add(client) {
			conn.Close()
			return
		}

		go client.writePump()
		go client.readPump(hub)
	}
}

func (c *Client) writePump() {
	defer c.Conn.Close()
	for data := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
	c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// readPump exists only to notice disconnects; the feed is one-way.
func (c *Client) readPump(hub *Hub) {
	defer func() {
		hub.remove(c)
		c.Conn.Close()
	}()
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
