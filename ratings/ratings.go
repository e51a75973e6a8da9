package ratings

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"staymate/rdx"
	"staymate/store"
	"staymate/utils"

	"github.com/julienschmidt/httprouter"
)

// All star ratings live in one JSON object under this key, listing id -> 1..5.
const ratingsKey = "staymate_ratings"

type Handler struct {
	Store store.ListingStore
}

func NewHandler(s store.ListingStore) *Handler {
	return &Handler{Store: s}
}

// load reads the rating map. Absent or unparsable state is an empty map —
// never an error (malformed persisted state recovers silently).
func load() map[string]int {
	raw, _ := rdx.RdxGet(ratingsKey)
	if raw == "" {
		return map[string]int{}
	}
	var m map[string]int
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		log.Println("[ratings] unparsable rating map, treating as empty:", err)
		return map[string]int{}
	}
	return m
}

func save(m map[string]int) {
	data, err := json.Marshal(m)
	if err != nil {
		log.Println("[ratings] marshal:", err)
		return
	}
	rdx.RdxSet(ratingsKey, string(data))
}

// GetRatings returns the full rating map.
func (h *Handler) GetRatings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "ratings": load()})
}

type ratePayload struct {
	Rating int `json:"rating"`
}

// RateListing upserts a star rating for one listing. Read-modify-write of
// the single persisted key; the environment is single-user so there is no
// concurrent-writer contention model.
func (h *Handler) RateListing(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id := ps.ByName("listingid")
	if _, found, _ := h.Store.Get(ctx, id); !found {
		utils.RespondWithError(w, http.StatusNotFound, "Listing not found")
		return
	}

	var payload ratePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Rating < 1 || payload.Rating > 5 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid rating data")
		return
	}

	m := load()
	m[id] = payload.Rating
	save(m)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "listingid": id, "rating": payload.Rating})
}
