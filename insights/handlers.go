package insights

import (
	"context"
	"net/http"
	"time"

	"staymate/store"
	"staymate/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Service *Service
	Store   store.ListingStore
}

func NewHandler(service *Service, s store.ListingStore) *Handler {
	return &Handler{Service: service, Store: s}
}

// GetInsights serves the AI neighborhood insight for one listing. A failed
// lookup degrades to the neutral fallback with HTTP 200 — the detail view
// must never block or error because of the external call.
func (h *Handler) GetInsights(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	id := ps.ByName("listingid")
	listing, found, err := h.Store.Get(ctx, id)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch listing")
		return
	}
	if !found {
		utils.RespondWithError(w, http.StatusNotFound, "Listing not found")
		return
	}

	insight, err := h.Service.Lookup(ctx, id, listing.Name, listing.Location.Address)
	if err != nil {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"ok":       false,
			"insight":  Fallback(),
			"degraded": true,
		})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "insight": insight})
}
