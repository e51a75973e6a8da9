package search

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"staymate/listings"
	"staymate/models"
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

type smartPayload struct {
	Query string `json:"query"`
}

// SmartSearch extracts filters from a free-text query and runs the pipeline
// with them merged over the caller's current criteria (sent as query
// params). When extraction fails, the existing criteria are applied
// untouched and the response says so.
func (h *Handler) SmartSearch(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	var payload smartPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Query == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing query")
		return
	}

	all, err := h.Store.List(ctx)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch listings")
		return
	}

	criteria := listings.ParseCriteria(r)
	criteria.Query = payload.Query

	extracted, extractErr := h.Service.Extract(ctx, payload.Query)
	if extractErr == nil {
		criteria = Merge(criteria, extracted)
	}

	result := listings.Apply(all, criteria)

	resp := utils.M{
		"ok":       extractErr == nil,
		"count":    len(result),
		"listings": result,
	}
	if extractErr == nil {
		resp["criteria"] = extracted
	} else {
		resp["message"] = "Smart search unavailable, filters left unchanged"
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Merge applies extracted requirements onto a criteria snapshot. Only the
// fields the query actually mentioned change; the area, when present,
// replaces the free-text match so "PG in Indiranagar" narrows by address.
func Merge(c listings.Criteria, extracted models.SmartCriteria) listings.Criteria {
	if t := models.ParsePropertyType(extracted.Type); t != "" {
		c.Type = t
	}
	if extracted.MaxBudget > 0 {
		c.MaxRent = int(extracted.MaxBudget)
		if c.MaxRent < c.MinRent {
			c.MinRent = 0
		}
	}
	if extracted.Area != "" {
		c.Query = extracted.Area
	}
	return c
}
