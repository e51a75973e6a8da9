package listings

import (
	"context"
	"encoding/json"
	"log"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"staymate/live"
	"staymate/models"
	"staymate/rdx"
	"staymate/store"
	"staymate/utils"

	"github.com/julienschmidt/httprouter"
)

const listingsCacheKey = "listings"

type Handler struct {
	Store store.ListingStore
	Hub   *live.Hub
}

func NewHandler(s store.ListingStore, hub *live.Hub) *Handler {
	return &Handler{Store: s, Hub: hub}
}

// GetListings runs the filter/sort pipeline over the working set.
// The unfiltered default view is cached; any query parameter bypasses the
// cache because criteria snapshots are cheap to evaluate anyway.
func (h *Handler) GetListings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if r.URL.RawQuery == "" {
		if cached, _ := rdx.RdxGet(listingsCacheKey); cached != "" {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(cached))
			return
		}
	}

	all, err := h.Store.List(ctx)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch listings")
		return
	}

	criteria := ParseCriteria(r)
	result := Apply(all, criteria)

	payload := utils.M{"ok": true, "count": len(result), "listings": result}

	// Deep link: ?propertyId=<id> auto-selects that listing when present in
	// the working set; an unknown id is silently ignored.
	if id := r.URL.Query().Get("propertyId"); id != "" {
		if selected, found, _ := h.Store.Get(ctx, id); found {
			payload["selected"] = selected
		}
	}

	data, err := json.Marshal(payload)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to encode listings")
		return
	}
	if r.URL.RawQuery == "" {
		rdx.RdxSet(listingsCacheKey, string(data))
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// GetAmenities serves the canonical amenity list driving the filter UI.
func (h *Handler) GetAmenities(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "amenities": AllAmenities})
}

func (h *Handler) GetListing(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id := ps.ByName("listingid")
	listing, found, err := h.Store.Get(ctx, id)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch listing")
		return
	}
	if !found {
		utils.RespondWithJSON(w, http.StatusNotFound, utils.M{
			"status":  http.StatusNotFound,
			"message": "Listing not found",
		})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, listing)
}

// RegistrationPayload is the raw form input for a new listing.
type RegistrationPayload struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Rent        int     `json:"rent"`
	Bedrooms    *int    `json:"bedrooms,omitempty"`
	Bathrooms   *int    `json:"bathrooms,omitempty"`
	Address     string  `json:"address"`
	Description string  `json:"description"`
	Amenities   string  `json:"amenities"` // comma-separated
	ImageURL    string  `json:"imageUrl,omitempty"`
	Available   bool    `json:"available"`
	Contact     string  `json:"contact,omitempty"`
	Lat         float64 `json:"lat,omitempty"`
	Lng         float64 `json:"lng,omitempty"`
}

// CreateListing registers a new listing: category derived from rent, image
// placeholder fallback, amenities split from the comma string, createdAt
// stamped now, and the result prepended to the working set.
func (h *Handler) CreateListing(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var payload RegistrationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid listing data")
		return
	}

	payload.Name = strings.TrimSpace(payload.Name)
	payload.Address = strings.TrimSpace(payload.Address)
	if payload.Name == "" || payload.Address == "" || payload.Rent < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "All required fields must be filled")
		return
	}

	propType := models.ParsePropertyType(payload.Type)
	if propType == "" {
		propType = models.TypePG
	}

	images := []string{PlaceholderImage}
	if strings.TrimSpace(payload.ImageURL) != "" {
		images = []string{strings.TrimSpace(payload.ImageURL)}
	}

	contact := strings.TrimSpace(payload.Contact)
	if contact == "" {
		contact = "+91 00000 00000"
	}

	lat, lng := payload.Lat, payload.Lng
	if lat == 0 && lng == 0 {
		// demo coordinates scattered around the city center
		lat = 12.9716 + (rand.Float64()-0.5)*0.05
		lng = 77.5946 + (rand.Float64()-0.5)*0.05
	}

	listing := models.Listing{
		ListingID: utils.GetUUID(),
		Name:      payload.Name,
		Type:      propType,
		Rent:      payload.Rent,
		Category:  models.CategoryForRent(payload.Rent),
		Bedrooms:  payload.Bedrooms,
		Bathrooms: payload.Bathrooms,
		Location: models.Location{
			Coordinates: models.Coordinates{Latitude: lat, Longitude: lng},
			Address:     payload.Address,
		},
		Amenities:   utils.SplitAmenities(payload.Amenities),
		Images:      images,
		Description: strings.TrimSpace(payload.Description),
		Available:   payload.Available,
		Contact:     contact,
		CreatedAt:   time.Now(),
	}

	if err := h.Store.Prepend(ctx, listing); err != nil {
		log.Println("create listing:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error creating listing")
		return
	}

	rdx.RdxDel(listingsCacheKey)

	if h.Hub != nil {
		h.Hub.BroadcastListing(listing)
	}

	utils.RespondWithJSON(w, http.StatusCreated, listing)
}
