package listings

import (
	"net/http"
	"strconv"

	"staymate/models"
	"staymate/utils"
)

// DefaultMaxRent mirrors the upper bound of the rent slider.
const DefaultMaxRent = 50000

type SortOption string

const (
	SortRentAsc  SortOption = "rent_asc"
	SortRentDesc SortOption = "rent_desc"
	SortNameAsc  SortOption = "name_asc"
	SortDateDesc SortOption = "date_desc"
)

// Criteria is the complete, immutable set of active filter/sort selections
// at one point in time. It is rebuilt from query parameters on every request
// and never persisted.
type Criteria struct {
	Query        string
	Type         models.PropertyType // "" = any
	Category     models.RentCategory // "" = any
	MinRent      int
	MaxRent      int
	MinBedrooms  *int // nil = any
	MinBathrooms *int
	Amenities    []string
	RequireMeals bool // the "3 Meals" switch
	Origin       *models.Coordinates
	RadiusKm     float64
	SortBy       SortOption
}

// MealsAmenity is the flagged amenity behind the RequireMeals switch.
const MealsAmenity = "3 Meals"

// ParseCriteria builds a criteria snapshot from request query parameters.
// Out-of-range rent bounds are clamped the way the UI slider clamps them,
// so min <= max always holds downstream.
func ParseCriteria(r *http.Request) Criteria {
	q := r.URL.Query()

	c := Criteria{
		Query:    q.Get("q"),
		MaxRent:  DefaultMaxRent,
		RadiusKm: 10,
		SortBy:   SortDateDesc,
	}

	if t := models.ParsePropertyType(q.Get("type")); t != "" {
		c.Type = t
	}
	switch q.Get("category") {
	case string(models.CategoryBudget):
		c.Category = models.CategoryBudget
	case string(models.CategoryMidRange):
		c.Category = models.CategoryMidRange
	case string(models.CategoryLuxury):
		c.Category = models.CategoryLuxury
	}

	if v, err := strconv.Atoi(q.Get("minrent")); err == nil && v >= 0 {
		c.MinRent = v
	}
	if v, err := strconv.Atoi(q.Get("maxrent")); err == nil && v >= 0 {
		c.MaxRent = v
	}
	if c.MaxRent < c.MinRent {
		c.MaxRent = c.MinRent
	}

	if v, err := strconv.Atoi(q.Get("minbedrooms")); err == nil && v >= 0 {
		c.MinBedrooms = &v
	}
	if v, err := strconv.Atoi(q.Get("minbathrooms")); err == nil && v >= 0 {
		c.MinBathrooms = &v
	}

	c.Amenities = utils.SplitAmenities(q.Get("amenities"))
	c.RequireMeals = q.Get("meals") == "true"

	lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
	lng, lngErr := strconv.ParseFloat(q.Get("lng"), 64)
	if latErr == nil && lngErr == nil {
		c.Origin = &models.Coordinates{Latitude: lat, Longitude: lng}
		if rad, err := strconv.ParseFloat(q.Get("radius"), 64); err == nil && rad > 0 {
			c.RadiusKm = rad
		}
	}

	switch SortOption(q.Get("sort")) {
	case SortRentAsc:
		c.SortBy = SortRentAsc
	case SortRentDesc:
		c.SortBy = SortRentDesc
	case SortNameAsc:
		c.SortBy = SortNameAsc
	}

	return c
}
