package listings

import (
	"net/http/httptest"
	"testing"
)

func TestParseCriteriaDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/listings", nil)
	c := ParseCriteria(r)

	if c.MinRent != 0 || c.MaxRent != DefaultMaxRent {
		t.Errorf("default rent range = [%d, %d], want [0, %d]", c.MinRent, c.MaxRent, DefaultMaxRent)
	}
	if c.SortBy != SortDateDesc {
		t.Errorf("default sort = %q, want %q", c.SortBy, SortDateDesc)
	}
	if c.Origin != nil {
		t.Error("origin should be unset without lat/lng")
	}
	if c.RadiusKm != 10 {
		t.Errorf("default radius = %v, want 10", c.RadiusKm)
	}
	if c.Type != "" || c.Category != "" || c.RequireMeals {
		t.Error("type/category/meals should be inactive by default")
	}
}

func TestParseCriteriaClampsRentRange(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/listings?minrent=30000&maxrent=10000", nil)
	c := ParseCriteria(r)

	if c.MinRent != 30000 || c.MaxRent != 30000 {
		t.Errorf("inverted range not clamped: [%d, %d]", c.MinRent, c.MaxRent)
	}
}

func TestParseCriteriaFull(t *testing.T) {
	r := httptest.NewRequest("GET",
		"/api/listings?q=green&type=pg&category=Budget&minrent=2000&maxrent=9000"+
			"&minbedrooms=1&amenities=WiFi,AC&meals=true&lat=12.97&lng=77.59&radius=5&sort=rent_asc", nil)
	c := ParseCriteria(r)

	if c.Query != "green" {
		t.Errorf("query = %q", c.Query)
	}
	if string(c.Type) != "PG" {
		t.Errorf("type = %q", c.Type)
	}
	if string(c.Category) != "Budget" {
		t.Errorf("category = %q", c.Category)
	}
	if c.MinRent != 2000 || c.MaxRent != 9000 {
		t.Errorf("rent range = [%d, %d]", c.MinRent, c.MaxRent)
	}
	if c.MinBedrooms == nil || *c.MinBedrooms != 1 {
		t.Error("minbedrooms not parsed")
	}
	if len(c.Amenities) != 2 || c.Amenities[0] != "WiFi" || c.Amenities[1] != "AC" {
		t.Errorf("amenities = %v", c.Amenities)
	}
	if !c.RequireMeals {
		t.Error("meals switch not parsed")
	}
	if c.Origin == nil || c.Origin.Latitude != 12.97 || c.Origin.Longitude != 77.59 {
		t.Error("origin not parsed")
	}
	if c.RadiusKm != 5 {
		t.Errorf("radius = %v", c.RadiusKm)
	}
	if c.SortBy != SortRentAsc {
		t.Errorf("sort = %q", c.SortBy)
	}
}

func TestParseCriteriaIgnoresRadiusWithoutOrigin(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/listings?radius=3", nil)
	c := ParseCriteria(r)
	if c.Origin != nil {
		t.Error("radius alone must not create an origin")
	}
	if c.RadiusKm != 10 {
		t.Errorf("radius without origin should stay at default, got %v", c.RadiusKm)
	}
}

func TestParseCriteriaUnknownSortFallsBack(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/listings?sort=price_low", nil)
	if c := ParseCriteria(r); c.SortBy != SortDateDesc {
		t.Errorf("unknown sort = %q, want fallback %q", c.SortBy, SortDateDesc)
	}
}
