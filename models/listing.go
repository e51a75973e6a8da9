package models

import (
	"strings"
	"time"
)

type PropertyType string

const (
	TypePG        PropertyType = "PG"
	TypeHostel    PropertyType = "Hostel"
	TypeApartment PropertyType = "Apartment"
	TypeRoom      PropertyType = "Single Room"
)

type RentCategory string

const (
	CategoryBudget   RentCategory = "Budget"
	CategoryMidRange RentCategory = "Mid-Range"
	CategoryLuxury   RentCategory = "Luxury"
)

// PropertyTypes lists the closed set of listing types, in display order.
var PropertyTypes = []PropertyType{TypePG, TypeHostel, TypeApartment, TypeRoom}

type Coordinates struct {
	Latitude  float64 `json:"lat" bson:"lat"`
	Longitude float64 `json:"lng" bson:"lng"`
}

type Location struct {
	Coordinates `bson:",inline"`
	Address     string `json:"address" bson:"address"`
}

// Listing is a single rentable property record. Immutable after creation:
// nothing in the service mutates a listing once it is in the working set.
type Listing struct {
	ListingID   string       `json:"listingid" bson:"listingid"`
	Name        string       `json:"name" bson:"name"`
	Type        PropertyType `json:"type" bson:"type"`
	Rent        int          `json:"rent" bson:"rent"`
	Category    RentCategory `json:"category" bson:"category"`
	Bedrooms    *int         `json:"bedrooms,omitempty" bson:"bedrooms,omitempty"`
	Bathrooms   *int         `json:"bathrooms,omitempty" bson:"bathrooms,omitempty"`
	Location    Location     `json:"location" bson:"location"`
	Amenities   []string     `json:"amenities" bson:"amenities"`
	Images      []string     `json:"images" bson:"images"`
	Description string       `json:"description" bson:"description"`
	Available   bool         `json:"available" bson:"available"`
	Contact     string       `json:"contact" bson:"contact"`
	CreatedAt   time.Time    `json:"createdAt" bson:"createdAt"`
}

// CategoryForRent derives the budget tier from a monthly rent. Assigned once
// at creation time and never recomputed afterwards.
func CategoryForRent(rent int) RentCategory {
	if rent < 10000 {
		return CategoryBudget
	}
	if rent > 20000 {
		return CategoryLuxury
	}
	return CategoryMidRange
}

// ParsePropertyType matches a free-text type against the closed set,
// case-insensitively and by substring ("room" matches "Single Room").
// Returns "" when nothing matches.
func ParsePropertyType(s string) PropertyType {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, t := range PropertyTypes {
		if strings.EqualFold(string(t), s) {
			return t
		}
	}
	for _, t := range PropertyTypes {
		if strings.Contains(strings.ToLower(string(t)), strings.ToLower(s)) {
			return t
		}
	}
	return ""
}

func (l Listing) HasAmenity(name string) bool {
	for _, a := range l.Amenities {
		if a == name {
			return true
		}
	}
	return false
}
