package listings

import (
	"time"

	"staymate/models"
)

// AllAmenities is the canonical amenity carton offered by the filter UI.
var AllAmenities = []string{
	"WiFi", "3 Meals", "Laundry", "Attached Bathroom", "Gym", "Pool",
	"Parking", "24/7 Security", "AC", "Elevator", "Kitchen",
}

// PlaceholderImage backs listings registered without any image URL.
const PlaceholderImage = "https://images.unsplash.com/photo-1493666438817-866a91353ca9?auto=format&fit=crop&q=80&w=800"

func intPtr(v int) *int { return &v }

// Seed returns the initial working set for the memory store.
func Seed() []models.Listing {
	now := time.Now()
	return []models.Listing{
		{
			ListingID: "1",
			Name:      "Green View PG for Gents",
			Type:      models.TypePG,
			Rent:      8500,
			Category:  models.CategoryBudget,
			Bedrooms:  intPtr(1),
			Bathrooms: intPtr(1),
			Location: models.Location{
				Coordinates: models.Coordinates{Latitude: 12.9716, Longitude: 77.5946},
				Address:     "Indiranagar, Bangalore",
			},
			Amenities: []string{"WiFi", "3 Meals", "Laundry", "Attached Bathroom"},
			Images: []string{
				"https://images.unsplash.com/photo-1522771739844-6a9f6d5f14af?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1598928506311-c55ded91a20c?auto=format&fit=crop&q=80&w=800",
			},
			Description: "A cozy PG located in the heart of the city with all modern amenities.",
			Available:   true,
			Contact:     "+91 98765 43210",
			CreatedAt:   now.Add(-48 * time.Hour),
		},
		{
			ListingID: "2",
			Name:      "Skyline Luxury Apartments",
			Type:      models.TypeApartment,
			Rent:      25000,
			Category:  models.CategoryLuxury,
			Bedrooms:  intPtr(2),
			Bathrooms: intPtr(2),
			Location: models.Location{
				Coordinates: models.Coordinates{Latitude: 12.9279, Longitude: 77.6271},
				Address:     "Koramangala, Bangalore",
			},
			Amenities: []string{"Gym", "Pool", "Parking", "24/7 Security", "WiFi", "AC"},
			Images: []string{
				"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1484154218962-a197022b5858?auto=format&fit=crop&q=80&w=800",
			},
			Description: "Modern 2BHK apartment with breathtaking views and premium facilities.",
			Available:   true,
			Contact:     "+91 99887 76655",
			CreatedAt:   now.Add(-5 * 24 * time.Hour),
		},
		{
			ListingID: "3",
			Name:      "St. Jude's Hostel",
			Type:      models.TypeHostel,
			Rent:      6000,
			Category:  models.CategoryBudget,
			Bedrooms:  intPtr(1),
			Bathrooms: intPtr(4),
			Location: models.Location{
				Coordinates: models.Coordinates{Latitude: 12.9345, Longitude: 77.6101},
				Address:     "HSR Layout, Bangalore",
			},
			Amenities: []string{"Common Room", "Library", "Canteen", "WiFi"},
			Images: []string{
				"https://images.unsplash.com/photo-1555854877-bab0e564b8d5?auto=format&fit=crop&q=80&w=800",
			},
			Description: "Affordable and safe hostel for students with a focus on community living.",
			Available:   false,
			Contact:     "+91 91234 56789",
			CreatedAt:   now.Add(-24 * time.Hour),
		},
	}
}
