package models

import "testing"

func TestCategoryForRent(t *testing.T) {
	cases := []struct {
		rent int
		want RentCategory
	}{
		{0, CategoryBudget},
		{9999, CategoryBudget},
		{10000, CategoryMidRange},
		{15000, CategoryMidRange},
		{20000, CategoryMidRange},
		{20001, CategoryLuxury},
		{50000, CategoryLuxury},
	}
	for _, tc := range cases {
		if got := CategoryForRent(tc.rent); got != tc.want {
			t.Errorf("CategoryForRent(%d) = %q, want %q", tc.rent, got, tc.want)
		}
	}
}

func TestParsePropertyType(t *testing.T) {
	cases := []struct {
		in   string
		want PropertyType
	}{
		{"PG", TypePG},
		{"pg", TypePG},
		{"Hostel", TypeHostel},
		{"apartment", TypeApartment},
		{"Single Room", TypeRoom},
		{"room", TypeRoom},
		{"villa", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := ParsePropertyType(tc.in); got != tc.want {
			t.Errorf("ParsePropertyType(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestHasAmenity(t *testing.T) {
	l := Listing{Amenities: []string{"WiFi", "3 Meals"}}
	if !l.HasAmenity("3 Meals") {
		t.Error("present amenity not found")
	}
	if l.HasAmenity("Pool") {
		t.Error("absent amenity reported present")
	}
}
