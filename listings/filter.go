package listings

import (
	"sort"
	"sync"

	"staymate/geo"
	"staymate/models"
	"staymate/utils"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Every predicate takes one listing and the criteria snapshot and returns a
// boolean. All are pure; a listing is kept iff all of them pass.
var predicates = []func(models.Listing, Criteria) bool{
	matchesProximity,
	matchesQuery,
	matchesType,
	matchesCategory,
	matchesRentRange,
	matchesBedrooms,
	matchesBathrooms,
	matchesMeals,
	matchesAmenities,
}

func matchesProximity(l models.Listing, c Criteria) bool {
	if c.Origin == nil {
		return true
	}
	return geo.Distance(*c.Origin, l.Location.Coordinates) <= c.RadiusKm
}

func matchesQuery(l models.Listing, c Criteria) bool {
	if c.Query == "" {
		return true
	}
	return utils.ContainsIgnoreCase(l.Name, c.Query) ||
		utils.ContainsIgnoreCase(l.Location.Address, c.Query)
}

func matchesType(l models.Listing, c Criteria) bool {
	return c.Type == "" || l.Type == c.Type
}

func matchesCategory(l models.Listing, c Criteria) bool {
	return c.Category == "" || l.Category == c.Category
}

func matchesRentRange(l models.Listing, c Criteria) bool {
	return l.Rent >= c.MinRent && l.Rent <= c.MaxRent
}

// A listing that does not state the field fails a set minimum.
func matchesBedrooms(l models.Listing, c Criteria) bool {
	if c.MinBedrooms == nil {
		return true
	}
	return l.Bedrooms != nil && *l.Bedrooms >= *c.MinBedrooms
}

func matchesBathrooms(l models.Listing, c Criteria) bool {
	if c.MinBathrooms == nil {
		return true
	}
	return l.Bathrooms != nil && *l.Bathrooms >= *c.MinBathrooms
}

func matchesMeals(l models.Listing, c Criteria) bool {
	return !c.RequireMeals || l.HasAmenity(MealsAmenity)
}

// All selected amenities must be present (logical AND).
func matchesAmenities(l models.Listing, c Criteria) bool {
	for _, a := range c.Amenities {
		if !l.HasAmenity(a) {
			return false
		}
	}
	return true
}

func matches(l models.Listing, c Criteria) bool {
	for _, p := range predicates {
		if !p(l, c) {
			return false
		}
	}
	return true
}

// Collators carry mutable scratch state, so one instance must never be
// shared across concurrent requests.
var collators = sync.Pool{
	New: func() any { return collate.New(language.English, collate.IgnoreCase) },
}

// Apply runs the full filter/sort pipeline: keep listings passing every
// predicate in their original relative order, then stable-sort by the
// selected comparator. The input slice is never mutated or aliased.
func Apply(in []models.Listing, c Criteria) []models.Listing {
	filtered := make([]models.Listing, 0, len(in))
	for _, l := range in {
		if matches(l, c) {
			filtered = append(filtered, l)
		}
	}

	switch c.SortBy {
	case SortRentAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rent < filtered[j].Rent
		})
	case SortRentDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rent > filtered[j].Rent
		})
	case SortNameAsc:
		col := collators.Get().(*collate.Collator)
		sort.SliceStable(filtered, func(i, j int) bool {
			return col.CompareString(filtered[i].Name, filtered[j].Name) < 0
		})
		collators.Put(col)
	default: // date_desc
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		})
	}

	return filtered
}
