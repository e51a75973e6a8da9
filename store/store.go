package store

import (
	"context"

	"staymate/models"
)

// ListingStore is the owned, injectable working set of listings. The filter
// pipeline never talks to storage directly; handlers list from here and run
// the pipeline over the returned slice.
type ListingStore interface {
	// List returns the working set, newest first. The returned slice is
	// owned by the caller; mutating it must not affect the store.
	List(ctx context.Context) ([]models.Listing, error)
	Get(ctx context.Context, id string) (models.Listing, bool, error)
	// Prepend puts a freshly registered listing at the head of the working
	// set so it surfaces first under the default newest-first sort.
	Prepend(ctx context.Context, l models.Listing) error
}
