package store

import "context"

// Item is one hotel record as stored in the inventory table.
type Item map[string]interface{}

// Reader exposes the read-only scans the API performs against the hotel
// inventory table.
type Reader interface {
	// List returns one page of hotels (page size 10). lastKey is the opaque
	// cursor returned by a previous call, or empty to start from the top.
	List(ctx context.Context, lastKey string) (items []Item, nextPageToken string, err error)

	// SearchByName returns hotels whose name contains the given substring.
	SearchByName(ctx context.Context, name string) ([]Item, error)

	// FilterByRegion returns hotels whose region name contains the given
	// substring.
	FilterByRegion(ctx context.Context, region string) ([]Item, error)
}
