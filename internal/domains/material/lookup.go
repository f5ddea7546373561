package material

import "context"

// BookData is what the external bibliographic source can contribute to a
// book submission. Zero values mean the source had nothing for that field.
type BookData struct {
	Title string
	Pages int
}

// CatalogLookup retrieves book data for a validated ISBN.
//
// Implementations must never return an error: transport failures, non-2xx
// responses and malformed payloads are all reported as found=false, exactly
// like a missing record. The pipeline's error channel stays reserved for
// validation and authorization failures.
type CatalogLookup interface {
	LookupByISBN(ctx context.Context, isbn string) (data *BookData, found bool)
}
