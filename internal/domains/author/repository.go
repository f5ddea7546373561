package author

import "context"

// Repository defines the catalog store contract for authors
type Repository interface {
	// Create persists the author and returns it with the generated id
	Create(ctx context.Context, a *Author) (*Author, error)

	// FindByID returns ErrNotFound when the author does not exist
	FindByID(ctx context.Context, id int64) (*Author, error)
}
