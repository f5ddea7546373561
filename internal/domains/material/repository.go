package material

import "context"

// Repository defines the catalog store contract for materials.
// Uniqueness of isbn/doi is enforced by the store itself at write time;
// Create surfaces violations as ErrISBNAlreadyExists / ErrDOIAlreadyExists.
type Repository interface {
	// Create persists the material and returns it with author and creator
	// summaries embedded.
	Create(ctx context.Context, m *Material) (*Material, error)

	// FindByID returns the material with summaries embedded.
	// Returns ErrMaterialNotFound when absent.
	FindByID(ctx context.Context, id int64) (*Material, error)

	// List returns published materials matching the filters plus the total
	// count before pagination.
	List(ctx context.Context, req ListMaterialsRequest) ([]Material, int, error)

	// Update applies the partial fields and returns the updated material.
	// Returns ErrMaterialNotFound when absent.
	Update(ctx context.Context, id int64, req UpdateMaterialRequest) (*Material, error)

	// Delete hard-deletes the material.
	// Returns ErrMaterialNotFound when absent.
	Delete(ctx context.Context, id int64) error
}
