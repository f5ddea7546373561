package material

import "context"

// Service defines the material business logic contract. The acting user
// identity is always an explicit parameter, resolved by the auth middleware
// before invocation - nothing below the handler reads request state.
type Service interface {
	// Create runs the full validation & enrichment pipeline and persists
	// the material with creatorId bound to actingUserID.
	Create(ctx context.Context, actingUserID int64, req CreateMaterialRequest) (*Material, error)

	// GetByID is the public read path: absent materials yield
	// ErrMaterialNotFound, non-published ones ErrNotPublished.
	GetByID(ctx context.Context, id int64) (*Material, error)

	// List is the public listing path, restricted to published materials.
	List(ctx context.Context, req ListMaterialsRequest) ([]Material, int, error)

	// Update mutates title/description/status after the ownership guard.
	Update(ctx context.Context, actingUserID, id int64, req UpdateMaterialRequest) (*Material, error)

	// Delete hard-deletes after the ownership guard.
	Delete(ctx context.Context, actingUserID, id int64) error
}
