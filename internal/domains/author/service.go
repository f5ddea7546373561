package author

import "context"

// Service defines the author business logic contract
type Service interface {
	Create(ctx context.Context, req CreateAuthorRequest) (*Author, error)
}
