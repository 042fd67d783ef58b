package competition

import "context"

// Repository describes competition lookup needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Competition, error)
	GetByName(ctx context.Context, name string) (Competition, bool, error)
}
