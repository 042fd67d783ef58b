package club

import "context"

// Repository describes club lookup needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Club, error)
	GetByEmail(ctx context.Context, email string) (Club, bool, error)
	GetByName(ctx context.Context, name string) (Club, bool, error)
}
