package catalog

import "context"

type Repository interface {
	Create(ctx context.Context, e *Entry) error
	GetByCode(ctx context.Context, code string) (*Entry, error)
	List(ctx context.Context, limit, offset int) ([]*Entry, int, error)
	ListAll(ctx context.Context) ([]*Entry, error)
}
