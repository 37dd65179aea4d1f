package reference

import "context"

type Repository interface {
	Create(ctx context.Context, r *Reference) error
	GetByID(ctx context.Context, id int64) (*Reference, error)
	Update(ctx context.Context, r *Reference) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*Reference, error)
	ListByType(ctx context.Context, refType string) ([]*Reference, error)
	GetByTypeAndValue(ctx context.Context, refType, value string) (*Reference, error)
}
