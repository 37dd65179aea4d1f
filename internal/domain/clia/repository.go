package clia

import "context"

type AdminRepository interface {
	Create(ctx context.Context, a *Admin) error
	GetByID(ctx context.Context, id int64) (*Admin, error)
	GetByUserID(ctx context.Context, userID string) (*Admin, error)
	Update(ctx context.Context, a *Admin) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*Admin, error)
}

type MemberRepository interface {
	Create(ctx context.Context, m *Member) error
	GetByID(ctx context.Context, id int64) (*Member, error)
	GetByUserID(ctx context.Context, userID string) (*Member, error)
	Update(ctx context.Context, m *Member) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*Member, error)
}
