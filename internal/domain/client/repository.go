package client

import "context"

type Repository interface {
	Create(ctx context.Context, c *Client) error
	GetByID(ctx context.Context, id int64) (*Client, error)
	Update(ctx context.Context, c *Client) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*Client, error)
	GetByName(ctx context.Context, name string) (*Client, error)
	ListByLastUpdateUser(ctx context.Context, user string) ([]*Client, error)
	SearchByName(ctx context.Context, term string) ([]*Client, error)
}
