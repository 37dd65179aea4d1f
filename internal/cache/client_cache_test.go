package cache

import (
	"context"
	"testing"

	domainClient "package-intake/internal/domain/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingClientRepo struct {
	clients map[int64]*domainClient.Client
	byID    int
	byName  int
	lists   int
}

func newCountingClientRepo(clients ...*domainClient.Client) *countingClientRepo {
	repo := &countingClientRepo{clients: make(map[int64]*domainClient.Client)}
	for _, c := range clients {
		repo.clients[c.ID] = c
	}
	return repo
}

func (r *countingClientRepo) Create(_ context.Context, c *domainClient.Client) error {
	r.clients[c.ID] = c
	return nil
}

func (r *countingClientRepo) GetByID(_ context.Context, id int64) (*domainClient.Client, error) {
	r.byID++
	c, ok := r.clients[id]
	if !ok {
		return nil, domainClient.ErrClientNotFound
	}
	return c, nil
}

func (r *countingClientRepo) GetByName(_ context.Context, name string) (*domainClient.Client, error) {
	r.byName++
	for _, c := range r.clients {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, domainClient.ErrClientNotFound
}

func (r *countingClientRepo) Update(_ context.Context, c *domainClient.Client) error {
	if _, ok := r.clients[c.ID]; !ok {
		return domainClient.ErrClientNotFound
	}
	r.clients[c.ID] = c
	return nil
}

func (r *countingClientRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.clients[id]; !ok {
		return domainClient.ErrClientNotFound
	}
	delete(r.clients, id)
	return nil
}

func (r *countingClientRepo) List(_ context.Context) ([]*domainClient.Client, error) {
	r.lists++
	var out []*domainClient.Client
	for _, c := range r.clients {
		out = append(out, c)
	}
	return out, nil
}

func (r *countingClientRepo) ListByLastUpdateUser(_ context.Context, _ string) ([]*domainClient.Client, error) {
	return nil, nil
}

func (r *countingClientRepo) SearchByName(_ context.Context, _ string) ([]*domainClient.Client, error) {
	return nil, nil
}

func TestGetByIDReadsThroughOnce(t *testing.T) {
	repo := newCountingClientRepo(&domainClient.Client{ID: 1, Name: "Acme Labs"})
	c := NewClientCache(repo)

	first, err := c.GetByID(context.Background(), 1)
	require.NoError(t, err)
	second, err := c.GetByID(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.byID)
}

func TestGetByIDPopulatesNameIndex(t *testing.T) {
	repo := newCountingClientRepo(&domainClient.Client{ID: 1, Name: "Acme Labs"})
	c := NewClientCache(repo)

	_, err := c.GetByID(context.Background(), 1)
	require.NoError(t, err)

	_, err = c.GetByName(context.Background(), "Acme Labs")
	require.NoError(t, err)
	assert.Equal(t, 0, repo.byName)
}

func TestGetByIDMissNotCached(t *testing.T) {
	repo := newCountingClientRepo()
	c := NewClientCache(repo)

	_, err := c.GetByID(context.Background(), 7)
	assert.ErrorIs(t, err, domainClient.ErrClientNotFound)

	_, err = c.GetByID(context.Background(), 7)
	assert.ErrorIs(t, err, domainClient.ErrClientNotFound)
	assert.Equal(t, 2, repo.byID)
}

func TestListCachedUntilClear(t *testing.T) {
	repo := newCountingClientRepo(
		&domainClient.Client{ID: 1, Name: "Acme Labs"},
		&domainClient.Client{ID: 2, Name: "Beacon Clinic"},
	)
	c := NewClientCache(repo)

	first, err := c.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, first, 2)

	_, err = c.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.lists)

	c.Clear()

	_, err = c.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.lists)
}

func TestClearDropsEntries(t *testing.T) {
	repo := newCountingClientRepo(&domainClient.Client{ID: 1, Name: "Acme Labs"})
	c := NewClientCache(repo)

	_, err := c.GetByID(context.Background(), 1)
	require.NoError(t, err)

	c.Clear()

	_, err = c.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.byID)
}
