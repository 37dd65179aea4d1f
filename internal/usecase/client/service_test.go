package client

import (
	"context"
	"testing"
	"time"

	"package-intake/internal/cache"
	domainClient "package-intake/internal/domain/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClientRepo struct {
	clients map[int64]*domainClient.Client
	nextID  int64
	lists   int
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[int64]*domainClient.Client), nextID: 1}
}

func (f *fakeClientRepo) Create(_ context.Context, c *domainClient.Client) error {
	c.ID = f.nextID
	f.nextID++
	stored := *c
	f.clients[c.ID] = &stored
	return nil
}

func (f *fakeClientRepo) GetByID(_ context.Context, id int64) (*domainClient.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, domainClient.ErrClientNotFound
	}
	copied := *c
	return &copied, nil
}

func (f *fakeClientRepo) GetByName(_ context.Context, name string) (*domainClient.Client, error) {
	for _, c := range f.clients {
		if c.Name == name {
			copied := *c
			return &copied, nil
		}
	}
	return nil, domainClient.ErrClientNotFound
}

func (f *fakeClientRepo) Update(_ context.Context, c *domainClient.Client) error {
	if _, ok := f.clients[c.ID]; !ok {
		return domainClient.ErrClientNotFound
	}
	stored := *c
	f.clients[c.ID] = &stored
	return nil
}

func (f *fakeClientRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.clients[id]; !ok {
		return domainClient.ErrClientNotFound
	}
	delete(f.clients, id)
	return nil
}

func (f *fakeClientRepo) List(_ context.Context) ([]*domainClient.Client, error) {
	f.lists++
	var out []*domainClient.Client
	for id := int64(1); id < f.nextID; id++ {
		if c, ok := f.clients[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeClientRepo) ListByLastUpdateUser(_ context.Context, _ string) ([]*domainClient.Client, error) {
	return nil, nil
}

func (f *fakeClientRepo) SearchByName(_ context.Context, _ string) ([]*domainClient.Client, error) {
	return nil, nil
}

func newTestService() (*Service, *fakeClientRepo) {
	repo := newFakeClientRepo()
	return NewService(repo, cache.NewClientCache(repo)), repo
}

func TestCreateStampsAuditFields(t *testing.T) {
	svc, _ := newTestService()
	fixed := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	c, err := svc.Create(context.Background(), &ClientRequest{
		Name:           "Acme Labs",
		LastUpdateUser: "jdoe",
	})
	require.NoError(t, err)

	assert.NotZero(t, c.ID)
	require.NotNil(t, c.LastUpdateTime)
	assert.Equal(t, fixed, *c.LastUpdateTime)
	assert.Equal(t, "jdoe", c.LastUpdateUser)
}

func TestCreateRequiresName(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), &ClientRequest{})
	assert.Error(t, err)
}

func TestWritesClearListCache(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.Create(context.Background(), &ClientRequest{Name: "Acme Labs"})
	require.NoError(t, err)

	listed, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	_, err = svc.Create(context.Background(), &ClientRequest{Name: "Beacon Clinic"})
	require.NoError(t, err)

	listed, err = svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, listed, 2)
	assert.Equal(t, 2, repo.lists)
}

func TestUpdateRefreshesCachedEntry(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), &ClientRequest{Name: "Acme Labs"})
	require.NoError(t, err)

	cached, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Labs", cached.Name)

	_, err = svc.Update(context.Background(), created.ID, &ClientRequest{Name: "Acme Laboratories"})
	require.NoError(t, err)

	refreshed, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Laboratories", refreshed.Name)
}

func TestDeleteMissingClient(t *testing.T) {
	svc, _ := newTestService()

	err := svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, domainClient.ErrClientNotFound)
}
