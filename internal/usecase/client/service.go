package client

import (
	"context"
	"errors"
	"time"

	"package-intake/internal/cache"
	domainClient "package-intake/internal/domain/client"
	"package-intake/internal/logger"
	appErrors "package-intake/pkg/errors"
	"package-intake/pkg/utils"

	"go.uber.org/zap"
)

// Service implements client use cases. Reads go through the cache; any write
// clears it so stale names never reach shipment intake.
type Service struct {
	repo  domainClient.Repository
	cache *cache.ClientCache
	now   func() time.Time
}

// NewService creates a new client service
func NewService(repo domainClient.Repository, clientCache *cache.ClientCache) *Service {
	return &Service{
		repo:  repo,
		cache: clientCache,
		now:   time.Now,
	}
}

// ClientRequest carries a client for create and update.
type ClientRequest struct {
	Name           string `json:"client" validate:"required,max=255"`
	LastUpdateUser string `json:"lastUpdateUser" validate:"max=255"`
}

func (s *Service) Create(ctx context.Context, req *ClientRequest) (*domainClient.Client, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	now := s.now()
	c := &domainClient.Client{
		Name:           utils.SanitizeString(req.Name),
		LastUpdateTime: &now,
		LastUpdateUser: utils.SanitizeString(req.LastUpdateUser),
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	s.cache.Clear()

	logger.Info("client created", zap.Int64("id", c.ID), zap.String("client", c.Name))
	return c, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domainClient.Client, error) {
	return s.cache.GetByID(ctx, id)
}

func (s *Service) GetByName(ctx context.Context, name string) (*domainClient.Client, error) {
	return s.cache.GetByName(ctx, name)
}

func (s *Service) Update(ctx context.Context, id int64, req *ClientRequest) (*domainClient.Client, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	c.Name = utils.SanitizeString(req.Name)
	c.LastUpdateTime = &now
	c.LastUpdateUser = utils.SanitizeString(req.LastUpdateUser)

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	s.cache.Clear()

	return c, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Clear()
	return nil
}

func (s *Service) List(ctx context.Context) ([]*domainClient.Client, error) {
	return s.cache.List(ctx)
}

// Exists reports whether a client with the given id is known, going through
// the cache like any other read.
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	_, err := s.cache.GetByID(ctx, id)
	if errors.Is(err, domainClient.ErrClientNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) ListByLastUpdateUser(ctx context.Context, user string) ([]*domainClient.Client, error) {
	return s.repo.ListByLastUpdateUser(ctx, user)
}

func (s *Service) SearchByName(ctx context.Context, term string) ([]*domainClient.Client, error) {
	return s.repo.SearchByName(ctx, utils.SanitizeSearchTerm(term))
}
