package reference

import (
	"context"
	"errors"

	domainReference "package-intake/internal/domain/reference"
	"package-intake/internal/logger"
	appErrors "package-intake/pkg/errors"
	"package-intake/pkg/utils"

	"go.uber.org/zap"
)

// Service implements reference value use cases
type Service struct {
	repo domainReference.Repository
}

// NewService creates a new reference service
func NewService(repo domainReference.Repository) *Service {
	return &Service{repo: repo}
}

// CreateReferenceRequest carries a new reference value
type CreateReferenceRequest struct {
	Type        string `json:"type" validate:"required,max=255"`
	Value       string `json:"value" validate:"required,max=255"`
	Description string `json:"description" validate:"max=1000"`
}

// FindOrCreateRequest names a (type, value) pair to resolve, inserting the
// row when absent.
type FindOrCreateRequest struct {
	Type        string `json:"type" validate:"required,max=255"`
	Value       string `json:"value" validate:"required,max=255"`
	Description string `json:"description" validate:"max=1000"`
}

// UpdateReferenceRequest carries changes to an existing reference value
type UpdateReferenceRequest struct {
	Type        string `json:"type" validate:"required,max=255"`
	Value       string `json:"value" validate:"required,max=255"`
	Description string `json:"description" validate:"max=1000"`
}

func (s *Service) Create(ctx context.Context, req *CreateReferenceRequest) (*domainReference.Reference, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	ref := &domainReference.Reference{
		Type:        utils.SanitizeString(req.Type),
		Value:       utils.SanitizeString(req.Value),
		Description: utils.SanitizeString(req.Description),
	}

	if err := s.repo.Create(ctx, ref); err != nil {
		return nil, err
	}

	logger.Info("reference created",
		zap.Int64("id", ref.RowID),
		zap.String("type", ref.Type),
		zap.String("value", ref.Value))

	return ref, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domainReference.Reference, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id int64, req *UpdateReferenceRequest) (*domainReference.Reference, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	ref, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ref.Type = utils.SanitizeString(req.Type)
	ref.Value = utils.SanitizeString(req.Value)
	ref.Description = utils.SanitizeString(req.Description)

	if err := s.repo.Update(ctx, ref); err != nil {
		return nil, err
	}

	return ref, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*domainReference.Reference, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByType(ctx context.Context, refType string) ([]*domainReference.Reference, error) {
	return s.repo.ListByType(ctx, refType)
}

// Lookup returns the reference with the given type and value, or nil when
// none exists.
func (s *Service) Lookup(ctx context.Context, refType, value string) (*domainReference.Reference, error) {
	ref, err := s.repo.GetByTypeAndValue(ctx, refType, value)
	if errors.Is(err, domainReference.ErrReferenceNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ref, nil
}

// FindOrCreateFromRequest validates and resolves a find-or-create request,
// reporting whether a new row was inserted.
func (s *Service) FindOrCreateFromRequest(ctx context.Context, req *FindOrCreateRequest) (*domainReference.Reference, bool, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, false, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	refType := utils.SanitizeString(req.Type)
	value := utils.SanitizeString(req.Value)

	existing, err := s.Lookup(ctx, refType, value)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	created, err := s.FindOrCreate(ctx, refType, value, utils.SanitizeString(req.Description))
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}

// FindOrCreate returns the reference with the given type and value, creating
// it when absent. The description is only used on insert; an existing row
// keeps whatever description it already has. Lookup and insert are separate
// store round trips, so two concurrent callers can both miss and insert
// duplicate rows; later lookups settle on the lowest row id.
func (s *Service) FindOrCreate(ctx context.Context, refType, value, description string) (*domainReference.Reference, error) {
	ref, err := s.Lookup(ctx, refType, value)
	if err != nil {
		return nil, err
	}
	if ref != nil {
		return ref, nil
	}

	created := &domainReference.Reference{
		Type:        refType,
		Value:       value,
		Description: description,
	}
	if err := s.repo.Create(ctx, created); err != nil {
		return nil, err
	}

	logger.Info("reference auto-created",
		zap.Int64("id", created.RowID),
		zap.String("type", created.Type),
		zap.String("value", created.Value))

	return created, nil
}
