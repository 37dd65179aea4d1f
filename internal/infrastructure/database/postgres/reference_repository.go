package postgres

import (
	"context"
	"errors"
	"fmt"

	"package-intake/internal/domain/reference"
	"package-intake/internal/infrastructure/database/postgres/models"

	"gorm.io/gorm"
)

type ReferenceRepository struct {
	db *DB
}

func NewReferenceRepository(db *DB) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

func (r *ReferenceRepository) Create(ctx context.Context, ref *reference.Reference) error {
	dbModel := toReferenceModel(ref)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create reference: %w", err)
	}

	ref.RowID = dbModel.RowID
	return nil
}

func (r *ReferenceRepository) GetByID(ctx context.Context, id int64) (*reference.Reference, error) {
	var dbModel models.ReferenceModel
	err := r.db.DB.WithContext(ctx).Where("row_id = ?", id).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, reference.ErrReferenceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reference: %w", err)
	}

	return toReferenceEntity(&dbModel), nil
}

func (r *ReferenceRepository) Update(ctx context.Context, ref *reference.Reference) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.ReferenceModel{}).
		Where("row_id = ?", ref.RowID).
		Updates(map[string]interface{}{
			"type":        ref.Type,
			"value":       ref.Value,
			"description": ref.Description,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update reference: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return reference.ErrReferenceNotFound
	}

	return nil
}

func (r *ReferenceRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.DB.WithContext(ctx).
		Where("row_id = ?", id).
		Delete(&models.ReferenceModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete reference: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return reference.ErrReferenceNotFound
	}

	return nil
}

func (r *ReferenceRepository) List(ctx context.Context) ([]*reference.Reference, error) {
	var dbModels []models.ReferenceModel
	err := r.db.DB.WithContext(ctx).Order("row_id").Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list references: %w", err)
	}

	return toReferenceEntities(dbModels), nil
}

func (r *ReferenceRepository) ListByType(ctx context.Context, refType string) ([]*reference.Reference, error) {
	var dbModels []models.ReferenceModel
	err := r.db.DB.WithContext(ctx).
		Where("type = ?", refType).
		Order("row_id").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list references by type: %w", err)
	}

	return toReferenceEntities(dbModels), nil
}

func (r *ReferenceRepository) GetByTypeAndValue(ctx context.Context, refType, value string) (*reference.Reference, error) {
	var dbModel models.ReferenceModel
	err := r.db.DB.WithContext(ctx).
		Where("type = ? AND value = ?", refType, value).
		Order("row_id").
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, reference.ErrReferenceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reference by type and value: %w", err)
	}

	return toReferenceEntity(&dbModel), nil
}

func toReferenceModel(ref *reference.Reference) *models.ReferenceModel {
	return &models.ReferenceModel{
		RowID:       ref.RowID,
		Type:        ref.Type,
		Value:       ref.Value,
		Description: ref.Description,
	}
}

func toReferenceEntity(m *models.ReferenceModel) *reference.Reference {
	return &reference.Reference{
		RowID:       m.RowID,
		Type:        m.Type,
		Value:       m.Value,
		Description: m.Description,
	}
}

func toReferenceEntities(dbModels []models.ReferenceModel) []*reference.Reference {
	refs := make([]*reference.Reference, len(dbModels))
	for i := range dbModels {
		refs[i] = toReferenceEntity(&dbModels[i])
	}
	return refs
}
