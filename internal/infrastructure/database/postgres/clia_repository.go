package postgres

import (
	"context"
	"errors"
	"fmt"

	"package-intake/internal/domain/clia"
	"package-intake/internal/infrastructure/database/postgres/models"

	"gorm.io/gorm"
)

type CLIAAdminRepository struct {
	db *DB
}

func NewCLIAAdminRepository(db *DB) *CLIAAdminRepository {
	return &CLIAAdminRepository{db: db}
}

func (r *CLIAAdminRepository) Create(ctx context.Context, a *clia.Admin) error {
	dbModel := &models.CLIAAdminModel{
		UserID:             a.UserID,
		LastUpdateDatetime: a.LastUpdateDatetime,
		LastUpdateUser:     a.LastUpdateUser,
	}
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create CLIA admin: %w", err)
	}

	a.RowID = dbModel.RowID
	return nil
}

func (r *CLIAAdminRepository) GetByID(ctx context.Context, id int64) (*clia.Admin, error) {
	var dbModel models.CLIAAdminModel
	err := r.db.DB.WithContext(ctx).Where("row_id = ?", id).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, clia.ErrAdminNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get CLIA admin: %w", err)
	}

	return toAdminEntity(&dbModel), nil
}

func (r *CLIAAdminRepository) GetByUserID(ctx context.Context, userID string) (*clia.Admin, error) {
	var dbModel models.CLIAAdminModel
	err := r.db.DB.WithContext(ctx).Where("user_id = ?", userID).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, clia.ErrAdminNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get CLIA admin by user: %w", err)
	}

	return toAdminEntity(&dbModel), nil
}

func (r *CLIAAdminRepository) Update(ctx context.Context, a *clia.Admin) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.CLIAAdminModel{}).
		Where("row_id = ?", a.RowID).
		Updates(map[string]interface{}{
			"user_id":              a.UserID,
			"last_update_datetime": a.LastUpdateDatetime,
			"last_update_user":     a.LastUpdateUser,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update CLIA admin: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return clia.ErrAdminNotFound
	}

	return nil
}

func (r *CLIAAdminRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.DB.WithContext(ctx).
		Where("row_id = ?", id).
		Delete(&models.CLIAAdminModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete CLIA admin: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return clia.ErrAdminNotFound
	}

	return nil
}

func (r *CLIAAdminRepository) List(ctx context.Context) ([]*clia.Admin, error) {
	var dbModels []models.CLIAAdminModel
	err := r.db.DB.WithContext(ctx).Order("user_id").Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list CLIA admins: %w", err)
	}

	admins := make([]*clia.Admin, len(dbModels))
	for i := range dbModels {
		admins[i] = toAdminEntity(&dbModels[i])
	}
	return admins, nil
}

type CLIAMemberRepository struct {
	db *DB
}

func NewCLIAMemberRepository(db *DB) *CLIAMemberRepository {
	return &CLIAMemberRepository{db: db}
}

func (r *CLIAMemberRepository) Create(ctx context.Context, m *clia.Member) error {
	dbModel := &models.CLIAMemberModel{
		UserID:             m.UserID,
		LastUpdateDatetime: m.LastUpdateDatetime,
		LastUpdateUser:     m.LastUpdateUser,
	}
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create CLIA member: %w", err)
	}

	m.RowID = dbModel.RowID
	return nil
}

func (r *CLIAMemberRepository) GetByID(ctx context.Context, id int64) (*clia.Member, error) {
	var dbModel models.CLIAMemberModel
	err := r.db.DB.WithContext(ctx).Where("row_id = ?", id).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, clia.ErrMemberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get CLIA member: %w", err)
	}

	return toMemberEntity(&dbModel), nil
}

func (r *CLIAMemberRepository) GetByUserID(ctx context.Context, userID string) (*clia.Member, error) {
	var dbModel models.CLIAMemberModel
	err := r.db.DB.WithContext(ctx).Where("user_id = ?", userID).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, clia.ErrMemberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get CLIA member by user: %w", err)
	}

	return toMemberEntity(&dbModel), nil
}

func (r *CLIAMemberRepository) Update(ctx context.Context, m *clia.Member) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.CLIAMemberModel{}).
		Where("row_id = ?", m.RowID).
		Updates(map[string]interface{}{
			"user_id":              m.UserID,
			"last_update_datetime": m.LastUpdateDatetime,
			"last_update_user":     m.LastUpdateUser,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update CLIA member: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return clia.ErrMemberNotFound
	}

	return nil
}

func (r *CLIAMemberRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.DB.WithContext(ctx).
		Where("row_id = ?", id).
		Delete(&models.CLIAMemberModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete CLIA member: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return clia.ErrMemberNotFound
	}

	return nil
}

func (r *CLIAMemberRepository) List(ctx context.Context) ([]*clia.Member, error) {
	var dbModels []models.CLIAMemberModel
	err := r.db.DB.WithContext(ctx).Order("user_id").Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list CLIA members: %w", err)
	}

	members := make([]*clia.Member, len(dbModels))
	for i := range dbModels {
		members[i] = toMemberEntity(&dbModels[i])
	}
	return members, nil
}

func toAdminEntity(m *models.CLIAAdminModel) *clia.Admin {
	return &clia.Admin{
		RowID:              m.RowID,
		UserID:             m.UserID,
		LastUpdateDatetime: m.LastUpdateDatetime,
		LastUpdateUser:     m.LastUpdateUser,
	}
}

func toMemberEntity(m *models.CLIAMemberModel) *clia.Member {
	return &clia.Member{
		RowID:              m.RowID,
		UserID:             m.UserID,
		LastUpdateDatetime: m.LastUpdateDatetime,
		LastUpdateUser:     m.LastUpdateUser,
	}
}
