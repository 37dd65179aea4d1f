package postgres

import (
	"context"
	"errors"
	"fmt"

	"package-intake/internal/domain/client"
	"package-intake/internal/infrastructure/database/postgres/models"

	"gorm.io/gorm"
)

type ClientRepository struct {
	db *DB
}

func NewClientRepository(db *DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	dbModel := toClientModel(c)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	c.ID = dbModel.RowID
	return nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*client.Client, error) {
	var dbModel models.ClientModel
	err := r.db.DB.WithContext(ctx).Where("id = ?", id).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, client.ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return toClientEntity(&dbModel), nil
}

func (r *ClientRepository) GetByName(ctx context.Context, name string) (*client.Client, error) {
	var dbModel models.ClientModel
	err := r.db.DB.WithContext(ctx).Where("client = ?", name).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, client.ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client by name: %w", err)
	}

	return toClientEntity(&dbModel), nil
}

func (r *ClientRepository) Update(ctx context.Context, c *client.Client) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.ClientModel{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"client":           c.Name,
			"last_update_time": c.LastUpdateTime,
			"last_update_user": c.LastUpdateUser,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return client.ErrClientNotFound
	}

	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.ClientModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return client.ErrClientNotFound
	}

	return nil
}

func (r *ClientRepository) List(ctx context.Context) ([]*client.Client, error) {
	var dbModels []models.ClientModel
	err := r.db.DB.WithContext(ctx).Order("client").Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	return toClientEntities(dbModels), nil
}

func (r *ClientRepository) ListByLastUpdateUser(ctx context.Context, user string) ([]*client.Client, error) {
	var dbModels []models.ClientModel
	err := r.db.DB.WithContext(ctx).
		Where("last_update_user = ?", user).
		Order("client").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list clients by update user: %w", err)
	}

	return toClientEntities(dbModels), nil
}

func (r *ClientRepository) SearchByName(ctx context.Context, term string) ([]*client.Client, error) {
	var dbModels []models.ClientModel
	err := r.db.DB.WithContext(ctx).
		Where("client ILIKE ?", "%"+term+"%").
		Order("client").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search clients: %w", err)
	}

	return toClientEntities(dbModels), nil
}

func toClientModel(c *client.Client) *models.ClientModel {
	return &models.ClientModel{
		RowID:          c.ID,
		Client:         c.Name,
		LastUpdateTime: c.LastUpdateTime,
		LastUpdateUser: c.LastUpdateUser,
	}
}

func toClientEntity(m *models.ClientModel) *client.Client {
	return &client.Client{
		ID:             m.RowID,
		Name:           m.Client,
		LastUpdateTime: m.LastUpdateTime,
		LastUpdateUser: m.LastUpdateUser,
	}
}

func toClientEntities(dbModels []models.ClientModel) []*client.Client {
	clients := make([]*client.Client, len(dbModels))
	for i := range dbModels {
		clients[i] = toClientEntity(&dbModels[i])
	}
	return clients
}
