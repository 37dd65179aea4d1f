package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"package-intake/internal/domain/reference"
	"package-intake/internal/domain/shipment"
	"package-intake/internal/infrastructure/database/postgres/models"

	"gorm.io/gorm"
)

type ShipmentRepository struct {
	db *DB
}

func NewShipmentRepository(db *DB) *ShipmentRepository {
	return &ShipmentRepository{db: db}
}

func (r *ShipmentRepository) Create(ctx context.Context, s *shipment.Shipment) error {
	dbModel := toShipmentModel(s)
	if err := r.db.DB.WithContext(ctx).Omit("ShipmentType").Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create shipment: %w", err)
	}

	s.RowID = dbModel.RowID
	return nil
}

func (r *ShipmentRepository) GetByID(ctx context.Context, id int64) (*shipment.Shipment, error) {
	var dbModel models.ShipmentModel
	err := r.db.DB.WithContext(ctx).
		Preload("ShipmentType").
		Where("row_id = ?", id).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shipment.ErrShipmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shipment: %w", err)
	}

	return toShipmentEntity(&dbModel), nil
}

func (r *ShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	dbModel := toShipmentModel(s)

	result := r.db.DB.WithContext(ctx).
		Model(&models.ShipmentModel{}).
		Where("row_id = ?", s.RowID).
		Updates(map[string]interface{}{
			"client":                 dbModel.Client,
			"tracking_number":        dbModel.TrackingNumber,
			"scanned_number":         dbModel.ScannedNumber,
			"status":                 dbModel.Status,
			"email_id":               dbModel.EmailID,
			"order_number":           dbModel.OrderNumber,
			"ship_date":              dbModel.ShipDate,
			"lab":                    dbModel.Lab,
			"weight":                 dbModel.Weight,
			"number_of_samples":      dbModel.NumberOfSamples,
			"pickup_time":            dbModel.PickupTime,
			"pickup_time_2":          dbModel.PickupTime2,
			"email_receive_datetime": dbModel.EmailReceiveDatetime,
			"last_update_datetime":   dbModel.LastUpdateDatetime,
			"scan_time":              dbModel.ScanTime,
			"scan_user":              dbModel.ScanUser,
			"client_id":              dbModel.ClientID,
			"shipment_type":          dbModel.ShipmentTypeID,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update shipment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shipment.ErrShipmentNotFound
	}

	return nil
}

func (r *ShipmentRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.DB.WithContext(ctx).
		Where("row_id = ?", id).
		Delete(&models.ShipmentModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete shipment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shipment.ErrShipmentNotFound
	}

	return nil
}

func (r *ShipmentRepository) List(ctx context.Context) ([]*shipment.Shipment, error) {
	var dbModels []models.ShipmentModel
	err := r.db.DB.WithContext(ctx).
		Preload("ShipmentType").
		Order("row_id DESC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list shipments: %w", err)
	}

	return toShipmentEntities(dbModels), nil
}

func (r *ShipmentRepository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*shipment.Shipment, error) {
	return r.getOne(ctx, "tracking_number = ?", trackingNumber)
}

func (r *ShipmentRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (*shipment.Shipment, error) {
	return r.getOne(ctx, "order_number = ?", orderNumber)
}

func (r *ShipmentRepository) GetByScannedNumber(ctx context.Context, scannedNumber string) (*shipment.Shipment, error) {
	return r.getOne(ctx, "scanned_number = ?", scannedNumber)
}

func (r *ShipmentRepository) ListByClient(ctx context.Context, client string) ([]*shipment.Shipment, error) {
	return r.listWhere(ctx, "client = ?", client)
}

func (r *ShipmentRepository) ListByStatus(ctx context.Context, status string) ([]*shipment.Shipment, error) {
	return r.listWhere(ctx, "status = ?", status)
}

func (r *ShipmentRepository) ListScanned(ctx context.Context) ([]*shipment.Shipment, error) {
	return r.listWhere(ctx, "scan_user IS NOT NULL AND scan_user <> ''")
}

func (r *ShipmentRepository) ListUnscanned(ctx context.Context) ([]*shipment.Shipment, error) {
	return r.listWhere(ctx, "scan_user IS NULL OR scan_user = ''")
}

// FindTrackingInScanned matches shipments whose tracking number appears
// inside the scanned string. The highest row id wins.
func (r *ShipmentRepository) FindTrackingInScanned(ctx context.Context, scannedNumber string) (*shipment.Shipment, error) {
	return r.getOne(ctx,
		"? LIKE '%' || tracking_number || '%' AND tracking_number <> ''",
		scannedNumber)
}

func (r *ShipmentRepository) ListTrackingInScanned(ctx context.Context, scannedNumber string) ([]*shipment.Shipment, error) {
	return r.listWhere(ctx,
		"? LIKE '%' || tracking_number || '%' AND tracking_number <> ''",
		scannedNumber)
}

func (r *ShipmentRepository) FindTrackingInScannedForClient(ctx context.Context, scannedNumber string, clientID int64) (*shipment.Shipment, error) {
	return r.getOne(ctx,
		"? LIKE '%' || tracking_number || '%' AND tracking_number <> '' AND client_id = ?",
		scannedNumber, clientID)
}

func (r *ShipmentRepository) GetByTrackingNumberForClient(ctx context.Context, trackingNumber string, clientID int64) (*shipment.Shipment, error) {
	return r.getOne(ctx,
		"tracking_number = ? AND tracking_number <> '' AND client_id = ?",
		trackingNumber, clientID)
}

func (r *ShipmentRepository) ListToday(ctx context.Context) ([]*shipment.Shipment, error) {
	return r.listWhere(ctx, "DATE(scan_time) = CURRENT_DATE")
}

func (r *ShipmentRepository) ListByScanDate(ctx context.Context, date time.Time) ([]*shipment.Shipment, error) {
	return r.listWhere(ctx, "DATE(scan_time) = ?", date.Format("2006-01-02"))
}

func (r *ShipmentRepository) ListByScanDateRange(ctx context.Context, from, to time.Time) ([]*shipment.Shipment, error) {
	return r.listWhere(ctx, "DATE(scan_time) BETWEEN ? AND ?",
		from.Format("2006-01-02"), to.Format("2006-01-02"))
}

func (r *ShipmentRepository) ListRecent(ctx context.Context, limit int) ([]*shipment.Shipment, error) {
	var dbModels []models.ShipmentModel
	err := r.db.DB.WithContext(ctx).
		Preload("ShipmentType").
		Order("row_id DESC").
		Limit(limit).
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent shipments: %w", err)
	}

	return toShipmentEntities(dbModels), nil
}

// Search applies the filter as a conjunction of optional predicates: ILIKE
// substring matches on the string fields and inclusive bounds on the
// calendar-date portion of the timestamp fields.
func (r *ShipmentRepository) Search(ctx context.Context, filter *shipment.SearchFilter) ([]*shipment.Shipment, int64, error) {
	var dbModels []models.ShipmentModel
	var total int64

	db := r.db.DB.WithContext(ctx).Model(&models.ShipmentModel{})

	if filter.TrackingNumber != nil {
		db = db.Where("tracking_number ILIKE ?", contains(*filter.TrackingNumber))
	}
	if filter.ScannedNumber != nil {
		db = db.Where("scanned_number ILIKE ?", contains(*filter.ScannedNumber))
	}
	if filter.Status != nil {
		db = db.Where("status ILIKE ?", contains(*filter.Status))
	}
	if filter.OrderNumber != nil {
		db = db.Where("order_number ILIKE ?", contains(*filter.OrderNumber))
	}
	if filter.Lab != nil {
		db = db.Where("lab ILIKE ?", contains(*filter.Lab))
	}
	if filter.ScanUser != nil {
		db = db.Where("scan_user ILIKE ?", contains(*filter.ScanUser))
	}

	if filter.ShipDateFrom != nil {
		db = db.Where("ship_date >= ?", filter.ShipDateFrom.Format("2006-01-02"))
	}
	if filter.ShipDateTo != nil {
		db = db.Where("ship_date <= ?", filter.ShipDateTo.Format("2006-01-02"))
	}
	if filter.ScanDateFrom != nil {
		db = db.Where("DATE(scan_time) >= ?", filter.ScanDateFrom.Format("2006-01-02"))
	}
	if filter.ScanDateTo != nil {
		db = db.Where("DATE(scan_time) <= ?", filter.ScanDateTo.Format("2006-01-02"))
	}
	if filter.EmailReceiveDateFrom != nil {
		db = db.Where("DATE(email_receive_datetime) >= ?", filter.EmailReceiveDateFrom.Format("2006-01-02"))
	}
	if filter.EmailReceiveDateTo != nil {
		db = db.Where("DATE(email_receive_datetime) <= ?", filter.EmailReceiveDateTo.Format("2006-01-02"))
	}
	if filter.LastUpdateDateFrom != nil {
		db = db.Where("DATE(last_update_datetime) >= ?", filter.LastUpdateDateFrom.Format("2006-01-02"))
	}
	if filter.LastUpdateDateTo != nil {
		db = db.Where("DATE(last_update_datetime) <= ?", filter.LastUpdateDateTo.Format("2006-01-02"))
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count shipments: %w", err)
	}

	err := db.Preload("ShipmentType").
		Order("row_id DESC").
		Limit(filter.Size).
		Offset(filter.Page * filter.Size).
		Find(&dbModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search shipments: %w", err)
	}

	return toShipmentEntities(dbModels), total, nil
}

func (r *ShipmentRepository) DistinctScanUsers(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, "scan_user")
}

func (r *ShipmentRepository) DistinctStatuses(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, "status")
}

func (r *ShipmentRepository) distinctColumn(ctx context.Context, column string) ([]string, error) {
	var values []string
	err := r.db.DB.WithContext(ctx).
		Model(&models.ShipmentModel{}).
		Distinct(column).
		Where(column+" IS NOT NULL AND "+column+" <> ''").
		Order(column).
		Pluck(column, &values).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load distinct %s values: %w", column, err)
	}

	return values, nil
}

func (r *ShipmentRepository) getOne(ctx context.Context, query string, args ...interface{}) (*shipment.Shipment, error) {
	var dbModel models.ShipmentModel
	err := r.db.DB.WithContext(ctx).
		Preload("ShipmentType").
		Where(query, args...).
		Order("row_id DESC").
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shipment.ErrShipmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shipment: %w", err)
	}

	return toShipmentEntity(&dbModel), nil
}

func (r *ShipmentRepository) listWhere(ctx context.Context, query string, args ...interface{}) ([]*shipment.Shipment, error) {
	var dbModels []models.ShipmentModel
	err := r.db.DB.WithContext(ctx).
		Preload("ShipmentType").
		Where(query, args...).
		Order("row_id DESC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list shipments: %w", err)
	}

	return toShipmentEntities(dbModels), nil
}

func contains(term string) string {
	return "%" + term + "%"
}

func toShipmentModel(s *shipment.Shipment) *models.ShipmentModel {
	m := &models.ShipmentModel{
		RowID:                s.RowID,
		Client:               s.Client,
		TrackingNumber:       s.TrackingNumber,
		ScannedNumber:        s.ScannedNumber,
		Status:               s.Status,
		EmailID:              s.EmailID,
		OrderNumber:          s.OrderNumber,
		ShipDate:             s.ShipDate,
		Lab:                  s.Lab,
		Weight:               s.Weight,
		NumberOfSamples:      s.NumberOfSamples,
		PickupTime:           s.PickupTime,
		PickupTime2:          s.PickupTime2,
		EmailReceiveDatetime: s.EmailReceiveDatetime,
		LastUpdateDatetime:   s.LastUpdateDatetime,
		ScanTime:             s.ScanTime,
		ScanUser:             s.ScanUser,
		ClientID:             s.ClientID,
	}

	if s.ShipmentType.HasID() {
		typeID := s.ShipmentType.RowID
		m.ShipmentTypeID = &typeID
	}

	return m
}

func toShipmentEntity(m *models.ShipmentModel) *shipment.Shipment {
	s := &shipment.Shipment{
		RowID:                m.RowID,
		Client:               m.Client,
		TrackingNumber:       m.TrackingNumber,
		ScannedNumber:        m.ScannedNumber,
		Status:               m.Status,
		EmailID:              m.EmailID,
		OrderNumber:          m.OrderNumber,
		ShipDate:             m.ShipDate,
		Lab:                  m.Lab,
		Weight:               m.Weight,
		NumberOfSamples:      m.NumberOfSamples,
		PickupTime:           m.PickupTime,
		PickupTime2:          m.PickupTime2,
		EmailReceiveDatetime: m.EmailReceiveDatetime,
		LastUpdateDatetime:   m.LastUpdateDatetime,
		ScanTime:             m.ScanTime,
		ScanUser:             m.ScanUser,
		ClientID:             m.ClientID,
	}

	if m.ShipmentType != nil {
		s.ShipmentType = &reference.Reference{
			RowID:       m.ShipmentType.RowID,
			Type:        m.ShipmentType.Type,
			Value:       m.ShipmentType.Value,
			Description: m.ShipmentType.Description,
		}
	}

	return s
}

func toShipmentEntities(dbModels []models.ShipmentModel) []*shipment.Shipment {
	shipments := make([]*shipment.Shipment, len(dbModels))
	for i := range dbModels {
		shipments[i] = toShipmentEntity(&dbModels[i])
	}
	return shipments
}
