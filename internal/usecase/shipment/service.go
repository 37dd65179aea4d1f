package shipment

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	domainReference "package-intake/internal/domain/reference"
	domainShipment "package-intake/internal/domain/shipment"
	"package-intake/internal/logger"
	appErrors "package-intake/pkg/errors"
	"package-intake/pkg/utils"

	"go.uber.org/zap"
)

const (
	// DefaultPageSize is applied when a search request carries no usable size.
	DefaultPageSize = 20
	// MaxPageSize caps a single search page.
	MaxPageSize = 1000
	// MaxRecentLimit caps the recent-shipments listing.
	MaxRecentLimit = 20000
)

// ReferenceResolver resolves shipment type references for the intake
// workflow.
type ReferenceResolver interface {
	GetByID(ctx context.Context, id int64) (*domainReference.Reference, error)
	Lookup(ctx context.Context, refType, value string) (*domainReference.Reference, error)
	FindOrCreate(ctx context.Context, refType, value, description string) (*domainReference.Reference, error)
}

// Service implements inbound shipment use cases
type Service struct {
	shipmentRepo domainShipment.Repository
	references   ReferenceResolver

	now func() time.Time

	distinctMu sync.RWMutex
	scanUsers  []string
	statuses   []string
	distinctOK bool
}

// NewService creates a new shipment service
func NewService(shipmentRepo domainShipment.Repository, references ReferenceResolver) *Service {
	return &Service{
		shipmentRepo: shipmentRepo,
		references:   references,
		now:          time.Now,
	}
}

// Create records a new inbound shipment. The shipment type is resolved
// against the reference store without creating new rows; scan time defaults
// to now when the request carries none.
func (s *Service) Create(ctx context.Context, req *ShipmentRequest) (*ShipmentResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	shipDate, err := req.shipDate()
	if err != nil {
		return nil, err
	}

	shipmentType, err := s.resolveShipmentType(ctx, req.ShipmentType, false)
	if err != nil {
		return nil, err
	}

	now := s.now()
	entity := s.toEntity(req, shipDate)
	entity.ShipmentType = shipmentType
	entity.LastUpdateDatetime = &now
	if entity.ScanTime == nil {
		entity.ScanTime = &now
	}

	if err := s.shipmentRepo.Create(ctx, entity); err != nil {
		return nil, fmt.Errorf("failed to create shipment: %w", err)
	}

	s.invalidateDistinct()

	logger.Info("shipment created",
		zap.Int64("row_id", entity.RowID),
		zap.String("tracking_number", entity.TrackingNumber),
		zap.String("client", entity.Client))

	return toShipmentResponse(entity), nil
}

// Update replaces an existing shipment. A stored scan time survives when the
// request carries none; the path id always wins over any id in the body.
func (s *Service) Update(ctx context.Context, id int64, req *ShipmentRequest) (*ShipmentResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	existing, err := s.shipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	shipDate, err := req.shipDate()
	if err != nil {
		return nil, err
	}

	shipmentType, err := s.resolveShipmentType(ctx, req.ShipmentType, true)
	if err != nil {
		return nil, err
	}

	now := s.now()
	entity := s.toEntity(req, shipDate)
	entity.RowID = id
	entity.ShipmentType = shipmentType
	entity.LastUpdateDatetime = &now
	if entity.ScanTime == nil {
		entity.ScanTime = existing.ScanTime
	}

	if err := s.shipmentRepo.Update(ctx, entity); err != nil {
		return nil, err
	}

	s.invalidateDistinct()

	return toShipmentResponse(entity), nil
}

// RecordScan stamps scan details onto an existing shipment.
func (s *Service) RecordScan(ctx context.Context, id int64, req *ScanUpdateRequest) (*ShipmentResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	entity, err := s.shipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if req.ScannedNumber != "" {
		entity.ScannedNumber = req.ScannedNumber
	}
	if req.Status != "" {
		entity.Status = req.Status
	}
	entity.ScanUser = req.ScanUser
	entity.ScanTime = &now
	entity.LastUpdateDatetime = &now

	if err := s.shipmentRepo.Update(ctx, entity); err != nil {
		return nil, err
	}

	s.invalidateDistinct()

	logger.Info("shipment scanned",
		zap.Int64("row_id", entity.RowID),
		zap.String("scan_user", entity.ScanUser))

	return toShipmentResponse(entity), nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*ShipmentResponse, error) {
	entity, err := s.shipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toShipmentResponse(entity), nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.shipmentRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateDistinct()
	return nil
}

func (s *Service) List(ctx context.Context) ([]*ShipmentResponse, error) {
	entities, err := s.shipmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toShipmentResponses(entities), nil
}

func (s *Service) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*ShipmentResponse, error) {
	entity, err := s.shipmentRepo.GetByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, err
	}
	return toShipmentResponse(entity), nil
}

func (s *Service) GetByOrderNumber(ctx context.Context, orderNumber string) (*ShipmentResponse, error) {
	entity, err := s.shipmentRepo.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	return toShipmentResponse(entity), nil
}

func (s *Service) ListByClient(ctx context.Context, client string) ([]*ShipmentResponse, error) {
	entities, err := s.shipmentRepo.ListByClient(ctx, client)
	if err != nil {
		return nil, err
	}
	return toShipmentResponses(entities), nil
}

func (s *Service) ListByStatus(ctx context.Context, status string) ([]*ShipmentResponse, error) {
	entities, err := s.shipmentRepo.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return toShipmentResponses(entities), nil
}

func (s *Service) ListScanned(ctx context.Context) ([]*ShipmentResponse, error) {
	entities, err := s.shipmentRepo.ListScanned(ctx)
	if err != nil {
		return nil, err
	}
	return toShipmentResponses(entities), nil
}

func (s *Service) ListUnscanned(ctx context.Context) ([]*ShipmentResponse, error) {
	entities, err := s.shipmentRepo.ListUnscanned(ctx)
	if err != nil {
		return nil, err
	}
	return toShipmentResponses(entities), nil
}

// LookupByScan finds the shipment matching a scanned barcode. An exact match
// on the stored scanned number wins; otherwise, when the scanned string is
// long enough to be a real carrier barcode rather than a short internal code,
// it falls back to shipments whose tracking number appears inside the scanned
// string.
func (s *Service) LookupByScan(ctx context.Context, scannedNumber string) (*ShipmentResponse, error) {
	entity, err := s.shipmentRepo.GetByScannedNumber(ctx, scannedNumber)
	if err == nil {
		return toShipmentResponse(entity), nil
	}
	if !errors.Is(err, domainShipment.ErrShipmentNotFound) {
		return nil, err
	}

	if len(scannedNumber) <= domainShipment.ScanFallbackMinLength {
		return nil, domainShipment.ErrShipmentNotFound
	}

	entity, err = s.shipmentRepo.FindTrackingInScanned(ctx, scannedNumber)
	if err != nil {
		return nil, err
	}
	return toShipmentResponse(entity), nil
}

// ListByScanMatches returns every shipment whose tracking number appears
// inside the scanned string, newest first.
func (s *Service) ListByScanMatches(ctx context.Context, scannedNumber string) ([]*ShipmentResponse, error) {
	entities, err := s.shipmentRepo.ListTrackingInScanned(ctx, scannedNumber)
	if err != nil {
		return nil, err
	}
	return toShipmentResponses(entities), nil
}

// LookupByScanForClient finds one client's shipment whose tracking number
// appears inside the scanned string. Unlike LookupByScan it never matches on
// the stored scanned number; short scans are rejected outright so an internal
// code cannot substring-match an unrelated tracking number.
func (s *Service) LookupByScanForClient(ctx context.Context, scannedNumber string, clientID int64) (*ShipmentResponse, error) {
	if len(scannedNumber) <= domainShipment.ScanFallbackMinLength {
		return nil, domainShipment.ErrShipmentNotFound
	}

	entity, err := s.shipmentRepo.FindTrackingInScannedForClient(ctx, scannedNumber, clientID)
	if err != nil {
		return nil, err
	}
	return toShipmentResponse(entity), nil
}

// LookupByTrackingForClient finds one client's shipment by exact tracking
// number. There is no scanned-string fallback here: a tracking number either
// matches or it doesn't.
func (s *Service) LookupByTrackingForClient(ctx context.Context, trackingNumber string, clientID int64) (*ShipmentResponse, error) {
	entity, err := s.shipmentRepo.GetByTrackingNumberForClient(ctx, trackingNumber, clientID)
	if err != nil {
		return nil, err
	}
	return toShipmentResponse(entity), nil
}

// Search runs a multi-criteria page query. Out-of-range paging values are
// coerced rather than rejected.
func (s *Service) Search(ctx context.Context, filter *domainShipment.SearchFilter) (*SearchResponse, error) {
	if filter.Page < 0 {
		filter.Page = 0
	}
	if filter.Size <= 0 || filter.Size > MaxPageSize {
		filter.Size = DefaultPageSize
	}

	if err := validateDateBounds(filter); err != nil {
		return nil, err
	}

	entities, total, err := s.shipmentRepo.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search shipments: %w", err)
	}

	return newSearchResponse(entities, total, filter.Page, filter.Size), nil
}

func validateDateBounds(filter *domainShipment.SearchFilter) error {
	ranges := []struct {
		name     string
		from, to *time.Time
	}{
		{"shipDate", filter.ShipDateFrom, filter.ShipDateTo},
		{"scanDate", filter.ScanDateFrom, filter.ScanDateTo},
		{"emailReceiveDate", filter.EmailReceiveDateFrom, filter.EmailReceiveDateTo},
		{"lastUpdateDate", filter.LastUpdateDateFrom, filter.LastUpdateDateTo},
	}
	for _, r := range ranges {
		if r.from != nil && r.to != nil && r.to.Before(*r.from) {
			return fmt.Errorf("%w: %s", appErrors.ErrInvalidDateRange, r.name)
		}
	}
	return nil
}

func (s *Service) ListToday(ctx context.Context) ([]*ShipmentResponse, error) {
	entities, err := s.shipmentRepo.ListToday(ctx)
	if err != nil {
		return nil, err
	}
	return toShipmentResponses(entities), nil
}

func (s *Service) ListByScanDate(ctx context.Context, date time.Time) ([]*ShipmentResponse, error) {
	entities, err := s.shipmentRepo.ListByScanDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return toShipmentResponses(entities), nil
}

func (s *Service) ListByScanDateRange(ctx context.Context, from, to time.Time) ([]*ShipmentResponse, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: scanDate", appErrors.ErrInvalidDateRange)
	}
	entities, err := s.shipmentRepo.ListByScanDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return toShipmentResponses(entities), nil
}

func (s *Service) ListRecent(ctx context.Context, limit int) ([]*ShipmentResponse, error) {
	if limit <= 0 || limit > MaxRecentLimit {
		return nil, fmt.Errorf("%w: %d", appErrors.ErrInvalidLimit, limit)
	}
	entities, err := s.shipmentRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	return toShipmentResponses(entities), nil
}

// ScanUsers returns the distinct scan users seen across all shipments. The
// result is cached until the next shipment write.
func (s *Service) ScanUsers(ctx context.Context) ([]string, error) {
	users, _, err := s.distinctValues(ctx)
	return users, err
}

// Statuses returns the distinct statuses seen across all shipments, cached
// the same way as ScanUsers.
func (s *Service) Statuses(ctx context.Context) ([]string, error) {
	_, statuses, err := s.distinctValues(ctx)
	return statuses, err
}

func (s *Service) distinctValues(ctx context.Context) ([]string, []string, error) {
	s.distinctMu.RLock()
	if s.distinctOK {
		users, statuses := s.scanUsers, s.statuses
		s.distinctMu.RUnlock()
		return users, statuses, nil
	}
	s.distinctMu.RUnlock()

	return s.loadDistinct(ctx)
}

// RefreshDistinctValues reloads the distinct caches from the store. The
// background worker calls this on a schedule so external writers to the same
// tables eventually show up.
func (s *Service) RefreshDistinctValues(ctx context.Context) error {
	_, _, err := s.loadDistinct(ctx)
	return err
}

func (s *Service) loadDistinct(ctx context.Context) ([]string, []string, error) {
	users, err := s.shipmentRepo.DistinctScanUsers(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load distinct scan users: %w", err)
	}
	statuses, err := s.shipmentRepo.DistinctStatuses(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load distinct statuses: %w", err)
	}

	s.distinctMu.Lock()
	s.scanUsers = users
	s.statuses = statuses
	s.distinctOK = true
	s.distinctMu.Unlock()

	return users, statuses, nil
}

func (s *Service) invalidateDistinct() {
	s.distinctMu.Lock()
	s.distinctOK = false
	s.distinctMu.Unlock()
}

// resolveShipmentType maps the request's shipment type to a stored reference
// row. An explicit id is trusted as a lookup only; a type/value pair is
// looked up, and on the update path created when absent. Anything else
// resolves to no type at all.
func (s *Service) resolveShipmentType(ctx context.Context, req *ShipmentTypeRequest, createMissing bool) (*domainReference.Reference, error) {
	if req == nil {
		return nil, nil
	}

	if req.ID != nil {
		ref, err := s.references.GetByID(ctx, *req.ID)
		if errors.Is(err, domainReference.ErrReferenceNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return ref, nil
	}

	if req.Type != "" && req.Value != "" {
		if createMissing {
			return s.references.FindOrCreate(ctx, req.Type, req.Value, req.Description)
		}
		return s.references.Lookup(ctx, req.Type, req.Value)
	}

	return nil, nil
}

func (s *Service) toEntity(req *ShipmentRequest, shipDate *time.Time) *domainShipment.Shipment {
	return &domainShipment.Shipment{
		Client:               utils.SanitizeString(req.Client),
		TrackingNumber:       utils.SanitizeString(req.TrackingNumber),
		ScannedNumber:        utils.SanitizeString(req.ScannedNumber),
		Status:               utils.SanitizeString(req.Status),
		EmailID:              utils.SanitizeString(req.EmailID),
		OrderNumber:          utils.SanitizeString(req.OrderNumber),
		ShipDate:             shipDate,
		Lab:                  utils.SanitizeString(req.Lab),
		Weight:               utils.SanitizeString(req.Weight),
		NumberOfSamples:      utils.SanitizeString(req.NumberOfSamples),
		PickupTime:           utils.SanitizeString(req.PickupTime),
		PickupTime2:          utils.SanitizeString(req.PickupTime2),
		EmailReceiveDatetime: req.EmailReceiveDatetime,
		ScanTime:             req.ScanTime,
		ScanUser:             utils.SanitizeString(req.ScanUser),
		ClientID:             req.ClientID,
	}
}
