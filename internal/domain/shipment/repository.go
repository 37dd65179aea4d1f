package shipment

import (
	"context"
	"time"
)

// Repository defines the persistence operations for shipments. Search
// results and all listings are ordered by row id descending.
type Repository interface {
	Create(ctx context.Context, s *Shipment) error
	GetByID(ctx context.Context, id int64) (*Shipment, error)
	Update(ctx context.Context, s *Shipment) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*Shipment, error)

	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*Shipment, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (*Shipment, error)
	GetByScannedNumber(ctx context.Context, scannedNumber string) (*Shipment, error)
	ListByClient(ctx context.Context, client string) ([]*Shipment, error)
	ListByStatus(ctx context.Context, status string) ([]*Shipment, error)

	// ListScanned returns shipments a scan user has touched; ListUnscanned
	// returns the ones still waiting on a scan.
	ListScanned(ctx context.Context) ([]*Shipment, error)
	ListUnscanned(ctx context.Context) ([]*Shipment, error)

	// FindTrackingInScanned returns the highest-id shipment whose tracking
	// number is a substring of the scanned string. ListTrackingInScanned
	// returns every such shipment. Neither applies the length gate; that
	// policy lives in the workflow layer.
	FindTrackingInScanned(ctx context.Context, scannedNumber string) (*Shipment, error)
	ListTrackingInScanned(ctx context.Context, scannedNumber string) ([]*Shipment, error)
	FindTrackingInScannedForClient(ctx context.Context, scannedNumber string, clientID int64) (*Shipment, error)
	GetByTrackingNumberForClient(ctx context.Context, trackingNumber string, clientID int64) (*Shipment, error)

	ListToday(ctx context.Context) ([]*Shipment, error)
	ListByScanDate(ctx context.Context, date time.Time) ([]*Shipment, error)
	ListByScanDateRange(ctx context.Context, from, to time.Time) ([]*Shipment, error)
	ListRecent(ctx context.Context, limit int) ([]*Shipment, error)

	Search(ctx context.Context, filter *SearchFilter) ([]*Shipment, int64, error)

	DistinctScanUsers(ctx context.Context) ([]string, error)
	DistinctStatuses(ctx context.Context) ([]string, error)
}
