package shipment

import (
	"time"

	"package-intake/internal/domain/reference"
)

// Shipment represents one inbound package intake event. String fields mirror
// the free-text columns captured by the intake scanners; weight and sample
// counts arrive as raw label text and are stored verbatim.
type Shipment struct {
	RowID int64

	Client         string
	TrackingNumber string
	ScannedNumber  string
	Status         string
	EmailID        string
	OrderNumber    string

	ShipDate *time.Time

	Lab             string
	Weight          string
	NumberOfSamples string
	PickupTime      string
	PickupTime2     string

	EmailReceiveDatetime *time.Time
	LastUpdateDatetime   *time.Time
	ScanTime             *time.Time
	ScanUser             string

	// ClientID is an optional foreign key into the clients table; the free
	// text Client field above is kept alongside it and is not resolved here.
	ClientID *int64

	// ShipmentType is resolved against the reference table on every write.
	// A persisted shipment never points at an unsaved reference.
	ShipmentType *reference.Reference
}

// ScanFallbackMinLength is the minimum scanned-string length (exclusive)
// required before a failed exact scanned-number lookup falls back to
// matching a tracking number embedded in the scanned string. Short scans
// would substring-match far too loosely.
const ScanFallbackMinLength = 9
