package shipment

import "time"

// SearchFilter is a conjunction of optional predicates. A nil string field
// leaves that column unconstrained; a present one requires a
// case-insensitive substring match. Date bounds are inclusive and apply to
// the calendar-date portion of the column.
type SearchFilter struct {
	TrackingNumber *string
	ScannedNumber  *string
	Status         *string
	OrderNumber    *string
	Lab            *string
	ScanUser       *string

	ShipDateFrom *time.Time
	ShipDateTo   *time.Time

	ScanDateFrom *time.Time
	ScanDateTo   *time.Time

	EmailReceiveDateFrom *time.Time
	EmailReceiveDateTo   *time.Time

	LastUpdateDateFrom *time.Time
	LastUpdateDateTo   *time.Time

	// Page is 0-indexed. The boundary layer coerces out-of-range values
	// before the filter reaches the store.
	Page int
	Size int
}
