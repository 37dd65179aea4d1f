package shipment

import "errors"

var (
	ErrShipmentNotFound = errors.New("shipment not found")
)
