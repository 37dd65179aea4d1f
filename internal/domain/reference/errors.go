package reference

import "errors"

var (
	ErrReferenceNotFound = errors.New("shipment reference not found")
)
