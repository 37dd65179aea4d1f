package shipment

import (
	"fmt"
	"math"
	"time"

	domainShipment "package-intake/internal/domain/shipment"
	appErrors "package-intake/pkg/errors"
)

const dateLayout = "2006-01-02"

// ShipmentTypeRequest references an existing reference row by id, or names a
// type/value pair to resolve against the reference store.
type ShipmentTypeRequest struct {
	ID          *int64 `json:"id"`
	Type        string `json:"type"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

// ShipmentRequest carries an inbound shipment for create and update. Dates
// travel as yyyy-MM-dd strings, timestamps as RFC 3339.
type ShipmentRequest struct {
	Client               string               `json:"client" validate:"max=255"`
	TrackingNumber       string               `json:"trackingNumber" validate:"max=255"`
	ScannedNumber        string               `json:"scannedNumber" validate:"max=255"`
	Status               string               `json:"status" validate:"max=100"`
	EmailID              string               `json:"emailId" validate:"max=255"`
	OrderNumber          string               `json:"orderNumber" validate:"max=255"`
	ShipDate             string               `json:"shipDate"`
	Lab                  string               `json:"lab" validate:"max=255"`
	Weight               string               `json:"weight" validate:"max=100"`
	NumberOfSamples      string               `json:"numberOfSamples" validate:"max=100"`
	PickupTime           string               `json:"pickupTime" validate:"max=100"`
	PickupTime2          string               `json:"pickupTime2" validate:"max=100"`
	EmailReceiveDatetime *time.Time           `json:"emailReceiveDatetime"`
	ScanTime             *time.Time           `json:"scanTime"`
	ScanUser             string               `json:"scanUser" validate:"max=255"`
	ClientID             *int64               `json:"clientId"`
	ShipmentType         *ShipmentTypeRequest `json:"shipmentType"`
}

func (r *ShipmentRequest) shipDate() (*time.Time, error) {
	if r.ShipDate == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, r.ShipDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", appErrors.ErrInvalidDate, r.ShipDate)
	}
	return &parsed, nil
}

// SearchRequest is the body form of a multi-criteria search. All fields are
// optional; dates travel as yyyy-MM-dd strings like everywhere else.
type SearchRequest struct {
	TrackingNumber       string `json:"trackingNumber"`
	ScannedNumber        string `json:"scannedNumber"`
	Status               string `json:"status"`
	OrderNumber          string `json:"orderNumber"`
	Lab                  string `json:"lab"`
	ScanUser             string `json:"scanUser"`
	ShipDateFrom         string `json:"shipDateFrom"`
	ShipDateTo           string `json:"shipDateTo"`
	ScanDateFrom         string `json:"scanDateFrom"`
	ScanDateTo           string `json:"scanDateTo"`
	EmailReceiveDateFrom string `json:"emailReceiveDateFrom"`
	EmailReceiveDateTo   string `json:"emailReceiveDateTo"`
	LastUpdateDateFrom   string `json:"lastUpdateDateFrom"`
	LastUpdateDateTo     string `json:"lastUpdateDateTo"`
	Page                 int    `json:"page"`
	Size                 int    `json:"size"`
}

// Filter converts the request into a store filter, rejecting malformed dates.
func (r *SearchRequest) Filter() (*domainShipment.SearchFilter, error) {
	filter := &domainShipment.SearchFilter{
		TrackingNumber: optionalString(r.TrackingNumber),
		ScannedNumber:  optionalString(r.ScannedNumber),
		Status:         optionalString(r.Status),
		OrderNumber:    optionalString(r.OrderNumber),
		Lab:            optionalString(r.Lab),
		ScanUser:       optionalString(r.ScanUser),
		Page:           r.Page,
		Size:           r.Size,
	}

	bounds := []struct {
		raw  string
		dest **time.Time
	}{
		{r.ShipDateFrom, &filter.ShipDateFrom},
		{r.ShipDateTo, &filter.ShipDateTo},
		{r.ScanDateFrom, &filter.ScanDateFrom},
		{r.ScanDateTo, &filter.ScanDateTo},
		{r.EmailReceiveDateFrom, &filter.EmailReceiveDateFrom},
		{r.EmailReceiveDateTo, &filter.EmailReceiveDateTo},
		{r.LastUpdateDateFrom, &filter.LastUpdateDateFrom},
		{r.LastUpdateDateTo, &filter.LastUpdateDateTo},
	}
	for _, b := range bounds {
		if b.raw == "" {
			continue
		}
		parsed, err := time.Parse(dateLayout, b.raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", appErrors.ErrInvalidDate, b.raw)
		}
		*b.dest = &parsed
	}

	return filter, nil
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// ScanUpdateRequest records a barcode scan against an existing shipment.
type ScanUpdateRequest struct {
	ScannedNumber string `json:"scannedNumber" validate:"max=255"`
	Status        string `json:"status" validate:"max=100"`
	ScanUser      string `json:"scanUser" validate:"required,max=255"`
}

// ShipmentTypeResponse mirrors the reference row attached to a shipment.
type ShipmentTypeResponse struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// ShipmentResponse is the wire form of an inbound shipment.
type ShipmentResponse struct {
	RowID                int64                 `json:"rowId"`
	Client               string                `json:"client"`
	TrackingNumber       string                `json:"trackingNumber"`
	ScannedNumber        string                `json:"scannedNumber"`
	Status               string                `json:"status"`
	EmailID              string                `json:"emailId"`
	OrderNumber          string                `json:"orderNumber"`
	ShipDate             string                `json:"shipDate,omitempty"`
	Lab                  string                `json:"lab"`
	Weight               string                `json:"weight"`
	NumberOfSamples      string                `json:"numberOfSamples"`
	PickupTime           string                `json:"pickupTime"`
	PickupTime2          string                `json:"pickupTime2"`
	EmailReceiveDatetime *time.Time            `json:"emailReceiveDatetime"`
	LastUpdateDatetime   *time.Time            `json:"lastUpdateDatetime"`
	ScanTime             *time.Time            `json:"scanTime"`
	ScanUser             string                `json:"scanUser"`
	ClientID             *int64                `json:"clientId"`
	ShipmentType         *ShipmentTypeResponse `json:"shipmentType"`
}

// SearchResponse wraps one page of search results.
type SearchResponse struct {
	Content       []*ShipmentResponse `json:"content"`
	Page          int                 `json:"page"`
	Size          int                 `json:"size"`
	TotalElements int64               `json:"totalElements"`
	TotalPages    int                 `json:"totalPages"`
	HasNext       bool                `json:"hasNext"`
	HasPrevious   bool                `json:"hasPrevious"`
}

func newSearchResponse(shipments []*domainShipment.Shipment, total int64, page, size int) *SearchResponse {
	totalPages := 0
	if size > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(size)))
	}
	return &SearchResponse{
		Content:       toShipmentResponses(shipments),
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
		HasNext:       int64(page+1)*int64(size) < total,
		HasPrevious:   page > 0,
	}
}

func toShipmentResponse(s *domainShipment.Shipment) *ShipmentResponse {
	resp := &ShipmentResponse{
		RowID:                s.RowID,
		Client:               s.Client,
		TrackingNumber:       s.TrackingNumber,
		ScannedNumber:        s.ScannedNumber,
		Status:               s.Status,
		EmailID:              s.EmailID,
		OrderNumber:          s.OrderNumber,
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

	if s.ShipDate != nil {
		resp.ShipDate = s.ShipDate.Format(dateLayout)
	}
	if s.ShipmentType != nil {
		resp.ShipmentType = &ShipmentTypeResponse{
			ID:          s.ShipmentType.RowID,
			Type:        s.ShipmentType.Type,
			Value:       s.ShipmentType.Value,
			Description: s.ShipmentType.Description,
		}
	}

	return resp
}

func toShipmentResponses(shipments []*domainShipment.Shipment) []*ShipmentResponse {
	responses := make([]*ShipmentResponse, len(shipments))
	for i, s := range shipments {
		responses[i] = toShipmentResponse(s)
	}
	return responses
}
