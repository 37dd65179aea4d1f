package models

import "time"

// ShipmentModel maps the inbound_shipments table. Weight and sample counts
// are stored as raw label text, matching what the scanners emit.
type ShipmentModel struct {
	RowID          int64  `gorm:"column:row_id;primaryKey;autoIncrement"`
	Client         string `gorm:"column:client"`
	TrackingNumber string `gorm:"column:tracking_number;index"`
	ScannedNumber  string `gorm:"column:scanned_number;index"`
	Status         string `gorm:"column:status"`
	EmailID        string `gorm:"column:email_id"`
	OrderNumber    string `gorm:"column:order_number"`

	ShipDate *time.Time `gorm:"column:ship_date;type:date"`

	Lab             string `gorm:"column:lab"`
	Weight          string `gorm:"column:weight"`
	NumberOfSamples string `gorm:"column:number_of_samples"`
	PickupTime      string `gorm:"column:pickup_time"`
	PickupTime2     string `gorm:"column:pickup_time_2"`

	EmailReceiveDatetime *time.Time `gorm:"column:email_receive_datetime"`
	LastUpdateDatetime   *time.Time `gorm:"column:last_update_datetime"`
	ScanTime             *time.Time `gorm:"column:scan_time;index"`
	ScanUser             string     `gorm:"column:scan_user"`

	ClientID       *int64 `gorm:"column:client_id;index"`
	ShipmentTypeID *int64 `gorm:"column:shipment_type"`

	ShipmentType *ReferenceModel `gorm:"foreignKey:ShipmentTypeID"`
}

func (ShipmentModel) TableName() string {
	return "inbound_shipments"
}
