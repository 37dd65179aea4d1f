package models

import "time"

type ClientModel struct {
	RowID          int64      `gorm:"column:row_id;primaryKey;autoIncrement"`
	Client         string     `gorm:"column:client;index"`
	LastUpdateTime *time.Time `gorm:"column:last_update_datetime"`
	LastUpdateUser string     `gorm:"column:last_update_user"`
}

func (ClientModel) TableName() string {
	return "inbound_shipments_clients"
}
