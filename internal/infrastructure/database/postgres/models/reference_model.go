package models

// ReferenceModel maps the inbound_shipments_reference lookup table. No
// unique constraint on (type, value); the find-or-create path treats the
// pair as a key but the schema does not enforce it.
type ReferenceModel struct {
	RowID       int64  `gorm:"column:row_id;primaryKey;autoIncrement"`
	Type        string `gorm:"column:type;size:255;index"`
	Value       string `gorm:"column:value;size:255"`
	Description string `gorm:"column:description;size:255"`
}

func (ReferenceModel) TableName() string {
	return "inbound_shipments_reference"
}
