package models

import "time"

type CLIAAdminModel struct {
	RowID              int64      `gorm:"column:row_id;primaryKey;autoIncrement"`
	UserID             string     `gorm:"column:user_id;not null;uniqueIndex"`
	LastUpdateDatetime *time.Time `gorm:"column:last_update_datetime"`
	LastUpdateUser     string     `gorm:"column:last_update_user"`
}

func (CLIAAdminModel) TableName() string {
	return "clia_admin"
}

type CLIAMemberModel struct {
	RowID              int64      `gorm:"column:row_id;primaryKey;autoIncrement"`
	UserID             string     `gorm:"column:user_id;not null;uniqueIndex"`
	LastUpdateDatetime *time.Time `gorm:"column:last_update_datetime"`
	LastUpdateUser     string     `gorm:"column:last_update_user"`
}

func (CLIAMemberModel) TableName() string {
	return "clia_member"
}
