package clia

import "time"

// Admin and Member are the CLIA compliance rosters: flat lists of user ids
// with audit columns. Pure CRUD, no policy.

type Admin struct {
	RowID              int64      `json:"id"`
	UserID             string     `json:"userId"`
	LastUpdateDatetime *time.Time `json:"lastUpdateDatetime"`
	LastUpdateUser     string     `json:"lastUpdateUser"`
}

type Member struct {
	RowID              int64      `json:"id"`
	UserID             string     `json:"userId"`
	LastUpdateDatetime *time.Time `json:"lastUpdateDatetime"`
	LastUpdateUser     string     `json:"lastUpdateUser"`
}
