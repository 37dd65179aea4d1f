package clia

import "errors"

var (
	ErrAdminNotFound  = errors.New("CLIA admin not found")
	ErrMemberNotFound = errors.New("CLIA member not found")
)
