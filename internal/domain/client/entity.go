package client

import "time"

// Client is one intake customer. Shipments reference clients either by the
// free-text name or by the row id foreign key.
type Client struct {
	ID             int64      `json:"id"`
	Name           string     `json:"client"`
	LastUpdateTime *time.Time `json:"lastUpdateTime"`
	LastUpdateUser string     `json:"lastUpdateUser"`
}
