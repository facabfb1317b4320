package models

import "time"

type Admin struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}
