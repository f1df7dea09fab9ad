package models

import "time"

// NotifyRequestedEvent is published after a notify has been recorded
type NotifyRequestedEvent struct {
	ID          string    `json:"id"`
	Plate       string    `json:"plate"`
	HasLocation bool      `json:"has_location"`
	Geohash     string    `json:"geohash,omitempty"`
	Delayed     bool      `json:"delayed"`
	NotifyCount int       `json:"notify_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// OwnerConfirmedEvent is published after an owner confirmation has been recorded
type OwnerConfirmedEvent struct {
	ID             string    `json:"id"`
	Plate          string    `json:"plate"`
	SharedLocation bool      `json:"shared_location"`
	AllowCall      bool      `json:"allow_call"`
	CreatedAt      time.Time `json:"created_at"`
}
