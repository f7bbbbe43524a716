package models

import "time"

// StoreSnapshot is the last-known store configuration. It is replaced as a
// whole on every successful fetch and never mutated in place.
type StoreSnapshot struct {
	Hours          WeeklyHours      `json:"operating_hours"`
	BackendClosure *ClosureOverride `json:"backend_closure,omitempty"`
	WhatsappNumber string           `json:"whatsapp_number,omitempty"`
	FetchedAt      time.Time        `json:"fetched_at"`
}
