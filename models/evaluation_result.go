package models

import "time"

// Sources of an evaluation.
const (
	SOURCE_SCHEDULE         = "schedule"
	SOURCE_DEFAULT_SCHEDULE = "default_schedule"
	SOURCE_OVERRIDE         = "override"
)

// EvaluationResult is the derived open/closed status at one instant.
type EvaluationResult struct {
	IsOpen        bool      `json:"isOpen"`
	NextOpenLabel string    `json:"nextOpenLabel"`
	ClosesAt      string    `json:"closesAt,omitempty"`
	Reason        string    `json:"reason,omitempty"`
	Source        string    `json:"source"`
	EvaluatedAt   time.Time `json:"evaluatedAt"`
}

// StoreStatus is what the storefront consumes to gate ordering.
type StoreStatus struct {
	EvaluationResult
	WhatsappNumber string `json:"whatsappNumber,omitempty"`
	Language       string `json:"language"`
}
