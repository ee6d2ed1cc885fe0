package models

import "time"

const (
	Greeting      = "Hello from App1!"
	StatusHealthy = "healthy"

	// TimestampLayout is ISO-8601 in UTC with millisecond precision.
	TimestampLayout = "2006-01-02T15:04:05.000Z"
)

// RootResponse is served by GET /. Env is nil when the environment tag is unset
// and is always encoded, as null in that case.
type RootResponse struct {
	Message   string  `json:"message" example:"Hello from App1!"`
	Env       *string `json:"env" example:"staging" extensions:"x-nullable"`
	Timestamp string  `json:"timestamp" example:"2024-01-01T00:00:00.000Z"`
}

type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Timestamp string `json:"timestamp" example:"2024-01-01T00:00:00.000Z"`
}

type APIError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
