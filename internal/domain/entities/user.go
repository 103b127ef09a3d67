package entities

import "time"

// User is the personnel directory entry of an agent.
type User struct {
	ID          string
	TenantID    string
	FirstName   string
	LastName    string
	Email       string
	BadgeNumber string
	UpdatedAt   time.Time
}
