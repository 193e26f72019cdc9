// Package model defines domain entities for the application.
package model

import "time"

// WaitlistEntry represents a waitlist signup.
// Emails are unique under case-insensitive comparison; the route layer
// performs the duplicate check before creating an entry.
type WaitlistEntry struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
