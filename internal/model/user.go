// Package model defines domain entities for the application.
package model

// User represents a minimal user entity. Users are created through the
// storage layer only; no HTTP route exposes them.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}
