// Package model defines domain entities for the application.
package model

import "time"

// Project represents a portfolio project entry.
type Project struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	AltText      string    `json:"altText"`
	Tag          string    `json:"tag"`
	Technologies []string  `json:"technologies"`
	Features     []string  `json:"features"`
	DemoLink     string    `json:"demoLink"`
	CodeLink     string    `json:"codeLink"`
	Published    bool      `json:"published"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ProjectInput holds the fields for creating a project.
// Published is a pointer so an omitted value can default to true.
type ProjectInput struct {
	Title        string
	Description  string
	Image        string
	AltText      string
	Tag          string
	Technologies []string
	Features     []string
	DemoLink     string
	CodeLink     string
	Published    *bool
}

// ProjectPatch describes a partial update. Only non-nil fields are applied.
// Identity fields (ID, CreatedAt) are deliberately absent so a patch can
// never overwrite them.
type ProjectPatch struct {
	Title        *string
	Description  *string
	Image        *string
	AltText      *string
	Tag          *string
	Technologies []string
	Features     []string
	DemoLink     *string
	CodeLink     *string
	Published    *bool
}
