package dto

import "github.com/devfolio/devfolio/internal/model"

// ErrorResponse is the body for failed requests. Errors carries per-field
// validation messages and is omitted for non-validation failures.
type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// ProjectListResponse wraps a list of projects.
type ProjectListResponse struct {
	Projects []model.Project `json:"projects"`
}

// ProjectResponse wraps a single project.
type ProjectResponse struct {
	Project model.Project `json:"project"`
}

// ProjectMutationResponse is returned by admin create and update.
type ProjectMutationResponse struct {
	Message string        `json:"message"`
	Project model.Project `json:"project"`
}

// ProjectDeletedResponse is returned by admin delete.
type ProjectDeletedResponse struct {
	Message string `json:"message"`
	ID      int    `json:"id"`
}

// WaitlistJoinedResponse is returned on a successful signup.
type WaitlistJoinedResponse struct {
	Message string           `json:"message"`
	Data    WaitlistJoinedID `json:"data"`
}

// WaitlistJoinedID carries the assigned entry id.
type WaitlistJoinedID struct {
	ID int `json:"id"`
}

// WaitlistListResponse wraps the admin view of waitlist entries.
type WaitlistListResponse struct {
	Entries []model.WaitlistEntry `json:"entries"`
}
