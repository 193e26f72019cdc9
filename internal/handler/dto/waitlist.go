package dto

// JoinWaitlistRequest represents the request body for a waitlist signup.
type JoinWaitlistRequest struct {
	Email string `json:"email" validate:"required,email"`
}
