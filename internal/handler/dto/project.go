package dto

import "github.com/devfolio/devfolio/internal/model"

// CreateProjectRequest represents the request body for creating a project.
// Bounds mirror the public project schema: titles and alt text 3-100
// characters, descriptions 10-500, tags 2-50, links syntactically valid URLs.
type CreateProjectRequest struct {
	Title        string   `json:"title" validate:"required,min=3,max=100"`
	Description  string   `json:"description" validate:"required,min=10,max=500"`
	Image        string   `json:"image" validate:"required,url"`
	AltText      string   `json:"altText" validate:"required,min=3,max=100"`
	Tag          string   `json:"tag" validate:"required,min=2,max=50"`
	Technologies []string `json:"technologies" validate:"required"`
	Features     []string `json:"features" validate:"required"`
	DemoLink     string   `json:"demoLink" validate:"required,url"`
	CodeLink     string   `json:"codeLink" validate:"required,url"`
	Published    *bool    `json:"published,omitempty"`
}

// ToInput converts the request into a storage input.
func (r *CreateProjectRequest) ToInput() model.ProjectInput {
	return model.ProjectInput{
		Title:        r.Title,
		Description:  r.Description,
		Image:        r.Image,
		AltText:      r.AltText,
		Tag:          r.Tag,
		Technologies: r.Technologies,
		Features:     r.Features,
		DemoLink:     r.DemoLink,
		CodeLink:     r.CodeLink,
		Published:    r.Published,
	}
}

// UpdateProjectRequest represents a partial update. Every field is
// optional; the same bounds apply to fields that are present.
type UpdateProjectRequest struct {
	Title        *string  `json:"title,omitempty" validate:"omitempty,min=3,max=100"`
	Description  *string  `json:"description,omitempty" validate:"omitempty,min=10,max=500"`
	Image        *string  `json:"image,omitempty" validate:"omitempty,url"`
	AltText      *string  `json:"altText,omitempty" validate:"omitempty,min=3,max=100"`
	Tag          *string  `json:"tag,omitempty" validate:"omitempty,min=2,max=50"`
	Technologies []string `json:"technologies,omitempty"`
	Features     []string `json:"features,omitempty"`
	DemoLink     *string  `json:"demoLink,omitempty" validate:"omitempty,url"`
	CodeLink     *string  `json:"codeLink,omitempty" validate:"omitempty,url"`
	Published    *bool    `json:"published,omitempty"`
}

// ToPatch converts the request into a storage patch.
func (r *UpdateProjectRequest) ToPatch() model.ProjectPatch {
	return model.ProjectPatch{
		Title:        r.Title,
		Description:  r.Description,
		Image:        r.Image,
		AltText:      r.AltText,
		Tag:          r.Tag,
		Technologies: r.Technologies,
		Features:     r.Features,
		DemoLink:     r.DemoLink,
		CodeLink:     r.CodeLink,
		Published:    r.Published,
	}
}
