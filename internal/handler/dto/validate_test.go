package dto

import "testing"

func validCreateRequest() CreateProjectRequest {
	return CreateProjectRequest{
		Title:        "Portfolio Site",
		Description:  "A single-page portfolio presenting projects and skills.",
		Image:        "https://example.com/cover.png",
		AltText:      "Portfolio cover image",
		Tag:          "Web",
		Technologies: []string{"Go"},
		Features:     []string{"responsive layout"},
		DemoLink:     "https://example.com/demo",
		CodeLink:     "https://example.com/code",
	}
}

func TestValidate_CreateProjectRequest_Valid(t *testing.T) {
	req := validCreateRequest()
	if errs := Validate(&req); errs != nil {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestValidate_CreateProjectRequest_EmptyArraysAllowed(t *testing.T) {
	req := validCreateRequest()
	req.Technologies = []string{}
	req.Features = []string{}

	if errs := Validate(&req); errs != nil {
		t.Errorf("expected empty arrays to pass, got %v", errs)
	}
}

func TestValidate_CreateProjectRequest_FieldErrors(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*CreateProjectRequest)
		wantField string
	}{
		{
			name:      "title too short",
			mutate:    func(r *CreateProjectRequest) { r.Title = "Go" },
			wantField: "title",
		},
		{
			name:      "title missing",
			mutate:    func(r *CreateProjectRequest) { r.Title = "" },
			wantField: "title",
		},
		{
			name:      "description too short",
			mutate:    func(r *CreateProjectRequest) { r.Description = "short" },
			wantField: "description",
		},
		{
			name:      "image not a URL",
			mutate:    func(r *CreateProjectRequest) { r.Image = "not-a-url" },
			wantField: "image",
		},
		{
			name:      "tag too short",
			mutate:    func(r *CreateProjectRequest) { r.Tag = "x" },
			wantField: "tag",
		},
		{
			name:      "technologies missing",
			mutate:    func(r *CreateProjectRequest) { r.Technologies = nil },
			wantField: "technologies",
		},
		{
			name:      "demo link invalid",
			mutate:    func(r *CreateProjectRequest) { r.DemoLink = "://bad" },
			wantField: "demoLink",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)

			errs := Validate(&req)
			if errs == nil {
				t.Fatal("expected validation errors, got none")
			}
			if _, ok := errs[tt.wantField]; !ok {
				t.Errorf("expected error naming %q, got %v", tt.wantField, errs)
			}
		})
	}
}

func TestValidate_UpdateProjectRequest_AllFieldsOptional(t *testing.T) {
	req := UpdateProjectRequest{}
	if errs := Validate(&req); errs != nil {
		t.Errorf("expected empty patch to pass, got %v", errs)
	}
}

func TestValidate_UpdateProjectRequest_BoundsStillApply(t *testing.T) {
	shortTitle := "Go"
	req := UpdateProjectRequest{Title: &shortTitle}

	errs := Validate(&req)
	if errs == nil {
		t.Fatal("expected validation errors, got none")
	}
	if _, ok := errs["title"]; !ok {
		t.Errorf("expected error naming title, got %v", errs)
	}

	badURL := "not-a-url"
	req = UpdateProjectRequest{CodeLink: &badURL}
	errs = Validate(&req)
	if _, ok := errs["codeLink"]; !ok {
		t.Errorf("expected error naming codeLink, got %v", errs)
	}
}

func TestValidate_JoinWaitlistRequest(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid", email: "dev@example.com", wantErr: false},
		{name: "missing", email: "", wantErr: true},
		{name: "not an email", email: "not-an-email", wantErr: true},
		{name: "missing domain", email: "dev@", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := JoinWaitlistRequest{Email: tt.email}
			errs := Validate(&req)
			if tt.wantErr && errs == nil {
				t.Error("expected validation errors, got none")
			}
			if !tt.wantErr && errs != nil {
				t.Errorf("expected no errors, got %v", errs)
			}
			if tt.wantErr {
				if _, ok := errs["email"]; !ok {
					t.Errorf("expected error naming email, got %v", errs)
				}
			}
		})
	}
}
