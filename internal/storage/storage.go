// Package storage provides an in-process store for portfolio entities.
// All state is process-lifetime only; nothing survives a restart.
package storage

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/devfolio/devfolio/internal/model"
)

// Storage errors.
var (
	// ErrNotFound is returned when a referenced id has no record.
	ErrNotFound = errors.New("record not found")
)

// Store is an in-memory store keyed by auto-incrementing integer ids.
// A single mutex serializes every operation; id assignment and map
// mutation must never interleave across goroutines.
type Store struct {
	mu sync.Mutex

	users           map[int]model.User
	waitlistEntries map[int]model.WaitlistEntry
	projects        map[int]model.Project

	nextUserID     int
	nextWaitlistID int
	nextProjectID  int

	now func() time.Time
}

// New creates a Store seeded with the default projects.
func New() *Store {
	s := &Store{
		users:           make(map[int]model.User),
		waitlistEntries: make(map[int]model.WaitlistEntry),
		projects:        make(map[int]model.Project),
		nextUserID:      1,
		nextWaitlistID:  1,
		nextProjectID:   1,
		now:             time.Now,
	}
	s.seedProjects()
	return s
}

// NewEmpty creates a Store without seed data. Intended for tests that
// need full control over store contents.
func NewEmpty() *Store {
	s := New()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = make(map[int]model.Project)
	s.nextProjectID = 1
	return s
}

// GetUser returns the user with the given id.
func (s *Store) GetUser(ctx context.Context, id int) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return model.User{}, ErrNotFound
	}
	return user, nil
}

// GetUserByUsername returns the user with the given username.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return model.User{}, ErrNotFound
}

// CreateUser stores a new user and assigns its id.
func (s *Store) CreateUser(ctx context.Context, username, password string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := model.User{
		ID:       s.nextUserID,
		Username: username,
		Password: password,
	}
	s.nextUserID++
	s.users[user.ID] = user
	return user, nil
}

// GetWaitlistEntry returns the waitlist entry with the given id.
func (s *Store) GetWaitlistEntry(ctx context.Context, id int) (model.WaitlistEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.waitlistEntries[id]
	if !ok {
		return model.WaitlistEntry{}, ErrNotFound
	}
	return entry, nil
}

// GetWaitlistEntryByEmail looks up an entry by email, case-insensitively.
// Returns ErrNotFound if no entry matches.
func (s *Store) GetWaitlistEntryByEmail(ctx context.Context, email string) (model.WaitlistEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entry := range s.waitlistEntries {
		if strings.EqualFold(entry.Email, email) {
			return entry, nil
		}
	}
	return model.WaitlistEntry{}, ErrNotFound
}

// GetAllWaitlistEntries returns every waitlist entry in insertion order.
func (s *Store) GetAllWaitlistEntries(ctx context.Context) ([]model.WaitlistEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]model.WaitlistEntry, 0, len(s.waitlistEntries))
	for _, entry := range s.waitlistEntries {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries, nil
}

// CreateWaitlistEntry stores a new entry and assigns its id and timestamp.
// The duplicate-email check is the caller's responsibility; the store
// only provides the lookup used to perform it.
func (s *Store) CreateWaitlistEntry(ctx context.Context, email string) (model.WaitlistEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := model.WaitlistEntry{
		ID:        s.nextWaitlistID,
		Email:     email,
		CreatedAt: s.now(),
	}
	s.nextWaitlistID++
	s.waitlistEntries[entry.ID] = entry
	return entry, nil
}

// GetProject returns the project with the given id.
func (s *Store) GetProject(ctx context.Context, id int) (model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, ok := s.projects[id]
	if !ok {
		return model.Project{}, ErrNotFound
	}
	return project, nil
}

// GetAllProjects returns every project in insertion order.
func (s *Store) GetAllProjects(ctx context.Context) ([]model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects := make([]model.Project, 0, len(s.projects))
	for _, project := range s.projects {
		projects = append(projects, project)
	}
	sortProjects(projects)
	return projects, nil
}

// GetPublishedProjects returns projects with Published set, in insertion order.
func (s *Store) GetPublishedProjects(ctx context.Context) ([]model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects := make([]model.Project, 0, len(s.projects))
	for _, project := range s.projects {
		if project.Published {
			projects = append(projects, project)
		}
	}
	sortProjects(projects)
	return projects, nil
}

// CreateProject stores a new project. The id is assigned from the
// monotonic counter and is never reused, even after deletion.
// Published defaults to true when the input omits it.
func (s *Store) CreateProject(ctx context.Context, input model.ProjectInput) (model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	published := true
	if input.Published != nil {
		published = *input.Published
	}

	now := s.now()
	project := model.Project{
		ID:           s.nextProjectID,
		Title:        input.Title,
		Description:  input.Description,
		Image:        input.Image,
		AltText:      input.AltText,
		Tag:          input.Tag,
		Technologies: input.Technologies,
		Features:     input.Features,
		DemoLink:     input.DemoLink,
		CodeLink:     input.CodeLink,
		Published:    published,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.nextProjectID++
	s.projects[project.ID] = project
	return project, nil
}

// UpdateProject applies a patch to an existing project. ID and CreatedAt
// are preserved; UpdatedAt is refreshed. Returns ErrNotFound if the id
// has no record.
func (s *Store) UpdateProject(ctx context.Context, id int, patch model.ProjectPatch) (model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, ok := s.projects[id]
	if !ok {
		return model.Project{}, ErrNotFound
	}

	if patch.Title != nil {
		project.Title = *patch.Title
	}
	if patch.Description != nil {
		project.Description = *patch.Description
	}
	if patch.Image != nil {
		project.Image = *patch.Image
	}
	if patch.AltText != nil {
		project.AltText = *patch.AltText
	}
	if patch.Tag != nil {
		project.Tag = *patch.Tag
	}
	if patch.Technologies != nil {
		project.Technologies = patch.Technologies
	}
	if patch.Features != nil {
		project.Features = patch.Features
	}
	if patch.DemoLink != nil {
		project.DemoLink = *patch.DemoLink
	}
	if patch.CodeLink != nil {
		project.CodeLink = *patch.CodeLink
	}
	if patch.Published != nil {
		project.Published = *patch.Published
	}
	project.UpdatedAt = s.now()

	s.projects[id] = project
	return project, nil
}

// DeleteProject removes the project if present. The boolean reports
// whether a record was actually removed; deleting an absent id is not
// an error.
func (s *Store) DeleteProject(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return false, nil
	}
	delete(s.projects, id)
	return true, nil
}

func sortProjects(projects []model.Project) {
	sort.Slice(projects, func(i, j int) bool { return projects[i].ID < projects[j].ID })
}
