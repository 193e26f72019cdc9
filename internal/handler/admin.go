package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/devfolio/devfolio/internal/handler/dto"
	"github.com/devfolio/devfolio/internal/metrics"
	"github.com/devfolio/devfolio/internal/storage"
)

// AdminHandler serves the key-gated admin surface: full project CRUD and
// the waitlist listing. The auth middleware runs before any of these.
type AdminHandler struct {
	store   *storage.Store
	logger  *slog.Logger
	metrics metrics.Recorder
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(store *storage.Store, logger *slog.Logger, recorder metrics.Recorder) *AdminHandler {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &AdminHandler{
		store:   store,
		logger:  logger,
		metrics: recorder,
	}
}

// ListProjects handles GET /api/admin/projects.
// Returns every project regardless of published state.
func (h *AdminHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.store.GetAllProjects(r.Context())
	if err != nil {
		h.logger.Error("failed to list projects", "error", err)
		writeError(w, http.StatusInternalServerError, serverErrorMessage)
		return
	}

	writeJSON(w, http.StatusOK, dto.ProjectListResponse{Projects: projects})
}

// CreateProject handles POST /api/admin/projects.
func (h *AdminHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode project body", "error", err)
		writeError(w, http.StatusInternalServerError, serverErrorMessage)
		return
	}

	if fields := dto.Validate(&req); fields != nil {
		writeValidationError(w, "Invalid project data", fields)
		return
	}

	project, err := h.store.CreateProject(r.Context(), req.ToInput())
	if err != nil {
		h.logger.Error("failed to create project", "error", err)
		writeError(w, http.StatusInternalServerError, serverErrorMessage)
		return
	}

	h.metrics.IncProjectCreated()
	h.logger.Info("project_created", "project_id", project.ID, "title", project.Title)

	writeJSON(w, http.StatusCreated, dto.ProjectMutationResponse{
		Message: "Project created successfully",
		Project: project,
	})
}

// UpdateProject handles PUT /api/admin/projects/{id}.
// Accepts any subset of mutable fields; id and createdAt never change.
func (h *AdminHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	if _, err := h.store.GetProject(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Project not found")
			return
		}
		h.logger.Error("failed to look up project", "project_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, serverErrorMessage)
		return
	}

	var req dto.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode project body", "error", err)
		writeError(w, http.StatusInternalServerError, serverErrorMessage)
		return
	}

	if fields := dto.Validate(&req); fields != nil {
		writeValidationError(w, "Invalid project data", fields)
		return
	}

	project, err := h.store.UpdateProject(r.Context(), id, req.ToPatch())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Project not found")
			return
		}
		h.logger.Error("failed to update project", "project_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, serverErrorMessage)
		return
	}

	h.metrics.IncProjectUpdated()
	h.logger.Info("project_updated", "project_id", project.ID)

	writeJSON(w, http.StatusOK, dto.ProjectMutationResponse{
		Message: "Project updated successfully",
		Project: project,
	})
}

// DeleteProject handles DELETE /api/admin/projects/{id}.
func (h *AdminHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	removed, err := h.store.DeleteProject(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to delete project", "project_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, serverErrorMessage)
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "Project not found")
		return
	}

	h.metrics.IncProjectDeleted()
	h.logger.Info("project_deleted", "project_id", id)

	writeJSON(w, http.StatusOK, dto.ProjectDeletedResponse{
		Message: "Project deleted successfully",
		ID:      id,
	})
}

// ListWaitlist handles GET /api/admin/waitlist.
func (h *AdminHandler) ListWaitlist(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.GetAllWaitlistEntries(r.Context())
	if err != nil {
		h.logger.Error("failed to list waitlist entries", "error", err)
		writeError(w, http.StatusInternalServerError, serverErrorMessage)
		return
	}

	writeJSON(w, http.StatusOK, dto.WaitlistListResponse{Entries: entries})
}
