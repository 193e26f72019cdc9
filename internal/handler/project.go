package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/devfolio/devfolio/internal/handler/dto"
	"github.com/devfolio/devfolio/internal/storage"
)

// ProjectHandler serves the public, read-only project endpoints.
// Only published projects are visible through it.
type ProjectHandler struct {
	store  *storage.Store
	logger *slog.Logger
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(store *storage.Store, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		store:  store,
		logger: logger,
	}
}

// List handles GET /api/projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.store.GetPublishedProjects(r.Context())
	if err != nil {
		h.logger.Error("failed to list published projects", "error", err)
		writeError(w, http.StatusInternalServerError, serverErrorMessage)
		return
	}

	writeJSON(w, http.StatusOK, dto.ProjectListResponse{Projects: projects})
}

// Get handles GET /api/projects/{id}.
// An unpublished project is indistinguishable from a nonexistent one:
// both return 404.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	project, err := h.store.GetProject(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Project not found")
			return
		}
		h.logger.Error("failed to get project", "project_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, serverErrorMessage)
		return
	}

	if !project.Published {
		writeError(w, http.StatusNotFound, "Project not found")
		return
	}

	writeJSON(w, http.StatusOK, dto.ProjectResponse{Project: project})
}
