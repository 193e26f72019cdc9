package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/devfolio/devfolio/internal/handler/dto"
	"github.com/devfolio/devfolio/internal/metrics"
	"github.com/devfolio/devfolio/internal/storage"
)

// WaitlistHandler handles public waitlist signups.
type WaitlistHandler struct {
	store   *storage.Store
	logger  *slog.Logger
	metrics metrics.Recorder
}

// NewWaitlistHandler creates a new WaitlistHandler.
func NewWaitlistHandler(store *storage.Store, logger *slog.Logger, recorder metrics.Recorder) *WaitlistHandler {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &WaitlistHandler{
		store:   store,
		logger:  logger,
		metrics: recorder,
	}
}

// Join handles POST /api/waitlist.
// The duplicate check is case-insensitive: a@b.com and A@B.com are the
// same registration.
func (h *WaitlistHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req dto.JoinWaitlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode waitlist body", "error", err)
		writeError(w, http.StatusInternalServerError, serverErrorMessage)
		return
	}

	if fields := dto.Validate(&req); fields != nil {
		writeValidationError(w, "Invalid email address", fields)
		return
	}

	if _, err := h.store.GetWaitlistEntryByEmail(r.Context(), req.Email); err == nil {
		h.metrics.IncWaitlistDuplicate()
		writeError(w, http.StatusConflict, "Email already registered")
		return
	} else if !errors.Is(err, storage.ErrNotFound) {
		h.logger.Error("waitlist lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, serverErrorMessage)
		return
	}

	entry, err := h.store.CreateWaitlistEntry(r.Context(), req.Email)
	if err != nil {
		h.logger.Error("failed to create waitlist entry", "error", err)
		writeError(w, http.StatusInternalServerError, serverErrorMessage)
		return
	}

	h.metrics.IncWaitlistSignup()
	h.logger.Info("waitlist_joined", "entry_id", entry.ID)

	writeJSON(w, http.StatusCreated, dto.WaitlistJoinedResponse{
		Message: "Successfully added to waitlist",
		Data:    dto.WaitlistJoinedID{ID: entry.ID},
	})
}
