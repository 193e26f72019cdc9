package handler

import (
	"fmt"
	"net/http"

	"github.com/devfolio/devfolio/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "devfolio_projects_created_total %d\n", snap.ProjectsCreated)
	writeMetric(w, "devfolio_projects_updated_total %d\n", snap.ProjectsUpdated)
	writeMetric(w, "devfolio_projects_deleted_total %d\n", snap.ProjectsDeleted)
	writeMetric(w, "devfolio_waitlist_signups_total %d\n", snap.WaitlistSignups)
	writeMetric(w, "devfolio_waitlist_duplicates_total %d\n", snap.WaitlistDuplicates)
	writeMetric(w, "devfolio_auth_failures_total %d\n", snap.AuthFailures)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
