package reports

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/veewell/veewell-erp/internal/advisory"
	"github.com/veewell/veewell-erp/internal/ledger"
	"github.com/veewell/veewell-erp/internal/shared"
)

// Handler serves the read-only report endpoints.
type Handler struct {
	logger   *slog.Logger
	store    *ledger.Store
	advisory advisory.Service
}

// NewHandler constructs the reports handler.
func NewHandler(logger *slog.Logger, store *ledger.Store, adv advisory.Service) *Handler {
	if adv == nil {
		adv = advisory.Noop{}
	}
	return &Handler{logger: logger, store: store, advisory: adv}
}

// MountRoutes registers report routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/dashboard", h.dashboard)
	r.Get("/gst", h.gstSummary)
	r.Get("/insight", h.insight)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	shared.RespondJSON(w, http.StatusOK, Dashboard(h.store.Snapshot()))
}

func (h *Handler) gstSummary(w http.ResponseWriter, r *http.Request) {
	shared.RespondJSON(w, http.StatusOK, GST(h.store.Snapshot()))
}

type insightResponse struct {
	Insight string `json:"insight"`
}

// insight asks the advisory collaborator for a narrative summary. The
// resilient wrapper guarantees this never fails; worst case is the
// placeholder text.
func (h *Handler) insight(w http.ResponseWriter, r *http.Request) {
	metrics := Dashboard(h.store.Snapshot())
	text, err := h.advisory.Summarize(r.Context(), Snapshot(metrics))
	if err != nil {
		h.logger.Warn("insight fallback", slog.Any("error", err))
		text = advisory.FallbackSummary
	}
	shared.RespondJSON(w, http.StatusOK, insightResponse{Insight: text})
}
