package advisory

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/veewell/veewell-erp/internal/shared"
)

// Handler exposes GSTIN verification over HTTP.
type Handler struct {
	logger  *slog.Logger
	service Service
}

// NewHandler constructs the advisory handler.
func NewHandler(logger *slog.Logger, service Service) *Handler {
	if service == nil {
		service = Noop{}
	}
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers advisory routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/verify-gstin", h.verifyGSTIN)
}

func (h *Handler) verifyGSTIN(w http.ResponseWriter, r *http.Request) {
	gstin := r.URL.Query().Get("gstin")
	if gstin == "" {
		shared.RespondJSON(w, http.StatusBadRequest, shared.ErrorBody{Error: "gstin query parameter required"})
		return
	}
	verdict, err := h.service.VerifyTaxID(r.Context(), gstin)
	if err != nil {
		// Advisory failures degrade, never propagate.
		h.logger.Warn("gstin verification degraded", slog.Any("error", err))
		verdict = Verification{IsValid: false, ErrorMessage: "Verification failed. Please try again."}
	}
	shared.RespondJSON(w, http.StatusOK, verdict)
}
