package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/veewell/veewell-erp/internal/advisory"
	"github.com/veewell/veewell-erp/internal/auth"
	"github.com/veewell/veewell-erp/internal/ledger"
	"github.com/veewell/veewell-erp/internal/reports"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger          *slog.Logger
	Config          *Config
	AuthHandler     *auth.Handler
	LedgerHandler   *ledger.Handler
	ReportsHandler  *reports.Handler
	AdvisoryHandler *advisory.Handler
}

// NewRouter constructs the chi.Router with application defaults. Everything
// except /healthz and /auth sits behind the credential gate.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/auth", params.AuthHandler.MountRoutes)

	r.Group(func(r chi.Router) {
		r.Use(params.AuthHandler.Middleware)
		params.LedgerHandler.MountRoutes(r)
		r.Route("/reports", params.ReportsHandler.MountRoutes)
		if params.AdvisoryHandler != nil {
			r.Route("/advisory", params.AdvisoryHandler.MountRoutes)
		}
	})

	return r
}
