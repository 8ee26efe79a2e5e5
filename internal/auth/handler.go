package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/veewell/veewell-erp/internal/shared"
)

// Handler wires HTTP endpoints for the credential gate.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs the auth handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes registers auth routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/login", h.handleLogin)
	r.Post("/logout", h.handleLogout)
	r.Group(func(r chi.Router) {
		r.Use(h.Middleware)
		r.Get("/me", h.handleMe)
	})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondJSON(w, http.StatusBadRequest, shared.ErrorBody{Error: "invalid request body"})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondJSON(w, http.StatusUnprocessableEntity, shared.ErrorBody{Error: err.Error()})
		return
	}
	token, user, err := h.service.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Warn("login rejected", slog.String("email", req.Email))
		shared.RespondJSON(w, http.StatusUnauthorized, shared.ErrorBody{Error: "invalid credentials"})
		return
	}
	h.logger.Info("login accepted", slog.String("email", user.Email))
	shared.RespondJSON(w, http.StatusOK, loginResponse{Token: token, User: user})
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	h.service.Revoke(bearerToken(r))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		shared.RespondJSON(w, http.StatusUnauthorized, shared.ErrorBody{Error: "not authenticated"})
		return
	}
	shared.RespondJSON(w, http.StatusOK, user)
}

// Middleware guards routes behind the gate. When no credential is
// configured, every request passes with a default operator attached.
func (h *Handler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.service.Enabled() {
			ctx := ContextWithUser(r.Context(), User{Name: "Admin", Role: "Admin"})
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}
		user, ok := h.service.UserForToken(bearerToken(r))
		if !ok {
			shared.RespondJSON(w, http.StatusUnauthorized, shared.ErrorBody{Error: "not authenticated"})
			return
		}
		next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
