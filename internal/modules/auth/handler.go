package auth

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alexken/stockroom/internal/httpx"
	"github.com/alexken/stockroom/internal/modules/user"
)

// Handler exposes authentication HTTP endpoints.
type Handler struct {
	service  Service
	userRepo user.Repository
}

func NewHandler(service Service, userRepo user.Repository) *Handler {
	return &Handler{service: service, userRepo: userRepo}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/api/v1/auth/login", h.login)
	r.With(Middleware(h.service)).Get("/api/v1/auth/me", h.me)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req request
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, err)
		return
	}

	token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			httpx.Respond(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
			return
		}
		httpx.Error(w, err)
		return
	}

	httpx.Respond(w, http.StatusOK, map[string]string{"token": token})
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	u, err := h.userRepo.GetUserByID(r.Context(), UserID(r.Context()))
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.Respond(w, http.StatusOK, u)
}
