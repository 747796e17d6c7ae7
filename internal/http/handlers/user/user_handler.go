package user

import (
	"context"
	"log/slog"
	"net/http"

	"hackfest/internal/http/api"
	"hackfest/internal/http/handlers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=userService --structname=MockUserService --output=../mocks --outpkg=mocks
type userService interface {
	List(ctx context.Context) ([]api.UserSchema, error)
	Get(ctx context.Context, userID string) (*api.UserSchema, error)
	SetAdmin(ctx context.Context, userID string, isAdmin bool) (*api.UserSchema, error)
	Delete(ctx context.Context, userID string) error
}

type UserHandler struct {
	log     *slog.Logger
	service userService
}

func NewUserHandler(log *slog.Logger, s userService) *UserHandler {
	return &UserHandler{
		log:     log,
		service: s,
	}
}

type SetAdminRequest struct {
	IsAdmin *bool `json:"is_admin" validate:"required"`
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.List"
	log := handlers.RequestLogger(h.log, op, r)

	users, err := h.service.List(r.Context())
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, api.UserListResponse{Users: users})
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.Get"
	log := handlers.RequestLogger(h.log, op, r)

	user, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, api.UserResponse{User: *user})
}

func (h *UserHandler) SetAdmin(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.SetAdmin"
	log := handlers.RequestLogger(h.log, op, r)

	var input SetAdminRequest
	if !handlers.DecodeAndValidate(w, r, log, &input) {
		return
	}

	userID := chi.URLParam(r, "id")

	user, err := h.service.SetAdmin(r.Context(), userID, *input.IsAdmin)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("admin flag changed", slog.String("user_id", userID), slog.Bool("is_admin", user.IsAdmin))
	render.JSON(w, r, api.UserResponse{User: *user})
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.Delete"
	log := handlers.RequestLogger(h.log, op, r)

	userID := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), userID); err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("user deleted", slog.String("user_id", userID))
	render.NoContent(w, r)
}
