package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"hackfest/internal/http/api"
	mw "hackfest/internal/http/middleware"
	"hackfest/internal/lib/sl"
	repo "hackfest/internal/repository"
	"hackfest/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// RequestLogger scopes log to a single handler invocation.
func RequestLogger(log *slog.Logger, op string, r *http.Request) *slog.Logger {
	return log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
}

// DecodeAndValidate reads a JSON body into dst and validates it. On failure
// the error response is already written and false is returned.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, log *slog.Logger, dst any) bool {
	if err := render.DecodeJSON(r.Body, dst); err != nil {
		log.Error("failed to decode request body", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
		return false
	}

	if err := validate.Struct(dst); err != nil {
		log.Info("invalid request", sl.Err(err))

		var validateErr validator.ValidationErrors
		if !errors.As(err, &validateErr) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
			return false
		}

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.ValidationError(validateErr))
		return false
	}

	return true
}

// Caller returns the authenticated identity or writes 401.
func Caller(w http.ResponseWriter, r *http.Request) (mw.Identity, bool) {
	id, ok := mw.IdentityFrom(r.Context())
	if !ok {
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, api.Error(api.ErrCodeUnauthorized, "authentication required"))
	}

	return id, ok
}

// RenderError maps service and repository errors onto HTTP responses.
func RenderError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		log.Info("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrValidationErr, err.Error()))
	case errors.Is(err, repo.ErrNotFound):
		log.Info("not found", sl.Err(err))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
	case errors.Is(err, repo.ErrTeamExists):
		log.Info("team exists", sl.Err(err))
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, api.Error(api.ErrCodeTeamExists, err.Error()))
	case errors.Is(err, service.ErrConflict),
		errors.Is(err, repo.ErrInviteExist),
		errors.Is(err, repo.ErrUserInTeam),
		errors.Is(err, repo.ErrTeamFull):
		log.Info("conflict", sl.Err(err))
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, api.Error(api.ErrCodeConflict, err.Error()))
	default:
		log.Error("internal error", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
	}
}

func NewLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func DecodeErrorResponse(t *testing.T, body *bytes.Buffer) api.ErrorResponse {
	var resp api.ErrorResponse
	if err := json.NewDecoder(body).Decode(&resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	return resp
}

// WithURLParam sets a chi path parameter on r, as the router would.
func WithURLParam(r *http.Request, key, value string) *http.Request {
	rctx, ok := r.Context().Value(chi.RouteCtxKey).(*chi.Context)
	if !ok {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)

	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// AsUser attaches an authenticated identity to r.
func AsUser(r *http.Request, id mw.Identity) *http.Request {
	return r.WithContext(mw.WithIdentity(r.Context(), id))
}
