package team

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"hackfest/internal/http/api"
	"hackfest/internal/http/handlers"
	"hackfest/internal/lib/sl"
	"hackfest/internal/models"
	teamsvc "hackfest/internal/service/team"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type RespondInviteRequest struct {
	Response string `json:"response" validate:"required,oneof=accepted declined"`
}

// SearchUsers backs the member picker: GET /users/search?q=&limit=
func (h *TeamHandler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.SearchUsers"
	log := handlers.RequestLogger(h.log, op, r)

	if _, ok := handlers.Caller(w, r); !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			log.Info("invalid limit", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrBadRequest, "limit must be an integer"))
			return
		}
		limit = n
	}

	users := h.service.SearchUsersByEmail(r.Context(), r.URL.Query().Get("q"), limit)

	render.JSON(w, r, api.UsersResponse{Users: users})
}

func (h *TeamHandler) Invites(w http.ResponseWriter, r *http.Request) {
	caller, ok := handlers.Caller(w, r)
	if !ok {
		return
	}

	invites := h.service.GetUserInvites(r.Context(), caller.UserID)

	render.JSON(w, r, api.InvitesResponse{Invites: invites})
}

func (h *TeamHandler) Respond(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.Respond"
	log := handlers.RequestLogger(h.log, op, r)

	caller, ok := handlers.Caller(w, r)
	if !ok {
		return
	}

	var input RespondInviteRequest
	if !handlers.DecodeAndValidate(w, r, log, &input) {
		return
	}

	inviteID := chi.URLParam(r, "id")
	response := models.InviteStatus(input.Response)

	err := h.service.RespondToInvite(r.Context(), inviteID, caller.UserID, response)
	if err != nil {
		if errors.Is(err, teamsvc.ErrInviteResponded) {
			log.Info("invite already answered", slog.String("invite_id", inviteID))

			render.Status(r, http.StatusConflict)
			render.JSON(w, r, api.Error(api.ErrCodeInviteAnswered, err.Error()))
			return
		}

		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("invite answered", slog.String("invite_id", inviteID), slog.String("response", input.Response))
	render.JSON(w, r, api.RespondInviteResponse{Success: true, Status: input.Response})
}
