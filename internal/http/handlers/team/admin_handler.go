package team

import (
	"log/slog"
	"net/http"

	"hackfest/internal/http/api"
	"hackfest/internal/http/handlers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.List"
	log := handlers.RequestLogger(h.log, op, r)

	teams, err := h.service.ListTeams(r.Context())
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, api.TeamsResponse{Teams: teams})
}

func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.Get"
	log := handlers.RequestLogger(h.log, op, r)

	team, err := h.service.GetTeam(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, api.TeamDetailsResponse{Team: *team})
}

func (h *TeamHandler) Approve(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.Approve"
	log := handlers.RequestLogger(h.log, op, r)

	teamID := chi.URLParam(r, "id")

	team, err := h.service.ApproveTeam(r.Context(), teamID)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("team approved", slog.String("team_id", teamID))
	render.JSON(w, r, api.TeamResponse{Team: *team})
}

func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.Delete"
	log := handlers.RequestLogger(h.log, op, r)

	teamID := chi.URLParam(r, "id")

	if err := h.service.DeleteTeam(r.Context(), teamID); err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("team deleted", slog.String("team_id", teamID))
	render.NoContent(w, r)
}
