package team

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"hackfest/internal/http/api"
	"hackfest/internal/http/handlers"
	"hackfest/internal/lib/sl"
	"hackfest/internal/models"
	teamsvc "hackfest/internal/service/team"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=teamService --structname=MockTeamService --output=../mocks --outpkg=mocks
type teamService interface {
	Create(ctx context.Context, name, leaderID string, memberEmails []string) (string, error)
	GetUserTeamsWithDetails(ctx context.Context, userID string) []api.TeamDetailsSchema
	SearchUsersByEmail(ctx context.Context, query string, limit int) []api.UserPublic
	GetUserInvites(ctx context.Context, userID string) []api.InviteSchema
	RespondToInvite(ctx context.Context, inviteID, userID string, response models.InviteStatus) error
	ListTeams(ctx context.Context) ([]api.TeamDetailsSchema, error)
	GetTeam(ctx context.Context, teamID string) (*api.TeamDetailsSchema, error)
	ApproveTeam(ctx context.Context, teamID string) (*api.TeamSchema, error)
	DeleteTeam(ctx context.Context, teamID string) error
}

type TeamHandler struct {
	log     *slog.Logger
	service teamService
}

func NewTeamHandler(log *slog.Logger, s teamService) *TeamHandler {
	return &TeamHandler{
		log:     log,
		service: s,
	}
}

type CreateTeamRequest struct {
	Name         string   `json:"name" validate:"required,max=64"`
	MemberEmails []string `json:"member_emails" validate:"dive,required,email"`
}

// Create registers a team led by the caller.
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.Create"
	log := handlers.RequestLogger(h.log, op, r)

	caller, ok := handlers.Caller(w, r)
	if !ok {
		return
	}

	var input CreateTeamRequest
	if !handlers.DecodeAndValidate(w, r, log, &input) {
		return
	}

	teamID, err := h.service.Create(r.Context(), input.Name, caller.UserID, input.MemberEmails)
	if err != nil {
		var notFound *teamsvc.UsersNotFoundError
		if errors.As(err, &notFound) {
			log.Info("unknown member emails", sl.Err(err))

			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}

		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("team created", slog.String("team_id", teamID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.CreateTeamResponse{TeamID: teamID})
}

// Mine lists the caller's teams with member details.
func (h *TeamHandler) Mine(w http.ResponseWriter, r *http.Request) {
	caller, ok := handlers.Caller(w, r)
	if !ok {
		return
	}

	teams := h.service.GetUserTeamsWithDetails(r.Context(), caller.UserID)

	render.JSON(w, r, api.TeamsResponse{Teams: teams})
}
