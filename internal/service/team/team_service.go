package team

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"hackfest/internal/lib/metrics"
	"hackfest/internal/lib/sl"
	"hackfest/internal/models"
	repo "hackfest/internal/repository"
	"hackfest/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	maxTeamNameLen     = 64
	defaultSearchLimit = 10
	maxSearchLimit     = 50
	minSearchQueryLen  = 2
	notifyTimeout      = 10 * time.Second
)

var (
	ErrSelfInvite     = fmt.Errorf("%w: you cannot invite yourself to the team", service.ErrValidation)
	ErrTooManyMembers = fmt.Errorf("%w: a team can have a maximum of %d members plus the leader",
		service.ErrValidation, models.MaxTeamMembers)
	ErrInvalidResponse = fmt.Errorf("%w: response must be accepted or declined", service.ErrValidation)

	ErrAlreadyInTeam = fmt.Errorf("%w: user already belongs to a team", service.ErrConflict)
	ErrTeamFull      = fmt.Errorf("%w: team already has %d members", service.ErrConflict, models.MaxTeamMembers)

	ErrInviteNotFound  = fmt.Errorf("%w: invite not found", repo.ErrNotFound)
	ErrInviteResponded = fmt.Errorf("%w: invite already responded to", repo.ErrNotFound)
)

// UsersNotFoundError lists member emails that did not resolve to a user.
type UsersNotFoundError struct {
	Emails []string
}

func (e *UsersNotFoundError) Error() string {
	return "users not found for emails: " + strings.Join(e.Emails, ", ")
}

func (e *UsersNotFoundError) Unwrap() error {
	return repo.ErrNotFound
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TeamProvider
type TeamProvider interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, teamID string) (*models.Team, error)
	LockByID(ctx context.Context, teamID string) (*models.Team, error)
	LockUser(ctx context.Context, userID string) error
	ListByUser(ctx context.Context, userID string) ([]*models.Team, error)
	ListAll(ctx context.Context) ([]*models.Team, error)
	IsUserInAnyTeam(ctx context.Context, userID string) (bool, error)
	CountMembers(ctx context.Context, teamID string) (int, error)
	AddMember(ctx context.Context, teamID, userID string) error
	SetStatus(ctx context.Context, teamID string, status models.TeamStatus) error
	Delete(ctx context.Context, teamID string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=InviteProvider
type InviteProvider interface {
	Create(ctx context.Context, invite *models.TeamInvite) error
	GetByID(ctx context.Context, inviteID string) (*models.TeamInvite, error)
	Respond(ctx context.Context, inviteID, inviteeID string, status models.InviteStatus) (*models.TeamInvite, error)
	ListPendingByInvitee(ctx context.Context, userID string) ([]*models.TeamInviteDetails, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=UserProvider
type UserProvider interface {
	GetById(ctx context.Context, userID string) (*models.User, error)
	GetByIDs(ctx context.Context, ids []string) ([]*models.User, error)
	GetByEmails(ctx context.Context, emails []string) ([]*models.User, error)
	SearchByEmail(ctx context.Context, needle string, limit int) ([]*models.User, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=InviteNotifier
type InviteNotifier interface {
	NotifyTeamInvites(ctx context.Context, team *models.Team, leader *models.User, invitees []*models.User) error
}

type TeamService struct {
	log            *slog.Logger
	trm            service.TransactionManager
	teamProvider   TeamProvider
	inviteProvider InviteProvider
	userProvider   UserProvider
	notifier       InviteNotifier
	metrics        *metrics.Metrics
	validate       *validator.Validate

	searchDefaultLimit int
	searchMaxLimit     int
}

type Option func(*TeamService)

// WithNotifier enables e-mails to invitees after a team is created.
func WithNotifier(n InviteNotifier) Option {
	return func(s *TeamService) {
		s.notifier = n
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *TeamService) {
		s.metrics = m
	}
}

// WithSearchLimits overrides the default and maximum page size of user search.
// Non-positive values keep the defaults.
func WithSearchLimits(defaultLimit, maxLimit int) Option {
	return func(s *TeamService) {
		if defaultLimit > 0 {
			s.searchDefaultLimit = defaultLimit
		}
		if maxLimit > 0 {
			s.searchMaxLimit = maxLimit
		}
	}
}

func NewTeamService(
	log *slog.Logger,
	trm service.TransactionManager,
	teamProvider TeamProvider,
	inviteProvider InviteProvider,
	userProvider UserProvider,
	opts ...Option,
) *TeamService {
	s := &TeamService{
		log:                log,
		trm:                trm,
		teamProvider:       teamProvider,
		inviteProvider:     inviteProvider,
		userProvider:       userProvider,
		validate:           validator.New(),
		searchDefaultLimit: defaultSearchLimit,
		searchMaxLimit:     maxSearchLimit,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Create registers a pending team led by leaderID and invites every member
// email. Nothing is written unless all emails resolve and the checks pass.
func (s *TeamService) Create(ctx context.Context, name, leaderID string, memberEmails []string) (string, error) {
	name = strings.TrimSpace(name)
	if err := s.validateCreate(name, memberEmails); err != nil {
		return "", err
	}

	team := &models.Team{
		ID:       uuid.NewString(),
		Name:     name,
		Status:   models.TeamStatusPending,
		LeaderID: leaderID,
		Members:  []string{},
	}

	var (
		leader   *models.User
		invitees []*models.User
	)

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		members, err := s.userProvider.GetByEmails(ctx, memberEmails)
		if err != nil {
			return err
		}

		if missing := missingEmails(memberEmails, members); len(missing) > 0 {
			return &UsersNotFoundError{Emails: missing}
		}

		for _, m := range members {
			if m.ID == leaderID {
				return ErrSelfInvite
			}
		}

		if len(members) > models.MaxTeamMembers {
			return ErrTooManyMembers
		}

		if err := s.teamProvider.LockUser(ctx, leaderID); err != nil {
			return err
		}

		busy, err := s.teamProvider.IsUserInAnyTeam(ctx, leaderID)
		if err != nil {
			return err
		}
		if busy {
			return ErrAlreadyInTeam
		}

		leader, err = s.userProvider.GetById(ctx, leaderID)
		if err != nil {
			return err
		}

		if err := s.teamProvider.Create(ctx, team); err != nil {
			if errors.Is(err, repo.ErrUserInTeam) {
				return ErrAlreadyInTeam
			}
			return err
		}

		for _, m := range members {
			invite := &models.TeamInvite{
				ID:        uuid.NewString(),
				TeamID:    team.ID,
				InviteeID: m.ID,
				InviterID: leaderID,
				Status:    models.InviteStatusPending,
			}

			if err := s.inviteProvider.Create(ctx, invite); err != nil {
				return err
			}
		}

		invitees = members

		return nil
	})
	if err != nil {
		return "", err
	}

	s.metrics.TeamCreated()
	s.notifyInvitees(ctx, team, leader, invitees)

	return team.ID, nil
}

func (s *TeamService) validateCreate(name string, memberEmails []string) error {
	if name == "" {
		return service.Validation("team name is required")
	}
	if len([]rune(name)) > maxTeamNameLen {
		return service.Validation(fmt.Sprintf("team name must be no more than %d characters", maxTeamNameLen))
	}

	seen := make(map[string]struct{}, len(memberEmails))
	for _, email := range memberEmails {
		if err := s.validate.Var(email, "required,email"); err != nil {
			return service.Validation(fmt.Sprintf("invalid email %q", email))
		}

		key := strings.ToLower(email)
		if _, ok := seen[key]; ok {
			return service.Validation(fmt.Sprintf("duplicate email %q", email))
		}
		seen[key] = struct{}{}
	}

	return nil
}

// notifyInvitees runs after commit; a failed notification never fails
// team creation.
func (s *TeamService) notifyInvitees(ctx context.Context, team *models.Team, leader *models.User, invitees []*models.User) {
	if s.notifier == nil || len(invitees) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	if err := s.notifier.NotifyTeamInvites(ctx, team, leader, invitees); err != nil {
		s.metrics.NotificationFailed()
		s.log.Error("failed to notify invitees",
			slog.String("team_id", team.ID),
			sl.Err(err),
		)
	}
}

func missingEmails(requested []string, found []*models.User) []string {
	known := make(map[string]struct{}, len(found))
	for _, u := range found {
		known[strings.ToLower(u.Email)] = struct{}{}
	}

	var missing []string
	for _, email := range requested {
		if _, ok := known[strings.ToLower(email)]; !ok {
			missing = append(missing, email)
		}
	}

	return missing
}

func isNotFound(err error) bool {
	return errors.Is(err, repo.ErrNotFound)
}
