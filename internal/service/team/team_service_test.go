package team_test

import (
	"context"
	"errors"
	"testing"

	"hackfest/internal/lib/metrics"
	"hackfest/internal/lib/sl"
	"hackfest/internal/models"
	repo "hackfest/internal/repository"
	"hackfest/internal/service"
	"hackfest/internal/service/mocks"
	"hackfest/internal/service/team"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	trm     *mocks.MockManager
	teams   *mocks.TeamProvider
	invites *mocks.InviteProvider
	users   *mocks.UserProvider
}

func newFixture(t *testing.T) fixture {
	return fixture{
		trm:     mocks.NewMockManager(t),
		teams:   mocks.NewTeamProvider(t),
		invites: mocks.NewInviteProvider(t),
		users:   mocks.NewUserProvider(t),
	}
}

func (f fixture) service(opts ...team.Option) *team.TeamService {
	return team.NewTeamService(sl.NewDiscardLogger(), f.trm, f.teams, f.invites, f.users, opts...)
}

var (
	leader = &models.User{ID: "leader", Name: "Lena", Email: "lena@fest.io"}
	alice  = &models.User{ID: "alice", Name: "Alice", Email: "alice@fest.io"}
	bob    = &models.User{ID: "bob", Name: "Bob", Email: "bob@fest.io"}
	carol  = &models.User{ID: "carol", Name: "Carol", Email: "carol@fest.io"}
	dave   = &models.User{ID: "dave", Name: "Dave", Email: "dave@fest.io"}
)

func isInviteFor(inviteeID string) func(*models.TeamInvite) bool {
	return func(inv *models.TeamInvite) bool {
		return inv.InviteeID == inviteeID &&
			inv.InviterID == leader.ID &&
			inv.Status == models.InviteStatusPending &&
			inv.ID != "" && inv.TeamID != ""
	}
}

func TestTeamService_Create_Success(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	notifier := mocks.NewInviteNotifier(t)
	m := metrics.New(prometheus.NewRegistry())

	emails := []string{"alice@fest.io", "Bob@fest.io"}

	f.trm.ExpectDo()
	f.users.On("GetByEmails", ctx, emails).Return([]*models.User{alice, bob}, nil).Once()
	f.teams.On("LockUser", ctx, leader.ID).Return(nil).Once()
	f.teams.On("IsUserInAnyTeam", ctx, leader.ID).Return(false, nil).Once()
	f.users.On("GetById", ctx, leader.ID).Return(leader, nil).Once()
	f.teams.On("Create", ctx, mock.MatchedBy(func(tm *models.Team) bool {
		return tm.Name == "Alpha" && tm.LeaderID == leader.ID &&
			tm.Status == models.TeamStatusPending && len(tm.Members) == 0
	})).Return(nil).Once()
	f.invites.On("Create", ctx, mock.MatchedBy(isInviteFor(alice.ID))).Return(nil).Once()
	f.invites.On("Create", ctx, mock.MatchedBy(isInviteFor(bob.ID))).Return(nil).Once()
	notifier.On("NotifyTeamInvites", mock.Anything, mock.MatchedBy(func(tm *models.Team) bool {
		return tm.Name == "Alpha"
	}), leader, []*models.User{alice, bob}).Return(nil).Once()

	svc := f.service(team.WithNotifier(notifier), team.WithMetrics(m))

	id, err := svc.Create(ctx, "  Alpha ", leader.ID, emails)

	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.TeamsCreatedTotal))
}

func TestTeamService_Create_NoMembers(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.trm.ExpectDo()
	f.users.On("GetByEmails", ctx, []string(nil)).Return([]*models.User{}, nil).Once()
	f.teams.On("LockUser", ctx, leader.ID).Return(nil).Once()
	f.teams.On("IsUserInAnyTeam", ctx, leader.ID).Return(false, nil).Once()
	f.users.On("GetById", ctx, leader.ID).Return(leader, nil).Once()
	f.teams.On("Create", ctx, mock.AnythingOfType("*models.Team")).Return(nil).Once()

	id, err := f.service().Create(ctx, "Solo", leader.ID, nil)

	require.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestTeamService_Create_ValidationErrors(t *testing.T) {
	long := make([]rune, 65)
	for i := range long {
		long[i] = 'x'
	}

	tests := []struct {
		name   string
		team   string
		emails []string
	}{
		{name: "empty name", team: "   ", emails: []string{"alice@fest.io"}},
		{name: "long name", team: string(long), emails: nil},
		{name: "bad email", team: "Alpha", emails: []string{"not-an-email"}},
		{name: "empty email", team: "Alpha", emails: []string{""}},
		{name: "duplicate email", team: "Alpha", emails: []string{"alice@fest.io", "ALICE@fest.io"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			id, err := f.service().Create(context.Background(), tt.team, leader.ID, tt.emails)

			assert.Empty(t, id)
			assert.ErrorIs(t, err, service.ErrValidation)
		})
	}
}

func TestTeamService_Create_SelfInvite(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	emails := []string{"lena@fest.io"}

	f.trm.ExpectDo()
	f.users.On("GetByEmails", ctx, emails).Return([]*models.User{leader}, nil).Once()

	id, err := f.service().Create(ctx, "Alpha", leader.ID, emails)

	assert.Empty(t, id)
	assert.ErrorIs(t, err, team.ErrSelfInvite)
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestTeamService_Create_TooManyMembers(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	emails := []string{"alice@fest.io", "bob@fest.io", "carol@fest.io", "dave@fest.io"}

	f.trm.ExpectDo()
	f.users.On("GetByEmails", ctx, emails).Return([]*models.User{alice, bob, carol, dave}, nil).Once()

	id, err := f.service().Create(ctx, "Alpha", leader.ID, emails)

	assert.Empty(t, id)
	assert.ErrorIs(t, err, team.ErrTooManyMembers)
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestTeamService_Create_UnknownEmails(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	emails := []string{"alice@fest.io", "ghost@fest.io", "nobody@fest.io"}

	f.trm.ExpectDo()
	f.users.On("GetByEmails", ctx, emails).Return([]*models.User{alice}, nil).Once()

	id, err := f.service().Create(ctx, "Alpha", leader.ID, emails)

	assert.Empty(t, id)
	assert.ErrorIs(t, err, repo.ErrNotFound)

	var notFound *team.UsersNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, []string{"ghost@fest.io", "nobody@fest.io"}, notFound.Emails)
	assert.Contains(t, err.Error(), "ghost@fest.io, nobody@fest.io")
}

func TestTeamService_Create_LeaderAlreadyInTeam(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	emails := []string{"alice@fest.io"}

	f.trm.ExpectDo()
	f.users.On("GetByEmails", ctx, emails).Return([]*models.User{alice}, nil).Once()
	f.teams.On("LockUser", ctx, leader.ID).Return(nil).Once()
	f.teams.On("IsUserInAnyTeam", ctx, leader.ID).Return(true, nil).Once()

	id, err := f.service().Create(ctx, "Alpha", leader.ID, emails)

	assert.Empty(t, id)
	assert.ErrorIs(t, err, team.ErrAlreadyInTeam)
	assert.ErrorIs(t, err, service.ErrConflict)
}

func TestTeamService_Create_TeamExists(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	emails := []string{"alice@fest.io"}

	f.trm.ExpectDo()
	f.users.On("GetByEmails", ctx, emails).Return([]*models.User{alice}, nil).Once()
	f.teams.On("LockUser", ctx, leader.ID).Return(nil).Once()
	f.teams.On("IsUserInAnyTeam", ctx, leader.ID).Return(false, nil).Once()
	f.users.On("GetById", ctx, leader.ID).Return(leader, nil).Once()
	f.teams.On("Create", ctx, mock.AnythingOfType("*models.Team")).Return(repo.ErrTeamExists).Once()

	id, err := f.service().Create(ctx, "Alpha", leader.ID, emails)

	assert.Empty(t, id)
	assert.ErrorIs(t, err, repo.ErrTeamExists)
}

func TestTeamService_Create_ConcurrentTeamForLeader(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	emails := []string{"alice@fest.io"}

	call := f.trm.ExpectDo()
	f.users.On("GetByEmails", ctx, emails).Return([]*models.User{alice}, nil).Once()
	f.teams.On("LockUser", ctx, leader.ID).Return(nil).Once()
	f.teams.On("IsUserInAnyTeam", ctx, leader.ID).Return(false, nil).Once()
	f.users.On("GetById", ctx, leader.ID).Return(leader, nil).Once()
	f.teams.On("Create", ctx, mock.AnythingOfType("*models.Team")).Return(repo.ErrUserInTeam).Once()

	id, err := f.service().Create(ctx, "Alpha", leader.ID, emails)

	assert.Empty(t, id)
	assert.ErrorIs(t, err, team.ErrAlreadyInTeam)
	assert.NotErrorIs(t, err, repo.ErrTeamExists)
	assert.ErrorIs(t, call.ReturnArguments.Error(0), team.ErrAlreadyInTeam)
}

func TestTeamService_Create_LockFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	emails := []string{"alice@fest.io"}
	dbErr := errors.New("lock timeout")

	f.trm.ExpectDo()
	f.users.On("GetByEmails", ctx, emails).Return([]*models.User{alice}, nil).Once()
	f.teams.On("LockUser", ctx, leader.ID).Return(dbErr).Once()

	id, err := f.service().Create(ctx, "Alpha", leader.ID, emails)

	assert.Empty(t, id)
	assert.ErrorIs(t, err, dbErr)
}

func TestTeamService_Create_InviteErrorSkipsNotification(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	notifier := mocks.NewInviteNotifier(t)
	m := metrics.New(prometheus.NewRegistry())

	emails := []string{"alice@fest.io", "bob@fest.io"}
	dbErr := errors.New("insert failed")

	f.trm.ExpectDo()
	f.users.On("GetByEmails", ctx, emails).Return([]*models.User{alice, bob}, nil).Once()
	f.teams.On("LockUser", ctx, leader.ID).Return(nil).Once()
	f.teams.On("IsUserInAnyTeam", ctx, leader.ID).Return(false, nil).Once()
	f.users.On("GetById", ctx, leader.ID).Return(leader, nil).Once()
	f.teams.On("Create", ctx, mock.AnythingOfType("*models.Team")).Return(nil).Once()
	f.invites.On("Create", ctx, mock.MatchedBy(isInviteFor(alice.ID))).Return(nil).Once()
	f.invites.On("Create", ctx, mock.MatchedBy(isInviteFor(bob.ID))).Return(dbErr).Once()

	id, err := f.service(team.WithNotifier(notifier), team.WithMetrics(m)).Create(ctx, "Alpha", leader.ID, emails)

	assert.Empty(t, id)
	assert.ErrorIs(t, err, dbErr)
	assert.Equal(t, float64(0), testutil.ToFloat64(m.TeamsCreatedTotal))
	notifier.AssertNotCalled(t, "NotifyTeamInvites", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTeamService_Create_NotificationFailureIsIgnored(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	notifier := mocks.NewInviteNotifier(t)
	m := metrics.New(prometheus.NewRegistry())

	emails := []string{"alice@fest.io"}

	f.trm.ExpectDo()
	f.users.On("GetByEmails", ctx, emails).Return([]*models.User{alice}, nil).Once()
	f.teams.On("LockUser", ctx, leader.ID).Return(nil).Once()
	f.teams.On("IsUserInAnyTeam", ctx, leader.ID).Return(false, nil).Once()
	f.users.On("GetById", ctx, leader.ID).Return(leader, nil).Once()
	f.teams.On("Create", ctx, mock.AnythingOfType("*models.Team")).Return(nil).Once()
	f.invites.On("Create", ctx, mock.MatchedBy(isInviteFor(alice.ID))).Return(nil).Once()
	notifier.On("NotifyTeamInvites", mock.Anything, mock.Anything, leader, []*models.User{alice}).
		Return(errors.New("smtp down")).Once()

	id, err := f.service(team.WithNotifier(notifier), team.WithMetrics(m)).Create(ctx, "Alpha", leader.ID, emails)

	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.NotificationFailuresTotal))
}
