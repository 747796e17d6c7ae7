package repo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"hackfest/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var teamRowColumns = []string{"id", "name", "status", "team_leader_id", "created_at", "updated_at", "team_members"}

func TestTeamRepo_Create_Success(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewTeamRepo(db, getter())

	now := time.Now()
	team := &models.Team{ID: "t1", Name: "Alpha", Status: models.TeamStatusPending, LeaderID: "u1"}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO teams")).
		WithArgs("t1", "Alpha", models.TeamStatusPending, "u1").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	err := r.Create(context.Background(), team)

	require.NoError(t, err)
	assert.Equal(t, now, team.CreatedAt)
}

func TestTeamRepo_Create_DuplicateName(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewTeamRepo(db, getter())

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO teams")).
		WillReturnError(&pq.Error{Code: uniqueViolationCode})

	err := r.Create(context.Background(), &models.Team{ID: "t1", Name: "Alpha", LeaderID: "u1"})

	assert.ErrorIs(t, err, ErrTeamExists)
}

func TestTeamRepo_Create_LeaderAlreadyInTeam(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
	}{
		{name: "already leads a team", constraint: "teams_leader_uidx"},
		{name: "already a member", constraint: "team_members_user_id_key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			r := NewTeamRepo(db, getter())

			mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO teams")).
				WillReturnError(&pq.Error{Code: uniqueViolationCode, Constraint: tt.constraint})

			err := r.Create(context.Background(), &models.Team{ID: "t2", Name: "Beta", LeaderID: "u1"})

			assert.ErrorIs(t, err, ErrUserInTeam)
			assert.NotErrorIs(t, err, ErrTeamExists)
		})
	}
}

func TestTeamRepo_LockUser(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewTeamRepo(db, getter())

	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock(hashtext($1))")).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, r.LockUser(context.Background(), "u1"))
}

func TestTeamRepo_GetByID_ScansMembers(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewTeamRepo(db, getter())

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM teams t")).
		WithArgs("t1").
		WillReturnRows(sqlmock.NewRows(teamRowColumns).
			AddRow("t1", "Alpha", "pending", "u1", now, now, "{u2,u3}"))

	team, err := r.GetByID(context.Background(), "t1")

	require.NoError(t, err)
	assert.Equal(t, models.TeamStatusPending, team.Status)
	assert.Equal(t, pq.StringArray{"u2", "u3"}, team.Members)
}

func TestTeamRepo_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewTeamRepo(db, getter())

	mock.ExpectQuery(regexp.QuoteMeta("FROM teams t")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(teamRowColumns))

	team, err := r.GetByID(context.Background(), "missing")

	assert.Nil(t, team)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTeamRepo_LockByID_UsesRowLock(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewTeamRepo(db, getter())

	now := time.Now()
	mock.ExpectQuery("FOR UPDATE").
		WithArgs("t1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "status", "team_leader_id", "created_at", "updated_at"}).
			AddRow("t1", "Alpha", "pending", "u1", now, now))

	team, err := r.LockByID(context.Background(), "t1")

	require.NoError(t, err)
	assert.Equal(t, "u1", team.LeaderID)
}

func TestTeamRepo_ListByUser(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewTeamRepo(db, getter())

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("EXISTS (SELECT 1 FROM team_members x")).
		WithArgs("u2").
		WillReturnRows(sqlmock.NewRows(teamRowColumns).
			AddRow("t1", "Alpha", "approved", "u1", now, now, "{u2}"))

	teams, err := r.ListByUser(context.Background(), "u2")

	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, models.TeamStatusApproved, teams[0].Status)
}

func TestTeamRepo_IsUserInAnyTeam(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewTeamRepo(db, getter())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := r.IsUserInAnyTeam(context.Background(), "u1")

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTeamRepo_AddMember_MapsConstraintErrors(t *testing.T) {
	tests := []struct {
		name string
		code pq.ErrorCode
		want error
	}{
		{name: "already in a team", code: uniqueViolationCode, want: ErrUserInTeam},
		{name: "team full", code: checkViolationCode, want: ErrTeamFull},
		{name: "team gone", code: foreignKeyViolationCode, want: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			r := NewTeamRepo(db, getter())

			mock.ExpectExec(regexp.QuoteMeta("INSERT INTO team_members")).
				WithArgs("t1", "u2").
				WillReturnError(&pq.Error{Code: tt.code})

			err := r.AddMember(context.Background(), "t1", "u2")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTeamRepo_AddMember_Success(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewTeamRepo(db, getter())

	mock.ExpectExec(regexp.QuoteMeta("UPDATE teams SET updated_at = now()")).
		WithArgs("t1", "u2").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, r.AddMember(context.Background(), "t1", "u2"))
}

func TestTeamRepo_SetStatus_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewTeamRepo(db, getter())

	mock.ExpectExec(regexp.QuoteMeta("UPDATE teams SET status")).
		WithArgs(models.TeamStatusApproved, "t1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := r.SetStatus(context.Background(), "t1", models.TeamStatusApproved)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTeamRepo_Delete_DBError(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewTeamRepo(db, getter())

	dbErr := errors.New("connection reset")
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM teams")).
		WithArgs("t1").
		WillReturnError(dbErr)

	err := r.Delete(context.Background(), "t1")
	assert.ErrorIs(t, err, dbErr)
	assert.Contains(t, err.Error(), "team_repo.Delete")
}
