package repo

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userRowColumns = []string{"id", "name", "email", "phone", "is_admin", "created_at", "updated_at"}

func TestUserRepo_SearchByEmail_EscapesWildcards(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewUserRepo(db, getter())

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE email ILIKE")).
		WithArgs(`a\%`, 10).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow("u1", "Ann", "a%b@x.com", "", false, now, now))

	users, err := r.SearchByEmail(context.Background(), "a%", 10)

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "a%b@x.com", users[0].Email)
}

func TestUserRepo_GetByEmails_Empty(t *testing.T) {
	db, _ := newMockDB(t)
	r := NewUserRepo(db, getter())

	users, err := r.GetByEmails(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserRepo_GetByEmails(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewUserRepo(db, getter())

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE lower(email) = ANY($1)")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow("u2", "Bob", "u2@x.com", "555", false, now, now))

	users, err := r.GetByEmails(context.Background(), []string{"U2@X.com"})

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "555", users[0].Phone)
}

func TestUserRepo_GetById_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewUserRepo(db, getter())

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	user, err := r.GetById(context.Background(), "nope")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepo_SetAdmin(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewUserRepo(db, getter())

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET is_admin = $1")).
		WithArgs(true, "u1").
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow("u1", "Ann", "ann@x.com", "", true, now, now))

	user, err := r.SetAdmin(context.Background(), "u1", true)

	require.NoError(t, err)
	assert.True(t, user.IsAdmin)
}

func TestUserRepo_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewUserRepo(db, getter())

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, r.Delete(context.Background(), "u1"))
}

func TestUserRepo_Delete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewUserRepo(db, getter())

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users")).
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, r.Delete(context.Background(), "ghost"), ErrNotFound)
}
