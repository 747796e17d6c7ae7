package repo

import (
	"context"
	"regexp"
	"testing"
	"time"

	"hackfest/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var eventRowColumns = []string{"id", "name", "description", "image_url", "whatsapp_url", "start_date", "end_date",
	"total_hours", "ticket_cost", "created_by", "created_at", "updated_at"}

func TestEventRepo_GetByID_NullableURLs(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewEventRepo(db, getter())

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM events WHERE id = $1")).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows(eventRowColumns).
			AddRow("e1", "Hackathon", "24h build", nil, "https://chat", now, now.Add(24*time.Hour),
				24, 500, "admin", now, now))

	e, err := r.GetByID(context.Background(), "e1")

	require.NoError(t, err)
	assert.Nil(t, e.ImageURL)
	require.NotNil(t, e.WhatsappURL)
	assert.Equal(t, "https://chat", *e.WhatsappURL)
	assert.Equal(t, 500, e.TicketCost)
}

func TestEventRepo_Create_UnknownCreator(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewEventRepo(db, getter())

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO events")).
		WillReturnError(&pq.Error{Code: foreignKeyViolationCode})

	err := r.Create(context.Background(), &models.Event{ID: "e1", CreatedBy: "ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEventRepo_Update_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewEventRepo(db, getter())

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE events")).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}))

	err := r.Update(context.Background(), &models.Event{ID: "e1"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEventRepo_ListLatest(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewEventRepo(db, getter())

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC LIMIT $1")).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows(eventRowColumns).
			AddRow("e2", "Roadies", "", nil, nil, now, now, 2, 0, "admin", now, now).
			AddRow("e1", "Singing", "", nil, nil, now, now, 1, 0, "admin", now, now))

	events, err := r.ListLatest(context.Background(), 4)

	require.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, "e2", events[0].ID)
}
