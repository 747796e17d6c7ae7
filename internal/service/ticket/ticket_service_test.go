package ticket_test

import (
	"context"
	"testing"
	"time"

	"hackfest/internal/models"
	repo "hackfest/internal/repository"
	"hackfest/internal/service"
	"hackfest/internal/service/mocks"
	"hackfest/internal/service/ticket"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	trm     *mocks.MockManager
	tickets *mocks.TicketProvider
	events  *mocks.EventGetter
	svc     *ticket.TicketService
}

func newFixture(t *testing.T) fixture {
	f := fixture{
		trm:     mocks.NewMockManager(t),
		tickets: mocks.NewTicketProvider(t),
		events:  mocks.NewEventGetter(t),
	}
	f.svc = ticket.NewTicketService(f.trm, f.tickets, f.events)

	return f
}

func storedTicket() *models.Ticket {
	return &models.Ticket{
		ID:          "tk1",
		Name:        "Alice",
		PhoneNumber: "+4915100000",
		Status:      models.TicketStatusPending,
		EventID:     "e1",
		UserID:      "alice",
	}
}

func TestTicketService_Create_Success(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.trm.ExpectDo()
	f.events.On("GetByID", ctx, "e1").Return(&models.Event{ID: "e1"}, nil).Once()
	f.tickets.On("Create", ctx, mock.MatchedBy(func(tk *models.Ticket) bool {
		return tk.ID != "" && tk.Name == "Alice" && tk.PhoneNumber == "+4915100000" &&
			tk.Status == models.TicketStatusPending && tk.UserID == "alice"
	})).Return(nil).Once()

	resp, err := f.svc.Create(ctx, "alice", "e1", " Alice ", "+4915100000")

	require.NoError(t, err)
	assert.Equal(t, string(models.TicketStatusPending), resp.Status)
	assert.Equal(t, "e1", resp.EventID)
}

func TestTicketService_Create_EventMissing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.trm.ExpectDo()
	f.events.On("GetByID", ctx, "nope").Return(nil, repo.ErrNotFound).Once()

	resp, err := f.svc.Create(ctx, "alice", "nope", "Alice", "+4915100000")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestTicketService_Create_Validation(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), "alice", "e1", "", "+4915100000")
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = f.svc.Create(context.Background(), "alice", "e1", "Alice", "  ")
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestTicketService_ListUserTickets(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	details := &models.TicketDetails{
		Ticket:          *storedTicket(),
		EventName:       "Hack Night",
		EventStartDate:  start,
		EventEndDate:    start.Add(time.Hour),
		EventTicketCost: 500,
		UserName:        "Alice",
		UserEmail:       "alice@fest.io",
	}

	f.tickets.On("ListDetailsByUser", ctx, "alice").Return([]*models.TicketDetails{details}, nil).Once()

	resp, err := f.svc.ListUserTickets(ctx, "alice")

	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "Hack Night", resp[0].Event.Name)
	assert.Equal(t, "alice@fest.io", resp[0].Creator.Email)
}

func TestTicketService_ListEventTickets(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.trm.ExpectDo()
	f.events.On("GetByID", ctx, "e1").Return(&models.Event{ID: "e1"}, nil).Once()
	f.tickets.On("ListByEvent", ctx, "e1").Return([]*models.Ticket{storedTicket()}, nil).Once()

	resp, err := f.svc.ListEventTickets(ctx, "e1")

	require.NoError(t, err)
	assert.Len(t, resp, 1)
}

func TestTicketService_Approve(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.trm.ExpectDo()
	f.tickets.On("GetByID", ctx, "tk1").Return(storedTicket(), nil).Once()
	f.tickets.On("Update", ctx, mock.MatchedBy(func(tk *models.Ticket) bool {
		return tk.Status == models.TicketStatusApproved
	})).Return(nil).Once()

	resp, err := f.svc.Approve(ctx, "tk1")

	require.NoError(t, err)
	assert.Equal(t, string(models.TicketStatusApproved), resp.Status)
}

func TestTicketService_Update(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	phone := "+4915199999"

	f.trm.ExpectDo()
	f.tickets.On("GetByID", ctx, "tk1").Return(storedTicket(), nil).Once()
	f.tickets.On("Update", ctx, mock.MatchedBy(func(tk *models.Ticket) bool {
		return tk.PhoneNumber == phone && tk.Name == "Alice"
	})).Return(nil).Once()

	resp, err := f.svc.Update(ctx, "tk1", models.TicketPatch{PhoneNumber: &phone})

	require.NoError(t, err)
	assert.Equal(t, phone, resp.PhoneNumber)
}

func TestTicketService_Update_InvalidStatus(t *testing.T) {
	f := newFixture(t)

	status := models.TicketStatus("used")

	resp, err := f.svc.Update(context.Background(), "tk1", models.TicketPatch{Status: &status})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestTicketService_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.trm.ExpectDo()
	f.tickets.On("GetByID", ctx, "nope").Return(nil, repo.ErrNotFound).Once()

	resp, err := f.svc.Approve(ctx, "nope")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestTicketService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.tickets.On("Delete", ctx, "tk1").Return(nil).Once()

	assert.NoError(t, f.svc.Delete(ctx, "tk1"))
}

func TestTicketService_Get(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.tickets.On("GetByID", ctx, "tk1").Return(storedTicket(), nil).Once()

	resp, err := f.svc.Get(ctx, "tk1")

	require.NoError(t, err)
	assert.Equal(t, "tk1", resp.ID)
	assert.Equal(t, "Alice", resp.Name)
}

func TestTicketService_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.tickets.On("GetByID", ctx, "nope").Return(nil, repo.ErrNotFound).Once()

	resp, err := f.svc.Get(ctx, "nope")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}
