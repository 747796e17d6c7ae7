package ticket

import (
	"context"
	"log/slog"
	"net/http"

	"hackfest/internal/http/api"
	"hackfest/internal/http/handlers"
	"hackfest/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=ticketService --structname=MockTicketService --output=../mocks --outpkg=mocks
type ticketService interface {
	Create(ctx context.Context, userID, eventID, name, phone string) (*api.TicketSchema, error)
	ListUserTickets(ctx context.Context, userID string) ([]api.TicketDetailsSchema, error)
	ListTickets(ctx context.Context) ([]api.TicketDetailsSchema, error)
	Get(ctx context.Context, ticketID string) (*api.TicketSchema, error)
	ListEventTickets(ctx context.Context, eventID string) ([]api.TicketSchema, error)
	Update(ctx context.Context, ticketID string, patch models.TicketPatch) (*api.TicketSchema, error)
	Approve(ctx context.Context, ticketID string) (*api.TicketSchema, error)
	Delete(ctx context.Context, ticketID string) error
}

type TicketHandler struct {
	log     *slog.Logger
	service ticketService
}

func NewTicketHandler(log *slog.Logger, s ticketService) *TicketHandler {
	return &TicketHandler{
		log:     log,
		service: s,
	}
}

type CreateTicketRequest struct {
	EventID     string `json:"event_id" validate:"required"`
	Name        string `json:"name" validate:"required,max=100"`
	PhoneNumber string `json:"phone_number" validate:"required,max=20"`
}

type UpdateTicketRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=20"`
	Status      *string `json:"status" validate:"omitempty,oneof=pending approved"`
}

func (h *TicketHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.ticket.Create"
	log := handlers.RequestLogger(h.log, op, r)

	caller, ok := handlers.Caller(w, r)
	if !ok {
		return
	}

	var input CreateTicketRequest
	if !handlers.DecodeAndValidate(w, r, log, &input) {
		return
	}

	ticket, err := h.service.Create(r.Context(), caller.UserID, input.EventID, input.Name, input.PhoneNumber)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("ticket created", slog.String("ticket_id", ticket.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.TicketResponse{Ticket: *ticket})
}

func (h *TicketHandler) Mine(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.ticket.Mine"
	log := handlers.RequestLogger(h.log, op, r)

	caller, ok := handlers.Caller(w, r)
	if !ok {
		return
	}

	tickets, err := h.service.ListUserTickets(r.Context(), caller.UserID)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, api.TicketDetailsResponse{Tickets: tickets})
}

func (h *TicketHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.ticket.List"
	log := handlers.RequestLogger(h.log, op, r)

	tickets, err := h.service.ListTickets(r.Context())
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, api.TicketDetailsResponse{Tickets: tickets})
}

func (h *TicketHandler) ListByEvent(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.ticket.ListByEvent"
	log := handlers.RequestLogger(h.log, op, r)

	tickets, err := h.service.ListEventTickets(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, api.TicketsResponse{Tickets: tickets})
}

func (h *TicketHandler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.ticket.Update"
	log := handlers.RequestLogger(h.log, op, r)

	var input UpdateTicketRequest
	if !handlers.DecodeAndValidate(w, r, log, &input) {
		return
	}

	patch := models.TicketPatch{
		Name:        input.Name,
		PhoneNumber: input.PhoneNumber,
	}
	if input.Status != nil {
		status := models.TicketStatus(*input.Status)
		patch.Status = &status
	}

	ticket, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, api.TicketResponse{Ticket: *ticket})
}

func (h *TicketHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.ticket.Get"
	log := handlers.RequestLogger(h.log, op, r)

	ticket, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, api.TicketResponse{Ticket: *ticket})
}

func (h *TicketHandler) Approve(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.ticket.Approve"
	log := handlers.RequestLogger(h.log, op, r)

	ticketID := chi.URLParam(r, "id")

	ticket, err := h.service.Approve(r.Context(), ticketID)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("ticket approved", slog.String("ticket_id", ticketID))
	render.JSON(w, r, api.TicketResponse{Ticket: *ticket})
}

func (h *TicketHandler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.ticket.Delete"
	log := handlers.RequestLogger(h.log, op, r)

	ticketID := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), ticketID); err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("ticket deleted", slog.String("ticket_id", ticketID))
	render.NoContent(w, r)
}
