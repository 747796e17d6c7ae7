package event

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"hackfest/internal/http/api"
	"hackfest/internal/http/handlers"
	"hackfest/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=eventService --structname=MockEventService --output=../mocks --outpkg=mocks
type eventService interface {
	Create(ctx context.Context, e *models.Event) (*api.EventSchema, error)
	Get(ctx context.Context, eventID string) (*api.EventSchema, error)
	List(ctx context.Context) ([]api.EventSchema, error)
	ListUpcoming(ctx context.Context) ([]api.EventSchema, error)
	ListLatest(ctx context.Context) ([]api.HomeEvent, error)
	Update(ctx context.Context, eventID string, patch models.EventPatch) (*api.EventSchema, error)
	Delete(ctx context.Context, eventID string) error
}

type EventHandler struct {
	log     *slog.Logger
	service eventService
}

func NewEventHandler(log *slog.Logger, s eventService) *EventHandler {
	return &EventHandler{
		log:     log,
		service: s,
	}
}

type CreateEventRequest struct {
	Name        string    `json:"name" validate:"required,max=200"`
	Description string    `json:"description" validate:"required"`
	ImageURL    *string   `json:"image_url" validate:"omitempty,url"`
	WhatsappURL *string   `json:"whatsapp_url" validate:"omitempty,url"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	TotalHours  int       `json:"total_hours" validate:"required,gt=0"`
	TicketCost  int       `json:"ticket_cost" validate:"gte=0"`
}

type UpdateEventRequest struct {
	Name        *string    `json:"name" validate:"omitempty,max=200"`
	Description *string    `json:"description"`
	ImageURL    *string    `json:"image_url" validate:"omitempty,url"`
	WhatsappURL *string    `json:"whatsapp_url" validate:"omitempty,url"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	TotalHours  *int       `json:"total_hours" validate:"omitempty,gt=0"`
	TicketCost  *int       `json:"ticket_cost" validate:"omitempty,gte=0"`
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.event.Create"
	log := handlers.RequestLogger(h.log, op, r)

	caller, ok := handlers.Caller(w, r)
	if !ok {
		return
	}

	var input CreateEventRequest
	if !handlers.DecodeAndValidate(w, r, log, &input) {
		return
	}

	event, err := h.service.Create(r.Context(), &models.Event{
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		WhatsappURL: input.WhatsappURL,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		TotalHours:  input.TotalHours,
		TicketCost:  input.TicketCost,
		CreatedBy:   caller.UserID,
	})
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("event created", slog.String("event_id", event.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.EventResponse{Event: *event})
}

func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.event.Get"
	log := handlers.RequestLogger(h.log, op, r)

	event, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, api.EventResponse{Event: *event})
}

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.event.List"
	h.list(w, r, handlers.RequestLogger(h.log, op, r), h.service.List)
}

func (h *EventHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.event.Upcoming"
	h.list(w, r, handlers.RequestLogger(h.log, op, r), h.service.ListUpcoming)
}

func (h *EventHandler) list(
	w http.ResponseWriter,
	r *http.Request,
	log *slog.Logger,
	fetch func(ctx context.Context) ([]api.EventSchema, error),
) {
	events, err := fetch(r.Context())
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, api.EventsResponse{Events: events})
}

// Latest returns the landing page cards.
func (h *EventHandler) Latest(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.event.Latest"
	log := handlers.RequestLogger(h.log, op, r)

	events, err := h.service.ListLatest(r.Context())
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, api.HomeEventsResponse{Events: events})
}

func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.event.Update"
	log := handlers.RequestLogger(h.log, op, r)

	var input UpdateEventRequest
	if !handlers.DecodeAndValidate(w, r, log, &input) {
		return
	}

	eventID := chi.URLParam(r, "id")

	event, err := h.service.Update(r.Context(), eventID, models.EventPatch{
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		WhatsappURL: input.WhatsappURL,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		TotalHours:  input.TotalHours,
		TicketCost:  input.TicketCost,
	})
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("event updated", slog.String("event_id", eventID))
	render.JSON(w, r, api.EventResponse{Event: *event})
}

func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.event.Delete"
	log := handlers.RequestLogger(h.log, op, r)

	eventID := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), eventID); err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("event deleted", slog.String("event_id", eventID))
	render.NoContent(w, r)
}
