package event

import (
	"context"
	"time"

	"hackfest/internal/http/api"
	"hackfest/internal/models"
	"hackfest/internal/service"

	"github.com/google/uuid"
)

const latestEventsLimit = 4

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=EventProvider
type EventProvider interface {
	Create(ctx context.Context, e *models.Event) error
	GetByID(ctx context.Context, eventID string) (*models.Event, error)
	List(ctx context.Context) ([]*models.Event, error)
	ListStartingAfter(ctx context.Context, after time.Time) ([]*models.Event, error)
	ListLatest(ctx context.Context, limit int) ([]*models.Event, error)
	Update(ctx context.Context, e *models.Event) error
	Delete(ctx context.Context, eventID string) error
}

type EventService struct {
	trm           service.TransactionManager
	eventProvider EventProvider
	now           func() time.Time
}

func NewEventService(trm service.TransactionManager, eventProvider EventProvider) *EventService {
	return &EventService{
		trm:           trm,
		eventProvider: eventProvider,
		now:           time.Now,
	}
}

func (s *EventService) Create(ctx context.Context, e *models.Event) (*api.EventSchema, error) {
	if err := validateEvent(e); err != nil {
		return nil, err
	}

	e.ID = uuid.NewString()

	if err := s.eventProvider.Create(ctx, e); err != nil {
		return nil, err
	}

	resp := api.EventFromModel(e)

	return &resp, nil
}

func (s *EventService) Get(ctx context.Context, eventID string) (*api.EventSchema, error) {
	e, err := s.eventProvider.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	resp := api.EventFromModel(e)

	return &resp, nil
}

func (s *EventService) List(ctx context.Context) ([]api.EventSchema, error) {
	events, err := s.eventProvider.List(ctx)
	if err != nil {
		return nil, err
	}

	return toSchemas(events), nil
}

// ListUpcoming returns events that have not started yet.
func (s *EventService) ListUpcoming(ctx context.Context) ([]api.EventSchema, error) {
	events, err := s.eventProvider.ListStartingAfter(ctx, s.now())
	if err != nil {
		return nil, err
	}

	return toSchemas(events), nil
}

// ListLatest returns the newest event cards for the landing page.
func (s *EventService) ListLatest(ctx context.Context) ([]api.HomeEvent, error) {
	events, err := s.eventProvider.ListLatest(ctx, latestEventsLimit)
	if err != nil {
		return nil, err
	}

	resp := make([]api.HomeEvent, 0, len(events))
	for _, e := range events {
		card := api.HomeEvent{
			Link: "/events/" + e.ID,
			Text: e.Name,
		}
		if e.ImageURL != nil {
			card.Image = *e.ImageURL
		}
		resp = append(resp, card)
	}

	return resp, nil
}

// Update applies patch to the stored event and validates the result before
// writing it back.
func (s *EventService) Update(ctx context.Context, eventID string, patch models.EventPatch) (*api.EventSchema, error) {
	resp := &api.EventSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		e, err := s.eventProvider.GetByID(ctx, eventID)
		if err != nil {
			return err
		}

		applyPatch(e, patch)

		if err := validateEvent(e); err != nil {
			return err
		}

		if err := s.eventProvider.Update(ctx, e); err != nil {
			return err
		}

		*resp = api.EventFromModel(e)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (s *EventService) Delete(ctx context.Context, eventID string) error {
	return s.eventProvider.Delete(ctx, eventID)
}

func validateEvent(e *models.Event) error {
	switch {
	case e.Name == "":
		return service.Validation("event name is required")
	case e.Description == "":
		return service.Validation("event description is required")
	case e.StartDate.IsZero() || e.EndDate.IsZero():
		return service.Validation("event start and end dates are required")
	case e.EndDate.Before(e.StartDate):
		return service.Validation("event must not end before it starts")
	case e.TotalHours <= 0:
		return service.Validation("total hours must be positive")
	case e.TicketCost < 0:
		return service.Validation("ticket cost must not be negative")
	}

	return nil
}

func applyPatch(e *models.Event, p models.EventPatch) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.ImageURL != nil {
		e.ImageURL = p.ImageURL
	}
	if p.WhatsappURL != nil {
		e.WhatsappURL = p.WhatsappURL
	}
	if p.StartDate != nil {
		e.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		e.EndDate = *p.EndDate
	}
	if p.TotalHours != nil {
		e.TotalHours = *p.TotalHours
	}
	if p.TicketCost != nil {
		e.TicketCost = *p.TicketCost
	}
}

func toSchemas(events []*models.Event) []api.EventSchema {
	resp := make([]api.EventSchema, 0, len(events))
	for _, e := range events {
		resp = append(resp, api.EventFromModel(e))
	}

	return resp
}
