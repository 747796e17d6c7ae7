package ticket

import (
	"context"
	"strings"

	"hackfest/internal/http/api"
	"hackfest/internal/models"
	"hackfest/internal/service"

	"github.com/google/uuid"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TicketProvider
type TicketProvider interface {
	Create(ctx context.Context, t *models.Ticket) error
	GetByID(ctx context.Context, ticketID string) (*models.Ticket, error)
	ListDetails(ctx context.Context) ([]*models.TicketDetails, error)
	ListDetailsByUser(ctx context.Context, userID string) ([]*models.TicketDetails, error)
	ListByEvent(ctx context.Context, eventID string) ([]*models.Ticket, error)
	Update(ctx context.Context, t *models.Ticket) error
	Delete(ctx context.Context, ticketID string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=EventGetter
type EventGetter interface {
	GetByID(ctx context.Context, eventID string) (*models.Event, error)
}

type TicketService struct {
	trm            service.TransactionManager
	ticketProvider TicketProvider
	eventGetter    EventGetter
}

func NewTicketService(trm service.TransactionManager, ticketProvider TicketProvider, eventGetter EventGetter) *TicketService {
	return &TicketService{
		trm:            trm,
		ticketProvider: ticketProvider,
		eventGetter:    eventGetter,
	}
}

// Create books a pending ticket for userID. The event must exist.
func (s *TicketService) Create(ctx context.Context, userID, eventID, name, phone string) (*api.TicketSchema, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)

	if name == "" {
		return nil, service.Validation("name is required")
	}
	if phone == "" {
		return nil, service.Validation("phone number is required")
	}

	t := &models.Ticket{
		ID:          uuid.NewString(),
		Name:        name,
		PhoneNumber: phone,
		Status:      models.TicketStatusPending,
		EventID:     eventID,
		UserID:      userID,
	}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if _, err := s.eventGetter.GetByID(ctx, eventID); err != nil {
			return err
		}

		return s.ticketProvider.Create(ctx, t)
	})
	if err != nil {
		return nil, err
	}

	resp := api.TicketFromModel(t)

	return &resp, nil
}

func (s *TicketService) ListUserTickets(ctx context.Context, userID string) ([]api.TicketDetailsSchema, error) {
	tickets, err := s.ticketProvider.ListDetailsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return toDetails(tickets), nil
}

func (s *TicketService) ListTickets(ctx context.Context) ([]api.TicketDetailsSchema, error) {
	tickets, err := s.ticketProvider.ListDetails(ctx)
	if err != nil {
		return nil, err
	}

	return toDetails(tickets), nil
}

func (s *TicketService) ListEventTickets(ctx context.Context, eventID string) ([]api.TicketSchema, error) {
	resp := []api.TicketSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if _, err := s.eventGetter.GetByID(ctx, eventID); err != nil {
			return err
		}

		tickets, err := s.ticketProvider.ListByEvent(ctx, eventID)
		if err != nil {
			return err
		}

		for _, t := range tickets {
			resp = append(resp, api.TicketFromModel(t))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (s *TicketService) Get(ctx context.Context, ticketID string) (*api.TicketSchema, error) {
	t, err := s.ticketProvider.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	resp := api.TicketFromModel(t)

	return &resp, nil
}

func (s *TicketService) Update(ctx context.Context, ticketID string, patch models.TicketPatch) (*api.TicketSchema, error) {
	if patch.Status != nil && *patch.Status != models.TicketStatusPending && *patch.Status != models.TicketStatusApproved {
		return nil, service.Validation("status must be pending or approved")
	}

	return s.modify(ctx, ticketID, func(t *models.Ticket) error {
		if patch.Name != nil {
			t.Name = strings.TrimSpace(*patch.Name)
			if t.Name == "" {
				return service.Validation("name must not be empty")
			}
		}
		if patch.PhoneNumber != nil {
			t.PhoneNumber = strings.TrimSpace(*patch.PhoneNumber)
			if t.PhoneNumber == "" {
				return service.Validation("phone number must not be empty")
			}
		}
		if patch.Status != nil {
			t.Status = *patch.Status
		}

		return nil
	})
}

func (s *TicketService) Approve(ctx context.Context, ticketID string) (*api.TicketSchema, error) {
	return s.modify(ctx, ticketID, func(t *models.Ticket) error {
		t.Status = models.TicketStatusApproved
		return nil
	})
}

func (s *TicketService) Delete(ctx context.Context, ticketID string) error {
	return s.ticketProvider.Delete(ctx, ticketID)
}

func (s *TicketService) modify(ctx context.Context, ticketID string, change func(t *models.Ticket) error) (*api.TicketSchema, error) {
	resp := &api.TicketSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		t, err := s.ticketProvider.GetByID(ctx, ticketID)
		if err != nil {
			return err
		}

		if err := change(t); err != nil {
			return err
		}

		if err := s.ticketProvider.Update(ctx, t); err != nil {
			return err
		}

		*resp = api.TicketFromModel(t)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func toDetails(tickets []*models.TicketDetails) []api.TicketDetailsSchema {
	resp := make([]api.TicketDetailsSchema, 0, len(tickets))
	for _, t := range tickets {
		resp = append(resp, api.TicketDetailsFromModel(t))
	}

	return resp
}
