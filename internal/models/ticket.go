package models

import "time"

type TicketStatus string

const (
	TicketStatusPending  TicketStatus = "pending"
	TicketStatusApproved TicketStatus = "approved"
)

type Ticket struct {
	ID          string       `db:"id"`
	Name        string       `db:"name"`
	PhoneNumber string       `db:"phone_number"`
	Status      TicketStatus `db:"status"`
	EventID     string       `db:"event_id"`
	UserID      string       `db:"user_id"`
	CreatedAt   time.Time    `db:"created_at"`
}

type TicketDetails struct {
	Ticket
	EventName       string    `db:"event_name"`
	EventStartDate  time.Time `db:"event_start_date"`
	EventEndDate    time.Time `db:"event_end_date"`
	EventTicketCost int       `db:"event_ticket_cost"`
	UserName        string    `db:"user_name"`
	UserEmail       string    `db:"user_email"`
}

type TicketPatch struct {
	Name        *string
	PhoneNumber *string
	Status      *TicketStatus
}
