package models

import "time"

type Event struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	ImageURL    *string   `db:"image_url"`
	WhatsappURL *string   `db:"whatsapp_url"`
	StartDate   time.Time `db:"start_date"`
	EndDate     time.Time `db:"end_date"`
	TotalHours  int       `db:"total_hours"`
	TicketCost  int       `db:"ticket_cost"`
	CreatedBy   string    `db:"created_by"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// EventPatch holds the fields of a partial event update; nil means unchanged.
type EventPatch struct {
	Name        *string
	Description *string
	ImageURL    *string
	WhatsappURL *string
	StartDate   *time.Time
	EndDate     *time.Time
	TotalHours  *int
	TicketCost  *int
}
