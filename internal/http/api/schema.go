package api

import "time"

type UserPublic struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type UserSchema struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TeamSchema struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Status       string    `json:"status"`
	TeamLeaderID string    `json:"team_leader_id"`
	TeamMembers  []string  `json:"team_members"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type TeamDetailsSchema struct {
	TeamSchema
	TeamLeader   UserPublic   `json:"team_leader"`
	Members      []UserPublic `json:"members"`
	TotalMembers int          `json:"total_members"`
}

type InviteTeam struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	TeamLeader UserPublic `json:"team_leader"`
}

type InviteSchema struct {
	ID        string     `json:"id"`
	TeamID    string     `json:"team_id"`
	InviteeID string     `json:"invitee_id"`
	InviterID string     `json:"inviter_id"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Team      InviteTeam `json:"team"`
	Inviter   UserPublic `json:"inviter"`
}

type EventSchema struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"image_url,omitempty"`
	WhatsappURL *string   `json:"whatsapp_url,omitempty"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	TotalHours  int       `json:"total_hours"`
	TicketCost  int       `json:"ticket_cost"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HomeEvent is the trimmed event card shown on the landing page.
type HomeEvent struct {
	Link  string `json:"link"`
	Text  string `json:"text"`
	Image string `json:"image"`
}

type TicketSchema struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phone_number"`
	Status      string    `json:"status"`
	EventID     string    `json:"event_id"`
	UserID      string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type TicketEvent struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	TicketCost int       `json:"ticket_cost"`
}

type TicketDetailsSchema struct {
	TicketSchema
	Event   TicketEvent `json:"event"`
	Creator UserPublic  `json:"creator"`
}
