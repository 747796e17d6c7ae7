package models

import "time"

type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "pending"
	InviteStatusAccepted InviteStatus = "accepted"
	InviteStatusDeclined InviteStatus = "declined"
)

// IsResponse reports whether s is a valid answer to a pending invite.
func (s InviteStatus) IsResponse() bool {
	return s == InviteStatusAccepted || s == InviteStatusDeclined
}

type TeamInvite struct {
	ID        string       `db:"id"`
	TeamID    string       `db:"team_id"`
	InviteeID string       `db:"invitee_id"`
	InviterID string       `db:"inviter_id"`
	Status    InviteStatus `db:"status"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
}

// TeamInviteDetails is an invite joined with its team, the team leader
// and the inviter.
type TeamInviteDetails struct {
	TeamInvite
	TeamName     string `db:"team_name"`
	LeaderID     string `db:"leader_id"`
	LeaderName   string `db:"leader_name"`
	LeaderEmail  string `db:"leader_email"`
	InviterName  string `db:"inviter_name"`
	InviterEmail string `db:"inviter_email"`
}
