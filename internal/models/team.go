package models

import (
	"time"

	"github.com/lib/pq"
)

type TeamStatus string

const (
	TeamStatusPending  TeamStatus = "pending"
	TeamStatusApproved TeamStatus = "approved"
)

// MaxTeamMembers is the number of accepted members a team may have
// in addition to its leader.
const MaxTeamMembers = 3

type Team struct {
	ID        string         `db:"id"`
	Name      string         `db:"name"`
	Status    TeamStatus     `db:"status"`
	LeaderID  string         `db:"team_leader_id"`
	Members   pq.StringArray `db:"team_members"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}
