package repo

import (
	"errors"

	"github.com/lib/pq"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
)

const (
	teamsLeaderConstraint = "teams_leader_uidx"
	teamMemberConstraint  = "team_members_user_id_key"
)

var (
	ErrNotFound    = errors.New("resource not found")
	ErrTeamExists  = errors.New("team with this name already exists")
	ErrUserInTeam  = errors.New("user already belongs to a team")
	ErrTeamFull    = errors.New("team has no free member slots")
	ErrInviteExist = errors.New("user is already invited to this team")
)

// pgCode returns the SQLSTATE of a postgres error or "" for anything else.
func pgCode(err error) string {
	pgErr := &pq.Error{}
	if errors.As(err, &pgErr) {
		return string(pgErr.Code)
	}
	return ""
}

// pgConstraint returns the constraint named by a postgres error, if any.
func pgConstraint(err error) string {
	pgErr := &pq.Error{}
	if errors.As(err, &pgErr) {
		return pgErr.Constraint
	}
	return ""
}
