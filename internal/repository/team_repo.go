package repo

import (
	"context"
	"database/sql"
	"errors"

	"hackfest/internal/lib"
	"hackfest/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
)

// teamSelect aggregates team_members into the ordered member list.
const teamSelect = `
	SELECT t.id, t.name, t.status, t.team_leader_id, t.created_at, t.updated_at,
		COALESCE(
			array_agg(m.user_id ORDER BY m.joined_at) FILTER (WHERE m.user_id IS NOT NULL),
			'{}'
		) AS team_members
	FROM teams t
	LEFT JOIN team_members m ON m.team_id = t.id
`

type TeamRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewTeamRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *TeamRepo {
	return &TeamRepo{
		db:     db,
		getter: c,
	}
}

func (r *TeamRepo) Create(ctx context.Context, team *models.Team) error {
	const op = "team_repo.Create"

	query := `
		INSERT INTO teams (id, name, status, team_leader_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
		RETURNING created_at, updated_at;
	`

	err := r.getter.DefaultTrOrDB(ctx, r.db).
		QueryRowContext(ctx, query, team.ID, team.Name, team.Status, team.LeaderID).
		Scan(&team.CreatedAt, &team.UpdatedAt)
	if err != nil {
		if pgCode(err) == uniqueViolationCode {
			switch pgConstraint(err) {
			case teamsLeaderConstraint, teamMemberConstraint:
				return ErrUserInTeam
			}
			return ErrTeamExists
		}
		return lib.Err(op, err)
	}

	return nil
}

func (r *TeamRepo) GetByID(ctx context.Context, teamID string) (*models.Team, error) {
	const op = "team_repo.GetByID"

	query := teamSelect + `
		WHERE t.id = $1
		GROUP BY t.id;
	`

	var team models.Team
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &team, query, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &team, nil
}

// LockByID takes a row lock on the team for the rest of the transaction.
// Member rows are not loaded.
func (r *TeamRepo) LockByID(ctx context.Context, teamID string) (*models.Team, error) {
	const op = "team_repo.LockByID"

	query := `
		SELECT id, name, status, team_leader_id, created_at, updated_at
		FROM teams
		WHERE id = $1
		FOR UPDATE;
	`

	var team models.Team
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &team, query, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &team, nil
}

// ListByUser returns teams the user leads or belongs to, newest first.
func (r *TeamRepo) ListByUser(ctx context.Context, userID string) ([]*models.Team, error) {
	const op = "team_repo.ListByUser"

	query := teamSelect + `
		WHERE t.team_leader_id = $1
			OR EXISTS (SELECT 1 FROM team_members x WHERE x.team_id = t.id AND x.user_id = $1)
		GROUP BY t.id
		ORDER BY t.created_at DESC;
	`

	var teams []*models.Team
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &teams, query, userID)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return teams, nil
}

func (r *TeamRepo) ListAll(ctx context.Context) ([]*models.Team, error) {
	const op = "team_repo.ListAll"

	query := teamSelect + `
		GROUP BY t.id
		ORDER BY t.created_at DESC;
	`

	var teams []*models.Team
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &teams, query)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return teams, nil
}

// LockUser serializes team membership changes for one user until the
// surrounding transaction ends. It must run inside a transaction and before
// IsUserInAnyTeam, so the check sees what concurrent holders committed.
func (r *TeamRepo) LockUser(ctx context.Context, userID string) error {
	const op = "team_repo.LockUser"

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).
		ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, userID)
	if err != nil {
		return lib.Err(op, err)
	}

	return nil
}

// IsUserInAnyTeam reports whether the user leads or is a member of any team.
func (r *TeamRepo) IsUserInAnyTeam(ctx context.Context, userID string) (bool, error) {
	const op = "team_repo.IsUserInAnyTeam"

	query := `
		SELECT EXISTS (SELECT 1 FROM teams WHERE team_leader_id = $1)
			OR EXISTS (SELECT 1 FROM team_members WHERE user_id = $1);
	`

	var exists bool
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &exists, query, userID)
	if err != nil {
		return false, lib.Err(op, err)
	}

	return exists, nil
}

func (r *TeamRepo) CountMembers(ctx context.Context, teamID string) (int, error) {
	const op = "team_repo.CountMembers"

	var count int
	err := r.getter.DefaultTrOrDB(ctx, r.db).
		GetContext(ctx, &count, `SELECT count(*) FROM team_members WHERE team_id = $1`, teamID)
	if err != nil {
		return 0, lib.Err(op, err)
	}

	return count, nil
}

// AddMember inserts the membership row and bumps the team's updated_at
// in a single statement.
func (r *TeamRepo) AddMember(ctx context.Context, teamID, userID string) error {
	const op = "team_repo.AddMember"

	query := `
		WITH ins AS (
			INSERT INTO team_members (team_id, user_id, joined_at)
			VALUES ($1, $2, now())
			RETURNING team_id
		)
		UPDATE teams SET updated_at = now()
		WHERE id IN (SELECT team_id FROM ins);
	`

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, teamID, userID)
	if err != nil {
		switch pgCode(err) {
		case uniqueViolationCode:
			return ErrUserInTeam
		case checkViolationCode:
			return ErrTeamFull
		case foreignKeyViolationCode:
			return ErrNotFound
		}
		return lib.Err(op, err)
	}

	return nil
}

func (r *TeamRepo) SetStatus(ctx context.Context, teamID string, status models.TeamStatus) error {
	const op = "team_repo.SetStatus"

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(
		ctx,
		`UPDATE teams SET status = $1, updated_at = now() WHERE id = $2`,
		status, teamID,
	)
	if err != nil {
		return lib.Err(op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return lib.Err(op, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes the team; members and invites go with it (ON DELETE CASCADE).
func (r *TeamRepo) Delete(ctx context.Context, teamID string) error {
	const op = "team_repo.Delete"

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, teamID)
	if err != nil {
		return lib.Err(op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return lib.Err(op, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
