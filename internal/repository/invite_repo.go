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

const inviteColumns = `id, team_id, invitee_id, inviter_id, status, created_at, updated_at`

type InviteRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewInviteRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *InviteRepo {
	return &InviteRepo{
		db:     db,
		getter: c,
	}
}

func (r *InviteRepo) Create(ctx context.Context, invite *models.TeamInvite) error {
	const op = "invite_repo.Create"

	query := `
		INSERT INTO team_invites (id, team_id, invitee_id, inviter_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
		RETURNING created_at, updated_at;
	`

	err := r.getter.DefaultTrOrDB(ctx, r.db).
		QueryRowContext(ctx, query, invite.ID, invite.TeamID, invite.InviteeID, invite.InviterID, invite.Status).
		Scan(&invite.CreatedAt, &invite.UpdatedAt)
	if err != nil {
		switch pgCode(err) {
		case uniqueViolationCode:
			return ErrInviteExist
		case foreignKeyViolationCode:
			return ErrNotFound
		}
		return lib.Err(op, err)
	}

	return nil
}

func (r *InviteRepo) GetByID(ctx context.Context, inviteID string) (*models.TeamInvite, error) {
	const op = "invite_repo.GetByID"

	query := `SELECT ` + inviteColumns + ` FROM team_invites WHERE id = $1`

	var invite models.TeamInvite
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &invite, query, inviteID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &invite, nil
}

// Respond moves a pending invite addressed to inviteeID into status.
// The status predicate makes the transition happen at most once even
// under concurrent callers; ErrNotFound means no pending invite matched.
func (r *InviteRepo) Respond(
	ctx context.Context,
	inviteID, inviteeID string,
	status models.InviteStatus,
) (*models.TeamInvite, error) {
	const op = "invite_repo.Respond"

	query := `
		UPDATE team_invites
		SET status = $1, updated_at = now()
		WHERE id = $2 AND invitee_id = $3 AND status = 'pending'
		RETURNING ` + inviteColumns

	var invite models.TeamInvite
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &invite, query, status, inviteID, inviteeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &invite, nil
}

// ListPendingByInvitee returns the user's pending invites with team, leader
// and inviter details.
func (r *InviteRepo) ListPendingByInvitee(ctx context.Context, userID string) ([]*models.TeamInviteDetails, error) {
	const op = "invite_repo.ListPendingByInvitee"

	query := `
		SELECT i.id, i.team_id, i.invitee_id, i.inviter_id, i.status, i.created_at, i.updated_at,
			t.name AS team_name,
			l.id AS leader_id, l.name AS leader_name, l.email AS leader_email,
			inv.name AS inviter_name, inv.email AS inviter_email
		FROM team_invites i
		JOIN teams t ON t.id = i.team_id
		JOIN users l ON l.id = t.team_leader_id
		JOIN users inv ON inv.id = i.inviter_id
		WHERE i.invitee_id = $1 AND i.status = 'pending'
		ORDER BY i.created_at DESC;
	`

	var invites []*models.TeamInviteDetails
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &invites, query, userID)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return invites, nil
}
