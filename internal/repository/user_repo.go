package repo

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"hackfest/internal/lib"
	"hackfest/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const userColumns = `id, name, email, COALESCE(phone, '') AS phone, is_admin, created_at, updated_at`

type UserRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewUserRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *UserRepo {
	return &UserRepo{
		db:     db,
		getter: c,
	}
}

func (r *UserRepo) GetById(ctx context.Context, userID string) (*models.User, error) {
	const op = "user_repo.GetById"

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user models.User
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &user, nil
}

// GetByIDs returns the users that exist among ids, in no particular order.
func (r *UserRepo) GetByIDs(ctx context.Context, ids []string) ([]*models.User, error) {
	const op = "user_repo.GetByIDs"

	if len(ids) == 0 {
		return []*models.User{}, nil
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE id = ANY($1)`

	var users []*models.User
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &users, query, pq.Array(ids))
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return users, nil
}

// GetByEmails matches emails case-insensitively and returns the users found.
func (r *UserRepo) GetByEmails(ctx context.Context, emails []string) ([]*models.User, error) {
	const op = "user_repo.GetByEmails"

	if len(emails) == 0 {
		return []*models.User{}, nil
	}

	lowered := make([]string, 0, len(emails))
	for _, e := range emails {
		lowered = append(lowered, strings.ToLower(e))
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE lower(email) = ANY($1)`

	var users []*models.User
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &users, query, pq.Array(lowered))
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return users, nil
}

// SearchByEmail performs a case-insensitive substring match on email.
func (r *UserRepo) SearchByEmail(ctx context.Context, needle string, limit int) ([]*models.User, error) {
	const op = "user_repo.SearchByEmail"

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email ILIKE '%' || $1 || '%' ESCAPE '\'
		ORDER BY email
		LIMIT $2
	`

	var users []*models.User
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &users, query, escapeLike(needle), limit)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return users, nil
}

func (r *UserRepo) List(ctx context.Context) ([]*models.User, error) {
	const op = "user_repo.List"

	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`

	var users []*models.User
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &users, query)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return users, nil
}

func (r *UserRepo) SetAdmin(ctx context.Context, userID string, isAdmin bool) (*models.User, error) {
	const op = "user_repo.SetAdmin"

	query := `
		UPDATE users SET is_admin = $1, updated_at = now()
		WHERE id = $2
		RETURNING ` + userColumns

	var user models.User
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &user, query, isAdmin, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &user, nil
}

// Delete removes the user. Teams they lead, memberships, invites, tickets
// and events they created go with it (ON DELETE CASCADE).
func (r *UserRepo) Delete(ctx context.Context, userID string) error {
	const op = "user_repo.Delete"

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID)
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

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
