package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hackfest/internal/lib"
	"hackfest/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
)

const eventColumns = `id, name, description, image_url, whatsapp_url, start_date, end_date,
	total_hours, ticket_cost, created_by, created_at, updated_at`

type EventRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewEventRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *EventRepo {
	return &EventRepo{
		db:     db,
		getter: c,
	}
}

func (r *EventRepo) Create(ctx context.Context, e *models.Event) error {
	const op = "event_repo.Create"

	query := `
		INSERT INTO events (id, name, description, image_url, whatsapp_url, start_date, end_date,
			total_hours, ticket_cost, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())
		RETURNING created_at, updated_at;
	`

	err := r.getter.DefaultTrOrDB(ctx, r.db).QueryRowContext(
		ctx,
		query,
		e.ID, e.Name, e.Description, e.ImageURL, e.WhatsappURL,
		e.StartDate, e.EndDate, e.TotalHours, e.TicketCost, e.CreatedBy,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if pgCode(err) == foreignKeyViolationCode {
			return ErrNotFound
		}
		return lib.Err(op, err)
	}

	return nil
}

func (r *EventRepo) GetByID(ctx context.Context, eventID string) (*models.Event, error) {
	const op = "event_repo.GetByID"

	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	var e models.Event
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &e, query, eventID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &e, nil
}

func (r *EventRepo) List(ctx context.Context) ([]*models.Event, error) {
	const op = "event_repo.List"

	query := `SELECT ` + eventColumns + ` FROM events ORDER BY start_date`

	var events []*models.Event
	if err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &events, query); err != nil {
		return nil, lib.Err(op, err)
	}

	return events, nil
}

func (r *EventRepo) ListStartingAfter(ctx context.Context, after time.Time) ([]*models.Event, error) {
	const op = "event_repo.ListStartingAfter"

	query := `SELECT ` + eventColumns + ` FROM events WHERE start_date >= $1 ORDER BY start_date`

	var events []*models.Event
	if err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &events, query, after); err != nil {
		return nil, lib.Err(op, err)
	}

	return events, nil
}

func (r *EventRepo) ListLatest(ctx context.Context, limit int) ([]*models.Event, error) {
	const op = "event_repo.ListLatest"

	query := `SELECT ` + eventColumns + ` FROM events ORDER BY created_at DESC LIMIT $1`

	var events []*models.Event
	if err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &events, query, limit); err != nil {
		return nil, lib.Err(op, err)
	}

	return events, nil
}

// Update overwrites the mutable columns of an existing event.
func (r *EventRepo) Update(ctx context.Context, e *models.Event) error {
	const op = "event_repo.Update"

	query := `
		UPDATE events
		SET name = $1, description = $2, image_url = $3, whatsapp_url = $4,
			start_date = $5, end_date = $6, total_hours = $7, ticket_cost = $8,
			updated_at = now()
		WHERE id = $9
		RETURNING updated_at;
	`

	err := r.getter.DefaultTrOrDB(ctx, r.db).QueryRowContext(
		ctx,
		query,
		e.Name, e.Description, e.ImageURL, e.WhatsappURL,
		e.StartDate, e.EndDate, e.TotalHours, e.TicketCost, e.ID,
	).Scan(&e.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return lib.Err(op, err)
	}

	return nil
}

func (r *EventRepo) Delete(ctx context.Context, eventID string) error {
	const op = "event_repo.Delete"

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, `DELETE FROM events WHERE id = $1`, eventID)
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
