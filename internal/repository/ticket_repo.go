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

const ticketColumns = `id, name, phone_number, status, event_id, user_id, created_at`

const ticketDetailsSelect = `
	SELECT tk.id, tk.name, tk.phone_number, tk.status, tk.event_id, tk.user_id, tk.created_at,
		e.name AS event_name, e.start_date AS event_start_date, e.end_date AS event_end_date,
		e.ticket_cost AS event_ticket_cost,
		u.name AS user_name, u.email AS user_email
	FROM tickets tk
	JOIN events e ON e.id = tk.event_id
	JOIN users u ON u.id = tk.user_id
`

type TicketRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewTicketRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *TicketRepo {
	return &TicketRepo{
		db:     db,
		getter: c,
	}
}

func (r *TicketRepo) Create(ctx context.Context, t *models.Ticket) error {
	const op = "ticket_repo.Create"

	query := `
		INSERT INTO tickets (id, name, phone_number, status, event_id, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		RETURNING created_at;
	`

	err := r.getter.DefaultTrOrDB(ctx, r.db).
		QueryRowContext(ctx, query, t.ID, t.Name, t.PhoneNumber, t.Status, t.EventID, t.UserID).
		Scan(&t.CreatedAt)
	if err != nil {
		// event or user is gone
		if pgCode(err) == foreignKeyViolationCode {
			return ErrNotFound
		}
		return lib.Err(op, err)
	}

	return nil
}

func (r *TicketRepo) GetByID(ctx context.Context, ticketID string) (*models.Ticket, error) {
	const op = "ticket_repo.GetByID"

	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE id = $1`

	var t models.Ticket
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &t, query, ticketID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &t, nil
}

func (r *TicketRepo) ListDetails(ctx context.Context) ([]*models.TicketDetails, error) {
	const op = "ticket_repo.ListDetails"

	query := ticketDetailsSelect + ` ORDER BY tk.created_at DESC`

	var tickets []*models.TicketDetails
	if err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &tickets, query); err != nil {
		return nil, lib.Err(op, err)
	}

	return tickets, nil
}

func (r *TicketRepo) ListDetailsByUser(ctx context.Context, userID string) ([]*models.TicketDetails, error) {
	const op = "ticket_repo.ListDetailsByUser"

	query := ticketDetailsSelect + ` WHERE tk.user_id = $1 ORDER BY tk.created_at DESC`

	var tickets []*models.TicketDetails
	if err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &tickets, query, userID); err != nil {
		return nil, lib.Err(op, err)
	}

	return tickets, nil
}

func (r *TicketRepo) ListByEvent(ctx context.Context, eventID string) ([]*models.Ticket, error) {
	const op = "ticket_repo.ListByEvent"

	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE event_id = $1 ORDER BY created_at`

	var tickets []*models.Ticket
	if err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &tickets, query, eventID); err != nil {
		return nil, lib.Err(op, err)
	}

	return tickets, nil
}

func (r *TicketRepo) Update(ctx context.Context, t *models.Ticket) error {
	const op = "ticket_repo.Update"

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(
		ctx,
		`UPDATE tickets SET name = $1, phone_number = $2, status = $3 WHERE id = $4`,
		t.Name, t.PhoneNumber, t.Status, t.ID,
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

func (r *TicketRepo) Delete(ctx context.Context, ticketID string) error {
	const op = "ticket_repo.Delete"

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, `DELETE FROM tickets WHERE id = $1`, ticketID)
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
