package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/everafter/planner-api/internal/core/domain"
	"github.com/everafter/planner-api/internal/core/ports"
)

const guestColumns = `id, first_name, last_name, email, phone,
	COALESCE(username, ''), COALESCE(password_hash, ''),
	rsvp_status, attendance_type, number_of_guests,
	dietary_restrictions, allergies, special_requests, address, notes,
	registered_at, updated_at, last_accessed`

// GuestRepository persists guest records in Postgres. Username and password
// hash are stored as NULL for anonymous guests so the unique index on
// username only binds credentialed rows.
type GuestRepository struct {
	pool *pgxpool.Pool
}

func NewGuestRepository(pool *pgxpool.Pool) *GuestRepository {
	return &GuestRepository{pool: pool}
}

func (r *GuestRepository) Create(ctx context.Context, g *domain.Guest) (*domain.Guest, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO guests (
			first_name, last_name, email, phone, username, password_hash,
			rsvp_status, attendance_type, number_of_guests,
			dietary_restrictions, allergies, special_requests, address, notes,
			registered_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''),
			$7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id`,
		g.FirstName, g.LastName, g.Email, g.Phone, g.Username, g.PasswordHash,
		g.RSVPStatus, g.AttendanceType, g.NumberOfGuests,
		g.DietaryRestrictions, g.Allergies, g.SpecialRequests, g.Address, g.Notes,
		g.RegisteredAt, g.UpdatedAt,
	).Scan(&g.ID)
	if err != nil {
		switch {
		case isUniqueViolation(err, "guests_username_key"):
			return nil, domain.ErrUsernameTaken
		case isUniqueViolation(err, "guests_email_key"):
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}
	return g, nil
}

func (r *GuestRepository) FindByID(ctx context.Context, id int64) (*domain.Guest, error) {
	return scanGuest(r.pool.QueryRow(ctx, `SELECT `+guestColumns+` FROM guests WHERE id = $1`, id))
}

func (r *GuestRepository) FindByEmail(ctx context.Context, email string) (*domain.Guest, error) {
	return scanGuest(r.pool.QueryRow(ctx, `SELECT `+guestColumns+` FROM guests WHERE email = $1`, email))
}

func (r *GuestRepository) FindByUsername(ctx context.Context, username string) (*domain.Guest, error) {
	return scanGuest(r.pool.QueryRow(ctx, `SELECT `+guestColumns+` FROM guests WHERE username = $1`, username))
}

func (r *GuestRepository) Update(ctx context.Context, g *domain.Guest) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE guests
		SET first_name = $1, last_name = $2, email = $3, phone = $4,
			rsvp_status = $5, attendance_type = $6, number_of_guests = $7,
			dietary_restrictions = $8, allergies = $9, special_requests = $10,
			address = $11, notes = $12, updated_at = $13, last_accessed = $14
		WHERE id = $15`,
		g.FirstName, g.LastName, g.Email, g.Phone,
		g.RSVPStatus, g.AttendanceType, g.NumberOfGuests,
		g.DietaryRestrictions, g.Allergies, g.SpecialRequests,
		g.Address, g.Notes, g.UpdatedAt, g.LastAccessed, g.ID)
	if err != nil {
		if isUniqueViolation(err, "guests_email_key") {
			return domain.ErrEmailTaken
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrGuestNotFound
	}
	return nil
}

func (r *GuestRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM guests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrGuestNotFound
	}
	return nil
}

func (r *GuestRepository) List(ctx context.Context, f ports.GuestFilter) ([]domain.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE TRUE`
	args := []any{}
	if f.RSVPStatus != "" {
		args = append(args, f.RSVPStatus)
		query += fmt.Sprintf(" AND rsvp_status = $%d", len(args))
	}
	if f.AttendanceType != "" {
		args = append(args, f.AttendanceType)
		query += fmt.Sprintf(" AND attendance_type = $%d", len(args))
	}
	query += " ORDER BY registered_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var guests []domain.Guest
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			return nil, err
		}
		guests = append(guests, *g)
	}
	return guests, rows.Err()
}

// AttachCredentials claims the guest row matching email inside one
// transaction: the row is locked, credentials and refreshed names are
// written, and a commit-time username collision still surfaces as
// ErrUsernameTaken. A partial failure leaves the record untouched.
func (r *GuestRepository) AttachCredentials(ctx context.Context, email string, attach ports.CredentialAttachment) (*domain.Guest, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var id int64
	err = tx.QueryRow(ctx, `SELECT id FROM guests WHERE email = $1 FOR UPDATE`, email).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrGuestNotFound
		}
		return nil, err
	}

	_, err = tx.Exec(ctx, `
		UPDATE guests
		SET username = $1, password_hash = $2, first_name = $3, last_name = $4,
			phone = CASE WHEN $5 = '' THEN phone ELSE $5 END,
			updated_at = $6, last_accessed = $6
		WHERE id = $7`,
		attach.Username, attach.PasswordHash, attach.FirstName, attach.LastName,
		attach.Phone, attach.At, id)
	if err != nil {
		if isUniqueViolation(err, "guests_username_key") {
			return nil, domain.ErrUsernameTaken
		}
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		if isUniqueViolation(err, "guests_username_key") {
			return nil, domain.ErrUsernameTaken
		}
		return nil, err
	}

	return r.FindByID(ctx, id)
}

func (r *GuestRepository) TouchLastAccessed(ctx context.Context, id int64, at time.Time) error {
	tag, err := r.pool.Exec(ctx, `UPDATE guests SET last_accessed = $1 WHERE id = $2`, at, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrGuestNotFound
	}
	return nil
}

func scanGuest(row pgx.Row) (*domain.Guest, error) {
	var g domain.Guest
	err := row.Scan(
		&g.ID, &g.FirstName, &g.LastName, &g.Email, &g.Phone,
		&g.Username, &g.PasswordHash,
		&g.RSVPStatus, &g.AttendanceType, &g.NumberOfGuests,
		&g.DietaryRestrictions, &g.Allergies, &g.SpecialRequests, &g.Address, &g.Notes,
		&g.RegisteredAt, &g.UpdatedAt, &g.LastAccessed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrGuestNotFound
		}
		return nil, err
	}
	return &g, nil
}
