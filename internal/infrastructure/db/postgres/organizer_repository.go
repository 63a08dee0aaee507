package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/everafter/planner-api/internal/core/domain"
)

const organizerColumns = `id, email, name, password_hash, role, created_at, updated_at`

// OrganizerRepository persists organizer principals in Postgres.
type OrganizerRepository struct {
	pool *pgxpool.Pool
}

func NewOrganizerRepository(pool *pgxpool.Pool) *OrganizerRepository {
	return &OrganizerRepository{pool: pool}
}

func (r *OrganizerRepository) Create(ctx context.Context, o *domain.Organizer) (*domain.Organizer, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO organizers (email, name, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		o.Email, o.Name, o.PasswordHash, o.Role, o.CreatedAt, o.UpdatedAt,
	).Scan(&o.ID)
	if err != nil {
		if isUniqueViolation(err, "organizers_email_key") {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}
	return o, nil
}

func (r *OrganizerRepository) FindByID(ctx context.Context, id int64) (*domain.Organizer, error) {
	return r.findOne(ctx, `SELECT `+organizerColumns+` FROM organizers WHERE id = $1`, id)
}

func (r *OrganizerRepository) FindByEmail(ctx context.Context, email string) (*domain.Organizer, error) {
	return r.findOne(ctx, `SELECT `+organizerColumns+` FROM organizers WHERE email = $1`, email)
}

func (r *OrganizerRepository) Update(ctx context.Context, o *domain.Organizer) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE organizers
		SET email = $1, name = $2, password_hash = $3, role = $4, updated_at = $5
		WHERE id = $6`,
		o.Email, o.Name, o.PasswordHash, o.Role, o.UpdatedAt, o.ID)
	if err != nil {
		if isUniqueViolation(err, "organizers_email_key") {
			return domain.ErrEmailTaken
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOrganizerNotFound
	}
	return nil
}

func (r *OrganizerRepository) findOne(ctx context.Context, query string, arg any) (*domain.Organizer, error) {
	var o domain.Organizer
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&o.ID, &o.Email, &o.Name, &o.PasswordHash, &o.Role, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrganizerNotFound
		}
		return nil, err
	}
	return &o, nil
}
