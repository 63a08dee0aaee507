package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/everafter/planner-api/internal/core/domain"
)

const contentColumns = `id, key, title, body, content_type, is_public, "order",
	created_at, updated_at`

// ContentRepository persists publishable content blocks in Postgres.
type ContentRepository struct {
	pool *pgxpool.Pool
}

func NewContentRepository(pool *pgxpool.Pool) *ContentRepository {
	return &ContentRepository{pool: pool}
}

func (r *ContentRepository) Create(ctx context.Context, c *domain.Content) (*domain.Content, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO content (key, title, body, content_type, is_public, "order",
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		c.Key, c.Title, c.Body, c.ContentType, c.IsPublic, c.Order,
		c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err, "content_key_key") {
			return nil, domain.ErrContentKeyTaken
		}
		return nil, err
	}
	return c, nil
}

func (r *ContentRepository) FindByID(ctx context.Context, id int64) (*domain.Content, error) {
	return scanContent(r.pool.QueryRow(ctx,
		`SELECT `+contentColumns+` FROM content WHERE id = $1`, id))
}

func (r *ContentRepository) FindByKey(ctx context.Context, key string) (*domain.Content, error) {
	return scanContent(r.pool.QueryRow(ctx,
		`SELECT `+contentColumns+` FROM content WHERE key = $1`, key))
}

func (r *ContentRepository) Update(ctx context.Context, c *domain.Content) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE content
		SET key = $1, title = $2, body = $3, content_type = $4, is_public = $5,
			"order" = $6, updated_at = $7
		WHERE id = $8`,
		c.Key, c.Title, c.Body, c.ContentType, c.IsPublic, c.Order, c.UpdatedAt, c.ID)
	if err != nil {
		if isUniqueViolation(err, "content_key_key") {
			return domain.ErrContentKeyTaken
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrContentNotFound
	}
	return nil
}

func (r *ContentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM content WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrContentNotFound
	}
	return nil
}

func (r *ContentRepository) ListPublic(ctx context.Context) ([]domain.Content, error) {
	return r.list(ctx, `SELECT `+contentColumns+` FROM content WHERE is_public ORDER BY "order" ASC`)
}

func (r *ContentRepository) ListAll(ctx context.Context) ([]domain.Content, error) {
	return r.list(ctx, `SELECT `+contentColumns+` FROM content ORDER BY "order" ASC`)
}

func (r *ContentRepository) list(ctx context.Context, query string) ([]domain.Content, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Content
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

func scanContent(row pgx.Row) (*domain.Content, error) {
	var c domain.Content
	err := row.Scan(
		&c.ID, &c.Key, &c.Title, &c.Body, &c.ContentType, &c.IsPublic, &c.Order,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrContentNotFound
		}
		return nil, err
	}
	return &c, nil
}
