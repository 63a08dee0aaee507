package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/everafter/planner-api/internal/core/domain"
	"github.com/everafter/planner-api/internal/core/ports"
)

const costColumns = `id, user_id, name, description, category, amount, status,
	payment_date, vendor, notes, created_at, updated_at`

// CostRepository persists budget line items in Postgres, owner-scoped like
// tasks.
type CostRepository struct {
	pool *pgxpool.Pool
}

func NewCostRepository(pool *pgxpool.Pool) *CostRepository {
	return &CostRepository{pool: pool}
}

func (r *CostRepository) Create(ctx context.Context, c *domain.Cost) (*domain.Cost, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO costs (user_id, name, description, category, amount, status,
			payment_date, vendor, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`,
		c.OwnerID, c.Name, c.Description, c.Category, c.Amount, c.Status,
		c.PaymentDate, c.Vendor, c.Notes, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CostRepository) FindOwned(ctx context.Context, ownerID, id int64) (*domain.Cost, error) {
	var c domain.Cost
	err := r.pool.QueryRow(ctx,
		`SELECT `+costColumns+` FROM costs WHERE user_id = $1 AND id = $2`,
		ownerID, id).Scan(
		&c.ID, &c.OwnerID, &c.Name, &c.Description, &c.Category, &c.Amount, &c.Status,
		&c.PaymentDate, &c.Vendor, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCostNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CostRepository) Update(ctx context.Context, c *domain.Cost) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE costs
		SET name = $1, description = $2, category = $3, amount = $4, status = $5,
			payment_date = $6, vendor = $7, notes = $8, updated_at = $9
		WHERE user_id = $10 AND id = $11`,
		c.Name, c.Description, c.Category, c.Amount, c.Status,
		c.PaymentDate, c.Vendor, c.Notes, c.UpdatedAt, c.OwnerID, c.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCostNotFound
	}
	return nil
}

func (r *CostRepository) DeleteOwned(ctx context.Context, ownerID, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM costs WHERE user_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCostNotFound
	}
	return nil
}

func (r *CostRepository) List(ctx context.Context, ownerID int64, f ports.CostFilter) ([]domain.Cost, error) {
	query := `SELECT ` + costColumns + ` FROM costs WHERE user_id = $1`
	args := []any{ownerID}
	if f.Category != "" {
		args = append(args, f.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var costs []domain.Cost
	for rows.Next() {
		var c domain.Cost
		if err := rows.Scan(
			&c.ID, &c.OwnerID, &c.Name, &c.Description, &c.Category, &c.Amount, &c.Status,
			&c.PaymentDate, &c.Vendor, &c.Notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		costs = append(costs, c)
	}
	return costs, rows.Err()
}
