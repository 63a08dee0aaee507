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

const taskColumns = `id, user_id, title, description, priority, status, category,
	assigned_to, due_date, estimated_cost, actual_cost, completed_at,
	created_at, updated_at`

// TaskRepository persists tasks in Postgres. Every statement filters by
// user_id so another organizer's task is indistinguishable from a missing
// one.
type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (user_id, title, description, priority, status, category,
			assigned_to, due_date, estimated_cost, actual_cost, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`,
		t.OwnerID, t.Title, t.Description, t.Priority, t.Status, t.Category,
		t.AssignedTo, t.DueDate, t.EstimatedCost, t.ActualCost, t.CreatedAt, t.UpdatedAt,
	).Scan(&t.ID)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *TaskRepository) FindOwned(ctx context.Context, ownerID, id int64) (*domain.Task, error) {
	var t domain.Task
	err := r.pool.QueryRow(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE user_id = $1 AND id = $2`,
		ownerID, id).Scan(
		&t.ID, &t.OwnerID, &t.Title, &t.Description, &t.Priority, &t.Status, &t.Category,
		&t.AssignedTo, &t.DueDate, &t.EstimatedCost, &t.ActualCost, &t.CompletedAt,
		&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepository) Update(ctx context.Context, t *domain.Task) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE tasks
		SET title = $1, description = $2, priority = $3, status = $4, category = $5,
			assigned_to = $6, due_date = $7, estimated_cost = $8, actual_cost = $9,
			completed_at = $10, updated_at = $11
		WHERE user_id = $12 AND id = $13`,
		t.Title, t.Description, t.Priority, t.Status, t.Category,
		t.AssignedTo, t.DueDate, t.EstimatedCost, t.ActualCost,
		t.CompletedAt, t.UpdatedAt, t.OwnerID, t.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) DeleteOwned(ctx context.Context, ownerID, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE user_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) List(ctx context.Context, ownerID int64, f ports.TaskFilter) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = $1`
	args := []any{ownerID}
	if f.Status != "" {
		args = append(args, f.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if f.Priority != "" {
		args = append(args, f.Priority)
		query += fmt.Sprintf(" AND priority = $%d", len(args))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	query += " ORDER BY due_date ASC NULLS LAST, priority DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(
			&t.ID, &t.OwnerID, &t.Title, &t.Description, &t.Priority, &t.Status, &t.Category,
			&t.AssignedTo, &t.DueDate, &t.EstimatedCost, &t.ActualCost, &t.CompletedAt,
			&t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
