package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/everafter/planner-api/internal/core/domain"
	"github.com/everafter/planner-api/internal/core/ports"
)

// parseDate converts an ISO calendar date string. Empty means "no date".
func parseDate(field, value string) (*domain.Date, error) {
	if value == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(value)
	if err != nil {
		return nil, domain.MalformedDate(field)
	}
	return &d, nil
}

// TaskService implements owner-scoped task management.
type TaskService struct {
	repo   ports.TaskRepository
	logger zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, logger: logger}
}

func (s *TaskService) Create(ctx context.Context, ownerID int64, in ports.CreateTaskInput) (*domain.Task, error) {
	if in.Title == "" {
		return nil, domain.MissingField("title")
	}

	due, err := parseDate("due_date", in.DueDate)
	if err != nil {
		return nil, err
	}

	priority := in.Priority
	if priority == "" {
		priority = domain.TaskPriorityDefault
	}
	status := in.Status
	if status == "" {
		status = domain.TaskTodo
	}

	now := time.Now().UTC()
	task := &domain.Task{
		OwnerID:       ownerID,
		Title:         in.Title,
		Description:   in.Description,
		Priority:      priority,
		Status:        status,
		Category:      in.Category,
		AssignedTo:    in.AssignedTo,
		DueDate:       due,
		EstimatedCost: in.EstimatedCost,
		ActualCost:    in.ActualCost,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("task_id", created.ID).Int64("owner_id", ownerID).Msg("task created")
	return created, nil
}

func (s *TaskService) List(ctx context.Context, ownerID int64, f ports.TaskFilter) ([]domain.Task, error) {
	return s.repo.List(ctx, ownerID, f)
}

func (s *TaskService) Update(ctx context.Context, ownerID, taskID int64, in ports.UpdateTaskInput) (*domain.Task, error) {
	task, err := s.repo.FindOwned(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.Priority != nil {
		task.Priority = *in.Priority
	}
	if in.Status != nil {
		task.Status = *in.Status
		// Completion is stamped once and cleared when the task reopens.
		if *in.Status == domain.TaskCompleted {
			if task.CompletedAt == nil {
				now := time.Now().UTC()
				task.CompletedAt = &now
			}
		} else {
			task.CompletedAt = nil
		}
	}
	if in.DueDate != nil {
		due, err := parseDate("due_date", *in.DueDate)
		if err != nil {
			return nil, err
		}
		task.DueDate = due
	}
	if in.Category != nil {
		task.Category = *in.Category
	}
	if in.AssignedTo != nil {
		task.AssignedTo = *in.AssignedTo
	}
	if in.EstimatedCost != nil {
		task.EstimatedCost = in.EstimatedCost
	}
	if in.ActualCost != nil {
		task.ActualCost = in.ActualCost
	}

	task.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, ownerID, taskID int64) error {
	return s.repo.DeleteOwned(ctx, ownerID, taskID)
}
