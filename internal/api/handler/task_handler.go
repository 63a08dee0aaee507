package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/everafter/planner-api/internal/core/domain"
	"github.com/everafter/planner-api/internal/core/ports"
)

// TaskHandler handles owner-scoped task management.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

type createTaskRequest struct {
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description"`
	Priority      string   `json:"priority"`
	Status        string   `json:"status"`
	Category      string   `json:"category"`
	AssignedTo    string   `json:"assigned_to"`
	DueDate       string   `json:"due_date"`
	EstimatedCost *float64 `json:"estimated_cost"`
	ActualCost    *float64 `json:"actual_cost"`
}

type updateTaskRequest struct {
	Title         *string  `json:"title"`
	Description   *string  `json:"description"`
	Priority      *string  `json:"priority"`
	Status        *string  `json:"status"`
	Category      *string  `json:"category"`
	AssignedTo    *string  `json:"assigned_to"`
	DueDate       *string  `json:"due_date"`
	EstimatedCost *float64 `json:"estimated_cost"`
	ActualCost    *float64 `json:"actual_cost"`
}

// List returns the calling organizer's tasks.
//
// @Summary      List own tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        status    query  string  false  "Filter by status"
// @Param        priority  query  string  false  "Filter by priority"
// @Param        category  query  string  false  "Filter by category"
// @Success      200  {array}   domain.Task
// @Failure      401  {object}  map[string]string
// @Router       /api/tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	org, err := currentOrganizer(c)
	if err != nil {
		return err
	}

	tasks, err := h.service.List(c.Request().Context(), org.ID, ports.TaskFilter{
		Status:   c.QueryParam("status"),
		Priority: c.QueryParam("priority"),
		Category: c.QueryParam("category"),
	})
	if err != nil {
		return err
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return c.JSON(http.StatusOK, tasks)
}

// Create adds a task owned by the calling organizer.
//
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  domain.Task
// @Failure      400  {object}  map[string]string
// @Router       /api/tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	org, err := currentOrganizer(c)
	if err != nil {
		return err
	}

	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.service.Create(c.Request().Context(), org.ID, ports.CreateTaskInput{
		Title:         req.Title,
		Description:   req.Description,
		Priority:      req.Priority,
		Status:        req.Status,
		Category:      req.Category,
		AssignedTo:    req.AssignedTo,
		DueDate:       req.DueDate,
		EstimatedCost: req.EstimatedCost,
		ActualCost:    req.ActualCost,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, task)
}

// Update applies a partial update to an owned task. A task owned by another
// organizer responds 404.
//
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Task
// @Failure      404  {object}  map[string]string
// @Router       /api/tasks/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	org, err := currentOrganizer(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	task, err := h.service.Update(c.Request().Context(), org.ID, id, ports.UpdateTaskInput{
		Title:         req.Title,
		Description:   req.Description,
		Priority:      req.Priority,
		Status:        req.Status,
		Category:      req.Category,
		AssignedTo:    req.AssignedTo,
		DueDate:       req.DueDate,
		EstimatedCost: req.EstimatedCost,
		ActualCost:    req.ActualCost,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// Delete removes an owned task.
//
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	org, err := currentOrganizer(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), org.ID, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Task deleted successfully"})
}
