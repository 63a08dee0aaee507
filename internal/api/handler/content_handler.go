package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/everafter/planner-api/internal/core/domain"
	"github.com/everafter/planner-api/internal/core/ports"
)

// ContentHandler serves site content blocks. Listing is public by default;
// passing ?admin=true returns unpublished blocks too and requires an
// organizer token.
type ContentHandler struct {
	service ports.ContentService
}

func NewContentHandler(service ports.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

type createContentRequest struct {
	Key         string `json:"key" validate:"required"`
	Title       string `json:"title"`
	Content     string `json:"content" validate:"required"`
	ContentType string `json:"content_type"`
	IsPublic    *bool  `json:"is_public"`
	Order       int    `json:"order"`
}

type updateContentRequest struct {
	Key         *string `json:"key"`
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	ContentType *string `json:"content_type"`
	IsPublic    *bool   `json:"is_public"`
	Order       *int    `json:"order"`
}

// List returns published content blocks, or every block when the
// admin query flag is set by an authenticated organizer.
//
// @Summary      List content blocks
// @Tags         content
// @Produce      json
// @Param        admin  query  bool  false  "Include unpublished blocks (organizer only)"
// @Success      200  {array}   domain.Content
// @Failure      401  {object}  map[string]string
// @Router       /api/content [get]
func (h *ContentHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		blocks []domain.Content
		err    error
	)
	if c.QueryParam("admin") == "true" {
		blocks, err = h.service.ListAll(ctx, maybeOrganizer(c))
	} else {
		blocks, err = h.service.ListPublic(ctx)
	}
	if err != nil {
		return err
	}
	if blocks == nil {
		blocks = []domain.Content{}
	}
	return c.JSON(http.StatusOK, blocks)
}

// GetByKey returns a single content block. Unpublished blocks are only
// visible to organizers.
//
// @Summary      Get a content block by key
// @Tags         content
// @Produce      json
// @Success      200  {object}  domain.Content
// @Failure      404  {object}  map[string]string
// @Router       /api/content/{key} [get]
func (h *ContentHandler) GetByKey(c echo.Context) error {
	block, err := h.service.GetByKey(c.Request().Context(), c.Param("key"), maybeOrganizer(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, block)
}

// Create adds a content block.
//
// @Summary      Create a content block
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  domain.Content
// @Failure      409  {object}  map[string]string
// @Router       /api/content [post]
func (h *ContentHandler) Create(c echo.Context) error {
	if _, err := currentOrganizer(c); err != nil {
		return err
	}

	var req createContentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	block, err := h.service.Create(c.Request().Context(), ports.CreateContentInput{
		Key:         req.Key,
		Title:       req.Title,
		Body:        req.Content,
		ContentType: req.ContentType,
		IsPublic:    req.IsPublic,
		Order:       req.Order,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, block)
}

// Update applies a partial update to a content block.
//
// @Summary      Update a content block
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Content
// @Failure      404  {object}  map[string]string
// @Router       /api/content/{id} [put]
func (h *ContentHandler) Update(c echo.Context) error {
	if _, err := currentOrganizer(c); err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	var req updateContentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	block, err := h.service.Update(c.Request().Context(), id, ports.UpdateContentInput{
		Key:         req.Key,
		Title:       req.Title,
		Body:        req.Content,
		ContentType: req.ContentType,
		IsPublic:    req.IsPublic,
		Order:       req.Order,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, block)
}

// Delete removes a content block.
//
// @Summary      Delete a content block
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/content/{id} [delete]
func (h *ContentHandler) Delete(c echo.Context) error {
	if _, err := currentOrganizer(c); err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Content deleted successfully"})
}
