package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"promptenhancer/api/http/presenter"
	"promptenhancer/pkg/history"
)

type HistoryHandler struct {
	repo history.Repository // nil when no database is configured
}

func NewHistoryHandler(repo history.Repository) *HistoryHandler {
	return &HistoryHandler{repo: repo}
}

// List returns recent enhancements, newest first.
// @Summary List enhancement history
// @Tags    prompts
// @Produce json
// @Param   limit  query int false "page size (1..200, default 20)"
// @Param   offset query int false "rows to skip"
// @Success 200 {object} map[string]any
// @Failure 503 {object} presenter.ErrorResponse
// @Router  /prompts/history [get]
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	if h.repo == nil {
		return presenter.Error(c, http.StatusServiceUnavailable, "history is disabled: no database configured")
	}
	limit, offset := parseLimitOffset(c, 20)
	items, err := h.repo.List(c.Context(), limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list history")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"items":  items,
		"limit":  limit,
		"offset": offset,
	})
}

// Get returns one enhancement record by id.
// @Summary Get enhancement record
// @Tags    prompts
// @Produce json
// @Param   id path string true "record id (UUID)"
// @Success 200 {object} history.Record
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 503 {object} presenter.ErrorResponse
// @Router  /prompts/history/{id} [get]
func (h *HistoryHandler) Get(c *fiber.Ctx) error {
	if h.repo == nil {
		return presenter.Error(c, http.StatusServiceUnavailable, "history is disabled: no database configured")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid record id")
	}
	rec, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, history.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "record not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load record")
	}
	return presenter.JSON(c, http.StatusOK, rec)
}

func parseLimitOffset(c *fiber.Ctx, defLimit int) (limit, offset int) {
	limit = defLimit
	offset = 0
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	if v := strings.TrimSpace(c.Query("offset")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}
