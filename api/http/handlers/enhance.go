package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"promptenhancer/api/http/presenter"
	"promptenhancer/pkg/enhance"
	"promptenhancer/pkg/history"
)

type EnhanceHandler struct {
	svc      enhance.Service
	repo     history.Repository // optional, nil disables persistence
	validate *validator.Validate
	log      *zap.Logger
}

func NewEnhanceHandler(svc enhance.Service, repo history.Repository, log *zap.Logger) *EnhanceHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &EnhanceHandler{
		svc:      svc,
		repo:     repo,
		validate: validator.New(),
		log:      log,
	}
}

// The prompt length limit is configurable, so the use case owns it;
// the tag only enforces presence and the tone whitelist.
type enhanceRequest struct {
	Prompt string `json:"prompt" validate:"required"`
	Tone   string `json:"tone" validate:"omitempty,oneof=professional casual academic creative"`
}

// Enhance rewrites a draft prompt via the configured LLM provider and
// appends static writing guidance to the result.
// @Summary Enhance a prompt
// @Description Sends the draft prompt to the configured LLM provider, cleans the reply and appends writing guidance. On provider failure responds 200 with a fallback message.
// @Tags    prompts
// @Accept  json
// @Produce json
// @Param   input body enhanceRequest true "draft prompt and optional tone"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 429 {object} presenter.ErrorResponse
// @Router  /prompts/enhance [post]
func (h *EnhanceHandler) Enhance(c *fiber.Ctx) error {
	var req enhanceRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := h.validate.Struct(req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "prompt is required; tone must be professional, casual, academic or creative")
	}

	result, err := h.svc.Enhance(c.Context(), req.Prompt, req.Tone)
	if err != nil {
		switch {
		case errors.Is(err, enhance.ErrEmptyPrompt):
			return presenter.Error(c, http.StatusBadRequest, "prompt must not be blank")
		case errors.Is(err, enhance.ErrPromptTooLong), errors.Is(err, enhance.ErrUnknownTone):
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		default:
			return presenter.Error(c, http.StatusInternalServerError, "enhancement failed")
		}
	}

	// Persist only after a response was produced; never fail the request
	// because of the history store.
	var savedID string
	if h.repo != nil {
		rec := history.Record{
			ID:         uuid.New(),
			Provider:   result.Provider,
			Model:      result.Model,
			Tone:       result.Tone,
			Prompt:     req.Prompt,
			Enhanced:   result.Enhanced,
			Fallback:   result.Fallback,
			DurationMs: result.Duration.Milliseconds(),
			CreatedAt:  time.Now().UTC(),
		}
		if err := h.repo.Create(c.Context(), rec); err != nil {
			h.log.Warn("failed to store enhancement record", zap.Error(err))
		} else {
			savedID = rec.ID.String()
		}
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"enhanced":    result.Enhanced,
		"model":       result.Model,
		"provider":    result.Provider,
		"tone":        result.Tone,
		"fallback":    result.Fallback,
		"promptChars": result.PromptChars,
		"durationMs":  result.Duration.Milliseconds(),
		"historyId":   savedID,
	})
}
