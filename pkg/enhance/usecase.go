package enhance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"promptenhancer/pkg/guidance"
	"promptenhancer/pkg/llm"
	"promptenhancer/pkg/textproc"
)

var (
	ErrEmptyPrompt   = errors.New("prompt is empty")
	ErrPromptTooLong = errors.New("prompt is too long")
	ErrUnknownTone   = errors.New("unknown tone")
)

// Result is a domain DTO with the enhanced prompt and call metadata.
type Result struct {
	Enhanced    string
	Model       string
	Provider    string
	Tone        string
	Fallback    bool
	PromptChars int
	Duration    time.Duration
}

// Service describes the application use case for prompt enhancement.
type Service interface {
	Enhance(ctx context.Context, prompt, tone string) (Result, error)
}

type service struct {
	llm            llm.ChatModel
	provider       string
	maxPromptChars int
	timeout        time.Duration
	log            *zap.Logger
}

// NewService creates the default implementation.
func NewService(model llm.ChatModel, provider string, maxPromptChars int, timeout time.Duration, log *zap.Logger) Service {
	if maxPromptChars <= 0 {
		maxPromptChars = 4000
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &service{
		llm:            model,
		provider:       provider,
		maxPromptChars: maxPromptChars,
		timeout:        timeout,
		log:            log,
	}
}

// Enhance validates the prompt, asks the model for a rewrite, cleans the
// reply and appends the guidance block. A provider failure never surfaces
// as an error: the result degrades to a static fallback message.
func (s *service) Enhance(ctx context.Context, prompt, tone string) (Result, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return Result{}, ErrEmptyPrompt
	}
	// The limit is in characters, not bytes, so multibyte prompts
	// are not penalized.
	if utf8.RuneCountInString(prompt) > s.maxPromptChars {
		return Result{}, fmt.Errorf("%w: limit is %d characters", ErrPromptTooLong, s.maxPromptChars)
	}
	if tone == "" {
		tone = DefaultTone
	}
	toneWording, ok := toneInstruction[tone]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownTone, tone)
	}

	res := Result{
		Model:       s.llm.ModelName(),
		Provider:    s.provider,
		Tone:        tone,
		PromptChars: utf8.RuneCountInString(prompt),
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	started := time.Now()
	answer, err := s.llm.Ask(callCtx, systemPrompt, fmt.Sprintf(userPromptTemplate, prompt, toneWording))
	res.Duration = time.Since(started)
	if err != nil {
		// degrade gracefully: static message instead of the model reply
		s.log.Warn("llm call failed, serving fallback",
			zap.String("provider", s.provider),
			zap.String("model", res.Model),
			zap.Error(err))
		res.Fallback = true
		res.Enhanced = guidance.Append(FallbackMessage)
		return res, nil
	}

	cleaned := textproc.Clean(answer)
	if cleaned == "" {
		s.log.Warn("llm returned empty reply, serving fallback",
			zap.String("provider", s.provider))
		res.Fallback = true
		res.Enhanced = guidance.Append(FallbackMessage)
		return res, nil
	}
	res.Enhanced = guidance.Append(cleaned)

	s.log.Info("prompt enhanced",
		zap.String("provider", s.provider),
		zap.String("model", res.Model),
		zap.String("tone", tone),
		zap.Int("promptChars", res.PromptChars),
		zap.Duration("duration", res.Duration))
	return res, nil
}
