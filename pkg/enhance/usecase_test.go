package enhance

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptenhancer/pkg/guidance"
)

type fakeModel struct {
	reply     string
	err       error
	gotSystem string
	gotUser   string
}

func (f *fakeModel) Ask(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	f.gotSystem = systemPrompt
	f.gotUser = userPrompt
	return f.reply, f.err
}

func (f *fakeModel) ModelName() string { return "fake-model" }

func newTestService(m *fakeModel) Service {
	return NewService(m, "openai", 100, time.Second, nil)
}

func TestEnhance_Success(t *testing.T) {
	m := &fakeModel{reply: "**Improved** prompt"}
	res, err := newTestService(m).Enhance(context.Background(), "write a poem", "")
	require.NoError(t, err)

	assert.False(t, res.Fallback)
	assert.Equal(t, "fake-model", res.Model)
	assert.Equal(t, "openai", res.Provider)
	assert.Equal(t, DefaultTone, res.Tone)
	assert.Equal(t, len("write a poem"), res.PromptChars)
	assert.True(t, strings.HasPrefix(res.Enhanced, "Improved prompt\n\n"))
	assert.Contains(t, res.Enhanced, guidance.Block())
}

func TestEnhance_PromptInUserMessage(t *testing.T) {
	m := &fakeModel{reply: "ok"}
	_, err := newTestService(m).Enhance(context.Background(), "my draft", "casual")
	require.NoError(t, err)
	assert.Contains(t, m.gotUser, "my draft")
	assert.Contains(t, m.gotUser, toneInstruction["casual"])
	assert.NotEmpty(t, m.gotSystem)
}

func TestEnhance_EmptyPrompt(t *testing.T) {
	m := &fakeModel{reply: "ok"}
	_, err := newTestService(m).Enhance(context.Background(), "   \n ", "")
	assert.ErrorIs(t, err, ErrEmptyPrompt)
}

func TestEnhance_PromptTooLong(t *testing.T) {
	m := &fakeModel{reply: "ok"}
	_, err := newTestService(m).Enhance(context.Background(), strings.Repeat("x", 101), "")
	assert.ErrorIs(t, err, ErrPromptTooLong)
}

func TestEnhance_LimitCountsRunesNotBytes(t *testing.T) {
	m := &fakeModel{reply: "ok"}
	// 60 two-byte runes: 120 bytes but well under the 100-char limit.
	res, err := newTestService(m).Enhance(context.Background(), strings.Repeat("é", 60), "")
	require.NoError(t, err)
	assert.Equal(t, 60, res.PromptChars)

	_, err = newTestService(m).Enhance(context.Background(), strings.Repeat("é", 101), "")
	assert.ErrorIs(t, err, ErrPromptTooLong)
}

func TestEnhance_UnknownTone(t *testing.T) {
	m := &fakeModel{reply: "ok"}
	_, err := newTestService(m).Enhance(context.Background(), "draft", "sarcastic")
	assert.ErrorIs(t, err, ErrUnknownTone)
}

func TestEnhance_ProviderError_Fallback(t *testing.T) {
	m := &fakeModel{err: errors.New("boom")}
	res, err := newTestService(m).Enhance(context.Background(), "draft", "")
	require.NoError(t, err)

	assert.True(t, res.Fallback)
	assert.Contains(t, res.Enhanced, FallbackMessage)
	assert.Contains(t, res.Enhanced, guidance.Block())
}

func TestEnhance_EmptyReply_Fallback(t *testing.T) {
	m := &fakeModel{reply: "  \n  "}
	res, err := newTestService(m).Enhance(context.Background(), "draft", "")
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.Contains(t, res.Enhanced, FallbackMessage)
}

func TestNewService_Defaults(t *testing.T) {
	svc := NewService(&fakeModel{reply: "ok"}, "mistral", 0, 0, nil)
	res, err := svc.Enhance(context.Background(), "draft", "academic")
	require.NoError(t, err)
	assert.Equal(t, "mistral", res.Provider)
	assert.Equal(t, "academic", res.Tone)
}
