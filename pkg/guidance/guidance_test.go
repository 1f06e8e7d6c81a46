package guidance

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlock_Deterministic(t *testing.T) {
	assert.Equal(t, Block(), Block())
}

func TestBlock_Content(t *testing.T) {
	b := Block()
	assert.True(t, strings.HasPrefix(b, blockHeading))
	for _, w := range powerVerbs {
		assert.Contains(t, b, w)
	}
	for _, cue := range structureCues {
		assert.Contains(t, b, "- "+cue)
	}
	assert.False(t, strings.HasSuffix(b, "\n"))
}

func TestAppend(t *testing.T) {
	out := Append("enhanced text")
	assert.True(t, strings.HasPrefix(out, "enhanced text\n\n"+blockHeading))
}

func TestAppend_TrimsTrailingNewlines(t *testing.T) {
	out := Append("enhanced text\n\n")
	assert.True(t, strings.HasPrefix(out, "enhanced text\n\n"+blockHeading))
	assert.NotContains(t, out, "text\n\n\n")
}

func TestAppend_Empty(t *testing.T) {
	assert.Equal(t, Block(), Append(""))
}
