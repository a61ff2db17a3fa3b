package prompt

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinePrompter_Ask(t *testing.T) {
	var out bytes.Buffer
	prompter := NewLinePrompter(strings.NewReader("  work client  \n\nlast line"), &out)
	ctx := context.Background()

	tags, err := prompter.Ask(ctx, "Enter tags (space-separated)")
	require.NoError(t, err)
	assert.Equal(t, "work client", tags)

	blank, err := prompter.Ask(ctx, "Enter annotation")
	require.NoError(t, err)
	assert.Empty(t, blank)

	last, err := prompter.Ask(ctx, "Start time")
	require.NoError(t, err)
	assert.Equal(t, "last line", last)

	_, err = prompter.Ask(ctx, "End time")
	require.ErrorIs(t, err, ErrNoInput)

	assert.Equal(t, "Enter tags (space-separated): Enter annotation: Start time: End time: ", out.String())
}

func TestLinePrompter_CanceledContext(t *testing.T) {
	var out bytes.Buffer
	prompter := NewLinePrompter(strings.NewReader("x\n"), &out)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := prompter.Ask(ctx, "Enter tags")
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestLinePrompter_CRLF(t *testing.T) {
	prompter := NewLinePrompter(strings.NewReader("9:00\r\n"), &bytes.Buffer{})

	answer, err := prompter.Ask(context.Background(), "Start time")
	require.NoError(t, err)
	assert.Equal(t, "9:00", answer)
}

func TestNew_PipedInputUsesLinePrompter(t *testing.T) {
	prompter := New(strings.NewReader(""), &bytes.Buffer{})
	assert.IsType(t, &LinePrompter{}, prompter)
}
