package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmAnswers(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"  yes  \n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"y", true},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			term := NewTerminal(&out, strings.NewReader(tt.input), false)

			ok, err := term.Confirm(context.Background(), "Are you sure?")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
			assert.Equal(t, "Are you sure? [y/N]: ", out.String())
		})
	}
}

func TestConfirmAssumeYes(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(&out, strings.NewReader(""), true)

	ok, err := term.Confirm(context.Background(), "Are you sure?")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, out.String())
}

func TestConfirmCancelled(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	term := NewTerminal(io.Discard, r, false)
	ok, err := term.Confirm(ctx, "Are you sure?")
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAlert(t *testing.T) {
	var out bytes.Buffer
	NewTerminal(&out, nil, false).Alert(context.Background(), "User added successfully!")
	assert.Equal(t, "User added successfully!\n", out.String())
}
