package term

import (
	"io"
	"os"
	"strings"
	"testing"

	"pedia-cli/shared"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsInteractiveWithPipedStdin(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	prev := os.Stdin
	os.Stdin = r
	t.Cleanup(func() { os.Stdin = prev })

	assert.False(t, IsInteractive())
}

func TestHandleApiErrorPrintsServerMessage(t *testing.T) {
	prevNoColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prevNoColor })

	r, w, err := os.Pipe()
	require.NoError(t, err)

	prev := os.Stderr
	os.Stderr = w
	t.Cleanup(func() { os.Stderr = prev })

	HandleApiError(&shared.ApiError{
		Type:   shared.ApiErrorTypeValidation,
		Status: 400,
		Msg:    "invalid credentials",
	})

	w.Close()
	out, err := io.ReadAll(r)
	require.NoError(t, err)

	assert.True(t, strings.Contains(string(out), "Invalid credentials"),
		"expected the capitalized server message on stderr, got %q", string(out))
}
