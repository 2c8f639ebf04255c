package cli

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCli_Clock_StopsOnCancel(t *testing.T) {
	env := newTestEnv(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, env.cli.Run(ctx, []string{"clock"}))
	assert.Equal(t, "Monday, 10 June 2024  12:00:00\n", env.term.String())
}

func TestCli_Clock_Ticks(t *testing.T) {
	env := newTestEnv(t)
	env.cli.tick = time.Millisecond
	env.term.IsTerminalFunc = func() bool { return true }

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	require.NoError(t, env.cli.Run(ctx, []string{"clock"}))
	out := env.term.String()
	assert.GreaterOrEqual(t, strings.Count(out, "\r"), 2)
	assert.True(t, strings.HasSuffix(out, "\n"))
}
