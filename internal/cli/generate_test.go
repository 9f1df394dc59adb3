package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/guestlist/roster"
)

func TestGenerateFeedsInvite(t *testing.T) {
	output, err := run(t, "generate", "--shape", "path", "--size", "4", "--prefix", "p")
	require.NoError(t, err)

	people, err := roster.Decode(strings.NewReader(output), roster.FormatYAML)
	require.NoError(t, err)
	require.Len(t, people, 4)
	require.True(t, people[0].Best)

	path := filepath.Join(t.TempDir(), "chain.yaml")
	require.NoError(t, os.WriteFile(path, []byte(output), 0o600))
	listing, err := run(t, "invite", path, "--max-level", "2")
	require.NoError(t, err)
	require.Equal(t, "1. p0000\n2. p0001\n", listing)
}

func TestGenerateDeterministicJSON(t *testing.T) {
	arguments := []string{"generate", "--shape", "random", "--size", "30", "--seed", "9", "--best-ratio", "0.1", "--encoding", "json"}
	first, err := run(t, arguments...)
	require.NoError(t, err)
	second, err := run(t, arguments...)
	require.NoError(t, err)
	require.Equal(t, first, second)

	people, err := roster.Decode(strings.NewReader(first), roster.FormatJSON)
	require.NoError(t, err)
	require.Len(t, people, 30)
}

func TestGenerateErrors(t *testing.T) {
	_, err := run(t, "generate", "--shape", "hexagon")
	require.ErrorContains(t, err, "unknown shape")
	_, err = run(t, "generate", "--best-ratio", "2")
	require.ErrorContains(t, err, "best-ratio")
	_, err = run(t, "generate", "--shape", "star", "--size", "1")
	require.Error(t, err)
	_, err = run(t, "generate", "--encoding", "toml")
	require.ErrorIs(t, err, roster.ErrUnsupportedFormat)
}
