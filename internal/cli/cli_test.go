package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const graphYAML = `version: 1
people:
  - {name: A, gender: male, best: true, friends: [B, C]}
  - {name: B, gender: female, friends: [A, D]}
  - {name: C, gender: female, friends: [A]}
  - {name: D, gender: male, friends: [B]}
  - {name: E, gender: female}
`

func writeGraph(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "people.yaml")
	require.NoError(t, os.WriteFile(path, []byte(graphYAML), 0o600))
	return path
}

func run(t *testing.T, arguments ...string) (string, error) {
	t.Helper()
	command := NewRootCommand()
	var out bytes.Buffer
	command.SetOut(&out)
	command.SetErr(&bytes.Buffer{})
	command.SetArgs(arguments)
	err := command.Execute()
	return out.String(), err
}

func TestInviteCommandText(t *testing.T) {
	graph := writeGraph(t)
	testCases := []struct {
		name      string
		arguments []string
		expected  string
	}{
		{name: "all", arguments: []string{"invite", graph}, expected: "1. A\n2. B\n3. C\n4. D\n"},
		{name: "male", arguments: []string{"invite", graph, "--filter", "male"}, expected: "1. A\n2. D\n"},
		{name: "bounded", arguments: []string{"invite", "--graph", graph, "--max-level", "2"}, expected: "1. A\n2. B\n3. C\n"},
		{name: "empty_bound", arguments: []string{"invite", graph, "--max-level", "0"}, expected: ""},
		{name: "limit", arguments: []string{"invite", graph, "--limit", "3", "--verbose"}, expected: "1. A\n2. B\n3. C\n"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			output, err := run(t, testCase.arguments...)
			require.NoError(t, err)
			require.Equal(t, testCase.expected, output)
		})
	}
}

func TestInviteCommandJSON(t *testing.T) {
	output, err := run(t, "invite", writeGraph(t), "--filter", "female", "--format", "json")
	require.NoError(t, err)
	var got []personView
	require.NoError(t, json.Unmarshal([]byte(output), &got))
	require.Equal(t, []personView{{Name: "B", Gender: "female"}, {Name: "C", Gender: "female"}}, got)
}

func TestCompareCommand(t *testing.T) {
	graph := writeGraph(t)
	output, err := run(t, "compare", graph)
	require.NoError(t, err)
	require.Equal(t, "[all]\n1. A\n2. B\n3. C\n4. D\n[male]\n1. A\n2. D\n[female]\n1. B\n2. C\n", output)

	output, err = run(t, "compare", graph, "--format", "json", "--max-level", "1")
	require.NoError(t, err)
	var got map[string][]personView
	require.NoError(t, json.Unmarshal([]byte(output), &got))
	require.Len(t, got["all"], 1)
	require.Len(t, got["male"], 1)
	require.Empty(t, got["female"])
}

func TestCommandErrors(t *testing.T) {
	_, err := run(t, "invite")
	require.ErrorContains(t, err, "no guest graph")

	_, err = run(t, "invite", writeGraph(t), "--filter", "cats")
	require.Error(t, err)

	broken := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("version: 1\npeople:\n  - {name: A, best: true, friends: [ghost]}\n"), 0o600))
	_, err = run(t, "invite", broken)
	require.ErrorContains(t, err, "ghost")
	_, err = run(t, "compare", broken)
	require.ErrorContains(t, err, "ghost")
}
