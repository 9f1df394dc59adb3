package roster_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/guestlist/guest"
	"github.com/katalvlaran/guestlist/invite"
	"github.com/katalvlaran/guestlist/roster"
)

const squareYAML = `version: 1
people:
  - name: A
    gender: male
    best: true
    friends: [B, C]
  - name: B
    gender: female
    friends: [A, D]
  - name: C
    gender: female
    friends: [A]
  - name: D
    gender: male
    friends: [B]
`

const squareJSON = `{
  "version": 1,
  "people": [
    {"name": "A", "gender": "male", "best": true, "friends": ["B", "C"]},
    {"name": "B", "gender": "female", "friends": ["A", "D"]},
    {"name": "C", "gender": "female", "friends": ["A"]},
    {"name": "D", "gender": "male", "friends": ["B"]}
  ]
}`

func wantSquare() []*guest.Person {
	return []*guest.Person{
		{Name: "A", Gender: guest.Male, Best: true, Friends: []string{"B", "C"}},
		{Name: "B", Gender: guest.Female, Friends: []string{"A", "D"}},
		{Name: "C", Gender: guest.Female, Friends: []string{"A"}},
		{Name: "D", Gender: guest.Male, Friends: []string{"B"}},
	}
}

// TestDecode_Formats reads the same graph from YAML and JSON.
func TestDecode_Formats(t *testing.T) {
	for format, doc := range map[roster.Format]string{roster.FormatYAML: squareYAML, roster.FormatJSON: squareJSON} {
		got, err := roster.Decode(strings.NewReader(doc), format)
		require.NoError(t, err, format)
		if diff := cmp.Diff(wantSquare(), got); diff != "" {
			t.Errorf("%s: unexpected people -want/+got:\n\t%s", format, diff)
		}
	}
}

// TestDecode_Errors covers version, validation, syntax and format failures.
func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name   string
		format roster.Format
		doc    string
		want   error
	}{
		{"empty yaml", roster.FormatYAML, "", roster.ErrUnsupportedVersion},
		{"wrong version", roster.FormatYAML, "version: 2\npeople: []\n", roster.ErrUnsupportedVersion},
		{"missing name", roster.FormatYAML, "version: 1\npeople:\n  - gender: male\n", guest.ErrInvalidPerson},
		{"bad gender", roster.FormatJSON, `{"version":1,"people":[{"name":"X","gender":"cat"}]}`, guest.ErrInvalidPerson},
		{"unknown field", roster.FormatJSON, `{"version":1,"guests":[]}`, roster.ErrDecode},
		{"unknown yaml field", roster.FormatYAML, "version: 1\npeople:\n  - name: A\n    freinds: [B]\n", roster.ErrDecode},
		{"unknown json person field", roster.FormatJSON, `{"version":1,"people":[{"name":"A","freinds":["B"]}]}`, roster.ErrDecode},
		{"broken yaml", roster.FormatYAML, "version: [1\n", roster.ErrDecode},
		{"unknown format", roster.Format("toml"), "", roster.ErrUnsupportedFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := roster.Decode(strings.NewReader(tc.doc), tc.format)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestLoad reads from disk, picks the decoder by extension and feeds the engine.
func TestLoad(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "guests.yml")
	jsonPath := filepath.Join(dir, "guests.JSON")
	require.NoError(t, os.WriteFile(yamlPath, []byte(squareYAML), 0o600))
	require.NoError(t, os.WriteFile(jsonPath, []byte(squareJSON), 0o600))

	for _, path := range []string{yamlPath, jsonPath} {
		people, err := roster.Load(path)
		require.NoError(t, err, path)

		it, err := invite.New(people, guest.MaleOnly)
		require.NoError(t, err)
		list, err := invite.Collect(it, 0)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "A", list[0].Name)
		assert.Equal(t, "D", list[1].Name)
	}

	_, err := roster.Load(filepath.Join(dir, "guests.txt"))
	assert.ErrorIs(t, err, roster.ErrUnsupportedFormat)
	_, err = roster.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestEncode writes a document that Decode reads back unchanged.
func TestEncode(t *testing.T) {
	for _, format := range []roster.Format{roster.FormatYAML, roster.FormatJSON} {
		var buf bytes.Buffer
		require.NoError(t, roster.Encode(&buf, format, wantSquare()))
		got, err := roster.Decode(&buf, format)
		require.NoError(t, err)
		if diff := cmp.Diff(wantSquare(), got); diff != "" {
			t.Errorf("%s: -want/+got:\n\t%s", format, diff)
		}
	}
	assert.ErrorIs(t, roster.Encode(&bytes.Buffer{}, "ini", nil), roster.ErrUnsupportedFormat)
}
