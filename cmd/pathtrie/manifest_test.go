package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testManifest = `
entries:
  - path: /12/456/10
    values: ["12", "9"]
  - path: 12/456/10
    values: ["13"]
  - path: /13/457/15
    values: [19]
  - path: /15/458/17
    values: [{name: twenty}]
  - path: //broken
    values: [0]
  - path: /12/456/13
    values: ["17"]
  - path: /12/456/13
    values: ["18"]
    replace: true
remove:
  - /15
  - /missing
`

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParseManifest(t *testing.T) {
	t.Parallel()

	m, err := parseManifest(strings.NewReader(testManifest))
	require.NoError(t, err)

	assert.Equal(t, "/", m.Delimiter)
	assert.Len(t, m.Entries, 7)
	assert.Equal(t, []string{"/15", "/missing"}, m.Remove)
	assert.True(t, m.Entries[6].Replace)
}

func TestParseManifest_Empty(t *testing.T) {
	t.Parallel()

	m, err := parseManifest(strings.NewReader(""))
	require.NoError(t, err)

	assert.Equal(t, "/", m.Delimiter)
	assert.Empty(t, m.Entries)
}

func TestParseManifest_Errors(t *testing.T) {
	t.Parallel()

	for _, doc := range []string{
		"entries: {path: x}",
		"unknown: 1",
		"entries:\n  - path: [1, 2]",
	} {
		_, err := parseManifest(strings.NewReader(doc))
		assert.Error(t, err, doc)
	}
}

func TestManifestBuild(t *testing.T) {
	t.Parallel()

	m, err := parseManifest(strings.NewReader(testManifest))
	require.NoError(t, err)

	tr := m.Build(discardLogger())

	assert.Equal(t, []any{"12", "9", "13"}, tr.Fetch("12/456/10"))
	assert.Equal(t, []any{19}, tr.Fetch("13/457/15"))
	assert.Equal(t, []any{"18"}, tr.Fetch("12/456/13"))
	assert.Nil(t, tr.NodeForRef("15"))
	assert.Nil(t, tr.NodeForRef("broken"))
	assert.Equal(t, 5, tr.Len())

	assert.Equal(t, map[string][]any{
		"12/456/10": {"12", "9", "13"},
		"12/456/13": {"18"},
		"13/457/15": {19},
	}, treeJSON(tr))
}

func TestManifestBuild_Delimiter(t *testing.T) {
	t.Parallel()

	m, err := parseManifest(strings.NewReader("delimiter: .\nentries:\n  - path: .a.b\n    values: [1]\n"))
	require.NoError(t, err)

	tr := m.Build(discardLogger())

	assert.Equal(t, ".", tr.Delim())
	assert.Equal(t, []any{1}, tr.Fetch("a.b"))
	assert.Equal(t, []string{"a"}, tr.Enumerate())
}

func TestManifestBuild_EmptyEntry(t *testing.T) {
	t.Parallel()

	doc := `
entries:
  - path: a/b
    values: []
  - path: c/d
    replace: true
`
	m, err := parseManifest(strings.NewReader(doc))
	require.NoError(t, err)

	var logs bytes.Buffer
	tr := m.Build(slog.New(slog.NewJSONHandler(&logs, nil)))

	assert.Nil(t, tr.NodeForRef("a"))
	assert.Contains(t, logs.String(), `"msg":"skipping entry without values"`)
	assert.Contains(t, logs.String(), `"path":"a/b"`)

	vals, ok := tr.FetchRef("c/d")
	assert.True(t, ok)
	assert.Empty(t, vals)
	assert.Equal(t, []string{"c"}, tr.Enumerate())
}
