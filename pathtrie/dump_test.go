package pathtrie

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	t.Parallel()

	tr := New[string]("/")
	tr.Insert("usr/bin/vim", "9.0")
	tr.Insert("usr/bin/vim", "9.1")
	tr.Insert("usr/bin/bash", "5.2")
	tr.Insert("var/log", "syslog")

	out := tr.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")

	assert.Len(t, lines, 7)
	assert.Equal(t, "/", lines[0])
	assert.Contains(t, lines[1], "usr")
	assert.Contains(t, lines[2], "bin")
	assert.Contains(t, lines[3], "bash [5.2]")
	assert.Contains(t, lines[4], "vim [9.0 9.1]")
	assert.Contains(t, lines[5], "var")
	assert.Contains(t, lines[6], "log [syslog]")
}

func TestString_Subtree(t *testing.T) {
	t.Parallel()

	tr := New[int](".")
	tr.Insert("a.b", 1)
	tr.Insert("a", 2)

	out := tr.NodeForRef("a").String()

	assert.True(t, strings.HasPrefix(out, "a [2]"), out)
	assert.Contains(t, out, "b [1]")
}
