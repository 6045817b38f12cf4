package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnifiedIdenticalContent(t *testing.T) {
	out, stats := Unified([]byte("a\nb\n"), []byte("a\nb\n"), "before", "after")

	assert.Empty(t, out)
	assert.False(t, stats.Changed())
}

func TestUnifiedSingleLineChange(t *testing.T) {
	out, stats := Unified([]byte("line1\nline2\nline3\n"), []byte("line1\nmodified\nline3\n"), "defaults", "playground.yaml")

	assert.True(t, strings.HasPrefix(out, "--- defaults\n+++ playground.yaml\n@@ -1,3 +1,3 @@\n"))
	assert.Contains(t, out, " line1\n")
	assert.Contains(t, out, "-line2\n")
	assert.Contains(t, out, "+modified\n")
	assert.Contains(t, out, " line3\n")
	assert.Equal(t, Stats{Added: 1, Removed: 1}, stats)
}

func TestUnifiedComparesWholeLines(t *testing.T) {
	out, stats := Unified([]byte("theme: light\n"), []byte("theme: dark\n"), "a", "b")

	assert.Contains(t, out, "-theme: light\n")
	assert.Contains(t, out, "+theme: dark\n")
	assert.Equal(t, Stats{Added: 1, Removed: 1}, stats)
}

func TestUnifiedAppendOnly(t *testing.T) {
	out, stats := Unified([]byte("a\n"), []byte("a\nb\nc\n"), "a", "b")

	assert.Contains(t, out, "@@ -1,1 +1,3 @@")
	assert.Contains(t, out, "+b\n+c\n")
	assert.Equal(t, Stats{Added: 2}, stats)
}

func TestUnifiedTruncatesLargeDiffs(t *testing.T) {
	var before, after strings.Builder
	for i := 0; i < maxDiffLines; i++ {
		before.WriteString("old\n")
		after.WriteString("new\n")
	}

	out, _ := Unified([]byte(before.String()), []byte(after.String()), "a", "b")

	assert.True(t, strings.HasSuffix(out, truncateMessage+"\n"))
}
