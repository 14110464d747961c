package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
}

func TestLogWritesMemoryAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "terminal.txt")
	l := NewAt(path)
	l.now = fixedClock

	l.Log("box 2 3 4")
	l.Logf("decoded %s", "box")

	assert.Equal(t, []string{
		"[2024-01-02 03:04:05] box 2 3 4",
		"[2024-01-02 03:04:05] decoded box",
	}, l.Lines())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "\n"))
	assert.Contains(t, string(data), "decoded box")
}

func TestLinesIsACopy(t *testing.T) {
	l := NewAt("")
	l.Log("a")
	lines := l.Lines()
	lines[0] = "changed"
	assert.NotEqual(t, "changed", l.Lines()[0])
}

func TestTail(t *testing.T) {
	l := NewAt("")
	l.now = fixedClock
	for _, s := range []string{"a", "b", "c"} {
		l.Log(s)
	}
	assert.Len(t, l.Tail(2), 2)
	assert.True(t, strings.HasSuffix(l.Tail(2)[0], " b"))
	assert.Len(t, l.Tail(10), 3)
	assert.Nil(t, l.Tail(0))
}

func TestClip(t *testing.T) {
	tests := []struct {
		name string
		line string
		n    int
		want string
	}{
		{"short", "box 2 3 4", 20, "box 2 3 4"},
		{"exact", "abcdef", 6, "abcdef"},
		{"ascii cut", "abcdefghij", 8, "abcde..."},
		{"cut inside two-byte rune", "abcdé-fgh", 8, "abcd..."},
		{"cut inside three-byte rune", "ab€€€€", 8, "ab€..."},
		{"cut inside four-byte rune", "a😀😀", 7, "a..."},
		{"tiny limit", "abcdef", 2, ".."},
		{"zero limit", "abcdef", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clip(tt.line, tt.n)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
			assert.LessOrEqual(t, len(got), max(tt.n, 0))
		})
	}
}
