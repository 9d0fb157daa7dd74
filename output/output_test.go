package output

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stdout) })
	return &buf
}

func TestMessages(t *testing.T) {
	buf := capture(t)

	Success("done")
	Error("failed")
	Info("next")
	Step("go run .")

	out := buf.String()
	assert.Contains(t, out, "done")
	assert.Contains(t, out, "failed")
	assert.Contains(t, out, "next")
	assert.Contains(t, out, "   go run .")
}

func TestBars(t *testing.T) {
	buf := capture(t)

	Bars([]string{"React", "TypeScript"}, []int{2, 4})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, barWidth/2, strings.Count(lines[0], "█"))
	assert.Equal(t, barWidth, strings.Count(lines[1], "█"))
	assert.True(t, strings.HasSuffix(lines[1], " 4"))
}

func TestBarsEmptyAndZero(t *testing.T) {
	buf := capture(t)

	Bars(nil, nil)
	Bars([]string{"idle"}, []int{0})

	out := buf.String()
	assert.Contains(t, out, "(empty)")
	assert.Contains(t, out, "idle")
	assert.NotContains(t, out, "█")
}
