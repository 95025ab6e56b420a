package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleRouting(t *testing.T) {
	var out, errW bytes.Buffer
	c := NewWithWriters(&out, &errW)

	c.Log("hello %s", "world")
	c.Warn("careful")
	c.Success("built")
	c.Error("broken")

	assert.Contains(t, out.String(), "hello world")
	assert.Contains(t, out.String(), "careful")
	assert.Contains(t, out.String(), "built")
	assert.NotContains(t, out.String(), "broken")
	assert.Contains(t, errW.String(), "broken")
}

func TestStatusReportsCompletion(t *testing.T) {
	var out bytes.Buffer
	c := NewWithWriters(&out, &out)

	done := c.Status("installing")
	done()

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "installing")
	assert.Contains(t, lines[1], "done in")
}
