package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "[█████░░░░░] 1/2", ProgressBar(1, 2, 10))
	assert.Equal(t, "[░░░░░] 0/1", ProgressBar(0, 0, 5))
	assert.Equal(t, "[███] 9/3", ProgressBar(9, 3, 3))
}

func TestSetTheme_Mono(t *testing.T) {
	t.Cleanup(func() { SetTheme("classic") })

	SetTheme("MONO")
	assert.Equal(t, "[x]", Current().BoxChecked)
	assert.Equal(t, "done", Current().Done.Render("done"))
}

func TestOKAndFail(t *testing.T) {
	t.Cleanup(func() { SetTheme("classic") })
	SetTheme("mono")

	var out, errOut bytes.Buffer
	origOut, origErr := Out, Err
	Out, Err = &out, &errOut
	t.Cleanup(func() { Out, Err = origOut, origErr })

	OK("saved")
	Fail("boom")
	assert.Equal(t, "x saved\n", out.String())
	assert.Equal(t, "✖ boom\n", errOut.String())
}

func TestPanelString(t *testing.T) {
	t.Cleanup(func() { SetTheme("classic") })
	SetTheme("mono")

	s := PanelString([]string{"a", "bb"})
	lines := strings.Split(s, "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "┌────┐", lines[0])
	assert.Equal(t, "│ a  │", lines[1])
}
