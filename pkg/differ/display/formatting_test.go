package display

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestPadToWidthShortText(t *testing.T) {
	assert.Equal(t, "hello     ", PadToWidth("hello", 10))
}

func TestPadToWidthExact(t *testing.T) {
	assert.Equal(t, "exactly10!", PadToWidth("exactly10!", 10))
}

func TestPadToWidthAlreadyWide(t *testing.T) {
	long := "this is longer than ten"
	assert.Equal(t, long, PadToWidth(long, 10))
}

func TestPadToWidthEmpty(t *testing.T) {
	assert.Equal(t, "     ", PadToWidth("", 5))
}

func TestPadToWidthIgnoresAnsiCodes(t *testing.T) {
	styled := "\x1b[31mtest\x1b[0m"
	padded := PadToWidth(styled, 10)

	assert.Equal(t, 10, lipgloss.Width(padded))
	assert.Equal(t, styled+"      ", padded)
}
