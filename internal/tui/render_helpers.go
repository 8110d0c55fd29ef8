package tui

import (
	"github.com/avandriel/rounds/internal/config"
	"github.com/charmbracelet/x/ansi"
)

// truncate cuts s to the given display width, style-aware. A non-positive
// width (size not yet known) leaves the string alone.
func truncate(s string, width int) string {
	if width <= 0 || ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, config.TruncationSuffix)
}
