package components

import (
	"fmt"
	"strings"

	"kwarta/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// MenuItem is one selectable action in a vertical menu.
type MenuItem struct {
	Label string
	Key   rune // shortcut, highlighted inside the label when present
}

// Menu renders a vertical action menu with the cursor row highlighted and
// each item's shortcut letter emphasized.
func Menu(items []MenuItem, cursor int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	var b strings.Builder
	for i, item := range items {
		if i == cursor {
			b.WriteString(activeStyle.Render(fmt.Sprintf("▸ %s", item.Label)))
		} else {
			b.WriteString("  ")
			b.WriteString(renderWithShortcut(item, inactiveStyle, keyStyle, dimStyle))
		}
		if i < len(items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderWithShortcut highlights the first occurrence of the shortcut letter
// inside the label, or appends it in brackets when the label lacks it.
func renderWithShortcut(item MenuItem, inactive, key, dim lipgloss.Style) string {
	if item.Key == 0 {
		return inactive.Render(item.Label)
	}

	idx := strings.IndexRune(strings.ToLower(item.Label), item.Key)
	if idx < 0 {
		return inactive.Render(item.Label) +
			dim.Render("[") + key.Render(string(item.Key)) + dim.Render("]")
	}

	return inactive.Render(item.Label[:idx]) +
		key.Render(string(item.Label[idx])) +
		inactive.Render(item.Label[idx+1:])
}
