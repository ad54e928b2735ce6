package components

import (
	"github.com/charmbracelet/lipgloss"

	"kwarta/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// a transient flash message in the middle, the signed-in user on the right.
// flashErr selects the error color for the flash text.
func RenderStatusBar(width int, flash string, flashErr bool, user string) string {
	t := theme.Active

	barStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	flashStyle := lipgloss.NewStyle().Foreground(t.Green)
	if flashErr {
		flashStyle = lipgloss.NewStyle().Foreground(t.Red)
	}

	left := " [?]help  [q]uit"
	right := ""
	if user != "" {
		right = user + " "
	}

	middle := ""
	if flash != "" {
		middle = flashStyle.Render(flash)
	}

	pad := width - lipgloss.Width(left) - lipgloss.Width(middle) - lipgloss.Width(right)
	leftPad := pad / 2
	rightPad := pad - leftPad
	if leftPad < 1 {
		leftPad = 1
	}
	if rightPad < 0 {
		rightPad = 0
	}

	bar := left + spaces(leftPad) + middle + spaces(rightPad) + right
	return barStyle.Render(bar)
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
