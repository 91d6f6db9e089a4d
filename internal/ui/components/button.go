package components

import "github.com/abhisek/linguist/internal/ui/theme"

// Button renders a form button. A focused button is filled.
func Button(label string, focused bool) string {
	if focused {
		return theme.ButtonActive.Render("▸ " + label)
	}
	return theme.ButtonInactive.Render("  " + label)
}
