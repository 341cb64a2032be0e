// Package ui renders the site's presentational components as gomponents nodes.
// Every component is a pure function of its props and the injected theme.
package ui

import (
	"fmt"

	"roo-petroleum-web/internal/theme"
)

// Kit carries the theme into every component
type Kit struct {
	theme theme.Theme
}

func NewKit(t theme.Theme) Kit {
	return Kit{theme: t}
}

// Theme returns a copy of the kit's theme
func (k Kit) Theme() theme.Theme { return k.theme }

// arb wraps a token in a Tailwind arbitrary value, e.g. arb("bg", "#fff") -> bg-[#fff]
func arb(prefix, value string) string {
	return fmt.Sprintf("%s-[%s]", prefix, value)
}
