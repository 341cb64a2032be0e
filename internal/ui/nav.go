package ui

import (
	"net/url"

	"roo-petroleum-web/internal/domain"
)

// MenuParam is the query parameter that keeps the mobile drawer open across a page load
const MenuParam = "menu"

// NavState is the header's view state: whether the mobile drawer is open and
// which path is being shown.
type NavState struct {
	MenuOpen    bool
	CurrentPath string
}

// NavStateFromURL reads the drawer flag and current path from a request URL
func NavStateFromURL(u *url.URL) NavState {
	return NavState{
		MenuOpen:    u.Query().Get(MenuParam) == "open",
		CurrentPath: u.Path,
	}
}

// Toggle flips the drawer
func (s *NavState) Toggle() {
	s.MenuOpen = !s.MenuOpen
}

// IsActive reports whether item points at the current path. Only exact matches
// count, so /services is not active on /services/consulting.
func (s NavState) IsActive(item domain.NavigationItem) bool {
	return s.CurrentPath == item.Href
}

// ToggleHref is where the menu button links to: the same page with the drawer flipped
func (s NavState) ToggleHref() string {
	next := s
	next.Toggle()
	if !next.MenuOpen {
		return s.CurrentPath
	}
	q := url.Values{}
	q.Set(MenuParam, "open")
	return s.CurrentPath + "?" + q.Encode()
}
