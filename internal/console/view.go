package console

import "strings"

// TabAll is the pass-through tab that disables status filtering.
const TabAll = "all"

// View computes the visible subset of a store: the entities whose status
// matches the active tab and whose searchable text contains the query.
// Matching is case-insensitive for every entity kind; the screens used to
// disagree on this and the unified behavior is the forgiving one.
type View[T any] struct {
	store  *Store[T]
	status func(T) string
	text   func(T) []string
}

func NewView[T any](store *Store[T], status func(T) string, text func(T) []string) *View[T] {
	return &View[T]{store: store, status: status, text: text}
}

// Visible applies the tab filter and the search filter (logical AND) and
// returns matches in store order. No pagination: the caller renders all rows.
func (v *View[T]) Visible(tab, query string) []T {
	query = strings.ToLower(strings.TrimSpace(query))

	var out []T
	for _, item := range v.store.Items() {
		if tab != TabAll && tab != "" && v.status(item) != tab {
			continue
		}
		if query != "" && !v.matches(item, query) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func (v *View[T]) matches(item T, lowerQuery string) bool {
	for _, field := range v.text(item) {
		if strings.Contains(strings.ToLower(field), lowerQuery) {
			return true
		}
	}
	return false
}
