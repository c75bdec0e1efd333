package catalog

// Toggle returns the selection that results from picking requested while
// current is selected. Picking the active category again clears the filter.
func Toggle(current, requested string) string {
	if requested == current {
		return NoCategory
	}
	return requested
}

// Selector tracks the category filter of one browsing session.
// The zero value has no category selected.
type Selector struct {
	current string
}

// NewSelector creates a selector with no category selected
func NewSelector() *Selector {
	return &Selector{current: NoCategory}
}

// Toggle selects requested, or clears the selection if it is already active
func (s *Selector) Toggle(requested string) string {
	s.current = Toggle(s.current, requested)
	return s.current
}

// Clear removes any category filter
func (s *Selector) Clear() {
	s.current = NoCategory
}

// Current returns the selected category, or NoCategory
func (s *Selector) Current() string {
	return s.current
}
