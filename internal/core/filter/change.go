package filter

import v1 "github.com/cxinsights/cx-dashboard/internal/api/v1"

// Change is one user interaction with the filter controls.
// Nil fields are left untouched. An empty date string clears that end of the range,
// an empty list clears that categorical filter.
type Change struct {
	Reset      bool      `json:"reset"`
	DateFrom   *v1.Date  `json:"date_from,omitempty"`
	DateTo     *v1.Date  `json:"date_to,omitempty"`
	Countries  *[]string `json:"countries,omitempty"`
	Channels   *[]string `json:"channels,omitempty"`
	Categories *[]string `json:"categories,omitempty"`
	Statuses   *[]string `json:"statuses,omitempty"`
}

// Empty reports whether the change touches nothing.
func (c Change) Empty() bool {
	return !c.Reset && c.DateFrom == nil && c.DateTo == nil &&
		c.Countries == nil && c.Channels == nil && c.Categories == nil && c.Statuses == nil
}

// Apply returns the selection produced by applying c to current.
// With Reset the change is applied on top of defaults instead.
func (c Change) Apply(current, defaults Selection) Selection {
	next := current.Clone()
	if c.Reset {
		next = defaults.Clone()
	}
	if c.DateFrom != nil {
		next.DateFrom = *c.DateFrom
	}
	if c.DateTo != nil {
		next.DateTo = *c.DateTo
	}
	if c.Countries != nil {
		next.Countries = cloneSet(*c.Countries)
	}
	if c.Channels != nil {
		next.Channels = cloneSet(*c.Channels)
	}
	if c.Categories != nil {
		next.Categories = cloneSet(*c.Categories)
	}
	if c.Statuses != nil {
		next.Statuses = cloneSet(*c.Statuses)
	}
	return next.Normalize()
}
