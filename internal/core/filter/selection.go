// Package filter holds the dashboard's filter selection: the only mutable input of every query.
package filter

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	v1 "github.com/cxinsights/cx-dashboard/internal/api/v1"
)

// Query parameter names shared by the HTML form and the JSON API.
const (
	ParamDateFrom = "date_from"
	ParamDateTo   = "date_to"
)

// Selection is the set of active filter predicates.
// A zero date or an empty set means "no constraint" for that field.
type Selection struct {
	DateFrom   v1.Date  `json:"date_from"`
	DateTo     v1.Date  `json:"date_to"`
	Countries  []string `json:"countries"`
	Channels   []string `json:"channels"`
	Categories []string `json:"categories"`
	Statuses   []string `json:"statuses"`
}

// Normalize returns a canonical copy: a reversed date range is swapped and set values are
// trimmed, de-duplicated and sorted. Blank values are dropped.
func (s Selection) Normalize() Selection {
	n := Selection{
		DateFrom:   s.DateFrom,
		DateTo:     s.DateTo,
		Countries:  cleanSet(s.Countries),
		Channels:   cleanSet(s.Channels),
		Categories: cleanSet(s.Categories),
		Statuses:   cleanSet(s.Statuses),
	}
	if !n.DateFrom.IsZero() && !n.DateTo.IsZero() && n.DateFrom.After(n.DateTo) {
		n.DateFrom, n.DateTo = n.DateTo, n.DateFrom
	}
	return n
}

// Clone returns a deep copy so callers can hand out snapshots without sharing slices.
func (s Selection) Clone() Selection {
	return Selection{
		DateFrom:   s.DateFrom,
		DateTo:     s.DateTo,
		Countries:  cloneSet(s.Countries),
		Channels:   cloneSet(s.Channels),
		Categories: cloneSet(s.Categories),
		Statuses:   cloneSet(s.Statuses),
	}
}

// Values returns the selected values of one dimension.
func (s Selection) Values(d v1.Dimension) []string {
	switch d {
	case v1.DimensionCountry:
		return s.Countries
	case v1.DimensionChannel:
		return s.Channels
	case v1.DimensionCategory:
		return s.Categories
	case v1.DimensionStatus:
		return s.Statuses
	default:
		return nil
	}
}

// WithValues returns a normalized copy with one dimension's set replaced.
func (s Selection) WithValues(d v1.Dimension, values []string) Selection {
	n := s.Clone()
	switch d {
	case v1.DimensionCountry:
		n.Countries = values
	case v1.DimensionChannel:
		n.Channels = values
	case v1.DimensionCategory:
		n.Categories = values
	case v1.DimensionStatus:
		n.Statuses = values
	}
	return n.Normalize()
}

// Matches reports whether a record satisfies every non-empty predicate.
// The date range is inclusive on both ends.
func (s Selection) Matches(c v1.Complaint) bool {
	if !s.DateFrom.IsZero() && c.Date.Before(s.DateFrom) {
		return false
	}
	if !s.DateTo.IsZero() && c.Date.After(s.DateTo) {
		return false
	}
	for _, d := range v1.Dimensions {
		if !memberOrEmpty(s.Values(d), c.Attribute(d)) {
			return false
		}
	}
	return true
}

// Query encodes the selection as URL query parameters, the inverse of FromQuery.
func (s Selection) Query() url.Values {
	q := url.Values{}
	if !s.DateFrom.IsZero() {
		q.Set(ParamDateFrom, s.DateFrom.String())
	}
	if !s.DateTo.IsZero() {
		q.Set(ParamDateTo, s.DateTo.String())
	}
	for _, d := range v1.Dimensions {
		for _, v := range s.Values(d) {
			q.Add(string(d), v)
		}
	}
	return q
}

// FromQuery parses a selection from query parameters. Categorical parameters may repeat
// (country=UK&country=USA) or carry comma-separated values (country=UK,USA).
// Only unparseable dates are rejected; everything else is normalized.
func FromQuery(q url.Values) (Selection, error) {
	var (
		s   Selection
		err error
	)
	if raw := strings.TrimSpace(q.Get(ParamDateFrom)); raw != "" {
		if s.DateFrom, err = v1.ParseDate(raw); err != nil {
			return Selection{}, fmt.Errorf("%s: %w", ParamDateFrom, err)
		}
	}
	if raw := strings.TrimSpace(q.Get(ParamDateTo)); raw != "" {
		if s.DateTo, err = v1.ParseDate(raw); err != nil {
			return Selection{}, fmt.Errorf("%s: %w", ParamDateTo, err)
		}
	}

	s.Countries = splitValues(q[string(v1.DimensionCountry)])
	s.Channels = splitValues(q[string(v1.DimensionChannel)])
	s.Categories = splitValues(q[string(v1.DimensionCategory)])
	s.Statuses = splitValues(q[string(v1.DimensionStatus)])

	return s.Normalize(), nil
}

// WithDefaultDates fills unset range ends from defaults.
func (s Selection) WithDefaultDates(defaults Selection) Selection {
	n := s.Clone()
	if n.DateFrom.IsZero() {
		n.DateFrom = defaults.DateFrom
	}
	if n.DateTo.IsZero() {
		n.DateTo = defaults.DateTo
	}
	return n.Normalize()
}

// Narrows reports whether every record matched by s is also matched by o.
func (s Selection) Narrows(o Selection) bool {
	s, o = s.Normalize(), o.Normalize()
	if !o.DateFrom.IsZero() && (s.DateFrom.IsZero() || s.DateFrom.Before(o.DateFrom)) {
		return false
	}
	if !o.DateTo.IsZero() && (s.DateTo.IsZero() || s.DateTo.After(o.DateTo)) {
		return false
	}
	for _, d := range v1.Dimensions {
		outer := o.Values(d)
		if len(outer) == 0 {
			continue
		}
		inner := s.Values(d)
		if len(inner) == 0 {
			return false
		}
		for _, v := range inner {
			if !memberOrEmpty(outer, v) {
				return false
			}
		}
	}
	return true
}

func splitValues(raw []string) []string {
	var out []string
	for _, r := range raw {
		out = append(out, strings.Split(r, ",")...)
	}
	return out
}

func cleanSet(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil
	}
	sort.Strings(out)
	return out
}

func cloneSet(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}

func memberOrEmpty(set []string, v string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
