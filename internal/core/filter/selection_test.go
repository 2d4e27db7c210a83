package filter

import (
	"encoding/json"
	"net/url"
	"testing"
	"time"

	v1 "github.com/cxinsights/cx-dashboard/internal/api/v1"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestSelection_Normalize(t *testing.T) {
	jan := v1.NewDate(2025, time.January, 1)
	dec := v1.NewDate(2025, time.December, 31)

	got := Selection{
		DateFrom:  dec,
		DateTo:    jan,
		Countries: []string{" UK", "USA", "UK", ""},
		Statuses:  []string{"  "},
	}.Normalize()

	require.True(t, got.DateFrom.Equal(jan))
	require.True(t, got.DateTo.Equal(dec))
	require.Equal(t, []string{"UK", "USA"}, got.Countries)
	require.Nil(t, got.Statuses)
	require.Nil(t, got.Channels)
}

func TestSelection_Matches(t *testing.T) {
	rec := v1.Complaint{
		ID:       "1",
		Date:     v1.NewDate(2025, time.March, 10),
		Country:  "UK",
		Channel:  "Email",
		Category: "Billing",
		Status:   "Open",
		Value:    decimal.NewFromInt(10),
	}

	tests := []struct {
		name string
		sel  Selection
		want bool
	}{
		{name: "empty selection matches all", sel: Selection{}, want: true},
		{name: "inclusive lower bound", sel: Selection{DateFrom: v1.NewDate(2025, time.March, 10)}, want: true},
		{name: "inclusive upper bound", sel: Selection{DateTo: v1.NewDate(2025, time.March, 10)}, want: true},
		{name: "before range", sel: Selection{DateFrom: v1.NewDate(2025, time.March, 11)}, want: false},
		{name: "after range", sel: Selection{DateTo: v1.NewDate(2025, time.March, 9)}, want: false},
		{name: "country member", sel: Selection{Countries: []string{"USA", "UK"}}, want: true},
		{name: "country non member", sel: Selection{Countries: []string{"USA"}}, want: false},
		{name: "all dimensions", sel: Selection{
			Countries:  []string{"UK"},
			Channels:   []string{"Email"},
			Categories: []string{"Billing"},
			Statuses:   []string{"Open"},
		}, want: true},
		{name: "status mismatch", sel: Selection{Statuses: []string{"Escalated"}}, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.sel.Matches(rec))
		})
	}
}

func TestFromQuery(t *testing.T) {
	q, err := url.ParseQuery("date_from=2025-12-31&date_to=2025-01-01&country=UK,USA&country=Japan&channel=&status=Escalated")
	require.NoError(t, err)

	sel, err := FromQuery(q)
	require.NoError(t, err)
	require.Equal(t, "2025-01-01", sel.DateFrom.String())
	require.Equal(t, "2025-12-31", sel.DateTo.String())
	require.Equal(t, []string{"Japan", "UK", "USA"}, sel.Countries)
	require.Nil(t, sel.Channels)
	require.Equal(t, []string{"Escalated"}, sel.Statuses)

	roundTrip, err := FromQuery(sel.Query())
	require.NoError(t, err)
	require.Equal(t, sel, roundTrip)
}

func TestFromQuery_RejectsBadDate(t *testing.T) {
	_, err := FromQuery(url.Values{"date_from": {"last week"}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "date_from")
}

func TestSelection_CloneDoesNotShare(t *testing.T) {
	orig := Selection{Countries: []string{"UK"}}
	c := orig.Clone()
	c.Countries[0] = "USA"
	require.Equal(t, "UK", orig.Countries[0])
}

func TestSelection_WithValues(t *testing.T) {
	sel := Selection{Countries: []string{"UK"}}.WithValues(v1.DimensionChannel, []string{"Phone", "Chat", "Phone"})
	require.Equal(t, []string{"UK"}, sel.Countries)
	require.Equal(t, []string{"Chat", "Phone"}, sel.Values(v1.DimensionChannel))
}

func TestSelection_WithDefaultDates(t *testing.T) {
	defaults := Selection{DateFrom: v1.NewDate(2025, time.January, 1), DateTo: v1.NewDate(2025, time.December, 31)}
	sel := Selection{DateTo: v1.NewDate(2025, time.June, 30)}.WithDefaultDates(defaults)
	require.Equal(t, "2025-01-01", sel.DateFrom.String())
	require.Equal(t, "2025-06-30", sel.DateTo.String())
}

func TestChange_Apply(t *testing.T) {
	defaults := Selection{DateFrom: v1.NewDate(2025, time.January, 1), DateTo: v1.NewDate(2025, time.December, 31)}
	current := Selection{
		DateFrom:  defaults.DateFrom,
		DateTo:    defaults.DateTo,
		Countries: []string{"UK"},
		Channels:  []string{"Email"},
	}

	var change Change
	require.NoError(t, json.Unmarshal([]byte(`{"date_from":"","countries":["USA","Brazil"],"channels":[]}`), &change))
	require.False(t, change.Empty())

	next := change.Apply(current, defaults)
	require.True(t, next.DateFrom.IsZero())
	require.Equal(t, "2025-12-31", next.DateTo.String())
	require.Equal(t, []string{"Brazil", "USA"}, next.Countries)
	require.Nil(t, next.Channels)

	// current must not be mutated by Apply
	require.Equal(t, []string{"UK"}, current.Countries)

	reset := Change{Reset: true}.Apply(next, defaults)
	require.Equal(t, defaults, reset)
}

func TestChange_Empty(t *testing.T) {
	require.True(t, Change{}.Empty())
	require.False(t, Change{Reset: true}.Empty())
}

func TestSelection_Narrows(t *testing.T) {
	year := Selection{DateFrom: v1.NewDate(2025, time.January, 1), DateTo: v1.NewDate(2025, time.December, 31)}

	tests := []struct {
		name  string
		inner Selection
		outer Selection
		want  bool
	}{
		{name: "anything narrows empty", inner: year, outer: Selection{}, want: true},
		{name: "empty does not narrow a range", inner: Selection{}, outer: year, want: false},
		{name: "sub range", inner: Selection{DateFrom: v1.NewDate(2025, time.March, 1), DateTo: v1.NewDate(2025, time.March, 31)}, outer: year, want: true},
		{name: "adding a set", inner: Selection{Countries: []string{"UK"}}, outer: Selection{}, want: true},
		{name: "subset", inner: Selection{Countries: []string{"UK"}}, outer: Selection{Countries: []string{"UK", "USA"}}, want: true},
		{name: "superset", inner: Selection{Countries: []string{"UK", "USA"}}, outer: Selection{Countries: []string{"UK"}}, want: false},
		{name: "removing a set widens", inner: Selection{}, outer: Selection{Channels: []string{"Email"}}, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.inner.Narrows(tc.outer))
		})
	}
}
