package dashboard

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	v1 "github.com/cxinsights/cx-dashboard/internal/api/v1"
	"github.com/cxinsights/cx-dashboard/internal/core/filter"
	"github.com/cxinsights/cx-dashboard/internal/core/storage"
	"github.com/cxinsights/cx-dashboard/internal/core/storage/memory"
	storagemocks "github.com/cxinsights/cx-dashboard/internal/mocks/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func complaint(id, date, country, channel, category, status string, value int64, sla *float64) v1.Complaint {
	d, err := v1.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return v1.Complaint{
		ID:       id,
		Date:     d,
		Country:  country,
		Channel:  channel,
		Category: category,
		Status:   status,
		Value:    decimal.NewFromInt(value),
		SLAHours: sla,
	}
}

func hours(h float64) *float64 { return &h }

func fixtureRecords() []v1.Complaint {
	return []v1.Complaint{
		complaint("C-01", "2025-01-05", "UK", "Email", "Billing", "Open", 120, nil),
		complaint("C-02", "2025-01-05", "UK", "Phone", "Delivery", "Escalated", 300, hours(48)),
		complaint("C-03", "2025-02-10", "USA", "Chat", "Delivery", "Resolved", 80, hours(12)),
		complaint("C-04", "2025-03-15", "USA", "Email", "Billing", "Resolved", 45, hours(20)),
		complaint("C-05", "2025-03-20", "Germany", "Phone", "Product", "Escalated", 500, hours(60)),
		complaint("C-06", "2025-04-01", "UK", "Chat", "Delivery", "Open", 75, nil),
	}
}

func newTestService(t *testing.T, records []v1.Complaint) *Service {
	t.Helper()
	store := memory.NewStore(records, storage.DefaultMetricRules())
	from, to := v1.NewDate(2025, time.January, 1), v1.NewDate(2025, time.December, 31)
	svc := NewService(store, NewSessionStore(10), Options{
		Defaults:      filter.Selection{DateFrom: from, DateTo: to},
		TablePageSize: 50,
	})
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.nowFn = func() time.Time { return now }
	svc.newID = func() string { return "render-1" }
	return svc
}

func TestService_Compute_TwoRecords(t *testing.T) {
	svc := newTestService(t, []v1.Complaint{
		complaint("A", "2025-01-01", "UK", "Email", "Billing", "open", 10, nil),
		complaint("B", "2025-01-02", "UK", "Phone", "Billing", "escalated", 20, nil),
	})

	view, err := svc.Compute(context.Background(), filter.Selection{}, v1.Page{})
	require.NoError(t, err)

	require.Equal(t, "render-1", view.RenderID)
	require.True(t, view.KPIs.OK())
	require.Equal(t, int64(2), view.KPIs.Data.TotalCount)
	require.Equal(t, int64(1), view.KPIs.Data.EscalatedCount)
	require.InDelta(t, 0.5, view.KPIs.Data.EscalationRate, 1e-9)
	require.True(t, view.KPIs.Data.TotalValue.Equal(decimal.NewFromInt(30)))
	require.Nil(t, view.KPIs.Data.AvgSLA)

	require.Equal(t, Tiles{
		TotalComplaints: "2",
		EscalationRate:  "50.0%",
		AvgSLA:          Placeholder,
		TotalValue:      "$30",
	}, view.Tiles)

	require.Len(t, view.Cumulative.Data, 2)
	require.True(t, view.Cumulative.Data[1].CumulativeValue.Equal(decimal.NewFromInt(30)))
	require.Equal(t, 50, view.Complaints.Data.Limit)
	require.Len(t, view.Complaints.Data.Rows, 2)
}

func TestService_Compute_EmptySelectionResult(t *testing.T) {
	svc := newTestService(t, fixtureRecords())

	sel := filter.Selection{Countries: []string{"France"}}
	view, err := svc.Compute(context.Background(), sel, v1.Page{})
	require.NoError(t, err)

	require.True(t, view.KPIs.OK())
	require.Equal(t, int64(0), view.KPIs.Data.TotalCount)
	require.Equal(t, 0.0, view.KPIs.Data.EscalationRate)
	require.True(t, view.KPIs.Data.TotalValue.IsZero())
	require.Equal(t, "0", view.Tiles.TotalComplaints)
	require.Equal(t, "0.0%", view.Tiles.EscalationRate)
	require.Empty(t, view.Cumulative.Data)
	require.Empty(t, view.Rankings[v1.DimensionCountry].Data)
	require.Empty(t, view.Complaints.Data.Rows)
}

func TestService_Compute_IncludesEveryWidget(t *testing.T) {
	svc := newTestService(t, fixtureRecords())

	view, err := svc.Compute(context.Background(), filter.Selection{}, v1.Page{})
	require.NoError(t, err)

	for _, d := range []v1.Dimension{v1.DimensionCountry, v1.DimensionChannel, v1.DimensionCategory} {
		w, ok := view.Rankings[d]
		require.True(t, ok, "missing ranking for %s", d)
		require.True(t, w.OK())
	}
	_, ok := view.Breakdowns[v1.DimensionChannel]
	require.True(t, ok)
	require.True(t, view.CategoryRanks.OK())
	require.NotEmpty(t, view.CategoryRanks.Data)
}

func TestService_Compute_Properties(t *testing.T) {
	svc := newTestService(t, fixtureRecords())
	ctx := context.Background()

	selections := []filter.Selection{
		{},
		{Countries: []string{"UK"}},
		{Countries: []string{"UK"}, Channels: []string{"Email"}},
		{Statuses: []string{"Escalated"}},
		{DateFrom: v1.NewDate(2025, time.February, 1), DateTo: v1.NewDate(2025, time.March, 31)},
		{DateFrom: v1.NewDate(2025, time.March, 1), DateTo: v1.NewDate(2025, time.March, 16), Categories: []string{"Billing"}},
	}

	counts := make([]int64, len(selections))
	for i, sel := range selections {
		view, err := svc.Compute(ctx, sel, v1.Page{Limit: maxPageSize})
		require.NoError(t, err)
		kpis := view.KPIs.Data

		require.Equal(t, int64(len(view.Complaints.Data.Rows)), kpis.TotalCount, "selection %d", i)
		require.GreaterOrEqual(t, kpis.EscalationRate, 0.0)
		require.LessOrEqual(t, kpis.EscalationRate, 1.0)

		var ranked int64
		for _, g := range view.Rankings[v1.DimensionCountry].Data {
			ranked += g.Count
		}
		require.Equal(t, kpis.TotalCount, ranked, "ranking counts must add up for selection %d", i)

		if n := len(view.Cumulative.Data); n > 0 {
			require.True(t, view.Cumulative.Data[n-1].CumulativeValue.Equal(kpis.TotalValue))
		}
		counts[i] = kpis.TotalCount
	}

	for i, inner := range selections {
		for j, outer := range selections {
			if inner.Narrows(outer) {
				require.LessOrEqual(t, counts[i], counts[j], "selection %d narrows %d", i, j)
			}
		}
	}
}

func TestService_Compute_InvalidPage(t *testing.T) {
	svc := newTestService(t, fixtureRecords())

	_, err := svc.Compute(context.Background(), filter.Selection{}, v1.Page{Limit: -1})
	require.ErrorIs(t, err, ErrInvalidQuery)

	_, err = svc.Compute(context.Background(), filter.Selection{}, v1.Page{Offset: -5})
	require.ErrorIs(t, err, ErrInvalidQuery)
}

func TestService_Compute_ClampsPageSize(t *testing.T) {
	svc := newTestService(t, fixtureRecords())

	view, err := svc.Compute(context.Background(), filter.Selection{}, v1.Page{Limit: 5000, Offset: 2})
	require.NoError(t, err)
	require.Equal(t, maxPageSize, view.Complaints.Data.Limit)
	require.Equal(t, 2, view.Complaints.Data.Offset)
	require.Len(t, view.Complaints.Data.Rows, 4)
}

func TestService_Compute_FailureMarksRestOfCycle(t *testing.T) {
	store := storagemocks.NewComplaintStore(t)
	store.EXPECT().
		Snapshot(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(storage.Querier) error) error {
			return fn(store)
		}).
		Once()
	store.EXPECT().
		KPISummary(mock.Anything, mock.Anything).
		Return(v1.KPISummary{TotalCount: 3, TotalValue: decimal.NewFromInt(90)}, nil).
		Once()
	store.EXPECT().
		RankedByDimension(mock.Anything, mock.Anything, v1.DimensionCountry).
		Return(nil, fmt.Errorf("connection reset")).
		Once()

	svc := NewService(store, NewSessionStore(1), Options{})
	view, err := svc.Compute(context.Background(), filter.Selection{}, v1.Page{})
	require.NoError(t, err)

	require.True(t, view.KPIs.OK())
	require.Equal(t, "3", view.Tiles.TotalComplaints)

	failed := view.Rankings[v1.DimensionCountry]
	require.False(t, failed.OK())
	require.Contains(t, failed.Error, "connection reset")

	require.Equal(t, failed.Error, view.Rankings[v1.DimensionChannel].Error)
	require.Equal(t, failed.Error, view.Cumulative.Error)
	require.Equal(t, failed.Error, view.Breakdowns[v1.DimensionChannel].Error)
	require.Equal(t, failed.Error, view.CategoryRanks.Error)
	require.Equal(t, failed.Error, view.Complaints.Error)
}

func TestService_Compute_SnapshotUnavailable(t *testing.T) {
	store := storagemocks.NewComplaintStore(t)
	store.EXPECT().
		Snapshot(mock.Anything, mock.Anything).
		Return(errors.New("too many connections")).
		Once()

	svc := NewService(store, NewSessionStore(1), Options{})
	view, err := svc.Compute(context.Background(), filter.Selection{}, v1.Page{})
	require.NoError(t, err)

	require.Contains(t, view.KPIs.Error, "too many connections")
	require.Contains(t, view.Complaints.Error, "too many connections")
	require.Equal(t, Placeholder, view.Tiles.TotalComplaints)
	require.Equal(t, Placeholder, view.Tiles.TotalValue)
}

func TestService_Ranking_UnknownDimension(t *testing.T) {
	svc := newTestService(t, fixtureRecords())

	_, err := svc.Ranking(context.Background(), filter.Selection{}, "region")
	require.ErrorIs(t, err, ErrInvalidQuery)

	_, err = svc.Breakdown(context.Background(), filter.Selection{}, "region")
	require.ErrorIs(t, err, ErrInvalidQuery)
}

func TestService_CategoryRanks_NegativeLimit(t *testing.T) {
	svc := newTestService(t, fixtureRecords())

	_, err := svc.CategoryRanks(context.Background(), filter.Selection{}, -1)
	require.ErrorIs(t, err, ErrInvalidQuery)
}

func TestService_SessionLifecycle(t *testing.T) {
	svc := newTestService(t, fixtureRecords())
	ctx := context.Background()

	created, err := svc.CreateSession(ctx, filter.Change{}, v1.Page{})
	require.NoError(t, err)
	require.Equal(t, svc.Defaults(), created.Selection)
	require.Equal(t, int64(6), created.View.KPIs.Data.TotalCount)

	uk := []string{"UK"}
	updated, err := svc.UpdateFilters(ctx, created.ID, filter.Change{Countries: &uk}, v1.Page{})
	require.NoError(t, err)
	require.Equal(t, []string{"UK"}, updated.Selection.Countries)
	require.Equal(t, int64(3), updated.View.KPIs.Data.TotalCount)

	email := []string{"Email"}
	updated, err = svc.UpdateFilters(ctx, created.ID, filter.Change{Channels: &email}, v1.Page{})
	require.NoError(t, err)
	require.Equal(t, []string{"UK"}, updated.Selection.Countries, "earlier changes must stick")
	require.Equal(t, int64(1), updated.View.KPIs.Data.TotalCount)

	reloaded, err := svc.Session(ctx, created.ID, v1.Page{})
	require.NoError(t, err)
	require.Equal(t, updated.Selection, reloaded.Selection)

	reset, err := svc.UpdateFilters(ctx, created.ID, filter.Change{Reset: true}, v1.Page{})
	require.NoError(t, err)
	require.Equal(t, svc.Defaults(), reset.Selection)

	require.NoError(t, svc.EndSession(created.ID))
	_, err = svc.Session(ctx, created.ID, v1.Page{})
	require.ErrorIs(t, err, ErrSessionNotFound)
	require.ErrorIs(t, svc.EndSession(created.ID), ErrSessionNotFound)
}

func TestService_SessionsAreIsolated(t *testing.T) {
	svc := newTestService(t, fixtureRecords())
	ctx := context.Background()

	a, err := svc.CreateSession(ctx, filter.Change{}, v1.Page{})
	require.NoError(t, err)
	b, err := svc.CreateSession(ctx, filter.Change{}, v1.Page{})
	require.NoError(t, err)

	usa := []string{"USA"}
	_, err = svc.UpdateFilters(ctx, a.ID, filter.Change{Countries: &usa}, v1.Page{})
	require.NoError(t, err)

	other, err := svc.Session(ctx, b.ID, v1.Page{})
	require.NoError(t, err)
	require.Empty(t, other.Selection.Countries)
}

func TestFormatTiles(t *testing.T) {
	tests := []struct {
		name   string
		widget Widget[v1.KPISummary]
		want   Tiles
	}{
		{
			name: "formats values",
			widget: Widget[v1.KPISummary]{Data: v1.KPISummary{
				TotalCount:     12345,
				EscalatedCount: 1234,
				EscalationRate: 0.12345,
				AvgSLA:         hours(28.66),
				SLASamples:     10,
				TotalValue:     decimal.RequireFromString("1234567.89"),
			}},
			want: Tiles{
				TotalComplaints: "12,345",
				EscalationRate:  "12.3%",
				AvgSLA:          "28.7",
				TotalValue:      "$1,234,568",
			},
		},
		{
			name:   "no sla samples",
			widget: Widget[v1.KPISummary]{Data: v1.KPISummary{TotalValue: decimal.Zero}},
			want: Tiles{
				TotalComplaints: "0",
				EscalationRate:  "0.0%",
				AvgSLA:          Placeholder,
				TotalValue:      "$0",
			},
		},
		{
			name:   "failed widget",
			widget: Widget[v1.KPISummary]{Error: "boom"},
			want: Tiles{
				TotalComplaints: Placeholder,
				EscalationRate:  Placeholder,
				AvgSLA:          Placeholder,
				TotalValue:      Placeholder,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, FormatTiles(tc.widget))
		})
	}
}
