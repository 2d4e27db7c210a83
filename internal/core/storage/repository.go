package storage

import (
	"context"
	"errors"

	v1 "github.com/cxinsights/cx-dashboard/internal/api/v1"
	"github.com/cxinsights/cx-dashboard/internal/core/filter"
)

// ErrUnknownDimension is returned when a grouping is requested on a non-categorical column.
var ErrUnknownDimension = errors.New("unknown dimension")

// Querier is the read-only query layer over complaint records.
// Every method is a pure function of (stored records, selection): same inputs, same outputs.
// An empty match is a valid result, never an error.
type Querier interface {
	// FilteredRows returns the records matching every non-empty predicate of sel, ordered by date then id.
	FilteredRows(ctx context.Context, sel filter.Selection, page v1.Page) ([]v1.Complaint, error)

	// KPISummary computes count, escalation rate, mean SLA and total value over the filtered rows.
	KPISummary(ctx context.Context, sel filter.Selection) (v1.KPISummary, error)

	// RankedByDimension groups the filtered rows by dim and ranks groups by count descending.
	RankedByDimension(ctx context.Context, sel filter.Selection, dim v1.Dimension) ([]v1.RankedGroup, error)

	// CumulativeValueOverTime returns per-date sums with a running total, ordered by date ascending.
	CumulativeValueOverTime(ctx context.Context, sel filter.Selection) ([]v1.CumulativePoint, error)

	// StatusBreakdown counts the filtered rows per (dim value, status).
	StatusBreakdown(ctx context.Context, sel filter.Selection, dim v1.Dimension) ([]v1.StatusBreakdown, error)

	// CategoryRanks ranks categories by volume within each country. limit <= 0 means no limit.
	CategoryRanks(ctx context.Context, sel filter.Selection, limit int) ([]v1.CategoryRank, error)

	// FilterOptions lists the distinct categorical values and the date bounds of the store.
	FilterOptions(ctx context.Context) (v1.FilterOptions, error)
}

// ComplaintStore is a Querier backed by a database connection.
type ComplaintStore interface {
	Querier

	// Snapshot runs fn against one consistent read view of the store.
	Snapshot(ctx context.Context, fn func(q Querier) error) error

	Ping(ctx context.Context) error
	Close() error
}

// MetricRules configures which statuses feed the derived KPIs.
type MetricRules struct {
	EscalatedStatus string
	SLAStatuses     []string
}

// DefaultMetricRules treats "escalated" as an escalation and resolved/escalated records as SLA-bearing.
func DefaultMetricRules() MetricRules {
	return MetricRules{
		EscalatedStatus: "escalated",
		SLAStatuses:     []string{"resolved", "escalated"},
	}
}
