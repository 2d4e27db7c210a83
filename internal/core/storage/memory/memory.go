// Package memory is an in-memory ComplaintStore over a fixed record slice.
// It computes every aggregate in Go and serves as the reference for the SQL adapter.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	v1 "github.com/cxinsights/cx-dashboard/internal/api/v1"
	"github.com/cxinsights/cx-dashboard/internal/core/filter"
	"github.com/cxinsights/cx-dashboard/internal/core/storage"
	"github.com/shopspring/decimal"
)

// Store is an in-memory implementation of storage.ComplaintStore.
// Useful for testing and development.
type Store struct {
	mu      sync.RWMutex
	records []v1.Complaint
	rules   storage.MetricRules
}

var _ storage.ComplaintStore = (*Store)(nil)

// NewStore copies records into a new store.
func NewStore(records []v1.Complaint, rules storage.MetricRules) *Store {
	copied := make([]v1.Complaint, len(records))
	copy(copied, records)
	return &Store{records: copied, rules: rules}
}

func (s *Store) Snapshot(ctx context.Context, fn func(q storage.Querier) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(snapshot{store: s})
}

func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }

func (s *Store) Close() error { return nil }

func (s *Store) Backend() string { return "memory" }

func (s *Store) FilteredRows(ctx context.Context, sel filter.Selection, page v1.Page) ([]v1.Complaint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{store: s}.FilteredRows(ctx, sel, page)
}

func (s *Store) KPISummary(ctx context.Context, sel filter.Selection) (v1.KPISummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{store: s}.KPISummary(ctx, sel)
}

func (s *Store) RankedByDimension(ctx context.Context, sel filter.Selection, dim v1.Dimension) ([]v1.RankedGroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{store: s}.RankedByDimension(ctx, sel, dim)
}

func (s *Store) CumulativeValueOverTime(ctx context.Context, sel filter.Selection) ([]v1.CumulativePoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{store: s}.CumulativeValueOverTime(ctx, sel)
}

func (s *Store) StatusBreakdown(ctx context.Context, sel filter.Selection, dim v1.Dimension) ([]v1.StatusBreakdown, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{store: s}.StatusBreakdown(ctx, sel, dim)
}

func (s *Store) CategoryRanks(ctx context.Context, sel filter.Selection, limit int) ([]v1.CategoryRank, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{store: s}.CategoryRanks(ctx, sel, limit)
}

func (s *Store) FilterOptions(ctx context.Context) (v1.FilterOptions, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{store: s}.FilterOptions(ctx)
}

// snapshot evaluates queries while the caller holds the read lock.
type snapshot struct {
	store *Store
}

func (q snapshot) filtered(sel filter.Selection) []v1.Complaint {
	sel = sel.Normalize()
	out := []v1.Complaint{}
	for _, rec := range q.store.records {
		if sel.Matches(rec) {
			out = append(out, rec)
		}
	}
	return out
}

func (q snapshot) FilteredRows(ctx context.Context, sel filter.Selection, page v1.Page) ([]v1.Complaint, error) {
	rows := q.filtered(sel)
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].Date.Equal(rows[j].Date) {
			return rows[i].Date.Before(rows[j].Date)
		}
		return rows[i].ID < rows[j].ID
	})

	if page.Offset > 0 {
		if page.Offset >= len(rows) {
			return []v1.Complaint{}, nil
		}
		rows = rows[page.Offset:]
	}
	if page.Limit > 0 && page.Limit < len(rows) {
		rows = rows[:page.Limit]
	}
	return rows, nil
}

func (q snapshot) KPISummary(ctx context.Context, sel filter.Selection) (v1.KPISummary, error) {
	var (
		summary = v1.KPISummary{TotalValue: decimal.Zero}
		slaSum  float64
	)
	for _, rec := range q.filtered(sel) {
		summary.TotalCount++
		summary.TotalValue = summary.TotalValue.Add(rec.Value)
		if strings.EqualFold(rec.Status, q.store.rules.EscalatedStatus) {
			summary.EscalatedCount++
		}
		if rec.SLAHours != nil && statusIn(rec.Status, q.store.rules.SLAStatuses) {
			slaSum += *rec.SLAHours
			summary.SLASamples++
		}
	}

	if summary.TotalCount > 0 {
		summary.EscalationRate = float64(summary.EscalatedCount) / float64(summary.TotalCount)
	}
	if summary.SLASamples > 0 {
		avg := slaSum / float64(summary.SLASamples)
		summary.AvgSLA = &avg
	}
	return summary, nil
}

func (q snapshot) RankedByDimension(ctx context.Context, sel filter.Selection, dim v1.Dimension) ([]v1.RankedGroup, error) {
	if !dim.Valid() {
		return nil, storage.ErrUnknownDimension
	}

	groups := make(map[string]*v1.RankedGroup)
	for _, rec := range q.filtered(sel) {
		key := rec.Attribute(dim)
		g, ok := groups[key]
		if !ok {
			g = &v1.RankedGroup{Dimension: dim, Value: key, TotalValue: decimal.Zero}
			groups[key] = g
		}
		g.Count++
		g.TotalValue = g.TotalValue.Add(rec.Value)
	}

	out := make([]v1.RankedGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})

	for i := range out {
		if i > 0 && out[i].Count == out[i-1].Count {
			out[i].Rank = out[i-1].Rank
			continue
		}
		out[i].Rank = int64(i + 1)
	}
	return out, nil
}

func (q snapshot) CumulativeValueOverTime(ctx context.Context, sel filter.Selection) ([]v1.CumulativePoint, error) {
	byDate := make(map[v1.Date]*v1.CumulativePoint)
	for _, rec := range q.filtered(sel) {
		p, ok := byDate[rec.Date]
		if !ok {
			p = &v1.CumulativePoint{Date: rec.Date, DailyValue: decimal.Zero}
			byDate[rec.Date] = p
		}
		p.DailyCount++
		p.DailyValue = p.DailyValue.Add(rec.Value)
	}

	out := make([]v1.CumulativePoint, 0, len(byDate))
	for _, p := range byDate {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })

	running := decimal.Zero
	for i := range out {
		running = running.Add(out[i].DailyValue)
		out[i].CumulativeValue = running
	}
	return out, nil
}

func (q snapshot) StatusBreakdown(ctx context.Context, sel filter.Selection, dim v1.Dimension) ([]v1.StatusBreakdown, error) {
	if !dim.Valid() {
		return nil, storage.ErrUnknownDimension
	}

	type key struct{ value, status string }
	counts := make(map[key]int64)
	for _, rec := range q.filtered(sel) {
		counts[key{rec.Attribute(dim), rec.Status}]++
	}

	out := make([]v1.StatusBreakdown, 0, len(counts))
	for k, n := range counts {
		out = append(out, v1.StatusBreakdown{Dimension: dim, Value: k.value, Status: k.status, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value < out[j].Value
		}
		return out[i].Status < out[j].Status
	})
	return out, nil
}

func (q snapshot) CategoryRanks(ctx context.Context, sel filter.Selection, limit int) ([]v1.CategoryRank, error) {
	type key struct{ country, category string }
	groups := make(map[key]*v1.CategoryRank)
	for _, rec := range q.filtered(sel) {
		k := key{rec.Country, rec.Category}
		g, ok := groups[k]
		if !ok {
			g = &v1.CategoryRank{Country: rec.Country, Category: rec.Category, TotalValue: decimal.Zero}
			groups[k] = g
		}
		g.Count++
		g.TotalValue = g.TotalValue.Add(rec.Value)
	}

	out := make([]v1.CategoryRank, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Country != out[j].Country {
			return out[i].Country < out[j].Country
		}
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})

	for i := range out {
		switch {
		case i == 0 || out[i].Country != out[i-1].Country:
			out[i].Rank = 1
		case out[i].Count == out[i-1].Count:
			out[i].Rank = out[i-1].Rank
		default:
			// position within the country partition, 1-based
			pos := int64(1)
			for j := i - 1; j >= 0 && out[j].Country == out[i].Country; j-- {
				pos++
			}
			out[i].Rank = pos
		}
	}

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (q snapshot) FilterOptions(ctx context.Context) (v1.FilterOptions, error) {
	sets := map[v1.Dimension]map[string]struct{}{}
	for _, d := range v1.Dimensions {
		sets[d] = make(map[string]struct{})
	}

	var opts v1.FilterOptions
	for _, rec := range q.store.records {
		for _, d := range v1.Dimensions {
			sets[d][rec.Attribute(d)] = struct{}{}
		}
		if opts.MinDate.IsZero() || rec.Date.Before(opts.MinDate) {
			opts.MinDate = rec.Date
		}
		if opts.MaxDate.IsZero() || rec.Date.After(opts.MaxDate) {
			opts.MaxDate = rec.Date
		}
	}

	opts.Countries = sortedKeys(sets[v1.DimensionCountry])
	opts.Channels = sortedKeys(sets[v1.DimensionChannel])
	opts.Categories = sortedKeys(sets[v1.DimensionCategory])
	opts.Statuses = sortedKeys(sets[v1.DimensionStatus])
	return opts, nil
}

func statusIn(status string, set []string) bool {
	for _, s := range set {
		if strings.EqualFold(status, s) {
			return true
		}
	}
	return false
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
