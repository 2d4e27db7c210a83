// Package dashboard turns a filter selection into a rendered view: KPI tiles, rankings,
// the cumulative value series and the complaints table, plus per-user sessions.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	v1 "github.com/cxinsights/cx-dashboard/internal/api/v1"
	"github.com/cxinsights/cx-dashboard/internal/core/filter"
	"github.com/cxinsights/cx-dashboard/internal/core/storage"
	"github.com/cxinsights/cx-dashboard/internal/layout"
	"github.com/cxinsights/cx-dashboard/internal/render"
	"github.com/google/uuid"
)

const maxPageSize = 1000

var (
	// ErrInvalidQuery marks request validation errors that should return HTTP 400.
	ErrInvalidQuery = errors.New("invalid dashboard query")

	// ErrSessionNotFound is returned for unknown or evicted session IDs.
	ErrSessionNotFound = errors.New("session not found")

	// Dimensions the view always ranks, in addition to any the layout asks for.
	viewRankings = []v1.Dimension{v1.DimensionCountry, v1.DimensionChannel, v1.DimensionCategory}

	// Channel x status breakdown shown on every view.
	viewBreakdowns = []v1.Dimension{v1.DimensionChannel}
)

// Options configures a Service.
type Options struct {
	Defaults      filter.Selection
	TablePageSize int
	QueryTimeout  time.Duration // 0 disables the per-render deadline
	Layout        *layout.Layout
	Charts        render.Options
}

// Service computes dashboard views from a complaint store.
// It never writes to the store and keeps no results between renders.
type Service struct {
	store        storage.ComplaintStore
	sessions     *SessionStore
	layout       *layout.Layout
	defaults     filter.Selection
	pageSize     int
	queryTimeout time.Duration
	charts       render.Options
	nowFn        func() time.Time
	newID        func() string
}

// NewService creates a new dashboard service.
func NewService(store storage.ComplaintStore, sessions *SessionStore, opts Options) *Service {
	l := opts.Layout
	if l == nil {
		l = layout.Default()
	}
	pageSize := opts.TablePageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	return &Service{
		store:        store,
		sessions:     sessions,
		layout:       l,
		defaults:     opts.Defaults.Normalize(),
		pageSize:     pageSize,
		queryTimeout: opts.QueryTimeout,
		charts:       opts.Charts,
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
		newID: uuid.NewString,
	}
}

// Defaults returns the selection new sessions start from.
func (s *Service) Defaults() filter.Selection {
	return s.defaults.Clone()
}

// Compute runs every widget query for sel inside one store snapshot.
// Query failures never escape: the failing widget, and every widget after it in the same
// render cycle, carries the error instead of data.
func (s *Service) Compute(ctx context.Context, sel filter.Selection, page v1.Page) (*View, error) {
	page, err := s.normalizePage(page)
	if err != nil {
		return nil, err
	}
	sel = sel.Normalize()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	view := &View{
		RenderID:   s.newID(),
		ComputedAt: s.nowFn(),
		Selection:  sel.Clone(),
		Rankings:   make(map[v1.Dimension]Widget[[]v1.RankedGroup]),
		Breakdowns: make(map[v1.Dimension]Widget[[]v1.StatusBreakdown]),
	}
	rankDims := mergeDimensions(viewRankings, s.layout.Dimensions(layout.KindRanking))
	breakdownDims := mergeDimensions(viewBreakdowns, s.layout.Dimensions(layout.KindBreakdown))

	c := &cycle{renderID: view.RenderID}
	populate := func(q storage.Querier) error {
		view.KPIs = runWidget(c, "kpis", func() (v1.KPISummary, error) {
			return q.KPISummary(ctx, sel)
		})
		for _, d := range rankDims {
			d := d
			view.Rankings[d] = runWidget(c, "ranking:"+string(d), func() ([]v1.RankedGroup, error) {
				return q.RankedByDimension(ctx, sel, d)
			})
		}
		view.Cumulative = runWidget(c, "cumulative", func() ([]v1.CumulativePoint, error) {
			return q.CumulativeValueOverTime(ctx, sel)
		})
		for _, d := range breakdownDims {
			d := d
			view.Breakdowns[d] = runWidget(c, "breakdown:"+string(d), func() ([]v1.StatusBreakdown, error) {
				return q.StatusBreakdown(ctx, sel, d)
			})
		}
		view.CategoryRanks = runWidget(c, "category_ranks", func() ([]v1.CategoryRank, error) {
			return q.CategoryRanks(ctx, sel, 0)
		})
		view.Complaints = runWidget(c, "complaints", func() (ComplaintsPage, error) {
			rows, err := q.FilteredRows(ctx, sel, page)
			return ComplaintsPage{Rows: rows, Limit: page.Limit, Offset: page.Offset}, err
		})
		return c.err
	}

	ran := false
	err = s.store.Snapshot(ctx, func(q storage.Querier) error {
		ran = true
		return populate(q)
	})
	if err != nil && !ran {
		// The snapshot itself could not be opened; no widget was queried.
		slog.Error("[Dashboard] Failed to open store snapshot", "render_id", view.RenderID, "error", err)
		c.err = err
		_ = populate(nil)
	}

	view.Tiles = FormatTiles(view.KPIs)
	return view, nil
}

// KPIs computes the KPI summary alone.
func (s *Service) KPIs(ctx context.Context, sel filter.Selection) (v1.KPISummary, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.store.KPISummary(ctx, sel.Normalize())
}

// Ranking ranks the filtered complaints by one dimension given by name.
func (s *Service) Ranking(ctx context.Context, sel filter.Selection, dimension string) ([]v1.RankedGroup, error) {
	dim, err := parseDimension(dimension)
	if err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.store.RankedByDimension(ctx, sel.Normalize(), dim)
}

// Cumulative computes the running value total.
func (s *Service) Cumulative(ctx context.Context, sel filter.Selection) ([]v1.CumulativePoint, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.store.CumulativeValueOverTime(ctx, sel.Normalize())
}

// Breakdown counts the filtered complaints per (dimension value, status).
func (s *Service) Breakdown(ctx context.Context, sel filter.Selection, dimension string) ([]v1.StatusBreakdown, error) {
	dim, err := parseDimension(dimension)
	if err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.store.StatusBreakdown(ctx, sel.Normalize(), dim)
}

// CategoryRanks ranks categories within each country. limit <= 0 returns every row.
func (s *Service) CategoryRanks(ctx context.Context, sel filter.Selection, limit int) ([]v1.CategoryRank, error) {
	if limit < 0 {
		return nil, invalidQueryf("limit must be >= 0, got %d", limit)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.store.CategoryRanks(ctx, sel.Normalize(), limit)
}

// Complaints returns one page of the filtered complaints.
func (s *Service) Complaints(ctx context.Context, sel filter.Selection, page v1.Page) (ComplaintsPage, error) {
	page, err := s.normalizePage(page)
	if err != nil {
		return ComplaintsPage{}, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.store.FilteredRows(ctx, sel.Normalize(), page)
	if err != nil {
		return ComplaintsPage{}, err
	}
	return ComplaintsPage{Rows: rows, Limit: page.Limit, Offset: page.Offset}, nil
}

// FilterOptions lists the values the filter controls offer.
func (s *Service) FilterOptions(ctx context.Context) (v1.FilterOptions, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.store.FilterOptions(ctx)
}

// CreateSession starts a session from the default selection, optionally adjusted by change.
func (s *Service) CreateSession(ctx context.Context, change filter.Change, page v1.Page) (*SessionResponse, error) {
	sel := s.defaults
	if !change.Empty() {
		sel = change.Apply(s.defaults, s.defaults)
	}
	sess := s.sessions.Create(sel)
	slog.Info("[Sessions] Session created", "session_id", sess.ID, "active_sessions", s.sessions.Len())
	return s.sessionView(ctx, sess, sess.Selection(), page)
}

// Session recomputes the view of an existing session.
func (s *Service) Session(ctx context.Context, id string, page v1.Page) (*SessionResponse, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return nil, err
	}
	return s.sessionView(ctx, sess, sess.Selection(), page)
}

// UpdateFilters applies one filter change to a session and recomputes its view.
func (s *Service) UpdateFilters(ctx context.Context, id string, change filter.Change, page v1.Page) (*SessionResponse, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return nil, err
	}
	sel := sess.Apply(change, s.defaults)
	return s.sessionView(ctx, sess, sel, page)
}

// EndSession deletes a session.
func (s *Service) EndSession(id string) error {
	if err := s.sessions.Delete(id); err != nil {
		return err
	}
	slog.Info("[Sessions] Session ended", "session_id", id)
	return nil
}

func (s *Service) sessionView(ctx context.Context, sess *Session, sel filter.Selection, page v1.Page) (*SessionResponse, error) {
	view, err := s.Compute(ctx, sel, page)
	if err != nil {
		return nil, err
	}
	return &SessionResponse{
		ID:         sess.ID,
		Selection:  sel,
		CreatedAt:  sess.CreatedAt,
		LastAccess: sess.LastAccess(),
		View:       view,
	}, nil
}

func (s *Service) normalizePage(page v1.Page) (v1.Page, error) {
	if page.Limit < 0 {
		return v1.Page{}, invalidQueryf("limit must be >= 0, got %d", page.Limit)
	}
	if page.Offset < 0 {
		return v1.Page{}, invalidQueryf("offset must be >= 0, got %d", page.Offset)
	}
	if page.Limit == 0 {
		page.Limit = s.pageSize
	}
	if page.Limit > maxPageSize {
		page.Limit = maxPageSize
	}
	return page, nil
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}

// cycle tracks the first failure of one render cycle.
type cycle struct {
	renderID string
	err      error
}

func runWidget[T any](c *cycle, name string, query func() (T, error)) Widget[T] {
	if c.err != nil {
		return Widget[T]{Error: c.err.Error()}
	}
	data, err := query()
	if err != nil {
		slog.Error("[Dashboard] Widget query failed", "render_id", c.renderID, "widget", name, "error", err)
		c.err = fmt.Errorf("%s: %w", name, err)
		return Widget[T]{Error: c.err.Error()}
	}
	return Widget[T]{Data: data}
}

func parseDimension(name string) (v1.Dimension, error) {
	dim, err := v1.ParseDimension(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidQuery, err.Error())
	}
	return dim, nil
}

func mergeDimensions(base, extra []v1.Dimension) []v1.Dimension {
	out := append([]v1.Dimension(nil), base...)
	for _, d := range extra {
		found := false
		for _, b := range out {
			if b == d {
				found = true
				break
			}
		}
		if !found {
			out = append(out, d)
		}
	}
	return out
}

func invalidQueryf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidQuery, fmt.Sprintf(format, args...))
}
