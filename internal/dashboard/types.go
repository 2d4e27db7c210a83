package dashboard

import (
	"time"

	v1 "github.com/cxinsights/cx-dashboard/internal/api/v1"
	"github.com/cxinsights/cx-dashboard/internal/core/filter"
)

// Widget holds either a query result or the reason it could not be computed.
type Widget[T any] struct {
	Data  T      `json:"data"`
	Error string `json:"error,omitempty"`
}

func (w Widget[T]) OK() bool { return w.Error == "" }

// Tiles are the KPI values formatted for display.
type Tiles struct {
	TotalComplaints string `json:"total_complaints"`
	EscalationRate  string `json:"escalation_rate"`
	AvgSLA          string `json:"avg_sla"`
	TotalValue      string `json:"total_value"`
}

// ComplaintsPage is one page of the filtered complaints table.
type ComplaintsPage struct {
	Rows   []v1.Complaint `json:"rows"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// View is the outcome of one render cycle: every widget computed from one selection and one store snapshot.
type View struct {
	RenderID   string           `json:"render_id"`
	ComputedAt time.Time        `json:"computed_at"`
	Selection  filter.Selection `json:"selection"`
	Tiles      Tiles            `json:"tiles"`

	KPIs          Widget[v1.KPISummary]                         `json:"kpis"`
	Rankings      map[v1.Dimension]Widget[[]v1.RankedGroup]     `json:"rankings"`
	Cumulative    Widget[[]v1.CumulativePoint]                  `json:"cumulative"`
	Breakdowns    map[v1.Dimension]Widget[[]v1.StatusBreakdown] `json:"breakdowns"`
	CategoryRanks Widget[[]v1.CategoryRank]                     `json:"category_ranks"`
	Complaints    Widget[ComplaintsPage]                        `json:"complaints"`
}

// SessionResponse is the JSON shape of a session and its current view.
type SessionResponse struct {
	ID         string           `json:"id"`
	Selection  filter.Selection `json:"selection"`
	CreatedAt  time.Time        `json:"created_at"`
	LastAccess time.Time        `json:"last_access"`
	View       *View            `json:"view,omitempty"`
}
