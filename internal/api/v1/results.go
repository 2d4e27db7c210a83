package v1

import "github.com/shopspring/decimal"

// KPISummary is the tile row of the dashboard, computed over the filtered complaints.
type KPISummary struct {
	TotalCount     int64   `json:"total_count"`
	EscalatedCount int64   `json:"escalated_count"`
	EscalationRate float64 `json:"escalation_rate"` // 0 when TotalCount is 0

	// AvgSLA is nil when no filtered record carries a meaningful SLA.
	AvgSLA     *float64        `json:"avg_sla"`
	SLASamples int64           `json:"sla_samples"`
	TotalValue decimal.Decimal `json:"total_value"`
}

// RankedGroup is one row of a ranking by a categorical dimension.
// Rank is competition-style: ties share a rank and the next rank skips.
type RankedGroup struct {
	Dimension  Dimension       `json:"dimension"`
	Value      string          `json:"value"`
	Count      int64           `json:"count"`
	TotalValue decimal.Decimal `json:"total_value"`
	Rank       int64           `json:"rank"`
}

// CumulativePoint is one date of the running value total.
type CumulativePoint struct {
	Date            Date            `json:"date"`
	DailyCount      int64           `json:"daily_count"`
	DailyValue      decimal.Decimal `json:"daily_value"`
	CumulativeValue decimal.Decimal `json:"cumulative_value"`
}

// StatusBreakdown counts complaints per (dimension value, status) pair.
type StatusBreakdown struct {
	Dimension Dimension `json:"dimension"`
	Value     string    `json:"value"`
	Status    string    `json:"status"`
	Count     int64     `json:"count"`
}

// CategoryRank ranks categories by volume within each country.
type CategoryRank struct {
	Country    string          `json:"country"`
	Category   string          `json:"category"`
	Count      int64           `json:"count"`
	TotalValue decimal.Decimal `json:"total_value"`
	Rank       int64           `json:"rank"`
}

// FilterOptions are the choices offered by the filter controls.
type FilterOptions struct {
	Countries  []string `json:"countries"`
	Channels   []string `json:"channels"`
	Categories []string `json:"categories"`
	Statuses   []string `json:"statuses"`
	MinDate    Date     `json:"min_date"`
	MaxDate    Date     `json:"max_date"`
}

// Page bounds a row listing. A zero Limit means no limit.
type Page struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
