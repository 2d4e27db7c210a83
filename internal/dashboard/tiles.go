package dashboard

import (
	"fmt"

	v1 "github.com/cxinsights/cx-dashboard/internal/api/v1"
	"github.com/cxinsights/cx-dashboard/internal/render"
	"github.com/dustin/go-humanize"
)

// Placeholder is shown for a KPI that has no meaningful value.
const Placeholder = "—"

// FormatTiles renders the KPI summary for display.
func FormatTiles(kpis Widget[v1.KPISummary]) Tiles {
	if !kpis.OK() {
		return Tiles{
			TotalComplaints: Placeholder,
			EscalationRate:  Placeholder,
			AvgSLA:          Placeholder,
			TotalValue:      Placeholder,
		}
	}

	s := kpis.Data
	tiles := Tiles{
		TotalComplaints: humanize.Comma(s.TotalCount),
		EscalationRate:  fmt.Sprintf("%.1f%%", s.EscalationRate*100),
		AvgSLA:          Placeholder,
		TotalValue:      "$" + humanize.Comma(s.TotalValue.Round(0).IntPart()),
	}
	if s.AvgSLA != nil {
		tiles.AvgSLA = fmt.Sprintf("%.1f", *s.AvgSLA)
	}
	return tiles
}

// RenderTiles lists the tiles in display order for the image renderer.
func (t Tiles) RenderTiles() []render.Tile {
	return []render.Tile{
		{Label: "Total complaints", Value: t.TotalComplaints},
		{Label: "Escalation rate", Value: t.EscalationRate},
		{Label: "Avg SLA (hours)", Value: t.AvgSLA},
		{Label: "Total value", Value: t.TotalValue},
	}
}
