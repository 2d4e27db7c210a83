package dashboard

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	v1 "github.com/cxinsights/cx-dashboard/internal/api/v1"
	"github.com/cxinsights/cx-dashboard/internal/core/filter"
	"github.com/cxinsights/cx-dashboard/internal/layout"
	"github.com/cxinsights/cx-dashboard/internal/render"
	"github.com/gin-gonic/gin"
)

//go:embed templates/dashboard.html
var templateFS embed.FS

var shellTemplate = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

const sessionParam = "session"

type shellPage struct {
	Title        string
	SessionID    string
	DateFrom     string
	DateTo       string
	MinDate      string
	MaxDate      string
	Controls     []shellControl
	OptionsError string
	Panels       []shellPanel
	RenderID     string
	ComputedAt   string
}

type shellControl struct {
	Name    string
	Label   string
	Options []shellOption
}

type shellOption struct {
	Value    string
	Selected bool
}

type shellPanel struct {
	Title   string
	Widgets []shellWidget
}

type shellWidget struct {
	Title    string
	Error    string
	Empty    bool
	ImageURL string
	Tiles    []render.Tile
	Columns  []string
	Rows     [][]string
}

// HandleShell handles GET /
// Without a session the page is a pure function of its query string, with the default
// date range filling unset dates. With ?session=<id> a submitted form becomes that session's
// selection; a bare session link re-renders the stored selection.
func (s *Service) HandleShell(c *gin.Context) {
	ctx := c.Request.Context()
	query := c.Request.URL.Query()

	sel, err := filter.FromQuery(query)
	if err != nil {
		writeError(c, invalidQueryf("%s", err.Error()), "Invalid filter parameters")
		return
	}

	sessionID := query.Get(sessionParam)
	if sessionID != "" {
		sess, err := s.sessions.Get(sessionID)
		if err != nil {
			writeError(c, err, "Session not found")
			return
		}
		if hasFilterParams(query) {
			sel = sess.Apply(replaceWith(sel), s.defaults)
		} else {
			sel = sess.Selection()
		}
	} else {
		sel = sel.WithDefaultDates(s.defaults)
	}

	view, err := s.Compute(ctx, sel, v1.Page{})
	if err != nil {
		writeError(c, err, "Failed to compute view")
		return
	}

	page := shellPage{
		Title:      s.layout.Title,
		SessionID:  sessionID,
		DateFrom:   view.Selection.DateFrom.String(),
		DateTo:     view.Selection.DateTo.String(),
		RenderID:   view.RenderID,
		ComputedAt: view.ComputedAt.Format("2006-01-02 15:04:05 MST"),
	}
	if page.Title == "" {
		page.Title = "Customer Experience Insights"
	}

	opts, err := s.FilterOptions(ctx)
	if err != nil {
		slog.Error("[Dashboard] Failed to load filter options", "error", err)
		page.OptionsError = err.Error()
	} else {
		page.MinDate, page.MaxDate = opts.MinDate.String(), opts.MaxDate.String()
		page.Controls = buildControls(opts, view.Selection)
	}

	chartQuery := view.Selection.Query().Encode()
	for _, p := range s.layout.Panels {
		panel := shellPanel{Title: p.Title}
		for _, w := range p.Widgets {
			panel.Widgets = append(panel.Widgets, buildWidget(w, view, chartQuery))
		}
		page.Panels = append(page.Panels, panel)
	}

	var buf bytes.Buffer
	if err := shellTemplate.Execute(&buf, page); err != nil {
		slog.Error("[Dashboard] Failed to render shell", "error", err)
		writeError(c, errors.New("failed to render page"), "Failed to render page")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func hasFilterParams(q url.Values) bool {
	if _, ok := q[filter.ParamDateFrom]; ok {
		return true
	}
	if _, ok := q[filter.ParamDateTo]; ok {
		return true
	}
	for _, d := range v1.Dimensions {
		if _, ok := q[string(d)]; ok {
			return true
		}
	}
	return false
}

// replaceWith turns a submitted form into a change that overwrites every field.
func replaceWith(sel filter.Selection) filter.Change {
	from, to := sel.DateFrom, sel.DateTo
	countries, channels := sel.Countries, sel.Channels
	categories, statuses := sel.Categories, sel.Statuses
	return filter.Change{
		DateFrom:   &from,
		DateTo:     &to,
		Countries:  &countries,
		Channels:   &channels,
		Categories: &categories,
		Statuses:   &statuses,
	}
}

func buildControls(opts v1.FilterOptions, sel filter.Selection) []shellControl {
	choices := map[v1.Dimension][]string{
		v1.DimensionCountry:  opts.Countries,
		v1.DimensionChannel:  opts.Channels,
		v1.DimensionCategory: opts.Categories,
		v1.DimensionStatus:   opts.Statuses,
	}

	controls := make([]shellControl, 0, len(v1.Dimensions))
	for _, d := range v1.Dimensions {
		selected := make(map[string]bool)
		for _, v := range sel.Values(d) {
			selected[v] = true
		}
		ctl := shellControl{Name: string(d), Label: d.Label()}
		for _, v := range choices[d] {
			ctl.Options = append(ctl.Options, shellOption{Value: v, Selected: selected[v]})
		}
		controls = append(controls, ctl)
	}
	return controls
}

func buildWidget(w layout.Widget, view *View, chartQuery string) shellWidget {
	out := shellWidget{Title: w.Title}

	switch w.Kind {
	case layout.KindKPIs:
		out.Error = view.KPIs.Error
		out.Tiles = view.Tiles.RenderTiles()

	case layout.KindCumulative:
		out.Error = view.Cumulative.Error
		out.Empty = len(view.Cumulative.Data) == 0
		out.ImageURL = "/v1/charts/cumulative.png?" + chartQuery

	case layout.KindDailyCounts:
		out.Error = view.Cumulative.Error
		out.Empty = len(view.Cumulative.Data) == 0
		out.ImageURL = "/v1/charts/daily.png?" + chartQuery

	case layout.KindRanking:
		ranking := view.Rankings[w.Dimension]
		out.Error = ranking.Error
		out.Empty = len(ranking.Data) == 0
		out.ImageURL = "/v1/charts/rankings/" + string(w.Dimension) + ".png?" + chartQuery

	case layout.KindBreakdown:
		breakdown := view.Breakdowns[w.Dimension]
		out.Error = breakdown.Error
		out.Empty = len(breakdown.Data) == 0
		out.Columns = []string{w.Dimension.Label(), "Status", "Complaints"}
		for _, b := range breakdown.Data {
			out.Rows = append(out.Rows, []string{b.Value, b.Status, strconv.FormatInt(b.Count, 10)})
		}

	case layout.KindCategoryRanks:
		out.Error = view.CategoryRanks.Error
		out.Empty = len(view.CategoryRanks.Data) == 0
		out.Columns = []string{"Country", "Rank", "Category", "Complaints", "Value"}
		for _, r := range view.CategoryRanks.Data {
			out.Rows = append(out.Rows, []string{
				r.Country,
				strconv.FormatInt(r.Rank, 10),
				r.Category,
				strconv.FormatInt(r.Count, 10),
				r.TotalValue.StringFixed(2),
			})
		}

	case layout.KindComplaintsTable:
		out.Error = view.Complaints.Error
		out.Empty = len(view.Complaints.Data.Rows) == 0
		out.Columns = []string{"ID", "Date", "Country", "Channel", "Category", "Status", "Value", "SLA hours"}
		for _, r := range view.Complaints.Data.Rows {
			sla := Placeholder
			if r.SLAHours != nil {
				sla = strconv.FormatFloat(*r.SLAHours, 'f', 1, 64)
			}
			out.Rows = append(out.Rows, []string{
				r.ID, r.Date.String(), r.Country, r.Channel, r.Category, r.Status, r.Value.StringFixed(2), sla,
			})
		}
	}
	return out
}
