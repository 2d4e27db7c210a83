package dashboard

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	v1 "github.com/cxinsights/cx-dashboard/internal/api/v1"
	httperr "github.com/cxinsights/cx-dashboard/internal/core/errors"
	"github.com/cxinsights/cx-dashboard/internal/core/filter"
	"github.com/cxinsights/cx-dashboard/internal/render"
	"github.com/gin-gonic/gin"
)

const pngContentType = "image/png"

// RegisterRoutes registers the dashboard shell and every API route on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/", s.HandleShell)

	api := r.Group("/v1")
	api.GET("/filters/options", s.HandleFilterOptions)
	api.GET("/view", s.HandleView)
	api.GET("/kpis", s.HandleKPIs)
	api.GET("/rankings/:dimension", s.HandleRanking)
	api.GET("/cumulative", s.HandleCumulative)
	api.GET("/complaints", s.HandleComplaints)
	api.GET("/breakdown/:dimension", s.HandleBreakdown)
	api.GET("/category-ranks", s.HandleCategoryRanks)

	api.POST("/sessions", s.HandleCreateSession)
	api.GET("/sessions/:id", s.HandleGetSession)
	api.PATCH("/sessions/:id/filters", s.HandleUpdateFilters)
	api.DELETE("/sessions/:id", s.HandleDeleteSession)

	api.GET("/charts/cumulative.png", s.HandleCumulativeChart)
	api.GET("/charts/daily.png", s.HandleDailyChart)
	api.GET("/charts/rankings/:file", s.HandleRankingChart)
	api.GET("/charts/kpis.png", s.HandleKPIChart)
}

// HandleFilterOptions handles GET /v1/filters/options
func (s *Service) HandleFilterOptions(c *gin.Context) {
	opts, err := s.FilterOptions(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to load filter options")
		return
	}
	c.JSON(http.StatusOK, opts)
}

// HandleView handles GET /v1/view
// Query parameters: date_from, date_to, country, channel, category, status, limit, offset
func (s *Service) HandleView(c *gin.Context) {
	sel, page, ok := bindSelectionAndPage(c)
	if !ok {
		return
	}
	view, err := s.Compute(c.Request.Context(), sel, page)
	if err != nil {
		writeError(c, err, "Failed to compute view")
		return
	}
	c.JSON(http.StatusOK, view)
}

// HandleKPIs handles GET /v1/kpis
func (s *Service) HandleKPIs(c *gin.Context) {
	sel, ok := bindSelection(c)
	if !ok {
		return
	}
	kpis, err := s.KPIs(c.Request.Context(), sel)
	if err != nil {
		writeError(c, err, "Failed to compute KPIs")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"kpis":  kpis,
		"tiles": FormatTiles(Widget[v1.KPISummary]{Data: kpis}),
	})
}

// HandleRanking handles GET /v1/rankings/:dimension
func (s *Service) HandleRanking(c *gin.Context) {
	sel, ok := bindSelection(c)
	if !ok {
		return
	}
	groups, err := s.Ranking(c.Request.Context(), sel, c.Param("dimension"))
	if err != nil {
		writeError(c, err, "Failed to rank complaints")
		return
	}
	c.JSON(http.StatusOK, groups)
}

// HandleCumulative handles GET /v1/cumulative
func (s *Service) HandleCumulative(c *gin.Context) {
	sel, ok := bindSelection(c)
	if !ok {
		return
	}
	points, err := s.Cumulative(c.Request.Context(), sel)
	if err != nil {
		writeError(c, err, "Failed to compute cumulative value")
		return
	}
	c.JSON(http.StatusOK, points)
}

// HandleComplaints handles GET /v1/complaints
func (s *Service) HandleComplaints(c *gin.Context) {
	sel, page, ok := bindSelectionAndPage(c)
	if !ok {
		return
	}
	rows, err := s.Complaints(c.Request.Context(), sel, page)
	if err != nil {
		writeError(c, err, "Failed to list complaints")
		return
	}
	c.JSON(http.StatusOK, rows)
}

// HandleBreakdown handles GET /v1/breakdown/:dimension
func (s *Service) HandleBreakdown(c *gin.Context) {
	sel, ok := bindSelection(c)
	if !ok {
		return
	}
	out, err := s.Breakdown(c.Request.Context(), sel, c.Param("dimension"))
	if err != nil {
		writeError(c, err, "Failed to compute status breakdown")
		return
	}
	c.JSON(http.StatusOK, out)
}

// HandleCategoryRanks handles GET /v1/category-ranks
// Query parameters: the selection plus limit
func (s *Service) HandleCategoryRanks(c *gin.Context) {
	sel, ok := bindSelection(c)
	if !ok {
		return
	}
	limit, err := intParam(c, "limit")
	if err != nil {
		writeError(c, err, "Invalid query parameters")
		return
	}
	out, err := s.CategoryRanks(c.Request.Context(), sel, limit)
	if err != nil {
		writeError(c, err, "Failed to rank categories")
		return
	}
	c.JSON(http.StatusOK, out)
}

// HandleCreateSession handles POST /v1/sessions
// The body is an optional filter change applied on top of the defaults.
func (s *Service) HandleCreateSession(c *gin.Context) {
	change, ok := bindChange(c, true)
	if !ok {
		return
	}
	page, ok := bindPage(c)
	if !ok {
		return
	}
	resp, err := s.CreateSession(c.Request.Context(), change, page)
	if err != nil {
		writeError(c, err, "Failed to create session")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// HandleGetSession handles GET /v1/sessions/:id
func (s *Service) HandleGetSession(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}
	resp, err := s.Session(c.Request.Context(), c.Param("id"), page)
	if err != nil {
		writeError(c, err, "Failed to load session")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleUpdateFilters handles PATCH /v1/sessions/:id/filters
func (s *Service) HandleUpdateFilters(c *gin.Context) {
	change, ok := bindChange(c, false)
	if !ok {
		return
	}
	page, ok := bindPage(c)
	if !ok {
		return
	}
	resp, err := s.UpdateFilters(c.Request.Context(), c.Param("id"), change, page)
	if err != nil {
		writeError(c, err, "Failed to update filters")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleDeleteSession handles DELETE /v1/sessions/:id
func (s *Service) HandleDeleteSession(c *gin.Context) {
	if err := s.EndSession(c.Param("id")); err != nil {
		writeError(c, err, "Failed to end session")
		return
	}
	c.Status(http.StatusNoContent)
}

// HandleCumulativeChart handles GET /v1/charts/cumulative.png
func (s *Service) HandleCumulativeChart(c *gin.Context) {
	sel, ok := bindSelection(c)
	if !ok {
		return
	}
	points, err := s.Cumulative(c.Request.Context(), sel)
	if err != nil {
		writeError(c, err, "Failed to compute cumulative value")
		return
	}
	s.writePNG(c, func(w io.Writer) error { return render.CumulativeChart(w, points, s.charts) })
}

// HandleDailyChart handles GET /v1/charts/daily.png
func (s *Service) HandleDailyChart(c *gin.Context) {
	sel, ok := bindSelection(c)
	if !ok {
		return
	}
	points, err := s.Cumulative(c.Request.Context(), sel)
	if err != nil {
		writeError(c, err, "Failed to compute daily complaint counts")
		return
	}
	s.writePNG(c, func(w io.Writer) error { return render.DailyCountChart(w, points, s.charts) })
}

// HandleRankingChart handles GET /v1/charts/rankings/:dimension.png
func (s *Service) HandleRankingChart(c *gin.Context) {
	file := c.Param("file")
	if !strings.HasSuffix(file, ".png") {
		writeError(c, invalidQueryf("chart %q must end in .png", file), "Invalid chart")
		return
	}
	sel, ok := bindSelection(c)
	if !ok {
		return
	}
	groups, err := s.Ranking(c.Request.Context(), sel, strings.TrimSuffix(file, ".png"))
	if err != nil {
		writeError(c, err, "Failed to rank complaints")
		return
	}
	s.writePNG(c, func(w io.Writer) error { return render.RankingChart(w, groups, s.charts) })
}

// HandleKPIChart handles GET /v1/charts/kpis.png
func (s *Service) HandleKPIChart(c *gin.Context) {
	sel, ok := bindSelection(c)
	if !ok {
		return
	}
	kpis, err := s.KPIs(c.Request.Context(), sel)
	if err != nil {
		writeError(c, err, "Failed to compute KPIs")
		return
	}
	tiles := FormatTiles(Widget[v1.KPISummary]{Data: kpis})
	s.writePNG(c, func(w io.Writer) error { return render.KPITiles(w, tiles.RenderTiles(), s.charts) })
}

// writePNG renders into a buffer first so a failed render never sends a partial image.
func (s *Service) writePNG(c *gin.Context, draw func(w io.Writer) error) {
	var buf bytes.Buffer
	if err := draw(&buf); err != nil {
		if errors.Is(err, render.ErrNoData) {
			c.Status(http.StatusNoContent)
			return
		}
		slog.Error("[Render] Chart rendering failed", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   "Failed to render chart",
			Details:   err.Error(),
		})
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, pngContentType, buf.Bytes())
}

func bindSelection(c *gin.Context) (filter.Selection, bool) {
	sel, err := filter.FromQuery(c.Request.URL.Query())
	if err != nil {
		writeError(c, fmt.Errorf("%w: %s", ErrInvalidQuery, err.Error()), "Invalid filter parameters")
		return filter.Selection{}, false
	}
	return sel, true
}

func bindPage(c *gin.Context) (v1.Page, bool) {
	limit, err := intParam(c, "limit")
	if err != nil {
		writeError(c, err, "Invalid query parameters")
		return v1.Page{}, false
	}
	offset, err := intParam(c, "offset")
	if err != nil {
		writeError(c, err, "Invalid query parameters")
		return v1.Page{}, false
	}
	return v1.Page{Limit: limit, Offset: offset}, true
}

func bindSelectionAndPage(c *gin.Context) (filter.Selection, v1.Page, bool) {
	sel, ok := bindSelection(c)
	if !ok {
		return filter.Selection{}, v1.Page{}, false
	}
	page, ok := bindPage(c)
	if !ok {
		return filter.Selection{}, v1.Page{}, false
	}
	return sel, page, true
}

// bindChange decodes a filter change from the JSON body. An empty body is allowed only when optional.
func bindChange(c *gin.Context, optional bool) (filter.Change, bool) {
	var change filter.Change
	if err := c.ShouldBindJSON(&change); err != nil {
		if optional && errors.Is(err, io.EOF) {
			return filter.Change{}, true
		}
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidJsonError,
			Message:   "Invalid filter change",
			Details:   err.Error(),
		})
		return filter.Change{}, false
	}
	return change, true
}

func intParam(c *gin.Context, name string) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, invalidQueryf("%s must be an integer, got %q", name, raw)
	}
	return n, nil
}

// writeError maps service errors to status codes: invalid input is 400, an unknown session 404,
// anything else is a store failure and 500.
func writeError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, ErrInvalidQuery):
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidQueryError,
			Message:   message,
			Details:   err.Error(),
		})
	case errors.Is(err, ErrSessionNotFound):
		c.JSON(http.StatusNotFound, httperr.ErrorResponse{
			ErrorType: httperr.HttpSessionNotFound,
			Message:   "Session not found",
			Details:   c.Param("id"),
		})
	default:
		slog.Error("[Dashboard] Request failed", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpQueryFailedError,
			Message:   message,
			Details:   err.Error(),
		})
	}
}
