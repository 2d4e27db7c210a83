package sqlstore

import (
	"fmt"
	"strings"

	v1 "github.com/cxinsights/cx-dashboard/internal/api/v1"
	"github.com/cxinsights/cx-dashboard/internal/core/filter"
	"github.com/cxinsights/cx-dashboard/internal/core/storage"
)

// SQL templates for the dashboard queries. '%s' slots take a WHERE clause built by
// whereClause, and, where noted, a whitelisted dimension column.
// Dates are compared as YYYY-MM-DD text, which orders correctly in both dialects.

const (
	// queryFilteredRows lists matching records in a stable order.
	queryFilteredRows = `
		SELECT id, CAST(date AS TEXT) AS complaint_day, country, channel, category, status, value, sla_hours
		FROM complaints
		WHERE %s
		ORDER BY complaint_day ASC, id ASC`

	// queryKPISummary computes all KPI tiles in one pass.
	// The escalated status and the SLA status list are bound before the WHERE arguments.
	queryKPISummary = `
		SELECT
			COUNT(*) AS total_count,
			COALESCE(SUM(CASE WHEN LOWER(status) = ? THEN 1 ELSE 0 END), 0) AS escalated_count,
			AVG(CASE WHEN %[1]s AND sla_hours IS NOT NULL THEN sla_hours END) AS avg_sla,
			COALESCE(SUM(CASE WHEN %[1]s AND sla_hours IS NOT NULL THEN 1 ELSE 0 END), 0) AS sla_samples,
			COALESCE(SUM(value), 0) AS total_value
		FROM complaints
		WHERE %[2]s`

	// queryRankedByDimension groups by one dimension and ranks groups with RANK(),
	// so tied counts share a rank and the following rank is skipped.
	// %[1]s is the dimension column.
	queryRankedByDimension = `
		WITH grouped AS (
			SELECT
				%[1]s AS dimension_value,
				COUNT(*) AS complaint_count,
				COALESCE(SUM(value), 0) AS total_value
			FROM complaints
			WHERE %[2]s
			GROUP BY %[1]s
		)
		SELECT
			dimension_value,
			complaint_count,
			total_value,
			RANK() OVER (ORDER BY complaint_count DESC) AS complaint_rank
		FROM grouped
		ORDER BY complaint_rank ASC, dimension_value ASC`

	// queryCumulativeValue sums value per day and keeps a running total with a window frame.
	queryCumulativeValue = `
		WITH daily AS (
			SELECT
				CAST(date AS TEXT) AS complaint_day,
				COUNT(*) AS daily_count,
				COALESCE(SUM(value), 0) AS daily_value
			FROM complaints
			WHERE %s
			GROUP BY CAST(date AS TEXT)
		)
		SELECT
			complaint_day,
			daily_count,
			daily_value,
			SUM(daily_value) OVER (ORDER BY complaint_day ROWS BETWEEN UNBOUNDED PRECEDING AND CURRENT ROW) AS cumulative_value
		FROM daily
		ORDER BY complaint_day ASC`

	// queryStatusBreakdown counts records per (dimension value, status). %[1]s is the dimension column.
	queryStatusBreakdown = `
		SELECT %[1]s AS dimension_value, status, COUNT(*) AS complaint_count
		FROM complaints
		WHERE %[2]s
		GROUP BY %[1]s, status
		ORDER BY dimension_value ASC, status ASC`

	// queryCategoryRanks ranks categories by volume inside each country partition.
	queryCategoryRanks = `
		WITH grouped AS (
			SELECT
				country,
				category,
				COUNT(*) AS complaint_count,
				COALESCE(SUM(value), 0) AS total_value
			FROM complaints
			WHERE %s
			GROUP BY country, category
		)
		SELECT
			country,
			category,
			complaint_count,
			total_value,
			RANK() OVER (PARTITION BY country ORDER BY complaint_count DESC) AS category_rank
		FROM grouped
		ORDER BY country ASC, category_rank ASC, category ASC`

	// queryDistinctValues lists the choices of one filter control. %s is the dimension column.
	queryDistinctValues = `
		SELECT DISTINCT %[1]s
		FROM complaints
		WHERE %[1]s IS NOT NULL
		ORDER BY %[1]s ASC`

	// queryDateBounds returns the first and last complaint dates (NULL on an empty store).
	queryDateBounds = `
		SELECT CAST(MIN(date) AS TEXT), CAST(MAX(date) AS TEXT)
		FROM complaints`
)

// dimensionColumn maps a validated dimension to its column. The dimension set is closed,
// so the returned identifier is safe to interpolate.
func dimensionColumn(d v1.Dimension) (string, error) {
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q", storage.ErrUnknownDimension, string(d))
	}
	return string(d), nil
}

// whereClause renders the selection's predicates with '?' placeholders.
// An empty selection renders "1 = 1".
func whereClause(sel filter.Selection) (string, []interface{}) {
	sel = sel.Normalize()

	var (
		conds []string
		args  []interface{}
	)
	if !sel.DateFrom.IsZero() {
		conds = append(conds, "date >= ?")
		args = append(args, sel.DateFrom)
	}
	if !sel.DateTo.IsZero() {
		conds = append(conds, "date <= ?")
		args = append(args, sel.DateTo)
	}
	for _, d := range v1.Dimensions {
		values := sel.Values(d)
		if len(values) == 0 {
			continue
		}
		conds = append(conds, fmt.Sprintf("%s IN (%s)", string(d), placeholders(len(values))))
		for _, v := range values {
			args = append(args, v)
		}
	}

	if len(conds) == 0 {
		return "1 = 1", nil
	}
	return strings.Join(conds, " AND "), args
}

// statusMembership renders a case-insensitive status IN (...) test.
// An empty status list never matches.
func statusMembership(statuses []string) (string, []interface{}) {
	if len(statuses) == 0 {
		return "1 = 0", nil
	}
	args := make([]interface{}, len(statuses))
	for i, s := range statuses {
		args[i] = strings.ToLower(s)
	}
	return fmt.Sprintf("LOWER(status) IN (%s)", placeholders(len(statuses))), args
}

func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func buildFilteredRowsQuery(d Dialect, sel filter.Selection, page v1.Page) (string, []interface{}) {
	where, args := whereClause(sel)
	limit, limitArgs := d.paginate(page)
	return d.Rebind(fmt.Sprintf(queryFilteredRows, where) + limit), append(args, limitArgs...)
}

func buildKPISummaryQuery(d Dialect, sel filter.Selection, rules storage.MetricRules) (string, []interface{}) {
	where, whereArgs := whereClause(sel)
	slaCond, slaArgs := statusMembership(rules.SLAStatuses)

	args := []interface{}{strings.ToLower(rules.EscalatedStatus)}
	args = append(args, slaArgs...) // AVG(...)
	args = append(args, slaArgs...) // sla_samples
	args = append(args, whereArgs...)
	return d.Rebind(fmt.Sprintf(queryKPISummary, slaCond, where)), args
}

func buildRankedQuery(d Dialect, sel filter.Selection, dim v1.Dimension) (string, []interface{}, error) {
	col, err := dimensionColumn(dim)
	if err != nil {
		return "", nil, err
	}
	where, args := whereClause(sel)
	return d.Rebind(fmt.Sprintf(queryRankedByDimension, col, where)), args, nil
}

func buildCumulativeQuery(d Dialect, sel filter.Selection) (string, []interface{}) {
	where, args := whereClause(sel)
	return d.Rebind(fmt.Sprintf(queryCumulativeValue, where)), args
}

func buildStatusBreakdownQuery(d Dialect, sel filter.Selection, dim v1.Dimension) (string, []interface{}, error) {
	col, err := dimensionColumn(dim)
	if err != nil {
		return "", nil, err
	}
	where, args := whereClause(sel)
	return d.Rebind(fmt.Sprintf(queryStatusBreakdown, col, where)), args, nil
}

func buildCategoryRanksQuery(d Dialect, sel filter.Selection, limit int) (string, []interface{}) {
	where, args := whereClause(sel)
	query := fmt.Sprintf(queryCategoryRanks, where)
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	return d.Rebind(query), args
}

func buildDistinctQuery(dim v1.Dimension) (string, error) {
	col, err := dimensionColumn(dim)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(queryDistinctValues, col), nil
}
