package sqlstore

import (
	"database/sql"
	"fmt"

	v1 "github.com/cxinsights/cx-dashboard/internal/api/v1"
	"github.com/shopspring/decimal"
)

// moneyPlaces is the precision of stored values. SQLite sums REAL columns in float64,
// so every monetary aggregate is rounded back to cents after scanning.
const moneyPlaces = 2

func roundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPlaces)
}

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanComplaintRow scans one queryFilteredRows row.
// Compatible with both sql.Row (single) and sql.Rows (multiple).
func scanComplaintRow(row scanner) (v1.Complaint, error) {
	var (
		c                                  v1.Complaint
		country, channel, category, status sql.NullString
		slaHours                           sql.NullFloat64
	)

	err := row.Scan(
		&c.ID,
		&c.Date,
		&country,
		&channel,
		&category,
		&status,
		&c.Value,
		&slaHours,
	)
	if err != nil {
		return v1.Complaint{}, fmt.Errorf("failed to scan complaint row: %w", err)
	}

	c.Country = country.String
	c.Channel = channel.String
	c.Category = category.String
	c.Status = status.String
	c.Value = roundMoney(c.Value)
	if slaHours.Valid {
		h := slaHours.Float64
		c.SLAHours = &h
	}
	return c, nil
}
