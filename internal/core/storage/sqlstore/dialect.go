package sqlstore

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	v1 "github.com/cxinsights/cx-dashboard/internal/api/v1"
)

// Dialect captures the few places where SQLite and PostgreSQL disagree.
// Queries are written with '?' placeholders and rebound per dialect.
type Dialect struct {
	Name       string
	DriverName string

	numberedPlaceholders bool
	snapshotTxOptions    *sql.TxOptions
	limitAll             string
}

var (
	// Postgres uses lib/pq. Snapshots are read-only REPEATABLE READ transactions.
	Postgres = Dialect{
		Name:                 "postgres",
		DriverName:           "postgres",
		numberedPlaceholders: true,
		snapshotTxOptions:    &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true},
		limitAll:             "ALL",
	}

	// SQLite uses modernc.org/sqlite. A deferred transaction already reads one snapshot.
	SQLite = Dialect{
		Name:       "sqlite",
		DriverName: "sqlite",
		limitAll:   "-1",
	}
)

// DialectFor resolves the database.type config value.
func DialectFor(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "postgres", "postgresql":
		return Postgres, nil
	case "sqlite", "sqlite3", "":
		return SQLite, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported database type %q", name)
	}
}

// Rebind rewrites '?' placeholders into the dialect's bind syntax.
func (d Dialect) Rebind(query string) string {
	if !d.numberedPlaceholders {
		return query
	}

	var (
		b strings.Builder
		n int
	)
	b.Grow(len(query) + 8)
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ReadOnlyDSN returns a DSN that opens the store without write access.
// SQLite paths become "file:<path>?mode=ro"; Postgres sessions get default_transaction_read_only.
// A DSN that already sets the mode is returned unchanged, as is an in-memory SQLite database.
func (d Dialect) ReadOnlyDSN(dsn string) string {
	switch d.Name {
	case SQLite.Name:
		if dsn == "" || strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=") {
			return dsn
		}
		if !strings.HasPrefix(dsn, "file:") {
			dsn = "file:" + dsn
		}
		return appendQueryParam(dsn, "mode=ro")
	case Postgres.Name:
		if strings.Contains(dsn, "default_transaction_read_only") {
			return dsn
		}
		if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
			return appendQueryParam(dsn, "default_transaction_read_only=on")
		}
		// key=value connection string
		return strings.TrimSpace(dsn + " default_transaction_read_only=on")
	default:
		return dsn
	}
}

func appendQueryParam(dsn, param string) string {
	if strings.Contains(dsn, "?") {
		return dsn + "&" + param
	}
	return dsn + "?" + param
}

// paginate renders LIMIT/OFFSET for a page. Both dialects need a LIMIT before OFFSET.
func (d Dialect) paginate(page v1.Page) (string, []interface{}) {
	switch {
	case page.Limit > 0 && page.Offset > 0:
		return " LIMIT ? OFFSET ?", []interface{}{page.Limit, page.Offset}
	case page.Limit > 0:
		return " LIMIT ?", []interface{}{page.Limit}
	case page.Offset > 0:
		return " LIMIT " + d.limitAll + " OFFSET ?", []interface{}{page.Offset}
	default:
		return "", nil
	}
}
