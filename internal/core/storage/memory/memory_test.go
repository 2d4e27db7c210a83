package memory

import (
	"context"
	"encoding/json"
	"testing"

	v1 "github.com/cxinsights/cx-dashboard/internal/api/v1"
	"github.com/cxinsights/cx-dashboard/internal/core/filter"
	"github.com/cxinsights/cx-dashboard/internal/core/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestStore_FilteredRowsNeverNil(t *testing.T) {
	store := NewStore([]v1.Complaint{
		{ID: "C-01", Date: v1.NewDate(2025, 1, 5), Country: "UK", Status: "Open", Value: decimal.NewFromInt(10)},
		{ID: "C-02", Date: v1.NewDate(2025, 1, 6), Country: "UK", Status: "Open", Value: decimal.NewFromInt(20)},
	}, storage.DefaultMetricRules())
	ctx := context.Background()

	tests := []struct {
		name string
		sel  filter.Selection
		page v1.Page
	}{
		{name: "no match", sel: filter.Selection{Countries: []string{"France"}}},
		{name: "offset past end", page: v1.Page{Offset: 2}},
		{name: "offset far past end", page: v1.Page{Offset: 40, Limit: 5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rows, err := store.FilteredRows(ctx, tc.sel, tc.page)
			require.NoError(t, err)
			require.NotNil(t, rows)
			require.Empty(t, rows)

			encoded, err := json.Marshal(rows)
			require.NoError(t, err)
			require.JSONEq(t, `[]`, string(encoded))
		})
	}
}

func TestStore_FilteredRowsPage(t *testing.T) {
	store := NewStore([]v1.Complaint{
		{ID: "C-02", Date: v1.NewDate(2025, 1, 6), Country: "UK", Value: decimal.NewFromInt(20)},
		{ID: "C-01", Date: v1.NewDate(2025, 1, 5), Country: "UK", Value: decimal.NewFromInt(10)},
		{ID: "C-03", Date: v1.NewDate(2025, 1, 6), Country: "USA", Value: decimal.NewFromInt(30)},
	}, storage.DefaultMetricRules())

	rows, err := store.FilteredRows(context.Background(), filter.Selection{}, v1.Page{Offset: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "C-02", rows[0].ID)
}
