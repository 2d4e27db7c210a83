package render

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	v1 "github.com/cxinsights/cx-dashboard/internal/api/v1"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var testOptions = Options{Width: 640, Height: 320}

// TestTimeSeriesCharts renders both date charts from the same cumulative points.
func TestTimeSeriesCharts(t *testing.T) {
	tests := []struct {
		name   string
		points []v1.CumulativePoint
	}{
		{
			name: "single point is padded",
			points: []v1.CumulativePoint{
				{Date: v1.NewDate(2025, time.January, 5), DailyCount: 1, DailyValue: decimal.NewFromInt(10), CumulativeValue: decimal.NewFromInt(10)},
			},
		},
		{
			name: "several points",
			points: []v1.CumulativePoint{
				{Date: v1.NewDate(2025, time.January, 5), DailyCount: 1, DailyValue: decimal.NewFromInt(10), CumulativeValue: decimal.NewFromInt(10)},
				{Date: v1.NewDate(2025, time.February, 1), DailyCount: 2, DailyValue: decimal.NewFromInt(20), CumulativeValue: decimal.NewFromInt(30)},
				{Date: v1.NewDate(2025, time.March, 9), DailyCount: 1, DailyValue: decimal.Zero, CumulativeValue: decimal.NewFromInt(30)},
			},
		},
		{
			name: "all zero values",
			points: []v1.CumulativePoint{
				{Date: v1.NewDate(2025, time.January, 5), DailyCount: 1, DailyValue: decimal.Zero, CumulativeValue: decimal.Zero},
				{Date: v1.NewDate(2025, time.January, 6), DailyCount: 1, DailyValue: decimal.Zero, CumulativeValue: decimal.Zero},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, CumulativeChart(&buf, tc.points, testOptions))
			requirePNG(t, buf.Bytes(), testOptions.Width, testOptions.Height)

			buf.Reset()
			require.NoError(t, DailyCountChart(&buf, tc.points, testOptions))
			requirePNG(t, buf.Bytes(), testOptions.Width, testOptions.Height)
		})
	}
}

func TestRankingChart(t *testing.T) {
	groups := []v1.RankedGroup{
		{Dimension: v1.DimensionCountry, Value: "UK", Count: 5, Rank: 1},
		{Dimension: v1.DimensionCountry, Value: "USA", Count: 5, Rank: 1},
		{Dimension: v1.DimensionCountry, Value: "Japan", Count: 1, Rank: 3},
	}

	var buf bytes.Buffer
	require.NoError(t, RankingChart(&buf, groups, testOptions))
	requirePNG(t, buf.Bytes(), testOptions.Width, testOptions.Height)
}

func TestKPITiles(t *testing.T) {
	tiles := []Tile{
		{Label: "Total complaints", Value: "1,234"},
		{Label: "Escalation rate", Value: "12.5%"},
		{Label: "Avg SLA (h)", Value: "—"},
		{Label: "Total value", Value: "$12,345"},
	}

	var buf bytes.Buffer
	require.NoError(t, KPITiles(&buf, tiles, testOptions))

	cfg, err := png.DecodeConfig(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, testOptions.Width, cfg.Width)
}

func TestEmptyInputIsNoData(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, CumulativeChart(&buf, nil, testOptions), ErrNoData)
	require.ErrorIs(t, DailyCountChart(&buf, []v1.CumulativePoint{}, testOptions), ErrNoData)
	require.ErrorIs(t, RankingChart(&buf, []v1.RankedGroup{}, testOptions), ErrNoData)
	require.ErrorIs(t, KPITiles(&buf, nil, testOptions), ErrNoData)
	require.Zero(t, buf.Len())
}

func TestOptionsDefaults(t *testing.T) {
	got := Options{}.normalized()
	require.Equal(t, 800, got.Width)
	require.Equal(t, 400, got.Height)
}

func requirePNG(t *testing.T, data []byte, width, height int) {
	t.Helper()
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, width, cfg.Width)
	require.Equal(t, height, cfg.Height)
}
