package stats_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/goaoxor/workbench/internal/stats"
)

func TestWriteCSV(t *testing.T) {
	series := stats.DailySeries{
		Dates:       []string{"2026-08-29", "2026-08-30"},
		OrderCounts: []int{0, 2},
		Income:      []float64{0, 160.5},
	}

	var b strings.Builder
	require.NoError(t, stats.WriteCSV(&b, series))

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "date,orders,income", lines[0])
	require.Equal(t, "2026-08-29,0,0.00", lines[1])
	require.Equal(t, "2026-08-30,2,160.50", lines[2])
}

func TestCSVFilename(t *testing.T) {
	at := time.Date(2026, 8, 30, 14, 5, 9, 0, time.UTC)
	require.Equal(t, "goaoxor_stats_20260830_140509.csv", stats.CSVFilename(at))
}
