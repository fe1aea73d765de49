package stats

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

// WriteCSV renders the series as `date,orders,income` rows, income to two
// decimal places.
func WriteCSV(w io.Writer, series DailySeries) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "orders", "income"}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for i, date := range series.Dates {
		row := []string{
			date,
			strconv.Itoa(series.OrderCounts[i]),
			fmt.Sprintf("%.2f", series.Income[i]),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// CSVFilename derives the download name for a statistics export taken at t.
func CSVFilename(t time.Time) string {
	return fmt.Sprintf("goaoxor_stats_%s.csv", t.Format("20060102_150405"))
}
