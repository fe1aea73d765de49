// Package stats derives the time-bucketed statistics shown on the dashboard.
// It only reads order data; nothing here mutates the store.
package stats

import (
	"time"

	"github.com/goaoxor/workbench/internal/domain/order"
)

// DefaultWindowDays is the dashboard's statistics window.
const DefaultWindowDays = 30

const dateKeyFormat = "2006-01-02"

// DailySeries is a fixed-length per-day aggregation ending today. Income for a
// day is the sum of client and provider fees of orders created that day.
type DailySeries struct {
	Dates       []string  `json:"dates"`
	OrderCounts []int     `json:"orders"`
	Income      []float64 `json:"income"`
}

// BuildDailySeries aggregates orders into the last `days` consecutive UTC
// calendar dates, ascending. Orders created outside the window contribute to
// no bucket.
func BuildDailySeries(orders []order.Order, days int) DailySeries {
	if days <= 0 {
		days = DefaultWindowDays
	}
	return buildSeries(time.Now().UTC(), orders, days)
}

func buildSeries(now time.Time, orders []order.Order, days int) DailySeries {
	series := DailySeries{
		Dates:       make([]string, days),
		OrderCounts: make([]int, days),
		Income:      make([]float64, days),
	}

	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		key := now.AddDate(0, 0, i-(days-1)).Format(dateKeyFormat)
		series.Dates[i] = key
		index[key] = i
	}

	for _, ord := range orders {
		if ord.CreatedAtISO == "" {
			continue
		}
		key := ord.CreatedAtISO
		if len(key) > len(dateKeyFormat) {
			key = key[:len(dateKeyFormat)]
		}
		i, ok := index[key]
		if !ok {
			continue
		}
		series.OrderCounts[i]++
		series.Income[i] += ord.ClientFee + ord.ProviderFee
	}

	return series
}
