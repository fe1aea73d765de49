package transport

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/goaoxor/workbench/internal/domain/order"
	"github.com/goaoxor/workbench/internal/stats"
)

func (s *Server) handleDailyStats(w http.ResponseWriter, r *http.Request) {
	days := stats.DefaultWindowDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "bad_request", "days must be a positive integer")
			return
		}
		days = parsed
	}

	orders, err := s.orders.List(r.Context(), order.Filter{})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats.BuildDailySeries(orders, days))
}

func (s *Server) handleStatsExport(w http.ResponseWriter, r *http.Request) {
	orders, err := s.orders.List(r.Context(), order.Filter{})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	series := stats.BuildDailySeries(orders, stats.DefaultWindowDays)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", stats.CSVFilename(time.Now())))
	if err := stats.WriteCSV(w, series); err != nil {
		s.logger.Error("stats export failed", "error", err)
	}
}

func (s *Server) handleListLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := s.store.Logs(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, logs)
}
