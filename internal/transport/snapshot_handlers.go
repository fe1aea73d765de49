package transport

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goaoxor/workbench/internal/store"
)

const maxSnapshotBytes = 32 << 20

func (s *Server) handleSnapshotExport(w http.ResponseWriter, r *http.Request) {
	// Serialize before logging so the file doesn't contain its own export entry.
	data, err := store.Serialize(s.store.Snapshot())
	if err != nil {
		s.logger.Error("snapshot export failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "snapshot export failed")
		return
	}

	username, _ := CurrentUser(r.Context())
	if err := s.store.AppendLog(r.Context(), "exported data snapshot", username); err != nil {
		writeError(w, http.StatusInternalServerError, "internal", "internal error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", store.ExportFilename(time.Now())))
	_, _ = w.Write(data)
}

// handleSnapshotImport replaces the whole document with the uploaded one.
// A snapshot that fails the structural check leaves the store untouched.
func (s *Server) handleSnapshotImport(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxSnapshotBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "reading snapshot body failed")
		return
	}

	doc, err := store.Deserialize(data)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if err := s.store.Replace(r.Context(), doc); err != nil {
		writeError(w, http.StatusInternalServerError, "internal", "internal error")
		return
	}

	s.logger.Info("snapshot imported",
		"admins", len(doc.Admins),
		"orders", len(doc.Orders),
		"contracts", len(doc.Contracts))
	w.WriteHeader(http.StatusNoContent)
}
