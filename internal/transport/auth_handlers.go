package transport

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/goaoxor/workbench/internal/store"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string `json:"token"`
	Username  string `json:"username"`
	LastLogin string `json:"last_login"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	token, adm, err := s.sessions.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Token:     token,
		Username:  adm.Username,
		LastLogin: adm.LastLogin,
	})
}

// handleListUsernames backs the login form's account picker, so it is the one
// collection readable without a session. Only usernames leave the server.
func (s *Server) handleListUsernames(w http.ResponseWriter, r *http.Request) {
	admins, err := s.admins.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	usernames := make([]string, 0, len(admins))
	for _, a := range admins {
		usernames = append(usernames, a.Username)
	}
	writeJSON(w, http.StatusOK, usernames)
}

// handleLogout exports a snapshot to the snapshot directory before dropping
// the session, mirroring the console's export-on-logout behavior.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	username, _ := CurrentUser(r.Context())

	filename, err := s.exportSnapshotFile(r.Context(), username)
	if err != nil {
		s.logger.Error("logout export failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "snapshot export failed")
		return
	}

	if _, err := s.sessions.Logout(r.Context(), bearerToken(r)); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"exported": filename})
}

// exportSnapshotFile serializes the document before logging the export, so
// the written file never contains its own export entry.
func (s *Server) exportSnapshotFile(ctx context.Context, username string) (string, error) {
	data, err := store.Serialize(s.store.Snapshot())
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.snapshotDir, 0o755); err != nil {
		return "", fmt.Errorf("preparing snapshot dir: %w", err)
	}
	filename := store.ExportFilename(time.Now())
	if err := os.WriteFile(filepath.Join(s.snapshotDir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("writing snapshot: %w", err)
	}

	if err := s.store.AppendLog(ctx, "exported data snapshot", username); err != nil {
		return "", err
	}
	return filename, nil
}
