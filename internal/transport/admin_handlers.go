package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/goaoxor/workbench/internal/domain/admin"
)

type adminView struct {
	Username  string `json:"username"`
	LastLogin string `json:"lastLogin"`
}

func (s *Server) handleListAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := s.admins.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	// Digests stay server-side.
	views := make([]adminView, 0, len(admins))
	for _, a := range admins {
		views = append(views, adminView{Username: a.Username, LastLogin: a.LastLogin})
	}
	writeJSON(w, http.StatusOK, views)
}

type createAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Confirm  string `json:"confirm"`
}

func (s *Server) handleCreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req createAdminRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	actor, _ := CurrentUser(r.Context())
	adm, err := s.admins.Create(r.Context(), actor, admin.CreateRequest{
		Username: req.Username,
		Password: req.Password,
		Confirm:  req.Confirm,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, adminView{Username: adm.Username, LastLogin: adm.LastLogin})
}

func (s *Server) handleDeleteAdmin(w http.ResponseWriter, r *http.Request) {
	actor, _ := CurrentUser(r.Context())
	if err := s.admins.Remove(r.Context(), actor, chi.URLParam(r, "username")); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
	Confirm     string `json:"confirm"`
}

func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	username, _ := CurrentUser(r.Context())
	err := s.admins.ChangePassword(r.Context(), username, req.OldPassword, req.NewPassword, req.Confirm)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
