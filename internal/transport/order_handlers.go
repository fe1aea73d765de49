package transport

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/goaoxor/workbench/internal/domain/order"
)

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	orders, err := s.orders.List(r.Context(), order.Filter{
		ClientName:   q.Get("client"),
		ProviderName: q.Get("provider"),
		Status:       order.Status(q.Get("status")),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

type createOrderRequest struct {
	ClientName   string  `json:"client_name"`
	ClientEmail  string  `json:"client_email"`
	ProjectValue float64 `json:"project_value"`
	ProjectType  string  `json:"project_type"`
	Status       string  `json:"status"`
	Deadline     string  `json:"deadline"`
	ProviderName string  `json:"provider_name"`
	Notes        string  `json:"notes"`
}

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	actor, _ := CurrentUser(r.Context())
	ord, err := s.orders.Create(r.Context(), actor, order.CreateRequest{
		ClientName:   req.ClientName,
		ClientEmail:  req.ClientEmail,
		ProjectValue: req.ProjectValue,
		ProjectType:  req.ProjectType,
		Status:       order.Status(req.Status),
		Deadline:     req.Deadline,
		ProviderName: req.ProviderName,
		Notes:        req.Notes,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ord)
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	ord, err := s.orders.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ord)
}

type editOrderRequest struct {
	ClientName   *string `json:"client_name"`
	ProviderName *string `json:"provider_name"`
	Notes        *string `json:"notes"`
}

func (s *Server) handleEditOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req editOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	actor, _ := CurrentUser(r.Context())
	ord, err := s.orders.Edit(r.Context(), actor, id, order.EditRequest{
		ClientName:   req.ClientName,
		ProviderName: req.ProviderName,
		Notes:        req.Notes,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ord)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) handleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req updateStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	actor, _ := CurrentUser(r.Context())
	ord, err := s.orders.UpdateStatus(r.Context(), actor, id, order.Status(req.Status))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ord)
}

func (s *Server) handleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	actor, _ := CurrentUser(r.Context())
	if err := s.orders.Delete(r.Context(), actor, id); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid id")
		return 0, false
	}
	return id, true
}
