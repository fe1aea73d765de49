package transport

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/goaoxor/workbench/internal/domain/contract"
)

func (s *Server) handleListContracts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	orderID, _ := strconv.Atoi(q.Get("order_id"))
	contracts, err := s.contracts.List(r.Context(), contract.Filter{
		ClientName:   q.Get("client"),
		ProviderName: q.Get("provider"),
		OrderID:      orderID,
		Date:         q.Get("date"),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contracts)
}

type generateContractRequest struct {
	OrderID      int     `json:"order_id"`
	ContractType string  `json:"contract_type"`
	ClientName   string  `json:"client_name"`
	ProviderName string  `json:"provider_name"`
	ProjectValue float64 `json:"project_value"`
	ServiceType  string  `json:"service_type"`
}

func (s *Server) handleGenerateContract(w http.ResponseWriter, r *http.Request) {
	var req generateContractRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	actor, _ := CurrentUser(r.Context())
	c, err := s.contracts.Generate(r.Context(), actor, contract.GenerateRequest{
		OrderID:      req.OrderID,
		Type:         contract.Type(req.ContractType),
		ClientName:   req.ClientName,
		ProviderName: req.ProviderName,
		ProjectValue: req.ProjectValue,
		ServiceType:  req.ServiceType,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) handleGetContract(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	c, err := s.contracts.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

type editContractRequest struct {
	ClientName   *string `json:"client_name"`
	ProviderName *string `json:"provider_name"`
}

func (s *Server) handleEditContract(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req editContractRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	actor, _ := CurrentUser(r.Context())
	c, err := s.contracts.Edit(r.Context(), actor, id, contract.EditRequest{
		ClientName:   req.ClientName,
		ProviderName: req.ProviderName,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleDeleteContract(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	actor, _ := CurrentUser(r.Context())
	if err := s.contracts.Delete(r.Context(), actor, id); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleContractDocument serves the plain-text body the PDF collaborator
// renders, with the same derived filename the console used.
func (s *Server) handleContractDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	c, err := s.contracts.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", contract.DocumentFilename(c)))
	_, _ = w.Write([]byte(contract.RenderDocument(c)))
}
