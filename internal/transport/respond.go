package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/goaoxor/workbench/internal/domain/admin"
	"github.com/goaoxor/workbench/internal/domain/contract"
	"github.com/goaoxor/workbench/internal/domain/order"
	"github.com/goaoxor/workbench/internal/session"
	"github.com/goaoxor/workbench/internal/store"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: message}})
}

// writeDomainError maps the error taxonomy onto HTTP statuses. Every failed
// operation leaves the store untouched, so all of these are recoverable.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, admin.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid_credentials", err.Error())
	case errors.Is(err, session.ErrNotAuthenticated):
		writeError(w, http.StatusUnauthorized, "not_authenticated", err.Error())
	case errors.Is(err, admin.ErrLastAdminProtected):
		writeError(w, http.StatusForbidden, "last_admin_protected", err.Error())
	case errors.Is(err, admin.ErrSelfDeletionForbidden):
		writeError(w, http.StatusForbidden, "self_deletion_forbidden", err.Error())
	case errors.Is(err, admin.ErrDuplicateUsername):
		writeError(w, http.StatusBadRequest, "duplicate_username", err.Error())
	case errors.Is(err, admin.ErrInvalidOldPassword):
		writeError(w, http.StatusBadRequest, "invalid_old_password", err.Error())
	case errors.Is(err, admin.ErrPasswordTooShort),
		errors.Is(err, admin.ErrPasswordMismatch),
		errors.Is(err, admin.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, order.ErrValueOutOfRange):
		writeError(w, http.StatusBadRequest, "value_out_of_range", err.Error())
	case errors.Is(err, order.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, "invalid_status", err.Error())
	case errors.Is(err, contract.ErrInvalidType):
		writeError(w, http.StatusBadRequest, "invalid_contract_type", err.Error())
	case errors.Is(err, store.ErrMalformedSnapshot):
		writeError(w, http.StatusBadRequest, "malformed_snapshot", err.Error())
	case errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, contract.ErrContractNotFound),
		errors.Is(err, contract.ErrOrderNotFound),
		errors.Is(err, admin.ErrAdminNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal", "internal error")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return false
	}
	return true
}
