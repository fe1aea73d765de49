package transport_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goaoxor/workbench/internal/domain/admin"
	"github.com/goaoxor/workbench/internal/domain/contract"
	"github.com/goaoxor/workbench/internal/domain/order"
	"github.com/goaoxor/workbench/internal/session"
	"github.com/goaoxor/workbench/internal/store"
	"github.com/goaoxor/workbench/internal/transport"
)

type testEnv struct {
	server      *httptest.Server
	store       *store.Store
	snapshotDir string
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()

	st := store.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	adminSvc := admin.NewService(st, logger)
	require.NoError(t, adminSvc.EnsureDefault(context.Background(), "admin", "123456"))

	snapshotDir := t.TempDir()
	router := transport.NewRouter(transport.Options{
		Admins:      adminSvc,
		Orders:      order.NewService(st, logger),
		Contracts:   contract.NewService(st, st, logger),
		Sessions:    session.NewManager(adminSvc, logger),
		Store:       st,
		SnapshotDir: snapshotDir,
		Logger:      logger,
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return &testEnv{server: srv, store: st, snapshotDir: snapshotDir}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, e.server.URL+path, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func (e *testEnv) login(t *testing.T, username, password string) string {
	t.Helper()
	resp := e.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &body)
	require.NotEmpty(t, body.Token)
	return body.Token
}

func TestAuth_LoginRejectsBadPassword(t *testing.T) {
	env := newEnv(t)
	resp := env.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "admin",
		"password": "wrong",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_UsernamesArePublic(t *testing.T) {
	env := newEnv(t)

	resp := env.do(t, http.MethodGet, "/api/v1/auth/usernames", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var usernames []string
	decodeBody(t, resp, &usernames)
	require.Equal(t, []string{"admin"}, usernames)
}

func TestAuth_ProtectedRoutesRequireToken(t *testing.T) {
	env := newEnv(t)

	resp := env.do(t, http.MethodGet, "/api/v1/orders", "", nil)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/api/v1/orders", "bogus-token", nil)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// The scenario from the console's acceptance checklist: fresh store, add bob,
// login as bob, create a 1000 order, generate a client contract.
func TestScenario_OrderToContract(t *testing.T) {
	env := newEnv(t)
	rootToken := env.login(t, "admin", "123456")

	resp := env.do(t, http.MethodPost, "/api/v1/admins", rootToken, map[string]string{
		"username": "bob", "password": "secret1", "confirm": "secret1",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	bobToken := env.login(t, "bob", "secret1")

	resp = env.do(t, http.MethodPost, "/api/v1/orders", bobToken, map[string]any{
		"client_name":   "Acme Corp",
		"project_value": 1000,
		"project_type":  "web",
		"provider_name": "Dev Team",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var ord order.Order
	decodeBody(t, resp, &ord)
	require.InDelta(t, 80, ord.ClientFee, 1e-9)
	require.InDelta(t, 80, ord.ProviderFee, 1e-9)

	resp = env.do(t, http.MethodPost, "/api/v1/contracts", bobToken, map[string]any{
		"order_id":      ord.ID,
		"contract_type": "client",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var c contract.Contract
	decodeBody(t, resp, &c)
	require.Equal(t, contract.TypeClient, c.ContractType)
	require.InDelta(t, 1000, c.ProjectValue, 1e-9)

	resp = env.do(t, http.MethodGet, "/api/v1/contracts", bobToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var contracts []contract.Contract
	decodeBody(t, resp, &contracts)
	require.Len(t, contracts, 1)
}

func TestOrders_ValidationAndStatusCodes(t *testing.T) {
	env := newEnv(t)
	token := env.login(t, "admin", "123456")

	resp := env.do(t, http.MethodPost, "/api/v1/orders", token, map[string]any{"project_value": 50})
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodPut, "/api/v1/orders/42/status", token, map[string]string{"status": "completed"})
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Idempotent delete of an absent order.
	resp = env.do(t, http.MethodDelete, "/api/v1/orders/42", token, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestAdmins_Protections(t *testing.T) {
	env := newEnv(t)
	token := env.login(t, "admin", "123456")

	resp := env.do(t, http.MethodDelete, "/api/v1/admins/admin", token, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/api/v1/admins", token, map[string]string{
		"username": "bob", "password": "secret1", "confirm": "secret1",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = env.do(t, http.MethodDelete, "/api/v1/admins/admin", token, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = env.do(t, http.MethodDelete, "/api/v1/admins/bob", token, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	// Listing never exposes password digests.
	resp = env.do(t, http.MethodGet, "/api/v1/admins", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	require.NotContains(t, string(raw), "password")
}

func TestSnapshot_ExportImport(t *testing.T) {
	env := newEnv(t)
	token := env.login(t, "admin", "123456")

	resp := env.do(t, http.MethodPost, "/api/v1/orders", token, map[string]any{
		"client_name":   "Acme Corp",
		"project_value": 500,
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/api/v1/snapshot", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Disposition"), "goaoxor_data_")
	exported, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	// Malformed uploads leave the store untouched.
	req, err := http.NewRequest(http.MethodPost, env.server.URL+"/api/v1/snapshot", strings.NewReader(`{"admins":[]}`))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	badResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	badResp.Body.Close()
	require.Equal(t, http.StatusBadRequest, badResp.StatusCode)

	orders := env.store.Snapshot().Orders
	require.Len(t, orders, 1)

	// Re-importing the export restores the document wholesale.
	req, err = http.NewRequest(http.MethodPost, env.server.URL+"/api/v1/snapshot", bytes.NewReader(exported))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	goodResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	goodResp.Body.Close()
	require.Equal(t, http.StatusNoContent, goodResp.StatusCode)

	restored := env.store.Snapshot()
	require.Len(t, restored.Orders, 1)
	require.Equal(t, "Acme Corp", restored.Orders[0].ClientName)
}

// Import is reachable before login: a fresh process only knows the seeded
// default admin, so uploading a snapshot must come first.
func TestSnapshot_ImportBeforeLogin(t *testing.T) {
	env := newEnv(t)

	doc := store.Document{
		Version: store.DocumentVersion,
		Admins: []admin.Administrator{{
			Username:       "carol",
			PasswordDigest: admin.Digest("secret9"),
			LastLogin:      admin.LastLoginNone,
		}},
		Orders:    []order.Order{},
		Contracts: []contract.Contract{},
		Logs:      []store.LogEntry{},
		Settings:  map[string]any{},
	}
	data, err := store.Serialize(doc)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, env.server.URL+"/api/v1/snapshot", bytes.NewReader(data))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	env.login(t, "carol", "secret9")
}

func TestLogout_WritesSnapshotFile(t *testing.T) {
	env := newEnv(t)
	token := env.login(t, "admin", "123456")

	resp := env.do(t, http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Exported string `json:"exported"`
	}
	decodeBody(t, resp, &body)
	require.True(t, strings.HasPrefix(body.Exported, "goaoxor_data_"))

	data, err := os.ReadFile(filepath.Join(env.snapshotDir, body.Exported))
	require.NoError(t, err)
	_, err = store.Deserialize(data)
	require.NoError(t, err)

	// The token is gone after logout.
	resp = env.do(t, http.MethodGet, "/api/v1/orders", token, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestStats_DailyAndCSV(t *testing.T) {
	env := newEnv(t)
	token := env.login(t, "admin", "123456")

	resp := env.do(t, http.MethodPost, "/api/v1/orders", token, map[string]any{
		"client_name":   "Acme Corp",
		"project_value": 1000,
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/api/v1/stats/daily", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var series struct {
		Dates  []string  `json:"dates"`
		Orders []int     `json:"orders"`
		Income []float64 `json:"income"`
	}
	decodeBody(t, resp, &series)
	require.Len(t, series.Dates, 30)
	require.Equal(t, 1, series.Orders[29])
	require.InDelta(t, 160, series.Income[29], 1e-9)

	resp = env.do(t, http.MethodGet, "/api/v1/stats/export", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
	require.Contains(t, resp.Header.Get("Content-Disposition"), "goaoxor_stats_")
	csvData, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(csvData), "date,orders,income\n"))

	resp = env.do(t, http.MethodGet, "/api/v1/stats/daily?days=0", token, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestContracts_DocumentDownload(t *testing.T) {
	env := newEnv(t)
	token := env.login(t, "admin", "123456")

	resp := env.do(t, http.MethodPost, "/api/v1/contracts", token, map[string]any{
		"contract_type": "provider",
		"client_name":   "Acme Corp",
		"provider_name": "Dev Team",
		"project_value": 800,
		"service_type":  "web",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var c contract.Contract
	decodeBody(t, resp, &c)

	resp = env.do(t, http.MethodGet, "/api/v1/contracts/1/document", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	require.Contains(t, string(body), contract.BoilerplateClause)

	resp = env.do(t, http.MethodGet, "/api/v1/contracts/42/document", token, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
