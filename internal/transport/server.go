package transport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/goaoxor/workbench/internal/domain/admin"
	"github.com/goaoxor/workbench/internal/domain/contract"
	"github.com/goaoxor/workbench/internal/domain/order"
	"github.com/goaoxor/workbench/internal/session"
	"github.com/goaoxor/workbench/internal/store"
)

// Server wires HTTP handlers over the workbench services.
type Server struct {
	admins      *admin.Service
	orders      *order.Service
	contracts   *contract.Service
	sessions    *session.Manager
	store       *store.Store
	snapshotDir string
	logger      *slog.Logger
}

// Options configures the HTTP server.
type Options struct {
	Admins      *admin.Service
	Orders      *order.Service
	Contracts   *contract.Service
	Sessions    *session.Manager
	Store       *store.Store
	SnapshotDir string
	EnableCORS  bool
	Logger      *slog.Logger
}

// NewRouter creates the API router with middleware.
func NewRouter(opts Options) *chi.Mux {
	s := &Server{
		admins:      opts.Admins,
		orders:      opts.Orders,
		contracts:   opts.Contracts,
		sessions:    opts.Sessions,
		store:       opts.Store,
		snapshotDir: opts.SnapshotDir,
		logger:      opts.Logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	if opts.EnableCORS {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			MaxAge:         300,
		}))
	}

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", s.handleLogin)
		r.Get("/auth/usernames", s.handleListUsernames)
		// Import precedes login: a fresh process must accept a snapshot
		// before anyone can authenticate against its administrators.
		r.Post("/snapshot", s.handleSnapshotImport)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware(s.sessions))

			r.Post("/auth/logout", s.handleLogout)

			r.Route("/admins", func(r chi.Router) {
				r.Get("/", s.handleListAdmins)
				r.Post("/", s.handleCreateAdmin)
				r.Post("/password", s.handleChangePassword)
				r.Delete("/{username}", s.handleDeleteAdmin)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", s.handleListOrders)
				r.Post("/", s.handleCreateOrder)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", s.handleGetOrder)
					r.Patch("/", s.handleEditOrder)
					r.Put("/status", s.handleUpdateOrderStatus)
					r.Delete("/", s.handleDeleteOrder)
				})
			})

			r.Route("/contracts", func(r chi.Router) {
				r.Get("/", s.handleListContracts)
				r.Post("/", s.handleGenerateContract)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", s.handleGetContract)
					r.Patch("/", s.handleEditContract)
					r.Delete("/", s.handleDeleteContract)
					r.Get("/document", s.handleContractDocument)
				})
			})

			r.Get("/logs", s.handleListLogs)

			r.Route("/stats", func(r chi.Router) {
				r.Get("/daily", s.handleDailyStats)
				r.Get("/export", s.handleStatsExport)
			})

			r.Get("/snapshot", s.handleSnapshotExport)
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
