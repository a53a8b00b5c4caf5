package router

import (
	"database/sql"
	"net/http"

	_ "medication-tracker/docs"

	mem "medication-tracker/internal/adapters/storage/memory"
	pg "medication-tracker/internal/adapters/storage/postgres"
	"medication-tracker/internal/domain/insights"
	"medication-tracker/internal/domain/records"
	"medication-tracker/internal/middleware"
	"medication-tracker/internal/platform/logger"
	"medication-tracker/internal/platform/metrics"
	"medication-tracker/internal/ports/auth"
	"medication-tracker/internal/ports/completion"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Backend explícito (bbolt, fake de test). Si no viene y hay DB, usa
	// Postgres. Si no, in-memory.
	Backend records.Backend
	DB      *sql.DB

	// Proveedor de insights. Puede ser nil: /insights responde 500.
	Completer completion.Completer

	Logger  logger.Logger
	Metrics *metrics.Collector

	CORSAllowedOrigins []string
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLog(log, opts.Metrics))

	if len(opts.CORSAllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   opts.CORSAllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Debug-User-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if opts.Metrics != nil {
		r.Handle("/metrics", opts.Metrics.Handler())
	}

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	backend := opts.Backend
	if backend == nil {
		if opts.DB != nil {
			backend = pg.NewRecordsBackend(opts.DB)
		} else {
			backend = mem.NewRecordsBackend()
		}
	}

	completer := opts.Completer
	if completer == nil {
		completer = unavailableCompleter{}
	}

	// Services por módulo
	store := records.NewStore(backend, records.StoreOptions{Logger: log, Metrics: opts.Metrics})
	recordsSvc := records.NewService(store)
	insightsSvc := insights.NewService(completer, insights.Options{Logger: log, Metrics: opts.Metrics})

	// Rutas por módulo
	records.RegisterRoutes(r, recordsSvc)
	insights.RegisterRoutes(r, insightsSvc, recordsSvc)

	return r
}
