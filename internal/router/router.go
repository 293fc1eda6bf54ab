package router

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	_ "cow-inspection/docs"
	mem "cow-inspection/internal/adapters/storage/memory"
	pg "cow-inspection/internal/adapters/storage/postgres"
	"cow-inspection/internal/domain/cows"
	"cow-inspection/internal/domain/dashboard"
	"cow-inspection/internal/domain/vets"
	"cow-inspection/internal/middleware"
	"cow-inspection/internal/platform/config"
	"cow-inspection/internal/platform/logger"
	"cow-inspection/internal/platform/metrics"
	"cow-inspection/internal/ports/auth"
	"cow-inspection/internal/view"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Sessions emite y verifica tokens. session.Manager cumple ambas.
type Sessions interface {
	auth.SessionIssuer
	auth.AuthVerifier
}

type Options struct {
	Config config.Config

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Sessions Sessions            // requerido
	Hasher   vets.PasswordHasher // requerido

	Logger  logger.Logger    // default: nop
	Metrics *metrics.Metrics // default: registry nuevo
}

func NewRouter(opts Options) http.Handler {
	if opts.Sessions == nil || opts.Hasher == nil {
		panic("router: Sessions and Hasher are required")
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log, m))
	r.Use(middleware.Recover(log))

	r.Get("/health", healthHandler)
	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		vetRepo       vets.Repository
		cowRepo       cows.Repository
		dashboardRepo dashboard.Repository
	)
	if opts.DB != nil {
		vetRepo = pg.NewVetsRepo(opts.DB)
		cowRepo = pg.NewCowsRepo(opts.DB)
		dashboardRepo = pg.NewDashboardRepo(opts.DB)
	} else {
		memCows := mem.NewCowRepo()
		vetRepo = mem.NewVetRepo()
		cowRepo = memCows
		dashboardRepo = mem.NewDashboardRepo(memCows)
	}

	// Services por módulo
	vetsSvc := vets.NewService(vetRepo, opts.Hasher)
	cowsSvc := cows.NewService(cowRepo)
	dashboardSvc := dashboard.NewService(dashboardRepo)

	// Access gate: autenticación -> región. Las rutas HTML redirigen a login.
	authenticate := middleware.Authenticate(opts.Sessions, vetsSvc)
	byRegion := middleware.AuthorizeRegion(cowsSvc, "id")

	apiGate := middleware.GateOptions{Logger: log, Metrics: m}
	pageGate := middleware.GateOptions{Logger: log, Metrics: m, LoginURL: opts.Config.LoginURL}

	authenticated := middleware.Gate(apiGate, authenticate)

	// Rutas por módulo
	vets.RegisterRoutes(r, vetsSvc, vets.RouteDeps{
		Sessions:      opts.Sessions,
		SecureCookies: opts.Config.IsProduction(),
		Authenticated: authenticated,
		Logger:        log,
		Metrics:       m,
	})

	cows.RegisterRoutes(r, cowsSvc, cows.RouteDeps{
		RegistrationURL: opts.Config.RegistrationURL,
		Authenticated:   authenticated,
		CowScoped:       middleware.Gate(apiGate, authenticate, byRegion),
		Page:            middleware.Gate(pageGate, authenticate, byRegion),
		Renderer:        view.NewRenderer(),
		Logger:          log,
		Metrics:         m,
	})

	dashboard.RegisterRoutes(r, dashboardSvc, dashboard.RouteDeps{
		Authenticated: authenticated,
		Logger:        log,
	})

	// Páginas estáticas (login, registro, dashboard)
	if opts.Config.StaticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(opts.Config.StaticDir)))
	}

	return r
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// healthHandler godoc
// @Summary Health check
// @Tags ops
// @Produce json
// @Success 200 {object} healthResponse
// @Router /health [get]
func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(healthResponse{Status: "OK", Timestamp: time.Now().UTC()})
}
