package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/ortholab/depisto_backend/config"
	"github.com/ortholab/depisto_backend/internal/api/http/handler"
	"github.com/ortholab/depisto_backend/internal/api/http/middleware"
	"github.com/ortholab/depisto_backend/internal/service/auth"
	"github.com/ortholab/depisto_backend/internal/service/bilan"
	"github.com/ortholab/depisto_backend/internal/service/catalog"
	"github.com/ortholab/depisto_backend/internal/service/passation"
	"github.com/ortholab/depisto_backend/internal/service/patient"
	"github.com/ortholab/depisto_backend/internal/service/patientaccount"
	"github.com/ortholab/depisto_backend/internal/service/prescription"
	"github.com/ortholab/depisto_backend/internal/service/user"
	"github.com/ortholab/depisto_backend/pkg/authorize"
	pasetotoken "github.com/ortholab/depisto_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg             *config.Config
	Redis           *redis.Client
	Auth            authorize.IAuthorization
	UserSvc         user.Service
	AuthSvc         auth.Service
	PatientSvc      patient.Service
	AccountSvc      patientaccount.Service
	CatalogSvc      catalog.Service
	PrescriptionSvc prescription.Service
	PassationSvc    passation.Service
	BilanSvc        bilan.Service
	PasetoMgr       *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)

	// Permission helper
	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc)
	userH := handler.NewUserHandler(r.p.UserSvc)
	patientH := handler.NewPatientHandler(r.p.PatientSvc)
	accountH := handler.NewAccountHandler(r.p.AccountSvc)
	catalogH := handler.NewCatalogHandler(r.p.CatalogSvc)
	prescriptionH := handler.NewPrescriptionHandler(r.p.PrescriptionSvc)
	passationH := handler.NewPassationHandler(r.p.PassationSvc)
	bilanH := handler.NewBilanHandler(r.p.BilanSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, authRequired)
	r.registerUserRoutes(api, userH, authRequired, requirePerm)
	r.registerPortalRoutes(api, accountH)
	r.registerPatientRoutes(api, patientH, accountH, prescriptionH, bilanH, authRequired, requirePerm)
	r.registerCatalogRoutes(api, catalogH, authRequired, requirePerm)
	r.registerPrescriptionRoutes(api, prescriptionH, passationH, bilanH, authRequired, requirePerm)
	r.registerPassationRoutes(api, passationH, bilanH, authRequired, requirePerm)
	r.registerBilanRoutes(api, bilanH, authRequired, requirePerm)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
