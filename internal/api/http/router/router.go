package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/dealerdesk/dealerdesk_backend/config"
	"github.com/dealerdesk/dealerdesk_backend/internal/api/http/handler"
	"github.com/dealerdesk/dealerdesk_backend/internal/api/http/middleware"
	"github.com/dealerdesk/dealerdesk_backend/internal/notify"
	"github.com/dealerdesk/dealerdesk_backend/internal/service/notification"
	"github.com/dealerdesk/dealerdesk_backend/pkg/offline"
	s3pkg "github.com/dealerdesk/dealerdesk_backend/pkg/s3"
	"github.com/dealerdesk/dealerdesk_backend/pkg/webpush"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg             *config.Config
	Redis           *redis.Client
	NotificationSvc notification.Service
	Dispatcher      *notify.Dispatcher
	Push            *webpush.Client
	S3              *s3pkg.Client        `optional:"true"`
	Interceptor     *offline.Interceptor `optional:"true"`
	OfflineMgr      *offline.Manager     `optional:"true"`
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
	authRequired := middleware.AuthRequired(r.p.Cfg.Auth)

	// 3. Initialize Handlers
	notificationH := handler.NewNotificationHandler(r.p.NotificationSvc)
	pushH := handler.NewPushHandler(r.p.NotificationSvc, r.p.Push)
	interactionH := handler.NewInteractionHandler(r.p.NotificationSvc, r.p.Dispatcher, nil)
	eventsH := handler.NewEventsHandler(r.p.Redis, nil)
	soundsH := handler.NewSoundsHandler(r.p.Cfg.Sounds, r.p.S3, nil)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerNotificationRoutes(api, notificationH, eventsH, authRequired)
	r.registerPushRoutes(api, pushH, authRequired)
	r.registerInteractionRoutes(api, interactionH, authRequired)
	r.registerSoundRoutes(api, soundsH, authRequired)

	// 5. Offline gateway mounts last so the catch-all never shadows the API.
	if r.p.Cfg.Offline.Enabled && r.p.Interceptor != nil && r.p.OfflineMgr != nil {
		r.registerOfflineRoutes(app, api, handler.NewOfflineHandler(r.p.Interceptor, r.p.OfflineMgr), authRequired)
	}
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
