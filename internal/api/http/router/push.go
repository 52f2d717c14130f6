package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/dealerdesk/dealerdesk_backend/internal/api/http/handler"
)

func (r *Router) registerPushRoutes(
	api fiber.Router,
	ph *handler.PushHandler,
	authRequired fiber.Handler,
) {
	push := api.Group("/push")

	// Key discovery happens before login on the settings page.
	push.Get("/public-key", ph.PublicKey)

	subs := push.Group("/subscriptions", authRequired)
	subs.Get("/", ph.List)
	subs.Post("/", ph.Subscribe)
	subs.Delete("/", ph.Unsubscribe)
}
