package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/dealerdesk/dealerdesk_backend/internal/api/http/handler"
)

func (r *Router) registerOfflineRoutes(
	app *fiber.App,
	api fiber.Router,
	oh *handler.OfflineHandler,
	authRequired fiber.Handler,
) {
	ofl := api.Group("/offline", authRequired)
	ofl.Get("/status", oh.Status)
	ofl.Post("/message", oh.Message)

	// Catch-all gateway for the app shell. Registered last: anything the
	// API didn't claim flows through the cache policy pipeline.
	app.Get("/*", oh.Serve)
}
