package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/dealerdesk/dealerdesk_backend/internal/api/http/handler"
)

func (r *Router) registerNotificationRoutes(
	api fiber.Router,
	nh *handler.NotificationHandler,
	eh *handler.EventsHandler,
	authRequired fiber.Handler,
) {
	notifs := api.Group("/notifications", authRequired)

	notifs.Get("/", nh.List)
	notifs.Post("/", nh.Create)
	notifs.Get("/unread-count", nh.UnreadCount)
	notifs.Patch("/read-all", nh.MarkAllRead)
	notifs.Patch("/:id/read", nh.MarkRead)
	notifs.Delete("/:id", nh.Delete)

	// Live lifecycle event stream, one per open tab
	api.Get("/events", eh.Stream, authRequired)

	// Notification preferences nested under /users/me
	me := api.Group("/users/me", authRequired)
	me.Get("/notification-prefs", nh.GetPrefs)
	me.Put("/notification-prefs", nh.UpdatePrefs)
}
