package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/dealerdesk/dealerdesk_backend/internal/api/http/handler"
)

func (r *Router) registerInteractionRoutes(
	api fiber.Router,
	ih *handler.InteractionHandler,
	authRequired fiber.Handler,
) {
	interactions := api.Group("/interactions", authRequired)

	interactions.Post("/displayed", ih.Displayed)
	interactions.Post("/clicked", ih.Clicked)
	interactions.Post("/closed", ih.Closed)
}
