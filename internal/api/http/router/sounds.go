package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/dealerdesk/dealerdesk_backend/internal/api/http/handler"
)

func (r *Router) registerSoundRoutes(
	api fiber.Router,
	sh *handler.SoundsHandler,
	authRequired fiber.Handler,
) {
	api.Get("/sounds", sh.List, authRequired)
}
