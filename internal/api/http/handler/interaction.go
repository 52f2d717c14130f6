package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/dealerdesk/dealerdesk_backend/internal/api/http/middleware"
	"github.com/dealerdesk/dealerdesk_backend/internal/notify"
	"github.com/dealerdesk/dealerdesk_backend/internal/service/notification"
)

// InteractionHandler receives the interaction callbacks browsers post when
// the user sees, clicks or closes a shown notification.
type InteractionHandler struct {
	svc        notification.Service
	dispatcher *notify.Dispatcher
	log        *slog.Logger
}

func NewInteractionHandler(svc notification.Service, dispatcher *notify.Dispatcher, log *slog.Logger) *InteractionHandler {
	if log == nil {
		log = slog.Default()
	}
	return &InteractionHandler{svc: svc, dispatcher: dispatcher, log: log}
}

// POST /interactions/displayed
func (h *InteractionHandler) Displayed(c fiber.Ctx) error {
	claims, claimsOK := middleware.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	var body struct {
		Payload notify.Payload `json:"payload"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	h.dispatcher.Displayed(c.Context(), claims.UserID.String(), body.Payload)
	return noContent(c)
}

// POST /interactions/clicked
func (h *InteractionHandler) Clicked(c fiber.Ctx) error {
	claims, claimsOK := middleware.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	var body struct {
		Payload notify.Payload `json:"payload"`
		Action  string         `json:"action"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	action := notify.ActionID(body.Action)
	result := h.dispatcher.Clicked(c.Context(), claims.UserID.String(), body.Payload, action)

	// Any click that isn't a dismissal also marks the row read.
	if action != notify.ActionDismiss && body.Payload.ID != "" {
		if notifID, err := uuid.Parse(body.Payload.ID); err == nil {
			if _, err := h.svc.MarkRead(c.Context(), notifID, claims.UserID); err != nil {
				h.log.Warn("interaction: mark read on click failed",
					"notification_id", notifID, "err", err)
			}
		}
	}

	return ok(c, result)
}

// POST /interactions/closed
func (h *InteractionHandler) Closed(c fiber.Ctx) error {
	claims, claimsOK := middleware.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	var body struct {
		Payload notify.Payload `json:"payload"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	h.dispatcher.Closed(c.Context(), claims.UserID.String(), body.Payload)
	return noContent(c)
}
