package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/dealerdesk/dealerdesk_backend/internal/api/http/middleware"
	"github.com/dealerdesk/dealerdesk_backend/internal/service/notification"
	"github.com/dealerdesk/dealerdesk_backend/pkg/webpush"
)

type PushHandler struct {
	svc  notification.Service
	push *webpush.Client
}

func NewPushHandler(svc notification.Service, push *webpush.Client) *PushHandler {
	return &PushHandler{svc: svc, push: push}
}

// GET /push/public-key
//
// Unauthenticated: the VAPID public key is not a secret and the settings
// page fetches it before the user may have refreshed their token.
func (h *PushHandler) PublicKey(c fiber.Ctx) error {
	return ok(c, fiber.Map{
		"enabled":    h.push.IsEnabled(),
		"public_key": h.push.PublicKey(),
	})
}

// POST /push/subscriptions
func (h *PushHandler) Subscribe(c fiber.Ctx) error {
	claims, claimsOK := middleware.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	var body struct {
		Endpoint string `json:"endpoint"`
		Keys     struct {
			P256dh string `json:"p256dh"`
			Auth   string `json:"auth"`
		} `json:"keys"`
		DeviceLabel    *string    `json:"device_label"`
		ExpirationTime *time.Time `json:"expirationTime"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Endpoint == "" || body.Keys.P256dh == "" || body.Keys.Auth == "" {
		return badRequest(c, "endpoint, keys.p256dh and keys.auth are required")
	}

	sub, err := h.svc.Subscribe(c.Context(), notification.SubscribeRequest{
		UserID:      claims.UserID,
		Endpoint:    body.Endpoint,
		P256dh:      body.Keys.P256dh,
		Auth:        body.Keys.Auth,
		DeviceLabel: body.DeviceLabel,
		ExpiresAt:   body.ExpirationTime,
	})
	if err != nil {
		return mapNotificationError(c, err)
	}

	return created(c, sub)
}

// DELETE /push/subscriptions
func (h *PushHandler) Unsubscribe(c fiber.Ctx) error {
	claims, claimsOK := middleware.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	var body struct {
		Endpoint string `json:"endpoint"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Endpoint == "" {
		return badRequest(c, "endpoint is required")
	}

	if err := h.svc.Unsubscribe(c.Context(), claims.UserID, body.Endpoint); err != nil {
		return mapNotificationError(c, err)
	}

	return noContent(c)
}

// GET /push/subscriptions
func (h *PushHandler) List(c fiber.Ctx) error {
	claims, claimsOK := middleware.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	subs, err := h.svc.Subscriptions(c.Context(), claims.UserID)
	if err != nil {
		return mapNotificationError(c, err)
	}

	return ok(c, subs)
}
