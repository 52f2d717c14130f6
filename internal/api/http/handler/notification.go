package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/dealerdesk/dealerdesk_backend/internal/api/http/middleware"
	"github.com/dealerdesk/dealerdesk_backend/internal/notify"
	"github.com/dealerdesk/dealerdesk_backend/internal/service/notification"
)

type NotificationHandler struct {
	svc notification.Service
}

func NewNotificationHandler(svc notification.Service) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

func mapNotificationError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, notification.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, notification.ErrInvalidType),
		errors.Is(err, notification.ErrInvalidPriority),
		errors.Is(err, notification.ErrInvalidExpiry):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /notifications
func (h *NotificationHandler) Create(c fiber.Ctx) error {
	claims, claimsOK := middleware.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	var body struct {
		UserID    string         `json:"user_id"`
		Type      string         `json:"type"`
		Priority  string         `json:"priority"`
		Title     string         `json:"title"`
		Body      *string        `json:"body"`
		Link      *string        `json:"link"`
		EntityID  *string        `json:"entity_id"`
		Data      map[string]any `json:"data"`
		ExpiresAt *time.Time     `json:"expires_at"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Title == "" {
		return badRequest(c, "title is required")
	}

	// Default the target to the caller; cross-user creation is for the
	// main app's service token.
	userID := claims.UserID
	if body.UserID != "" {
		parsed, err := uuid.Parse(body.UserID)
		if err != nil {
			return badRequest(c, "invalid user_id")
		}
		userID = parsed
	}

	n, err := h.svc.Create(c.Context(), notification.CreateRequest{
		UserID:    userID,
		Type:      notify.Type(body.Type),
		Priority:  notify.Priority(body.Priority),
		Title:     body.Title,
		Body:      body.Body,
		Link:      body.Link,
		EntityID:  body.EntityID,
		Data:      body.Data,
		ExpiresAt: body.ExpiresAt,
	})
	if err != nil {
		return mapNotificationError(c, err)
	}

	return created(c, n)
}

// GET /notifications
func (h *NotificationHandler) List(c fiber.Ctx) error {
	claims, claimsOK := middleware.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	var q struct {
		UnreadOnly bool `query:"unread_only"`
		Page       int  `query:"page"`
		PerPage    int  `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	notifs, err := h.svc.List(c.Context(), claims.UserID, q.UnreadOnly, q.Page, q.PerPage)
	if err != nil {
		return mapNotificationError(c, err)
	}

	return ok(c, notifs)
}

// GET /notifications/unread-count
func (h *NotificationHandler) UnreadCount(c fiber.Ctx) error {
	claims, claimsOK := middleware.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	count, err := h.svc.UnreadCount(c.Context(), claims.UserID)
	if err != nil {
		return mapNotificationError(c, err)
	}

	return ok(c, fiber.Map{"count": count})
}

// PATCH /notifications/:id/read
func (h *NotificationHandler) MarkRead(c fiber.Ctx) error {
	claims, claimsOK := middleware.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	notifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid notification id")
	}

	n, err := h.svc.MarkRead(c.Context(), notifID, claims.UserID)
	if err != nil {
		return mapNotificationError(c, err)
	}

	return ok(c, n)
}

// PATCH /notifications/read-all
func (h *NotificationHandler) MarkAllRead(c fiber.Ctx) error {
	claims, claimsOK := middleware.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	if err := h.svc.MarkAllRead(c.Context(), claims.UserID); err != nil {
		return mapNotificationError(c, err)
	}

	return noContent(c)
}

// DELETE /notifications/:id
func (h *NotificationHandler) Delete(c fiber.Ctx) error {
	claims, claimsOK := middleware.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	notifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid notification id")
	}

	if err := h.svc.Delete(c.Context(), notifID, claims.UserID); err != nil {
		return mapNotificationError(c, err)
	}

	return noContent(c)
}

// GET /users/me/notification-prefs
func (h *NotificationHandler) GetPrefs(c fiber.Ctx) error {
	claims, claimsOK := middleware.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	prefs, err := h.svc.GetPrefs(c.Context(), claims.UserID)
	if err != nil {
		return mapNotificationError(c, err)
	}

	return ok(c, prefs)
}

// PUT /users/me/notification-prefs
func (h *NotificationHandler) UpdatePrefs(c fiber.Ctx) error {
	claims, claimsOK := middleware.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	var body struct {
		Matrix             notify.Matrix     `json:"matrix"`
		SoundVolume        *float64          `json:"sound_volume"`
		RequireInteraction *bool             `json:"require_interaction"`
		OnlyWhenHidden     *bool             `json:"only_when_hidden"`
		Sounds             map[string]string `json:"sounds"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.SoundVolume != nil && (*body.SoundVolume < 0 || *body.SoundVolume > 1) {
		return badRequest(c, "sound_volume must be between 0 and 1")
	}

	prefs, err := h.svc.UpsertPrefs(c.Context(), claims.UserID, notification.UpsertPrefsRequest{
		Matrix:             body.Matrix,
		SoundVolume:        body.SoundVolume,
		RequireInteraction: body.RequireInteraction,
		OnlyWhenHidden:     body.OnlyWhenHidden,
		Sounds:             body.Sounds,
	})
	if err != nil {
		return mapNotificationError(c, err)
	}

	return ok(c, prefs)
}
