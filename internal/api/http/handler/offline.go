package handler

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/dealerdesk/dealerdesk_backend/pkg/offline"
)

// OfflineHandler is the caching gateway edge: every app-shell GET funnels
// through the interceptor, which serves live, cached or fallback bytes
// depending on connectivity.
type OfflineHandler struct {
	itc *offline.Interceptor
	mgr *offline.Manager
}

func NewOfflineHandler(itc *offline.Interceptor, mgr *offline.Manager) *OfflineHandler {
	return &OfflineHandler{itc: itc, mgr: mgr}
}

// Serve resolves one GET through the cache policy pipeline. Registered as
// the catch-all route, after every API route.
func (h *OfflineHandler) Serve(c fiber.Ctx) error {
	// Path-only URLs keep gateway keys identical to precache keys.
	u, err := url.ParseRequestURI(c.OriginalURL())
	if err != nil {
		return badRequest(c, "invalid request url")
	}

	req := &offline.Request{
		Method:     c.Method(),
		URL:        u,
		Accept:     c.Get("Accept"),
		Navigation: isNavigation(c),
	}

	entry := h.itc.Resolve(c.Context(), req)

	for k, vals := range entry.Header {
		for _, v := range vals {
			c.Append(k, v)
		}
	}
	return c.Status(entry.Status).Send(entry.Body)
}

// POST /offline/message
//
// Control-message endpoint: the app shell posts {"type":"SKIP_WAITING"} to
// promote a freshly installed cache generation immediately.
func (h *OfflineHandler) Message(c fiber.Ctx) error {
	if err := h.mgr.HandleMessage(c.Context(), c.Body()); err != nil {
		return badRequest(c, err.Error())
	}
	return noContent(c)
}

// GET /offline/status
func (h *OfflineHandler) Status(c fiber.Ctx) error {
	generations, err := h.mgr.Generations(c.Context())
	if err != nil {
		return internalError(c)
	}
	return ok(c, fiber.Map{
		"version":     h.mgr.Version(),
		"controlling": h.mgr.Controlling(),
		"generations": generations,
	})
}

func isNavigation(c fiber.Ctx) bool {
	if c.Get("Sec-Fetch-Mode") == "navigate" {
		return true
	}
	return strings.Contains(c.Get("Accept"), "text/html")
}
