package handler

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/dealerdesk/dealerdesk_backend/config"
	"github.com/dealerdesk/dealerdesk_backend/internal/api/http/middleware"
	s3pkg "github.com/dealerdesk/dealerdesk_backend/pkg/s3"
)

const soundKeyPrefix = "sounds/"

// SoundsHandler serves the catalog of notification sound assets. The files
// themselves live in object storage; browsers fetch them through short-lived
// presigned URLs.
type SoundsHandler struct {
	cfg config.SoundsConfig
	s3  *s3pkg.Client
	log *slog.Logger
}

func NewSoundsHandler(cfg config.SoundsConfig, s3 *s3pkg.Client, log *slog.Logger) *SoundsHandler {
	if log == nil {
		log = slog.Default()
	}
	return &SoundsHandler{cfg: cfg, s3: s3, log: log}
}

// GET /sounds
func (h *SoundsHandler) List(c fiber.Ctx) error {
	if _, claimsOK := middleware.ClaimsFromFiber(c); !claimsOK {
		return unauthorized(c)
	}

	if !h.cfg.Enabled || h.s3 == nil {
		return ok(c, []any{})
	}

	type sound struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	}

	out := make([]sound, 0, len(h.cfg.Catalog))
	for _, name := range h.cfg.Catalog {
		url, err := h.s3.PresignDownload(c.Context(), soundKeyPrefix+name)
		if err != nil {
			h.log.Warn("sounds: presign failed", "name", name, "err", err)
			continue
		}
		out = append(out, sound{Name: strings.TrimSuffix(name, ".mp3"), URL: url})
	}

	return ok(c, out)
}
