package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dealerdesk/dealerdesk_backend/config"
)

const CtxKeyClaims = "auth_claims"

// Claims is the token payload issued by the main BDC application. This
// service only verifies; it never signs.
type Claims struct {
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email,omitempty"`
	Phone  string    `json:"phone,omitempty"`
	jwt.RegisteredClaims
}

// AuthRequired validates a Bearer JWT signed with the shared HS256 secret.
// On success, stores *Claims in c.Locals(CtxKeyClaims).
func AuthRequired(cfg config.AuthConfig) fiber.Handler {
	keyFunc := func(t *jwt.Token) (any, error) {
		return []byte(cfg.JWTSecret), nil
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256"})}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}

	return func(c fiber.Ctx) error {
		h := c.Get("Authorization")
		if h == "" {
			return fiber.ErrUnauthorized
		}

		parts := strings.SplitN(h, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.ErrUnauthorized
		}

		token, err := jwt.ParseWithClaims(strings.TrimSpace(parts[1]), &Claims{}, keyFunc, opts...)
		if err != nil || !token.Valid {
			return fiber.ErrUnauthorized
		}

		claims, claimsOK := token.Claims.(*Claims)
		if !claimsOK || claims.UserID == uuid.Nil {
			return fiber.ErrUnauthorized
		}

		c.Locals(CtxKeyClaims, claims)
		return c.Next()
	}
}

// ClaimsFromFiber retrieves the verified claims from Fiber locals.
func ClaimsFromFiber(c fiber.Ctx) (*Claims, bool) {
	claims, ok := c.Locals(CtxKeyClaims).(*Claims)
	return claims, ok && claims != nil
}
