// Package middleware holds the fiber middleware shared by the web APIs.
package middleware

import (
	"strings"

	"github.com/amirasaad/payflow/pkg/config"
	"github.com/amirasaad/payflow/pkg/domain"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JwtProtected guards a route with bearer-token authentication. The verified
// token is stored in c.Locals("user") for CallerID to read.
func JwtProtected(cfg config.Jwt) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{Key: []byte(cfg.Secret)},
		ErrorHandler: jwtError,
	})
}

// jwtError replies 401 for any authentication failure: a request without
// caller identity is unauthorized whether the token is absent, malformed or
// invalid.
func jwtError(c *fiber.Ctx, err error) error {
	message := "Invalid or expired JWT"
	if strings.Contains(err.Error(), "missing or malformed") {
		message = "Missing or malformed JWT"
	}
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"status": "error", "message": message, "data": nil})
}

// CallerID extracts the authenticated user's id from the verified token's
// subject claim. It returns domain.ErrUnauthorized when the token is absent
// or the subject is not a UUID.
func CallerID(c *fiber.Ctx) (uuid.UUID, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return id, nil
}
