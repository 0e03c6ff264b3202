// Package auth exposes the register and login endpoints of the user service.
package auth

import (
	"github.com/amirasaad/payflow/pkg/provider"
	identitysvc "github.com/amirasaad/payflow/pkg/service/identity"
	"github.com/amirasaad/payflow/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Routes registers the auth endpoints.
func Routes(app *fiber.App, identitySvc *identitysvc.Service) {
	app.Post("/auth/register", Register(identitySvc))
	app.Post("/auth/login", Login(identitySvc))
}

// Register forwards a registration request to the identity provider. A
// provider rejection surfaces as 400 with the provider's message.
func Register(identitySvc *identitysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[RegisterInput](c)
		if input == nil {
			return err
		}
		user, err := identitySvc.Register(c.Context(), input.Email, input.Password)
		if err != nil {
			if ie, ok := provider.AsIdentityError(err); ok {
				return common.ProblemDetailsJSON(c, "User registration failed", nil,
					ie.Message, fiber.StatusBadRequest)
			}
			log.Errorf("user registration failed: %v", err)
			return common.ProblemDetailsJSON(c, "User registration failed", nil,
				fiber.StatusInternalServerError)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User registered",
			fiber.Map{"user": user})
	}
}

// Login forwards a login request to the identity provider and returns the
// issued access token. Any provider rejection surfaces as 401.
func Login(identitySvc *identitysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginInput](c)
		if input == nil {
			return err
		}
		token, err := identitySvc.Login(c.Context(), input.Email, input.Password)
		if err != nil {
			if _, ok := provider.AsIdentityError(err); ok {
				return common.ProblemDetailsJSON(c, "Invalid email or password", nil,
					"Email or password is incorrect", fiber.StatusUnauthorized)
			}
			log.Errorf("login failed: %v", err)
			return common.ProblemDetailsJSON(c, "Login failed", nil,
				fiber.StatusInternalServerError)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Success login",
			fiber.Map{"token": token})
	}
}
