package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"resume-builder/internal/domain"
)

const userKey = "user"

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return ""
	}
	return strings.TrimSpace(token)
}

// RequireAuth rejects requests without a valid bearer token and stores the
// authenticated user for the handlers.
func (h *Handler) RequireAuth(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Access denied. No token provided.")
	}
	u, err := h.accounts.Authenticate(c.UserContext(), token)
	if err != nil {
		return err
	}
	c.Locals(userKey, u)
	return c.Next()
}

// OptionalAuth attaches the user when a valid token is present and lets
// anonymous requests through otherwise.
func (h *Handler) OptionalAuth(c *fiber.Ctx) error {
	if token := bearerToken(c); token != "" {
		if u, err := h.accounts.Authenticate(c.UserContext(), token); err == nil {
			c.Locals(userKey, u)
		}
	}
	return c.Next()
}

func currentUser(c *fiber.Ctx) *domain.User {
	u, _ := c.Locals(userKey).(*domain.User)
	return u
}

// levelOf is the experience level used to filter templates, empty for
// anonymous users.
func levelOf(c *fiber.Ctx) domain.ExperienceLevel {
	if u := currentUser(c); u != nil {
		return u.ExperienceLevel
	}
	return ""
}
