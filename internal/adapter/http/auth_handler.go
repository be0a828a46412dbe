package http

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"
)

// decode validates the body against schema before unmarshalling it.
func decode(c *fiber.Ctx, schema model.Schema, dst interface{}) error {
	body := c.Body()
	if err := model.Validate(schema, body); err != nil {
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	return nil
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Signup(c *fiber.Ctx) error {
	var req credentials
	if err := decode(c, model.SignupSchema, &req); err != nil {
		return err
	}
	sess, err := h.accounts.Signup(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return fail("Error creating user", err)
	}
	return ok(c, fiber.StatusCreated, "User registered successfully", sess)
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var req credentials
	if err := decode(c, model.LoginSchema, &req); err != nil {
		return err
	}
	sess, err := h.accounts.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return fail("Error during login", err)
	}
	return ok(c, fiber.StatusOK, "Login successful", sess)
}

func (h *Handler) GoogleLogin(c *fiber.Ctx) error {
	target, err := h.accounts.GoogleAuthURL()
	if err != nil {
		return err
	}
	return c.Redirect(target, fiber.StatusFound)
}

func (h *Handler) GoogleCallback(c *fiber.Ctx) error {
	target := h.accounts.GoogleCallback(c.UserContext(), c.Query("state"), c.Query("code"))
	return c.Redirect(target, fiber.StatusFound)
}

func (h *Handler) Profile(c *fiber.Ctx) error {
	return ok(c, fiber.StatusOK, "", fiber.Map{"user": currentUser(c).Public()})
}

func (h *Handler) UpdateExperienceLevel(c *fiber.Ctx) error {
	var req struct {
		ExperienceLevel domain.ExperienceLevel `json:"experienceLevel"`
	}
	if err := decode(c, model.ExperienceLevelSchema, &req); err != nil {
		return err
	}
	u, err := h.accounts.SetExperienceLevel(c.UserContext(), currentUser(c), req.ExperienceLevel)
	if err != nil {
		return fail("Error updating experience level", err)
	}
	return ok(c, fiber.StatusOK, "Experience level updated successfully", fiber.Map{"user": u.Public()})
}

func (h *Handler) ForgotPassword(c *fiber.Ctx) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := decode(c, model.ForgotPasswordSchema, &req); err != nil {
		return err
	}
	err := h.accounts.ForgotPassword(c.UserContext(), req.Email)
	if errors.Is(err, usecase.ErrGoogleAccount) {
		return fiber.NewError(fiber.StatusBadRequest,
			"This account was created with Google. Please use Google login to access your account.")
	}
	if err != nil {
		return fail("Error processing password reset request", err)
	}
	return ok(c, fiber.StatusOK, "If an account with that email exists, a password reset link has been sent.", nil)
}

func (h *Handler) ResetPassword(c *fiber.Ctx) error {
	var req struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}
	if err := decode(c, model.ResetPasswordSchema, &req); err != nil {
		return err
	}
	if err := h.accounts.ResetPassword(c.UserContext(), req.Token, req.Password); err != nil {
		return fail("Error resetting password", err)
	}
	return ok(c, fiber.StatusOK, "Password reset successful. You can now login with your new password.", nil)
}

func (h *Handler) VerifyResetToken(c *fiber.Ctx) error {
	email, err := h.accounts.VerifyResetToken(c.UserContext(), c.Params("token"))
	if err != nil {
		return fail("Error verifying reset token", err)
	}
	return ok(c, fiber.StatusOK, "Reset token is valid", fiber.Map{"email": email})
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	if err := h.accounts.Logout(c.UserContext(), currentUser(c)); err != nil {
		return fail("Error during logout", err)
	}
	return ok(c, fiber.StatusOK, "Logout successful", nil)
}
