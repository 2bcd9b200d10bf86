package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/rizqunbw/rizqu-moneytracker/internal/auth/dto"
	"github.com/rizqunbw/rizqu-moneytracker/internal/auth/service"
)

type AdminHandler struct {
	admin  *service.AdminService
	tokens service.TokenGenerator
}

func NewAdminHandler(admin *service.AdminService, tokens service.TokenGenerator) *AdminHandler {
	return &AdminHandler{
		admin:  admin,
		tokens: tokens,
	}
}

func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var input dto.AdminLoginInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}

	token, expiresAt, err := h.admin.Login(input.Password)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"status":    "success",
		"token":     token,
		"expiresAt": expiresAt,
	})
}

// RequireAdmin guards the operator endpoints with a bearer token issued by
// Login.
func (h *AdminHandler) RequireAdmin(c *fiber.Ctx) error {
	const prefix = "Bearer "

	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, prefix) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  "error",
			"message": "admin token required",
		})
	}

	if _, err := h.tokens.VerifyAdminToken(strings.TrimPrefix(header, prefix)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  "error",
			"message": "invalid admin token",
		})
	}

	return c.Next()
}

func (h *AdminHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.admin.ListUsers(c.Context())
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"users":  users,
	})
}

func (h *AdminHandler) UpdateUser(c *fiber.Ctx) error {
	var input dto.AdminUpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}
	if input.Email == "" || input.Updates.IsEmpty() {
		return badRequest(c, "email and updates are required")
	}

	user, err := h.admin.UpdateUser(c.Context(), input.Email, input.Updates)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"user":   user,
	})
}

func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	var input dto.DeleteUserInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}
	if input.TargetEmail == "" {
		return badRequest(c, "targetEmail is required")
	}

	if err := h.admin.DeleteUser(c.Context(), input.TargetEmail); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "user deleted",
	})
}

func (h *AdminHandler) DeleteDatabase(c *fiber.Ctx) error {
	var input dto.DeleteDatabaseInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}
	if input.TargetEmail == "" || input.DBIndex == nil {
		return badRequest(c, "targetEmail and dbIndex are required")
	}

	if err := h.admin.DeleteDatabase(c.Context(), input.TargetEmail, *input.DBIndex); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "database deleted",
	})
}
