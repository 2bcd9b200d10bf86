package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rizqunbw/rizqu-moneytracker/internal/auth/dto"
	"github.com/rizqunbw/rizqu-moneytracker/internal/auth/service"
	"github.com/rizqunbw/rizqu-moneytracker/internal/observability/metrics"
)

const pinLength = 6

type AuthHandler struct {
	users     *service.UserService
	databases *service.DatabaseService
}

func NewAuthHandler(users *service.UserService, databases *service.DatabaseService) *AuthHandler {
	return &AuthHandler{
		users:     users,
		databases: databases,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}
	if input.Email == "" || input.Password == "" || input.PIN == "" {
		return badRequest(c, "email, password and PIN are required")
	}
	if !validPIN(input.PIN) {
		return badRequest(c, "PIN must be 6 digits")
	}

	if err := h.users.Register(c.Context(), input); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("failure").Inc()
		return fail(c, err)
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "registration successful",
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}

	user, err := h.users.Login(c.Context(), input)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return fail(c, err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(fiber.Map{
		"status": "success",
		"user":   user,
	})
}

func (h *AuthHandler) VerifyPin(c *fiber.Ctx) error {
	var input dto.VerifyPinInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}
	if input.Email == "" || input.PIN == "" {
		return badRequest(c, "email and PIN are required")
	}

	if err := h.users.VerifyPIN(c.Context(), input.Email, input.PIN); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "PIN verified",
	})
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var input dto.ResetPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}
	if input.Email == "" || input.PIN == "" || input.NewPassword == "" {
		return badRequest(c, "email, PIN and new password are required")
	}

	if err := h.users.ResetPassword(c.Context(), input.Email, input.PIN, input.NewPassword); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "password updated",
	})
}

func (h *AuthHandler) Sync(c *fiber.Ctx) error {
	var input dto.SyncInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}
	if input.Email == "" {
		return badRequest(c, "email is required")
	}

	user, err := h.users.Sync(c.Context(), input.Email, input.SessionToken)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"user":   user,
	})
}

func (h *AuthHandler) UpdateCredentials(c *fiber.Ctx) error {
	var input dto.UpdateCredentialsInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}
	if input.Email == "" || input.Updates.IsEmpty() {
		return badRequest(c, "email and updates are required")
	}

	user, err := h.users.UpdateCredentials(c.Context(), input.Email, input.Updates)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"user":   user,
	})
}

func (h *AuthHandler) UpdateDatabases(c *fiber.Ctx) error {
	var input dto.UpdateDatabasesInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}
	if input.Email == "" || input.Databases == nil {
		return badRequest(c, "email and databases are required")
	}

	user, err := h.databases.UpsertDatabases(c.Context(), input.Email, input.Databases)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"status":    "success",
		"databases": user.Databases,
	})
}

func (h *AuthHandler) AddDatabase(c *fiber.Ctx) error {
	var input dto.AddDatabaseInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}
	if input.Email == "" || input.DBName == "" || input.ScriptURL == "" {
		return badRequest(c, "email, dbName and scriptUrl are required")
	}

	databases, err := h.databases.AddDatabase(c.Context(), input.Email, input.DBName, input.ScriptURL)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"status":    "success",
		"databases": databases,
	})
}

// VerifyShareToken is the unauthenticated read-only entry point: possession
// of a sharing token is the whole credential.
func (h *AuthHandler) VerifyShareToken(c *fiber.Ctx) error {
	var input dto.VerifyTokenInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}
	if input.Token == "" {
		return badRequest(c, "token is required")
	}

	resolution, err := h.databases.ResolveToken(c.Context(), input.Token)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   resolution,
	})
}

func validPIN(pin string) bool {
	if len(pin) != pinLength {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
