package ledger

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/rizqunbw/rizqu-moneytracker/internal/errors"
)

type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

func (h *Handler) ListTransactions(c *fiber.Ctx) error {
	return h.read(c, "get_transactions")
}

func (h *Handler) Summary(c *fiber.Ctx) error {
	return h.read(c, "get_summary")
}

func (h *Handler) Logs(c *fiber.Ctx) error {
	return h.read(c, "get_logs")
}

func (h *Handler) AddTransaction(c *fiber.Ctx) error {
	var input TransactionInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}
	if input.ScriptURL == "" {
		return badRequest(c, "scriptUrl is required")
	}

	payload := map[string]interface{}{
		"action":      "add_transaction",
		"amount":      input.Amount,
		"description": input.Description,
	}
	attachImage(payload, input)

	data, err := h.client.Post(c.Context(), input.ScriptURL, payload)
	if err != nil {
		return fail(c, err)
	}

	return c.Type("json").Send(data)
}

func (h *Handler) EditTransaction(c *fiber.Ctx) error {
	var input TransactionInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}
	if input.ScriptURL == "" || input.RowIndex == 0 {
		return badRequest(c, "scriptUrl and rowIndex are required")
	}

	payload := map[string]interface{}{
		"action":      "edit_transaction",
		"rowIndex":    input.RowIndex,
		"amount":      input.Amount,
		"description": input.Description,
	}
	attachImage(payload, input)

	data, err := h.client.Post(c.Context(), input.ScriptURL, payload)
	if err != nil {
		return fail(c, err)
	}

	return c.Type("json").Send(data)
}

func (h *Handler) DeleteTransaction(c *fiber.Ctx) error {
	var input DeleteTransactionInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}
	if input.ScriptURL == "" || input.RowIndex == 0 {
		return badRequest(c, "scriptUrl and rowIndex are required")
	}

	data, err := h.client.Post(c.Context(), input.ScriptURL, map[string]interface{}{
		"action":   "deleteTransaction",
		"rowIndex": input.RowIndex,
	})
	if err != nil {
		return fail(c, err)
	}

	return c.Type("json").Send(data)
}

// Setup checks the URL points at an Apps Script deployment and initializes
// the sheet (header row plus an empty activity log).
func (h *Handler) Setup(c *fiber.Ctx) error {
	var input ScriptInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}
	if !strings.Contains(input.ScriptURL, "script.google.com") {
		return badRequest(c, "invalid script URL")
	}

	data, err := h.client.Post(c.Context(), input.ScriptURL, map[string]interface{}{
		"action": "setup",
	})
	if err != nil {
		return fail(c, err)
	}

	return c.Type("json").Send(data)
}

func (h *Handler) read(c *fiber.Ctx, action string) error {
	var input ScriptInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}
	if input.ScriptURL == "" {
		return badRequest(c, "scriptUrl is required")
	}

	data, err := h.client.Get(c.Context(), input.ScriptURL, action)
	if err != nil {
		return fail(c, err)
	}

	return c.Type("json").Send(data)
}

func attachImage(payload map[string]interface{}, input TransactionInput) {
	if input.ImageBase64 != "" {
		payload["imageBase64"] = input.ImageBase64
		payload["mimeType"] = input.MimeType
	}
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"status":  "error",
		"message": message,
	})
}

func fail(c *fiber.Ctx, err error) error {
	if errors.Is(err, apperrors.ErrInvalidUpstream) {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"status":  "error",
		"message": "Internal Server Error",
	})
}
