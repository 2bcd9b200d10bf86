package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rizqunbw/rizqu-moneytracker/internal/ledger"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler, adminHandler *AdminHandler, ledgerHandler *ledger.Handler) {
	v1 := app.Group("/api/v1")

	v1.Post("/register", h.Register)
	v1.Post("/login", h.Login)
	v1.Post("/verify-pin", h.VerifyPin)
	v1.Post("/reset-password", h.ResetPassword)

	user := v1.Group("/user")
	user.Post("/sync", h.Sync)
	user.Post("/update", h.UpdateCredentials)
	user.Post("/databases", h.UpdateDatabases)
	user.Post("/databases/add", h.AddDatabase)

	v1.Post("/public/verify-token", h.VerifyShareToken)

	lg := v1.Group("/ledger")
	lg.Post("/setup", ledgerHandler.Setup)
	lg.Post("/transactions", ledgerHandler.ListTransactions)
	lg.Post("/transactions/add", ledgerHandler.AddTransaction)
	lg.Post("/transactions/edit", ledgerHandler.EditTransaction)
	lg.Post("/transactions/delete", ledgerHandler.DeleteTransaction)
	lg.Post("/summary", ledgerHandler.Summary)
	lg.Post("/logs", ledgerHandler.Logs)

	// Admin endpoints: login is open, everything else carries the bearer gate
	// per route so the group prefix stays usable for login itself.
	admin := v1.Group("/admin")
	admin.Post("/login", adminHandler.Login)
	admin.Post("/users", adminHandler.RequireAdmin, adminHandler.GetUsers)
	admin.Post("/user/update", adminHandler.RequireAdmin, adminHandler.UpdateUser)
	admin.Post("/user/delete", adminHandler.RequireAdmin, adminHandler.DeleteUser)
	admin.Post("/database/delete", adminHandler.RequireAdmin, adminHandler.DeleteDatabase)
}
