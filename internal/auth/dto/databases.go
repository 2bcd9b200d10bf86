package dto

import "github.com/rizqunbw/rizqu-moneytracker/internal/auth/domain"

// UpdateDatabasesInput carries the complete replacement list, not a delta.
type UpdateDatabasesInput struct {
	Email     string                        `json:"email"`
	Databases []domain.DatabaseRegistration `json:"databases"`
}

type AddDatabaseInput struct {
	Email     string `json:"email"`
	DBName    string `json:"dbName"`
	ScriptURL string `json:"scriptUrl"`
}

type VerifyTokenInput struct {
	Token string `json:"token"`
}
