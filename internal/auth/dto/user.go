package dto

import "github.com/rizqunbw/rizqu-moneytracker/internal/auth/domain"

// UserOutput is a directory record as returned to clients: the password is
// stripped and a freshly derived session token attached.
type UserOutput struct {
	Email        string                        `json:"email"`
	PIN          string                        `json:"pin"`
	EditCount    int                           `json:"editCount"`
	Databases    []domain.DatabaseRegistration `json:"databases"`
	SessionToken string                        `json:"sessionToken"`
}

type UpdateCredentialsInput struct {
	Email   string         `json:"email"`
	Updates domain.Updates `json:"updates"`
}
