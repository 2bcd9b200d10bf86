package dto

import "github.com/rizqunbw/rizqu-moneytracker/internal/auth/domain"

type AdminLoginInput struct {
	Password string `json:"password"`
}

type AdminUpdateUserInput struct {
	Email   string         `json:"email"`
	Updates domain.Updates `json:"updates"`
}

type DeleteUserInput struct {
	TargetEmail string `json:"targetEmail"`
}

type DeleteDatabaseInput struct {
	TargetEmail string `json:"targetEmail"`
	DBIndex     *int   `json:"dbIndex"`
}
