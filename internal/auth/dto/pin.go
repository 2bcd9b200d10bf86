package dto

type VerifyPinInput struct {
	Email string `json:"email"`
	PIN   string `json:"pin"`
}

type ResetPasswordInput struct {
	Email       string `json:"email"`
	PIN         string `json:"pin"`
	NewPassword string `json:"newPassword"`
}
