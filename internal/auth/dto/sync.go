package dto

type SyncInput struct {
	Email        string `json:"email"`
	SessionToken string `json:"sessionToken"`
}
