package models

// Credentials — вход для SignIn.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Token — ответ апстрима на успешный SignIn.
type Token struct {
	AccessToken string `json:"accessToken"`
}
