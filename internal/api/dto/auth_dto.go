// Package dto содержит структуры запросов и ответов HTTP API.
package dto

// TokenResponse содержит выданный токен доступа.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ErrorResponse представляет единый формат тела ошибки.
type ErrorResponse struct {
	Error string `json:"error"`
}
