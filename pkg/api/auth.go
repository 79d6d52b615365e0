package api

import "github.com/iudanet/chirp/internal/models"

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginResponse представляет ответ сервера на успешный логин
type LoginResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"` // JWT access token
}

// UpdateProfileRequest содержит изменяемые поля профиля.
// Пустые (nil) поля не отправляются на сервер.
type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Website  *string `json:"website,omitempty"`
	Location *string `json:"location,omitempty"`
}

// ErrorResponse представляет ответ с ошибкой.
// Code приходит строкой ("404"), иногда отсутствует.
type ErrorResponse struct {
	Message string  `json:"message"`
	Code    *string `json:"code,omitempty"`
}
