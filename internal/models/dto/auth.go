package dto

import "github.com/hongminglow/kanizsa-users/internal/models"

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type RegisterResponse struct {
	UserID string `json:"user_id"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

type UpdateProfileRequest struct {
	Name string `json:"name"`
}

type ProfileResponse struct {
	User models.Profile `json:"user"`
}
