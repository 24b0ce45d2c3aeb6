package dto

import "time"

// RegisterBusinessRequest entrada para crear un negocio junto con su usuario
// dueño (rol admin).
type RegisterBusinessRequest struct {
	BusinessName string `json:"business_name" validate:"required,min=1,max=200"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	Name         string `json:"name" validate:"omitempty,max=200"`
}

// RegisterRequest entrada para registrar un usuario en un negocio existente.
type RegisterRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	BusinessID string `json:"business_id" validate:"required,uuid"`
	Name       string `json:"name" validate:"omitempty,max=200"`
	Role       string `json:"role" validate:"omitempty,oneof=admin vendedor"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"business_id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT más los datos del usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
