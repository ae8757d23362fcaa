package dto

import "time"

// RegisterRequest entrada de registro. El rol siempre inicia en client;
// la promoción a staff es una operación de admin aparte.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,max=125"`
	Phone    string `json:"phone"`
}

// LoginRequest entrada de login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AddressDTO dirección del usuario.
type AddressDTO struct {
	Street  string `json:"street"`
	Number  int    `json:"number"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

// UpdateUserRequest entrada para actualizar datos propios.
type UpdateUserRequest struct {
	Name    *string     `json:"name"`
	Phone   *string     `json:"phone"`
	Address *AddressDTO `json:"address"`
}

// UserResponse salida de un usuario (nunca incluye el hash de password).
type UserResponse struct {
	ID        string      `json:"id"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
	Phone     string      `json:"phone,omitempty"`
	Role      string      `json:"user_type"`
	IsStaff   bool        `json:"is_staff"`
	Address   *AddressDTO `json:"address,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// UserListResponse lista paginada de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// LoginResponse token + usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
