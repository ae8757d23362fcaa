package entity

import "time"

// Role rol de un usuario dentro de la jerarquía ordenada del back office.
type Role string

// Roles válidos, de menor a mayor privilegio.
const (
	RoleClient   Role = "client"
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

// Level devuelve la posición del rol en la jerarquía (client < employee < manager < admin).
// Un rol desconocido queda por debajo de client.
func (r Role) Level() int {
	switch r {
	case RoleClient:
		return 1
	case RoleEmployee:
		return 2
	case RoleManager:
		return 3
	case RoleAdmin:
		return 4
	default:
		return 0
	}
}

// Valid indica si el rol es uno de los cuatro conocidos.
func (r Role) Valid() bool {
	return r.Level() > 0
}

// IsStaff indica si el rol tiene acceso elevado (employee, manager o admin).
func (r Role) IsStaff() bool {
	return r.Level() >= RoleEmployee.Level()
}

// IsAdmin indica acceso total.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// Address dirección de envío/facturación del usuario.
type Address struct {
	Street  string
	Number  int
	City    string
	State   string
	ZipCode string
}

// User representa una cuenta del sistema.
type User struct {
	ID           string
	Email        string
	Name         string
	Phone        string
	Role         Role
	PasswordHash string // bcrypt, nunca plano en dominio después de persistir
	Address      *Address
	LastLoginIP  string
	CreatedAt    time.Time
}
