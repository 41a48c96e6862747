package entity

import "time"

// Papéis válidos para User.
const (
	RoleAdmin    = "admin"
	RoleVendedor = "vendedor"
)

// User usuário do sistema, vinculado a uma filial.
type User struct {
	ID           string
	Email        string
	PasswordHash string // hash bcrypt, nunca em claro no domínio
	Nome         string
	Role         string // admin, vendedor
	IDFilial     int
	Ativo        bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
