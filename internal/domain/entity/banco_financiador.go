package entity

import "time"

// BancoFinanciador instituição que financia a venda. Informativo na
// reserva, não participa do cálculo.
type BancoFinanciador struct {
	ID        int
	CodigoSAP string
	Nome      string
	Ativo     bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
