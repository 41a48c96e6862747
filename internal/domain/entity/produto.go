package entity

import "time"

// Produto máquina ou equipamento do catálogo comercial.
type Produto struct {
	ID          int64
	CodigoSAP   string
	Descricao   string
	SiglaModelo string
	Familia     string
	TipoProduto string
	Ativo       bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
