package entity

import "time"

// Cliente representa o comprador da negociação (pessoa jurídica na quase
// totalidade dos casos). CodigoSAP é a chave de integração com o ERP.
type Cliente struct {
	ID                int64
	CodigoSAP         string
	RazaoSocial       string
	CNPJ              string
	InscricaoEstadual string
	Email             string
	Telefone          string
	Ativo             bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
