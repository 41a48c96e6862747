package entity

import "time"

// ModalidadeFinanciamento linha de crédito usada na venda financiada
// (FINAME, CDC, leasing). Compõe a chave de busca da configuração de DN.
type ModalidadeFinanciamento struct {
	ID            int
	Nome          string
	CodigoInterno string
	Ativo         bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
