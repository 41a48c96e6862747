package entity

import "time"

// Filial unidade de venda da concessionária. Os parâmetros gerais e as
// configurações de DN podem ser segmentados por filial.
type Filial struct {
	ID        int
	CodigoSAP string
	Nome      string
	UF        string
	Cidade    string
	Ativo     bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
