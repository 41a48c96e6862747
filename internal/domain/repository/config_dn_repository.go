package repository

import "github.com/equipamax/margem-api/internal/domain/entity"

// ConfigDNQuery chave composta de busca da configuração de DN vigente.
// Modalidade nula e mês ausente entram como zero na comparação.
type ConfigDNQuery struct {
	IDProduto       int64
	IDFilial        int
	IDTipoVenda     int
	IDModalidadeFin *int
	PossuiAF        bool
	Ano             int
	Mes             int
}

// ConfigDNRepository porta de persistência de ConfigDN.
type ConfigDNRepository interface {
	// Find devolve a configuração exata da chave ou nil quando não existe.
	Find(q ConfigDNQuery) (*entity.ConfigDN, error)
	GetByID(id int64) (*entity.ConfigDN, error)
	Create(dn *entity.ConfigDN) error
}
