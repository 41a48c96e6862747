package dto

// ClienteResponse saída de um cliente do catálogo.
type ClienteResponse struct {
	ID          int64  `json:"id"`
	CodigoSAP   string `json:"codigo_sap"`
	RazaoSocial string `json:"razao_social"`
	CNPJ        string `json:"cnpj,omitempty"`
	Email       string `json:"email,omitempty"`
	Telefone    string `json:"telefone,omitempty"`
}

// FilialResponse saída de uma filial.
type FilialResponse struct {
	ID        int    `json:"id"`
	CodigoSAP string `json:"codigo_sap"`
	Nome      string `json:"nome"`
	UF        string `json:"uf,omitempty"`
	Cidade    string `json:"cidade,omitempty"`
}

// ProdutoResponse saída de um produto do catálogo.
type ProdutoResponse struct {
	ID          int64  `json:"id"`
	CodigoSAP   string `json:"codigo_sap"`
	Descricao   string `json:"descricao"`
	SiglaModelo string `json:"sigla_modelo,omitempty"`
	Familia     string `json:"familia,omitempty"`
	TipoProduto string `json:"tipo_produto,omitempty"`
}

// TipoVendaResponse saída de um tipo de venda.
type TipoVendaResponse struct {
	ID               int    `json:"id"`
	Nome             string `json:"nome"`
	FlagFinanciado   bool   `json:"flag_financiado"`
	FlagOrgaoPublico bool   `json:"flag_orgao_publico"`
}

// ModalidadeFinResponse saída de uma modalidade de financiamento.
type ModalidadeFinResponse struct {
	ID   int    `json:"id"`
	Nome string `json:"nome"`
}

// BancoFinanciadorResponse saída de um banco financiador.
type BancoFinanciadorResponse struct {
	ID   int    `json:"id"`
	Nome string `json:"nome"`
}

// ClienteListResponse lista paginada de clientes.
type ClienteListResponse struct {
	Items []ClienteResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ProdutoListResponse lista paginada de produtos.
type ProdutoListResponse struct {
	Items []ProdutoResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
