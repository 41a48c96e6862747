// Package pdf implementa a geração do demonstrativo de margem da reserva.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Código da reserva  │  Data + Filial                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Razão social                                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  POR ITEM: produto, venda, CMV, custos, comissão e margens  │
//	│  TABELA: fluxo financeiro (entrada + parcelas)              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMO: margem bruta e margem de contribuição               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/equipamax/margem-api/internal/application/reserva"
	"github.com/equipamax/margem-api/internal/domain/entity"
	"github.com/equipamax/margem-api/pkg/formatacao"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	corPrimaria = &props.Color{Red: 20, Green: 83, Blue: 45}
	corCinza    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoDemonstrativoGenerator implementa reserva.DemonstrativoPDFGenerator
// usando Maroto v2.
type MarotoDemonstrativoGenerator struct{}

// NewMarotoDemonstrativoGenerator constrói o gerador.
func NewMarotoDemonstrativoGenerator() *MarotoDemonstrativoGenerator {
	return &MarotoDemonstrativoGenerator{}
}

// Gerar gera o demonstrativo e devolve os bytes do PDF.
func (g *MarotoDemonstrativoGenerator) Gerar(dados reserva.DemonstrativoDados) ([]byte, error) {
	res := dados.Reserva

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Demonstrativo de Margem", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(res, dados.NomeFilial))
	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.5}))
	m.AddRows(clienteRow(dados.RazaoSocialCliente))
	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.3}))

	for i := range res.Itens {
		item := &res.Itens[i]
		descricao := dados.DescricaoProdutos[item.IDProduto]
		m.AddRows(itemTituloRow(item, descricao))
		for _, r := range itemValoresRows(item) {
			m.AddRows(r)
		}
		if len(item.Fluxos) > 0 {
			m.AddRows(fluxoHeaderRow())
			for _, r := range fluxoRows(item.Fluxos) {
				m.AddRows(r)
			}
		}
		m.AddRows(line.NewRow(1, props.Line{Color: corCinza, Thickness: 0.3}))
		m.AddRows(resumoRow(item))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar demonstrativo: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: código da reserva (esq) e data + filial (dir).
func headerRow(res *entity.Reserva, nomeFilial string) core.Row {
	data := res.DataReserva.Format("02/01/2006")
	return row.New(16).Add(
		col.New(7).Add(
			text.New("DEMONSTRATIVO DE MARGEM", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: corPrimaria, Top: 1,
			}),
			text.New("Reserva "+res.CodigoReserva, props.Text{
				Size: 9, Top: 9, Color: corCinza,
			}),
		),
		col.New(5).Add(
			text.New("Data: "+data, props.Text{
				Size: 9, Align: align.Right, Top: 2, Color: corCinza,
			}),
			text.New("Filial: "+naoVazio(nomeFilial, "—"), props.Text{
				Size: 9, Align: align.Right, Top: 8, Color: corCinza,
			}),
		),
	)
}

// clienteRow: razão social do comprador.
func clienteRow(razaoSocial string) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: corPrimaria, Top: 1,
			}),
			text.New(naoVazio(razaoSocial, "—"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 5,
			}),
		),
	)
}

// itemTituloRow: produto e quantidade do item.
func itemTituloRow(item *entity.ReservaItem, descricao string) core.Row {
	titulo := fmt.Sprintf("%s  (qtd: %d)", naoVazio(descricao, fmt.Sprintf("Produto %d", item.IDProduto)), item.Quantidade)
	return row.New(8).Add(
		col.New(12).Add(
			text.New(titulo, props.Text{Style: fontstyle.Bold, Size: 10, Top: 1}),
		),
	)
}

// itemValoresRows: pares rótulo/valor do demonstrativo do item.
func itemValoresRows(item *entity.ReservaItem) []core.Row {
	linhas := []struct {
		rotulo string
		valor  string
	}{
		{"Valor de venda total", formatacao.FormatarBRL(item.ValorVendaTotal)},
		{"Impostos sobre a venda", formatacao.FormatarBRL(item.ImpostosVendaValor)},
		{"DN total", formatacao.FormatarBRL(item.ValorDNTotal)},
		{"Impostos sobre a compra", formatacao.FormatarBRL(item.ImpostosCompraValor)},
		{"PDI / garantia", formatacao.FormatarBRL(item.ValorPDIGarantia)},
		{"Custo financeiro total", formatacao.FormatarBRL(item.CustoFinanceiroTotal)},
		{"Comissão total", formatacao.FormatarBRL(item.ComissaoTotal)},
	}
	result := make([]core.Row, 0, len(linhas))
	for _, l := range linhas {
		result = append(result, row.New(5).Add(
			col.New(6).Add(text.New(l.rotulo, props.Text{Size: 8, Top: 1, Left: 2})),
			col.New(6).Add(text.New(l.valor, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 2})),
		))
	}
	return result
}

// fluxoHeaderRow: cabeçalho da tabela do fluxo financeiro.
func fluxoHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7.5, Align: a,
			Color: corPrimaria, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(7).Add(
		h("Parcela", 2, align.Left),
		h("Prazo (dias)", 2, align.Center),
		h("Nominal", 3, align.Right),
		h("Taxa efetiva", 2, align.Right),
		h("Custo financeiro", 3, align.Right),
	)
}

// fluxoRows: uma linha por entrada/parcela.
func fluxoRows(fluxos []entity.ReservaItemFluxo) []core.Row {
	result := make([]core.Row, 0, len(fluxos))
	for _, f := range fluxos {
		nome := "Entrada"
		if f.TipoParcela == 2 {
			nome = fmt.Sprintf("Parcela %d", f.NumeroParcela)
		}
		result = append(result, row.New(5).Add(
			col.New(2).Add(text.New(nome, props.Text{Size: 7.5, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", f.PrazoDias), props.Text{Size: 7.5, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(formatacao.FormatarBRL(f.ValorNominal), props.Text{Size: 7.5, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(formatacao.FormatarPercentual(f.TaxaEfetiva), props.Text{Size: 7.5, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(formatacao.FormatarBRL(f.CustoFinanceiro), props.Text{Size: 7.5, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// resumoRow: margens do item em destaque.
func resumoRow(item *entity.ReservaItem) core.Row {
	rotulo := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	valor := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right,
			Color: corPrimaria, Right: 1,
		})
	}
	return row.New(14).Add(
		col.New(4),
		col.New(4).Add(
			rotulo("Margem bruta:"),
			rotulo("Margem de contribuição:"),
		),
		col.New(4).Add(
			valor(fmt.Sprintf("%s  (%s)",
				formatacao.FormatarBRL(item.MargemBrutaValor),
				formatacao.FormatarPercentual(item.MargemBrutaPercent))),
			valor(fmt.Sprintf("%s  (%s)",
				formatacao.FormatarBRL(item.MargemContribValor),
				formatacao.FormatarPercentual(item.MargemContribPercent))),
		),
	)
}

func naoVazio(s, alt string) string {
	if s == "" {
		return alt
	}
	return s
}
