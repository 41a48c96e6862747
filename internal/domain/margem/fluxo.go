package margem

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var trinta = decimal.NewFromInt(30)

// montarFluxoPagamento monta o fluxo de entrada + parcelas e calcula o custo
// financeiro de cada linha. A base financiada inteira é reconstituída pela
// soma dos nominais (entrada + parcelas), dentro da tolerância de 2 casas.
// Base não positiva ou quantidade negativa devolvem fluxo vazio.
func montarFluxoPagamento(
	baseFinanciado decimal.Decimal,
	valorEntrada decimal.Decimal,
	qtdParcelas int,
	prazoPrimeira int,
	intervalo int,
	taxaJurosMensal decimal.Decimal,
) ([]FluxoParcela, error) {
	fluxo := []FluxoParcela{}

	if !baseFinanciado.GreaterThan(decimal.Zero) || qtdParcelas < 0 {
		return fluxo, nil
	}

	restante := baseFinanciado
	if valorEntrada.GreaterThan(decimal.Zero) {
		restante = restante.Sub(valorEntrada)
		entrada, err := criarParcela(TipoParcelaEntrada, 0, prazoPrimeira, valorEntrada, baseFinanciado, taxaJurosMensal)
		if err != nil {
			return nil, err
		}
		fluxo = append(fluxo, entrada)
	}

	valorParcela := decimal.Zero
	if qtdParcelas > 0 {
		valorParcela = q2(restante.Div(decimal.NewFromInt(int64(qtdParcelas))))
	}

	for i := 1; i <= qtdParcelas; i++ {
		prazo := prazoPrimeira + intervalo*i
		parcela, err := criarParcela(TipoParcelaParcela, i, prazo, valorParcela, baseFinanciado, taxaJurosMensal)
		if err != nil {
			return nil, err
		}
		fluxo = append(fluxo, parcela)
	}

	return fluxo, nil
}

// criarParcela calcula uma linha do fluxo: taxa efetiva composta do prazo
// ((1+i)^(dias/30) - 1), valor presente e custo financeiro.
func criarParcela(
	tipoParcela int,
	numeroParcela int,
	prazoDias int,
	valorNominal decimal.Decimal,
	baseFinanciado decimal.Decimal,
	taxaJurosMensal decimal.Decimal,
) (FluxoParcela, error) {
	percentualBase := decimal.Zero
	if baseFinanciado.GreaterThan(decimal.Zero) {
		percentualBase = q6(valorNominal.Div(baseFinanciado))
	}

	expoente := decimal.NewFromInt(int64(prazoDias)).Div(trinta)
	fator, err := um.Add(taxaJurosMensal).PowWithPrecision(expoente, 18)
	if err != nil {
		return FluxoParcela{}, fmt.Errorf("fluxo: fator de juros para prazo %d dias: %w", prazoDias, err)
	}
	taxaEfetiva := q6(fator.Sub(um))
	valorPresente := valorNominal.Div(um.Add(taxaEfetiva))
	custoFinanceiro := valorNominal.Sub(valorPresente)

	return FluxoParcela{
		TipoParcela:     tipoParcela,
		NumeroParcela:   numeroParcela,
		PrazoDias:       prazoDias,
		PercentualBase:  percentualBase,
		ValorNominal:    q2(valorNominal),
		TaxaEfetiva:     taxaEfetiva,
		ValorPresente:   q2(valorPresente),
		CustoFinanceiro: q2(custoFinanceiro),
	}, nil
}
