// seed gera scripts SQL para popular as tabelas de parâmetros gerais e
// configurações de DN a partir de arquivos CSV exportados da planilha de margem.
//
// Uso: go run ./cmd/seed [parametros.csv] [configs_dn.csv]
// Por padrão busca parametros.csv e configs_dn.csv no diretório atual.
// Os CSVs usam ';' como separador e codificação ISO-8859-1 (padrão do Excel pt-BR).
// Escreve: internal/infrastructure/postgres/migrations/002_seed_parametros.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

func main() {
	parametrosPath := "parametros.csv"
	configsPath := "configs_dn.csv"
	if len(os.Args) > 1 {
		parametrosPath = os.Args[1]
	}
	if len(os.Args) > 2 {
		configsPath = os.Args[2]
	}

	parametros, err := lerCSV(parametrosPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ler %s: %v\n", parametrosPath, err)
		os.Exit(1)
	}
	configs, err := lerCSV(configsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ler %s: %v\n", configsPath, err)
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_parametros.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Criar arquivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Parâmetros gerais e configurações de DN\n")
	out.WriteString("-- Gerado a partir dos CSVs exportados da planilha de margem\n\n")

	// 1. Parâmetros gerais
	// Colunas esperadas: codigo;descricao;valor_decimal;id_filial;id_tipo_venda;id_modalidade_fin;data_inicio;data_fim
	out.WriteString("-- 1. Parâmetros gerais\n")
	for _, linha := range parametros {
		if len(linha) < 8 || linha[0] == "" || strings.EqualFold(linha[0], "codigo") {
			continue
		}
		fmt.Fprintf(out,
			"INSERT INTO parametros_gerais (codigo, descricao, valor_decimal, id_filial, id_tipo_venda, id_modalidade_fin, data_inicio, data_fim, ativo)\n"+
				"VALUES ('%s', '%s', %s, %s, %s, %s, %s, %s, TRUE);\n",
			escapeSQL(linha[0]), escapeSQL(linha[1]), numeroBR(linha[2]),
			intOuNull(linha[3]), intOuNull(linha[4]), intOuNull(linha[5]),
			dataOuNull(linha[6]), dataOuNull(linha[7]))
	}

	// 2. Configurações de DN
	// Colunas esperadas: id_produto;id_filial;id_tipo_venda;id_modalidade_fin;possui_af;ano;mes;valor_dn;data_referencia;origem
	out.WriteString("\n-- 2. Configurações de DN\n")
	for _, linha := range configs {
		if len(linha) < 10 || linha[0] == "" || strings.EqualFold(linha[0], "id_produto") {
			continue
		}
		fmt.Fprintf(out,
			"INSERT INTO configs_dn (id_produto, id_filial, id_tipo_venda, id_modalidade_fin, possui_af, ano, mes, valor_dn, data_referencia, origem_dado, ativo)\n"+
				"VALUES (%s, %s, %s, %s, %s, %s, %s, %s, %s, '%s', TRUE);\n",
			linha[0], linha[1], linha[2], intOuNull(linha[3]), boolSQL(linha[4]),
			linha[5], intOuNull(linha[6]), numeroBR(linha[7]), dataOuNull(linha[8]),
			escapeSQL(linha[9]))
	}

	fmt.Printf("Gerado %s: %d parâmetros, %d configs de DN\n", outPath, len(parametros), len(configs))
}

// lerCSV lê um CSV ISO-8859-1 separado por ';' e devolve as linhas de dados.
func lerCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.Comma = ';'
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

// numeroBR converte um decimal no formato brasileiro (1.234,56) para o formato SQL.
func numeroBR(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NULL"
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	return s
}

func intOuNull(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || s == "0" {
		return "NULL"
	}
	return s
}

func dataOuNull(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NULL"
	}
	// dd/mm/aaaa -> aaaa-mm-dd
	if partes := strings.Split(s, "/"); len(partes) == 3 {
		s = fmt.Sprintf("%s-%s-%s", partes[2], partes[1], partes[0])
	}
	return "'" + s + "'"
}

func boolSQL(s string) string {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "1", "S", "SIM", "TRUE", "VERDADEIRO":
		return "TRUE"
	}
	return "FALSE"
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
