// internal/importacao/csv.go
package importacao

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Linha é uma linha de planilha já decodificada, indexada pelos nomes das
// colunas do cabeçalho. Colunas ausentes são lidas como string vazia.
type Linha map[string]string

// Campo devolve o valor da coluna sem espaços nas pontas.
func (l Linha) Campo(nome string) string {
	return strings.TrimSpace(l[nome])
}

// LerLinhas decodifica um CSV com linha de cabeçalho em um slice de Linha.
// A ordem das colunas não é garantida pelas planilhas exportadas, então o
// acesso é sempre por nome. Linhas vazias são puladas. Erros de leitura do
// arquivo são fatais: nenhuma tabulação parcial é devolvida.
func LerLinhas(r io.Reader) ([]Linha, error) {
	leitor := csv.NewReader(r)
	leitor.FieldsPerRecord = -1 // planilhas reais variam o número de campos
	leitor.TrimLeadingSpace = true

	cabecalho, err := leitor.Read()
	if err != nil {
		return nil, fmt.Errorf("importacao: falha ao ler cabeçalho do CSV: %w", err)
	}
	for i := range cabecalho {
		cabecalho[i] = strings.TrimSpace(cabecalho[i])
	}

	registros, err := leitor.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("importacao: falha ao ler registros do CSV: %w", err)
	}

	var linhas []Linha
	for _, registro := range registros {
		vazia := true
		linha := make(Linha, len(cabecalho))
		for i, coluna := range cabecalho {
			if i < len(registro) {
				linha[coluna] = registro[i]
				if strings.TrimSpace(registro[i]) != "" {
					vazia = false
				}
			}
		}
		if !vazia {
			linhas = append(linhas, linha)
		}
	}
	return linhas, nil
}
