// internal/valores/valores.go
package valores

import (
	"strconv"
	"strings"
	"time"
)

// ParseMonetario converte valores monetários em formato brasileiro
// ("1.234,56", "R$ 500,00", "30.000") para float64. O ponto é sempre
// separador de milhar e a vírgula é sempre o decimal. Valores ilegíveis
// ou negativos resultam em 0; a função nunca retorna erro.
func ParseMonetario(s string) float64 {
	limpo := strings.TrimSpace(s)
	limpo = strings.TrimPrefix(limpo, "R$")
	limpo = strings.ReplaceAll(limpo, " ", "")
	if limpo == "" {
		return 0
	}

	limpo = strings.ReplaceAll(limpo, ".", "")
	limpo = strings.Replace(limpo, ",", ".", 1)

	v, err := strconv.ParseFloat(limpo, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// Formatos aceitos pelas planilhas importadas. O segmento de 4 dígitos é
// sempre o ano, independente da posição.
var formatosData = []string{
	"2006-01-02",
	"2006-01-02 15:04",
	"02/01/2006",
	"02/01/2006 15:04",
}

// ParseDataFlexivel interpreta datas "AAAA-MM-DD", "AAAA-MM-DD HH:MM",
// "DD/MM/AAAA" ou "DD/MM/AAAA HH:MM". A hora é sempre descartada.
// Retorna erro para entradas ilegíveis.
func ParseDataFlexivel(s string) (time.Time, error) {
	limpo := strings.TrimSpace(s)

	var ultimoErr error
	for _, formato := range formatosData {
		t, err := time.Parse(formato, limpo)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
		ultimoErr = err
	}
	return time.Time{}, ultimoErr
}
