// internal/periodo/http.go
package periodo

import (
	"fmt"
	"net/http"
	"time"
)

// DaRequisicao lê os query params `inicio` e `fim` (AAAA-MM-DD, ambos
// opcionais) e monta a janela do filtro.
func DaRequisicao(r *http.Request) (Janela, error) {
	var j Janela

	if bruto := r.URL.Query().Get("inicio"); bruto != "" {
		t, err := time.Parse("2006-01-02", bruto)
		if err != nil {
			return Janela{}, fmt.Errorf("parâmetro 'inicio' inválido: %w", err)
		}
		j.Inicio = &t
	}
	if bruto := r.URL.Query().Get("fim"); bruto != "" {
		t, err := time.Parse("2006-01-02", bruto)
		if err != nil {
			return Janela{}, fmt.Errorf("parâmetro 'fim' inválido: %w", err)
		}
		j.Fim = &t
	}
	return j, nil
}
