// internal/periodo/periodo.go
package periodo

import "time"

// Janela delimita o filtro de datas do painel. Ambas as pontas são
// opcionais e inclusivas: o início conta a partir de 00:00:00 e o fim até
// 23:59:59 do dia informado.
type Janela struct {
	Inicio *time.Time
	Fim    *time.Time
}

// Aberta indica ausência total de filtro.
func (j Janela) Aberta() bool {
	return j.Inicio == nil && j.Fim == nil
}

// Contem verifica se a data cai dentro da janela.
func (j Janela) Contem(t time.Time) bool {
	if j.Inicio != nil {
		inicio := time.Date(j.Inicio.Year(), j.Inicio.Month(), j.Inicio.Day(), 0, 0, 0, 0, t.Location())
		if t.Before(inicio) {
			return false
		}
	}
	if j.Fim != nil {
		fim := time.Date(j.Fim.Year(), j.Fim.Month(), j.Fim.Day(), 23, 59, 59, 0, t.Location())
		if t.After(fim) {
			return false
		}
	}
	return true
}

// Filtrar devolve o subconjunto cujos campos de data caem na janela.
func Filtrar[T any](itens []T, data func(T) time.Time, j Janela) []T {
	if j.Aberta() {
		return itens
	}
	var dentro []T
	for _, item := range itens {
		if j.Contem(data(item)) {
			dentro = append(dentro, item)
		}
	}
	return dentro
}
