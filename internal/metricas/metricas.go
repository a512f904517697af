// internal/metricas/metricas.go
package metricas

import (
	"github.com/rs/zerolog"

	"github.com/DrivaTecnologia/api-parcerias/internal/nivel"
	"github.com/DrivaTecnologia/api-parcerias/internal/oportunidade"
	"github.com/DrivaTecnologia/api-parcerias/internal/pagamento"
	"github.com/DrivaTecnologia/api-parcerias/internal/parceiro"
)

// ComMetricas é o parceiro acrescido das métricas derivadas do período.
// Nunca é persistido: recalculado a cada leitura.
type ComMetricas struct {
	parceiro.Parceiro

	PagamentosRecebidos     float64     `json:"pagamentosRecebidos"`
	ReceitaGerada           float64     `json:"receitaGerada"`
	ValorTotalOportunidades float64     `json:"valorTotalOportunidades"`
	TaxaConversao           float64     `json:"taxaConversao"`
	Nivel                   nivel.Nivel `json:"nivel"`
	ComissaoAPagar          float64     `json:"comissaoAPagar"`
}

// Computar deriva as métricas de cada parceiro a partir das coleções já
// filtradas pelo período. O nível é calculado sobre os pagamentos
// recebidos, não sobre o valor das oportunidades ganhas. Oportunidades e
// pagamentos que referenciam um parceiro inexistente são descartados dos
// agregados (com log de debug, nunca erro).
func Computar(
	parceiros []parceiro.Parceiro,
	oportunidades []oportunidade.Oportunidade,
	pagamentos []pagamento.Pagamento,
	log zerolog.Logger,
) []ComMetricas {
	conhecidos := make(map[uint]bool, len(parceiros))
	for _, p := range parceiros {
		conhecidos[p.ID] = true
	}

	pagamentosPorParceiro := make(map[uint]float64)
	for _, pg := range pagamentos {
		if !conhecidos[pg.ParceiroID] {
			log.Debug().Uint("parceiroId", pg.ParceiroID).Uint("pagamentoId", pg.ID).
				Msg("pagamento com parceiro inexistente ignorado nos agregados")
			continue
		}
		pagamentosPorParceiro[pg.ParceiroID] += pg.Valor
	}

	oportunidadesPorParceiro := make(map[uint][]oportunidade.Oportunidade)
	for _, o := range oportunidades {
		if !conhecidos[o.ParceiroID] {
			log.Debug().Uint("parceiroId", o.ParceiroID).Uint("oportunidadeId", o.ID).
				Msg("oportunidade com parceiro inexistente ignorada nos agregados")
			continue
		}
		oportunidadesPorParceiro[o.ParceiroID] = append(oportunidadesPorParceiro[o.ParceiroID], o)
	}

	resultado := make([]ComMetricas, 0, len(parceiros))
	for _, p := range parceiros {
		recebidos := pagamentosPorParceiro[p.ID]
		doParceiro := oportunidadesPorParceiro[p.ID]

		var receitaGerada, valorTotal float64
		ganhas := 0
		for _, o := range doParceiro {
			valorTotal += o.Valor
			if o.Status == oportunidade.StatusGanho {
				receitaGerada += o.Valor
				ganhas++
			}
		}

		// Sem oportunidades no período a taxa é 0, nunca divisão por zero.
		var taxaConversao float64
		if len(doParceiro) > 0 {
			taxaConversao = float64(ganhas) / float64(len(doParceiro)) * 100
		}

		n := nivel.Calcular(recebidos, nivel.NormalizarTipo(p.Tipo))

		resultado = append(resultado, ComMetricas{
			Parceiro:                p,
			PagamentosRecebidos:     recebidos,
			ReceitaGerada:           receitaGerada,
			ValorTotalOportunidades: valorTotal,
			TaxaConversao:           taxaConversao,
			Nivel:                   n,
			ComissaoAPagar:          n.Comissao(recebidos),
		})
	}
	return resultado
}
