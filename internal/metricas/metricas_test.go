package metricas

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrivaTecnologia/api-parcerias/internal/oportunidade"
	"github.com/DrivaTecnologia/api-parcerias/internal/pagamento"
	"github.com/DrivaTecnologia/api-parcerias/internal/parceiro"
)

func TestComputar(t *testing.T) {
	parceiros := []parceiro.Parceiro{
		{ID: 1, Nome: "Acme", Tipo: "FINDER"},
		{ID: 2, Nome: "Beta", Tipo: "SELLER"},
	}
	oportunidades := []oportunidade.Oportunidade{
		{ParceiroID: 1, Cliente: "A", Valor: 10000, Status: oportunidade.StatusGanho},
		{ParceiroID: 1, Cliente: "B", Valor: 4000, Status: oportunidade.StatusPendente},
		{ParceiroID: 2, Cliente: "C", Valor: 8000, Status: oportunidade.StatusPerdido},
	}
	pagamentos := []pagamento.Pagamento{
		{ParceiroID: 1, Valor: 4000},
		{ParceiroID: 1, Valor: 2000},
		{ParceiroID: 2, Valor: 25000},
	}

	resultado := Computar(parceiros, oportunidades, pagamentos, zerolog.Nop())
	require.Len(t, resultado, 2)

	acme := resultado[0]
	assert.InDelta(t, 6000.0, acme.PagamentosRecebidos, 0.001)
	assert.InDelta(t, 10000.0, acme.ReceitaGerada, 0.001)
	assert.InDelta(t, 14000.0, acme.ValorTotalOportunidades, 0.001)
	assert.InDelta(t, 50.0, acme.TaxaConversao, 0.001)
	assert.Equal(t, "Ouro", acme.Nivel.Nome)
	assert.InDelta(t, 600.0, acme.ComissaoAPagar, 0.001) // 6000 a 10%

	beta := resultado[1]
	assert.InDelta(t, 25000.0, beta.PagamentosRecebidos, 0.001)
	assert.InDelta(t, 0.0, beta.ReceitaGerada, 0.001)
	assert.InDelta(t, 0.0, beta.TaxaConversao, 0.001)
	assert.Equal(t, "Diamante", beta.Nivel.Nome)
	assert.InDelta(t, 6250.0, beta.ComissaoAPagar, 0.001) // 25000 a 25%
}

func TestComputarSemOportunidades(t *testing.T) {
	parceiros := []parceiro.Parceiro{{ID: 1, Nome: "Acme", Tipo: "FINDER"}}

	resultado := Computar(parceiros, nil, nil, zerolog.Nop())
	require.Len(t, resultado, 1)

	assert.InDelta(t, 0.0, resultado[0].TaxaConversao, 0.001)
	assert.InDelta(t, 0.0, resultado[0].PagamentosRecebidos, 0.001)
	assert.Equal(t, "N/A", resultado[0].Nivel.Nome)
	assert.InDelta(t, 0.0, resultado[0].ComissaoAPagar, 0.001)
}

func TestComputarIgnoraReferenciasOrfas(t *testing.T) {
	parceiros := []parceiro.Parceiro{{ID: 1, Nome: "Acme", Tipo: "FINDER"}}
	oportunidades := []oportunidade.Oportunidade{
		{ParceiroID: 1, Valor: 1000, Status: oportunidade.StatusGanho},
		{ParceiroID: 99, Valor: 9999, Status: oportunidade.StatusGanho},
	}
	pagamentos := []pagamento.Pagamento{
		{ParceiroID: 1, Valor: 600},
		{ParceiroID: 99, Valor: 50000},
	}

	resultado := Computar(parceiros, oportunidades, pagamentos, zerolog.Nop())
	require.Len(t, resultado, 1)

	assert.InDelta(t, 600.0, resultado[0].PagamentosRecebidos, 0.001)
	assert.InDelta(t, 1000.0, resultado[0].ReceitaGerada, 0.001)
	assert.Equal(t, "Prata", resultado[0].Nivel.Nome)
}

func TestComputarTipoDesconhecidoTratadoComoFinder(t *testing.T) {
	parceiros := []parceiro.Parceiro{{ID: 1, Nome: "Acme", Tipo: "AFILIADO"}}
	pagamentos := []pagamento.Pagamento{{ParceiroID: 1, Valor: 25000}}

	resultado := Computar(parceiros, nil, pagamentos, zerolog.Nop())
	require.Len(t, resultado, 1)
	// 25000 é Diamante para seller mas apenas Ouro para finder.
	assert.Equal(t, "Ouro", resultado[0].Nivel.Nome)
}
