package metricas

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/DrivaTecnologia/api-parcerias/internal/oportunidade"
	"github.com/DrivaTecnologia/api-parcerias/internal/pagamento"
	"github.com/DrivaTecnologia/api-parcerias/internal/parceiro"
	"github.com/DrivaTecnologia/api-parcerias/internal/periodo"
)

func servicoDeTeste(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, parceiro.Migrate(db))
	require.NoError(t, oportunidade.Migrate(db))
	require.NoError(t, pagamento.Migrate(db))
	return NewService(db, zerolog.Nop())
}

func semearDados(t *testing.T, s *Service) uint {
	t.Helper()

	acme := parceiro.Parceiro{Nome: "Acme", Tipo: "FINDER"}
	require.NoError(t, s.DB.Create(&acme).Error)

	marco := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	junho := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.DB.Create(&oportunidade.Oportunidade{
		ParceiroID: acme.ID, Cliente: "Dentro", Valor: 3000,
		Status: oportunidade.StatusGanho, DataIndicacao: marco,
	}).Error)
	require.NoError(t, s.DB.Create(&oportunidade.Oportunidade{
		ParceiroID: acme.ID, Cliente: "Fora", Valor: 9000,
		Status: oportunidade.StatusGanho, DataIndicacao: junho,
	}).Error)
	require.NoError(t, s.DB.Create(&pagamento.Pagamento{
		ParceiroID: acme.ID, Cliente: "Dentro", Valor: 6000, DataPagamento: marco,
	}).Error)
	require.NoError(t, s.DB.Create(&pagamento.Pagamento{
		ParceiroID: acme.ID, Cliente: "Fora", Valor: 50000, DataPagamento: junho,
	}).Error)

	return acme.ID
}

func janelaMarco() periodo.Janela {
	inicio := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	fim := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
	return periodo.Janela{Inicio: &inicio, Fim: &fim}
}

func TestParceirosComMetricasRespeitaJanela(t *testing.T) {
	s := servicoDeTeste(t)
	semearDados(t, s)

	// Sem filtro os dois pagamentos contam e o parceiro chega a Diamante.
	todos, err := s.ParceirosComMetricas(periodo.Janela{})
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.InDelta(t, 56000.0, todos[0].PagamentosRecebidos, 0.001)
	assert.Equal(t, "Diamante", todos[0].Nivel.Nome)

	// Com a janela de março só os registros de março entram.
	marco, err := s.ParceirosComMetricas(janelaMarco())
	require.NoError(t, err)
	require.Len(t, marco, 1)
	assert.InDelta(t, 6000.0, marco[0].PagamentosRecebidos, 0.001)
	assert.InDelta(t, 3000.0, marco[0].ReceitaGerada, 0.001)
	assert.Equal(t, "Ouro", marco[0].Nivel.Nome)
	assert.InDelta(t, 600.0, marco[0].ComissaoAPagar, 0.001)
}

func TestMetricasDoParceiro(t *testing.T) {
	s := servicoDeTeste(t)
	id := semearDados(t, s)

	m, err := s.MetricasDoParceiro(id, janelaMarco())
	require.NoError(t, err)
	assert.Equal(t, "Acme", m.Nome)
	assert.InDelta(t, 100.0, m.TaxaConversao, 0.001)

	_, err = s.MetricasDoParceiro(999, periodo.Janela{})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestResumoUsaCacheAteInvalidar(t *testing.T) {
	s := servicoDeTeste(t)
	id := semearDados(t, s)

	primeiro, err := s.Resumo(janelaMarco())
	require.NoError(t, err)
	assert.Equal(t, 1, primeiro.TotalParceiros)
	assert.Equal(t, 1, primeiro.OportunidadesNoPeriodo)
	assert.InDelta(t, 6000.0, primeiro.PagamentosRecebidos, 0.001)

	// Escrita direta no banco não aparece enquanto o cache vale.
	marco := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.DB.Create(&pagamento.Pagamento{
		ParceiroID: id, Cliente: "Novo", Valor: 1000, DataPagamento: marco,
	}).Error)

	emCache, err := s.Resumo(janelaMarco())
	require.NoError(t, err)
	assert.InDelta(t, 6000.0, emCache.PagamentosRecebidos, 0.001)

	s.InvalidarCache()

	atualizado, err := s.Resumo(janelaMarco())
	require.NoError(t, err)
	assert.InDelta(t, 7000.0, atualizado.PagamentosRecebidos, 0.001)
}

func TestResumoJanelasDiferentesNaoColidem(t *testing.T) {
	s := servicoDeTeste(t)
	semearDados(t, s)

	marco, err := s.Resumo(janelaMarco())
	require.NoError(t, err)

	tudo, err := s.Resumo(periodo.Janela{})
	require.NoError(t, err)

	assert.Equal(t, 1, marco.OportunidadesNoPeriodo)
	assert.Equal(t, 2, tudo.OportunidadesNoPeriodo)
}
