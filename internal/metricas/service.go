// internal/metricas/service.go
package metricas

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/DrivaTecnologia/api-parcerias/internal/oportunidade"
	"github.com/DrivaTecnologia/api-parcerias/internal/pagamento"
	"github.com/DrivaTecnologia/api-parcerias/internal/parceiro"
	"github.com/DrivaTecnologia/api-parcerias/internal/periodo"
)

const (
	chaveResumo = "resumo_dashboard_%s_%s"

	ExpiracaoPadrao  = 5 * time.Minute
	IntervaloLimpeza = 15 * time.Minute
)

// ResumoDashboard agrega os números exibidos na página inicial.
type ResumoDashboard struct {
	TotalParceiros         int     `json:"totalParceiros"`
	OportunidadesNoPeriodo int     `json:"oportunidadesNoPeriodo"`
	ReceitaGerada          float64 `json:"receitaGerada"`
	PagamentosRecebidos    float64 `json:"pagamentosRecebidos"`
	ComissaoAPagar         float64 `json:"comissaoAPagar"`
}

// Service computa métricas derivadas sob demanda, com cache curto para o
// resumo do dashboard.
type Service struct {
	DB            *gorm.DB
	Parceiros     parceiro.Repository
	Oportunidades *oportunidade.Repository
	Pagamentos    *pagamento.Repository

	cacheResumo *cache.Cache
	log         zerolog.Logger
}

func NewService(db *gorm.DB, log zerolog.Logger) *Service {
	return &Service{
		DB:            db,
		Parceiros:     parceiro.NewRepository(),
		Oportunidades: oportunidade.NewRepository(db),
		Pagamentos:    pagamento.NewRepository(db),
		cacheResumo:   cache.New(ExpiracaoPadrao, IntervaloLimpeza),
		log:           log,
	}
}

// carregarPeriodo busca as três coleções e aplica a janela nas que têm
// data própria.
func (s *Service) carregarPeriodo(janela periodo.Janela) ([]parceiro.Parceiro, []oportunidade.Oportunidade, []pagamento.Pagamento, error) {
	parceiros, err := s.Parceiros.ListarTodos(s.DB)
	if err != nil {
		return nil, nil, nil, err
	}
	oportunidades, err := s.Oportunidades.ListAll()
	if err != nil {
		return nil, nil, nil, err
	}
	pagamentos, err := s.Pagamentos.ListAll()
	if err != nil {
		return nil, nil, nil, err
	}

	oportunidades = periodo.Filtrar(oportunidades, func(o oportunidade.Oportunidade) time.Time { return o.DataIndicacao }, janela)
	pagamentos = periodo.Filtrar(pagamentos, func(p pagamento.Pagamento) time.Time { return p.DataPagamento }, janela)
	return parceiros, oportunidades, pagamentos, nil
}

// ParceirosComMetricas devolve cada parceiro com nível, comissão e taxas
// derivadas do período.
func (s *Service) ParceirosComMetricas(janela periodo.Janela) ([]ComMetricas, error) {
	parceiros, oportunidades, pagamentos, err := s.carregarPeriodo(janela)
	if err != nil {
		return nil, err
	}
	return Computar(parceiros, oportunidades, pagamentos, s.log), nil
}

// MetricasDoParceiro devolve as métricas de um único parceiro no período.
func (s *Service) MetricasDoParceiro(id uint, janela periodo.Janela) (*ComMetricas, error) {
	todos, err := s.ParceirosComMetricas(janela)
	if err != nil {
		return nil, err
	}
	for i := range todos {
		if todos[i].ID == id {
			return &todos[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// Resumo monta o agregado do dashboard, servido do cache quando a mesma
// janela foi consultada há pouco.
func (s *Service) Resumo(janela periodo.Janela) (*ResumoDashboard, error) {
	chave := fmt.Sprintf(chaveResumo, formatarPonta(janela.Inicio), formatarPonta(janela.Fim))
	if cached, achou := s.cacheResumo.Get(chave); achou {
		return cached.(*ResumoDashboard), nil
	}

	parceiros, oportunidades, pagamentos, err := s.carregarPeriodo(janela)
	if err != nil {
		return nil, err
	}

	resumo := &ResumoDashboard{
		TotalParceiros:         len(parceiros),
		OportunidadesNoPeriodo: len(oportunidades),
	}
	for _, m := range Computar(parceiros, oportunidades, pagamentos, s.log) {
		resumo.ReceitaGerada += m.ReceitaGerada
		resumo.PagamentosRecebidos += m.PagamentosRecebidos
		resumo.ComissaoAPagar += m.ComissaoAPagar
	}

	s.cacheResumo.Set(chave, resumo, cache.DefaultExpiration)
	return resumo, nil
}

// InvalidarCache descarta os resumos guardados. Chamado após escritas em
// massa (importações, exclusões em lote).
func (s *Service) InvalidarCache() {
	s.cacheResumo.Flush()
}

func formatarPonta(t *time.Time) string {
	if t == nil {
		return "aberto"
	}
	return t.Format("2006-01-02")
}
