// internal/importacao/handler.go
package importacao

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/DrivaTecnologia/api-parcerias/internal/metricas"
	"github.com/DrivaTecnologia/api-parcerias/internal/oportunidade"
	"github.com/DrivaTecnologia/api-parcerias/internal/pagamento"
	"github.com/DrivaTecnologia/api-parcerias/internal/parceiro"
)

// Limite de upload das planilhas (10 MiB cobre qualquer exportação real)
const maxUpload = 10 << 20

// Handler recebe as planilhas CSV, reconcilia as linhas e persiste o lote
// validado em uma única transação. A tabulação de sucessos/falhas só é
// respondida depois do commit: se a escrita falhar, nada foi persistido e
// nenhuma contagem é devolvida.
type Handler struct {
	DB        *gorm.DB
	Parceiros parceiro.Repository
	Metricas  *metricas.Service
	Log       zerolog.Logger
}

func NewHandler(db *gorm.DB, m *metricas.Service, log zerolog.Logger) *Handler {
	return &Handler{
		DB:        db,
		Parceiros: parceiro.NewRepository(),
		Metricas:  m,
		Log:       log,
	}
}

// lerArquivo extrai e decodifica o CSV do form multipart.
func (h *Handler) lerArquivo(w http.ResponseWriter, r *http.Request) ([]Linha, bool) {
	if err := r.ParseMultipartForm(maxUpload); err != nil {
		http.Error(w, "form multipart inválido", http.StatusBadRequest)
		return nil, false
	}
	arquivo, _, err := r.FormFile("arquivo")
	if err != nil {
		http.Error(w, "arquivo .csv ausente", http.StatusBadRequest)
		return nil, false
	}
	defer arquivo.Close()

	linhas, err := LerLinhas(arquivo)
	if err != nil {
		// Erro de leitura do arquivo é fatal, sem tabulação parcial
		http.Error(w, "não foi possível ler a planilha", http.StatusBadRequest)
		return nil, false
	}
	return linhas, true
}

// ImportarParceiros trata POST /parceiros/importar
func (h *Handler) ImportarParceiros(w http.ResponseWriter, r *http.Request) {
	linhas, ok := h.lerArquivo(w, r)
	if !ok {
		return
	}

	resultado := Reconciliar(linhas, AlvoParceiros, Opcoes{})
	h.persistir(w, resultado, func(tx *gorm.DB) error {
		if len(resultado.Parceiros) == 0 {
			return nil
		}
		return tx.Create(&resultado.Parceiros).Error
	})
}

// ImportarOportunidades trata POST /oportunidades/importar. O campo de
// form `parceiroId` atribui todas as linhas ao parceiro escolhido; sem
// ele, cada linha precisa resolver seu `partnerName` pelo diretório.
func (h *Handler) ImportarOportunidades(w http.ResponseWriter, r *http.Request) {
	linhas, ok := h.lerArquivo(w, r)
	if !ok {
		return
	}

	opcoes := Opcoes{}
	if bruto := r.FormValue("parceiroId"); bruto != "" {
		id, err := strconv.Atoi(bruto)
		if err != nil {
			http.Error(w, "parceiroId inválido", http.StatusBadRequest)
			return
		}
		p, err := h.Parceiros.BuscarPorID(h.DB, uint(id))
		if err != nil {
			http.Error(w, "parceiro selecionado não encontrado", http.StatusBadRequest)
			return
		}
		opcoes.ParceiroSelecionadoID = p.ID
		opcoes.NomeParceiroSelecionado = p.Nome
	} else {
		diretorio, err := h.Parceiros.Diretorio(h.DB)
		if err != nil {
			http.Error(w, "erro ao carregar parceiros", http.StatusInternalServerError)
			return
		}
		opcoes.Diretorio = diretorio
	}

	resultado := Reconciliar(linhas, AlvoOportunidades, opcoes)
	h.persistir(w, resultado, func(tx *gorm.DB) error {
		return oportunidade.CreateInBatch(tx, resultado.Oportunidades)
	})
}

// ImportarPagamentos trata POST /pagamentos/importar
func (h *Handler) ImportarPagamentos(w http.ResponseWriter, r *http.Request) {
	linhas, ok := h.lerArquivo(w, r)
	if !ok {
		return
	}

	diretorio, err := h.Parceiros.Diretorio(h.DB)
	if err != nil {
		http.Error(w, "erro ao carregar parceiros", http.StatusInternalServerError)
		return
	}

	resultado := Reconciliar(linhas, AlvoPagamentos, Opcoes{Diretorio: diretorio})
	h.persistir(w, resultado, func(tx *gorm.DB) error {
		return pagamento.CreateInBatch(tx, resultado.Pagamentos)
	})
}

// persistir grava o lote em uma transação e responde a tabulação.
func (h *Handler) persistir(w http.ResponseWriter, resultado Resultado, gravar func(tx *gorm.DB) error) {
	if err := h.DB.Transaction(gravar); err != nil {
		h.Log.Error().Err(err).Msg("falha ao gravar lote importado")
		http.Error(w, "erro ao gravar o lote importado", http.StatusInternalServerError)
		return
	}

	h.Metricas.InvalidarCache()
	h.Log.Info().Int("sucessos", resultado.Sucessos).Int("falhas", resultado.Falhas).
		Msg("importação concluída")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resultado)
}
