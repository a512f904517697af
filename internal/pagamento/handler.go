package pagamento

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/DrivaTecnologia/api-parcerias/internal/parceiro"
	"github.com/DrivaTecnologia/api-parcerias/internal/periodo"
	"github.com/DrivaTecnologia/api-parcerias/internal/valores"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// request DTO
type pagamentoRequest struct {
	ParceiroID    uint   `json:"parceiroId"`
	Cliente       string `json:"cliente"`
	Valor         string `json:"valor"`
	DataPagamento string `json:"dataPagamento"`
}

// Handler gerencia rotas de pagamentos
type Handler struct {
	Repo      *Repository
	Parceiros parceiro.Repository
}

// NewHandler cria um novo Handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		Repo:      NewRepository(db),
		Parceiros: parceiro.NewRepository(),
	}
}

// Criar trata POST /pagamentos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req pagamentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if req.Cliente == "" || req.Valor == "" || req.DataPagamento == "" {
		http.Error(w, "cliente, valor e dataPagamento são obrigatórios", http.StatusBadRequest)
		return
	}

	p, err := h.Parceiros.BuscarPorID(h.Repo.DB, req.ParceiroID)
	if err != nil {
		http.Error(w, "parceiro não encontrado", http.StatusBadRequest)
		return
	}

	data, err := valores.ParseDataFlexivel(req.DataPagamento)
	if err != nil {
		http.Error(w, "dataPagamento inválida", http.StatusBadRequest)
		return
	}

	pg := Pagamento{
		ParceiroID:    p.ID,
		NomeParceiro:  p.Nome,
		Cliente:       req.Cliente,
		Valor:         valores.ParseMonetario(req.Valor),
		DataPagamento: data,
	}
	if err := h.Repo.Create(&pg); err != nil {
		http.Error(w, "erro ao registrar pagamento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(pg)
}

// Listar trata GET /pagamentos, com filtro opcional de período
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	janela, err := periodo.DaRequisicao(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	list, err := h.Repo.ListAll()
	if err != nil {
		http.Error(w, "erro ao listar pagamentos", http.StatusInternalServerError)
		return
	}
	list = periodo.Filtrar(list, func(p Pagamento) time.Time { return p.DataPagamento }, janela)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// Deletar trata DELETE /pagamentos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repo.Delete(uint(id)); err != nil {
		http.Error(w, "erro ao excluir pagamento", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ExcluirEmMassa trata POST /pagamentos/excluir-em-massa
func (h *Handler) ExcluirEmMassa(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		IDs []uint `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || len(payload.IDs) == 0 {
		http.Error(w, "informe os IDs a excluir", http.StatusBadRequest)
		return
	}

	if err := h.Repo.DeleteEmMassa(payload.IDs); err != nil {
		http.Error(w, "erro ao excluir pagamentos", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{"excluidos": len(payload.IDs)})
}
