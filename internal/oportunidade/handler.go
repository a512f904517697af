package oportunidade

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

// request DTO. Valor chega como string para aceitar o formato brasileiro
// ("1.234,56") digitado no formulário.
type oportunidadeRequest struct {
	ParceiroID    uint   `json:"parceiroId"`
	Cliente       string `json:"cliente"`
	Valor         string `json:"valor"`
	Status        string `json:"status"`
	DataIndicacao string `json:"dataIndicacao"`
}

// Handler gerencia rotas de oportunidades
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

func (h *Handler) montar(req oportunidadeRequest) (*Oportunidade, string) {
	if req.Cliente == "" || req.Valor == "" || req.Status == "" || req.DataIndicacao == "" {
		return nil, "cliente, valor, status e dataIndicacao são obrigatórios"
	}
	if !StatusValido(req.Status) {
		return nil, "status inválido"
	}

	p, err := h.Parceiros.BuscarPorID(h.Repo.DB, req.ParceiroID)
	if err != nil {
		return nil, "parceiro não encontrado"
	}

	data, err := valores.ParseDataFlexivel(req.DataIndicacao)
	if err != nil {
		return nil, "dataIndicacao inválida"
	}

	return &Oportunidade{
		ParceiroID:    p.ID,
		NomeParceiro:  p.Nome,
		Cliente:       req.Cliente,
		Valor:         valores.ParseMonetario(req.Valor),
		Status:        req.Status,
		DataIndicacao: data,
	}, ""
}

// Criar trata POST /oportunidades
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req oportunidadeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	o, msg := h.montar(req)
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	if err := h.Repo.Create(o); err != nil {
		http.Error(w, "erro ao criar oportunidade", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(o)
}

// Listar trata GET /oportunidades, com filtro opcional de período
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	janela, err := periodo.DaRequisicao(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	list, err := h.Repo.ListAll()
	if err != nil {
		http.Error(w, "erro ao listar oportunidades", http.StatusInternalServerError)
		return
	}
	list = periodo.Filtrar(list, func(o Oportunidade) time.Time { return o.DataIndicacao }, janela)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// BuscarPorID trata GET /oportunidades/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	o, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "oportunidade não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(o)
}

// Atualizar trata PUT /oportunidades/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "oportunidade não encontrada", http.StatusNotFound)
		return
	}

	var req oportunidadeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	novo, msg := h.montar(req)
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	novo.ID = existente.ID
	novo.CreatedAt = existente.CreatedAt

	if err := h.Repo.Update(novo); err != nil {
		http.Error(w, "erro ao atualizar oportunidade", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(novo)
}

// Deletar trata DELETE /oportunidades/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repo.Delete(uint(id)); err != nil {
		http.Error(w, "erro ao excluir oportunidade", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ExcluirEmMassa trata POST /oportunidades/excluir-em-massa
func (h *Handler) ExcluirEmMassa(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		IDs []uint `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || len(payload.IDs) == 0 {
		http.Error(w, "informe os IDs a excluir", http.StatusBadRequest)
		return
	}

	if err := h.Repo.DeleteEmMassa(payload.IDs); err != nil {
		http.Error(w, "erro ao excluir oportunidades", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{"excluidas": len(payload.IDs)})
}
