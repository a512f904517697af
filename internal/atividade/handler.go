package atividade

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/DrivaTecnologia/api-parcerias/internal/parceiro"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// request DTO
type atividadeRequest struct {
	ParceiroID uint   `json:"parceiroId"`
	Tipo       string `json:"tipo"`
	Descricao  string `json:"descricao"`
}

// Handler gerencia rotas de atividades
type Handler struct {
	Repo      *Repository
	Parceiros parceiro.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		Repo:      NewRepository(db),
		Parceiros: parceiro.NewRepository(),
	}
}

// Criar trata POST /atividades
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req atividadeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if req.Descricao == "" {
		http.Error(w, "descrição é obrigatória", http.StatusBadRequest)
		return
	}

	p, err := h.Parceiros.BuscarPorID(h.Repo.DB, req.ParceiroID)
	if err != nil {
		http.Error(w, "parceiro não encontrado", http.StatusBadRequest)
		return
	}

	a := Atividade{
		ParceiroID:   p.ID,
		NomeParceiro: p.Nome,
		Tipo:         req.Tipo,
		Descricao:    req.Descricao,
	}
	if a.Tipo == "" {
		a.Tipo = "Reunião"
	}

	if err := h.Repo.Create(&a); err != nil {
		http.Error(w, "erro ao registrar atividade", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(a)
}

// ListarRecentes trata GET /atividades (feed do dashboard)
func (h *Handler) ListarRecentes(w http.ResponseWriter, r *http.Request) {
	limite := 20
	if bruto := r.URL.Query().Get("limite"); bruto != "" {
		if n, err := strconv.Atoi(bruto); err == nil && n > 0 {
			limite = n
		}
	}

	list, err := h.Repo.ListRecentes(limite)
	if err != nil {
		http.Error(w, "erro ao listar atividades", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// ListarPorParceiro trata GET /parceiros/{id}/atividades
func (h *Handler) ListarPorParceiro(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	list, err := h.Repo.ListByParceiro(uint(id))
	if err != nil {
		http.Error(w, "erro ao listar atividades", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// Atualizar trata PUT /atividades/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	a, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "atividade não encontrada", http.StatusNotFound)
		return
	}

	var req atividadeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	if req.Tipo != "" {
		a.Tipo = req.Tipo
	}
	if req.Descricao != "" {
		a.Descricao = req.Descricao
	}

	if err := h.Repo.Update(a); err != nil {
		http.Error(w, "erro ao atualizar atividade", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(a)
}

// Deletar trata DELETE /atividades/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repo.Delete(uint(id)); err != nil {
		http.Error(w, "erro ao excluir atividade", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
