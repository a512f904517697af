package recurso

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler gerencia rotas da central de recursos
type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// Criar trata POST /recursos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var rec Recurso
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if rec.Titulo == "" || rec.URL == "" {
		http.Error(w, "título e url são obrigatórios", http.StatusBadRequest)
		return
	}

	if err := h.Repo.Create(&rec); err != nil {
		http.Error(w, "erro ao salvar recurso", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(rec)
}

// Listar trata GET /recursos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListAll()
	if err != nil {
		http.Error(w, "erro ao listar recursos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// Atualizar trata PUT /recursos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	rec, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "recurso não encontrado", http.StatusNotFound)
		return
	}

	var payload Recurso
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	rec.Titulo = payload.Titulo
	rec.Descricao = payload.Descricao
	rec.URL = payload.URL
	rec.Categoria = payload.Categoria

	if err := h.Repo.Update(rec); err != nil {
		http.Error(w, "erro ao atualizar recurso", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rec)
}

// Deletar trata DELETE /recursos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repo.Delete(uint(id)); err != nil {
		http.Error(w, "erro ao excluir recurso", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
