package nutricao

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler gerencia rotas de nutrição de parceiros
type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// Criar trata POST /nutricao
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var c Conteudo
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if c.Titulo == "" || c.Texto == "" {
		http.Error(w, "título e texto são obrigatórios", http.StatusBadRequest)
		return
	}

	if err := h.Repo.Create(&c); err != nil {
		http.Error(w, "erro ao publicar conteúdo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// Listar trata GET /nutricao
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListAll()
	if err != nil {
		http.Error(w, "erro ao listar conteúdos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// Atualizar trata PUT /nutricao/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "conteúdo não encontrado", http.StatusNotFound)
		return
	}

	var payload Conteudo
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	c.Titulo = payload.Titulo
	c.Texto = payload.Texto

	if err := h.Repo.Update(c); err != nil {
		http.Error(w, "erro ao atualizar conteúdo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// Deletar trata DELETE /nutricao/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repo.Delete(uint(id)); err != nil {
		http.Error(w, "erro ao excluir conteúdo", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
