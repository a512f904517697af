package parceiro

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/DrivaTecnologia/api-parcerias/internal/nivel"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// request DTO
type parceiroRequest struct {
	Nome         string `json:"nome"`
	Tipo         string `json:"tipo"`
	NomeContato  string `json:"nomeContato"`
	EmailContato string `json:"emailContato"`
}

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// CriarParceiro cadastra um novo parceiro
func (h *Handler) CriarParceiro(w http.ResponseWriter, r *http.Request) {
	var req parceiroRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.Nome == "" || req.NomeContato == "" || req.EmailContato == "" {
		http.Error(w, "nome, nomeContato e emailContato são obrigatórios", http.StatusBadRequest)
		return
	}

	p := Parceiro{
		Nome:         req.Nome,
		Tipo:         string(nivel.NormalizarTipo(req.Tipo)),
		NomeContato:  req.NomeContato,
		EmailContato: req.EmailContato,
	}

	if err := h.Repository.Salvar(h.DB, &p); err != nil {
		http.Error(w, "erro ao salvar parceiro", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(p)
}

// ListarParceiros retorna todos os parceiros (sem métricas derivadas)
func (h *Handler) ListarParceiros(w http.ResponseWriter, r *http.Request) {
	parceiros, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar parceiros", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(parceiros)
}

// BuscarPorID retorna um parceiro pelo ID
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	p, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "parceiro não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

// AtualizarParceiro altera dados de um parceiro existente
func (h *Handler) AtualizarParceiro(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req parceiroRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	dados := Parceiro{
		Nome:         req.Nome,
		Tipo:         string(nivel.NormalizarTipo(req.Tipo)),
		NomeContato:  req.NomeContato,
		EmailContato: req.EmailContato,
	}
	if err := h.Repository.Atualizar(h.DB, uint(id), &dados); err != nil {
		http.Error(w, "erro ao atualizar parceiro", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("parceiro atualizado com sucesso"))
}

// DeletarParceiro remove um parceiro
func (h *Handler) DeletarParceiro(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir parceiro", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("parceiro excluído com sucesso"))
}
