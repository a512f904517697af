// internal/metricas/handler.go
package metricas

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/DrivaTecnologia/api-parcerias/internal/periodo"
	"github.com/gorilla/mux"
)

// Handler expõe as leituras derivadas: lista de parceiros com nível e
// comissão, resumo individual e resumo do dashboard.
type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// ListarParceiros trata GET /parceiros/metricas
func (h *Handler) ListarParceiros(w http.ResponseWriter, r *http.Request) {
	janela, err := periodo.DaRequisicao(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	comMetricas, err := h.Service.ParceirosComMetricas(janela)
	if err != nil {
		http.Error(w, "erro ao calcular métricas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(comMetricas)
}

// ResumoParceiro trata GET /parceiros/{id}/resumo
func (h *Handler) ResumoParceiro(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	janela, err := periodo.DaRequisicao(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m, err := h.Service.MetricasDoParceiro(uint(id), janela)
	if err != nil {
		http.Error(w, "parceiro não encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(m)
}

// ResumoDashboard trata GET /dashboard/resumo
func (h *Handler) ResumoDashboard(w http.ResponseWriter, r *http.Request) {
	janela, err := periodo.DaRequisicao(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resumo, err := h.Service.Resumo(janela)
	if err != nil {
		http.Error(w, "erro ao montar resumo", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resumo)
}
