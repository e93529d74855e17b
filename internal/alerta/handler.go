package alerta

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler gerencia rotas de alertas de momento
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// Listar trata GET /alertas, com filtro opcional ?lida=true|false
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	var (
		alertas []Alerta
		err     error
	)

	if q := r.URL.Query().Get("lida"); q != "" {
		lida, parseErr := strconv.ParseBool(q)
		if parseErr != nil {
			http.Error(w, "parâmetro 'lida' inválido", http.StatusBadRequest)
			return
		}
		alertas, err = h.Repository.ListarPorLida(h.DB, lida)
	} else {
		alertas, err = h.Repository.ListarTodos(h.DB)
	}
	if err != nil {
		http.Error(w, "erro ao buscar alertas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(alertas)
}

// ListarPorContrato trata GET /contratos/{id}/alertas
func (h *Handler) ListarPorContrato(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de contrato inválido", http.StatusBadRequest)
		return
	}

	alertas, err := h.Repository.ListarPorContrato(h.DB, uint(id))
	if err != nil {
		http.Error(w, "erro ao buscar alertas do contrato", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(alertas)
}

// MarcarComoLida trata PATCH /alertas/{id}/lida
func (h *Handler) MarcarComoLida(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de alerta inválido", http.StatusBadRequest)
		return
	}

	if _, err := h.Repository.BuscarPorID(h.DB, uint(id)); err != nil {
		http.Error(w, "alerta não encontrado", http.StatusNotFound)
		return
	}

	if err := h.Repository.MarcarComoLida(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao marcar alerta como lido", http.StatusInternalServerError)
		return
	}

	a, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "alerta não encontrado após atualização", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(a)
}
