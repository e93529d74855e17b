package contrato

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MoraisCastro/api-provisionamento/internal/carteira"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// POST /contratos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var c Contrato
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	// A carteira é fixada pelo tipo de operação; contrato com tipo fora da
	// tabela não entra no sistema.
	if _, err := carteira.PorTipoOperacao(c.TipoOperacao); err != nil {
		http.Error(w, "tipo de operação desconhecido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Criar(h.DB, &c); err != nil {
		http.Error(w, "Erro ao salvar contrato", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// GET /contratos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	var (
		list []Contrato
		err  error
	)
	if q := r.URL.Query().Get("advogadoId"); q != "" {
		advID, parseErr := strconv.Atoi(q)
		if parseErr != nil {
			http.Error(w, "parâmetro 'advogadoId' inválido", http.StatusBadRequest)
			return
		}
		list, err = h.Repository.ListarPorAdvogado(h.DB, uint(advID))
	} else {
		list, err = h.Repository.ListarTodos(h.DB)
	}
	if err != nil {
		http.Error(w, "Erro ao listar contratos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// GET /tipos-operacao
// Lista os tipos de operação aceitos no cadastro de contratos.
func (h *Handler) ListarTiposOperacao(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(carteira.TiposOperacao())
}

// GET /contratos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de contrato inválido", http.StatusBadRequest)
		return
	}
	c, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Contrato não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// GET /bancos/{id}/contratos
func (h *Handler) ListarPorBanco(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de banco inválido", http.StatusBadRequest)
		return
	}
	list, err := h.Repository.ListarPorBanco(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Erro ao listar contratos do banco", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// PUT /contratos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de contrato inválido", http.StatusBadRequest)
		return
	}
	var c Contrato
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if _, err := carteira.PorTipoOperacao(c.TipoOperacao); err != nil {
		http.Error(w, "tipo de operação desconhecido", http.StatusBadRequest)
		return
	}
	c.ID = uint(id)
	if err := h.Repository.Atualizar(h.DB, &c); err != nil {
		http.Error(w, "Erro ao atualizar contrato", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// DELETE /contratos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de contrato inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "Erro ao excluir contrato", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
