package garantia

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// Handler gerencia rotas de garantias
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo Handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// Create trata POST /contratos/{id}/garantias
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	contratoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de contrato inválido", http.StatusBadRequest)
		return
	}

	var g Garantia
	if err := json.NewDecoder(r.Body).Decode(&g); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	g.ContratoID = uint(contratoID)

	if err := h.Repo.Create(&g); err != nil {
		http.Error(w, "Erro ao criar garantia", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(g)
}

// List trata GET /contratos/{id}/garantias
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	contratoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de contrato inválido", http.StatusBadRequest)
		return
	}

	list, err := h.Repo.FindByContrato(uint(contratoID))
	if err != nil {
		http.Error(w, "Erro ao buscar garantias", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// Update trata PUT /garantias/{gid}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	gid, err := strconv.Atoi(mux.Vars(r)["gid"])
	if err != nil {
		http.Error(w, "ID de garantia inválido", http.StatusBadRequest)
		return
	}

	g, err := h.Repo.FindByID(uint(gid))
	if err != nil {
		http.Error(w, "Garantia não encontrada", http.StatusNotFound)
		return
	}

	var payload Garantia
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	g.Tipo = payload.Tipo
	g.Descricao = payload.Descricao
	g.Valor = payload.Valor
	g.Ativa = payload.Ativa

	if err := h.Repo.Update(g); err != nil {
		http.Error(w, "Erro ao atualizar garantia", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(g)
}

// Delete trata DELETE /garantias/{gid}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	gid, err := strconv.Atoi(mux.Vars(r)["gid"])
	if err != nil {
		http.Error(w, "ID de garantia inválido", http.StatusBadRequest)
		return
	}

	g, err := h.Repo.FindByID(uint(gid))
	if err != nil {
		http.Error(w, "Garantia não encontrada", http.StatusNotFound)
		return
	}

	if err := h.Repo.Delete(g); err != nil {
		http.Error(w, "Erro ao deletar garantia", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
