package parcelaacordo

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// DTO usado no PUT /parcelas-acordo/{pid}
type ParcelaUpdateDTO struct {
	Valor          float64   `json:"valor"`
	DataVencimento time.Time `json:"dataVencimento"`
	Status         string    `json:"status"`
	Comprovante    string    `json:"comprovante"`
}

// GET /acordos/{aid}/parcelas
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	aid, err := strconv.Atoi(mux.Vars(r)["aid"])
	if err != nil {
		http.Error(w, "ID do acordo inválido", http.StatusBadRequest)
		return
	}

	parcelas, err := h.Repo.ListByAcordoID(uint(aid))
	if err != nil {
		http.Error(w, "Erro ao buscar parcelas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(parcelas)
}

// PUT /parcelas-acordo/{pid}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	pid, err := strconv.Atoi(mux.Vars(r)["pid"])
	if err != nil {
		http.Error(w, "ID da parcela inválido", http.StatusBadRequest)
		return
	}

	parcela, err := h.Repo.FindByID(uint(pid))
	if err != nil {
		http.Error(w, "Parcela não encontrada", http.StatusNotFound)
		return
	}

	var in ParcelaUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	parcela.Valor = in.Valor
	parcela.DataVencimento = in.DataVencimento
	parcela.Status = in.Status
	parcela.Comprovante = in.Comprovante

	if err := h.Repo.Update(parcela); err != nil {
		http.Error(w, "Erro ao atualizar parcela", http.StatusInternalServerError)
		return
	}

	// Mantém o total do acordo coerente com as parcelas.
	if err := h.Repo.RecalcTotalForAcordo(nil, parcela.AcordoID); err != nil {
		http.Error(w, "Erro ao recalcular total do acordo", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(parcela)
}

// PATCH /parcelas-acordo/{pid}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	pid, err := strconv.Atoi(mux.Vars(r)["pid"])
	if err != nil {
		http.Error(w, "ID da parcela inválido", http.StatusBadRequest)
		return
	}

	var payload struct {
		Status        string     `json:"status"`
		DataPagamento *time.Time `json:"dataPagamento"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if payload.Status == "" {
		http.Error(w, "O campo 'status' é obrigatório", http.StatusBadRequest)
		return
	}

	dataPagamento := time.Now()
	if payload.DataPagamento != nil {
		dataPagamento = *payload.DataPagamento
	}

	if err := h.Repo.UpdateStatus(uint(pid), payload.Status, dataPagamento); err != nil {
		http.Error(w, "Erro ao atualizar status da parcela", http.StatusInternalServerError)
		return
	}

	parcela, err := h.Repo.FindByID(uint(pid))
	if err != nil {
		http.Error(w, "Parcela não encontrada após atualização", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(parcela)
}

// DELETE /parcelas-acordo/{pid}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	pid, err := strconv.Atoi(mux.Vars(r)["pid"])
	if err != nil {
		http.Error(w, "ID da parcela inválido", http.StatusBadRequest)
		return
	}

	parcela, err := h.Repo.FindByID(uint(pid))
	if err != nil {
		http.Error(w, "Parcela não encontrada", http.StatusNotFound)
		return
	}

	if err := h.Repo.DeleteByID(uint(pid)); err != nil {
		http.Error(w, "Erro ao deletar parcela", http.StatusInternalServerError)
		return
	}

	if err := h.Repo.RecalcTotalForAcordo(nil, parcela.AcordoID); err != nil {
		http.Error(w, "Erro ao recalcular total do acordo", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
