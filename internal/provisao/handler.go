package provisao

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/MoraisCastro/api-provisionamento/internal/notificacao"
	"github.com/gorilla/mux"
)

// Handler gerencia rotas de análise de provisão
type Handler struct {
	Service *Service
	Repo    *Repository
}

// NewHandler cria um novo Handler
func NewHandler(service *Service) *Handler {
	return &Handler{Service: service, Repo: NewRepository(service.DB)}
}

// Calcular trata POST /contratos/{id}/analises
// Executa a cadeia completa para um contrato e persiste análise, momento e
// alertas. O corpo pode trazer uma data de referência para reprodução de
// cálculos passados.
func (h *Handler) Calcular(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de contrato inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	dataReferencia, ok := h.dataReferencia(w, r)
	if !ok {
		return
	}

	c, err := h.Service.ContratoRepo.BuscarPorID(h.Service.DB, uint(id))
	if err != nil {
		http.Error(w, "Contrato não encontrado", http.StatusNotFound)
		return
	}

	res, err := h.Service.CalcularParaContrato(c, dataReferencia)
	if err != nil {
		http.Error(w, "não foi possível calcular a provisão: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	// Notificação fora da transação: falha de webhook não desfaz cálculo.
	for _, a := range res.Alertas {
		notificacao.EnviarWebhookAlerta(a)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(res)
}

// Listar trata GET /contratos/{id}/analises
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de contrato inválido", http.StatusBadRequest)
		return
	}

	list, err := h.Repo.FindByContrato(uint(id))
	if err != nil {
		http.Error(w, "Erro ao buscar análises", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// BuscarPorID trata GET /analises/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de análise inválido", http.StatusBadRequest)
		return
	}

	a, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Análise não encontrada", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(a)
}

// Recalcular trata POST /analises/recalcular
// Recalcula todos os contratos; falha individual não interrompe o lote.
func (h *Handler) Recalcular(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	dataReferencia, ok := h.dataReferencia(w, r)
	if !ok {
		return
	}

	lote, err := h.Service.RecalcularTodos(dataReferencia)
	if err != nil {
		http.Error(w, "Erro ao recalcular contratos", http.StatusInternalServerError)
		return
	}

	for _, a := range lote.Alertas {
		notificacao.EnviarWebhookAlerta(a)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lote)
}

// dataReferencia lê a data de referência opcional do corpo; corpo vazio ou
// sem o campo usa a data corrente.
func (h *Handler) dataReferencia(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	var dto CalcularDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return time.Time{}, false
	}
	if dto.DataReferencia == "" {
		return time.Now(), true
	}
	t, err := time.Parse(time.RFC3339, dto.DataReferencia)
	if err != nil {
		http.Error(w, "dataReferencia inválida (use RFC3339)", http.StatusBadRequest)
		return time.Time{}, false
	}
	return t, true
}
