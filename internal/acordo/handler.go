package acordo

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/MoraisCastro/api-provisionamento/internal/auth"
	"github.com/MoraisCastro/api-provisionamento/internal/contrato"
	"github.com/MoraisCastro/api-provisionamento/internal/momento"
	"github.com/MoraisCastro/api-provisionamento/internal/parcelaacordo"
	"github.com/gorilla/mux"
)

// Handler gerencia rotas de acordos
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo Handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	// 1) pega ID do contrato
	contratoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de contrato inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	advogadoID, _ := r.Context().Value(auth.UsuarioIDKey).(uint)

	// 2) decodifica no DTO
	var dto CreateAcordoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	// 3) parse de datas
	parse := func(s string) time.Time {
		t, _ := time.Parse(time.RFC3339, s)
		return t
	}
	dataProposta := parse(dto.DataProposta)
	if dataProposta.IsZero() {
		dataProposta = time.Now()
	}
	dataEntrada := parse(dto.DataEntrada)
	dataInicio := parse(dto.DataInicioParcelas)

	// 4) contrato e momento vigente na proposta
	c, err := contrato.NewRepository().BuscarPorID(h.Repo.DB, uint(contratoID))
	if err != nil {
		http.Error(w, "Contrato não encontrado", http.StatusNotFound)
		return
	}

	momentoVigente := momento.Inicial
	if estado, err := momento.NewRepository(h.Repo.DB).FindByContrato(c.ID); err == nil && estado != nil {
		momentoVigente = estado.MomentoAtual
	}

	desconto := 0.0
	if c.SaldoDevedor > 0 && dto.ValorProposto < c.SaldoDevedor {
		desconto = (1 - dto.ValorProposto/c.SaldoDevedor) * 100
	}

	// 5) inicia transação
	tx := h.Repo.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "Não foi possível iniciar transação", http.StatusInternalServerError)
		return
	}
	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			http.Error(w, "Falha interna", http.StatusInternalServerError)
		}
	}()

	// 6) monta o model do acordo (ValorTotal começa 0; será somado das parcelas)
	a := Acordo{
		ContratoID:        c.ID,
		AdvogadoID:        advogadoID,
		ValorProposto:     dto.ValorProposto,
		ValorTotal:        0,
		DescontoPercent:   desconto,
		MomentoNaProposta: momentoVigente,
		ModoPagamento:     dto.ModoPagamento,
		QtdParcelas:       dto.QtdParcelas,
		DataProposta:      dataProposta,
	}

	if err := tx.Create(&a).Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao criar acordo", http.StatusInternalServerError)
		return
	}

	// 7) gera parcelas conforme o modo de pagamento
	parcRepo := parcelaacordo.NewRepository(tx)
	var parcelas []*parcelaacordo.ParcelaAcordo

	switch dto.ModoPagamento {
	case "avista":
		parcelas = append(parcelas, &parcelaacordo.ParcelaAcordo{
			AcordoID:       a.ID,
			Valor:          dto.ValorProposto,
			DataVencimento: dataEntrada,
			Status:         "Pendente",
		})

	case "entradaEParcelas":
		if dto.ValorEntrada > 0 {
			parcelas = append(parcelas, &parcelaacordo.ParcelaAcordo{
				AcordoID:       a.ID,
				Valor:          dto.ValorEntrada,
				DataVencimento: dataEntrada,
				Status:         "Pendente",
			})
		}
		for i := 0; i < dto.QtdParcelas; i++ {
			parcelas = append(parcelas, &parcelaacordo.ParcelaAcordo{
				AcordoID:       a.ID,
				Valor:          dto.ValorParcelaMensal,
				DataVencimento: dataInicio.AddDate(0, i, 0),
				Status:         "Pendente",
			})
		}

	case "parcelasIguais":
		for i := 0; i < dto.QtdParcelas; i++ {
			parcelas = append(parcelas, &parcelaacordo.ParcelaAcordo{
				AcordoID:       a.ID,
				Valor:          dto.ValorParcelaMensal,
				DataVencimento: dataInicio.AddDate(0, i, 0),
				Status:         "Pendente",
			})
		}

	default:
		_ = tx.Rollback()
		http.Error(w, "Modo de pagamento inválido", http.StatusBadRequest)
		return
	}

	if err := parcRepo.CreateInBatch(parcelas); err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao criar parcelas", http.StatusInternalServerError)
		return
	}

	// 8) soma o total a partir das parcelas e grava no acordo
	total, err := parcRepo.SumValorByAcordoID(tx, a.ID)
	if err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao somar parcelas", http.StatusInternalServerError)
		return
	}
	if err := tx.Model(&a).Update("valor_total", total).Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao atualizar total do acordo", http.StatusInternalServerError)
		return
	}

	// 9) commit e resposta
	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao confirmar transação", http.StatusInternalServerError)
		return
	}

	// recarrega (fora da tx) com preload
	if err := h.Repo.DB.Preload("Parcelas").First(&a, a.ID).Error; err != nil {
		http.Error(w, "Erro ao carregar acordo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(a)
}

// List trata GET /contratos/{id}/acordos
// Aceita um query param opcional `status` para filtrar os resultados.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	contratoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de contrato inválido", http.StatusBadRequest)
		return
	}

	status := r.URL.Query().Get("status")

	var list []Acordo
	if status != "" {
		list, err = h.Repo.FindByContratoAndStatus(uint(contratoID), status)
	} else {
		list, err = h.Repo.FindByContrato(uint(contratoID))
	}
	if err != nil {
		http.Error(w, "Erro ao buscar acordos", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// ListMine trata GET /advogados/me/acordos
// Retorna os acordos de todos os contratos do advogado logado.
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	advogadoID, ok := r.Context().Value(auth.UsuarioIDKey).(uint)
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}

	acordos, err := h.Repo.ListByAdvogadoID(advogadoID)
	if err != nil {
		http.Error(w, "Erro ao buscar acordos", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(acordos)
}

// Get trata GET /acordos/{aid}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	aid, err := strconv.Atoi(mux.Vars(r)["aid"])
	if err != nil {
		http.Error(w, "ID do acordo inválido", http.StatusBadRequest)
		return
	}

	a, err := h.Repo.FindByID(uint(aid))
	if err != nil {
		http.Error(w, "Acordo não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(a)
}

// UpdateStatus trata PATCH /acordos/{aid}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	aid, err := strconv.Atoi(mux.Vars(r)["aid"])
	if err != nil {
		http.Error(w, "ID do acordo inválido", http.StatusBadRequest)
		return
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado ou campos inválidos", http.StatusBadRequest)
		return
	}
	if payload.Status == "" {
		http.Error(w, "O campo 'status' é obrigatório", http.StatusBadRequest)
		return
	}

	if err := h.Repo.UpdateStatus(uint(aid), payload.Status); err != nil {
		http.Error(w, "Erro ao atualizar status do acordo", http.StatusInternalServerError)
		return
	}

	a, err := h.Repo.FindByID(uint(aid))
	if err != nil {
		http.Error(w, "Acordo não encontrado após atualização", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(a)
}

// Delete trata DELETE /acordos/{aid}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	aid, err := strconv.Atoi(mux.Vars(r)["aid"])
	if err != nil {
		http.Error(w, "ID do acordo inválido", http.StatusBadRequest)
		return
	}

	a, err := h.Repo.FindByID(uint(aid))
	if err != nil {
		http.Error(w, "Acordo não encontrado", http.StatusNotFound)
		return
	}

	if err := h.Repo.Delete(a); err != nil {
		http.Error(w, "Erro ao deletar acordo", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
