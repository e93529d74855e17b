package comentario

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MoraisCastro/api-provisionamento/internal/auth"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula o DB e o Repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

// NewHandler cria um novo handler de comentários
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// CriarComentarioRequest define o corpo da requisição para criar um comentário.
type CriarComentarioRequest struct {
	Texto           string `json:"texto"`
	IsSystemComment bool   `json:"isSystemComment,omitempty"`
}

// Criar trata da requisição POST /contratos/{id}/comentarios
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	contratoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de contrato inválido", http.StatusBadRequest)
		return
	}

	var req CriarComentarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if req.Texto == "" {
		http.Error(w, "O campo 'texto' é obrigatório", http.StatusBadRequest)
		return
	}

	var advogadoID uint
	if !req.IsSystemComment {
		userVal := r.Context().Value(auth.UsuarioIDKey)
		if userVal == nil {
			http.Error(w, "Não autenticado", http.StatusUnauthorized)
			return
		}
		advogadoID = userVal.(uint)
	}

	c := Comentario{
		Texto:      req.Texto,
		ContratoID: uint(contratoID),
		AdvogadoID: advogadoID,
		System:     req.IsSystemComment,
	}

	if err := h.Repository.Criar(h.DB, &c); err != nil {
		http.Error(w, "Erro ao criar comentário", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// ListarPorContrato trata GET /contratos/{id}/comentarios
func (h *Handler) ListarPorContrato(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	comentarios, err := h.Repository.ListarPorContrato(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Erro ao listar comentários", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(comentarios)
}

// ListarTodos trata GET /comentarios
func (h *Handler) ListarTodos(w http.ResponseWriter, r *http.Request) {
	comentarios, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "Erro ao listar comentários", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(comentarios)
}

// BuscarPorID trata GET /comentarios/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	c, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Comentário não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(c)
}

// Atualizar trata PUT /comentarios/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var payload struct {
		Texto string `json:"texto"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Erro ao decodificar JSON", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Atualizar(h.DB, uint(id), payload.Texto); err != nil {
		http.Error(w, "Erro ao atualizar comentário", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Comentário atualizado com sucesso"))
}

// Remover trata DELETE /comentarios/{id}
func (h *Handler) Remover(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Repository.Remover(h.DB, uint(id)); err != nil {
		http.Error(w, "Erro ao remover comentário", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Comentário removido com sucesso"))
}
