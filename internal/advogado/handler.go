package advogado

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MoraisCastro/api-provisionamento/internal/alerta"
	"github.com/MoraisCastro/api-provisionamento/internal/auth"
	"github.com/MoraisCastro/api-provisionamento/internal/contrato"
	"github.com/MoraisCastro/api-provisionamento/internal/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// request DTOs
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type createAdvogadoRequest struct {
	Nome      string `json:"nome"`
	Sobrenome string `json:"sobrenome"`
	OAB       string `json:"oab"`
	Email     string `json:"email"`
	Telefone  string `json:"telefone"`
	Foto      string `json:"foto"`
	Senha     string `json:"senha"`
	IsAdmin   bool   `json:"isAdmin"`
}

type alterarSenhaRequest struct {
	SenhaAtual string `json:"senhaAtual"`
	SenhaNova  string `json:"senhaNova"`
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

// Login gera um JWT para credenciais válidas
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	// Busca usuário por email ou OAB
	user, err := h.Repository.BuscarPorEmailOuOAB(h.DB, req.Login)
	if err != nil {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}

	// Verifica senha
	if !utils.VerificarSenha(user.Senha, req.Password) {
		http.Error(w, "senha incorreta", http.StatusUnauthorized)
		return
	}

	// Gera token
	token, err := auth.GerarToken(user.ID, user.IsAdmin)
	if err != nil {
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}

	// O front força a troca de senha quando o login usou senha temporária.
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"token":                 token,
		"precisaRedefinirSenha": user.PrecisaRedefinirSenha,
	})
}

// Criar cadastra novo advogado
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req createAdvogadoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	// Gera hash da senha
	hash, err := utils.HashSenha(req.Senha)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	a := Advogado{
		Nome:      req.Nome,
		Sobrenome: req.Sobrenome,
		OAB:       req.OAB,
		Email:     req.Email,
		Telefone:  req.Telefone,
		Foto:      req.Foto,
		Senha:     hash,
		IsAdmin:   req.IsAdmin,
	}

	if err := h.Repository.Salvar(h.DB, &a); err != nil {
		http.Error(w, "erro ao salvar advogado", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(a)
}

// Listar retorna todos ou apenas o próprio registro
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UsuarioIDKey).(uint)
	isAdmin := r.Context().Value(auth.IsAdminKey).(bool)

	if isAdmin {
		advogados, err := h.Repository.ListarTodos(h.DB)
		if err != nil {
			http.Error(w, "erro ao listar advogados", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(advogados)
		return
	}

	// não-admin vê apenas o próprio
	obj, err := h.Repository.BuscarPorID(h.DB, userID)
	if err != nil {
		http.Error(w, "advogado não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode([]Advogado{*obj})
}

// BuscarPorID retorna um advogado pelo ID
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UsuarioIDKey).(uint)
	isAdmin := r.Context().Value(auth.IsAdminKey).(bool)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if !isAdmin && uint(id) != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "advogado não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(obj)
}

// Atualizar altera dados de um advogado existente
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UsuarioIDKey).(uint)
	isAdmin := r.Context().Value(auth.IsAdminKey).(bool)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if !isAdmin && uint(id) != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	var dados Advogado
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Atualizar(h.DB, uint(id), &dados); err != nil {
		http.Error(w, "erro ao atualizar advogado", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("advogado atualizado com sucesso"))
}

// Deletar remove um advogado
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UsuarioIDKey).(uint)
	isAdmin := r.Context().Value(auth.IsAdminKey).(bool)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if !isAdmin && uint(id) != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir advogado", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("advogado excluído com sucesso"))
}

// ResetarSenha emite uma senha temporária para um advogado (somente admin).
// A senha antiga deixa de valer e o próximo login exige redefinição.
func (h *Handler) ResetarSenha(w http.ResponseWriter, r *http.Request) {
	isAdmin, _ := r.Context().Value(auth.IsAdminKey).(bool)
	if !isAdmin {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var a Advogado
	if err := h.DB.First(&a, uint(id)).Error; err != nil {
		http.Error(w, "advogado não encontrado", http.StatusNotFound)
		return
	}

	senhaTemporaria, err := utils.GerarSenhaTemporaria()
	if err != nil {
		http.Error(w, "erro ao gerar senha temporária", http.StatusInternalServerError)
		return
	}
	hash, err := utils.HashSenha(senhaTemporaria)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	a.Senha = hash
	a.PrecisaRedefinirSenha = true
	if err := h.DB.Save(&a).Error; err != nil {
		http.Error(w, "erro ao salvar senha temporária", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"senhaTemporaria": senhaTemporaria})
}

// AlterarSenha troca a senha do usuário logado
func (h *Handler) AlterarSenha(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UsuarioIDKey).(uint)

	var req alterarSenhaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	var a Advogado
	if err := h.DB.First(&a, userID).Error; err != nil {
		http.Error(w, "advogado não encontrado", http.StatusNotFound)
		return
	}

	if !utils.VerificarSenha(a.Senha, req.SenhaAtual) {
		http.Error(w, "senha atual incorreta", http.StatusUnauthorized)
		return
	}

	hash, err := utils.HashSenha(req.SenhaNova)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	a.Senha = hash
	a.PrecisaRedefinirSenha = false
	if err := h.DB.Save(&a).Error; err != nil {
		http.Error(w, "erro ao salvar nova senha", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("senha alterada com sucesso"))
}

// ObterResumo constrói e retorna o DTO de resumo da carteira
func (h *Handler) ObterResumo(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UsuarioIDKey).(uint)
	isAdmin := r.Context().Value(auth.IsAdminKey).(bool)

	idParam := userID
	if isAdmin {
		if idStr := mux.Vars(r)["id"]; idStr != "" {
			if i, err := strconv.Atoi(idStr); err == nil {
				idParam = uint(i)
			}
		}
	}

	obj, err := h.Repository.BuscarPorID(h.DB, idParam)
	if err != nil {
		http.Error(w, "advogado não encontrado", http.StatusNotFound)
		return
	}

	contratos, _ := contrato.NewRepository().ListarPorAdvogado(h.DB, obj.ID)
	alertaRepo := alerta.NewRepository()
	var alertas []alerta.Alerta
	for _, c := range contratos {
		list, _ := alertaRepo.ListarPorContrato(h.DB, c.ID)
		alertas = append(alertas, list...)
	}
	dto := MontarResumoAdvogadoDTO(*obj, contratos, alertas)

	json.NewEncoder(w).Encode(dto)
}

// Me retorna o usuário logado
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UsuarioIDKey).(uint)

	var a Advogado
	if err := h.DB.First(&a, userID).Error; err != nil {
		http.Error(w, "advogado não encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(a)
}
