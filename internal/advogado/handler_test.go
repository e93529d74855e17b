package advogado

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/MoraisCastro/api-provisionamento/internal/auth"
	"github.com/MoraisCastro/api-provisionamento/internal/contrato"
	"github.com/MoraisCastro/api-provisionamento/internal/garantia"
	"github.com/MoraisCastro/api-provisionamento/internal/utils"
	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&garantia.Garantia{}, &contrato.Contrato{}, &Advogado{}))
	return db
}

func criarAdvogado(t *testing.T, db *gorm.DB, email, oab, senha string) Advogado {
	t.Helper()
	hash, err := utils.HashSenha(senha)
	require.NoError(t, err)
	a := Advogado{Nome: "Teste", Email: email, OAB: oab, Senha: hash}
	require.NoError(t, db.Create(&a).Error)
	return a
}

func comContexto(req *http.Request, userID uint, isAdmin bool) *http.Request {
	ctx := context.WithValue(req.Context(), auth.UsuarioIDKey, userID)
	ctx = context.WithValue(ctx, auth.IsAdminKey, isAdmin)
	return req.WithContext(ctx)
}

func TestResetarSenha(t *testing.T) {
	db := setupDB(t)
	h := NewHandler(db)
	a := criarAdvogado(t, db, "ana@escritorio.com", "SP101", "senha-antiga")

	req := httptest.NewRequest(http.MethodPost, "/advogados/0/reset-senha", nil)
	req = mux.SetURLVars(req, map[string]string{"id": strconv.Itoa(int(a.ID))})
	req = comContexto(req, 999, true)

	rr := httptest.NewRecorder()
	h.ResetarSenha(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	temporaria := resp["senhaTemporaria"]
	assert.Len(t, temporaria, 12)

	var salvo Advogado
	require.NoError(t, db.First(&salvo, a.ID).Error)
	assert.True(t, salvo.PrecisaRedefinirSenha)
	assert.True(t, utils.VerificarSenha(salvo.Senha, temporaria))
	assert.False(t, utils.VerificarSenha(salvo.Senha, "senha-antiga"))
}

func TestResetarSenhaSomenteAdmin(t *testing.T) {
	db := setupDB(t)
	h := NewHandler(db)
	a := criarAdvogado(t, db, "bia@escritorio.com", "SP102", "senha-forte")

	req := httptest.NewRequest(http.MethodPost, "/advogados/0/reset-senha", nil)
	req = mux.SetURLVars(req, map[string]string{"id": strconv.Itoa(int(a.ID))})
	req = comContexto(req, a.ID, false)

	rr := httptest.NewRecorder()
	h.ResetarSenha(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	// Senha original permanece válida.
	var salvo Advogado
	require.NoError(t, db.First(&salvo, a.ID).Error)
	assert.False(t, salvo.PrecisaRedefinirSenha)
	assert.True(t, utils.VerificarSenha(salvo.Senha, "senha-forte"))
}

func TestLoginSinalizaRedefinicaoDeSenha(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")
	db := setupDB(t)
	h := NewHandler(db)

	a := criarAdvogado(t, db, "caio@escritorio.com", "SP103", "temp12345678")
	a.PrecisaRedefinirSenha = true
	require.NoError(t, db.Save(&a).Error)

	body := bytes.NewBufferString(`{"login":"caio@escritorio.com","password":"temp12345678"}`)
	req := httptest.NewRequest(http.MethodPost, "/login", body)

	rr := httptest.NewRecorder()
	h.Login(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Token                 string `json:"token"`
		PrecisaRedefinirSenha bool   `json:"precisaRedefinirSenha"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.PrecisaRedefinirSenha)
}
