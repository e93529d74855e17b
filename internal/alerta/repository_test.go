package alerta

import (
	"testing"

	"github.com/MoraisCastro/api-provisionamento/internal/momento"
	"github.com/glebarez/sqlite"
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
	require.NoError(t, Migrate(db))
	return db
}

func TestBuscarPorIDInexistente(t *testing.T) {
	db := setupDB(t)
	repo := NewRepository()

	a, err := repo.BuscarPorID(db, 9999)
	assert.Error(t, err)
	assert.Nil(t, a)
}

func TestCriarEMarcarComoLida(t *testing.T) {
	db := setupDB(t)
	repo := NewRepository()

	novo := NovoAlerta(1, momento.Transicao{De: momento.Inicial, Para: momento.Favoravel}, 0, 35)
	require.NoError(t, repo.Criar(db, &novo))

	a, err := repo.BuscarPorID(db, novo.ID)
	require.NoError(t, err)
	assert.False(t, a.Lida)

	require.NoError(t, repo.MarcarComoLida(db, novo.ID))

	a, err = repo.BuscarPorID(db, novo.ID)
	require.NoError(t, err)
	assert.True(t, a.Lida)
}
