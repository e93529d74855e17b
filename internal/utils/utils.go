package utils

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// HashSenha gera o hash bcrypt da senha informada.
func HashSenha(senha string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	return string(hash), err
}

// VerificarSenha compara o hash bcrypt com a senha em texto puro.
func VerificarSenha(hash, senha string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha)) == nil
}

const senhaTemporariaChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GerarSenhaTemporaria gera a senha temporária de 12 caracteres emitida no
// fluxo de redefinição de senha de um advogado.
func GerarSenhaTemporaria() (string, error) {
	senha := make([]byte, 12)
	for i := range senha {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(senhaTemporariaChars))))
		if err != nil {
			return "", err
		}
		senha[i] = senhaTemporariaChars[n.Int64()]
	}
	return string(senha), nil
}
