// internal/advogado/dto.go
package advogado

// ResumoAdvogadoDTO reúne os principais números da carteira de um advogado
// para o painel.
type ResumoAdvogadoDTO struct {
	ID                uint    `json:"id"`
	Nome              string  `json:"nome"`
	Sobrenome         string  `json:"sobrenome"`
	Email             string  `json:"email"`
	OAB               string  `json:"oab"`
	Telefone          string  `json:"telefone"`
	Foto              string  `json:"foto"`
	ContratosAtivos   int     `json:"contratosAtivos"`
	ContratosTotal    int     `json:"contratosTotal"`
	SaldoDevedorTotal float64 `json:"saldoDevedorTotal"`
	AlertasNaoLidos   int     `json:"alertasNaoLidos"`
}
