// internal/acordo/dto.go
package acordo

// CreateAcordoDTO é o corpo do POST /contratos/{id}/acordos.
// O modo de pagamento define como as parcelas são geradas:
//   - "avista": uma parcela única no valor proposto
//   - "entradaEParcelas": entrada + parcelas mensais iguais
//   - "parcelasIguais": apenas parcelas mensais iguais
type CreateAcordoDTO struct {
	ValorProposto float64 `json:"valorProposto"`
	ModoPagamento string  `json:"modoPagamento"`

	ValorEntrada       float64 `json:"valorEntrada"`
	DataEntrada        string  `json:"dataEntrada"`
	ValorParcelaMensal float64 `json:"valorParcelaMensal"`
	DataInicioParcelas string  `json:"dataInicioParcelas"`
	QtdParcelas        int     `json:"qtdParcelas"`

	DataProposta string `json:"dataProposta"`
}
