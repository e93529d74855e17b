// internal/provisao/dto.go
package provisao

// CalcularDTO é o corpo opcional do pedido de cálculo. A data de referência
// em RFC3339 permite reproduzir um cálculo em qualquer data; ausente, o
// handler usa a data corrente.
type CalcularDTO struct {
	DataReferencia string `json:"dataReferencia"`
}
