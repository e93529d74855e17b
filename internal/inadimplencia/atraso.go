// internal/inadimplencia/atraso.go
package inadimplencia

import "time"

// Atraso é o resultado do cálculo de envelhecimento da dívida.
type Atraso struct {
	DiasAtraso  int `json:"diasAtraso"`
	MesesAtraso int `json:"mesesAtraso"`
	// DataAusente indica que a data de inadimplência não foi informada e o
	// contrato foi tratado como adimplente. O chamador deve exibir isso,
	// nunca engolir.
	DataAusente bool `json:"dataAusente"`
}

// CalcularAtraso calcula dias e meses de atraso entre a data de
// inadimplência e a data de referência. A data de referência é sempre
// explícita: a função não consulta o relógio, para que o mesmo cálculo
// possa ser reproduzido em qualquer data.
//
// Data de inadimplência ausente (nil ou zero) resulta em atraso zero com
// DataAusente marcado. Data de inadimplência futura também resulta em zero.
func CalcularAtraso(dataInadimplencia *time.Time, dataReferencia time.Time) Atraso {
	if dataInadimplencia == nil || dataInadimplencia.IsZero() {
		return Atraso{DiasAtraso: 0, MesesAtraso: 0, DataAusente: true}
	}

	dias := int(dataReferencia.Sub(*dataInadimplencia).Hours() / 24)
	if dias < 0 {
		dias = 0
	}

	return Atraso{
		DiasAtraso:  dias,
		MesesAtraso: dias / 30,
	}
}
