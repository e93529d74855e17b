package notificacao

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/MoraisCastro/api-provisionamento/internal/alerta"
)

// EnviarWebhookAlerta publica um alerta de avanço de momento no webhook
// configurado em ALERTA_WEBHOOK_URL. Sem URL configurada, não faz nada.
// Falha de envio é apenas logada: o alerta já está persistido.
func EnviarWebhookAlerta(a alerta.Alerta) {
	url := os.Getenv("ALERTA_WEBHOOK_URL")
	if url == "" {
		return
	}

	payload := map[string]interface{}{
		"contratoId":      a.ContratoID,
		"momentoAnterior": a.MomentoAnterior,
		"momentoNovo":     a.MomentoNovo,
		"percentualNovo":  a.PercentualNovo,
		"mensagem":        a.Mensagem,
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("Erro ao enviar webhook de alerta: %v", err)
		return
	}
	defer resp.Body.Close()
}
