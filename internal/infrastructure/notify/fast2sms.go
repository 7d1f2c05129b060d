// Package notify implementa los canales de notificación al cliente (SMS vía
// Fast2SMS y WhatsApp vía Meta Cloud API) y el dispatcher best-effort que los
// orquesta y audita.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const fast2smsEndpoint = "https://www.fast2sms.com/dev/bulkV2"

// Fast2SMSClient cliente mínimo del endpoint bulkV2 de Fast2SMS.
// APIKey vacío deja el canal deshabilitado.
type Fast2SMSClient struct {
	apiKey string
	client *http.Client
}

func NewFast2SMSClient(apiKey string) *Fast2SMSClient {
	return &Fast2SMSClient{
		apiKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled indica si hay credenciales configuradas.
func (c *Fast2SMSClient) Enabled() bool { return c.apiKey != "" }

// Send envía message al teléfono dado por la ruta "q" (quick transactional).
func (c *Fast2SMSClient) Send(ctx context.Context, phone, message string) error {
	if !c.Enabled() {
		return fmt.Errorf("fast2sms: canal deshabilitado (sin API key)")
	}
	number := localNumber(phone)
	if number == "" {
		return fmt.Errorf("fast2sms: teléfono inválido %q", phone)
	}

	form := url.Values{}
	form.Set("route", "q")
	form.Set("message", message)
	form.Set("numbers", number)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fast2smsEndpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("fast2sms: construir request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("fast2sms: enviar: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fast2sms: status %d: %s", resp.StatusCode, body)
	}

	// El API responde 200 también en fallos; el campo "return" trae el veredicto.
	var out struct {
		Return  bool   `json:"return"`
		Message any    `json:"message"`
		Request string `json:"request_id"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return fmt.Errorf("fast2sms: respuesta ilegible: %w", err)
	}
	if !out.Return {
		return fmt.Errorf("fast2sms: rechazado: %v", out.Message)
	}
	return nil
}
