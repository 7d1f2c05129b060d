package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// WhatsAppClient cliente mínimo de WhatsApp Cloud API (Meta Graph).
// Credenciales vacías dejan el canal deshabilitado.
type WhatsAppClient struct {
	phoneNumberID string
	accessToken   string
	apiVersion    string
	client        *http.Client
}

func NewWhatsAppClient(phoneNumberID, accessToken, apiVersion string) *WhatsAppClient {
	if apiVersion == "" {
		apiVersion = "v18.0"
	}
	return &WhatsAppClient{
		phoneNumberID: phoneNumberID,
		accessToken:   accessToken,
		apiVersion:    apiVersion,
		client:        &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled indica si hay credenciales configuradas.
func (c *WhatsAppClient) Enabled() bool {
	return c.phoneNumberID != "" && c.accessToken != ""
}

// Send envía message como texto libre al teléfono dado.
func (c *WhatsAppClient) Send(ctx context.Context, phone, message string) error {
	if !c.Enabled() {
		return fmt.Errorf("whatsapp: canal deshabilitado (sin credenciales)")
	}
	number := waNumber(phone)
	if number == "" {
		return fmt.Errorf("whatsapp: teléfono inválido %q", phone)
	}

	payload := map[string]any{
		"messaging_product": "whatsapp",
		"to":                number,
		"type":              "text",
		"text":              map[string]any{"body": message},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("whatsapp: serializar payload: %w", err)
	}

	endpoint := fmt.Sprintf("https://graph.facebook.com/%s/%s/messages",
		c.apiVersion, c.phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("whatsapp: construir request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp: enviar: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("whatsapp: status %d: %s", resp.StatusCode, respBody)
	}
	return nil
}
