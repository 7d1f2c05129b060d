package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/retail-pos/internal/application/dto"
	"github.com/tu-usuario/retail-pos/internal/domain"
)

// respondWith monta respondError detrás de una ruta y devuelve status y cuerpo.
func respondWith(t *testing.T, err error) (int, dto.ErrorResponse, string) {
	t.Helper()
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return respondError(c, err)
	})

	resp, reqErr := app.Test(httptest.NewRequest("GET", "/x", nil), -1)
	require.NoError(t, reqErr)
	defer resp.Body.Close()

	raw, readErr := io.ReadAll(resp.Body)
	require.NoError(t, readErr)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body, string(raw)
}

func TestRespondErrorInternoNoExponeDetalle(t *testing.T) {
	status, body, raw := respondWith(t, errors.New("pgx: conexión rechazada a db-prod:5432"))

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL", body.Code)
	assert.Equal(t, "error interno del servidor", body.Message)
	assert.NotContains(t, raw, "db-prod")
}

func TestRespondErrorStockInsuficienteConDetalle(t *testing.T) {
	status, body, _ := respondWith(t, &domain.InsufficientStockError{
		ProductName: "Camiseta",
		SKU:         "SKU-1",
		Available:   1,
		Requested:   3,
	})

	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Code)
	require.NotNil(t, body.Details)
	details, ok := body.Details.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "SKU-1", details["sku"])
}

func TestRespondErrorValidacionConservaMensaje(t *testing.T) {
	status, body, _ := respondWith(t, domain.ErrInvalidInput)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.NotEmpty(t, body.Message)
}
