// Package billref genera los identificadores de factura: una referencia
// legible para humanos (FACT-YYYYMMDD-XXXXXX, escaneable en mostrador) y un
// token público opaco de alta entropía para el enlace de factura sin
// autenticación. El token no es derivable de la referencia.
package billref

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Prefix prefijo fijo de la referencia de factura.
const Prefix = "FACT"

// TokenLen longitud en caracteres hex del token público (128 bits x2).
const TokenLen = 64

// NewBillRef genera una referencia tipo FACT-20260829-A3F9C1 usando la fecha
// calendario dada y un sufijo aleatorio corto (6 hex mayúsculas de un uuid v4).
func NewBillRef(date time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return Prefix + "-" + date.Format("20060102") + "-" + suffix
}

// NewPublicToken genera un token hex de 64 caracteres con crypto/rand.
// Debe ser impredecible: es la única credencial del enlace público de factura.
func NewPublicToken() string {
	b := make([]byte, TokenLen/2)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand no falla en plataformas soportadas; si lo hace, uuid como último recurso
		return strings.ReplaceAll(uuid.New().String()+uuid.New().String(), "-", "")
	}
	return hex.EncodeToString(b)
}
