package billref_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/retail-pos/pkg/billref"
)

var refPattern = regexp.MustCompile(`^FACT-\d{8}-[0-9A-F]{6}$`)

func TestNewBillRef_Formato(t *testing.T) {
	date := time.Date(2026, 8, 29, 15, 4, 5, 0, time.UTC)
	ref := billref.NewBillRef(date)

	require.Regexp(t, refPattern, ref)
	assert.Contains(t, ref, "FACT-20260829-")
}

func TestNewBillRef_SufijoVaria(t *testing.T) {
	date := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		ref := billref.NewBillRef(date)
		require.Regexp(t, refPattern, ref)
		seen[ref] = true
	}
	// Con 6 hex aleatorios, 200 generaciones no deben colisionar en la práctica.
	assert.Greater(t, len(seen), 195)
}

func TestNewPublicToken_LongitudYEntropia(t *testing.T) {
	tokenPattern := regexp.MustCompile(`^[0-9a-f]{64}$`)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tok := billref.NewPublicToken()
		require.Regexp(t, tokenPattern, tok)
		require.False(t, seen[tok], "token repetido: %s", tok)
		seen[tok] = true
	}
}

func TestNewPublicToken_NoDerivableDeLaReferencia(t *testing.T) {
	date := time.Now()
	ref := billref.NewBillRef(date)
	tok := billref.NewPublicToken()
	assert.NotContains(t, tok, ref)
	assert.NotContains(t, ref, tok)
}
