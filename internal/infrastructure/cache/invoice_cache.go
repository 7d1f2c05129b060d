// Package cache implementa el cache Redis de facturas públicas por token.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tu-usuario/retail-pos/internal/application/billing"
	"github.com/tu-usuario/retail-pos/internal/application/dto"
)

var _ billing.InvoiceCache = (*InvoiceCache)(nil)

// InvoiceCache cache de respuestas de factura pública serializado a JSON.
type InvoiceCache struct {
	rdb *redis.Client
}

func NewInvoiceCache(rdb *redis.Client) *InvoiceCache {
	return &InvoiceCache{rdb: rdb}
}

func key(token string) string { return "invoice:public:" + token }

// Get devuelve (valor, true, nil) en hit; (nil, false, nil) en miss.
func (c *InvoiceCache) Get(ctx context.Context, token string) (*dto.PublicInvoiceResponse, bool, error) {
	raw, err := c.rdb.Get(ctx, key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache: get: %w", err)
	}
	var v dto.PublicInvoiceResponse
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, false, fmt.Errorf("cache: deserializar: %w", err)
	}
	return &v, true, nil
}

func (c *InvoiceCache) Set(ctx context.Context, token string, v *dto.PublicInvoiceResponse, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache: serializar: %w", err)
	}
	if err := c.rdb.Set(ctx, key(token), raw, ttl).Err(); err != nil {
		return fmt.Errorf("cache: set: %w", err)
	}
	return nil
}

func (c *InvoiceCache) Invalidate(ctx context.Context, token string) error {
	if err := c.rdb.Del(ctx, key(token)).Err(); err != nil {
		return fmt.Errorf("cache: invalidar: %w", err)
	}
	return nil
}

// NoopInvoiceCache implementación nula para cuando Redis no está configurado.
type NoopInvoiceCache struct{}

var _ billing.InvoiceCache = NoopInvoiceCache{}

func (NoopInvoiceCache) Get(context.Context, string) (*dto.PublicInvoiceResponse, bool, error) {
	return nil, false, nil
}
func (NoopInvoiceCache) Set(context.Context, string, *dto.PublicInvoiceResponse, time.Duration) error {
	return nil
}
func (NoopInvoiceCache) Invalidate(context.Context, string) error { return nil }
