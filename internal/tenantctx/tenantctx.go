// Package tenantctx carries the resolved tenant id through a request's
// context.Context. The value is per-request by construction: it dies
// with the request context on every exit path, so nothing is ever
// shared across concurrent requests or left behind after a panic.
package tenantctx

import (
	"context"

	"github.com/seu-repo/condomino/internal/domain"
)

type ctxKey struct{}

// WithTenant returns a child context scoped to the given tenant.
func WithTenant(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, tenantID)
}

// FromContext returns the tenant id set by WithTenant. A tenant-scoped
// operation reached without one is a bug or an authorization gap, so
// this fails closed with ErrMissingTenantContext.
func FromContext(ctx context.Context) (string, error) {
	id, ok := ctx.Value(ctxKey{}).(string)
	if !ok || id == "" {
		return "", domain.ErrMissingTenantContext
	}
	return id, nil
}
