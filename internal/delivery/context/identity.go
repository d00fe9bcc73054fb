package context

import (
	"context"

	"taskflow/internal/domain/entity"
)

// WithIdentity returns a new context carrying the authenticated identity.
func WithIdentity(ctx context.Context, identity entity.Identity) context.Context {
	return context.WithValue(ctx, KeyIdentity, identity)
}

// IdentityFrom returns the identity placed by the auth middleware.
func IdentityFrom(ctx context.Context) (entity.Identity, bool) {
	identity, ok := ctx.Value(KeyIdentity).(entity.Identity)

	return identity, ok
}
