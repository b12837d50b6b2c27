package api

import (
	"context"

	"github.com/rpupo63/personal-blog/auth"
)

type keyType string

const claimsKey keyType = "claims"

// ctxWithClaims adds verified token claims to the context
func ctxWithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ctxGetClaims retrieves the claims stored by the auth middleware, or nil
func ctxGetClaims(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsKey).(*auth.Claims)
	return claims
}
