package graph

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/services"
)

// The token mutations never require a caller; they are how one is obtained.

func (r *Resolver) TokenAuth(ctx context.Context, args struct {
	Username string
	Password string
}) (*ObtainTokenPayload, error) {
	pair, err := r.auth.ObtainToken(ctx, args.Username, args.Password)
	if err != nil {
		return nil, gqlError(ctx, "tokenAuth", err)
	}
	return &ObtainTokenPayload{pair: pair}, nil
}

func (r *Resolver) VerifyToken(ctx context.Context, args struct{ Token string }) (*VerifyTokenPayload, error) {
	claims, err := r.auth.Verify(args.Token)
	if err != nil {
		return nil, gqlError(ctx, "verifyToken", err)
	}
	return &VerifyTokenPayload{payload: services.PayloadFromClaims(claims)}, nil
}

func (r *Resolver) RefreshToken(ctx context.Context, args struct{ RefreshToken string }) (*ObtainTokenPayload, error) {
	pair, err := r.auth.Refresh(ctx, args.RefreshToken)
	if err != nil {
		return nil, gqlError(ctx, "refreshToken", err)
	}
	return &ObtainTokenPayload{pair: pair}, nil
}

func (r *Resolver) RevokeToken(ctx context.Context, args struct{ RefreshToken string }) (*RevokeTokenPayload, error) {
	n, err := r.auth.Revoke(ctx, args.RefreshToken)
	if err != nil {
		return nil, gqlError(ctx, "revokeToken", err)
	}
	return &RevokeTokenPayload{revoked: n}, nil
}
