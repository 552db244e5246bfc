package graph

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/identity"
	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/services"
)

// Resolver is the root resolver for both Query and Mutation.
type Resolver struct {
	users        *services.UserService
	contracts    *services.ContractService
	auth         *services.AuthService
	authRequired bool
}

func NewResolver(
	users *services.UserService,
	contracts *services.ContractService,
	auth *services.AuthService,
	authRequired bool,
) *Resolver {
	return &Resolver{
		users:        users,
		contracts:    contracts,
		auth:         auth,
		authRequired: authRequired,
	}
}

// requireCaller is the guard every protected resolver calls first.
func (r *Resolver) requireCaller(ctx context.Context) error {
	if !r.authRequired {
		return nil
	}
	_, err := r.caller(ctx)
	return err
}

// caller returns the authenticated caller, refusing tokens whose user has
// since been deleted.
func (r *Resolver) caller(ctx context.Context) (*identity.Caller, error) {
	caller, ok := identity.FromContext(ctx)
	if !ok {
		return nil, services.ErrLoginRequired
	}
	exists, err := r.users.Exists(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, services.ErrLoginRequired
	}
	return caller, nil
}
