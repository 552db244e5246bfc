package graph

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/services"
	"github.com/graph-gophers/graphql-go"
)

type idArgs struct {
	ID graphql.ID
}

func (r *Resolver) AllUsers(ctx context.Context) ([]*UserResolver, error) {
	if err := r.requireCaller(ctx); err != nil {
		return nil, gqlError(ctx, "allUsers", err)
	}
	users, err := r.users.List(ctx)
	if err != nil {
		return nil, gqlError(ctx, "allUsers", err)
	}
	return r.userList(users), nil
}

func (r *Resolver) AllContracts(ctx context.Context) ([]*ContractResolver, error) {
	if err := r.requireCaller(ctx); err != nil {
		return nil, gqlError(ctx, "allContracts", err)
	}
	contracts, err := r.contracts.List(ctx)
	if err != nil {
		return nil, gqlError(ctx, "allContracts", err)
	}
	return r.contractList(contracts), nil
}

func (r *Resolver) GetUser(ctx context.Context, args idArgs) (*UserResolver, error) {
	if err := r.requireCaller(ctx); err != nil {
		return nil, gqlError(ctx, "getUser", err)
	}
	id, err := services.ParseID(string(args.ID))
	if err != nil {
		return nil, gqlError(ctx, "getUser", err)
	}
	user, err := r.users.Get(ctx, id)
	if err != nil {
		return nil, gqlError(ctx, "getUser", err)
	}
	return &UserResolver{r: r, m: user}, nil
}

func (r *Resolver) GetContract(ctx context.Context, args idArgs) (*ContractResolver, error) {
	if err := r.requireCaller(ctx); err != nil {
		return nil, gqlError(ctx, "getContract", err)
	}
	id, err := services.ParseID(string(args.ID))
	if err != nil {
		return nil, gqlError(ctx, "getContract", err)
	}
	contract, err := r.contracts.Get(ctx, id)
	if err != nil {
		return nil, gqlError(ctx, "getContract", err)
	}
	return &ContractResolver{r: r, m: contract}, nil
}

func (r *Resolver) GetContractsByUserID(ctx context.Context, args idArgs) ([]*ContractResolver, error) {
	if err := r.requireCaller(ctx); err != nil {
		return nil, gqlError(ctx, "getContractsByUserId", err)
	}
	id, err := services.ParseID(string(args.ID))
	if err != nil {
		return nil, gqlError(ctx, "getContractsByUserId", err)
	}
	contracts, err := r.contracts.ListByUser(ctx, id)
	if err != nil {
		return nil, gqlError(ctx, "getContractsByUserId", err)
	}
	return r.contractList(contracts), nil
}

func (r *Resolver) Me(ctx context.Context) (*UserResolver, error) {
	caller, err := r.caller(ctx)
	if err != nil {
		return nil, gqlError(ctx, "me", err)
	}
	user, err := r.users.Get(ctx, caller.UserID)
	if err != nil {
		return nil, gqlError(ctx, "me", err)
	}
	return &UserResolver{r: r, m: user}, nil
}
