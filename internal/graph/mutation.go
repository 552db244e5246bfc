package graph

import (
	"context"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/dto"
	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/services"
	"github.com/graph-gophers/graphql-go"
)

type UserInput struct {
	Username *string
	Email    *string
	Password *string
}

func (in UserInput) toDTO() dto.UserInput {
	return dto.UserInput{
		Username: in.Username,
		Email:    in.Email,
		Password: in.Password,
	}
}

type ContractInput struct {
	Description *string
	UserID      *graphql.ID
	Fidelity    *int32
	Amount      *Decimal
}

func (in ContractInput) toDTO() (dto.ContractInput, error) {
	out := dto.ContractInput{Description: in.Description}
	if in.UserID != nil {
		id, err := services.ParseID(string(*in.UserID))
		if err != nil {
			return out, err
		}
		out.UserID = &id
	}
	if in.Fidelity != nil {
		f := int(*in.Fidelity)
		out.Fidelity = &f
	}
	if in.Amount != nil {
		a := in.Amount.Value
		out.Amount = &a
	}
	return out, nil
}

// CreateUser is public: it is how accounts come to exist.
func (r *Resolver) CreateUser(ctx context.Context, args struct{ Input UserInput }) (*UserPayload, error) {
	user, err := r.users.Create(ctx, args.Input.toDTO())
	if err != nil {
		return nil, gqlError(ctx, "createUser", err)
	}
	slog.InfoContext(ctx, "user created", "user_id", user.ID.String())
	return &UserPayload{user: &UserResolver{r: r, m: user}, message: "User created successfully."}, nil
}

func (r *Resolver) UpdateUser(ctx context.Context, args struct {
	ID    graphql.ID
	Input UserInput
}) (*UserPayload, error) {
	if err := r.requireCaller(ctx); err != nil {
		return nil, gqlError(ctx, "updateUser", err)
	}
	id, err := services.ParseID(string(args.ID))
	if err != nil {
		return nil, gqlError(ctx, "updateUser", err)
	}
	user, err := r.users.Update(ctx, id, args.Input.toDTO())
	if err != nil {
		return nil, gqlError(ctx, "updateUser", err)
	}
	return &UserPayload{user: &UserResolver{r: r, m: user}, message: "User updated successfully."}, nil
}

func (r *Resolver) DeleteUser(ctx context.Context, args idArgs) (*UserPayload, error) {
	if err := r.requireCaller(ctx); err != nil {
		return nil, gqlError(ctx, "deleteUser", err)
	}
	id, err := services.ParseID(string(args.ID))
	if err != nil {
		return nil, gqlError(ctx, "deleteUser", err)
	}
	user, err := r.users.Get(ctx, id)
	if err != nil {
		return nil, gqlError(ctx, "deleteUser", err)
	}
	if err := r.users.Delete(ctx, id); err != nil {
		return nil, gqlError(ctx, "deleteUser", err)
	}
	slog.InfoContext(ctx, "user deleted", "user_id", id.String())
	return &UserPayload{user: &UserResolver{r: r, m: user}, message: "User deleted successfully."}, nil
}

func (r *Resolver) CreateContract(ctx context.Context, args struct{ Input ContractInput }) (*ContractPayload, error) {
	if err := r.requireCaller(ctx); err != nil {
		return nil, gqlError(ctx, "createContract", err)
	}
	in, err := args.Input.toDTO()
	if err != nil {
		return nil, gqlError(ctx, "createContract", err)
	}
	contract, err := r.contracts.Create(ctx, in)
	if err != nil {
		return nil, gqlError(ctx, "createContract", err)
	}
	return &ContractPayload{contract: &ContractResolver{r: r, m: contract}, message: "Contract created successfully."}, nil
}

func (r *Resolver) UpdateContract(ctx context.Context, args struct {
	ID    graphql.ID
	Input ContractInput
}) (*ContractPayload, error) {
	if err := r.requireCaller(ctx); err != nil {
		return nil, gqlError(ctx, "updateContract", err)
	}
	id, err := services.ParseID(string(args.ID))
	if err != nil {
		return nil, gqlError(ctx, "updateContract", err)
	}
	in, err := args.Input.toDTO()
	if err != nil {
		return nil, gqlError(ctx, "updateContract", err)
	}
	contract, err := r.contracts.Update(ctx, id, in)
	if err != nil {
		return nil, gqlError(ctx, "updateContract", err)
	}
	return &ContractPayload{contract: &ContractResolver{r: r, m: contract}, message: "Contract updated successfully."}, nil
}

func (r *Resolver) DeleteContract(ctx context.Context, args idArgs) (*ContractPayload, error) {
	if err := r.requireCaller(ctx); err != nil {
		return nil, gqlError(ctx, "deleteContract", err)
	}
	id, err := services.ParseID(string(args.ID))
	if err != nil {
		return nil, gqlError(ctx, "deleteContract", err)
	}
	contract, err := r.contracts.Get(ctx, id)
	if err != nil {
		return nil, gqlError(ctx, "deleteContract", err)
	}
	if err := r.contracts.Delete(ctx, id); err != nil {
		return nil, gqlError(ctx, "deleteContract", err)
	}
	return &ContractPayload{contract: &ContractResolver{r: r, m: contract}, message: "Contract deleted successfully."}, nil
}
