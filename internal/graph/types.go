package graph

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/dto"
	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/models"
	"github.com/graph-gophers/graphql-go"
)

type UserResolver struct {
	r *Resolver
	m *models.User
}

func (u *UserResolver) ID() graphql.ID {
	return graphql.ID(u.m.ID.String())
}

func (u *UserResolver) Username() string {
	return u.m.Username
}

func (u *UserResolver) Email() string {
	return u.m.Email
}

func (u *UserResolver) DateJoined() graphql.Time {
	return graphql.Time{Time: u.m.CreatedAt}
}

func (u *UserResolver) Contracts(ctx context.Context) ([]*ContractResolver, error) {
	contracts, err := u.r.contracts.ListByUser(ctx, u.m.ID)
	if err != nil {
		return nil, gqlError(ctx, "User.contracts", err)
	}
	return u.r.contractList(contracts), nil
}

type ContractResolver struct {
	r *Resolver
	m *models.Contract
}

func (c *ContractResolver) ID() graphql.ID {
	return graphql.ID(c.m.ID.String())
}

func (c *ContractResolver) Description() string {
	return c.m.Description
}

func (c *ContractResolver) User(ctx context.Context) (*UserResolver, error) {
	if c.m.User.ID == c.m.UserID {
		return &UserResolver{r: c.r, m: &c.m.User}, nil
	}
	user, err := c.r.users.Get(ctx, c.m.UserID)
	if err != nil {
		return nil, gqlError(ctx, "Contract.user", err)
	}
	return &UserResolver{r: c.r, m: user}, nil
}

func (c *ContractResolver) CreatedAt() graphql.Time {
	return graphql.Time{Time: c.m.CreatedAt}
}

func (c *ContractResolver) Fidelity() int32 {
	return int32(c.m.Fidelity)
}

func (c *ContractResolver) Amount() Decimal {
	return Decimal{Value: c.m.Amount}
}

func (r *Resolver) userList(users []models.User) []*UserResolver {
	out := make([]*UserResolver, len(users))
	for i := range users {
		out[i] = &UserResolver{r: r, m: &users[i]}
	}
	return out
}

func (r *Resolver) contractList(contracts []models.Contract) []*ContractResolver {
	out := make([]*ContractResolver, len(contracts))
	for i := range contracts {
		out[i] = &ContractResolver{r: r, m: &contracts[i]}
	}
	return out
}

// UserPayload is the result envelope of every user mutation.
type UserPayload struct {
	user    *UserResolver
	message string
}

func (p *UserPayload) User() *UserResolver { return p.user }
func (p *UserPayload) Success() bool       { return true }
func (p *UserPayload) Message() string     { return p.message }

// ContractPayload is the result envelope of every contract mutation.
type ContractPayload struct {
	contract *ContractResolver
	message  string
}

func (p *ContractPayload) Contract() *ContractResolver { return p.contract }
func (p *ContractPayload) Success() bool               { return true }
func (p *ContractPayload) Message() string             { return p.message }

type TokenPayloadResolver struct {
	p dto.TokenPayload
}

func (t *TokenPayloadResolver) UserID() graphql.ID { return graphql.ID(t.p.UserID.String()) }
func (t *TokenPayloadResolver) Username() string   { return t.p.Username }
func (t *TokenPayloadResolver) Exp() int32         { return int32(t.p.Exp) }
func (t *TokenPayloadResolver) OrigIat() int32     { return int32(t.p.Iat) }

type ObtainTokenPayload struct {
	pair *dto.TokenPair
}

func (o *ObtainTokenPayload) Token() string           { return o.pair.AccessToken }
func (o *ObtainTokenPayload) RefreshToken() string    { return o.pair.RefreshToken }
func (o *ObtainTokenPayload) RefreshExpiresIn() int32 { return int32(o.pair.RefreshExpiresAt) }
func (o *ObtainTokenPayload) Payload() *TokenPayloadResolver {
	return &TokenPayloadResolver{p: o.pair.Payload}
}

type VerifyTokenPayload struct {
	payload dto.TokenPayload
}

func (v *VerifyTokenPayload) Payload() *TokenPayloadResolver {
	return &TokenPayloadResolver{p: v.payload}
}

type RevokeTokenPayload struct {
	revoked int64
}

func (r *RevokeTokenPayload) Revoked() int32 { return int32(r.revoked) }
