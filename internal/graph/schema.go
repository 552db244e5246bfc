package graph

import (
	_ "embed"

	"github.com/graph-gophers/graphql-go"
)

// SDL is the schema served at /graphql.
//
//go:embed schema.graphql
var SDL string

// maxQueryDepth stops User.contracts.user.contracts... from fanning out.
const maxQueryDepth = 8

// NewSchema binds the resolver to SDL.
func NewSchema(r *Resolver) (*graphql.Schema, error) {
	return graphql.ParseSchema(SDL, r,
		graphql.UseStringDescriptions(),
		graphql.MaxDepth(maxQueryDepth),
		graphql.Logger(panicLogger{}),
	)
}
