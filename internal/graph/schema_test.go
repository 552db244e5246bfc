package graph

import (
	"strings"
	"testing"

	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/database/dbtest"
	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

func TestSchemaBindsResolver(t *testing.T) {
	db := dbtest.New(t)
	cfg := dbtest.Config()
	users := services.NewUserService(db, cfg)
	r := NewResolver(users, services.NewContractService(db, users), services.NewAuthService(db, cfg), true)

	_, err := NewSchema(r)
	require.NoError(t, err)
}

func TestSDLExposesOperations(t *testing.T) {
	schema, err := gqlparser.LoadSchema(&ast.Source{Name: "schema.graphql", Input: SDL})
	require.NoError(t, err)

	fields := func(def *ast.Definition) []string {
		var names []string
		for _, f := range def.Fields {
			if strings.HasPrefix(f.Name, "__") {
				continue
			}
			names = append(names, f.Name)
		}
		return names
	}

	assert.ElementsMatch(t,
		[]string{"allUsers", "allContracts", "getUser", "getContract", "getContractsByUserId", "me"},
		fields(schema.Query))
	assert.ElementsMatch(t,
		[]string{
			"createUser", "updateUser", "deleteUser",
			"createContract", "updateContract", "deleteContract",
			"tokenAuth", "verifyToken", "refreshToken", "revokeToken",
		},
		fields(schema.Mutation))

	assert.Nil(t, schema.Types["User"].Fields.ForName("password"))
	assert.Equal(t, "Decimal!", schema.Types["Contract"].Fields.ForName("amount").Type.String())
}

func TestSDLValidatesDocuments(t *testing.T) {
	schema, err := gqlparser.LoadSchema(&ast.Source{Name: "schema.graphql", Input: SDL})
	require.NoError(t, err)

	_, errs := gqlparser.LoadQuery(schema, `{ allUsers { contracts { user { contracts { amount } } } } }`)
	assert.Empty(t, errs)

	_, errs = gqlparser.LoadQuery(schema, `{ allUsers { password } }`)
	assert.NotEmpty(t, errs)
}
