package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserInput carries user fields for create and partial update. A nil field
// is "not supplied" and leaves the stored value untouched on update.
type UserInput struct {
	Username *string
	Email    *string
	Password *string
}

// ContractInput carries contract fields with the same nil-means-absent rule.
type ContractInput struct {
	Description *string
	UserID      *uuid.UUID
	Fidelity    *int
	Amount      *decimal.Decimal
}

// GraphQLRequest is the POST body accepted at /graphql.
type GraphQLRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}
