package services

import (
	"context"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/dto"
	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contractInput(owner uuid.UUID, description string, fidelity int, amount string) dto.ContractInput {
	return dto.ContractInput{
		Description: ptr(description),
		UserID:      &owner,
		Fidelity:    ptr(fidelity),
		Amount:      ptr(decimal.RequireFromString(amount)),
	}
}

func TestContractService_CreateUnknownUser(t *testing.T) {
	db, _, contracts := newServices(t)
	ctx := context.Background()

	_, err := contracts.Create(ctx, contractInput(uuid.New(), "orphan", 1, "1.00"))
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Contains(t, err.Error(), "does not exist")

	var count int64
	require.NoError(t, db.Model(&models.Contract{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestContractService_CreateValidation(t *testing.T) {
	_, users, contracts := newServices(t)
	ctx := context.Background()
	owner := createUser(t, users, "owner")

	tests := []struct {
		name string
		in   dto.ContractInput
	}{
		{"missing description", dto.ContractInput{UserID: &owner.ID, Fidelity: ptr(1), Amount: ptr(decimal.NewFromInt(1))}},
		{"missing user", dto.ContractInput{Description: ptr("d"), Fidelity: ptr(1), Amount: ptr(decimal.NewFromInt(1))}},
		{"missing fidelity", dto.ContractInput{Description: ptr("d"), UserID: &owner.ID, Amount: ptr(decimal.NewFromInt(1))}},
		{"missing amount", dto.ContractInput{Description: ptr("d"), UserID: &owner.ID, Fidelity: ptr(1)}},
		{"three decimals", contractInput(owner.ID, "d", 1, "1.005")},
		{"too many digits", contractInput(owner.ID, "d", 1, "100000000.00")},
		{"blank description", contractInput(owner.ID, "  ", 1, "1.00")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := contracts.Create(ctx, tt.in)
			require.Error(t, err)
			assert.Equal(t, KindValidation, KindOf(err))
		})
	}
}

func TestContractService_ListByUser(t *testing.T) {
	_, users, contracts := newServices(t)
	ctx := context.Background()
	owner := createUser(t, users, "owner")
	other := createUser(t, users, "other")

	_, err := contracts.Create(ctx, contractInput(owner.ID, "Contract 1", 12, "100.50"))
	require.NoError(t, err)
	_, err = contracts.Create(ctx, contractInput(owner.ID, "Contract 2", 24, "200.75"))
	require.NoError(t, err)
	_, err = contracts.Create(ctx, contractInput(other.ID, "Contract 3", 6, "5.00"))
	require.NoError(t, err)

	list, err := contracts.ListByUser(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Contract 1", list[0].Description)
	assert.Equal(t, "100.50", list[0].Amount.StringFixed(2))
	assert.Equal(t, 12, list[0].Fidelity)
	assert.Equal(t, "200.75", list[1].Amount.StringFixed(2))
	assert.Equal(t, 24, list[1].Fidelity)
	assert.Equal(t, owner.ID, list[0].User.ID)

	empty, err := contracts.ListByUser(ctx, uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	all, err := contracts.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestContractService_UpdatePartial(t *testing.T) {
	_, users, contracts := newServices(t)
	ctx := context.Background()
	owner := createUser(t, users, "owner")

	c, err := contracts.Create(ctx, contractInput(owner.ID, "Contract 1", 12, "100.50"))
	require.NoError(t, err)
	created, err := contracts.Get(ctx, c.ID)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	updated, err := contracts.Update(ctx, c.ID, dto.ContractInput{Amount: ptr(decimal.RequireFromString("150.00"))})
	require.NoError(t, err)
	assert.Equal(t, "150.00", updated.Amount.StringFixed(2))

	stored, err := contracts.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Contract 1", stored.Description)
	assert.Equal(t, 12, stored.Fidelity)
	assert.Equal(t, "150.00", stored.Amount.StringFixed(2))
	assert.True(t, created.CreatedAt.Equal(stored.CreatedAt))
}

func TestContractService_UpdateOwner(t *testing.T) {
	_, users, contracts := newServices(t)
	ctx := context.Background()
	owner := createUser(t, users, "owner")
	next := createUser(t, users, "next")

	c, err := contracts.Create(ctx, contractInput(owner.ID, "Contract 1", 12, "100.50"))
	require.NoError(t, err)

	missing := uuid.New()
	_, err = contracts.Update(ctx, c.ID, dto.ContractInput{UserID: &missing})
	assert.Equal(t, KindNotFound, KindOf(err))

	updated, err := contracts.Update(ctx, c.ID, dto.ContractInput{UserID: &next.ID})
	require.NoError(t, err)
	assert.Equal(t, next.ID, updated.UserID)

	_, err = contracts.Update(ctx, uuid.New(), dto.ContractInput{Fidelity: ptr(1)})
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestContractService_Delete(t *testing.T) {
	_, users, contracts := newServices(t)
	ctx := context.Background()
	owner := createUser(t, users, "owner")

	c, err := contracts.Create(ctx, contractInput(owner.ID, "Contract 1", 12, "100.50"))
	require.NoError(t, err)

	require.NoError(t, contracts.Delete(ctx, c.ID))
	_, err = contracts.Get(ctx, c.ID)
	assert.Equal(t, KindNotFound, KindOf(err))

	assert.Equal(t, KindNotFound, KindOf(contracts.Delete(ctx, c.ID)))

	// With its only contract gone the owner can be deleted.
	assert.NoError(t, users.Delete(ctx, owner.ID))
}
