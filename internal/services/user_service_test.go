package services

import (
	"context"
	"testing"

	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/database/dbtest"
	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/dto"
	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func ptr[T any](v T) *T { return &v }

func newServices(t *testing.T) (*gorm.DB, *UserService, *ContractService) {
	t.Helper()
	db := dbtest.New(t)
	users := NewUserService(db, dbtest.Config())
	return db, users, NewContractService(db, users)
}

func createUser(t *testing.T, users *UserService, username string) *models.User {
	t.Helper()
	u, err := users.Create(context.Background(), dto.UserInput{
		Username: ptr(username),
		Email:    ptr(username + "@example.com"),
		Password: ptr("password123"),
	})
	require.NoError(t, err)
	return u
}

func TestUserService_Create(t *testing.T) {
	_, users, _ := newServices(t)
	ctx := context.Background()

	u := createUser(t, users, "user1")
	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.NotEqual(t, "password123", u.Password)
	assert.True(t, checkPassword(u.Password, "password123"))

	got, err := users.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "user1", got.Username)
	assert.Equal(t, "user1@example.com", got.Email)
}

func TestUserService_CreateValidation(t *testing.T) {
	_, users, _ := newServices(t)
	ctx := context.Background()
	createUser(t, users, "taken")

	tests := []struct {
		name string
		in   dto.UserInput
	}{
		{"missing username", dto.UserInput{Password: ptr("pw")}},
		{"missing password", dto.UserInput{Username: ptr("bob")}},
		{"blank username", dto.UserInput{Username: ptr("   "), Password: ptr("pw")}},
		{"empty password", dto.UserInput{Username: ptr("bob"), Password: ptr("")}},
		{"duplicate username", dto.UserInput{Username: ptr("taken"), Password: ptr("pw")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := users.Create(ctx, tt.in)
			require.Error(t, err)
			assert.Equal(t, KindValidation, KindOf(err))
		})
	}

	list, err := users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestUserService_UpdatePartial(t *testing.T) {
	_, users, _ := newServices(t)
	ctx := context.Background()
	u := createUser(t, users, "user1")
	originalHash := u.Password

	updated, err := users.Update(ctx, u.ID, dto.UserInput{Username: ptr("renamed")})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Username)

	stored, err := users.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", stored.Username)
	assert.Equal(t, "user1@example.com", stored.Email)
	assert.Equal(t, originalHash, stored.Password)

	_, err = users.Update(ctx, u.ID, dto.UserInput{Password: ptr("newpassword123")})
	require.NoError(t, err)
	stored, err = users.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.NotEqual(t, originalHash, stored.Password)
	assert.True(t, checkPassword(stored.Password, "newpassword123"))
}

func TestUserService_UpdateErrors(t *testing.T) {
	_, users, _ := newServices(t)
	ctx := context.Background()
	u := createUser(t, users, "user1")
	createUser(t, users, "user2")

	_, err := users.Update(ctx, uuid.New(), dto.UserInput{Username: ptr("x")})
	assert.Equal(t, KindNotFound, KindOf(err))

	_, err = users.Update(ctx, u.ID, dto.UserInput{Username: ptr("user2")})
	assert.Equal(t, KindValidation, KindOf(err))

	// Keeping one's own username is not a conflict.
	_, err = users.Update(ctx, u.ID, dto.UserInput{Username: ptr("user1")})
	assert.NoError(t, err)
}

func TestUserService_Delete(t *testing.T) {
	_, users, contracts := newServices(t)
	ctx := context.Background()
	owner := createUser(t, users, "owner")
	lonely := createUser(t, users, "lonely")

	c, err := contracts.Create(ctx, dto.ContractInput{
		Description: ptr("Contract 1"),
		UserID:      &owner.ID,
		Fidelity:    ptr(12),
		Amount:      ptr(decimal.RequireFromString("100.50")),
	})
	require.NoError(t, err)

	err = users.Delete(ctx, owner.ID)
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))
	assert.Contains(t, err.Error(), "still owns 1 contract")

	_, err = users.Get(ctx, owner.ID)
	assert.NoError(t, err)
	_, err = contracts.Get(ctx, c.ID)
	assert.NoError(t, err)

	require.NoError(t, users.Delete(ctx, lonely.ID))
	_, err = users.Get(ctx, lonely.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, KindNotFound, KindOf(users.Delete(ctx, lonely.ID)))
}

func TestUserService_ListOrdered(t *testing.T) {
	_, users, _ := newServices(t)
	ctx := context.Background()
	createUser(t, users, "first")
	createUser(t, users, "second")

	list, err := users.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].Username)
	assert.Equal(t, "second", list[1].Username)
}
