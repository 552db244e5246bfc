package services

import (
	"context"
	"errors"
	"strings"

	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/dto"
	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	maxDescriptionLen = 255
	amountPlaces      = 2
	amountMaxDigits   = 10
)

var amountLimit = decimal.New(1, amountMaxDigits-amountPlaces)

type ContractService struct {
	db    *gorm.DB
	users *UserService
}

func NewContractService(db *gorm.DB, users *UserService) *ContractService {
	return &ContractService{db: db, users: users}
}

func (s *ContractService) Create(ctx context.Context, in dto.ContractInput) (*models.Contract, error) {
	switch {
	case in.Description == nil:
		return nil, invalid("description is required")
	case in.UserID == nil:
		return nil, invalid("userId is required")
	case in.Fidelity == nil:
		return nil, invalid("fidelity is required")
	case in.Amount == nil:
		return nil, invalid("amount is required")
	}

	contract := models.Contract{}
	if err := s.apply(ctx, &contract, in); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(&contract).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, notFound("user %s does not exist", contract.UserID)
		}
		return nil, internal("create contract", err)
	}
	return &contract, nil
}

func (s *ContractService) Get(ctx context.Context, id uuid.UUID) (*models.Contract, error) {
	var contract models.Contract
	if err := s.db.WithContext(ctx).Preload("User").First(&contract, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("contract %s not found", id)
		}
		return nil, internal("get contract", err)
	}
	return &contract, nil
}

func (s *ContractService) List(ctx context.Context) ([]models.Contract, error) {
	var contracts []models.Contract
	if err := s.db.WithContext(ctx).Preload("User").Scopes(Ordered).Find(&contracts).Error; err != nil {
		return nil, internal("list contracts", err)
	}
	return contracts, nil
}

// ListByUser returns the user's contracts, empty when there are none.
func (s *ContractService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Contract, error) {
	contracts := []models.Contract{}
	err := s.db.WithContext(ctx).
		Preload("User").
		Scopes(ForUser(userID), Ordered).
		Find(&contracts).Error
	if err != nil {
		return nil, internal("list contracts by user", err)
	}
	return contracts, nil
}

// Update overwrites only the supplied fields; CreatedAt never changes.
func (s *ContractService) Update(ctx context.Context, id uuid.UUID, in dto.ContractInput) (*models.Contract, error) {
	contract, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.apply(ctx, contract, in); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Omit(clause.Associations).Save(contract).Error; err != nil {
		return nil, internal("update contract", err)
	}
	if contract.User.ID != contract.UserID {
		contract.User = models.User{}
	}
	return contract, nil
}

func (s *ContractService) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Contract{})
	if res.Error != nil {
		return internal("delete contract", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("contract %s not found", id)
	}
	return nil
}

func (s *ContractService) apply(ctx context.Context, contract *models.Contract, in dto.ContractInput) error {
	if in.Description != nil {
		description := strings.TrimSpace(*in.Description)
		if description == "" {
			return invalid("description must not be empty")
		}
		if len(description) > maxDescriptionLen {
			return invalid("description must be at most %d characters", maxDescriptionLen)
		}
		contract.Description = description
	}

	if in.Fidelity != nil {
		contract.Fidelity = *in.Fidelity
	}

	if in.Amount != nil {
		amount, err := normalizeAmount(*in.Amount)
		if err != nil {
			return err
		}
		contract.Amount = amount
	}

	if in.UserID != nil && *in.UserID != contract.UserID {
		ok, err := s.users.Exists(ctx, *in.UserID)
		if err != nil {
			return err
		}
		if !ok {
			return notFound("user %s does not exist", *in.UserID)
		}
		contract.UserID = *in.UserID
	}
	return nil
}

// normalizeAmount enforces a decimal(10,2) value: at most two fractional
// digits and eight integer digits.
func normalizeAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.Equal(amount.Round(amountPlaces)) {
		return decimal.Decimal{}, invalid("amount must have at most %d decimal places", amountPlaces)
	}
	if amount.Abs().GreaterThanOrEqual(amountLimit) {
		return decimal.Decimal{}, invalid("amount must have at most %d digits", amountMaxDigits)
	}
	return amount.Round(amountPlaces), nil
}
