package services

import (
	"context"
	"errors"
	"strings"

	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/config"
	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/dto"
	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	maxUsernameLen = 150
	maxEmailLen    = 254
)

type UserService struct {
	db         *gorm.DB
	bcryptCost int
}

func NewUserService(db *gorm.DB, cfg *config.Config) *UserService {
	return &UserService{db: db, bcryptCost: cfg.BcryptCost}
}

func (s *UserService) Create(ctx context.Context, in dto.UserInput) (*models.User, error) {
	if in.Username == nil {
		return nil, invalid("username is required")
	}
	if in.Password == nil {
		return nil, invalid("password is required")
	}

	user := models.User{}
	if err := s.apply(ctx, &user, in); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, invalid("username %q is already taken", user.Username)
		}
		return nil, internal("create user", err)
	}
	return &user, nil
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("user %s not found", id)
		}
		return nil, internal("get user", err)
	}
	return &user, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Scopes(Ordered).Find(&users).Error; err != nil {
		return nil, internal("list users", err)
	}
	return users, nil
}

// Update overwrites only the supplied fields. The password is re-hashed only
// when a new one is given.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, in dto.UserInput) (*models.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.apply(ctx, user, in); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, invalid("username %q is already taken", user.Username)
		}
		return nil, internal("update user", err)
	}
	return user, nil
}

// Delete removes a user that owns no contracts, together with its refresh
// tokens. Users that still own contracts are refused with a conflict.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("user %s not found", id)
			}
			return internal("get user", err)
		}

		var contracts int64
		if err := tx.Model(&models.Contract{}).Scopes(ForUser(id)).Count(&contracts).Error; err != nil {
			return internal("count contracts", err)
		}
		if contracts > 0 {
			return conflict("user %s still owns %d contract(s); delete them first", id, contracts)
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.RefreshToken{}).Error; err != nil {
			return internal("delete refresh tokens", err)
		}
		if err := tx.Delete(&user).Error; err != nil {
			return internal("delete user", err)
		}
		return nil
	})
}

func (s *UserService) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, internal("check user", err)
	}
	return count > 0, nil
}

func (s *UserService) apply(ctx context.Context, user *models.User, in dto.UserInput) error {
	if in.Username != nil {
		username := strings.TrimSpace(*in.Username)
		if username == "" {
			return invalid("username must not be empty")
		}
		if len(username) > maxUsernameLen {
			return invalid("username must be at most %d characters", maxUsernameLen)
		}
		if username != user.Username {
			taken, err := s.usernameTaken(ctx, username, user.ID)
			if err != nil {
				return err
			}
			if taken {
				return invalid("username %q is already taken", username)
			}
		}
		user.Username = username
	}

	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if len(email) > maxEmailLen {
			return invalid("email must be at most %d characters", maxEmailLen)
		}
		user.Email = email
	}

	if in.Password != nil {
		hash, err := hashPassword(*in.Password, s.bcryptCost)
		if err != nil {
			return err
		}
		user.Password = hash
	}
	return nil
}

func (s *UserService) usernameTaken(ctx context.Context, username string, except uuid.UUID) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("username = ? AND id <> ?", username, except).
		Count(&count).Error
	if err != nil {
		return false, internal("check username", err)
	}
	return count > 0, nil
}
