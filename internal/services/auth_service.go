package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/config"
	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/dto"
	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const accessTokenType = "access"

// AccessClaims is the payload of an access token.
type AccessClaims struct {
	Username  string `json:"username"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
	now func() time.Time
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg, now: time.Now}
}

// ObtainToken checks credentials and issues an access/refresh token pair.
func (s *AuthService) ObtainToken(ctx context.Context, username, password string) (*dto.TokenPair, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, internal("find user", err)
	}

	if !checkPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}

	return s.generateTokenPair(s.db.WithContext(ctx), &user)
}

// Verify parses an access token and returns its claims.
func (s *AuthService) Verify(token string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, s.KeyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if err := ValidateClaims(claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// KeyFunc returns the HMAC signing key; shared with the HTTP middleware.
// Only HS256 is accepted.
func (s *AuthService) KeyFunc(t *jwt.Token) (interface{}, error) {
	if t.Method != jwt.SigningMethodHS256 {
		return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
	}
	return []byte(s.cfg.JWTSecret), nil
}

// ValidateClaims checks the parts of the payload jwt does not know about.
func ValidateClaims(claims *AccessClaims) error {
	if claims.TokenType != accessTokenType {
		return ErrInvalidToken
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return ErrInvalidToken
	}
	return nil
}

// Refresh rotates a refresh token: the presented one is revoked and a new
// pair is issued.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPair, error) {
	var pair *dto.TokenPair
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var stored models.RefreshToken
		if err := tx.Where("token_hash = ? AND revoked = ?", hashToken(refreshToken), false).First(&stored).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidToken
			}
			return internal("find refresh token", err)
		}

		if s.now().After(stored.ExpiresAt) {
			return ErrInvalidToken
		}
		if err := tx.Model(&stored).Update("revoked", true).Error; err != nil {
			return internal("revoke refresh token", err)
		}

		var user models.User
		if err := tx.First(&user, "id = ?", stored.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidToken
			}
			return internal("find user", err)
		}

		var err error
		pair, err = s.generateTokenPair(tx, &user)
		return err
	})
	if err != nil {
		return nil, err
	}
	return pair, nil
}

// Revoke marks a refresh token as revoked and reports how many were changed.
func (s *AuthService) Revoke(ctx context.Context, refreshToken string) (int64, error) {
	res := s.db.WithContext(ctx).Model(&models.RefreshToken{}).
		Where("token_hash = ? AND revoked = ?", hashToken(refreshToken), false).
		Update("revoked", true)
	if res.Error != nil {
		return 0, internal("revoke refresh token", res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, ErrInvalidToken
	}
	return res.RowsAffected, nil
}

func (s *AuthService) generateTokenPair(db *gorm.DB, user *models.User) (*dto.TokenPair, error) {
	now := s.now()
	claims := AccessClaims{
		Username:  user.Username,
		TokenType: accessTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTAccessExpiry)),
		},
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, internal("sign access token", err)
	}

	refreshToken, expiresAt, err := s.generateRefreshToken(db, user, now)
	if err != nil {
		return nil, err
	}

	return &dto.TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: expiresAt.Unix(),
		Payload: dto.TokenPayload{
			UserID:   user.ID,
			Username: user.Username,
			Exp:      claims.ExpiresAt.Unix(),
			Iat:      claims.IssuedAt.Unix(),
		},
	}, nil
}

func (s *AuthService) generateRefreshToken(db *gorm.DB, user *models.User, now time.Time) (string, time.Time, error) {
	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return "", time.Time{}, internal("generate refresh token", err)
	}

	rawToken := base64.URLEncoding.EncodeToString(rawBytes)
	record := models.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashToken(rawToken),
		ExpiresAt: now.Add(s.cfg.JWTRefreshExpiry),
	}

	if err := db.Omit("User").Create(&record).Error; err != nil {
		return "", time.Time{}, internal("store refresh token", err)
	}

	return rawToken, record.ExpiresAt, nil
}

// PayloadFromClaims renders verified claims the way tokenAuth reports them.
func PayloadFromClaims(claims *AccessClaims) dto.TokenPayload {
	payload := dto.TokenPayload{Username: claims.Username}
	payload.UserID, _ = uuid.Parse(claims.Subject)
	if claims.ExpiresAt != nil {
		payload.Exp = claims.ExpiresAt.Unix()
	}
	if claims.IssuedAt != nil {
		payload.Iat = claims.IssuedAt.Unix()
	}
	return payload
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}
