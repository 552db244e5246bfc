package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Contract belongs to exactly one User. The foreign key restricts deletes so
// a user cannot be removed while contracts still reference it.
type Contract struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Description string          `gorm:"size:255;not null" json:"description"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	User        User            `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	CreatedAt   time.Time       `gorm:"autoCreateTime;<-:create" json:"created_at"`
	Fidelity    int             `gorm:"not null" json:"fidelity"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (c *Contract) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
