package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Subscription is a recurring service charge.
type Subscription struct {
	DefaultModel
	UserID     uuid.UUID
	Name       string
	Note       string
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	BillingDay int
	Active     bool
}

func (s *Subscription) BeforeSave(_ *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)
	s.Note = strings.TrimSpace(s.Note)

	return nil
}

func (s *Subscription) AfterSave(_ *gorm.DB) error {
	if s.Amount.IsNegative() {
		return ErrAmountNegative
	}

	if s.BillingDay < 1 || s.BillingDay > 31 {
		return ErrDueDayRange
	}

	return nil
}

// SetActive pauses or resumes the subscription. Idempotent.
func (s *Subscription) SetActive(db *gorm.DB, active bool) error {
	if s.Active == active {
		return nil
	}

	return db.Model(s).Update("active", active).Error
}
