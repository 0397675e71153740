package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Income is an expected source of monthly income.
type Income struct {
	DefaultModel
	UserID       uuid.UUID
	Name         string
	Note         string
	Amount       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	ExpectedDate time.Time
	Received     bool
}

func (i *Income) BeforeSave(_ *gorm.DB) error {
	i.Name = strings.TrimSpace(i.Name)
	i.Note = strings.TrimSpace(i.Note)

	if i.ExpectedDate.IsZero() {
		i.ExpectedDate = time.Now().In(time.UTC)
	} else {
		i.ExpectedDate = i.ExpectedDate.In(time.UTC)
	}

	return nil
}

func (i *Income) AfterSave(_ *gorm.DB) error {
	if i.Amount.IsNegative() {
		return ErrAmountNegative
	}

	return nil
}

// SetReceived toggles the received flag. The toggle is idempotent, setting
// an already received income to received is a no-op.
func (i *Income) SetReceived(db *gorm.DB, received bool) error {
	if i.Received == received {
		return nil
	}

	return db.Model(i).Update("received", received).Error
}
