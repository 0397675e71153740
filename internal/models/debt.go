package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Debt is an outstanding balance that is paid off over time.
//
// PaymentBucketID is a soft reference, see Bill.
type Debt struct {
	DefaultModel
	UserID          uuid.UUID
	Name            string
	Note            string
	TotalAmount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	RemainingAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	MinimumPayment  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	PaymentBucketID *uuid.UUID
}

func (d *Debt) BeforeSave(_ *gorm.DB) error {
	d.Name = strings.TrimSpace(d.Name)
	d.Note = strings.TrimSpace(d.Note)

	// A new debt starts with the full amount outstanding
	if d.RemainingAmount.IsZero() && d.TotalAmount.IsPositive() && d.CreatedAt.IsZero() {
		d.RemainingAmount = d.TotalAmount
	}

	return nil
}

func (d *Debt) AfterSave(_ *gorm.DB) error {
	if d.TotalAmount.IsNegative() || d.RemainingAmount.IsNegative() || d.MinimumPayment.IsNegative() {
		return ErrAmountNegative
	}

	return nil
}

// RecordPayment reduces the remaining debt by the payment amount, floored
// at zero, and deducts the payment from the payment bucket when one is set.
func (d *Debt) RecordPayment(db *gorm.DB, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrAmountNegative
	}

	return db.Transaction(func(tx *gorm.DB) error {
		remaining := d.RemainingAmount.Sub(amount)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}

		err := tx.Model(d).Update("remaining_amount", remaining).Error
		if err != nil {
			return err
		}

		if d.PaymentBucketID == nil {
			return nil
		}

		var bucket Bucket
		err = tx.First(&bucket, "id = ? AND user_id = ?", *d.PaymentBucketID, d.UserID).Error
		if errors.Is(err, ErrResourceNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		return bucket.Deduct(tx, amount)
	})
}
