package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Bill is a recurring fixed obligation, due on a fixed day of the month.
//
// PaymentBucketID is a soft reference: deleting the bucket orphans the
// reference, it never cascades to the bill.
type Bill struct {
	DefaultModel
	UserID          uuid.UUID
	Name            string
	Note            string
	Amount          decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	DueDay          int
	Paid            bool
	PaymentBucketID *uuid.UUID
}

var ErrDueDayRange = errors.New("the due day must be between 1 and 31")

func (b *Bill) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Note = strings.TrimSpace(b.Note)

	return nil
}

func (b *Bill) AfterSave(_ *gorm.DB) error {
	if b.Amount.IsNegative() {
		return ErrAmountNegative
	}

	if b.DueDay < 1 || b.DueDay > 31 {
		return ErrDueDayRange
	}

	return nil
}

// SetPaid toggles the paid flag.
//
// On the transition to paid, the bill amount is deducted from the payment
// bucket when one is set. The toggle is idempotent, repeating it does not
// deduct again. An orphaned payment bucket reference is skipped.
func (b *Bill) SetPaid(db *gorm.DB, paid bool) error {
	if b.Paid == paid {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(b).Update("paid", paid).Error
		if err != nil {
			return err
		}

		if !paid || b.PaymentBucketID == nil {
			return nil
		}

		var bucket Bucket
		err = tx.First(&bucket, "id = ? AND user_id = ?", *b.PaymentBucketID, b.UserID).Error
		if errors.Is(err, ErrResourceNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		return bucket.Deduct(tx, b.Amount)
	})
}
