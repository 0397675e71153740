package models

import (
	"errors"
	"strings"

	"github.com/chris-melvin/usemargin-sub000/internal/budget"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Bucket is a named spending envelope that receives a share of the user's
// remaining monthly budget.
//
// A bucket is funded in exactly one of two ways: a fixed target amount or a
// percentage of what is left after all fixed buckets are funded.
type Bucket struct {
	DefaultModel
	UserID          uuid.UUID `gorm:"uniqueIndex:bucket_user_slug"`
	Name            string
	Slug            string          `gorm:"uniqueIndex:bucket_user_slug"`
	TargetAmount    decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Fixed allocation when positive
	Percentage      decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Share of the remainder when positive
	AllocatedAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Last computed allocation
	Color           string
	Icon            string
	IsDefault       bool // Destination for unassigned expenses, exactly one per user
	IsSystem        bool // Seed buckets that the UI does not allow deleting
	SortOrder       int
}

var (
	ErrBucketAllocationKind  = errors.New("a bucket must declare either a target amount or a percentage, but not both")
	ErrBucketPercentageRange = errors.New("a bucket percentage must not be larger than 100")
	ErrBucketSlugNotUnique   = errors.New("the bucket slug is already in use for this user")
	ErrBucketIsDefault       = errors.New("the default bucket cannot be deleted")
	ErrBucketUserRequired    = errors.New("a bucket must belong to a user")
)

func (b *Bucket) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Slug = strings.TrimSpace(b.Slug)
	b.Color = strings.TrimSpace(b.Color)
	b.Icon = strings.TrimSpace(b.Icon)

	if b.Slug == "" {
		b.Slug = slugify(b.Name)
	}

	return nil
}

func (b *Bucket) BeforeCreate(tx *gorm.DB) error {
	_ = b.DefaultModel.BeforeCreate(tx)

	if b.UserID == uuid.Nil {
		return ErrBucketUserRequired
	}

	// The first bucket of a user becomes the default destination for
	// unassigned expenses
	var count int64
	err := tx.Model(&Bucket{}).Where("user_id = ?", b.UserID).Count(&count).Error
	if err != nil {
		return err
	}

	if count == 0 {
		b.IsDefault = true
	}

	return nil
}

func (b *Bucket) AfterSave(_ *gorm.DB) error {
	if b.TargetAmount.IsNegative() || b.Percentage.IsNegative() || b.AllocatedAmount.IsNegative() {
		return ErrAmountNegative
	}

	if b.Percentage.GreaterThan(decimal.NewFromInt(100)) {
		return ErrBucketPercentageRange
	}

	hasTarget := b.TargetAmount.IsPositive()
	hasPercentage := b.Percentage.IsPositive()
	if hasTarget == hasPercentage {
		return ErrBucketAllocationKind
	}

	return nil
}

func (b *Bucket) BeforeDelete(tx *gorm.DB) error {
	// Load the flag from the database, the caller might only have set the ID
	var bucket Bucket
	err := tx.First(&bucket, b.ID).Error
	if err != nil {
		return err
	}

	if bucket.IsDefault {
		return ErrBucketIsDefault
	}

	return nil
}

// Deduct subtracts a payment from the bucket's allocated balance.
//
// The balance floors at zero instead of going negative or raising an error
// when the payment is larger than what is left in the bucket.
func (b *Bucket) Deduct(db *gorm.DB, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrAmountNegative
	}

	newAmount := b.AllocatedAmount.Sub(amount)
	if newAmount.IsNegative() {
		newAmount = decimal.Zero
	}

	return db.Model(b).Update("allocated_amount", newAmount).Error
}

// SetDefaultBucket designates a bucket as the default destination for the
// user's unassigned expenses.
//
// Exactly one bucket per user is the default whenever the user has buckets
// at all. The flag is moved with a single UPDATE that sets it for the target
// bucket and clears it for all siblings, so concurrent calls cannot leave
// zero or two defaults.
func SetDefaultBucket(db *gorm.DB, userID, bucketID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var bucket Bucket
		err := tx.First(&bucket, "id = ? AND user_id = ?", bucketID, userID).Error
		if err != nil {
			return err
		}

		return tx.Session(&gorm.Session{SkipHooks: true}).
			Model(&Bucket{}).
			Where("user_id = ?", userID).
			Update("is_default", gorm.Expr("id = ?", bucketID)).Error
	})
}

// DefaultBucket returns the default bucket of a user.
func DefaultBucket(db *gorm.DB, userID uuid.UUID) (Bucket, error) {
	var bucket Bucket
	err := db.First(&bucket, "user_id = ? AND is_default = ?", userID, true).Error

	return bucket, err
}

// RecalculateAllocations distributes the remaining monthly budget over all
// buckets of a user and persists the result in each bucket's allocated
// amount.
//
// remaining is the user's income minus the committed fixed obligations and
// is computed by the caller. Buckets are processed in sort order, the first
// listed fixed buckets win scarce budget.
func RecalculateAllocations(db *gorm.DB, userID uuid.UUID, remaining decimal.Decimal) ([]budget.Result, error) {
	if remaining.IsNegative() {
		return nil, ErrAmountNegative
	}

	var buckets []Bucket
	err := db.Where("user_id = ?", userID).Order("sort_order ASC, created_at ASC").Find(&buckets).Error
	if err != nil {
		return nil, err
	}

	inputs := make([]budget.Input, 0, len(buckets))
	for _, bucket := range buckets {
		inputs = append(inputs, budget.Input{
			ID:           bucket.ID,
			TargetAmount: bucket.TargetAmount,
			Percentage:   bucket.Percentage,
		})
	}

	results := budget.Allocate(inputs, remaining)

	err = db.Transaction(func(tx *gorm.DB) error {
		for i := range buckets {
			if buckets[i].AllocatedAmount.Equal(results[i].Amount) {
				continue
			}

			err := tx.Model(&buckets[i]).Update("allocated_amount", results[i].Amount).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}
