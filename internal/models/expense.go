package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is a single spending record, optionally tagged with the bucket it
// draws from. The tag is a soft reference, deleting the bucket keeps the
// expense.
type Expense struct {
	DefaultModel
	UserID   uuid.UUID
	Name     string
	Note     string
	Amount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date     time.Time
	BucketID *uuid.UUID
}

func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Name = strings.TrimSpace(e.Name)
	e.Note = strings.TrimSpace(e.Note)

	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	} else {
		e.Date = e.Date.In(time.UTC)
	}

	return nil
}

func (e *Expense) AfterSave(_ *gorm.DB) error {
	if e.Amount.IsNegative() {
		return ErrAmountNegative
	}

	return nil
}

// BeforeCreate tags the expense with a bucket when the caller did not pick
// one.
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	_ = e.DefaultModel.BeforeCreate(tx)

	if e.BucketID != nil {
		return nil
	}

	id, ok, err := ProposeBucket(tx, e.UserID, e.Name)
	if err != nil {
		return err
	}

	if ok {
		e.BucketID = &id
	}

	return nil
}

// ProposeBucket returns the bucket a new expense should be tagged with.
//
// Match rules are consulted in priority order, the first matching pattern
// wins, ties are broken by creation time. When no rule matches, the user's
// default bucket is used. The second return value reports whether any
// bucket was found.
func ProposeBucket(db *gorm.DB, userID uuid.UUID, name string) (uuid.UUID, bool, error) {
	var rules []MatchRule
	err := db.Where("user_id = ?", userID).Order("priority ASC, created_at ASC").Find(&rules).Error
	if err != nil {
		return uuid.Nil, false, err
	}

	for _, rule := range rules {
		if !glob.Glob(rule.Match, name) {
			continue
		}

		// Skip rules whose bucket has been deleted in the meantime
		err := db.First(&Bucket{}, "id = ? AND user_id = ?", rule.BucketID, userID).Error
		if errors.Is(err, ErrResourceNotFound) {
			continue
		}
		if err != nil {
			return uuid.Nil, false, err
		}

		return rule.BucketID, true, nil
	}

	bucket, err := DefaultBucket(db, userID)
	if errors.Is(err, ErrResourceNotFound) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, err
	}

	return bucket.ID, true, nil
}
