package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchRule proposes a bucket for new expenses whose name matches a glob
// pattern, e.g. "Aldi*" or "*coffee*".
type MatchRule struct {
	DefaultModel
	UserID   uuid.UUID
	Priority uint
	Match    string
	BucketID uuid.UUID
}

var ErrMatchRulePatternEmpty = errors.New("the match pattern must not be empty")

func (r *MatchRule) BeforeSave(_ *gorm.DB) error {
	r.Match = strings.TrimSpace(r.Match)
	if r.Match == "" {
		return ErrMatchRulePatternEmpty
	}

	return nil
}

func (r *MatchRule) BeforeCreate(tx *gorm.DB) error {
	_ = r.DefaultModel.BeforeCreate(tx)

	return r.checkIntegrity(tx)
}

func (r *MatchRule) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("BucketID") {
		toSave := tx.Statement.Dest.(MatchRule)
		return toSave.checkIntegrity(tx)
	}

	return nil
}

// checkIntegrity verifies that the rule's bucket exists.
func (r *MatchRule) checkIntegrity(tx *gorm.DB) error {
	return tx.First(&Bucket{}, r.BucketID).Error
}
