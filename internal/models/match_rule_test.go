package models_test

import (
	"github.com/chris-melvin/usemargin-sub000/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestMatchRulePatternEmpty() {
	bucket := suite.createTestBucket(models.Bucket{})

	err := models.DB.Create(&models.MatchRule{
		UserID:   bucket.UserID,
		Match:    "   ",
		BucketID: bucket.ID,
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrMatchRulePatternEmpty)
}

func (suite *TestSuiteStandard) TestMatchRuleBucketMustExist() {
	err := models.DB.Create(&models.MatchRule{
		UserID:   uuid.New(),
		Match:    "Aldi*",
		BucketID: uuid.New(),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestMatchRuleUpdateBucket() {
	bucket := suite.createTestBucket(models.Bucket{})

	rule := suite.createTestMatchRule(models.MatchRule{
		UserID:   bucket.UserID,
		Match:    "Aldi*",
		BucketID: bucket.ID,
	})

	err := models.DB.Model(&rule).Select("BucketID").Updates(models.MatchRule{BucketID: uuid.New()}).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}
