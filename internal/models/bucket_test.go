package models_test

import (
	"testing"

	"github.com/chris-melvin/usemargin-sub000/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestBucketAfterSave() {
	tests := []struct {
		name         string
		targetAmount decimal.Decimal
		percentage   decimal.Decimal
		err          error
	}{
		{"target amount only", decimal.NewFromFloat(100), decimal.Zero, nil},
		{"percentage only", decimal.Zero, decimal.NewFromFloat(30), nil},
		{"both set", decimal.NewFromFloat(100), decimal.NewFromFloat(30), models.ErrBucketAllocationKind},
		{"neither set", decimal.Zero, decimal.Zero, models.ErrBucketAllocationKind},
		{"negative target", decimal.NewFromFloat(-100), decimal.Zero, models.ErrAmountNegative},
		{"percentage above 100", decimal.Zero, decimal.NewFromFloat(100.5), models.ErrBucketPercentageRange},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			b := models.Bucket{
				TargetAmount: tt.targetAmount,
				Percentage:   tt.percentage,
			}

			err := b.AfterSave(&gorm.DB{})
			assert.Equal(t, tt.err, err)
		})
	}
}

func (suite *TestSuiteStandard) TestBucketUserRequired() {
	err := models.DB.Create(&models.Bucket{
		Name:       "No user",
		Percentage: decimal.NewFromInt(10),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrBucketUserRequired)
}

func (suite *TestSuiteStandard) TestBucketSlug() {
	tests := []struct {
		name string
		slug string
	}{
		{"Groceries", "groceries"},
		{"Dining out", "dining-out"},
		{"Crème brûlée fund", "creme-brulee-fund"},
		{"  Rainy day!  ", "rainy-day"},
	}

	for _, tt := range tests {
		bucket := suite.createTestBucket(models.Bucket{Name: tt.name})
		assert.Equal(suite.T(), tt.slug, bucket.Slug)
	}
}

func (suite *TestSuiteStandard) TestBucketSlugUnique() {
	userID := uuid.New()
	_ = suite.createTestBucket(models.Bucket{UserID: userID, Name: "Groceries"})

	err := models.DB.Create(&models.Bucket{
		UserID:     userID,
		Name:       "Groceries",
		Percentage: decimal.NewFromInt(10),
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrBucketSlugNotUnique)

	// The same slug is fine for another user
	_ = suite.createTestBucket(models.Bucket{Name: "Groceries"})
}

func (suite *TestSuiteStandard) TestBucketFirstIsDefault() {
	userID := uuid.New()

	first := suite.createTestBucket(models.Bucket{UserID: userID})
	second := suite.createTestBucket(models.Bucket{UserID: userID})

	assert.True(suite.T(), first.IsDefault)
	assert.False(suite.T(), second.IsDefault)
}

func (suite *TestSuiteStandard) TestBucketDeleteDefault() {
	userID := uuid.New()

	bucket := suite.createTestBucket(models.Bucket{UserID: userID})
	err := models.DB.Delete(&bucket).Error
	assert.ErrorIs(suite.T(), err, models.ErrBucketIsDefault)

	other := suite.createTestBucket(models.Bucket{UserID: userID})
	err = models.DB.Delete(&other).Error
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestSetDefaultBucket() {
	userID := uuid.New()

	first := suite.createTestBucket(models.Bucket{UserID: userID})
	second := suite.createTestBucket(models.Bucket{UserID: userID})

	err := models.SetDefaultBucket(models.DB, userID, second.ID)
	require.Nil(suite.T(), err)

	// The flag moved in one step
	defaultBucket, err := models.DefaultBucket(models.DB, userID)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), second.ID, defaultBucket.ID)

	var count int64
	err = models.DB.Model(&models.Bucket{}).Where("user_id = ? AND is_default = ?", userID, true).Count(&count).Error
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(1), count)

	// Setting the same bucket again is a no-op
	err = models.SetDefaultBucket(models.DB, userID, second.ID)
	assert.Nil(suite.T(), err)

	var reloaded models.Bucket
	require.Nil(suite.T(), models.DB.First(&reloaded, first.ID).Error)
	assert.False(suite.T(), reloaded.IsDefault)
}

func (suite *TestSuiteStandard) TestSetDefaultBucketWrongUser() {
	bucket := suite.createTestBucket(models.Bucket{})

	err := models.SetDefaultBucket(models.DB, uuid.New(), bucket.ID)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestBucketDeduct() {
	bucket := suite.createTestBucket(models.Bucket{TargetAmount: decimal.NewFromInt(100)})

	err := models.DB.Model(&bucket).Update("allocated_amount", decimal.NewFromInt(100)).Error
	require.Nil(suite.T(), err)

	err = bucket.Deduct(models.DB, decimal.NewFromInt(30))
	require.Nil(suite.T(), err)
	assert.True(suite.T(), bucket.AllocatedAmount.Equal(decimal.NewFromInt(70)), "allocated amount is %s", bucket.AllocatedAmount)

	// Over-deduction floors at zero
	err = bucket.Deduct(models.DB, decimal.NewFromInt(1000))
	require.Nil(suite.T(), err)
	assert.True(suite.T(), bucket.AllocatedAmount.IsZero(), "allocated amount is %s", bucket.AllocatedAmount)

	err = bucket.Deduct(models.DB, decimal.NewFromInt(-5))
	assert.ErrorIs(suite.T(), err, models.ErrAmountNegative)
}

func (suite *TestSuiteStandard) TestRecalculateAllocations() {
	userID := uuid.New()

	rent := suite.createTestBucket(models.Bucket{UserID: userID, Name: "Rent", TargetAmount: decimal.NewFromInt(400), SortOrder: 1})
	groceries := suite.createTestBucket(models.Bucket{UserID: userID, Name: "Groceries", Percentage: decimal.NewFromInt(30), SortOrder: 2})
	savings := suite.createTestBucket(models.Bucket{UserID: userID, Name: "Savings", Percentage: decimal.NewFromInt(30), SortOrder: 3})

	results, err := models.RecalculateAllocations(models.DB, userID, decimal.NewFromInt(1000))
	require.Nil(suite.T(), err)
	require.Len(suite.T(), results, 3)

	// Fixed bucket first, the percentage buckets normalize 30/30 to an
	// even split of the remaining 600
	var reloaded models.Bucket
	require.Nil(suite.T(), models.DB.First(&reloaded, rent.ID).Error)
	assert.True(suite.T(), reloaded.AllocatedAmount.Equal(decimal.NewFromInt(400)), "rent allocation is %s", reloaded.AllocatedAmount)

	reloaded = models.Bucket{}
	require.Nil(suite.T(), models.DB.First(&reloaded, groceries.ID).Error)
	assert.True(suite.T(), reloaded.AllocatedAmount.Equal(decimal.NewFromInt(300)), "groceries allocation is %s", reloaded.AllocatedAmount)

	reloaded = models.Bucket{}
	require.Nil(suite.T(), models.DB.First(&reloaded, savings.ID).Error)
	assert.True(suite.T(), reloaded.AllocatedAmount.Equal(decimal.NewFromInt(300)), "savings allocation is %s", reloaded.AllocatedAmount)
}

func (suite *TestSuiteStandard) TestRecalculateAllocationsNegative() {
	_, err := models.RecalculateAllocations(models.DB, uuid.New(), decimal.NewFromInt(-1))
	assert.ErrorIs(suite.T(), err, models.ErrAmountNegative)
}

func (suite *TestSuiteStandard) TestBucketSuggestions() {
	suggestions := models.BucketSuggestions()
	assert.NotEmpty(suite.T(), suggestions)

	// The suggested percentages cover the full budget
	sum := decimal.Zero
	for _, suggestion := range suggestions {
		sum = sum.Add(suggestion.Percentage)
	}
	assert.True(suite.T(), sum.Equal(decimal.NewFromInt(100)), "percentage sum is %s", sum)
}
