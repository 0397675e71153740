package models_test

import (
	"github.com/chris-melvin/usemargin-sub000/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestDebtRemainingDefaultsToTotal() {
	debt := suite.createTestDebt(models.Debt{
		Name:        "Student loan",
		TotalAmount: decimal.NewFromInt(12500),
	})

	assert.True(suite.T(), debt.RemainingAmount.Equal(decimal.NewFromInt(12500)), "remaining amount is %s", debt.RemainingAmount)
}

func (suite *TestSuiteStandard) TestDebtRemainingExplicit() {
	debt := suite.createTestDebt(models.Debt{
		Name:            "Car loan",
		TotalAmount:     decimal.NewFromInt(8000),
		RemainingAmount: decimal.NewFromInt(3000),
	})

	assert.True(suite.T(), debt.RemainingAmount.Equal(decimal.NewFromInt(3000)), "remaining amount is %s", debt.RemainingAmount)
}

func (suite *TestSuiteStandard) TestDebtRecordPayment() {
	userID := uuid.New()
	bucket := suite.createTestBucket(models.Bucket{UserID: userID, TargetAmount: decimal.NewFromInt(200)})
	require.Nil(suite.T(), models.DB.Model(&bucket).Update("allocated_amount", decimal.NewFromInt(200)).Error)

	debt := suite.createTestDebt(models.Debt{
		UserID:          userID,
		Name:            "Credit card",
		TotalAmount:     decimal.NewFromInt(500),
		MinimumPayment:  decimal.NewFromInt(50),
		PaymentBucketID: &bucket.ID,
	})

	require.Nil(suite.T(), debt.RecordPayment(models.DB, decimal.NewFromInt(150)))
	assert.True(suite.T(), debt.RemainingAmount.Equal(decimal.NewFromInt(350)), "remaining amount is %s", debt.RemainingAmount)

	var reloaded models.Bucket
	require.Nil(suite.T(), models.DB.First(&reloaded, bucket.ID).Error)
	assert.True(suite.T(), reloaded.AllocatedAmount.Equal(decimal.NewFromInt(50)), "allocated amount is %s", reloaded.AllocatedAmount)
}

func (suite *TestSuiteStandard) TestDebtRecordPaymentFloorsAtZero() {
	debt := suite.createTestDebt(models.Debt{
		Name:        "Almost done",
		TotalAmount: decimal.NewFromInt(100),
	})

	require.Nil(suite.T(), debt.RecordPayment(models.DB, decimal.NewFromInt(250)))
	assert.True(suite.T(), debt.RemainingAmount.IsZero(), "remaining amount is %s", debt.RemainingAmount)
}

func (suite *TestSuiteStandard) TestDebtRecordPaymentNegative() {
	debt := suite.createTestDebt(models.Debt{
		Name:        "No refunds",
		TotalAmount: decimal.NewFromInt(100),
	})

	err := debt.RecordPayment(models.DB, decimal.NewFromInt(-10))
	assert.ErrorIs(suite.T(), err, models.ErrAmountNegative)
}
