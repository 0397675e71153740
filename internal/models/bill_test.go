package models_test

import (
	"strings"

	"github.com/chris-melvin/usemargin-sub000/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestBillTrimWhitespace() {
	name := "  Rent \t"
	note := " Cold rent plus utilities  "

	bill := suite.createTestBill(models.Bill{
		Name:   name,
		Note:   note,
		Amount: decimal.NewFromInt(840),
	})

	assert.Equal(suite.T(), strings.TrimSpace(name), bill.Name)
	assert.Equal(suite.T(), strings.TrimSpace(note), bill.Note)
}

func (suite *TestSuiteStandard) TestBillDueDayRange() {
	tests := []struct {
		dueDay int
		err    error
	}{
		{0, models.ErrDueDayRange},
		{1, nil},
		{31, nil},
		{32, models.ErrDueDayRange},
	}

	for _, tt := range tests {
		err := models.DB.Create(&models.Bill{
			UserID: uuid.New(),
			Name:   "Electricity",
			DueDay: tt.dueDay,
		}).Error

		if tt.err == nil {
			assert.Nil(suite.T(), err, "due day %d", tt.dueDay)
		} else {
			assert.ErrorIs(suite.T(), err, tt.err, "due day %d", tt.dueDay)
		}
	}
}

func (suite *TestSuiteStandard) TestBillSetPaidDeducts() {
	userID := uuid.New()
	bucket := suite.createTestBucket(models.Bucket{UserID: userID, TargetAmount: decimal.NewFromInt(500)})
	require.Nil(suite.T(), models.DB.Model(&bucket).Update("allocated_amount", decimal.NewFromInt(500)).Error)

	bill := suite.createTestBill(models.Bill{
		UserID:          userID,
		Name:            "Internet",
		Amount:          decimal.NewFromInt(40),
		PaymentBucketID: &bucket.ID,
	})

	require.Nil(suite.T(), bill.SetPaid(models.DB, true))
	assert.True(suite.T(), bill.Paid)

	var reloaded models.Bucket
	require.Nil(suite.T(), models.DB.First(&reloaded, bucket.ID).Error)
	assert.True(suite.T(), reloaded.AllocatedAmount.Equal(decimal.NewFromInt(460)), "allocated amount is %s", reloaded.AllocatedAmount)

	// Paying again does not deduct again
	require.Nil(suite.T(), bill.SetPaid(models.DB, true))
	require.Nil(suite.T(), models.DB.First(&reloaded, bucket.ID).Error)
	assert.True(suite.T(), reloaded.AllocatedAmount.Equal(decimal.NewFromInt(460)), "allocated amount is %s", reloaded.AllocatedAmount)

	// Resetting to unpaid does not refund
	require.Nil(suite.T(), bill.SetPaid(models.DB, false))
	require.Nil(suite.T(), models.DB.First(&reloaded, bucket.ID).Error)
	assert.True(suite.T(), reloaded.AllocatedAmount.Equal(decimal.NewFromInt(460)), "allocated amount is %s", reloaded.AllocatedAmount)
}

func (suite *TestSuiteStandard) TestBillSetPaidOrphanedBucket() {
	orphan := uuid.New()

	bill := suite.createTestBill(models.Bill{
		Name:            "Water",
		Amount:          decimal.NewFromInt(25),
		PaymentBucketID: &orphan,
	})

	// A dangling payment bucket reference is skipped, not an error
	require.Nil(suite.T(), bill.SetPaid(models.DB, true))
	assert.True(suite.T(), bill.Paid)
}

func (suite *TestSuiteStandard) TestBillSetPaidNoBucket() {
	bill := suite.createTestBill(models.Bill{
		Name:   "Gym",
		Amount: decimal.NewFromInt(30),
	})

	require.Nil(suite.T(), bill.SetPaid(models.DB, true))
	assert.True(suite.T(), bill.Paid)
}
