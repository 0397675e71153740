package models_test

import (
	"github.com/chris-melvin/usemargin-sub000/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestSubscriptionBillingDayRange() {
	err := models.DB.Create(&models.Subscription{
		UserID:     uuid.New(),
		Name:       "Video streaming",
		Amount:     decimal.NewFromFloat(12.99),
		BillingDay: 42,
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrDueDayRange)
}

func (suite *TestSuiteStandard) TestSubscriptionSetActive() {
	subscription := suite.createTestSubscription(models.Subscription{
		Name:   "Music streaming",
		Amount: decimal.NewFromFloat(9.99),
		Active: true,
	})

	require.Nil(suite.T(), subscription.SetActive(models.DB, false))
	assert.False(suite.T(), subscription.Active)

	// Idempotent
	require.Nil(suite.T(), subscription.SetActive(models.DB, false))
	assert.False(suite.T(), subscription.Active)

	require.Nil(suite.T(), subscription.SetActive(models.DB, true))
	assert.True(suite.T(), subscription.Active)
}
