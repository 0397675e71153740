package models_test

import (
	"strings"
	"time"

	"github.com/chris-melvin/usemargin-sub000/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestIncomeTrimWhitespace() {
	name := "  Salary \t"
	note := " Paid out on the 25th  "

	income := suite.createTestIncome(models.Income{
		Name:   name,
		Note:   note,
		Amount: decimal.NewFromInt(2800),
	})

	assert.Equal(suite.T(), strings.TrimSpace(name), income.Name)
	assert.Equal(suite.T(), strings.TrimSpace(note), income.Note)
}

func (suite *TestSuiteStandard) TestIncomeExpectedDateDefaults() {
	income := suite.createTestIncome(models.Income{
		Name:   "Side gig",
		Amount: decimal.NewFromInt(300),
	})

	assert.False(suite.T(), income.ExpectedDate.IsZero())
	assert.Equal(suite.T(), time.UTC, income.ExpectedDate.Location())
}

func (suite *TestSuiteStandard) TestIncomeAmountNegative() {
	err := models.DB.Create(&models.Income{
		UserID: uuid.New(),
		Name:   "Impossible",
		Amount: decimal.NewFromInt(-100),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrAmountNegative)
}

func (suite *TestSuiteStandard) TestIncomeSetReceived() {
	income := suite.createTestIncome(models.Income{
		Name:   "Salary",
		Amount: decimal.NewFromInt(2800),
	})

	require.Nil(suite.T(), income.SetReceived(models.DB, true))
	assert.True(suite.T(), income.Received)

	// Idempotent
	require.Nil(suite.T(), income.SetReceived(models.DB, true))
	assert.True(suite.T(), income.Received)

	require.Nil(suite.T(), income.SetReceived(models.DB, false))
	assert.False(suite.T(), income.Received)
}
