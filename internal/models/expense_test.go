package models_test

import (
	"github.com/chris-melvin/usemargin-sub000/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestExpenseKeepsExplicitBucket() {
	userID := uuid.New()
	groceries := suite.createTestBucket(models.Bucket{UserID: userID, Name: "Groceries"})
	dining := suite.createTestBucket(models.Bucket{UserID: userID, Name: "Dining out"})

	_ = suite.createTestMatchRule(models.MatchRule{
		UserID:   userID,
		Match:    "Aldi*",
		BucketID: dining.ID,
	})

	expense := suite.createTestExpense(models.Expense{
		UserID:   userID,
		Name:     "Aldi Nord",
		Amount:   decimal.NewFromFloat(54.32),
		BucketID: &groceries.ID,
	})

	// A caller-picked bucket wins over the match rules
	require.NotNil(suite.T(), expense.BucketID)
	assert.Equal(suite.T(), groceries.ID, *expense.BucketID)
}

func (suite *TestSuiteStandard) TestExpenseMatchRuleProposal() {
	userID := uuid.New()
	defaultBucket := suite.createTestBucket(models.Bucket{UserID: userID, Name: "Everything else"})
	groceries := suite.createTestBucket(models.Bucket{UserID: userID, Name: "Groceries"})

	_ = suite.createTestMatchRule(models.MatchRule{
		UserID:   userID,
		Priority: 1,
		Match:    "Aldi*",
		BucketID: groceries.ID,
	})

	expense := suite.createTestExpense(models.Expense{
		UserID: userID,
		Name:   "Aldi Nord",
		Amount: decimal.NewFromFloat(54.32),
	})

	require.NotNil(suite.T(), expense.BucketID)
	assert.Equal(suite.T(), groceries.ID, *expense.BucketID)

	// No rule matches, the default bucket catches the expense
	expense = suite.createTestExpense(models.Expense{
		UserID: userID,
		Name:   "Cinema",
		Amount: decimal.NewFromInt(12),
	})

	require.NotNil(suite.T(), expense.BucketID)
	assert.Equal(suite.T(), defaultBucket.ID, *expense.BucketID)
}

func (suite *TestSuiteStandard) TestExpenseMatchRulePriority() {
	userID := uuid.New()
	coffee := suite.createTestBucket(models.Bucket{UserID: userID, Name: "Coffee"})
	groceries := suite.createTestBucket(models.Bucket{UserID: userID, Name: "Groceries"})

	_ = suite.createTestMatchRule(models.MatchRule{
		UserID:   userID,
		Priority: 2,
		Match:    "*",
		BucketID: groceries.ID,
	})
	_ = suite.createTestMatchRule(models.MatchRule{
		UserID:   userID,
		Priority: 1,
		Match:    "*coffee*",
		BucketID: coffee.ID,
	})

	expense := suite.createTestExpense(models.Expense{
		UserID: userID,
		Name:   "corner coffee shop",
		Amount: decimal.NewFromFloat(4.5),
	})

	require.NotNil(suite.T(), expense.BucketID)
	assert.Equal(suite.T(), coffee.ID, *expense.BucketID)
}

func (suite *TestSuiteStandard) TestExpenseNoBucketAvailable() {
	// A user without buckets and rules gets an untagged expense
	expense := suite.createTestExpense(models.Expense{
		Name:   "Mystery",
		Amount: decimal.NewFromInt(10),
	})

	assert.Nil(suite.T(), expense.BucketID)
}
