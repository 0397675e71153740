package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/chris-melvin/usemargin-sub000/internal/controllers/v1"
	"github.com/chris-melvin/usemargin-sub000/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func createTestIncome(t *testing.T, i v1.IncomeEditable, expectedStatus ...int) v1.IncomeResponse {
	if i.UserID == uuid.Nil {
		i.UserID = uuid.New()
	}

	if i.Name == "" {
		i.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.IncomeEditable{i}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/incomes", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.IncomeCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.IncomeResponse{}
}

func (suite *TestSuiteStandard) TestIncomesCRUD() {
	income := createTestIncome(suite.T(), v1.IncomeEditable{Name: "Salary", Amount: decimal.NewFromInt(2800)})

	r := test.Request(suite.T(), http.MethodGet, income.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodPatch, income.Data.Links.Self, map[string]any{"note": "Paid out on the 25th"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.IncomeResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Paid out on the 25th", response.Data.Note)

	r = test.Request(suite.T(), http.MethodDelete, income.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestIncomesSetReceived() {
	income := createTestIncome(suite.T(), v1.IncomeEditable{Name: "Salary", Amount: decimal.NewFromInt(2800)})

	r := test.Request(suite.T(), http.MethodPost, income.Data.Links.Self+"/received", v1.IncomeReceivedRequest{Received: true})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.IncomeResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.Received)
}

func (suite *TestSuiteStandard) TestIncomesGetFiltered() {
	userID := uuid.New()

	_ = createTestIncome(suite.T(), v1.IncomeEditable{UserID: userID, Name: "Salary", Amount: decimal.NewFromInt(2800)})
	_ = createTestIncome(suite.T(), v1.IncomeEditable{UserID: userID, Name: "Side gig", Amount: decimal.NewFromInt(300), Received: true})
	_ = createTestIncome(suite.T(), v1.IncomeEditable{Name: "Someone else's salary", Amount: decimal.NewFromInt(1000)})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"By user", "user=" + userID.String(), 2},
		{"By name", "name=Side", 1},
		{"Received", "received=true&user=" + userID.String(), 1},
		{"No match", "name=DoesNotExist", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/incomes?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.IncomeListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestIncomesInvalidMonth() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/incomes?month=NotAMonth", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
