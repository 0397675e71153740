package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/chris-melvin/usemargin-sub000/internal/controllers/v1"
	"github.com/chris-melvin/usemargin-sub000/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestBill(t *testing.T, b v1.BillEditable, expectedStatus ...int) v1.BillResponse {
	if b.UserID == uuid.Nil {
		b.UserID = uuid.New()
	}

	if b.Name == "" {
		b.Name = uuid.NewString()
	}

	if b.DueDay == 0 {
		b.DueDay = 1
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.BillEditable{b}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/bills", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.BillCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.BillResponse{}
}

func (suite *TestSuiteStandard) TestBillsCreateInvalidDueDay() {
	createTestBill(suite.T(), v1.BillEditable{DueDay: 42}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBillsSetPaidDeductsFromBucket() {
	userID := uuid.New()

	bucket := createTestBucket(suite.T(), v1.BucketEditable{UserID: userID, TargetAmount: decimal.NewFromInt(500)})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/buckets/allocate", v1.BucketAllocateRequest{
		UserID:          userID,
		RemainingBudget: decimal.NewFromInt(500),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	bill := createTestBill(suite.T(), v1.BillEditable{
		UserID:          userID,
		Name:            "Internet",
		Amount:          decimal.NewFromInt(40),
		PaymentBucketID: &bucket.Data.ID,
	})

	r = test.Request(suite.T(), http.MethodPost, bill.Data.Links.Paid, v1.BillPaidRequest{Paid: true})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var billResponse v1.BillResponse
	test.DecodeResponse(suite.T(), &r, &billResponse)
	assert.True(suite.T(), billResponse.Data.Paid)

	r = test.Request(suite.T(), http.MethodGet, bucket.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var bucketResponse v1.BucketResponse
	test.DecodeResponse(suite.T(), &r, &bucketResponse)
	require.NotNil(suite.T(), bucketResponse.Data)
	assert.True(suite.T(), bucketResponse.Data.AllocatedAmount.Equal(decimal.NewFromInt(460)), "allocated amount is %s", bucketResponse.Data.AllocatedAmount)
}

func (suite *TestSuiteStandard) TestBillsGetFiltered() {
	userID := uuid.New()

	_ = createTestBill(suite.T(), v1.BillEditable{UserID: userID, Name: "Rent", DueDay: 1})
	_ = createTestBill(suite.T(), v1.BillEditable{UserID: userID, Name: "Electricity", DueDay: 15})
	_ = createTestBill(suite.T(), v1.BillEditable{Name: "Someone else's rent", DueDay: 1})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"By user", "user=" + userID.String(), 2},
		{"By due day", "dueDay=15", 1},
		{"Search", "search=Electr", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/bills?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.BillListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}
