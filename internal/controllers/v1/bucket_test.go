package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/chris-melvin/usemargin-sub000/internal/controllers/v1"
	"github.com/chris-melvin/usemargin-sub000/internal/models"
	"github.com/chris-melvin/usemargin-sub000/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestBucket(t *testing.T, b v1.BucketEditable, expectedStatus ...int) v1.BucketResponse {
	if b.UserID == uuid.Nil {
		b.UserID = uuid.New()
	}

	if b.Name == "" {
		b.Name = uuid.NewString()
	}

	if !b.TargetAmount.IsPositive() && !b.Percentage.IsPositive() {
		b.Percentage = decimal.NewFromInt(10)
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.BucketEditable{b}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/buckets", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.BucketCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.BucketResponse{}
}

// TestBucketsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestBucketsDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestBucket(t, v1.BucketEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/buckets", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.BucketListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestBucketsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestBucketsOptions() {
	tests := []struct {
		name   string
		id     string // path at the buckets endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No bucket with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Bucket exists", createTestBucket(suite.T(), v1.BucketEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/buckets", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestBucketsCreateInvalid() {
	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Broken JSON", `{ "name": "Groceries`, http.StatusBadRequest},
		{"No body", "", http.StatusBadRequest},
		{"Both target and percentage", []v1.BucketEditable{{
			UserID:       uuid.New(),
			Name:         "Conflicted",
			TargetAmount: decimal.NewFromInt(100),
			Percentage:   decimal.NewFromInt(30),
		}}, http.StatusBadRequest},
		{"No user", []v1.BucketEditable{{
			Name:       "Ownerless",
			Percentage: decimal.NewFromInt(30),
		}}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/buckets", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestBucketsGetSingle() {
	b := createTestBucket(suite.T(), v1.BucketEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET existing bucket", b.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET invalid ID", "NotParseableAsUUID", http.StatusBadRequest, http.MethodGet},
		{"DELETE invalid ID", "NotParseableAsUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/buckets/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestBucketsGetFiltered() {
	userID := uuid.New()

	_ = createTestBucket(suite.T(), v1.BucketEditable{UserID: userID, Name: "Groceries"})
	_ = createTestBucket(suite.T(), v1.BucketEditable{UserID: userID, Name: "Dining out"})
	_ = createTestBucket(suite.T(), v1.BucketEditable{Name: "Someone else's bucket"})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"By user", "user=" + userID.String(), 2},
		{"By name", "name=Groceries", 1},
		{"Search", "search=out", 1},
		{"By slug", "slug=dining-out", 1},
		{"No match", "name=DoesNotExist", 0},
		{"Limit", "limit=1", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/buckets?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.BucketListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestBucketsUpdate() {
	b := createTestBucket(suite.T(), v1.BucketEditable{Name: "Before"})

	r := test.Request(suite.T(), http.MethodPatch, b.Data.Links.Self, map[string]any{
		"name": "After",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BucketResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "After", response.Data.Name)
}

func (suite *TestSuiteStandard) TestBucketsDelete() {
	userID := uuid.New()

	first := createTestBucket(suite.T(), v1.BucketEditable{UserID: userID})
	second := createTestBucket(suite.T(), v1.BucketEditable{UserID: userID})

	// The default bucket cannot be deleted
	r := test.Request(suite.T(), http.MethodDelete, first.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodDelete, second.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestBucketsSuggestions() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/buckets/suggestions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BucketSuggestionsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.NotEmpty(suite.T(), response.Data)
}

func (suite *TestSuiteStandard) TestBucketsAllocate() {
	userID := uuid.New()

	rent := createTestBucket(suite.T(), v1.BucketEditable{UserID: userID, Name: "Rent", TargetAmount: decimal.NewFromInt(400), SortOrder: 1})
	groceries := createTestBucket(suite.T(), v1.BucketEditable{UserID: userID, Name: "Groceries", Percentage: decimal.NewFromInt(30), SortOrder: 2})
	savings := createTestBucket(suite.T(), v1.BucketEditable{UserID: userID, Name: "Savings", Percentage: decimal.NewFromInt(30), SortOrder: 3})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/buckets/allocate", v1.BucketAllocateRequest{
		UserID:          userID,
		RemainingBudget: decimal.NewFromInt(1000),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BucketAllocationResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 3)

	amounts := make(map[uuid.UUID]decimal.Decimal, len(response.Data))
	for _, allocation := range response.Data {
		amounts[allocation.BucketID] = allocation.AllocatedAmount
	}

	assert.True(suite.T(), amounts[rent.Data.ID].Equal(decimal.NewFromInt(400)), "rent allocation is %s", amounts[rent.Data.ID])
	assert.True(suite.T(), amounts[groceries.Data.ID].Equal(decimal.NewFromInt(300)), "groceries allocation is %s", amounts[groceries.Data.ID])
	assert.True(suite.T(), amounts[savings.Data.ID].Equal(decimal.NewFromInt(300)), "savings allocation is %s", amounts[savings.Data.ID])
}

func (suite *TestSuiteStandard) TestBucketsAllocateInvalid() {
	tests := []struct {
		name string
		body any
	}{
		{"No user ID", v1.BucketAllocateRequest{RemainingBudget: decimal.NewFromInt(1000)}},
		{"Negative budget", v1.BucketAllocateRequest{UserID: uuid.New(), RemainingBudget: decimal.NewFromInt(-10)}},
		{"Broken JSON", `{ "userId": `},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/buckets/allocate", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestBucketsDeduct() {
	b := createTestBucket(suite.T(), v1.BucketEditable{TargetAmount: decimal.NewFromInt(100)})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/buckets/allocate", v1.BucketAllocateRequest{
		UserID:          b.Data.UserID,
		RemainingBudget: decimal.NewFromInt(100),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodPost, b.Data.Links.Deduct, v1.BucketDeductRequest{Amount: decimal.NewFromInt(30)})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BucketResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.AllocatedAmount.Equal(decimal.NewFromInt(70)), "allocated amount is %s", response.Data.AllocatedAmount)

	// Over-deduction floors at zero
	r = test.Request(suite.T(), http.MethodPost, b.Data.Links.Deduct, v1.BucketDeductRequest{Amount: decimal.NewFromInt(1000)})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.AllocatedAmount.IsZero(), "allocated amount is %s", response.Data.AllocatedAmount)
}

func (suite *TestSuiteStandard) TestBucketsSetDefault() {
	userID := uuid.New()

	first := createTestBucket(suite.T(), v1.BucketEditable{UserID: userID})
	second := createTestBucket(suite.T(), v1.BucketEditable{UserID: userID})

	assert.True(suite.T(), first.Data.IsDefault)
	assert.False(suite.T(), second.Data.IsDefault)

	r := test.Request(suite.T(), http.MethodPost, second.Data.Links.Default, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BucketResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.IsDefault)

	// The previous default lost the flag
	r = test.Request(suite.T(), http.MethodGet, first.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &response)
	assert.False(suite.T(), response.Data.IsDefault)
}
