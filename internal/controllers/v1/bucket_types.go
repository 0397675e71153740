package v1

import (
	"fmt"

	"github.com/chris-melvin/usemargin-sub000/internal/models"
	margin_uuid "github.com/chris-melvin/usemargin-sub000/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BucketEditable struct {
	UserID       uuid.UUID       `json:"userId" example:"d3cba2d5-95a4-4af1-962e-4a2a1e17cfa0"`                              // The user this bucket belongs to
	Name         string          `json:"name" example:"Groceries" default:""`                                                // Name of the bucket
	Slug         string          `json:"slug" example:"groceries" default:""`                                                // URL safe identifier, generated from the name when empty
	TargetAmount decimal.Decimal `json:"targetAmount" example:"250" minimum:"0" maximum:"999999999999.99999999" default:"0"` // Fixed allocation amount, mutually exclusive with percentage
	Percentage   decimal.Decimal `json:"percentage" example:"30" minimum:"0" maximum:"100" default:"0"`                      // Share of the remainder after fixed buckets, mutually exclusive with targetAmount
	Color        string          `json:"color" example:"#22c55e" default:""`                                                 // Display color
	Icon         string          `json:"icon" example:"shopping-cart" default:""`                                            // Display icon
	IsSystem     bool            `json:"isSystem" example:"false" default:"false"`                                           // Seed buckets that the UI does not allow deleting
	SortOrder    int             `json:"sortOrder" example:"1" default:"0"`                                                  // Display and allocation ordering
}

// model returns the database resource for the API representation of the editable fields
func (editable BucketEditable) model() models.Bucket {
	return models.Bucket{
		UserID:       editable.UserID,
		Name:         editable.Name,
		Slug:         editable.Slug,
		TargetAmount: editable.TargetAmount,
		Percentage:   editable.Percentage,
		Color:        editable.Color,
		Icon:         editable.Icon,
		IsSystem:     editable.IsSystem,
		SortOrder:    editable.SortOrder,
	}
}

type BucketLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/buckets/d99387f2-b494-4eb8-8404-518fbc584dc4"`            // The bucket itself
	Deduct  string `json:"deduct" example:"https://example.com/api/v1/buckets/d99387f2-b494-4eb8-8404-518fbc584dc4/deduct"`   // Deduct a payment from the bucket
	Default string `json:"default" example:"https://example.com/api/v1/buckets/d99387f2-b494-4eb8-8404-518fbc584dc4/default"` // Make this bucket the default
}

type Bucket struct {
	models.DefaultModel
	BucketEditable
	AllocatedAmount decimal.Decimal `json:"allocatedAmount" example:"120.50"` // Result of the last allocation run minus deductions
	IsDefault       bool            `json:"isDefault" example:"true"`         // Destination for unassigned expenses, exactly one per user
	Links           BucketLinks     `json:"links"`
}

// newBucket returns the API representation of the resource
func newBucket(c *gin.Context, model models.Bucket) Bucket {
	url := c.GetString(string(models.ContextURL))

	return Bucket{
		DefaultModel: model.DefaultModel,
		BucketEditable: BucketEditable{
			UserID:       model.UserID,
			Name:         model.Name,
			Slug:         model.Slug,
			TargetAmount: model.TargetAmount,
			Percentage:   model.Percentage,
			Color:        model.Color,
			Icon:         model.Icon,
			IsSystem:     model.IsSystem,
			SortOrder:    model.SortOrder,
		},
		AllocatedAmount: model.AllocatedAmount,
		IsDefault:       model.IsDefault,
		Links: BucketLinks{
			Self:    fmt.Sprintf("%s/v1/buckets/%s", url, model.ID),
			Deduct:  fmt.Sprintf("%s/v1/buckets/%s/deduct", url, model.ID),
			Default: fmt.Sprintf("%s/v1/buckets/%s/default", url, model.ID),
		},
	}
}

type BucketListResponse struct {
	Data       []Bucket    `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BucketCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BucketResponse `json:"data"`                                                          // List of created resources
}

func (t *BucketCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, BucketResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BucketResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Bucket `json:"data"`                                                          // The resource
}

type BucketQueryFilter struct {
	UserID    margin_uuid.UUID `form:"user"`                       // By user ID
	Name      string           `form:"name" filterField:"false"`   // By name
	Slug      string           `form:"slug"`                       // By slug
	Search    string           `form:"search" filterField:"false"` // By string in name or note
	IsDefault bool             `form:"default"`                    // Is the bucket the default bucket?
	IsSystem  bool             `form:"system"`                     // Is the bucket a system bucket?
	Offset    uint             `form:"offset" filterField:"false"` // The offset of the first bucket returned. Defaults to 0.
	Limit     int              `form:"limit" filterField:"false"`  // Maximum number of buckets to return. Defaults to 50.
}

func (f BucketQueryFilter) model() models.Bucket {
	return models.Bucket{
		UserID:    f.UserID.UUID,
		Slug:      f.Slug,
		IsDefault: f.IsDefault,
		IsSystem:  f.IsSystem,
	}
}

type BucketAllocateRequest struct {
	UserID          uuid.UUID       `json:"userId" example:"d3cba2d5-95a4-4af1-962e-4a2a1e17cfa0"` // The user whose buckets are allocated
	RemainingBudget decimal.Decimal `json:"remainingBudget" example:"1500" minimum:"0"`            // Income minus committed fixed obligations
}

type BucketAllocation struct {
	BucketID        uuid.UUID       `json:"bucketId" example:"d99387f2-b494-4eb8-8404-518fbc584dc4"` // The bucket the amount belongs to
	AllocatedAmount decimal.Decimal `json:"allocatedAmount" example:"450"`                           // The amount allocated to the bucket
	Share           decimal.Decimal `json:"share" example:"0.3"`                                     // Fraction of the remaining budget, for rendering allocation bars
}

type BucketAllocationResponse struct {
	Error *string            `json:"error" example:"amounts must not be negative"` // The error, if any occurred
	Data  []BucketAllocation `json:"data"`                                         // The computed allocations
}

type BucketDeductRequest struct {
	Amount decimal.Decimal `json:"amount" example:"12.30" minimum:"0"` // The payment to deduct from the bucket's balance
}

type BucketSuggestionsResponse struct {
	Data []models.BucketSuggestion `json:"data"` // The bucket templates
}
