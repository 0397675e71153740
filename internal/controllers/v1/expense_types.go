package v1

import (
	"fmt"
	"time"

	"github.com/chris-melvin/usemargin-sub000/internal/models"
	margin_uuid "github.com/chris-melvin/usemargin-sub000/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ExpenseEditable struct {
	UserID   uuid.UUID       `json:"userId" example:"d3cba2d5-95a4-4af1-962e-4a2a1e17cfa0"`   // The user this expense belongs to
	Name     string          `json:"name" example:"Supermarket" default:""`                   // Name of the expense
	Note     string          `json:"note" example:"Weekly groceries" default:""`              // Note about the expense
	Amount   decimal.Decimal `json:"amount" example:"54.32" minimum:"0" default:"0"`          // Amount spent
	Date     time.Time       `json:"date" example:"2026-08-12T00:00:00Z"`                     // Day the expense was made. Defaults to the current day.
	BucketID *uuid.UUID      `json:"bucketId" example:"a4a594ff-d4ae-4d4b-9725-1dbf2d8a5db6"` // The bucket the expense draws from. When empty, the match rules propose one.
}

func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		UserID:   editable.UserID,
		Name:     editable.Name,
		Note:     editable.Note,
		Amount:   editable.Amount,
		Date:     editable.Date,
		BucketID: editable.BucketID,
	}
}

type ExpenseLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/expenses/e6fa8eb4-78f9-4cc9-9bbe-a80be0e9d5dd"` // The expense itself
}

type Expense struct {
	models.DefaultModel
	ExpenseEditable
	Links ExpenseLinks `json:"links"`
}

func newExpense(c *gin.Context, model models.Expense) Expense {
	url := c.GetString(string(models.ContextURL))

	return Expense{
		DefaultModel: model.DefaultModel,
		ExpenseEditable: ExpenseEditable{
			UserID:   model.UserID,
			Name:     model.Name,
			Note:     model.Note,
			Amount:   model.Amount,
			Date:     model.Date,
			BucketID: model.BucketID,
		},
		Links: ExpenseLinks{
			Self: fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
		},
	}
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ExpenseCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ExpenseResponse `json:"data"`                                                          // List of created resources
}

func (t *ExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, ExpenseResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ExpenseResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Expense `json:"data"`                                                          // The resource
}

type ExpenseQueryFilter struct {
	UserID   margin_uuid.UUID `form:"user"`                       // By user ID
	Name     string           `form:"name" filterField:"false"`   // By name
	Note     string           `form:"note" filterField:"false"`   // By the note
	Search   string           `form:"search" filterField:"false"` // By string in name or note
	BucketID margin_uuid.UUID `form:"bucket"`                     // By the bucket the expense draws from
	Month    string           `form:"month" filterField:"false"`  // Expenses made in this month
	Offset   uint             `form:"offset" filterField:"false"` // The offset of the first expense returned. Defaults to 0.
	Limit    int              `form:"limit" filterField:"false"`  // Maximum number of expenses to return. Defaults to 50.
}

func (f ExpenseQueryFilter) model() models.Expense {
	var bucketID *uuid.UUID
	if f.BucketID.UUID != uuid.Nil {
		bucketID = &f.BucketID.UUID
	}

	return models.Expense{
		UserID:   f.UserID.UUID,
		BucketID: bucketID,
	}
}
