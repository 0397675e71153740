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

type IncomeEditable struct {
	UserID       uuid.UUID       `json:"userId" example:"d3cba2d5-95a4-4af1-962e-4a2a1e17cfa0"` // The user this income belongs to
	Name         string          `json:"name" example:"Salary" default:""`                      // Name of the income source
	Note         string          `json:"note" example:"Paid out on the 25th" default:""`        // Note about the income
	Amount       decimal.Decimal `json:"amount" example:"2800" minimum:"0" default:"0"`         // Expected amount
	ExpectedDate time.Time       `json:"expectedDate" example:"2026-08-25T00:00:00Z"`           // Day the income is expected
	Received     bool            `json:"received" example:"false" default:"false"`              // Has the income been received?
}

func (editable IncomeEditable) model() models.Income {
	return models.Income{
		UserID:       editable.UserID,
		Name:         editable.Name,
		Note:         editable.Note,
		Amount:       editable.Amount,
		ExpectedDate: editable.ExpectedDate,
		Received:     editable.Received,
	}
}

type IncomeLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/incomes/2d1f22ef-34f2-4bb2-9bbb-f42d3fd40ab9"` // The income itself
}

type Income struct {
	models.DefaultModel
	IncomeEditable
	Links IncomeLinks `json:"links"`
}

func newIncome(c *gin.Context, model models.Income) Income {
	url := c.GetString(string(models.ContextURL))

	return Income{
		DefaultModel: model.DefaultModel,
		IncomeEditable: IncomeEditable{
			UserID:       model.UserID,
			Name:         model.Name,
			Note:         model.Note,
			Amount:       model.Amount,
			ExpectedDate: model.ExpectedDate,
			Received:     model.Received,
		},
		Links: IncomeLinks{
			Self: fmt.Sprintf("%s/v1/incomes/%s", url, model.ID),
		},
	}
}

type IncomeListResponse struct {
	Data       []Income    `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type IncomeCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []IncomeResponse `json:"data"`                                                          // List of created resources
}

func (t *IncomeCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, IncomeResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type IncomeResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Income `json:"data"`                                                          // The resource
}

type IncomeQueryFilter struct {
	UserID   margin_uuid.UUID `form:"user"`                       // By user ID
	Name     string           `form:"name" filterField:"false"`   // By name
	Note     string           `form:"note" filterField:"false"`   // By the note
	Search   string           `form:"search" filterField:"false"` // By string in name or note
	Received bool             `form:"received"`                   // Has the income been received?
	Month    string           `form:"month" filterField:"false"`  // Incomes expected in this month
	Offset   uint             `form:"offset" filterField:"false"` // The offset of the first income returned. Defaults to 0.
	Limit    int              `form:"limit" filterField:"false"`  // Maximum number of incomes to return. Defaults to 50.
}

func (f IncomeQueryFilter) model() models.Income {
	return models.Income{
		UserID:   f.UserID.UUID,
		Received: f.Received,
	}
}

type IncomeReceivedRequest struct {
	Received bool `json:"received" example:"true"` // The new received state
}
