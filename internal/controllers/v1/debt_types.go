package v1

import (
	"fmt"

	"github.com/chris-melvin/usemargin-sub000/internal/models"
	margin_uuid "github.com/chris-melvin/usemargin-sub000/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DebtEditable struct {
	UserID          uuid.UUID       `json:"userId" example:"d3cba2d5-95a4-4af1-962e-4a2a1e17cfa0"`          // The user this debt belongs to
	Name            string          `json:"name" example:"Student loan" default:""`                         // Name of the debt
	Note            string          `json:"note" example:"0% interest until 2027" default:""`               // Note about the debt
	TotalAmount     decimal.Decimal `json:"totalAmount" example:"12500" minimum:"0" default:"0"`            // The full amount owed
	RemainingAmount decimal.Decimal `json:"remainingAmount" example:"9300" minimum:"0" default:"0"`         // The amount still outstanding. Defaults to the total amount for new debts.
	MinimumPayment  decimal.Decimal `json:"minimumPayment" example:"150" minimum:"0" default:"0"`           // Minimum payment per month
	PaymentBucketID *uuid.UUID      `json:"paymentBucketId" example:"a4a594ff-d4ae-4d4b-9725-1dbf2d8a5db6"` // The bucket payments are taken from
}

func (editable DebtEditable) model() models.Debt {
	return models.Debt{
		UserID:          editable.UserID,
		Name:            editable.Name,
		Note:            editable.Note,
		TotalAmount:     editable.TotalAmount,
		RemainingAmount: editable.RemainingAmount,
		MinimumPayment:  editable.MinimumPayment,
		PaymentBucketID: editable.PaymentBucketID,
	}
}

type DebtLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/debts/fc51dfdb-454a-4604-b8a7-7188a8e1057b"`              // The debt itself
	Payments string `json:"payments" example:"https://example.com/api/v1/debts/fc51dfdb-454a-4604-b8a7-7188a8e1057b/payments"` // Records a payment
}

type Debt struct {
	models.DefaultModel
	DebtEditable
	Links DebtLinks `json:"links"`
}

func newDebt(c *gin.Context, model models.Debt) Debt {
	url := c.GetString(string(models.ContextURL))

	return Debt{
		DefaultModel: model.DefaultModel,
		DebtEditable: DebtEditable{
			UserID:          model.UserID,
			Name:            model.Name,
			Note:            model.Note,
			TotalAmount:     model.TotalAmount,
			RemainingAmount: model.RemainingAmount,
			MinimumPayment:  model.MinimumPayment,
			PaymentBucketID: model.PaymentBucketID,
		},
		Links: DebtLinks{
			Self:     fmt.Sprintf("%s/v1/debts/%s", url, model.ID),
			Payments: fmt.Sprintf("%s/v1/debts/%s/payments", url, model.ID),
		},
	}
}

type DebtListResponse struct {
	Data       []Debt      `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type DebtCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []DebtResponse `json:"data"`                                                          // List of created resources
}

func (t *DebtCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, DebtResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type DebtResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Debt   `json:"data"`                                                          // The resource
}

type DebtQueryFilter struct {
	UserID margin_uuid.UUID `form:"user"`                       // By user ID
	Name   string           `form:"name" filterField:"false"`   // By name
	Note   string           `form:"note" filterField:"false"`   // By the note
	Search string           `form:"search" filterField:"false"` // By string in name or note
	Offset uint             `form:"offset" filterField:"false"` // The offset of the first debt returned. Defaults to 0.
	Limit  int              `form:"limit" filterField:"false"`  // Maximum number of debts to return. Defaults to 50.
}

func (f DebtQueryFilter) model() models.Debt {
	return models.Debt{
		UserID: f.UserID.UUID,
	}
}

type DebtPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" example:"150" minimum:"0"` // The payment amount
}
