package v1

import (
	"fmt"

	"github.com/chris-melvin/usemargin-sub000/internal/models"
	margin_uuid "github.com/chris-melvin/usemargin-sub000/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BillEditable struct {
	UserID          uuid.UUID       `json:"userId" example:"d3cba2d5-95a4-4af1-962e-4a2a1e17cfa0"`          // The user this bill belongs to
	Name            string          `json:"name" example:"Rent" default:""`                                 // Name of the bill
	Note            string          `json:"note" example:"Cold rent plus utilities" default:""`             // Note about the bill
	Amount          decimal.Decimal `json:"amount" example:"840" minimum:"0" default:"0"`                   // Amount due every month
	DueDay          int             `json:"dueDay" example:"1" minimum:"1" maximum:"31"`                    // Day of the month the bill is due
	Paid            bool            `json:"paid" example:"false" default:"false"`                           // Has the bill been paid this cycle?
	PaymentBucketID *uuid.UUID      `json:"paymentBucketId" example:"a4a594ff-d4ae-4d4b-9725-1dbf2d8a5db6"` // The bucket the bill is paid from
}

func (editable BillEditable) model() models.Bill {
	return models.Bill{
		UserID:          editable.UserID,
		Name:            editable.Name,
		Note:            editable.Note,
		Amount:          editable.Amount,
		DueDay:          editable.DueDay,
		Paid:            editable.Paid,
		PaymentBucketID: editable.PaymentBucketID,
	}
}

type BillLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/bills/b7301bae-e441-4a54-a694-c28cc3e9abd3"`      // The bill itself
	Paid string `json:"paid" example:"https://example.com/api/v1/bills/b7301bae-e441-4a54-a694-c28cc3e9abd3/paid"` // Sets the paid state
}

type Bill struct {
	models.DefaultModel
	BillEditable
	Links BillLinks `json:"links"`
}

func newBill(c *gin.Context, model models.Bill) Bill {
	url := c.GetString(string(models.ContextURL))

	return Bill{
		DefaultModel: model.DefaultModel,
		BillEditable: BillEditable{
			UserID:          model.UserID,
			Name:            model.Name,
			Note:            model.Note,
			Amount:          model.Amount,
			DueDay:          model.DueDay,
			Paid:            model.Paid,
			PaymentBucketID: model.PaymentBucketID,
		},
		Links: BillLinks{
			Self: fmt.Sprintf("%s/v1/bills/%s", url, model.ID),
			Paid: fmt.Sprintf("%s/v1/bills/%s/paid", url, model.ID),
		},
	}
}

type BillListResponse struct {
	Data       []Bill      `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BillCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BillResponse `json:"data"`                                                          // List of created resources
}

func (t *BillCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, BillResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BillResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Bill   `json:"data"`                                                          // The resource
}

type BillQueryFilter struct {
	UserID margin_uuid.UUID `form:"user"`                       // By user ID
	Name   string           `form:"name" filterField:"false"`   // By name
	Note   string           `form:"note" filterField:"false"`   // By the note
	Search string           `form:"search" filterField:"false"` // By string in name or note
	Paid   bool             `form:"paid"`                       // Has the bill been paid?
	DueDay int              `form:"dueDay"`                     // By day of the month the bill is due
	Offset uint             `form:"offset" filterField:"false"` // The offset of the first bill returned. Defaults to 0.
	Limit  int              `form:"limit" filterField:"false"`  // Maximum number of bills to return. Defaults to 50.
}

func (f BillQueryFilter) model() models.Bill {
	return models.Bill{
		UserID: f.UserID.UUID,
		Paid:   f.Paid,
		DueDay: f.DueDay,
	}
}

type BillPaidRequest struct {
	Paid bool `json:"paid" example:"true"` // The new paid state
}
