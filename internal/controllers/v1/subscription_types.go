package v1

import (
	"fmt"

	"github.com/chris-melvin/usemargin-sub000/internal/models"
	margin_uuid "github.com/chris-melvin/usemargin-sub000/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SubscriptionEditable struct {
	UserID     uuid.UUID       `json:"userId" example:"d3cba2d5-95a4-4af1-962e-4a2a1e17cfa0"` // The user this subscription belongs to
	Name       string          `json:"name" example:"Video streaming" default:""`             // Name of the subscription
	Note       string          `json:"note" example:"Family plan" default:""`                 // Note about the subscription
	Amount     decimal.Decimal `json:"amount" example:"12.99" minimum:"0" default:"0"`        // Amount charged per billing cycle
	BillingDay int             `json:"billingDay" example:"15" minimum:"1" maximum:"31"`      // Day of the month the subscription is billed
	Active     bool            `json:"active" example:"true" default:"false"`                 // Is the subscription active?
}

func (editable SubscriptionEditable) model() models.Subscription {
	return models.Subscription{
		UserID:     editable.UserID,
		Name:       editable.Name,
		Note:       editable.Note,
		Amount:     editable.Amount,
		BillingDay: editable.BillingDay,
		Active:     editable.Active,
	}
}

type SubscriptionLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/subscriptions/c9b1c652-4c02-43c9-99a6-d9478ca09f00"`          // The subscription itself
	Active string `json:"active" example:"https://example.com/api/v1/subscriptions/c9b1c652-4c02-43c9-99a6-d9478ca09f00/active"` // Pauses or resumes the subscription
}

type Subscription struct {
	models.DefaultModel
	SubscriptionEditable
	Links SubscriptionLinks `json:"links"`
}

func newSubscription(c *gin.Context, model models.Subscription) Subscription {
	url := c.GetString(string(models.ContextURL))

	return Subscription{
		DefaultModel: model.DefaultModel,
		SubscriptionEditable: SubscriptionEditable{
			UserID:     model.UserID,
			Name:       model.Name,
			Note:       model.Note,
			Amount:     model.Amount,
			BillingDay: model.BillingDay,
			Active:     model.Active,
		},
		Links: SubscriptionLinks{
			Self:   fmt.Sprintf("%s/v1/subscriptions/%s", url, model.ID),
			Active: fmt.Sprintf("%s/v1/subscriptions/%s/active", url, model.ID),
		},
	}
}

type SubscriptionListResponse struct {
	Data       []Subscription `json:"data"`                                                          // List of resources
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}

type SubscriptionCreateResponse struct {
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []SubscriptionResponse `json:"data"`                                                          // List of created resources
}

func (t *SubscriptionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, SubscriptionResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type SubscriptionResponse struct {
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Subscription `json:"data"`                                                          // The resource
}

type SubscriptionQueryFilter struct {
	UserID margin_uuid.UUID `form:"user"`                       // By user ID
	Name   string           `form:"name" filterField:"false"`   // By name
	Note   string           `form:"note" filterField:"false"`   // By the note
	Search string           `form:"search" filterField:"false"` // By string in name or note
	Active bool             `form:"active"`                     // Is the subscription active?
	Offset uint             `form:"offset" filterField:"false"` // The offset of the first subscription returned. Defaults to 0.
	Limit  int              `form:"limit" filterField:"false"`  // Maximum number of subscriptions to return. Defaults to 50.
}

func (f SubscriptionQueryFilter) model() models.Subscription {
	return models.Subscription{
		UserID: f.UserID.UUID,
		Active: f.Active,
	}
}

type SubscriptionActiveRequest struct {
	Active bool `json:"active" example:"false"` // The new active state
}
