package v1

import (
	"fmt"

	"github.com/chris-melvin/usemargin-sub000/internal/models"
	margin_uuid "github.com/chris-melvin/usemargin-sub000/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MatchRuleEditable struct {
	UserID   uuid.UUID `json:"userId" example:"d3cba2d5-95a4-4af1-962e-4a2a1e17cfa0"`   // The user this match rule belongs to
	Priority uint      `json:"priority" example:"1" default:"0"`                        // The priority of the match rule. Lower number means higher priority.
	Match    string    `json:"match" example:"Aldi*"`                                   // The glob pattern matched against expense names
	BucketID uuid.UUID `json:"bucketId" example:"a4a594ff-d4ae-4d4b-9725-1dbf2d8a5db6"` // The bucket proposed for matching expenses
}

func (editable MatchRuleEditable) model() models.MatchRule {
	return models.MatchRule{
		UserID:   editable.UserID,
		Priority: editable.Priority,
		Match:    editable.Match,
		BucketID: editable.BucketID,
	}
}

type MatchRuleLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/match-rules/95685c82-53c6-455d-b235-f49960b73b21"` // The match rule itself
}

type MatchRule struct {
	models.DefaultModel
	MatchRuleEditable
	Links MatchRuleLinks `json:"links"`
}

func newMatchRule(c *gin.Context, model models.MatchRule) MatchRule {
	url := c.GetString(string(models.ContextURL))

	return MatchRule{
		DefaultModel: model.DefaultModel,
		MatchRuleEditable: MatchRuleEditable{
			UserID:   model.UserID,
			Priority: model.Priority,
			Match:    model.Match,
			BucketID: model.BucketID,
		},
		Links: MatchRuleLinks{
			Self: fmt.Sprintf("%s/v1/match-rules/%s", url, model.ID),
		},
	}
}

type MatchRuleListResponse struct {
	Data       []MatchRule `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type MatchRuleCreateResponse struct {
	Error *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []MatchRuleResponse `json:"data"`                                                          // List of created resources
}

func (t *MatchRuleCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, MatchRuleResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type MatchRuleResponse struct {
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *MatchRule `json:"data"`                                                          // The resource
}

type MatchRuleQueryFilter struct {
	UserID   margin_uuid.UUID `form:"user"`                       // By user ID
	Priority uint             `form:"priority"`                   // By priority
	Match    string           `form:"match" filterField:"false"`  // By match pattern
	BucketID margin_uuid.UUID `form:"bucket"`                     // By the bucket the rule proposes
	Offset   uint             `form:"offset" filterField:"false"` // The offset of the first match rule returned. Defaults to 0.
	Limit    int              `form:"limit" filterField:"false"`  // Maximum number of match rules to return. Defaults to 50.
}

func (f MatchRuleQueryFilter) model() models.MatchRule {
	return models.MatchRule{
		UserID:   f.UserID.UUID,
		Priority: f.Priority,
		BucketID: f.BucketID.UUID,
	}
}
