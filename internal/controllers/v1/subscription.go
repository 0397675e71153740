package v1

import (
	"net/http"

	"github.com/chris-melvin/usemargin-sub000/internal/httputil"
	"github.com/chris-melvin/usemargin-sub000/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterSubscriptionRoutes registers the routes for subscriptions with
// the RouterGroup that is passed.
func RegisterSubscriptionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSubscriptionList)
		r.GET("", GetSubscriptions)
		r.POST("", CreateSubscriptions)
	}

	// Subscription with ID
	{
		r.OPTIONS("/:id", OptionsSubscriptionDetail)
		r.GET("/:id", GetSubscription)
		r.PATCH("/:id", UpdateSubscription)
		r.DELETE("/:id", DeleteSubscription)
		r.OPTIONS("/:id/active", OptionsSubscriptionActive)
		r.POST("/:id/active", SetSubscriptionActive)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Subscriptions
// @Success		204
// @Router			/v1/subscriptions [options]
func OptionsSubscriptionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Subscriptions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/subscriptions/{id} [options]
func OptionsSubscriptionDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Subscription{})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Subscriptions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/subscriptions/{id}/active [options]
func OptionsSubscriptionActive(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.First(&models.Subscription{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Create subscriptions
// @Description	Creates new subscriptions
// @Tags			Subscriptions
// @Produce		json
// @Success		201				{object}	SubscriptionCreateResponse
// @Failure		400				{object}	SubscriptionCreateResponse
// @Failure		500				{object}	SubscriptionCreateResponse
// @Param			subscriptions	body		[]SubscriptionEditable	true	"Subscriptions"
// @Router			/v1/subscriptions [post]
func CreateSubscriptions(c *gin.Context) {
	var subscriptions []SubscriptionEditable

	err := httputil.BindData(c, &subscriptions)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionCreateResponse{
			Error: &e,
		})
		return
	}

	status := http.StatusCreated
	r := SubscriptionCreateResponse{}

	for _, create := range subscriptions {
		subscription := create.model()
		err = models.DB.Create(&subscription).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newSubscription(c, subscription)
		r.Data = append(r.Data, SubscriptionResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get subscriptions
// @Description	Returns a list of subscriptions
// @Tags			Subscriptions
// @Produce		json
// @Success		200	{object}	SubscriptionListResponse
// @Failure		400	{object}	SubscriptionListResponse
// @Failure		500	{object}	SubscriptionListResponse
// @Router			/v1/subscriptions [get]
// @Param			user	query	string	false	"Filter by user ID"
// @Param			name	query	string	false	"Filter by name"
// @Param			note	query	string	false	"Filter by note"
// @Param			search	query	string	false	"Search for this text in name and note"
// @Param			active	query	bool	false	"Is the subscription active?"
// @Param			offset	query	uint	false	"The offset of the first subscription returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of subscriptions to return. Defaults to 50."
func GetSubscriptions(c *gin.Context) {
	var filter SubscriptionQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SubscriptionListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)
	where := filter.model()

	q := models.DB.
		Order("billing_day ASC, name ASC").
		Where(&where, queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	q = q.Offset(int(filter.Offset))

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var subscriptions []models.Subscription
	err := q.Find(&subscriptions).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubscriptionListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Subscription, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		data = append(data, newSubscription(c, subscription))
	}

	c.JSON(http.StatusOK, SubscriptionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get subscription
// @Description	Returns a specific subscription
// @Tags			Subscriptions
// @Produce		json
// @Success		200	{object}	SubscriptionResponse
// @Failure		400	{object}	SubscriptionResponse
// @Failure		404	{object}	SubscriptionResponse
// @Failure		500	{object}	SubscriptionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/subscriptions/{id} [get]
func GetSubscription(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionResponse{
			Error: &e,
		})
		return
	}

	var subscription models.Subscription
	err = models.DB.First(&subscription, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionResponse{
			Error: &e,
		})
		return
	}

	apiResource := newSubscription(c, subscription)
	c.JSON(http.StatusOK, SubscriptionResponse{Data: &apiResource})
}

// @Summary		Update subscription
// @Description	Updates an existing subscription. Only values to be updated need to be specified.
// @Tags			Subscriptions
// @Accept			json
// @Produce		json
// @Success		200				{object}	SubscriptionResponse
// @Failure		400				{object}	SubscriptionResponse
// @Failure		404				{object}	SubscriptionResponse
// @Failure		500				{object}	SubscriptionResponse
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			subscription	body		SubscriptionEditable	true	"Subscription"
// @Router			/v1/subscriptions/{id} [patch]
func UpdateSubscription(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionResponse{
			Error: &e,
		})
		return
	}

	var subscription models.Subscription
	err = models.DB.First(&subscription, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, SubscriptionEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionResponse{
			Error: &e,
		})
		return
	}

	var data SubscriptionEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&subscription).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionResponse{
			Error: &e,
		})
		return
	}

	apiResource := newSubscription(c, subscription)
	c.JSON(http.StatusOK, SubscriptionResponse{Data: &apiResource})
}

// @Summary		Delete subscription
// @Description	Deletes a subscription
// @Tags			Subscriptions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/subscriptions/{id} [delete]
func DeleteSubscription(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var subscription models.Subscription
	err = models.DB.First(&subscription, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&subscription).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Set subscription active
// @Description	Pauses or resumes a subscription. Idempotent.
// @Tags			Subscriptions
// @Accept			json
// @Produce		json
// @Success		200		{object}	SubscriptionResponse
// @Failure		400		{object}	SubscriptionResponse
// @Failure		404		{object}	SubscriptionResponse
// @Failure		500		{object}	SubscriptionResponse
// @Param			id		path		URIID						true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			state	body		SubscriptionActiveRequest	true	"State"
// @Router			/v1/subscriptions/{id}/active [post]
func SetSubscriptionActive(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionResponse{
			Error: &e,
		})
		return
	}

	var subscription models.Subscription
	err = models.DB.First(&subscription, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionResponse{
			Error: &e,
		})
		return
	}

	var request SubscriptionActiveRequest
	err = httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionResponse{
			Error: &e,
		})
		return
	}

	err = subscription.SetActive(models.DB, request.Active)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionResponse{
			Error: &e,
		})
		return
	}

	apiResource := newSubscription(c, subscription)
	c.JSON(http.StatusOK, SubscriptionResponse{Data: &apiResource})
}
