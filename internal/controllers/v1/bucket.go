package v1

import (
	"fmt"
	"net/http"

	"github.com/chris-melvin/usemargin-sub000/internal/httputil"
	"github.com/chris-melvin/usemargin-sub000/internal/metrics"
	"github.com/chris-melvin/usemargin-sub000/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// RegisterBucketRoutes registers the routes for buckets with
// the RouterGroup that is passed.
func RegisterBucketRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBucketList)
		r.GET("", GetBuckets)
		r.POST("", CreateBuckets)
	}

	// Suggestions and allocation
	{
		r.OPTIONS("/suggestions", OptionsBucketSuggestions)
		r.GET("/suggestions", GetBucketSuggestions)
		r.OPTIONS("/allocate", OptionsBucketAllocate)
		r.POST("/allocate", AllocateBuckets)
	}

	// Bucket with ID
	{
		r.OPTIONS("/:id", OptionsBucketDetail)
		r.GET("/:id", GetBucket)
		r.PATCH("/:id", UpdateBucket)
		r.DELETE("/:id", DeleteBucket)
		r.OPTIONS("/:id/deduct", OptionsBucketDeduct)
		r.POST("/:id/deduct", DeductFromBucket)
		r.OPTIONS("/:id/default", OptionsBucketDefault)
		r.POST("/:id/default", SetDefaultBucket)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Buckets
// @Success		204
// @Router			/v1/buckets [options]
func OptionsBucketList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Buckets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/buckets/{id} [options]
func OptionsBucketDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Bucket{})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Buckets
// @Success		204
// @Router			/v1/buckets/suggestions [options]
func OptionsBucketSuggestions(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Buckets
// @Success		204
// @Router			/v1/buckets/allocate [options]
func OptionsBucketAllocate(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Buckets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/buckets/{id}/deduct [options]
func OptionsBucketDeduct(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.First(&models.Bucket{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Buckets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/buckets/{id}/default [options]
func OptionsBucketDefault(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.First(&models.Bucket{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Create buckets
// @Description	Creates new buckets
// @Tags			Buckets
// @Produce		json
// @Success		201		{object}	BucketCreateResponse
// @Failure		400		{object}	BucketCreateResponse
// @Failure		500		{object}	BucketCreateResponse
// @Param			buckets	body		[]BucketEditable	true	"Buckets"
// @Router			/v1/buckets [post]
func CreateBuckets(c *gin.Context) {
	var buckets []BucketEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &buckets)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BucketCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := BucketCreateResponse{}

	for _, create := range buckets {
		bucket := create.model()
		err = models.DB.Create(&bucket).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newBucket(c, bucket)
		r.Data = append(r.Data, BucketResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get buckets
// @Description	Returns a list of buckets
// @Tags			Buckets
// @Produce		json
// @Success		200	{object}	BucketListResponse
// @Failure		400	{object}	BucketListResponse
// @Failure		500	{object}	BucketListResponse
// @Router			/v1/buckets [get]
// @Param			user	query	string	false	"Filter by user ID"
// @Param			name	query	string	false	"Filter by name"
// @Param			slug	query	string	false	"Filter by slug"
// @Param			search	query	string	false	"Search for this text in name and note"
// @Param			default	query	bool	false	"Is the bucket the default bucket?"
// @Param			system	query	bool	false	"Is the bucket a system bucket?"
// @Param			offset	query	uint	false	"The offset of the first bucket returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of buckets to return. Defaults to 50."
func GetBuckets(c *gin.Context) {
	var filter BucketQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BucketListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)
	where := filter.model()

	q := models.DB.
		Order("sort_order ASC, name ASC").
		Where(&where, queryFields...)

	// Buckets have no note, name and search both match against the name
	if filter.Name != "" {
		q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Name))
	} else if slices.Contains(setFields, "Name") {
		q = q.Where("name = ''")
	}

	if filter.Search != "" {
		q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Search))
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 buckets and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var buckets []models.Bucket
	err := q.Find(&buckets).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BucketListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BucketListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Bucket, 0, len(buckets))
	for _, bucket := range buckets {
		data = append(data, newBucket(c, bucket))
	}

	c.JSON(http.StatusOK, BucketListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get bucket
// @Description	Returns a specific bucket
// @Tags			Buckets
// @Produce		json
// @Success		200	{object}	BucketResponse
// @Failure		400	{object}	BucketResponse
// @Failure		404	{object}	BucketResponse
// @Failure		500	{object}	BucketResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/buckets/{id} [get]
func GetBucket(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BucketResponse{
			Error: &e,
		})
		return
	}

	var bucket models.Bucket
	err = models.DB.First(&bucket, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BucketResponse{
			Error: &e,
		})
		return
	}

	apiResource := newBucket(c, bucket)
	c.JSON(http.StatusOK, BucketResponse{Data: &apiResource})
}

// @Summary		Get bucket suggestions
// @Description	Returns the seed templates for new buckets
// @Tags			Buckets
// @Produce		json
// @Success		200	{object}	BucketSuggestionsResponse
// @Router			/v1/buckets/suggestions [get]
func GetBucketSuggestions(c *gin.Context) {
	c.JSON(http.StatusOK, BucketSuggestionsResponse{Data: models.BucketSuggestions()})
}

// @Summary		Update bucket
// @Description	Updates an existing bucket. Only values to be updated need to be specified.
// @Tags			Buckets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BucketResponse
// @Failure		400		{object}	BucketResponse
// @Failure		404		{object}	BucketResponse
// @Failure		500		{object}	BucketResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			bucket	body		BucketEditable	true	"Bucket"
// @Router			/v1/buckets/{id} [patch]
func UpdateBucket(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BucketResponse{
			Error: &e,
		})
		return
	}

	var bucket models.Bucket
	err = models.DB.First(&bucket, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BucketResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, BucketEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BucketResponse{
			Error: &e,
		})
		return
	}

	// Bind the data for the patch
	var data BucketEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BucketResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&bucket).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BucketResponse{
			Error: &e,
		})
		return
	}

	apiResource := newBucket(c, bucket)
	c.JSON(http.StatusOK, BucketResponse{Data: &apiResource})
}

// @Summary		Delete bucket
// @Description	Deletes a bucket. The default bucket cannot be deleted.
// @Tags			Buckets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/buckets/{id} [delete]
func DeleteBucket(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var bucket models.Bucket
	err = models.DB.First(&bucket, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&bucket).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Allocate buckets
// @Description	Distributes the remaining monthly budget over all buckets of a user and persists the result
// @Tags			Buckets
// @Accept			json
// @Produce		json
// @Success		200			{object}	BucketAllocationResponse
// @Failure		400			{object}	BucketAllocationResponse
// @Failure		500			{object}	BucketAllocationResponse
// @Param			allocation	body		BucketAllocateRequest	true	"Allocation"
// @Router			/v1/buckets/allocate [post]
func AllocateBuckets(c *gin.Context) {
	var request BucketAllocateRequest

	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BucketAllocationResponse{
			Error: &e,
		})
		return
	}

	if request.UserID == uuid.Nil {
		e := errUserIDRequired.Error()
		c.JSON(http.StatusBadRequest, BucketAllocationResponse{
			Error: &e,
		})
		return
	}

	results, err := models.RecalculateAllocations(models.DB, request.UserID, request.RemainingBudget)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BucketAllocationResponse{
			Error: &e,
		})
		return
	}

	metrics.AllocationRuns.Inc()

	data := make([]BucketAllocation, 0, len(results))
	for _, result := range results {
		share := decimal.Zero
		if request.RemainingBudget.IsPositive() {
			share = result.Amount.Div(request.RemainingBudget).Round(4)
		}

		data = append(data, BucketAllocation{
			BucketID:        result.BucketID,
			AllocatedAmount: result.Amount,
			Share:           share,
		})
	}

	c.JSON(http.StatusOK, BucketAllocationResponse{Data: data})
}

// @Summary		Deduct from bucket
// @Description	Deducts a payment from the bucket's allocated balance. The balance floors at zero.
// @Tags			Buckets
// @Accept			json
// @Produce		json
// @Success		200			{object}	BucketResponse
// @Failure		400			{object}	BucketResponse
// @Failure		404			{object}	BucketResponse
// @Failure		500			{object}	BucketResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			deduction	body		BucketDeductRequest	true	"Deduction"
// @Router			/v1/buckets/{id}/deduct [post]
func DeductFromBucket(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BucketResponse{
			Error: &e,
		})
		return
	}

	var bucket models.Bucket
	err = models.DB.First(&bucket, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BucketResponse{
			Error: &e,
		})
		return
	}

	var request BucketDeductRequest
	err = httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BucketResponse{
			Error: &e,
		})
		return
	}

	err = bucket.Deduct(models.DB, request.Amount)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BucketResponse{
			Error: &e,
		})
		return
	}

	metrics.BucketDeductions.Inc()

	apiResource := newBucket(c, bucket)
	c.JSON(http.StatusOK, BucketResponse{Data: &apiResource})
}

// @Summary		Set default bucket
// @Description	Makes the bucket the default destination for the user's unassigned expenses. Exactly one bucket per user is the default.
// @Tags			Buckets
// @Produce		json
// @Success		200	{object}	BucketResponse
// @Failure		400	{object}	BucketResponse
// @Failure		404	{object}	BucketResponse
// @Failure		500	{object}	BucketResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/buckets/{id}/default [post]
func SetDefaultBucket(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BucketResponse{
			Error: &e,
		})
		return
	}

	var bucket models.Bucket
	err = models.DB.First(&bucket, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BucketResponse{
			Error: &e,
		})
		return
	}

	err = models.SetDefaultBucket(models.DB, bucket.UserID, bucket.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BucketResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.First(&bucket, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BucketResponse{
			Error: &e,
		})
		return
	}

	apiResource := newBucket(c, bucket)
	c.JSON(http.StatusOK, BucketResponse{Data: &apiResource})
}
