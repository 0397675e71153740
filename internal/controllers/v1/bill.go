package v1

import (
	"net/http"

	"github.com/chris-melvin/usemargin-sub000/internal/httputil"
	"github.com/chris-melvin/usemargin-sub000/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterBillRoutes registers the routes for bills with
// the RouterGroup that is passed.
func RegisterBillRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBillList)
		r.GET("", GetBills)
		r.POST("", CreateBills)
	}

	// Bill with ID
	{
		r.OPTIONS("/:id", OptionsBillDetail)
		r.GET("/:id", GetBill)
		r.PATCH("/:id", UpdateBill)
		r.DELETE("/:id", DeleteBill)
		r.OPTIONS("/:id/paid", OptionsBillPaid)
		r.POST("/:id/paid", SetBillPaid)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Bills
// @Success		204
// @Router			/v1/bills [options]
func OptionsBillList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Bills
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/bills/{id} [options]
func OptionsBillDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Bill{})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Bills
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/bills/{id}/paid [options]
func OptionsBillPaid(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.First(&models.Bill{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Create bills
// @Description	Creates new bills
// @Tags			Bills
// @Produce		json
// @Success		201		{object}	BillCreateResponse
// @Failure		400		{object}	BillCreateResponse
// @Failure		500		{object}	BillCreateResponse
// @Param			bills	body		[]BillEditable	true	"Bills"
// @Router			/v1/bills [post]
func CreateBills(c *gin.Context) {
	var bills []BillEditable

	err := httputil.BindData(c, &bills)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BillCreateResponse{
			Error: &e,
		})
		return
	}

	status := http.StatusCreated
	r := BillCreateResponse{}

	for _, create := range bills {
		bill := create.model()
		err = models.DB.Create(&bill).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newBill(c, bill)
		r.Data = append(r.Data, BillResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get bills
// @Description	Returns a list of bills
// @Tags			Bills
// @Produce		json
// @Success		200	{object}	BillListResponse
// @Failure		400	{object}	BillListResponse
// @Failure		500	{object}	BillListResponse
// @Router			/v1/bills [get]
// @Param			user	query	string	false	"Filter by user ID"
// @Param			name	query	string	false	"Filter by name"
// @Param			note	query	string	false	"Filter by note"
// @Param			search	query	string	false	"Search for this text in name and note"
// @Param			paid	query	bool	false	"Has the bill been paid?"
// @Param			dueDay	query	int	false	"Filter by day of the month the bill is due"
// @Param			offset	query	uint	false	"The offset of the first bill returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of bills to return. Defaults to 50."
func GetBills(c *gin.Context) {
	var filter BillQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BillListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)
	where := filter.model()

	q := models.DB.
		Order("due_day ASC, name ASC").
		Where(&where, queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	q = q.Offset(int(filter.Offset))

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var bills []models.Bill
	err := q.Find(&bills).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BillListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BillListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Bill, 0, len(bills))
	for _, bill := range bills {
		data = append(data, newBill(c, bill))
	}

	c.JSON(http.StatusOK, BillListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get bill
// @Description	Returns a specific bill
// @Tags			Bills
// @Produce		json
// @Success		200	{object}	BillResponse
// @Failure		400	{object}	BillResponse
// @Failure		404	{object}	BillResponse
// @Failure		500	{object}	BillResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/bills/{id} [get]
func GetBill(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BillResponse{
			Error: &e,
		})
		return
	}

	var bill models.Bill
	err = models.DB.First(&bill, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BillResponse{
			Error: &e,
		})
		return
	}

	apiResource := newBill(c, bill)
	c.JSON(http.StatusOK, BillResponse{Data: &apiResource})
}

// @Summary		Update bill
// @Description	Updates an existing bill. Only values to be updated need to be specified.
// @Tags			Bills
// @Accept			json
// @Produce		json
// @Success		200		{object}	BillResponse
// @Failure		400		{object}	BillResponse
// @Failure		404		{object}	BillResponse
// @Failure		500		{object}	BillResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			bill	body		BillEditable	true	"Bill"
// @Router			/v1/bills/{id} [patch]
func UpdateBill(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BillResponse{
			Error: &e,
		})
		return
	}

	var bill models.Bill
	err = models.DB.First(&bill, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BillResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, BillEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BillResponse{
			Error: &e,
		})
		return
	}

	var data BillEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BillResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&bill).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BillResponse{
			Error: &e,
		})
		return
	}

	apiResource := newBill(c, bill)
	c.JSON(http.StatusOK, BillResponse{Data: &apiResource})
}

// @Summary		Delete bill
// @Description	Deletes a bill
// @Tags			Bills
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/bills/{id} [delete]
func DeleteBill(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var bill models.Bill
	err = models.DB.First(&bill, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&bill).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Set bill paid
// @Description	Marks a bill as paid or unpaid. On the transition to paid, the bill amount is deducted from the payment bucket. Idempotent.
// @Tags			Bills
// @Accept			json
// @Produce		json
// @Success		200		{object}	BillResponse
// @Failure		400		{object}	BillResponse
// @Failure		404		{object}	BillResponse
// @Failure		500		{object}	BillResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			state	body		BillPaidRequest	true	"State"
// @Router			/v1/bills/{id}/paid [post]
func SetBillPaid(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BillResponse{
			Error: &e,
		})
		return
	}

	var bill models.Bill
	err = models.DB.First(&bill, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BillResponse{
			Error: &e,
		})
		return
	}

	var request BillPaidRequest
	err = httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BillResponse{
			Error: &e,
		})
		return
	}

	err = bill.SetPaid(models.DB, request.Paid)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BillResponse{
			Error: &e,
		})
		return
	}

	apiResource := newBill(c, bill)
	c.JSON(http.StatusOK, BillResponse{Data: &apiResource})
}
