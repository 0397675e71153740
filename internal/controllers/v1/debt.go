package v1

import (
	"net/http"

	"github.com/chris-melvin/usemargin-sub000/internal/httputil"
	"github.com/chris-melvin/usemargin-sub000/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterDebtRoutes registers the routes for debts with
// the RouterGroup that is passed.
func RegisterDebtRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsDebtList)
		r.GET("", GetDebts)
		r.POST("", CreateDebts)
	}

	// Debt with ID
	{
		r.OPTIONS("/:id", OptionsDebtDetail)
		r.GET("/:id", GetDebt)
		r.PATCH("/:id", UpdateDebt)
		r.DELETE("/:id", DeleteDebt)
		r.OPTIONS("/:id/payments", OptionsDebtPayments)
		r.POST("/:id/payments", RecordDebtPayment)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Debts
// @Success		204
// @Router			/v1/debts [options]
func OptionsDebtList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Debts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/debts/{id} [options]
func OptionsDebtDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Debt{})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Debts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/debts/{id}/payments [options]
func OptionsDebtPayments(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.First(&models.Debt{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Create debts
// @Description	Creates new debts
// @Tags			Debts
// @Produce		json
// @Success		201		{object}	DebtCreateResponse
// @Failure		400		{object}	DebtCreateResponse
// @Failure		500		{object}	DebtCreateResponse
// @Param			debts	body		[]DebtEditable	true	"Debts"
// @Router			/v1/debts [post]
func CreateDebts(c *gin.Context) {
	var debts []DebtEditable

	err := httputil.BindData(c, &debts)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtCreateResponse{
			Error: &e,
		})
		return
	}

	status := http.StatusCreated
	r := DebtCreateResponse{}

	for _, create := range debts {
		debt := create.model()
		err = models.DB.Create(&debt).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newDebt(c, debt)
		r.Data = append(r.Data, DebtResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get debts
// @Description	Returns a list of debts
// @Tags			Debts
// @Produce		json
// @Success		200	{object}	DebtListResponse
// @Failure		400	{object}	DebtListResponse
// @Failure		500	{object}	DebtListResponse
// @Router			/v1/debts [get]
// @Param			user	query	string	false	"Filter by user ID"
// @Param			name	query	string	false	"Filter by name"
// @Param			note	query	string	false	"Filter by note"
// @Param			search	query	string	false	"Search for this text in name and note"
// @Param			offset	query	uint	false	"The offset of the first debt returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of debts to return. Defaults to 50."
func GetDebts(c *gin.Context) {
	var filter DebtQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, DebtListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)
	where := filter.model()

	q := models.DB.
		Order("name ASC").
		Where(&where, queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	q = q.Offset(int(filter.Offset))

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var debts []models.Debt
	err := q.Find(&debts).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Debt, 0, len(debts))
	for _, debt := range debts {
		data = append(data, newDebt(c, debt))
	}

	c.JSON(http.StatusOK, DebtListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get debt
// @Description	Returns a specific debt
// @Tags			Debts
// @Produce		json
// @Success		200	{object}	DebtResponse
// @Failure		400	{object}	DebtResponse
// @Failure		404	{object}	DebtResponse
// @Failure		500	{object}	DebtResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/debts/{id} [get]
func GetDebt(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &e,
		})
		return
	}

	var debt models.Debt
	err = models.DB.First(&debt, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &e,
		})
		return
	}

	apiResource := newDebt(c, debt)
	c.JSON(http.StatusOK, DebtResponse{Data: &apiResource})
}

// @Summary		Update debt
// @Description	Updates an existing debt. Only values to be updated need to be specified.
// @Tags			Debts
// @Accept			json
// @Produce		json
// @Success		200		{object}	DebtResponse
// @Failure		400		{object}	DebtResponse
// @Failure		404		{object}	DebtResponse
// @Failure		500		{object}	DebtResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			debt	body		DebtEditable	true	"Debt"
// @Router			/v1/debts/{id} [patch]
func UpdateDebt(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &e,
		})
		return
	}

	var debt models.Debt
	err = models.DB.First(&debt, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, DebtEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &e,
		})
		return
	}

	var data DebtEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&debt).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &e,
		})
		return
	}

	apiResource := newDebt(c, debt)
	c.JSON(http.StatusOK, DebtResponse{Data: &apiResource})
}

// @Summary		Delete debt
// @Description	Deletes a debt
// @Tags			Debts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/debts/{id} [delete]
func DeleteDebt(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var debt models.Debt
	err = models.DB.First(&debt, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&debt).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Record debt payment
// @Description	Records a payment towards the debt. The remaining amount is floored at zero and the payment is deducted from the payment bucket when one is set.
// @Tags			Debts
// @Accept			json
// @Produce		json
// @Success		200		{object}	DebtResponse
// @Failure		400		{object}	DebtResponse
// @Failure		404		{object}	DebtResponse
// @Failure		500		{object}	DebtResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			payment	body		DebtPaymentRequest	true	"Payment"
// @Router			/v1/debts/{id}/payments [post]
func RecordDebtPayment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &e,
		})
		return
	}

	var debt models.Debt
	err = models.DB.First(&debt, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &e,
		})
		return
	}

	var request DebtPaymentRequest
	err = httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &e,
		})
		return
	}

	err = debt.RecordPayment(models.DB, request.Amount)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &e,
		})
		return
	}

	apiResource := newDebt(c, debt)
	c.JSON(http.StatusOK, DebtResponse{Data: &apiResource})
}
