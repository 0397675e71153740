package v1

import (
	"net/http"

	"github.com/chris-melvin/usemargin-sub000/internal/httputil"
	"github.com/chris-melvin/usemargin-sub000/internal/models"
	"github.com/chris-melvin/usemargin-sub000/internal/types"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", GetExpenses)
		r.POST("", CreateExpenses)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", OptionsExpenseDetail)
		r.GET("/:id", GetExpense)
		r.PATCH("/:id", UpdateExpense)
		r.DELETE("/:id", DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Expense{})
}

// @Summary		Create expenses
// @Description	Creates new expenses. Expenses without a bucket are tagged via the match rules, falling back to the default bucket.
// @Tags			Expenses
// @Produce		json
// @Success		201			{object}	ExpenseCreateResponse
// @Failure		400			{object}	ExpenseCreateResponse
// @Failure		500			{object}	ExpenseCreateResponse
// @Param			expenses	body		[]ExpenseEditable	true	"Expenses"
// @Router			/v1/expenses [post]
func CreateExpenses(c *gin.Context) {
	var expenses []ExpenseEditable

	err := httputil.BindData(c, &expenses)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseCreateResponse{
			Error: &e,
		})
		return
	}

	status := http.StatusCreated
	r := ExpenseCreateResponse{}

	for _, create := range expenses {
		expense := create.model()
		err = models.DB.Create(&expense).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newExpense(c, expense)
		r.Data = append(r.Data, ExpenseResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get expenses
// @Description	Returns a list of expenses
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseListResponse
// @Failure		400	{object}	ExpenseListResponse
// @Failure		500	{object}	ExpenseListResponse
// @Router			/v1/expenses [get]
// @Param			user	query	string	false	"Filter by user ID"
// @Param			name	query	string	false	"Filter by name"
// @Param			note	query	string	false	"Filter by note"
// @Param			search	query	string	false	"Search for this text in name and note"
// @Param			bucket	query	string	false	"Filter by bucket ID"
// @Param			month	query	string	false	"Expenses made in this month, in YYYY-MM format"
// @Param			offset	query	uint	false	"The offset of the first expense returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of expenses to return. Defaults to 50."
func GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ExpenseListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)
	where := filter.model()

	q := models.DB.
		Order("date DESC, name ASC").
		Where(&where, queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	if filter.Month != "" {
		month, e := types.ParseMonth(filter.Month)
		if e != nil {
			s := e.Error()
			c.JSON(http.StatusBadRequest, ExpenseListResponse{
				Error: &s,
			})
			return
		}

		q = q.Where("date >= date(?)", month).Where("date < date(?)", month.AddDate(0, 1))
	}

	q = q.Offset(int(filter.Offset))

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var expenses []models.Expense
	err := q.Find(&expenses).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Expense, 0, len(expenses))
	for _, expense := range expenses {
		data = append(data, newExpense(c, expense))
	}

	c.JSON(http.StatusOK, ExpenseListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseResponse
// @Failure		400	{object}	ExpenseResponse
// @Failure		404	{object}	ExpenseResponse
// @Failure		500	{object}	ExpenseResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [get]
func GetExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	apiResource := newExpense(c, expense)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &apiResource})
}

// @Summary		Update expense
// @Description	Updates an existing expense. Only values to be updated need to be specified.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		404		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses/{id} [patch]
func UpdateExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ExpenseEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	var data ExpenseEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&expense).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	apiResource := newExpense(c, expense)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &apiResource})
}

// @Summary		Delete expense
// @Description	Deletes an expense
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [delete]
func DeleteExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&expense).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
