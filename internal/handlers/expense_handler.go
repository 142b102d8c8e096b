package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"finsight/internal/analysis"
	apperrors "finsight/internal/errors"
	"finsight/internal/format"
	"finsight/internal/models"
	"finsight/internal/pagination"
	"finsight/internal/services"
)

// ExpenseHandler handles expense-related requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// CreateExpenseRequest represents the request payload for creating an expense
type CreateExpenseRequest struct {
	ExpenseType   models.ExpenseType   `json:"expenseType" binding:"required,expense_type"`
	To            string               `json:"to" binding:"required,max=200"`
	Description   string               `json:"description" binding:"required,max=500"`
	Date          string               `json:"date" binding:"required,ymd_date"`
	Amount        float64              `json:"amount" binding:"required,gt=0"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod" binding:"omitempty,payment_method"`
	Tags          []string             `json:"tags" binding:"max=50,dive,max=50"`
	IsRecurring   bool                 `json:"isRecurring"`
	Notes         string               `json:"notes" binding:"max=1000"`
}

// UpdateExpenseRequest represents the request payload for updating an
// expense. Omitted fields are left unchanged.
type UpdateExpenseRequest struct {
	ExpenseType   *models.ExpenseType   `json:"expenseType" binding:"omitempty,expense_type"`
	To            *string               `json:"to" binding:"omitempty,max=200"`
	Description   *string               `json:"description" binding:"omitempty,max=500"`
	Date          *string               `json:"date" binding:"omitempty,ymd_date"`
	Amount        *float64              `json:"amount" binding:"omitempty,gt=0"`
	PaymentMethod *models.PaymentMethod `json:"paymentMethod" binding:"omitempty,payment_method"`
	Tags          *[]string             `json:"tags" binding:"omitempty,max=50,dive,max=50"`
	IsRecurring   *bool                 `json:"isRecurring"`
	Notes         *string               `json:"notes" binding:"omitempty,max=1000"`
}

// ExpenseResponse is an expense as presented to clients.
type ExpenseResponse struct {
	ID              string               `json:"id"`
	ExpenseType     models.ExpenseType   `json:"expenseType"`
	To              string               `json:"to"`
	Description     string               `json:"description"`
	Date            string               `json:"date"`
	ISODate         string               `json:"isoDate"`
	MonthYear       string               `json:"monthYear"`
	Amount          float64              `json:"amount"`
	FormattedAmount string               `json:"formattedAmount"`
	PaymentMethod   models.PaymentMethod `json:"paymentMethod"`
	Tags            []string             `json:"tags"`
	IsRecurring     bool                 `json:"isRecurring"`
	Notes           string               `json:"notes"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

func newExpenseResponse(e models.Expense) ExpenseResponse {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}
	return ExpenseResponse{
		ID:              e.ID,
		ExpenseType:     e.ExpenseType,
		To:              e.To,
		Description:     e.Description,
		Date:            format.Date(e.Date),
		ISODate:         format.ISODate(e.Date),
		MonthYear:       format.MonthYear(e.Date),
		Amount:          e.Amount,
		FormattedAmount: format.INR(e.Amount),
		PaymentMethod:   e.PaymentMethod,
		Tags:            tags,
		IsRecurring:     e.IsRecurring,
		Notes:           e.Notes,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func newExpenseResponses(expenses []models.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		out[i] = newExpenseResponse(e)
	}
	return out
}

// ExpensePagination describes the page of an expense listing.
type ExpensePagination struct {
	CurrentPage   int   `json:"currentPage"`
	TotalPages    int   `json:"totalPages"`
	TotalExpenses int64 `json:"totalExpenses"`
	Limit         int   `json:"limit"`
	HasNextPage   bool  `json:"hasNextPage"`
	HasPrevPage   bool  `json:"hasPrevPage"`
}

// ExpenseFilters echoes the filters applied to a listing.
type ExpenseFilters struct {
	Category      string `json:"category,omitempty"`
	StartDate     string `json:"startDate,omitempty"`
	EndDate       string `json:"endDate,omitempty"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
	MinAmount     string `json:"minAmount,omitempty"`
	MaxAmount     string `json:"maxAmount,omitempty"`
	Search        string `json:"search,omitempty"`
	SortBy        string `json:"sortBy"`
	SortOrder     string `json:"sortOrder"`
}

// ExpenseListResponse is the response of GET /expenses.
type ExpenseListResponse struct {
	Expenses   []ExpenseResponse `json:"expenses"`
	Pagination ExpensePagination `json:"pagination"`
	Filters    ExpenseFilters    `json:"filters"`
}

// ExpenseMutationResponse is returned by create and update.
type ExpenseMutationResponse struct {
	Message string          `json:"message"`
	Expense ExpenseResponse `json:"expense"`
	Success bool            `json:"success"`
}

// CategoryStatResponse is one row of the by-category breakdown.
type CategoryStatResponse struct {
	Category         string  `json:"category"`
	TotalAmount      float64 `json:"totalAmount"`
	Count            int     `json:"count"`
	AverageAmount    float64 `json:"averageAmount"`
	MaxAmount        float64 `json:"maxAmount"`
	MinAmount        float64 `json:"minAmount"`
	Percentage       float64 `json:"percentage"`
	FormattedTotal   string  `json:"formattedTotal"`
	FormattedAverage string  `json:"formattedAverage"`
}

// GetExpenses handles listing expenses with filters, sorting and pagination
// @Summary     List expenses
// @Description Get a filtered, sorted and paginated list of expenses
// @Tags        expenses
// @Produce     json
// @Param       page          query int    false "Page number (default 1)"
// @Param       limit         query int    false "Items per page (default 2000, max 5000)"
// @Param       category      query string false "Filter by expense type"
// @Param       paymentMethod query string false "Filter by payment method"
// @Param       startDate     query string false "Filter by start date (YYYY-MM-DD or RFC3339)"
// @Param       endDate       query string false "Filter by end date, inclusive (YYYY-MM-DD or RFC3339)"
// @Param       minAmount     query number false "Minimum amount"
// @Param       maxAmount     query number false "Maximum amount"
// @Param       search        query string false "Free-text search"
// @Param       sortBy        query string false "Sort field (default date)"
// @Param       sortOrder     query string false "asc or desc (default desc)"
// @Success     200 {object} ExpenseListResponse "Paginated expenses"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [get]
func (h *ExpenseHandler) GetExpenses(c *gin.Context) {
	var page pagination.PageRequest
	if err := bindQuery(c, &page); err != nil {
		respondWithError(c, err)
		return
	}

	filter, err := parseExpenseFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	sortBy := c.DefaultQuery("sortBy", "date")
	if !services.IsExpenseSortField(sortBy) {
		respondWithError(c, apperrors.Validation("sortBy", "invalid sortBy field", sortBy))
		return
	}
	sortOrder := strings.ToLower(c.DefaultQuery("sortOrder", "desc"))
	if sortOrder != "asc" && sortOrder != "desc" {
		respondWithError(c, apperrors.Validation("sortOrder", "sortOrder must be asc or desc", sortOrder))
		return
	}

	result, err := h.expenseService.ListExpenses(filter, services.ExpenseSort{By: sortBy, Desc: sortOrder == "desc"}, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ExpenseListResponse{
		Expenses: newExpenseResponses(result.Expenses),
		Pagination: ExpensePagination{
			CurrentPage:   result.Meta.CurrentPage,
			TotalPages:    result.Meta.TotalPages,
			TotalExpenses: result.Meta.TotalItems,
			Limit:         result.Meta.Limit,
			HasNextPage:   result.Meta.HasNextPage,
			HasPrevPage:   result.Meta.HasPrevPage,
		},
		Filters: ExpenseFilters{
			Category:      c.Query("category"),
			StartDate:     c.Query("startDate"),
			EndDate:       c.Query("endDate"),
			PaymentMethod: c.Query("paymentMethod"),
			MinAmount:     c.Query("minAmount"),
			MaxAmount:     c.Query("maxAmount"),
			Search:        c.Query("search"),
			SortBy:        sortBy,
			SortOrder:     sortOrder,
		},
	})
}

func parseExpenseFilter(c *gin.Context) (services.ExpenseFilter, error) {
	var filter services.ExpenseFilter

	if v := c.Query("category"); v != "" {
		category := models.ExpenseType(v)
		if !category.Valid() {
			return filter, apperrors.Validation("category", "Invalid expense type", v)
		}
		filter.Category = &category
	}

	if v := c.Query("paymentMethod"); v != "" {
		method := models.PaymentMethod(v)
		if !method.Valid() {
			return filter, apperrors.Validation("paymentMethod", "Invalid payment method", v)
		}
		filter.PaymentMethod = &method
	}

	start, end, err := parseDateRange(c)
	if err != nil {
		return filter, err
	}
	filter.StartDate, filter.EndDate = start, end

	if filter.MinAmount, err = parseFloatQuery(c, "minAmount"); err != nil {
		return filter, err
	}
	if filter.MaxAmount, err = parseFloatQuery(c, "maxAmount"); err != nil {
		return filter, err
	}

	filter.Search = c.Query("search")
	return filter, nil
}

// CreateExpense handles the creation of a new expense
// @Summary     Create an expense
// @Description Record a new expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       request body CreateExpenseRequest true "Expense details"
// @Success     201 {object} ExpenseMutationResponse "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [post]
// @Router      /add-expense [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req CreateExpenseRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	if strings.TrimSpace(req.To) == "" {
		respondWithError(c, apperrors.Validation("to", "to is required", req.To))
		return
	}
	if strings.TrimSpace(req.Description) == "" {
		respondWithError(c, apperrors.Validation("description", "description is required", req.Description))
		return
	}

	date, err := parseDate("date", req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.CreateExpense(services.ExpenseInput{
		ExpenseType:   req.ExpenseType,
		To:            req.To,
		Description:   req.Description,
		Date:          date,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Tags:          req.Tags,
		IsRecurring:   req.IsRecurring,
		Notes:         req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ExpenseMutationResponse{
		Message: "Expense added successfully",
		Expense: newExpenseResponse(*expense),
		Success: true,
	})
}

// GetExpense handles fetching a single expense
// @Summary     Get an expense
// @Tags        expenses
// @Produce     json
// @Param       id path string true "Expense ID"
// @Success     200 {object} ExpenseResponse "Expense"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expenses/{id} [get]
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.GetExpense(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "expense": newExpenseResponse(*expense)})
}

// UpdateExpense handles partial updates of an expense
// @Summary     Update an expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       id      path string               true "Expense ID"
// @Param       request body UpdateExpenseRequest true "Fields to update"
// @Success     200 {object} ExpenseMutationResponse "Expense updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateExpenseRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	date, err := parseOptionalDate("date", req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.UpdateExpense(id, services.ExpenseUpdate{
		ExpenseType:   req.ExpenseType,
		To:            req.To,
		Description:   req.Description,
		Date:          date,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Tags:          req.Tags,
		IsRecurring:   req.IsRecurring,
		Notes:         req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ExpenseMutationResponse{
		Message: "Expense updated successfully",
		Expense: newExpenseResponse(*expense),
		Success: true,
	})
}

// DeleteExpense handles deleting an expense
// @Summary     Delete an expense
// @Tags        expenses
// @Produce     json
// @Param       id path string true "Expense ID"
// @Success     200 {object} map[string]interface{} "Expense deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	deleted, err := h.expenseService.DeleteExpense(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Expense deleted successfully",
		"deletedExpense": newExpenseResponse(*deleted),
		"success":        true,
	})
}

// GetExpenseTypes returns the expense type and payment method enumerations
// @Summary     List expense types
// @Tags        expenses
// @Produce     json
// @Success     200 {object} map[string]interface{} "Expense types"
// @Router      /expense-types [get]
func (h *ExpenseHandler) GetExpenseTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"expenseTypes":   models.ExpenseTypes,
		"paymentMethods": models.PaymentMethods,
		"message":        "Expense types retrieved successfully",
	})
}

// GetExpensesByCategory handles the per-category breakdown
// @Summary     Expenses by category
// @Description Totals, counts, averages and share of spending per category
// @Tags        expenses
// @Produce     json
// @Param       startDate query string false "Start date (YYYY-MM-DD or RFC3339)"
// @Param       endDate   query string false "End date, inclusive (YYYY-MM-DD or RFC3339)"
// @Success     200 {object} map[string]interface{} "Category statistics"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/by-category [get]
func (h *ExpenseHandler) GetExpensesByCategory(c *gin.Context) {
	start, end, err := parseDateRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	report, err := h.expenseService.CategoryStats(start, end)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categoryStats":   newCategoryStatResponses(report.Categories),
		"totalCategories": len(report.Categories),
		"totalSpending":   report.GrandTotal,
		"message":         "Category statistics retrieved successfully",
	})
}

func newCategoryStatResponses(stats []analysis.CategoryStats) []CategoryStatResponse {
	out := make([]CategoryStatResponse, len(stats))
	for i, s := range stats {
		out[i] = CategoryStatResponse{
			Category:         s.Category,
			TotalAmount:      s.TotalAmount,
			Count:            s.Count,
			AverageAmount:    s.AverageAmount,
			MaxAmount:        s.MaxAmount,
			MinAmount:        s.MinAmount,
			Percentage:       s.Percentage,
			FormattedTotal:   format.INR(s.TotalAmount),
			FormattedAverage: format.INR(s.AverageAmount),
		}
	}
	return out
}

// GetMonthlySummary handles the twelve-month summary of a year
// @Summary     Monthly summary
// @Tags        expenses
// @Produce     json
// @Param       year query int false "Year (default current year)"
// @Success     200 {object} map[string]interface{} "Monthly summary"
// @Failure     400 {object} ErrorResponse "Invalid year"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/monthly-summary [get]
func (h *ExpenseHandler) GetMonthlySummary(c *gin.Context) {
	year, err := parseIntQuery(c, "year", time.Now().UTC().Year())
	if err != nil {
		respondWithError(c, err)
		return
	}
	if year < 1 || year > 9999 {
		respondWithError(c, apperrors.Validation("year", "invalid year", year))
		return
	}

	summary, err := h.expenseService.MonthlySummary(year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"monthlySummary": summary,
		"year":           year,
		"message":        "Monthly summary retrieved successfully",
	})
}

// SearchExpenses handles free-text search
// @Summary     Search expenses
// @Description Case-insensitive search across description, payee, category and notes
// @Tags        expenses
// @Produce     json
// @Param       q     query string true  "Query (at least 2 characters)"
// @Param       limit query int    false "Maximum results (default 20)"
// @Success     200 {object} map[string]interface{} "Search results"
// @Failure     400 {object} ErrorResponse "Query too short"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/search [get]
func (h *ExpenseHandler) SearchExpenses(c *gin.Context) {
	query := c.Query("q")
	limit, err := parseIntQuery(c, "limit", services.DefaultSearchLimit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	results, err := h.expenseService.SearchExpenses(query, limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"results": newExpenseResponses(results),
		"count":   len(results),
		"query":   query,
		"message": "Search completed successfully",
	})
}
