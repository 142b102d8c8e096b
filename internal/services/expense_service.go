package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"finsight/internal/analysis"
	apperrors "finsight/internal/errors"
	"finsight/internal/models"
	"finsight/internal/pagination"
)

// MinSearchLength is the shortest accepted free-text query.
const MinSearchLength = 2

// DefaultSearchLimit caps search results when no limit is given.
const DefaultSearchLimit = 20

// expenseSortColumns maps accepted sortBy values to columns.
var expenseSortColumns = map[string]string{
	"date":          "date",
	"amount":        "amount",
	"expenseType":   "expense_type",
	"to":            "payee",
	"description":   "description",
	"paymentMethod": "payment_method",
	"createdAt":     "created_at",
	"updatedAt":     "updated_at",
}

// IsExpenseSortField reports whether field can be used as sortBy.
func IsExpenseSortField(field string) bool {
	_, ok := expenseSortColumns[field]
	return ok
}

// expenseService handles expense-related business logic.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// ListExpenses returns a filtered, sorted page of expenses.
func (s *expenseService) ListExpenses(filter ExpenseFilter, sort ExpenseSort, page pagination.PageRequest) (*ExpensePage, error) {
	page.Defaults(2000)

	base := applyExpenseFilter(s.db.Model(&models.Expense{}), filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := base.Order(expenseOrder(sort)).Scopes(pagination.Paginate(page)).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}

	return &ExpensePage{Expenses: expenses, Meta: pagination.NewMeta(page, totalItems)}, nil
}

func applyExpenseFilter(q *gorm.DB, f ExpenseFilter) *gorm.DB {
	if f.Category != nil {
		q = q.Where("expense_type = ?", *f.Category)
	}
	if f.PaymentMethod != nil {
		q = q.Where("payment_method = ?", *f.PaymentMethod)
	}
	if f.StartDate != nil {
		q = q.Where("date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("date <= ?", *f.EndDate)
	}
	if f.MinAmount != nil {
		q = q.Where("amount >= ?", *f.MinAmount)
	}
	if f.MaxAmount != nil {
		q = q.Where("amount <= ?", *f.MaxAmount)
	}
	if term := strings.TrimSpace(f.Search); term != "" {
		q = q.Where(searchClause(term))
	}
	return q
}

// searchClause matches term case-insensitively against description, payee,
// category and notes.
func searchClause(term string) clause.Expr {
	like := "%" + escapeLike(strings.ToLower(term)) + "%"
	return gorm.Expr("(LOWER(description) LIKE ? ESCAPE '\\' OR LOWER(payee) LIKE ? ESCAPE '\\' OR LOWER(expense_type) LIKE ? ESCAPE '\\' OR LOWER(notes) LIKE ? ESCAPE '\\')",
		like, like, like, like)
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func expenseOrder(sort ExpenseSort) string {
	col, ok := expenseSortColumns[sort.By]
	if !ok {
		col = "date"
	}
	dir := " ASC"
	if sort.Desc {
		dir = " DESC"
	}
	return col + dir + ", id" + dir
}

// CreateExpense stores a new expense after trimming its text fields.
func (s *expenseService) CreateExpense(in ExpenseInput) (*models.Expense, error) {
	expense := &models.Expense{
		ExpenseType:   in.ExpenseType,
		To:            strings.TrimSpace(in.To),
		Description:   strings.TrimSpace(in.Description),
		Date:          in.Date.UTC(),
		Amount:        in.Amount,
		PaymentMethod: in.PaymentMethod,
		Tags:          cleanTags(in.Tags),
		IsRecurring:   in.IsRecurring,
		Notes:         strings.TrimSpace(in.Notes),
	}
	if expense.PaymentMethod == "" {
		expense.PaymentMethod = models.PaymentMethodOther
	}

	if err := s.db.Create(expense).Error; err != nil {
		return nil, persistenceError(err)
	}
	return expense, nil
}

// cleanTags trims tags and drops blank ones.
func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// GetExpense returns an expense by ID.
func (s *expenseService) GetExpense(id string) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.Where("id = ?", id).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// UpdateExpense applies the non-nil fields of in and returns the updated expense.
func (s *expenseService) UpdateExpense(id string, in ExpenseUpdate) (*models.Expense, error) {
	expense, err := s.GetExpense(id)
	if err != nil {
		return nil, err
	}

	if in.ExpenseType != nil {
		expense.ExpenseType = *in.ExpenseType
	}
	if in.To != nil {
		expense.To = strings.TrimSpace(*in.To)
	}
	if in.Description != nil {
		expense.Description = strings.TrimSpace(*in.Description)
	}
	if in.Date != nil {
		expense.Date = in.Date.UTC()
	}
	if in.Amount != nil {
		expense.Amount = *in.Amount
	}
	if in.PaymentMethod != nil {
		expense.PaymentMethod = *in.PaymentMethod
	}
	if in.Tags != nil {
		expense.Tags = cleanTags(*in.Tags)
	}
	if in.IsRecurring != nil {
		expense.IsRecurring = *in.IsRecurring
	}
	if in.Notes != nil {
		expense.Notes = strings.TrimSpace(*in.Notes)
	}

	if err := s.db.Save(expense).Error; err != nil {
		return nil, persistenceError(err)
	}
	return expense, nil
}

// DeleteExpense removes an expense and returns the deleted record.
func (s *expenseService) DeleteExpense(id string) (*models.Expense, error) {
	expense, err := s.GetExpense(id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expense, nil
}

// CategoryStats aggregates expenses in [start, end] by category.
func (s *expenseService) CategoryStats(start, end *time.Time) (*analysis.Report, error) {
	records, err := loadRecords(s.db, start, end)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	report := analysis.Analyze(records, time.Now())
	return &report, nil
}

// MonthlySummary returns twelve monthly totals for year.
func (s *expenseService) MonthlySummary(year int) ([]analysis.MonthSummary, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0).Add(-time.Nanosecond)

	records, err := loadRecords(s.db, &start, &end)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return analysis.MonthlySummary(records, year), nil
}

// SearchExpenses finds expenses whose text fields contain query, newest first.
func (s *expenseService) SearchExpenses(query string, limit int) ([]models.Expense, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < MinSearchLength {
		return nil, apperrors.ErrSearchTooShort
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > pagination.MaxLimit {
		limit = pagination.MaxLimit
	}

	var expenses []models.Expense
	err := s.db.Where(searchClause(query)).
		Order("date DESC, id DESC").
		Limit(limit).
		Find(&expenses).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}
	return expenses, nil
}

// loadRecords reads the category, amount and date of expenses in [start, end].
func loadRecords(db *gorm.DB, start, end *time.Time) ([]analysis.Record, error) {
	q := db.Model(&models.Expense{}).Select("expense_type", "amount", "date")
	if start != nil {
		q = q.Where("date >= ?", *start)
	}
	if end != nil {
		q = q.Where("date <= ?", *end)
	}

	var rows []models.Expense
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	records := make([]analysis.Record, len(rows))
	for i, r := range rows {
		records[i] = analysis.Record{Category: string(r.ExpenseType), Amount: r.Amount, Date: r.Date}
	}
	return records, nil
}

// persistenceError passes model hook validation errors through and wraps
// everything else as internal.
func persistenceError(err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}
