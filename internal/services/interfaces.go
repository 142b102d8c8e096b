package services

import (
	"context"
	"encoding/json"
	"time"

	"finsight/internal/aiclient"
	"finsight/internal/analysis"
	"finsight/internal/models"
	"finsight/internal/pagination"
)

// ExpenseFilter holds optional filter parameters for listing expenses. All
// set fields are combined with AND.
type ExpenseFilter struct {
	Category      *models.ExpenseType
	PaymentMethod *models.PaymentMethod
	StartDate     *time.Time
	EndDate       *time.Time
	MinAmount     *float64
	MaxAmount     *float64
	Search        string
}

// ExpenseSort selects the single ordering field of an expense listing.
type ExpenseSort struct {
	By   string
	Desc bool
}

// ExpenseInput carries the fields of a new expense.
type ExpenseInput struct {
	ExpenseType   models.ExpenseType
	To            string
	Description   string
	Date          time.Time
	Amount        float64
	PaymentMethod models.PaymentMethod
	Tags          []string
	IsRecurring   bool
	Notes         string
}

// ExpenseUpdate carries the fields to change on an expense; nil fields are kept.
type ExpenseUpdate struct {
	ExpenseType   *models.ExpenseType
	To            *string
	Description   *string
	Date          *time.Time
	Amount        *float64
	PaymentMethod *models.PaymentMethod
	Tags          *[]string
	IsRecurring   *bool
	Notes         *string
}

// ExpensePage is one page of a filtered expense listing.
type ExpensePage struct {
	Expenses []models.Expense
	Meta     pagination.Meta
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	ListExpenses(filter ExpenseFilter, sort ExpenseSort, page pagination.PageRequest) (*ExpensePage, error)
	CreateExpense(in ExpenseInput) (*models.Expense, error)
	GetExpense(id string) (*models.Expense, error)
	UpdateExpense(id string, in ExpenseUpdate) (*models.Expense, error)
	DeleteExpense(id string) (*models.Expense, error)
	CategoryStats(start, end *time.Time) (*analysis.Report, error)
	MonthlySummary(year int) ([]analysis.MonthSummary, error)
	SearchExpenses(query string, limit int) ([]models.Expense, error)
}

// TripInput carries the fields of a trip.
type TripInput struct {
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Budget      float64
	Notes       string
}

// TripUpdate carries the fields to change on a trip; nil fields are kept.
type TripUpdate struct {
	Destination *string
	StartDate   *time.Time
	EndDate     *time.Time
	Budget      *float64
	Notes       *string
}

// TripServicer defines the contract for trip-related business logic.
type TripServicer interface {
	ListTrips() ([]models.Trip, error)
	CreateTrip(in TripInput) (*models.Trip, error)
	GetTrip(id string) (*models.Trip, error)
	UpdateTrip(id string, in TripUpdate) (*models.Trip, error)
	DeleteTrip(id string) error
}

// ApprovalInput carries the fields of a new approval.
type ApprovalInput struct {
	Person          string
	TransactionType models.Direction
	Amount          float64
	Date            time.Time
	Approved        bool
}

// ApprovalUpdate carries the fields to change on an approval; nil fields are kept.
type ApprovalUpdate struct {
	Person          *string
	TransactionType *models.Direction
	Amount          *float64
	Date            *time.Time
	Approved        *bool
}

// ApprovalServicer defines the contract for approval-related business logic.
type ApprovalServicer interface {
	ListApprovals(approved *bool) ([]models.Approval, error)
	CreateApproval(in ApprovalInput) (*models.Approval, error)
	GetApproval(id string) (*models.Approval, error)
	UpdateApproval(id string, in ApprovalUpdate) (*models.Approval, error)
	DeleteApproval(id string) error
}

// BudgetLimitInput carries the fields of a budget limit upsert. Nil
// thresholds select the 60/80/100 defaults.
type BudgetLimitInput struct {
	ExpenseType     models.ExpenseType
	MonthlyLimit    float64
	AlertThresholds *models.AlertThresholds
	Notes           string
}

// BudgetLimitServicer defines the contract for budget limit business logic.
type BudgetLimitServicer interface {
	UpsertBudgetLimit(in BudgetLimitInput) (*models.BudgetLimit, error)
	ListActiveBudgetLimits() ([]models.BudgetLimit, error)
	DeleteBudgetLimit(id string) error
}

// CategoryServicer defines the contract for category analysis and insights.
type CategoryServicer interface {
	Analysis(start, end *time.Time) (*CategoryAnalysis, error)
	Insights(now time.Time) (*CategoryInsights, error)
}

// Predictor is the external AI contract consumed by the prediction service.
type Predictor interface {
	Train(ctx context.Context, expenses []aiclient.TrainingExpense, forceRetrain bool) (json.RawMessage, error)
	Predict(ctx context.Context, req aiclient.PredictRequest) (*aiclient.Prediction, error)
	Compare(ctx context.Context, req aiclient.PredictRequest) (*aiclient.Comparison, error)
	ModelStatus(ctx context.Context) (*aiclient.ModelStatus, error)
	Health(ctx context.Context) (json.RawMessage, error)
}

// PredictInput carries a prediction request. A nil Date means today.
type PredictInput struct {
	Subject string
	To      string
	Date    *time.Time
	Method  models.PredictionMethod
}

// PredictionServicer defines the contract for AI prediction business logic.
type PredictionServicer interface {
	Train(ctx context.Context) (*TrainResult, error)
	Predict(ctx context.Context, in PredictInput) (*models.Prediction, error)
	Compare(ctx context.Context, in PredictInput) (*aiclient.Comparison, error)
	History(category string, page pagination.PageRequest) (*PredictionPage, error)
	Validate(id string, actualAmount float64) (*ValidationResult, error)
	Status(ctx context.Context) *AIStatus
	Analytics() (*PredictionAnalytics, error)
}
