package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"finsight/internal/aiclient"
	"finsight/internal/analysis"
	apperrors "finsight/internal/errors"
	"finsight/internal/format"
	"finsight/internal/logger"
	"finsight/internal/models"
	"finsight/internal/pagination"
)

// MinTrainingRecords is the fewest valid expenses accepted for training.
const MinTrainingRecords = 3

// TrainResult reports a completed training run.
type TrainResult struct {
	TrainingData json.RawMessage `json:"trainingData"`
	DataSize     int             `json:"dataSize"`
}

// PredictionPage is one page of prediction history.
type PredictionPage struct {
	Predictions []models.Prediction
	Meta        pagination.Meta
}

// ValidationResult reports the accuracy of a validated prediction.
type ValidationResult struct {
	ID            string  `json:"id"`
	Predicted     float64 `json:"predicted"`
	Actual        float64 `json:"actual"`
	Accuracy      int     `json:"accuracy"`
	AccuracyLevel string  `json:"accuracyLevel"`
}

// AIStatus describes the predictor as seen from this service.
type AIStatus struct {
	Healthy      bool            `json:"healthy"`
	Trained      bool            `json:"trained"`
	ModelDetails json.RawMessage `json:"modelDetails"`
	Health       json.RawMessage `json:"health"`
	Errors       []string        `json:"errors,omitempty"`
}

// AccuracyStats summarizes accuracy over validated predictions.
type AccuracyStats struct {
	AvgAccuracy float64 `json:"avgAccuracy"`
	MinAccuracy float64 `json:"minAccuracy"`
	MaxAccuracy float64 `json:"maxAccuracy"`
}

// CategoryPredictionStats summarizes predictions of one category.
type CategoryPredictionStats struct {
	Category      string  `json:"category"`
	Count         int64   `json:"count"`
	AvgPredicted  float64 `json:"avgPredicted"`
	AvgConfidence float64 `json:"avgConfidence"`
}

// PredictionAnalytics aggregates the prediction history.
type PredictionAnalytics struct {
	TotalPredictions     int64                     `json:"totalPredictions"`
	ValidatedPredictions int64                     `json:"validatedPredictions"`
	Accuracy             AccuracyStats             `json:"accuracy"`
	CategoryBreakdown    []CategoryPredictionStats `json:"categoryBreakdown"`
	ValidationRate       float64                   `json:"validationRate"`
}

var (
	unknownModelDetails = json.RawMessage(`{"orchestrator_trained":false}`)
	unhealthyDocument   = json.RawMessage(`{"status":"unhealthy"}`)
)

// predictionService handles AI prediction business logic.
type predictionService struct {
	db        *gorm.DB
	predictor Predictor
	now       func() time.Time
}

// NewPredictionService creates a new PredictionServicer.
func NewPredictionService(db *gorm.DB, predictor Predictor) PredictionServicer {
	return &predictionService{db: db, predictor: predictor, now: time.Now}
}

// Train sends every valid expense to the predictor with force_retrain set.
func (s *predictionService) Train(ctx context.Context) (*TrainResult, error) {
	var expenses []models.Expense
	if err := s.db.Order("date ASC").Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if len(expenses) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInsufficientTrainingData, "No expense data found for training")
	}

	data := make([]aiclient.TrainingExpense, 0, len(expenses))
	for _, e := range expenses {
		if e.Amount <= 0 {
			continue
		}
		data = append(data, aiclient.TrainingExpense{
			Subject: orDefault(strings.ToLower(strings.TrimSpace(e.Description)), "general"),
			To:      orDefault(strings.ToLower(strings.TrimSpace(e.To)), "unknown"),
			Date:    format.ISODate(e.Date),
			Amount:  e.Amount,
		})
	}
	if len(data) < MinTrainingRecords {
		return nil, apperrors.ErrInsufficientTrainingData
	}

	started := time.Now()
	raw, err := s.predictor.Train(ctx, data, true)
	if err != nil {
		return nil, aiError(apperrors.ErrAITrainingFailed, err)
	}
	logger.Get().Infow("ai model trained", "records", len(data), "duration_ms", time.Since(started).Milliseconds())

	return &TrainResult{TrainingData: raw, DataSize: len(data)}, nil
}

// Predict asks the predictor for an amount and stores the result.
func (s *predictionService) Predict(ctx context.Context, in PredictInput) (*models.Prediction, error) {
	date := s.dateOrToday(in.Date)
	method := in.Method
	if method == "" {
		method = models.PredictionMethodAuto
	}

	started := time.Now()
	res, err := s.predictor.Predict(ctx, aiclient.PredictRequest{
		Subject: strings.ToLower(strings.TrimSpace(in.Subject)),
		To:      strings.ToLower(strings.TrimSpace(in.To)),
		Date:    format.ISODate(date),
		Method:  string(method),
	})
	if err != nil {
		return nil, aiError(apperrors.ErrPredictionFailed, err)
	}
	logger.Get().Infow("ai prediction received",
		"amount", res.PredictedAmount,
		"method_used", res.MethodUsed,
		"duration_ms", time.Since(started).Milliseconds(),
	)

	factors := res.FactorsUsed
	if factors == nil {
		factors = models.Factors{}
	}
	level := models.SpendingLevel(res.SpendingLevel)
	if !level.Valid() {
		level = models.SpendingLevelMedium
	}
	recs := res.Recommendations
	if recs == nil {
		recs = []string{}
	}

	prediction := &models.Prediction{
		PredictedAmount: res.PredictedAmount,
		Category:        orDefault(factors.Text("category"), "other"),
		Subject:         strings.TrimSpace(in.Subject),
		To:              strings.TrimSpace(in.To),
		PredictionDate:  date,
		Confidence:      clamp01(res.Confidence),
		Method:          NormalizeMethod(res.MethodUsed),
		MethodUsed:      res.MethodUsed,
		Factors:         factors,
		SpendingLevel:   level,
		Recommendations: recs,
	}
	if err := s.db.Create(prediction).Error; err != nil {
		return nil, persistenceError(err)
	}
	return prediction, nil
}

// Compare asks every predictor model for the same input.
func (s *predictionService) Compare(ctx context.Context, in PredictInput) (*aiclient.Comparison, error) {
	cmp, err := s.predictor.Compare(ctx, aiclient.PredictRequest{
		Subject: strings.ToLower(strings.TrimSpace(in.Subject)),
		To:      strings.ToLower(strings.TrimSpace(in.To)),
		Date:    format.ISODate(s.dateOrToday(in.Date)),
	})
	if err != nil {
		return nil, aiError(apperrors.ErrComparisonFailed, err)
	}
	return cmp, nil
}

// History returns stored predictions newest first.
func (s *predictionService) History(category string, page pagination.PageRequest) (*PredictionPage, error) {
	page.Defaults(10)

	base := s.db.Model(&models.Prediction{})
	if category = strings.TrimSpace(category); category != "" {
		base = base.Where("category = ?", category)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var predictions []models.Prediction
	if err := base.Order("created_at DESC, id DESC").Scopes(pagination.Paginate(page)).Find(&predictions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if predictions == nil {
		predictions = []models.Prediction{}
	}
	return &PredictionPage{Predictions: predictions, Meta: pagination.NewMeta(page, total)}, nil
}

// Validate records the actual amount of a prediction and its accuracy. A
// prediction can be validated once.
func (s *predictionService) Validate(id string, actualAmount float64) (*ValidationResult, error) {
	var prediction models.Prediction
	if err := s.db.Where("id = ?", id).First(&prediction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPredictionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if prediction.IsValidated {
		return nil, apperrors.ErrPredictionAlreadyValidated
	}

	accuracy, err := analysis.Accuracy(prediction.PredictedAmount, actualAmount)
	if err != nil {
		return nil, apperrors.Validation("actualAmount", "Valid actual amount is required", actualAmount)
	}

	now := s.now().UTC()
	res := s.db.Model(&models.Prediction{}).
		Where("id = ? AND is_validated = ?", id, false).
		UpdateColumns(map[string]any{
			"actual_amount": actualAmount,
			"accuracy":      accuracy,
			"is_validated":  true,
			"validated_at":  now,
			"updated_at":    now,
		})
	if res.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.ErrPredictionAlreadyValidated
	}

	return &ValidationResult{
		ID:            prediction.ID,
		Predicted:     prediction.PredictedAmount,
		Actual:        actualAmount,
		Accuracy:      analysis.AccuracyPercent(accuracy),
		AccuracyLevel: analysis.AccuracyLevel(accuracy),
	}, nil
}

// Status queries model status and health concurrently. Failures degrade the
// result instead of returning an error.
func (s *predictionService) Status(ctx context.Context) *AIStatus {
	var (
		status    *aiclient.ModelStatus
		health    json.RawMessage
		statusErr error
		healthErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		status, statusErr = s.predictor.ModelStatus(gctx)
		return nil
	})
	g.Go(func() error {
		health, healthErr = s.predictor.Health(gctx)
		return nil
	})
	_ = g.Wait()

	out := &AIStatus{
		Healthy:      healthErr == nil,
		ModelDetails: unknownModelDetails,
		Health:       unhealthyDocument,
	}
	if statusErr == nil {
		out.Trained = status.Trained
		out.ModelDetails = status.Details
	} else {
		out.Errors = append(out.Errors, describeAIError(statusErr))
		logger.Get().Warnw("ai model status unavailable", "error", statusErr)
	}
	if healthErr == nil {
		out.Health = health
	} else {
		out.Errors = append(out.Errors, describeAIError(healthErr))
		logger.Get().Warnw("ai health check failed", "error", healthErr)
	}
	return out
}

// Analytics aggregates counts, accuracy and per-category statistics.
func (s *predictionService) Analytics() (*PredictionAnalytics, error) {
	out := &PredictionAnalytics{CategoryBreakdown: []CategoryPredictionStats{}}

	if err := s.db.Model(&models.Prediction{}).Count(&out.TotalPredictions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Model(&models.Prediction{}).Where("is_validated = ?", true).Count(&out.ValidatedPredictions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var acc struct {
		Avg *float64
		Min *float64
		Max *float64
	}
	err := s.db.Model(&models.Prediction{}).
		Select("AVG(accuracy) AS avg, MIN(accuracy) AS min, MAX(accuracy) AS max").
		Where("is_validated = ? AND accuracy IS NOT NULL", true).
		Scan(&acc).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	out.Accuracy = AccuracyStats{
		AvgAccuracy: deref(acc.Avg),
		MinAccuracy: deref(acc.Min),
		MaxAccuracy: deref(acc.Max),
	}

	var rows []CategoryPredictionStats
	err = s.db.Model(&models.Prediction{}).
		Select("category, COUNT(*) AS count, AVG(predicted_amount) AS avg_predicted, AVG(confidence) AS avg_confidence").
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Category < rows[j].Category
	})
	for i := range rows {
		rows[i].AvgPredicted = analysis.Round2(rows[i].AvgPredicted)
		rows[i].AvgConfidence = analysis.Round2(rows[i].AvgConfidence)
	}
	if rows != nil {
		out.CategoryBreakdown = rows
	}

	if out.TotalPredictions > 0 {
		out.ValidationRate = analysis.Round2(float64(out.ValidatedPredictions) / float64(out.TotalPredictions) * 100)
	}
	return out, nil
}

// NormalizeMethod maps a raw method_used value such as "auto_linear" onto
// the method enumeration by longest matching prefix, defaulting to auto.
func NormalizeMethod(raw string) models.PredictionMethod {
	raw = strings.ToLower(strings.TrimSpace(raw))
	best := models.PredictionMethodAuto
	bestLen := 0
	for _, m := range models.PredictionMethods {
		if strings.HasPrefix(raw, string(m)) && len(m) > bestLen {
			best, bestLen = m, len(m)
		}
	}
	return best
}

func (s *predictionService) dateOrToday(d *time.Time) time.Time {
	if d != nil {
		return d.UTC()
	}
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// aiError maps a predictor failure onto sentinel, reserving
// AI_SERVICE_UNAVAILABLE for refused connections.
func aiError(sentinel *apperrors.AppError, err error) error {
	if errors.Is(err, aiclient.ErrServiceNotRunning) {
		return apperrors.Wrap(apperrors.ErrAIServiceUnavailable, err)
	}
	appErr := apperrors.Wrap(sentinel, err)
	appErr.Message = fmt.Sprintf("%s: %s", sentinel.Message, describeAIError(err))
	return appErr
}

func describeAIError(err error) string {
	var respErr *aiclient.ResponseError
	switch {
	case errors.Is(err, aiclient.ErrServiceNotRunning):
		return aiclient.ErrServiceNotRunning.Error()
	case errors.Is(err, aiclient.ErrTimeout):
		return aiclient.ErrTimeout.Error()
	case errors.As(err, &respErr):
		return respErr.Error()
	}
	return err.Error()
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
