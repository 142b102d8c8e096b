package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "finsight/internal/errors"
	"finsight/internal/models"
	"finsight/internal/pagination"
	"finsight/internal/services"
)

// PredictionHandler handles AI prediction requests.
type PredictionHandler struct {
	predictionService services.PredictionServicer
}

// NewPredictionHandler creates a new PredictionHandler.
func NewPredictionHandler(predictionService services.PredictionServicer) *PredictionHandler {
	return &PredictionHandler{predictionService: predictionService}
}

// PredictRequest represents the request payload for a prediction
type PredictRequest struct {
	Subject string                  `json:"subject" binding:"required,max=500"`
	To      string                  `json:"to" binding:"required,max=200"`
	Date    *string                 `json:"date" binding:"omitempty,ymd_date"`
	Method  models.PredictionMethod `json:"method" binding:"omitempty,prediction_method"`
}

// CompareRequest represents the request payload for a model comparison
type CompareRequest struct {
	Subject string  `json:"subject" binding:"required,max=500"`
	To      string  `json:"to" binding:"required,max=200"`
	Date    *string `json:"date" binding:"omitempty,ymd_date"`
}

// ValidatePredictionRequest carries the observed amount of a prediction.
type ValidatePredictionRequest struct {
	ActualAmount float64 `json:"actualAmount" binding:"required,gt=0"`
}

// PredictionResult is a stored prediction as returned by /predict.
type PredictionResult struct {
	ID              string               `json:"id"`
	PredictedAmount float64              `json:"predictedAmount"`
	Confidence      float64              `json:"confidence"`
	Category        string               `json:"category"`
	Method          string               `json:"method"`
	SpendingLevel   models.SpendingLevel `json:"spendingLevel"`
	Recommendations []string             `json:"recommendations"`
	Factors         models.Factors       `json:"factors"`
}

// HistoryPagination describes a page of prediction history.
type HistoryPagination struct {
	Total       int64 `json:"total"`
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	Pages       int   `json:"pages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// TrainModel handles training the AI model on stored expenses
// @Summary     Train the AI model
// @Description Send every valid expense to the AI service and retrain its models
// @Tags        predictions
// @Produce     json
// @Success     200 {object} map[string]interface{} "Training result"
// @Failure     400 {object} ErrorResponse "Insufficient training data"
// @Failure     500 {object} ErrorResponse "AI service unavailable or training failed"
// @Router      /predictions/train [post]
func (h *PredictionHandler) TrainModel(c *gin.Context) {
	result, err := h.predictionService.Train(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"message":        "AI model trained successfully",
		"trainingResult": result,
	})
}

// Predict handles a prediction request
// @Summary     Predict an expense amount
// @Tags        predictions
// @Accept      json
// @Produce     json
// @Param       request body PredictRequest true "Prediction input"
// @Success     200 {object} map[string]interface{} "Prediction"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "AI service unavailable or prediction failed"
// @Router      /predictions/predict [post]
func (h *PredictionHandler) Predict(c *gin.Context) {
	var req PredictRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}
	if err := requireSubjectAndTo(req.Subject, req.To); err != nil {
		respondWithError(c, err)
		return
	}

	date, err := parseOptionalDate("date", req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	p, err := h.predictionService.Predict(c.Request.Context(), services.PredictInput{
		Subject: req.Subject,
		To:      req.To,
		Date:    date,
		Method:  req.Method,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"prediction": PredictionResult{
			ID:              p.ID,
			PredictedAmount: p.PredictedAmount,
			Confidence:      p.Confidence,
			Category:        p.Category,
			Method:          p.MethodUsed,
			SpendingLevel:   p.SpendingLevel,
			Recommendations: p.Recommendations,
			Factors:         p.Factors,
		},
		"message": "Prediction generated successfully",
	})
}

// ComparePredictions handles comparing every AI model on one input
// @Summary     Compare prediction models
// @Tags        predictions
// @Accept      json
// @Produce     json
// @Param       request body CompareRequest true "Comparison input"
// @Success     200 {object} map[string]interface{} "Comparison"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "AI service unavailable or comparison failed"
// @Router      /predictions/compare [post]
func (h *PredictionHandler) ComparePredictions(c *gin.Context) {
	var req CompareRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}
	if err := requireSubjectAndTo(req.Subject, req.To); err != nil {
		respondWithError(c, err)
		return
	}

	date, err := parseOptionalDate("date", req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	cmp, err := h.predictionService.Compare(c.Request.Context(), services.PredictInput{
		Subject: req.Subject,
		To:      req.To,
		Date:    date,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"comparison": cmp,
		"message":    "Model comparison completed successfully",
	})
}

// GetPredictionHistory handles listing stored predictions
// @Summary     Prediction history
// @Tags        predictions
// @Produce     json
// @Param       page     query int    false "Page number (default 1)"
// @Param       limit    query int    false "Items per page (default 10)"
// @Param       category query string false "Filter by category"
// @Success     200 {object} map[string]interface{} "Predictions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /predictions/history [get]
func (h *PredictionHandler) GetPredictionHistory(c *gin.Context) {
	var page pagination.PageRequest
	if err := bindQuery(c, &page); err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.predictionService.History(c.Query("category"), page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"predictions": result.Predictions,
		"pagination": HistoryPagination{
			Total:       result.Meta.TotalItems,
			Page:        result.Meta.CurrentPage,
			Limit:       result.Meta.Limit,
			Pages:       result.Meta.TotalPages,
			HasNextPage: result.Meta.HasNextPage,
			HasPrevPage: result.Meta.HasPrevPage,
		},
	})
}

// ValidatePrediction handles recording the actual amount of a prediction
// @Summary     Validate a prediction
// @Description Record the actual amount and compute accuracy. A prediction can be validated once.
// @Tags        predictions
// @Accept      json
// @Produce     json
// @Param       id      path string                    true "Prediction ID"
// @Param       request body ValidatePredictionRequest true "Actual amount"
// @Success     200 {object} map[string]interface{} "Validation result"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Prediction not found"
// @Failure     409 {object} ErrorResponse "Prediction already validated"
// @Router      /predictions/validate/{id} [put]
func (h *PredictionHandler) ValidatePrediction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ValidatePredictionRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, apperrors.Validation("actualAmount", "Valid actual amount is required", nil))
		return
	}

	result, err := h.predictionService.Validate(id, req.ActualAmount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Prediction validated successfully",
		"prediction": result,
	})
}

// GetAIStatus handles reporting the AI service status
// @Summary     AI service status
// @Description Model status and health of the AI service. Failures are reported as unhealthy.
// @Tags        predictions
// @Produce     json
// @Success     200 {object} map[string]interface{} "AI status"
// @Router      /predictions/status [get]
func (h *PredictionHandler) GetAIStatus(c *gin.Context) {
	status := h.predictionService.Status(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"success": true, "aiService": status})
}

// GetPredictionAnalytics handles aggregate prediction statistics
// @Summary     Prediction analytics
// @Tags        predictions
// @Produce     json
// @Success     200 {object} map[string]interface{} "Analytics"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /predictions/analytics [get]
func (h *PredictionHandler) GetPredictionAnalytics(c *gin.Context) {
	analytics, err := h.predictionService.Analytics()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "analytics": analytics})
}

// requireSubjectAndTo rejects blank subject or payee values.
func requireSubjectAndTo(subject, to string) error {
	if strings.TrimSpace(subject) == "" {
		return apperrors.Validation("subject", "subject is required", subject)
	}
	if strings.TrimSpace(to) == "" {
		return apperrors.Validation("to", "to is required", to)
	}
	return nil
}
