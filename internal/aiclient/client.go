// Package aiclient provides an HTTP client for the external AI expense
// predictor.
package aiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"syscall"
	"time"

	"finsight/internal/models"
)

const maxBodySize = 4 << 20

var (
	// ErrServiceNotRunning is returned when the predictor refuses the connection.
	ErrServiceNotRunning = errors.New("AI service is not running")
	// ErrTimeout is returned when a call exceeds its deadline.
	ErrTimeout = errors.New("AI service request timed out")
)

// ResponseError is a failure reported by the predictor, either as a non-2xx
// status or as an "error" field in a 2xx body.
type ResponseError struct {
	StatusCode int
	Message    string
}

func (e *ResponseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return e.Message
}

// Timeouts bounds each predictor endpoint.
type Timeouts struct {
	Train   time.Duration
	Predict time.Duration
	Compare time.Duration
	Status  time.Duration
}

// DefaultTimeouts returns 30s for training, 10s for prediction, 15s for
// comparison and 5s for status and health.
func DefaultTimeouts() Timeouts {
	return Timeouts{
		Train:   30 * time.Second,
		Predict: 10 * time.Second,
		Compare: 15 * time.Second,
		Status:  5 * time.Second,
	}
}

// TrainingExpense is one historical expense sent for training.
type TrainingExpense struct {
	Subject string  `json:"subject"`
	To      string  `json:"to"`
	Date    string  `json:"date"`
	Amount  float64 `json:"amount"`
}

// PredictRequest asks for the expected amount of an expense.
type PredictRequest struct {
	Subject string `json:"subject"`
	To      string `json:"to"`
	Date    string `json:"date"`
	Method  string `json:"method,omitempty"`
}

// Prediction is the predictor's answer to a PredictRequest.
type Prediction struct {
	PredictedAmount float64        `json:"predicted_amount"`
	Confidence      float64        `json:"confidence"`
	MethodUsed      string         `json:"method_used"`
	FactorsUsed     models.Factors `json:"factors_used"`
	SpendingLevel   string         `json:"spending_level"`
	Recommendations []string       `json:"recommendations"`
}

// ComparisonStats summarizes the per-model predictions of a comparison.
type ComparisonStats struct {
	MinPrediction  float64 `json:"min_prediction"`
	MaxPrediction  float64 `json:"max_prediction"`
	MeanPrediction float64 `json:"mean_prediction"`
	StdPrediction  float64 `json:"std_prediction"`
	Variance       float64 `json:"variance"`
	ModelsCount    int     `json:"models_count"`
}

// Comparison holds the predictions of every model for one input.
type Comparison struct {
	Input          PredictRequest            `json:"input"`
	Timestamp      string                    `json:"timestamp"`
	Predictions    map[string]models.Factors `json:"predictions"`
	Statistics     ComparisonStats           `json:"statistics"`
	Recommendation models.Factors            `json:"recommendation,omitempty"`
}

// ModelStatus reports whether the predictor has trained models.
type ModelStatus struct {
	Trained bool
	Details json.RawMessage
}

// Client communicates with the AI predictor.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeouts   Timeouts
}

// New creates a predictor client. A nil httpClient uses http.DefaultClient.
func New(baseURL string, httpClient *http.Client, timeouts Timeouts) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		timeouts:   timeouts,
	}
}

// BaseURL returns the predictor base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Train submits expenses for (re)training and returns the predictor's
// training report verbatim.
func (c *Client) Train(ctx context.Context, expenses []TrainingExpense, forceRetrain bool) (json.RawMessage, error) {
	body := struct {
		Expenses     []TrainingExpense `json:"expenses"`
		ForceRetrain bool              `json:"force_retrain"`
	}{Expenses: expenses, ForceRetrain: forceRetrain}

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPost, "/train", body, c.timeouts.Train, &raw); err != nil {
		return nil, err
	}

	var report struct {
		Success *bool  `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &report); err == nil && report.Success != nil && !*report.Success {
		msg := report.Message
		if msg == "" {
			msg = "training was not successful"
		}
		return nil, &ResponseError{StatusCode: http.StatusOK, Message: msg}
	}
	return raw, nil
}

// Predict asks the predictor for a single prediction.
func (c *Client) Predict(ctx context.Context, req PredictRequest) (*Prediction, error) {
	var out Prediction
	if err := c.do(ctx, http.MethodPost, "/predict", req, c.timeouts.Predict, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Compare asks every model for a prediction of the same input.
func (c *Client) Compare(ctx context.Context, req PredictRequest) (*Comparison, error) {
	req.Method = ""
	var out Comparison
	if err := c.do(ctx, http.MethodPost, "/predict/compare", req, c.timeouts.Compare, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ModelStatus reads the model registry status.
func (c *Client) ModelStatus(ctx context.Context) (*ModelStatus, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/models/status", nil, c.timeouts.Status, &raw); err != nil {
		return nil, err
	}

	var flags struct {
		OrchestratorTrained bool `json:"orchestrator_trained"`
	}
	if err := json.Unmarshal(raw, &flags); err != nil {
		return nil, fmt.Errorf("decoding model status: %w", err)
	}
	return &ModelStatus{Trained: flags.OrchestratorTrained, Details: raw}, nil
}

// Health reads the predictor health document.
func (c *Client) Health(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/health", nil, c.timeouts.Status, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) do(ctx context.Context, method, path string, in any, timeout time.Duration, out any) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var reqBody io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshaling %s request: %w", path, err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		switch {
		case errors.Is(err, syscall.ECONNREFUSED):
			return fmt.Errorf("%s: %w", path, ErrServiceNotRunning)
		case errors.Is(err, context.DeadlineExceeded):
			return fmt.Errorf("%s: %w", path, ErrTimeout)
		}
		return fmt.Errorf("calling %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("reading %s response: %w", path, err)
	}

	var envelope struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(data, &envelope)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ResponseError{StatusCode: resp.StatusCode, Message: envelope.Error}
	}
	if envelope.Error != "" {
		return &ResponseError{StatusCode: resp.StatusCode, Message: envelope.Error}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}
