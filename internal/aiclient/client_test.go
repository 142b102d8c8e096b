package aiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL+"/", server.Client(), DefaultTimeouts())
}

func assertJSONEqual(t *testing.T, want string, got []byte) {
	t.Helper()
	var w, g any
	if err := json.Unmarshal([]byte(want), &w); err != nil {
		t.Fatalf("invalid expected JSON: %v", err)
	}
	if err := json.Unmarshal(got, &g); err != nil {
		t.Fatalf("invalid JSON %s: %v", got, err)
	}
	if !reflect.DeepEqual(w, g) {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestPredict(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/predict" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}

		var req PredictRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Subject != "lunch" || req.Method != "auto" {
			t.Errorf("unexpected request body %+v", req)
		}

		_, _ = w.Write([]byte(`{
			"predicted_amount": 245.5,
			"confidence": 0.82,
			"method_used": "auto_linear",
			"factors_used": {"category": "food", "person_avg": 230},
			"spending_level": "medium",
			"recommendations": ["Keep it up"]
		}`))
	})

	pred, err := client.Predict(context.Background(), PredictRequest{Subject: "lunch", To: "cafe", Date: "2025-01-15", Method: "auto"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pred.PredictedAmount != 245.5 || pred.MethodUsed != "auto_linear" {
		t.Errorf("unexpected prediction %+v", pred)
	}
	if got := pred.FactorsUsed.Text("category"); got != "food" {
		t.Errorf("expected category food, got %q", got)
	}
	if !reflect.DeepEqual(pred.Recommendations, []string{"Keep it up"}) {
		t.Errorf("unexpected recommendations %v", pred.Recommendations)
	}
}

func TestErrorInSuccessBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error": "Models not trained"}`))
	})

	_, err := client.Predict(context.Background(), PredictRequest{Subject: "a", To: "b"})
	var respErr *ResponseError
	if !errors.As(err, &respErr) {
		t.Fatalf("expected *ResponseError, got %v", err)
	}
	if respErr.StatusCode != http.StatusOK || respErr.Message != "Models not trained" {
		t.Errorf("unexpected error %+v", respErr)
	}
}

func TestNon2xx(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "No expense data provided"}`))
	})

	_, err := client.Train(context.Background(), nil, true)
	var respErr *ResponseError
	if !errors.As(err, &respErr) {
		t.Fatalf("expected *ResponseError, got %v", err)
	}
	if respErr.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", respErr.StatusCode)
	}
	if err.Error() != "No expense data provided" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestTrain(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				Expenses     []TrainingExpense `json:"expenses"`
				ForceRetrain bool              `json:"force_retrain"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Errorf("decode request: %v", err)
			}
			if !body.ForceRetrain || len(body.Expenses) != 3 {
				t.Errorf("unexpected body %+v", body)
			}
			_, _ = w.Write([]byte(`{"success": true, "models_trained": 4}`))
		})

		expenses := []TrainingExpense{
			{Subject: "a", To: "x", Date: "2025-01-01", Amount: 1},
			{Subject: "b", To: "y", Date: "2025-01-02", Amount: 2},
			{Subject: "c", To: "z", Date: "2025-01-03", Amount: 3},
		}
		raw, err := client.Train(context.Background(), expenses, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertJSONEqual(t, `{"success": true, "models_trained": 4}`, raw)
	})

	t.Run("unsuccessful report", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"success": false, "message": "not enough variety"}`))
		})
		_, err := client.Train(context.Background(), nil, true)
		if err == nil || err.Error() != "not enough variety" {
			t.Errorf("expected training failure, got %v", err)
		}
	})
}

func TestCompare(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/predict/compare" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if _, ok := body["method"]; ok {
			t.Error("compare must not send a method")
		}

		_, _ = w.Write([]byte(`{
			"input": {"subject": "lunch", "to": "cafe", "date": "2025-01-15"},
			"timestamp": "2025-01-15T10:00:00",
			"predictions": {"linear": {"predicted_amount": 200}, "ensemble": {"predicted_amount": 240}},
			"statistics": {"min_prediction": 200, "max_prediction": 240, "mean_prediction": 220, "std_prediction": 20, "variance": 40, "models_count": 2},
			"recommendation": {"recommended_method": "ensemble"}
		}`))
	})

	cmp, err := client.Compare(context.Background(), PredictRequest{Subject: "lunch", To: "cafe", Date: "2025-01-15", Method: "linear"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cmp.Predictions) != 2 {
		t.Errorf("expected 2 predictions, got %d", len(cmp.Predictions))
	}
	if cmp.Statistics.ModelsCount != 2 || cmp.Statistics.Variance != 40 {
		t.Errorf("unexpected statistics %+v", cmp.Statistics)
	}
	if got := cmp.Recommendation.Text("recommended_method"); got != "ensemble" {
		t.Errorf("expected ensemble recommendation, got %q", got)
	}
}

func TestModelStatusAndHealth(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/models/status":
			_, _ = w.Write([]byte(`{"orchestrator_trained": true, "models": {"linear": true}}`))
		case "/health":
			_, _ = w.Write([]byte(`{"status": "healthy"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	status, err := client.ModelStatus(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !status.Trained || !strings.Contains(string(status.Details), "linear") {
		t.Errorf("unexpected status %+v", status)
	}

	health, err := client.Health(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertJSONEqual(t, `{"status": "healthy"}`, health)
}

func TestConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := New(url, nil, DefaultTimeouts())
	if _, err := client.Health(context.Background()); !errors.Is(err, ErrServiceNotRunning) {
		t.Errorf("expected ErrServiceNotRunning, got %v", err)
	}
}

func TestTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(server.Close)
	t.Cleanup(func() { close(release) })

	timeouts := DefaultTimeouts()
	timeouts.Status = 50 * time.Millisecond
	client := New(server.URL, server.Client(), timeouts)

	if _, err := client.Health(context.Background()); !errors.Is(err, ErrTimeout) {
		t.Errorf("expected timeout, got %v", err)
	}
}
