package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "finsight/internal/errors"
	"finsight/internal/models"
	"finsight/internal/services"
)

// --- mock trip service ---

type mockTripService struct {
	listTripsFn  func() ([]models.Trip, error)
	createTripFn func(in services.TripInput) (*models.Trip, error)
	getTripFn    func(id string) (*models.Trip, error)
	updateTripFn func(id string, in services.TripUpdate) (*models.Trip, error)
	deleteTripFn func(id string) error
}

func (m *mockTripService) ListTrips() ([]models.Trip, error) {
	if m.listTripsFn != nil {
		return m.listTripsFn()
	}
	return []models.Trip{}, nil
}

func (m *mockTripService) CreateTrip(in services.TripInput) (*models.Trip, error) {
	if m.createTripFn != nil {
		return m.createTripFn(in)
	}
	return &models.Trip{}, nil
}

func (m *mockTripService) GetTrip(id string) (*models.Trip, error) {
	if m.getTripFn != nil {
		return m.getTripFn(id)
	}
	return &models.Trip{}, nil
}

func (m *mockTripService) UpdateTrip(id string, in services.TripUpdate) (*models.Trip, error) {
	if m.updateTripFn != nil {
		return m.updateTripFn(id, in)
	}
	return &models.Trip{}, nil
}

func (m *mockTripService) DeleteTrip(id string) error {
	if m.deleteTripFn != nil {
		return m.deleteTripFn(id)
	}
	return nil
}

var _ services.TripServicer = (*mockTripService)(nil)

func setupTripRouter(handler *TripHandler) *gin.Engine {
	r := newTestRouter()
	trips := r.Group("/trips")
	trips.GET("", handler.GetTrips)
	trips.POST("", handler.CreateTrip)
	trips.GET("/:id", handler.GetTrip)
	trips.PUT("/:id", handler.UpdateTrip)
	trips.DELETE("/:id", handler.DeleteTrip)
	return r
}

func TestTripHandler_CreateTrip(t *testing.T) {
	t.Run("returns 201 with bare trip", func(t *testing.T) {
		var got services.TripInput
		svc := &mockTripService{
			createTripFn: func(in services.TripInput) (*models.Trip, error) {
				got = in
				return &models.Trip{
					Base:        models.Base{ID: testID},
					Destination: in.Destination,
					StartDate:   in.StartDate,
					EndDate:     in.EndDate,
					Budget:      in.Budget,
				}, nil
			},
		}
		r := setupTripRouter(NewTripHandler(svc))

		rec := doRequest(r, "POST", "/trips",
			`{"destination":"Goa","startDate":"2025-03-01","endDate":"2025-03-05","budget":20000}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["id"] != testID || result["destination"] != "Goa" {
			t.Errorf("unexpected trip %v", result)
		}
		if _, wrapped := result["success"]; wrapped {
			t.Error("expected trip object without envelope")
		}
		if !got.EndDate.Equal(time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)) || got.Budget != 20000 {
			t.Errorf("unexpected input %+v", got)
		}
	})

	t.Run("returns 400 on missing destination", func(t *testing.T) {
		r := setupTripRouter(NewTripHandler(&mockTripService{}))

		rec := doRequest(r, "POST", "/trips", `{"startDate":"2025-03-01","endDate":"2025-03-05","budget":1}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "VALIDATION_ERROR")
		assertErrorField(t, result, "destination")
	})

	t.Run("returns 400 on negative budget", func(t *testing.T) {
		r := setupTripRouter(NewTripHandler(&mockTripService{}))

		rec := doRequest(r, "POST", "/trips",
			`{"destination":"Goa","startDate":"2025-03-01","endDate":"2025-03-05","budget":-1}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorField(t, parseJSON(t, rec), "budget")
	})
}

func TestTripHandler_GetTrips(t *testing.T) {
	svc := &mockTripService{
		listTripsFn: func() ([]models.Trip, error) {
			return []models.Trip{{Destination: "Goa"}, {Destination: "Leh"}}, nil
		},
	}
	r := setupTripRouter(NewTripHandler(svc))

	rec := doRequest(r, "GET", "/trips", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	trips := parseJSONArray(t, rec)
	if len(trips) != 2 || trips[1].(map[string]interface{})["destination"] != "Leh" {
		t.Errorf("unexpected trips %v", trips)
	}
}

func TestTripHandler_GetTrip(t *testing.T) {
	svc := &mockTripService{
		getTripFn: func(id string) (*models.Trip, error) {
			if id == missingID {
				return nil, apperrors.ErrTripNotFound
			}
			return &models.Trip{Base: models.Base{ID: id}}, nil
		},
	}
	r := setupTripRouter(NewTripHandler(svc))

	rec := doRequest(r, "GET", "/trips/"+missingID, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	assertErrorCode(t, parseJSON(t, rec), "TRIP_NOT_FOUND")

	rec = doRequest(r, "GET", "/trips/"+malformedID, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTripHandler_UpdateTrip(t *testing.T) {
	var got services.TripUpdate
	svc := &mockTripService{
		updateTripFn: func(id string, in services.TripUpdate) (*models.Trip, error) {
			got = in
			return &models.Trip{Base: models.Base{ID: id}, Budget: *in.Budget}, nil
		},
	}
	r := setupTripRouter(NewTripHandler(svc))

	rec := doRequest(r, "PUT", "/trips/"+testID, `{"budget":500,"endDate":"2025-03-09"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got.Destination != nil || got.EndDate == nil || got.EndDate.Day() != 9 {
		t.Errorf("unexpected update %+v", got)
	}
	if result := parseJSON(t, rec); result["budget"].(float64) != 500 {
		t.Errorf("unexpected budget %v", result["budget"])
	}

	rec = doRequest(r, "PUT", "/trips/"+testID, `{"destination":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 on empty destination, got %d", rec.Code)
	}
}

func TestTripHandler_DeleteTrip(t *testing.T) {
	svc := &mockTripService{
		deleteTripFn: func(id string) error {
			if id == missingID {
				return apperrors.ErrTripNotFound
			}
			return nil
		},
	}
	r := setupTripRouter(NewTripHandler(svc))

	rec := doRequest(r, "DELETE", "/trips/"+testID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if result := parseJSON(t, rec); result["message"] != "Trip deleted successfully" {
		t.Errorf("unexpected message %v", result["message"])
	}

	rec = doRequest(r, "DELETE", "/trips/"+missingID, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestTripHandler_BlankDestination(t *testing.T) {
	called := false
	svc := &mockTripService{
		createTripFn: func(in services.TripInput) (*models.Trip, error) {
			called = true
			return &models.Trip{}, nil
		},
		updateTripFn: func(id string, in services.TripUpdate) (*models.Trip, error) {
			called = true
			return &models.Trip{}, nil
		},
	}
	r := setupTripRouter(NewTripHandler(svc))

	rec := doRequest(r, "POST", "/trips", `{"destination":"   ","startDate":"2025-03-01","endDate":"2025-03-05"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("create: expected 400, got %d", rec.Code)
	}
	assertErrorField(t, parseJSON(t, rec), "destination")

	rec = doRequest(r, "PUT", "/trips/"+testID, `{"destination":"  "}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("update: expected 400, got %d", rec.Code)
	}
	assertErrorField(t, parseJSON(t, rec), "destination")

	if called {
		t.Error("service must not be called with a blank destination")
	}
}
