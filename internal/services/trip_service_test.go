package services

import (
	"testing"

	"finsight/internal/testutil"
)

func TestTripService(t *testing.T) {
	t.Run("create_and_list_latest_first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewTripService(db)

		_, err := svc.CreateTrip(TripInput{Destination: " Goa ", StartDate: testutil.Date(2025, 3, 1), EndDate: testutil.Date(2025, 3, 6), Budget: 20000})
		testutil.AssertNoError(t, err)
		_, err = svc.CreateTrip(TripInput{Destination: "Manali", StartDate: testutil.Date(2025, 6, 1), EndDate: testutil.Date(2025, 5, 28)})
		testutil.AssertNoError(t, err)

		trips, err := svc.ListTrips()
		testutil.AssertNoError(t, err)
		if len(trips) != 2 {
			t.Fatalf("expected 2 trips, got %d", len(trips))
		}
		if trips[0].Destination != "Manali" || trips[1].Destination != "Goa" {
			t.Errorf("unexpected order %s, %s", trips[0].Destination, trips[1].Destination)
		}
	})

	t.Run("negative_budget", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewTripService(db)

		_, err := svc.CreateTrip(TripInput{Destination: "Goa", StartDate: testutil.Date(2025, 3, 1), EndDate: testutil.Date(2025, 3, 2), Budget: -1})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewTripService(db)
		trip := testutil.CreateTestTrip(t, db, "Goa", testutil.Date(2025, 3, 1))

		budget := 9000.0
		updated, err := svc.UpdateTrip(trip.ID, TripUpdate{Budget: &budget})
		testutil.AssertNoError(t, err)
		if updated.Budget != 9000 || updated.Destination != "Goa" {
			t.Errorf("unexpected trip %+v", updated)
		}
	})

	t.Run("delete", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewTripService(db)
		trip := testutil.CreateTestTrip(t, db, "Goa", testutil.Date(2025, 3, 1))

		testutil.AssertNoError(t, svc.DeleteTrip(trip.ID))
		testutil.AssertAppError(t, svc.DeleteTrip(trip.ID), "TRIP_NOT_FOUND")
		_, err := svc.GetTrip(trip.ID)
		testutil.AssertAppError(t, err, "TRIP_NOT_FOUND")
	})
}
