package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "finsight/internal/errors"
	"finsight/internal/models"
)

// tripService handles trip-related business logic.
type tripService struct {
	db *gorm.DB
}

// NewTripService creates a new TripServicer.
func NewTripService(db *gorm.DB) TripServicer {
	return &tripService{db: db}
}

// ListTrips returns every trip, latest start first.
func (s *tripService) ListTrips() ([]models.Trip, error) {
	var trips []models.Trip
	if err := s.db.Order("start_date DESC, id DESC").Find(&trips).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if trips == nil {
		trips = []models.Trip{}
	}
	return trips, nil
}

// CreateTrip stores a new trip. Start after end is accepted.
func (s *tripService) CreateTrip(in TripInput) (*models.Trip, error) {
	trip := &models.Trip{
		Destination: strings.TrimSpace(in.Destination),
		StartDate:   in.StartDate.UTC(),
		EndDate:     in.EndDate.UTC(),
		Budget:      in.Budget,
		Notes:       strings.TrimSpace(in.Notes),
	}
	if err := s.db.Create(trip).Error; err != nil {
		return nil, persistenceError(err)
	}
	return trip, nil
}

// GetTrip returns a trip by ID.
func (s *tripService) GetTrip(id string) (*models.Trip, error) {
	var trip models.Trip
	if err := s.db.Where("id = ?", id).First(&trip).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTripNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &trip, nil
}

// UpdateTrip applies the non-nil fields of in.
func (s *tripService) UpdateTrip(id string, in TripUpdate) (*models.Trip, error) {
	trip, err := s.GetTrip(id)
	if err != nil {
		return nil, err
	}

	if in.Destination != nil {
		trip.Destination = strings.TrimSpace(*in.Destination)
	}
	if in.StartDate != nil {
		trip.StartDate = in.StartDate.UTC()
	}
	if in.EndDate != nil {
		trip.EndDate = in.EndDate.UTC()
	}
	if in.Budget != nil {
		trip.Budget = *in.Budget
	}
	if in.Notes != nil {
		trip.Notes = strings.TrimSpace(*in.Notes)
	}

	if err := s.db.Save(trip).Error; err != nil {
		return nil, persistenceError(err)
	}
	return trip, nil
}

// DeleteTrip removes a trip.
func (s *tripService) DeleteTrip(id string) error {
	res := s.db.Where("id = ?", id).Delete(&models.Trip{})
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTripNotFound
	}
	return nil
}
