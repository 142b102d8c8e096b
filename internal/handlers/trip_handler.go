package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "finsight/internal/errors"
	"finsight/internal/services"
)

// TripHandler handles trip-related requests.
type TripHandler struct {
	tripService services.TripServicer
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(tripService services.TripServicer) *TripHandler {
	return &TripHandler{tripService: tripService}
}

// CreateTripRequest represents the request payload for creating a trip
type CreateTripRequest struct {
	Destination string  `json:"destination" binding:"required,max=200"`
	StartDate   string  `json:"startDate" binding:"required,ymd_date"`
	EndDate     string  `json:"endDate" binding:"required,ymd_date"`
	Budget      float64 `json:"budget" binding:"gte=0"`
	Notes       string  `json:"notes" binding:"max=1000"`
}

// UpdateTripRequest represents the request payload for updating a trip
type UpdateTripRequest struct {
	Destination *string  `json:"destination" binding:"omitempty,min=1,max=200"`
	StartDate   *string  `json:"startDate" binding:"omitempty,ymd_date"`
	EndDate     *string  `json:"endDate" binding:"omitempty,ymd_date"`
	Budget      *float64 `json:"budget" binding:"omitempty,gte=0"`
	Notes       *string  `json:"notes" binding:"omitempty,max=1000"`
}

// GetTrips handles listing trips
// @Summary     List trips
// @Description Get all trips, latest start date first
// @Tags        trips
// @Produce     json
// @Success     200 {array}  models.Trip "Trips"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips [get]
func (h *TripHandler) GetTrips(c *gin.Context) {
	trips, err := h.tripService.ListTrips()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

// CreateTrip handles the creation of a new trip
// @Summary     Create a trip
// @Tags        trips
// @Accept      json
// @Produce     json
// @Param       request body CreateTripRequest true "Trip details"
// @Success     201 {object} models.Trip "Trip created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips [post]
func (h *TripHandler) CreateTrip(c *gin.Context) {
	var req CreateTripRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}
	if strings.TrimSpace(req.Destination) == "" {
		respondWithError(c, apperrors.Validation("destination", "destination is required", req.Destination))
		return
	}

	start, err := parseDate("startDate", req.StartDate)
	if err != nil {
		respondWithError(c, err)
		return
	}
	end, err := parseDate("endDate", req.EndDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	trip, err := h.tripService.CreateTrip(services.TripInput{
		Destination: req.Destination,
		StartDate:   start,
		EndDate:     end,
		Budget:      req.Budget,
		Notes:       req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, trip)
}

// GetTrip handles fetching a single trip
// @Summary     Get a trip
// @Tags        trips
// @Produce     json
// @Param       id path string true "Trip ID"
// @Success     200 {object} models.Trip "Trip"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Trip not found"
// @Router      /trips/{id} [get]
func (h *TripHandler) GetTrip(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	trip, err := h.tripService.GetTrip(id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// UpdateTrip handles partial updates of a trip
// @Summary     Update a trip
// @Tags        trips
// @Accept      json
// @Produce     json
// @Param       id      path string            true "Trip ID"
// @Param       request body UpdateTripRequest true "Fields to update"
// @Success     200 {object} models.Trip "Trip updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Trip not found"
// @Router      /trips/{id} [put]
func (h *TripHandler) UpdateTrip(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTripRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}
	if req.Destination != nil && strings.TrimSpace(*req.Destination) == "" {
		respondWithError(c, apperrors.Validation("destination", "destination cannot be empty", *req.Destination))
		return
	}

	start, err := parseOptionalDate("startDate", req.StartDate)
	if err != nil {
		respondWithError(c, err)
		return
	}
	end, err := parseOptionalDate("endDate", req.EndDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	trip, err := h.tripService.UpdateTrip(id, services.TripUpdate{
		Destination: req.Destination,
		StartDate:   start,
		EndDate:     end,
		Budget:      req.Budget,
		Notes:       req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// DeleteTrip handles deleting a trip
// @Summary     Delete a trip
// @Tags        trips
// @Produce     json
// @Param       id path string true "Trip ID"
// @Success     200 {object} MessageResponse "Trip deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Trip not found"
// @Router      /trips/{id} [delete]
func (h *TripHandler) DeleteTrip(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.tripService.DeleteTrip(id); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "Trip deleted successfully"})
}
