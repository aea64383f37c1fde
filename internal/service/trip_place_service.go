package service

import (
	"context"
	"errors"

	"tripplanner-api/internal/apperr"
	"tripplanner-api/internal/models"
	"tripplanner-api/internal/repository"

	"go.uber.org/zap"
)

type TripPlaceService struct {
	places repository.TripPlaceRepository
	days   *TripDayService
	logger *zap.Logger
}

func NewTripPlaceService(places repository.TripPlaceRepository, days *TripDayService, logger *zap.Logger) *TripPlaceService {
	return &TripPlaceService{places: places, days: days, logger: logger}
}

type TripPlaceInput struct {
	PlaceID    *string
	PlaceName  string
	Address    string
	Latitude   float64
	Longitude  float64
	Memo       *string
	VisitTime  models.TimeOfDay
	VisitOrder int
}

func (in TripPlaceInput) apply(place *models.TripPlace) {
	place.PlaceID = in.PlaceID
	place.PlaceName = in.PlaceName
	place.Address = in.Address
	place.Latitude = in.Latitude
	place.Longitude = in.Longitude
	place.Memo = in.Memo
	place.VisitTime = in.VisitTime
	place.VisitOrder = in.VisitOrder
}

// CreateTripPlace inserts with the caller's visit order; a taken order is
// reported by the unique index, not checked up front.
func (s *TripPlaceService) CreateTripPlace(ctx context.Context, callerID, dayID int64, in TripPlaceInput) (*models.TripPlace, error) {
	day, err := s.days.FindTripDayWithOwnerValidation(ctx, callerID, dayID)
	if err != nil {
		return nil, err
	}

	place := &models.TripPlace{TripDayID: day.ID}
	in.apply(place)
	if err := s.places.Create(ctx, place); err != nil {
		return nil, placeWriteError(err)
	}
	return place, nil
}

func (s *TripPlaceService) GetTripPlaces(ctx context.Context, callerID, dayID int64) ([]models.TripPlace, error) {
	if _, err := s.days.FindTripDayWithOwnerValidation(ctx, callerID, dayID); err != nil {
		return nil, err
	}
	places, err := s.places.ListByTripDay(ctx, dayID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return places, nil
}

// findPlace resolves a place and gates through its day and trip. When dayID
// is non-zero the place must belong to that day.
func (s *TripPlaceService) findPlace(ctx context.Context, callerID, dayID, placeID int64) (*models.TripPlace, error) {
	place, err := s.places.GetByID(ctx, placeID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.New(apperr.TripPlaceNotFound)
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if _, err := s.days.FindTripDayWithOwnerValidation(ctx, callerID, place.TripDayID); err != nil {
		return nil, err
	}
	if dayID != 0 && place.TripDayID != dayID {
		return nil, apperr.New(apperr.TripPlaceNotFound)
	}
	return place, nil
}

// UpdateTripPlace overwrites every field including visit order. It does not
// shift siblings; a clash surfaces as DuplicateVisitOrder.
func (s *TripPlaceService) UpdateTripPlace(ctx context.Context, callerID, dayID, placeID int64, in TripPlaceInput) (*models.TripPlace, error) {
	place, err := s.findPlace(ctx, callerID, dayID, placeID)
	if err != nil {
		return nil, err
	}
	in.apply(place)
	if err := s.places.Update(ctx, place); err != nil {
		return nil, placeWriteError(err)
	}
	return place, nil
}

// UpdateVisitOrder moves a place within its day. Asking for the current
// order returns the place untouched without any write.
func (s *TripPlaceService) UpdateVisitOrder(ctx context.Context, callerID, dayID, placeID int64, newOrder int) (*models.TripPlace, error) {
	if newOrder < 1 {
		return nil, apperr.New(apperr.InvalidVisitOrder)
	}

	place, err := s.findPlace(ctx, callerID, dayID, placeID)
	if err != nil {
		return nil, err
	}
	if place.VisitOrder == newOrder {
		return place, nil
	}

	err = s.places.Reorder(ctx, place.TripDayID, func(places []models.TripPlace) ([]repository.OrderChange, error) {
		return planVisitOrder(places, placeID, newOrder)
	})
	if err != nil {
		return nil, placeWriteError(err)
	}

	s.logger.Debug("visit order updated",
		zap.Int64("place_id", placeID),
		zap.Int("from", place.VisitOrder),
		zap.Int("to", newOrder),
	)

	updated, err := s.places.GetByID(ctx, placeID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return updated, nil
}

// DeleteTripPlace leaves a gap in the day's visit orders.
func (s *TripPlaceService) DeleteTripPlace(ctx context.Context, callerID, dayID, placeID int64) error {
	if _, err := s.findPlace(ctx, callerID, dayID, placeID); err != nil {
		return err
	}
	if err := s.places.Delete(ctx, placeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.New(apperr.TripPlaceNotFound)
		}
		return apperr.Internal(err)
	}
	return nil
}

func placeWriteError(err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		return apperr.New(apperr.DuplicateVisitOrder)
	case errors.Is(err, repository.ErrNotFound):
		return apperr.New(apperr.TripPlaceNotFound)
	default:
		return apperr.Internal(err)
	}
}
