package service

import (
	"context"
	"errors"

	"tripplanner-api/internal/apperr"
	"tripplanner-api/internal/models"
	"tripplanner-api/internal/repository"
)

type TripDayService struct {
	days  repository.TripDayRepository
	trips *TripService
}

func NewTripDayService(days repository.TripDayRepository, trips *TripService) *TripDayService {
	return &TripDayService{days: days, trips: trips}
}

type TripDayInput struct {
	Day  int
	Date models.Date
}

func (s *TripDayService) CreateTripDay(ctx context.Context, callerID, tripID int64, in TripDayInput) (*models.TripDay, error) {
	trip, err := s.trips.FindTripWithOwnerValidation(ctx, callerID, tripID)
	if err != nil {
		return nil, err
	}

	day := &models.TripDay{TripID: trip.ID, Day: in.Day, Date: in.Date}
	if err := s.days.Create(ctx, day); err != nil {
		return nil, apperr.Internal(err)
	}
	return day, nil
}

func (s *TripDayService) GetTripDays(ctx context.Context, callerID, tripID int64) ([]models.TripDay, error) {
	if _, err := s.trips.FindTripWithOwnerValidation(ctx, callerID, tripID); err != nil {
		return nil, err
	}
	days, err := s.days.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return days, nil
}

// FindTripDayWithOwnerValidation resolves a day and gates through its trip.
func (s *TripDayService) FindTripDayWithOwnerValidation(ctx context.Context, callerID, dayID int64) (*models.TripDay, error) {
	day, err := s.days.GetByID(ctx, dayID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.New(apperr.TripDayNotFound)
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if _, err := s.trips.FindTripWithOwnerValidation(ctx, callerID, day.TripID); err != nil {
		return nil, err
	}
	return day, nil
}

// DeleteTripDay removes a day and, by cascade, its places. When tripID is
// non-zero the day must belong to that trip.
func (s *TripDayService) DeleteTripDay(ctx context.Context, callerID, tripID, dayID int64) error {
	day, err := s.FindTripDayWithOwnerValidation(ctx, callerID, dayID)
	if err != nil {
		return err
	}
	if tripID != 0 && day.TripID != tripID {
		return apperr.New(apperr.TripDayNotFound)
	}
	if err := s.days.Delete(ctx, dayID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.New(apperr.TripDayNotFound)
		}
		return apperr.Internal(err)
	}
	return nil
}
