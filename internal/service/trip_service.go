package service

import (
	"context"
	"errors"

	"tripplanner-api/internal/apperr"
	"tripplanner-api/internal/models"
	"tripplanner-api/internal/repository"

	"go.uber.org/zap"
)

// TripService owns trips and the ownership gate every nested resource goes
// through.
type TripService struct {
	trips   repository.TripRepository
	members repository.MemberRepository
	logger  *zap.Logger
}

func NewTripService(trips repository.TripRepository, members repository.MemberRepository, logger *zap.Logger) *TripService {
	return &TripService{trips: trips, members: members, logger: logger}
}

type TripInput struct {
	Title     string
	StartDate models.Date
	EndDate   models.Date
	Region    *string
	RegionLat *float64
	RegionLng *float64
}

// FindTripWithOwnerValidation loads a trip and checks callerID owns it.
// A missing trip is TripNotFound; someone else's trip is TripAccessDenied.
func (s *TripService) FindTripWithOwnerValidation(ctx context.Context, callerID, tripID int64) (*models.Trip, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.New(apperr.TripNotFound)
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if trip.MemberID != callerID {
		s.logger.Warn("trip access denied",
			zap.Int64("trip_id", tripID),
			zap.Int64("caller_id", callerID),
		)
		return nil, apperr.New(apperr.TripAccessDenied)
	}
	return trip, nil
}

func (s *TripService) CreateTrip(ctx context.Context, memberID int64, in TripInput) (*models.Trip, error) {
	if _, err := s.members.GetByID(ctx, memberID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.MemberNotFound)
		}
		return nil, apperr.Internal(err)
	}

	trip := &models.Trip{MemberID: memberID}
	in.apply(trip)
	if err := s.trips.Create(ctx, trip); err != nil {
		return nil, apperr.Internal(err)
	}
	return trip, nil
}

func (s *TripService) GetTrips(ctx context.Context, memberID int64) ([]models.Trip, error) {
	trips, err := s.trips.ListByMember(ctx, memberID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return trips, nil
}

func (s *TripService) GetTrip(ctx context.Context, callerID, tripID int64) (*models.Trip, error) {
	return s.FindTripWithOwnerValidation(ctx, callerID, tripID)
}

func (s *TripService) ModifyTrip(ctx context.Context, callerID, tripID int64, in TripInput) (*models.Trip, error) {
	trip, err := s.FindTripWithOwnerValidation(ctx, callerID, tripID)
	if err != nil {
		return nil, err
	}
	in.apply(trip)
	if err := s.trips.Update(ctx, trip); err != nil {
		return nil, apperr.Internal(err)
	}
	return trip, nil
}

func (s *TripService) DeleteTrip(ctx context.Context, callerID, tripID int64) error {
	if _, err := s.FindTripWithOwnerValidation(ctx, callerID, tripID); err != nil {
		return err
	}
	if err := s.trips.Delete(ctx, tripID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.New(apperr.TripNotFound)
		}
		return apperr.Internal(err)
	}
	s.logger.Info("trip deleted", zap.Int64("trip_id", tripID), zap.Int64("member_id", callerID))
	return nil
}

func (in TripInput) apply(trip *models.Trip) {
	trip.Title = in.Title
	trip.StartDate = in.StartDate
	trip.EndDate = in.EndDate
	trip.Region = in.Region
	trip.RegionLat = in.RegionLat
	trip.RegionLng = in.RegionLng
}
