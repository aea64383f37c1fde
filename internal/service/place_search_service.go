package service

import (
	"context"
	"strings"

	"tripplanner-api/internal/apperr"
	"tripplanner-api/internal/models"
)

// PlaceSearcher is the external place-search provider.
type PlaceSearcher interface {
	SearchPlaces(ctx context.Context, keyword string, lat, lng float64, page, size int) (*models.PlaceSearchResult, error)
}

type PlaceSearchService struct {
	searcher PlaceSearcher
	places   *TripPlaceService
}

func NewPlaceSearchService(searcher PlaceSearcher, places *TripPlaceService) *PlaceSearchService {
	return &PlaceSearchService{searcher: searcher, places: places}
}

func (s *PlaceSearchService) Search(ctx context.Context, keyword string, lat, lng float64, page, size int) (*models.PlaceSearchResult, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, apperr.WithFields(apperr.InvalidInputValue, []apperr.FieldError{
			{Field: "keyword", Reason: "is required"},
		})
	}
	return s.searcher.SearchPlaces(ctx, keyword, lat, lng, page, size)
}

type SaveToTripInput struct {
	TripDayID int64
	Place     TripPlaceInput
}

// SaveToTrip stores a search hit as a place on one of the caller's days.
func (s *PlaceSearchService) SaveToTrip(ctx context.Context, callerID int64, in SaveToTripInput) (*models.TripPlace, error) {
	if in.TripDayID == 0 {
		return nil, apperr.WithFields(apperr.InvalidInputValue, []apperr.FieldError{
			{Field: "trip_day_id", Reason: "is required"},
		})
	}
	return s.places.CreateTripPlace(ctx, callerID, in.TripDayID, in.Place)
}
