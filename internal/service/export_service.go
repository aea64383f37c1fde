package service

import (
	"bytes"
	"context"
	"fmt"

	"tripplanner-api/internal/apperr"
	"tripplanner-api/internal/repository"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	summarySheet   = "Trip"
	itinerarySheet = "Itinerary"
)

var itineraryHeader = []interface{}{"Day", "Date", "Order", "Visit Time", "Place", "Address", "Latitude", "Longitude", "Memo"}

// ExportService renders a trip's itinerary as an xlsx workbook.
type ExportService struct {
	trips  *TripService
	days   repository.TripDayRepository
	places repository.TripPlaceRepository
	logger *zap.Logger
}

func NewExportService(trips *TripService, days repository.TripDayRepository, places repository.TripPlaceRepository, logger *zap.Logger) *ExportService {
	return &ExportService{trips: trips, days: days, places: places, logger: logger}
}

// ExportItinerary returns the workbook bytes and a suggested file name.
func (s *ExportService) ExportItinerary(ctx context.Context, callerID, tripID int64) ([]byte, string, error) {
	trip, err := s.trips.FindTripWithOwnerValidation(ctx, callerID, tripID)
	if err != nil {
		return nil, "", err
	}

	days, err := s.days.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, "", apperr.Internal(err)
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("failed to close workbook", zap.Error(err))
		}
	}()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, "", apperr.Internal(err)
	}
	region := ""
	if trip.Region != nil {
		region = *trip.Region
	}
	summary := [][]interface{}{
		{"Title", trip.Title},
		{"Start Date", trip.StartDate.String()},
		{"End Date", trip.EndDate.String()},
		{"Region", region},
		{"Days", len(days)},
	}
	for i, row := range summary {
		if err := f.SetSheetRow(summarySheet, fmt.Sprintf("A%d", i+1), &row); err != nil {
			return nil, "", apperr.Internal(err)
		}
	}

	if _, err := f.NewSheet(itinerarySheet); err != nil {
		return nil, "", apperr.Internal(err)
	}
	if err := f.SetSheetRow(itinerarySheet, "A1", &itineraryHeader); err != nil {
		return nil, "", apperr.Internal(err)
	}

	rowNum := 2
	for _, day := range days {
		places, err := s.places.ListByTripDay(ctx, day.ID)
		if err != nil {
			return nil, "", apperr.Internal(err)
		}
		for _, p := range places {
			memo := ""
			if p.Memo != nil {
				memo = *p.Memo
			}
			row := []interface{}{day.Day, day.Date.String(), p.VisitOrder, p.VisitTime.String(), p.PlaceName, p.Address, p.Latitude, p.Longitude, memo}
			if err := f.SetSheetRow(itinerarySheet, fmt.Sprintf("A%d", rowNum), &row); err != nil {
				return nil, "", apperr.Internal(err)
			}
			rowNum++
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", apperr.Internal(err)
	}

	s.logger.Info("itinerary exported", zap.Int64("trip_id", tripID), zap.Int("rows", rowNum-2))
	return buf.Bytes(), fmt.Sprintf("trip-%d-itinerary.xlsx", trip.ID), nil
}
