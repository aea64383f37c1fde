package handlers

import (
	"time"

	"tripplanner-api/internal/apperr"
	"tripplanner-api/internal/models"
	"tripplanner-api/internal/service"
	"tripplanner-api/internal/validation"

	"github.com/gin-gonic/gin"
)

// bind decodes the JSON body into req and validates it.
func bind(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return apperr.Wrap(apperr.InvalidRequestBody, err)
	}
	return validation.Struct(req)
}

type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email,max=30"`
	Nickname string `json:"nickname" validate:"required,min=2,max=20,nickname"`
	Password string `json:"password" validate:"required,min=8,max=20,password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type TripRequest struct {
	Title     string       `json:"title" validate:"required,min=1,max=100"`
	StartDate *models.Date `json:"start_date" validate:"required"`
	EndDate   *models.Date `json:"end_date" validate:"required"`
	Region    *string      `json:"region" validate:"omitempty,max=100"`
	RegionLat *float64     `json:"region_lat" validate:"omitempty,gte=-90,lte=90"`
	RegionLng *float64     `json:"region_lng" validate:"omitempty,gte=-180,lte=180"`
}

func (r TripRequest) ValidateFields() []apperr.FieldError {
	if r.StartDate != nil && r.EndDate != nil && r.EndDate.Before(*r.StartDate) {
		return []apperr.FieldError{{
			Field:  "end_date",
			Value:  r.EndDate.String(),
			Reason: "must not be before start_date",
		}}
	}
	return nil
}

func (r TripRequest) input() service.TripInput {
	return service.TripInput{
		Title:     r.Title,
		StartDate: *r.StartDate,
		EndDate:   *r.EndDate,
		Region:    r.Region,
		RegionLat: r.RegionLat,
		RegionLng: r.RegionLng,
	}
}

type TripDayRequest struct {
	Day  int          `json:"day" validate:"required,gte=1"`
	Date *models.Date `json:"date" validate:"required"`
}

type TripPlaceRequest struct {
	PlaceID    *string           `json:"place_id" validate:"omitempty,max=100"`
	PlaceName  string            `json:"place_name" validate:"required,max=100"`
	Address    string            `json:"address" validate:"required,max=255"`
	Latitude   *float64          `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude  *float64          `json:"longitude" validate:"required,gte=-180,lte=180"`
	Memo       *string           `json:"memo" validate:"omitempty,max=500"`
	VisitTime  *models.TimeOfDay `json:"visit_time" validate:"required"`
	VisitOrder int               `json:"visit_order" validate:"required,gte=1"`
}

func (r TripPlaceRequest) input() service.TripPlaceInput {
	return service.TripPlaceInput{
		PlaceID:    r.PlaceID,
		PlaceName:  r.PlaceName,
		Address:    r.Address,
		Latitude:   *r.Latitude,
		Longitude:  *r.Longitude,
		Memo:       r.Memo,
		VisitTime:  *r.VisitTime,
		VisitOrder: r.VisitOrder,
	}
}

type VisitOrderRequest struct {
	VisitOrder int `json:"visit_order" validate:"required,gte=1"`
}

type SaveToTripRequest struct {
	TripDayID int64 `json:"trip_day_id" validate:"required,gt=0"`
	TripPlaceRequest
}

type TripShareRequest struct {
	IsPublic   *bool      `json:"is_public" validate:"required"`
	ExpiryDate *time.Time `json:"expiry_date"`
}

func (r TripShareRequest) ValidateFields() []apperr.FieldError {
	if r.ExpiryDate != nil && !r.ExpiryDate.After(time.Now()) {
		return []apperr.FieldError{{
			Field:  "expiry_date",
			Value:  r.ExpiryDate.Format(time.RFC3339),
			Reason: "must be in the future",
		}}
	}
	return nil
}

func (r TripShareRequest) input() service.TripShareInput {
	return service.TripShareInput{IsPublic: *r.IsPublic, ExpiryDate: r.ExpiryDate}
}
