package models

import "time"

// Trip is owned by exactly one member; the owner never changes.
type Trip struct {
	ID        int64     `db:"id" json:"id"`
	MemberID  int64     `db:"member_id" json:"member_id"`
	Title     string    `db:"title" json:"title"`
	StartDate Date      `db:"start_date" json:"start_date"`
	EndDate   Date      `db:"end_date" json:"end_date"`
	Region    *string   `db:"region" json:"region,omitempty"`
	RegionLat *float64  `db:"region_lat" json:"region_lat,omitempty"`
	RegionLng *float64  `db:"region_lng" json:"region_lng,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type TripDay struct {
	ID     int64 `db:"id" json:"id"`
	TripID int64 `db:"trip_id" json:"trip_id"`
	Day    int   `db:"day" json:"day"`
	Date   Date  `db:"date" json:"date"`
}

// TripPlace is one stop within a day. VisitOrder is unique per day.
type TripPlace struct {
	ID         int64     `db:"id" json:"id"`
	TripDayID  int64     `db:"trip_day_id" json:"trip_day_id"`
	PlaceID    *string   `db:"place_id" json:"place_id,omitempty"`
	PlaceName  string    `db:"place_name" json:"place_name"`
	Address    string    `db:"address" json:"address"`
	Latitude   float64   `db:"latitude" json:"latitude"`
	Longitude  float64   `db:"longitude" json:"longitude"`
	Memo       *string   `db:"memo" json:"memo,omitempty"`
	VisitTime  TimeOfDay `db:"visit_time" json:"visit_time"`
	VisitOrder int       `db:"visit_order" json:"visit_order"`
}
