package models

import "time"

type TripShare struct {
	ID         int64      `db:"id" json:"id"`
	TripID     int64      `db:"trip_id" json:"trip_id"`
	ShareToken string     `db:"share_token" json:"share_token"`
	IsPublic   bool       `db:"is_public" json:"is_public"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	ExpiryDate *time.Time `db:"expiry_date" json:"expiry_date,omitempty"`
	ViewCount  int        `db:"view_count" json:"view_count"`
}

// IsExpired reports whether the share has an expiry strictly before now.
func (s *TripShare) IsExpired(now time.Time) bool {
	return s.ExpiryDate != nil && now.After(*s.ExpiryDate)
}

// Accessible reports whether anonymous readers may open the share.
func (s *TripShare) Accessible(now time.Time) bool {
	return s.IsPublic && !s.IsExpired(now)
}

// SharedTrip is a share joined with the trip it exposes.
type SharedTrip struct {
	Share TripShare
	Trip  Trip
}
