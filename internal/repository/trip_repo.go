package repository

import (
	"context"
	"time"

	"tripplanner-api/internal/models"

	"github.com/jmoiron/sqlx"
)

type tripRepository struct {
	db *sqlx.DB
}

func NewTripRepository(db *sqlx.DB) TripRepository {
	return &tripRepository{db: db}
}

const tripColumns = `id, member_id, title, start_date, end_date, region, region_lat, region_lng, created_at, updated_at`

func (r *tripRepository) Create(ctx context.Context, trip *models.Trip) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
        INSERT INTO trips (member_id, title, start_date, end_date, region, region_lat, region_lng, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		trip.MemberID, trip.Title, trip.StartDate, trip.EndDate,
		trip.Region, trip.RegionLat, trip.RegionLng, now, now)
	if err != nil {
		return translate("failed to create trip", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return translate("failed to read trip id", err)
	}
	trip.ID = id
	trip.CreatedAt = now
	trip.UpdatedAt = now
	return nil
}

func (r *tripRepository) GetByID(ctx context.Context, id int64) (*models.Trip, error) {
	var trip models.Trip
	if err := r.db.GetContext(ctx, &trip, `SELECT `+tripColumns+` FROM trips WHERE id = ?`, id); err != nil {
		return nil, translate("failed to get trip", err)
	}
	return &trip, nil
}

func (r *tripRepository) ListByMember(ctx context.Context, memberID int64) ([]models.Trip, error) {
	trips := []models.Trip{}
	err := r.db.SelectContext(ctx, &trips,
		`SELECT `+tripColumns+` FROM trips WHERE member_id = ? ORDER BY start_date DESC, id DESC`, memberID)
	if err != nil {
		return nil, translate("failed to list trips", err)
	}
	return trips, nil
}

// Update overwrites the editable fields. member_id is never written.
func (r *tripRepository) Update(ctx context.Context, trip *models.Trip) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
        UPDATE trips
        SET title = ?, start_date = ?, end_date = ?, region = ?, region_lat = ?, region_lng = ?, updated_at = ?
        WHERE id = ?`,
		trip.Title, trip.StartDate, trip.EndDate, trip.Region, trip.RegionLat, trip.RegionLng, now, trip.ID)
	if err != nil {
		return translate("failed to update trip", err)
	}
	if err := requireAffected("failed to update trip", res); err != nil {
		return err
	}
	trip.UpdatedAt = now
	return nil
}

func (r *tripRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM trips WHERE id = ?`, id)
	if err != nil {
		return translate("failed to delete trip", err)
	}
	return requireAffected("failed to delete trip", res)
}
