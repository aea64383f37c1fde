package repository

import (
	"context"
	"fmt"

	"tripplanner-api/internal/models"

	"github.com/jmoiron/sqlx"
)

type tripPlaceRepository struct {
	db *sqlx.DB
}

func NewTripPlaceRepository(db *sqlx.DB) TripPlaceRepository {
	return &tripPlaceRepository{db: db}
}

const tripPlaceColumns = `id, trip_day_id, place_id, place_name, address, latitude, longitude, memo, visit_time, visit_order`

func (r *tripPlaceRepository) Create(ctx context.Context, place *models.TripPlace) error {
	res, err := r.db.ExecContext(ctx, `
        INSERT INTO trip_places (trip_day_id, place_id, place_name, address, latitude, longitude, memo, visit_time, visit_order)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		place.TripDayID, place.PlaceID, place.PlaceName, place.Address,
		place.Latitude, place.Longitude, place.Memo, place.VisitTime, place.VisitOrder)
	if err != nil {
		return translate("failed to create trip place", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return translate("failed to read trip place id", err)
	}
	place.ID = id
	return nil
}

func (r *tripPlaceRepository) GetByID(ctx context.Context, id int64) (*models.TripPlace, error) {
	var place models.TripPlace
	if err := r.db.GetContext(ctx, &place, `SELECT `+tripPlaceColumns+` FROM trip_places WHERE id = ?`, id); err != nil {
		return nil, translate("failed to get trip place", err)
	}
	return &place, nil
}

func (r *tripPlaceRepository) ListByTripDay(ctx context.Context, tripDayID int64) ([]models.TripPlace, error) {
	places := []models.TripPlace{}
	err := r.db.SelectContext(ctx, &places,
		`SELECT `+tripPlaceColumns+` FROM trip_places WHERE trip_day_id = ? ORDER BY visit_order`, tripDayID)
	if err != nil {
		return nil, translate("failed to list trip places", err)
	}
	return places, nil
}

// Update overwrites every editable column including visit_order. The day a
// place belongs to never changes.
func (r *tripPlaceRepository) Update(ctx context.Context, place *models.TripPlace) error {
	res, err := r.db.ExecContext(ctx, `
        UPDATE trip_places
        SET place_id = ?, place_name = ?, address = ?, latitude = ?, longitude = ?, memo = ?, visit_time = ?, visit_order = ?
        WHERE id = ?`,
		place.PlaceID, place.PlaceName, place.Address, place.Latitude, place.Longitude,
		place.Memo, place.VisitTime, place.VisitOrder, place.ID)
	if err != nil {
		return translate("failed to update trip place", err)
	}
	return requireAffected("failed to update trip place", res)
}

func (r *tripPlaceRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM trip_places WHERE id = ?`, id)
	if err != nil {
		return translate("failed to delete trip place", err)
	}
	return requireAffected("failed to delete trip place", res)
}

func (r *tripPlaceRepository) Reorder(ctx context.Context, tripDayID int64, plan ReorderPlanner) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin reorder: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	places := []models.TripPlace{}
	err = tx.SelectContext(ctx, &places,
		`SELECT `+tripPlaceColumns+` FROM trip_places WHERE trip_day_id = ? ORDER BY visit_order FOR UPDATE`, tripDayID)
	if err != nil {
		return translate("failed to lock trip places", err)
	}

	changes, err := plan(places)
	if err != nil {
		return err
	}

	for _, change := range changes {
		if _, err = tx.ExecContext(ctx,
			`UPDATE trip_places SET visit_order = ? WHERE id = ?`, change.VisitOrder, change.PlaceID); err != nil {
			return translate("failed to update visit order", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reorder: %w", err)
	}
	return nil
}
