package repository

import (
	"context"

	"tripplanner-api/internal/models"

	"github.com/jmoiron/sqlx"
)

type tripDayRepository struct {
	db *sqlx.DB
}

func NewTripDayRepository(db *sqlx.DB) TripDayRepository {
	return &tripDayRepository{db: db}
}

func (r *tripDayRepository) Create(ctx context.Context, day *models.TripDay) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO trip_days (trip_id, day, date) VALUES (?, ?, ?)`, day.TripID, day.Day, day.Date)
	if err != nil {
		return translate("failed to create trip day", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return translate("failed to read trip day id", err)
	}
	day.ID = id
	return nil
}

func (r *tripDayRepository) GetByID(ctx context.Context, id int64) (*models.TripDay, error) {
	var day models.TripDay
	if err := r.db.GetContext(ctx, &day, `SELECT id, trip_id, day, date FROM trip_days WHERE id = ?`, id); err != nil {
		return nil, translate("failed to get trip day", err)
	}
	return &day, nil
}

func (r *tripDayRepository) ListByTrip(ctx context.Context, tripID int64) ([]models.TripDay, error) {
	days := []models.TripDay{}
	err := r.db.SelectContext(ctx, &days,
		`SELECT id, trip_id, day, date FROM trip_days WHERE trip_id = ? ORDER BY day, id`, tripID)
	if err != nil {
		return nil, translate("failed to list trip days", err)
	}
	return days, nil
}

func (r *tripDayRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM trip_days WHERE id = ?`, id)
	if err != nil {
		return translate("failed to delete trip day", err)
	}
	return requireAffected("failed to delete trip day", res)
}
