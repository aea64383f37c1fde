package repository

import (
	"context"
	"fmt"
	"time"

	"tripplanner-api/internal/models"

	"github.com/jmoiron/sqlx"
)

type tripShareRepository struct {
	db *sqlx.DB
}

func NewTripShareRepository(db *sqlx.DB) TripShareRepository {
	return &tripShareRepository{db: db}
}

// sharedTripRow is one trip_shares row joined with its trip.
type sharedTripRow struct {
	models.TripShare
	TripMemberID  int64       `db:"trip_member_id"`
	TripTitle     string      `db:"trip_title"`
	TripStartDate models.Date `db:"trip_start_date"`
	TripEndDate   models.Date `db:"trip_end_date"`
	TripRegion    *string     `db:"trip_region"`
	TripRegionLat *float64    `db:"trip_region_lat"`
	TripRegionLng *float64    `db:"trip_region_lng"`
	TripCreatedAt time.Time   `db:"trip_created_at"`
	TripUpdatedAt time.Time   `db:"trip_updated_at"`
}

func (row sharedTripRow) toModel() models.SharedTrip {
	return models.SharedTrip{
		Share: row.TripShare,
		Trip: models.Trip{
			ID:        row.TripID,
			MemberID:  row.TripMemberID,
			Title:     row.TripTitle,
			StartDate: row.TripStartDate,
			EndDate:   row.TripEndDate,
			Region:    row.TripRegion,
			RegionLat: row.TripRegionLat,
			RegionLng: row.TripRegionLng,
			CreatedAt: row.TripCreatedAt,
			UpdatedAt: row.TripUpdatedAt,
		},
	}
}

const sharedTripSelect = `
    SELECT s.id, s.trip_id, s.share_token, s.is_public, s.created_at, s.expiry_date, s.view_count,
           t.member_id AS trip_member_id, t.title AS trip_title,
           t.start_date AS trip_start_date, t.end_date AS trip_end_date,
           t.region AS trip_region, t.region_lat AS trip_region_lat, t.region_lng AS trip_region_lng,
           t.created_at AS trip_created_at, t.updated_at AS trip_updated_at
    FROM trip_shares s
    JOIN trips t ON t.id = s.trip_id`

func toModels(rows []sharedTripRow) []models.SharedTrip {
	out := make([]models.SharedTrip, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toModel())
	}
	return out
}

func (r *tripShareRepository) Create(ctx context.Context, share *models.TripShare) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
        INSERT INTO trip_shares (trip_id, share_token, is_public, created_at, expiry_date, view_count)
        VALUES (?, ?, ?, ?, ?, 0)`,
		share.TripID, share.ShareToken, share.IsPublic, now, share.ExpiryDate)
	if err != nil {
		return translate("failed to create trip share", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return translate("failed to read trip share id", err)
	}
	share.ID = id
	share.CreatedAt = now
	share.ViewCount = 0
	return nil
}

func (r *tripShareRepository) GetByToken(ctx context.Context, token string) (*models.SharedTrip, error) {
	var row sharedTripRow
	if err := r.db.GetContext(ctx, &row, sharedTripSelect+` WHERE s.share_token = ?`, token); err != nil {
		return nil, translate("failed to get trip share", err)
	}
	shared := row.toModel()
	return &shared, nil
}

func (r *tripShareRepository) GetByTripID(ctx context.Context, tripID int64) (*models.SharedTrip, error) {
	var row sharedTripRow
	if err := r.db.GetContext(ctx, &row, sharedTripSelect+` WHERE s.trip_id = ?`, tripID); err != nil {
		return nil, translate("failed to get trip share", err)
	}
	shared := row.toModel()
	return &shared, nil
}

func (r *tripShareRepository) ExistsByTripID(ctx context.Context, tripID int64) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM trip_shares WHERE trip_id = ?)`, tripID); err != nil {
		return false, translate("failed to check trip share", err)
	}
	return exists, nil
}

func (r *tripShareRepository) ListByMember(ctx context.Context, memberID int64) ([]models.SharedTrip, error) {
	rows := []sharedTripRow{}
	if err := r.db.SelectContext(ctx, &rows,
		sharedTripSelect+` WHERE t.member_id = ? ORDER BY s.created_at DESC, s.id DESC`, memberID); err != nil {
		return nil, translate("failed to list trip shares", err)
	}
	return toModels(rows), nil
}

func (r *tripShareRepository) ListPublic(ctx context.Context, now time.Time, sort ShareSort, limit, offset int) ([]models.SharedTrip, int64, error) {
	const filter = ` WHERE s.is_public = TRUE AND (s.expiry_date IS NULL OR s.expiry_date > ?)`

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM trip_shares s`+filter, now); err != nil {
		return nil, 0, translate("failed to count public trip shares", err)
	}

	order := ` ORDER BY s.created_at DESC, s.id DESC`
	if sort == ShareSortPopular {
		order = ` ORDER BY s.view_count DESC, s.id DESC`
	}

	rows := []sharedTripRow{}
	if err := r.db.SelectContext(ctx, &rows, sharedTripSelect+filter+order+` LIMIT ? OFFSET ?`, now, limit, offset); err != nil {
		return nil, 0, translate("failed to list public trip shares", err)
	}
	return toModels(rows), total, nil
}

func (r *tripShareRepository) Update(ctx context.Context, share *models.TripShare) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE trip_shares SET is_public = ?, expiry_date = ? WHERE id = ?`,
		share.IsPublic, share.ExpiryDate, share.ID)
	if err != nil {
		return translate("failed to update trip share", err)
	}
	return requireAffected("failed to update trip share", res)
}

func (r *tripShareRepository) IncrementViewCount(ctx context.Context, id int64) (int, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE trip_shares SET view_count = view_count + 1 WHERE id = ?`, id)
	if err != nil {
		return 0, translate("failed to increment view count", err)
	}
	if err := requireAffected("failed to increment view count", res); err != nil {
		return 0, err
	}

	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT view_count FROM trip_shares WHERE id = ?`, id); err != nil {
		return 0, translate("failed to read view count", err)
	}
	return count, nil
}

func (r *tripShareRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM trip_shares WHERE id = ?`, id)
	if err != nil {
		return translate("failed to delete trip share", err)
	}
	if err := requireAffected("failed to delete trip share", res); err != nil {
		return fmt.Errorf("share %d: %w", id, err)
	}
	return nil
}
