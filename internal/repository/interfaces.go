package repository

import (
	"context"
	"errors"
	"time"

	"tripplanner-api/internal/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate entry")
)

type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) error
	GetByID(ctx context.Context, id int64) (*models.Member, error)
	GetByEmail(ctx context.Context, email string) (*models.Member, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type TripRepository interface {
	Create(ctx context.Context, trip *models.Trip) error
	GetByID(ctx context.Context, id int64) (*models.Trip, error)
	ListByMember(ctx context.Context, memberID int64) ([]models.Trip, error)
	Update(ctx context.Context, trip *models.Trip) error
	// Delete removes the trip; days, places and the share go with it.
	Delete(ctx context.Context, id int64) error
}

type TripDayRepository interface {
	Create(ctx context.Context, day *models.TripDay) error
	GetByID(ctx context.Context, id int64) (*models.TripDay, error)
	ListByTrip(ctx context.Context, tripID int64) ([]models.TripDay, error)
	Delete(ctx context.Context, id int64) error
}

// OrderChange sets one place's visit order.
type OrderChange struct {
	PlaceID    int64
	VisitOrder int
}

// ReorderPlanner receives the day's places, locked and sorted by visit
// order, and returns the writes to apply in sequence.
type ReorderPlanner func(places []models.TripPlace) ([]OrderChange, error)

type TripPlaceRepository interface {
	Create(ctx context.Context, place *models.TripPlace) error
	GetByID(ctx context.Context, id int64) (*models.TripPlace, error)
	ListByTripDay(ctx context.Context, tripDayID int64) ([]models.TripPlace, error)
	Update(ctx context.Context, place *models.TripPlace) error
	Delete(ctx context.Context, id int64) error
	// Reorder runs plan against the day's places under a lock and applies
	// the returned changes atomically.
	Reorder(ctx context.Context, tripDayID int64, plan ReorderPlanner) error
}

type ShareSort string

const (
	ShareSortLatest  ShareSort = "latest"
	ShareSortPopular ShareSort = "popular"
)

type TripShareRepository interface {
	Create(ctx context.Context, share *models.TripShare) error
	GetByToken(ctx context.Context, token string) (*models.SharedTrip, error)
	GetByTripID(ctx context.Context, tripID int64) (*models.SharedTrip, error)
	ExistsByTripID(ctx context.Context, tripID int64) (bool, error)
	ListByMember(ctx context.Context, memberID int64) ([]models.SharedTrip, error)
	// ListPublic returns public shares not expired at now, plus the total.
	ListPublic(ctx context.Context, now time.Time, sort ShareSort, limit, offset int) ([]models.SharedTrip, int64, error)
	Update(ctx context.Context, share *models.TripShare) error
	// IncrementViewCount atomically adds one view and returns the new count.
	IncrementViewCount(ctx context.Context, id int64) (int, error)
	Delete(ctx context.Context, id int64) error
}
