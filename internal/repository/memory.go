package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"tripplanner-api/internal/models"
)

// MemoryStore keeps every entity in process memory behind one lock. It
// enforces the same unique keys and cascades as the MySQL schema and backs
// the service and handler tests.
type MemoryStore struct {
	mu sync.Mutex

	nextID  int64
	members map[int64]models.Member
	trips   map[int64]models.Trip
	days    map[int64]models.TripDay
	places  map[int64]models.TripPlace
	shares  map[int64]models.TripShare

	placeWrites int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		members: map[int64]models.Member{},
		trips:   map[int64]models.Trip{},
		days:    map[int64]models.TripDay{},
		places:  map[int64]models.TripPlace{},
		shares:  map[int64]models.TripShare{},
	}
}

func (s *MemoryStore) Members() MemberRepository       { return memoryMembers{s} }
func (s *MemoryStore) Trips() TripRepository           { return memoryTrips{s} }
func (s *MemoryStore) TripDays() TripDayRepository     { return memoryDays{s} }
func (s *MemoryStore) TripPlaces() TripPlaceRepository { return memoryPlaces{s} }
func (s *MemoryStore) TripShares() TripShareRepository { return memoryShares{s} }

// PlaceWrites counts trip_places inserts and updates, reorder steps included.
func (s *MemoryStore) PlaceWrites() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.placeWrites
}

func (s *MemoryStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *MemoryStore) deleteTripLocked(id int64) {
	for dayID, day := range s.days {
		if day.TripID == id {
			s.deleteDayLocked(dayID)
		}
	}
	for shareID, share := range s.shares {
		if share.TripID == id {
			delete(s.shares, shareID)
		}
	}
	delete(s.trips, id)
}

func (s *MemoryStore) deleteDayLocked(id int64) {
	for placeID, place := range s.places {
		if place.TripDayID == id {
			delete(s.places, placeID)
		}
	}
	delete(s.days, id)
}

// orderTakenLocked reports whether another place in the day already holds order.
func (s *MemoryStore) orderTakenLocked(dayID, placeID int64, order int) bool {
	for _, p := range s.places {
		if p.TripDayID == dayID && p.ID != placeID && p.VisitOrder == order {
			return true
		}
	}
	return false
}

type memoryMembers struct{ s *MemoryStore }

func (r memoryMembers) Create(_ context.Context, member *models.Member) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, m := range r.s.members {
		if m.Email == member.Email {
			return fmt.Errorf("failed to create member: %w", ErrDuplicate)
		}
	}
	if member.Role == "" {
		member.Role = models.RoleUser
	}
	now := time.Now().UTC()
	member.ID = r.s.id()
	member.CreatedAt, member.UpdatedAt = now, now
	r.s.members[member.ID] = *member
	return nil
}

func (r memoryMembers) GetByID(_ context.Context, id int64) (*models.Member, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.members[id]
	if !ok {
		return nil, fmt.Errorf("failed to get member: %w", ErrNotFound)
	}
	return &m, nil
}

func (r memoryMembers) GetByEmail(_ context.Context, email string) (*models.Member, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, m := range r.s.members {
		if m.Email == email {
			return &m, nil
		}
	}
	return nil, fmt.Errorf("failed to get member by email: %w", ErrNotFound)
}

func (r memoryMembers) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	return err == nil, nil
}

type memoryTrips struct{ s *MemoryStore }

func (r memoryTrips) Create(_ context.Context, trip *models.Trip) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.members[trip.MemberID]; !ok {
		return fmt.Errorf("failed to create trip: member %d missing", trip.MemberID)
	}
	now := time.Now().UTC()
	trip.ID = r.s.id()
	trip.CreatedAt, trip.UpdatedAt = now, now
	r.s.trips[trip.ID] = *trip
	return nil
}

func (r memoryTrips) GetByID(_ context.Context, id int64) (*models.Trip, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.trips[id]
	if !ok {
		return nil, fmt.Errorf("failed to get trip: %w", ErrNotFound)
	}
	return &t, nil
}

func (r memoryTrips) ListByMember(_ context.Context, memberID int64) ([]models.Trip, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	trips := []models.Trip{}
	for _, t := range r.s.trips {
		if t.MemberID == memberID {
			trips = append(trips, t)
		}
	}
	sort.Slice(trips, func(i, j int) bool {
		if !trips[i].StartDate.Equal(trips[j].StartDate.Time) {
			return trips[i].StartDate.After(trips[j].StartDate.Time)
		}
		return trips[i].ID > trips[j].ID
	})
	return trips, nil
}

func (r memoryTrips) Update(_ context.Context, trip *models.Trip) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.trips[trip.ID]
	if !ok {
		return fmt.Errorf("failed to update trip: %w", ErrNotFound)
	}
	updated := *trip
	updated.MemberID = existing.MemberID
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()
	r.s.trips[trip.ID] = updated
	*trip = updated
	return nil
}

func (r memoryTrips) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.trips[id]; !ok {
		return fmt.Errorf("failed to delete trip: %w", ErrNotFound)
	}
	r.s.deleteTripLocked(id)
	return nil
}

type memoryDays struct{ s *MemoryStore }

func (r memoryDays) Create(_ context.Context, day *models.TripDay) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.trips[day.TripID]; !ok {
		return fmt.Errorf("failed to create trip day: trip %d missing", day.TripID)
	}
	day.ID = r.s.id()
	r.s.days[day.ID] = *day
	return nil
}

func (r memoryDays) GetByID(_ context.Context, id int64) (*models.TripDay, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d, ok := r.s.days[id]
	if !ok {
		return nil, fmt.Errorf("failed to get trip day: %w", ErrNotFound)
	}
	return &d, nil
}

func (r memoryDays) ListByTrip(_ context.Context, tripID int64) ([]models.TripDay, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	days := []models.TripDay{}
	for _, d := range r.s.days {
		if d.TripID == tripID {
			days = append(days, d)
		}
	}
	sort.Slice(days, func(i, j int) bool {
		if days[i].Day != days[j].Day {
			return days[i].Day < days[j].Day
		}
		return days[i].ID < days[j].ID
	})
	return days, nil
}

func (r memoryDays) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.days[id]; !ok {
		return fmt.Errorf("failed to delete trip day: %w", ErrNotFound)
	}
	r.s.deleteDayLocked(id)
	return nil
}

type memoryPlaces struct{ s *MemoryStore }

func (r memoryPlaces) Create(_ context.Context, place *models.TripPlace) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.days[place.TripDayID]; !ok {
		return fmt.Errorf("failed to create trip place: day %d missing", place.TripDayID)
	}
	if r.s.orderTakenLocked(place.TripDayID, 0, place.VisitOrder) {
		return fmt.Errorf("failed to create trip place: %w", ErrDuplicate)
	}
	place.ID = r.s.id()
	r.s.places[place.ID] = *place
	r.s.placeWrites++
	return nil
}

func (r memoryPlaces) GetByID(_ context.Context, id int64) (*models.TripPlace, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.places[id]
	if !ok {
		return nil, fmt.Errorf("failed to get trip place: %w", ErrNotFound)
	}
	return &p, nil
}

func (r memoryPlaces) ListByTripDay(_ context.Context, tripDayID int64) ([]models.TripPlace, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.listLocked(tripDayID), nil
}

func (r memoryPlaces) listLocked(tripDayID int64) []models.TripPlace {
	places := []models.TripPlace{}
	for _, p := range r.s.places {
		if p.TripDayID == tripDayID {
			places = append(places, p)
		}
	}
	sort.Slice(places, func(i, j int) bool { return places[i].VisitOrder < places[j].VisitOrder })
	return places
}

func (r memoryPlaces) Update(_ context.Context, place *models.TripPlace) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.places[place.ID]
	if !ok {
		return fmt.Errorf("failed to update trip place: %w", ErrNotFound)
	}
	if r.s.orderTakenLocked(existing.TripDayID, place.ID, place.VisitOrder) {
		return fmt.Errorf("failed to update trip place: %w", ErrDuplicate)
	}
	updated := *place
	updated.TripDayID = existing.TripDayID
	r.s.places[place.ID] = updated
	r.s.placeWrites++
	return nil
}

func (r memoryPlaces) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.places[id]; !ok {
		return fmt.Errorf("failed to delete trip place: %w", ErrNotFound)
	}
	delete(r.s.places, id)
	return nil
}

// Reorder applies changes one at a time and checks the unique order index
// after every write, rolling back on the first collision.
func (r memoryPlaces) Reorder(_ context.Context, tripDayID int64, plan ReorderPlanner) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	changes, err := plan(r.listLocked(tripDayID))
	if err != nil {
		return err
	}

	snapshot := make(map[int64]models.TripPlace, len(r.s.places))
	for id, p := range r.s.places {
		snapshot[id] = p
	}

	for _, change := range changes {
		p, ok := r.s.places[change.PlaceID]
		if !ok || p.TripDayID != tripDayID {
			r.s.places = snapshot
			return fmt.Errorf("failed to update visit order: %w", ErrNotFound)
		}
		if r.s.orderTakenLocked(tripDayID, p.ID, change.VisitOrder) {
			r.s.places = snapshot
			return fmt.Errorf("failed to update visit order: %w", ErrDuplicate)
		}
		p.VisitOrder = change.VisitOrder
		r.s.places[p.ID] = p
		r.s.placeWrites++
	}
	return nil
}

type memoryShares struct{ s *MemoryStore }

func (r memoryShares) joinLocked(share models.TripShare) models.SharedTrip {
	return models.SharedTrip{Share: share, Trip: r.s.trips[share.TripID]}
}

func (r memoryShares) Create(_ context.Context, share *models.TripShare) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.trips[share.TripID]; !ok {
		return fmt.Errorf("failed to create trip share: trip %d missing", share.TripID)
	}
	for _, existing := range r.s.shares {
		if existing.TripID == share.TripID || existing.ShareToken == share.ShareToken {
			return fmt.Errorf("failed to create trip share: %w", ErrDuplicate)
		}
	}
	share.ID = r.s.id()
	share.CreatedAt = time.Now().UTC()
	share.ViewCount = 0
	r.s.shares[share.ID] = *share
	return nil
}

func (r memoryShares) GetByToken(_ context.Context, token string) (*models.SharedTrip, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, share := range r.s.shares {
		if share.ShareToken == token {
			shared := r.joinLocked(share)
			return &shared, nil
		}
	}
	return nil, fmt.Errorf("failed to get trip share: %w", ErrNotFound)
}

func (r memoryShares) GetByTripID(_ context.Context, tripID int64) (*models.SharedTrip, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, share := range r.s.shares {
		if share.TripID == tripID {
			shared := r.joinLocked(share)
			return &shared, nil
		}
	}
	return nil, fmt.Errorf("failed to get trip share: %w", ErrNotFound)
}

func (r memoryShares) ExistsByTripID(ctx context.Context, tripID int64) (bool, error) {
	_, err := r.GetByTripID(ctx, tripID)
	return err == nil, nil
}

func (r memoryShares) ListByMember(_ context.Context, memberID int64) ([]models.SharedTrip, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []models.SharedTrip{}
	for _, share := range r.s.shares {
		if r.s.trips[share.TripID].MemberID == memberID {
			out = append(out, r.joinLocked(share))
		}
	}
	sortShares(out, ShareSortLatest)
	return out, nil
}

func (r memoryShares) ListPublic(_ context.Context, now time.Time, sortBy ShareSort, limit, offset int) ([]models.SharedTrip, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	all := []models.SharedTrip{}
	for _, share := range r.s.shares {
		if share.Accessible(now) {
			all = append(all, r.joinLocked(share))
		}
	}
	sortShares(all, sortBy)

	total := int64(len(all))
	start := min(offset, len(all))
	end := min(start+limit, len(all))
	return all[start:end], total, nil
}

func sortShares(shares []models.SharedTrip, sortBy ShareSort) {
	sort.Slice(shares, func(i, j int) bool {
		a, b := shares[i].Share, shares[j].Share
		if sortBy == ShareSortPopular && a.ViewCount != b.ViewCount {
			return a.ViewCount > b.ViewCount
		}
		if sortBy != ShareSortPopular && !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
}

func (r memoryShares) Update(_ context.Context, share *models.TripShare) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.shares[share.ID]
	if !ok {
		return fmt.Errorf("failed to update trip share: %w", ErrNotFound)
	}
	existing.IsPublic = share.IsPublic
	existing.ExpiryDate = share.ExpiryDate
	r.s.shares[share.ID] = existing
	return nil
}

func (r memoryShares) IncrementViewCount(_ context.Context, id int64) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	share, ok := r.s.shares[id]
	if !ok {
		return 0, fmt.Errorf("failed to increment view count: %w", ErrNotFound)
	}
	share.ViewCount++
	r.s.shares[id] = share
	return share.ViewCount, nil
}

func (r memoryShares) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.shares[id]; !ok {
		return fmt.Errorf("failed to delete trip share: %w", ErrNotFound)
	}
	delete(r.s.shares, id)
	return nil
}
