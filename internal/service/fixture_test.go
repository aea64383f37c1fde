package service

import (
	"context"
	"testing"
	"time"

	"tripplanner-api/internal/auth"
	"tripplanner-api/internal/config"
	"tripplanner-api/internal/models"
	"tripplanner-api/internal/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type fixture struct {
	store   *repository.MemoryStore
	members *MemberService
	trips   *TripService
	days    *TripDayService
	places  *TripPlaceService
	shares  *TripShareService
	search  *PlaceSearchService
	export  *ExportService

	alice *models.Member
	bob   *models.Member
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := zap.NewNop()
	store := repository.NewMemoryStore()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	jwtManager := auth.NewJWTManager(config.JWTConfig{
		Secret:          "test-secret",
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 24 * time.Hour,
	})
	sessions := auth.NewSessions(jwtManager, auth.NewTokenStore(rdb), store.Members(), logger)

	members := NewMemberService(store.Members(), sessions, logger)
	members.bcryptCost = bcrypt.MinCost
	trips := NewTripService(store.Trips(), store.Members(), logger)
	days := NewTripDayService(store.TripDays(), trips)
	places := NewTripPlaceService(store.TripPlaces(), days, logger)

	f := &fixture{
		store:   store,
		members: members,
		trips:   trips,
		days:    days,
		places:  places,
		shares:  NewTripShareService(store.TripShares(), trips, "https://trip.example.com/", logger),
		search:  NewPlaceSearchService(&fakeSearcher{}, places),
		export:  NewExportService(trips, store.TripDays(), store.TripPlaces(), logger),
	}

	ctx := context.Background()
	f.alice = &models.Member{Email: "alice@example.com", Nickname: "alice", Password: "x"}
	require.NoError(t, store.Members().Create(ctx, f.alice))
	f.bob = &models.Member{Email: "bob@example.com", Nickname: "bob", Password: "x"}
	require.NoError(t, store.Members().Create(ctx, f.bob))
	return f
}

func (f *fixture) jejuTrip(t *testing.T) *models.Trip {
	t.Helper()
	region := "Jeju"
	trip, err := f.trips.CreateTrip(context.Background(), f.alice.ID, TripInput{
		Title:     "Jeju",
		StartDate: models.NewDate(2025, time.January, 10),
		EndDate:   models.NewDate(2025, time.January, 13),
		Region:    &region,
	})
	require.NoError(t, err)
	return trip
}

func (f *fixture) day(t *testing.T, trip *models.Trip, n int) *models.TripDay {
	t.Helper()
	day, err := f.days.CreateTripDay(context.Background(), f.alice.ID, trip.ID, TripDayInput{
		Day:  n,
		Date: models.Date{Time: trip.StartDate.AddDate(0, 0, n-1)},
	})
	require.NoError(t, err)
	return day
}

func (f *fixture) place(t *testing.T, day *models.TripDay, name string, order int) *models.TripPlace {
	t.Helper()
	place, err := f.places.CreateTripPlace(context.Background(), f.alice.ID, day.ID, TripPlaceInput{
		PlaceName:  name,
		Address:    "Jeju-do",
		Latitude:   33.4,
		Longitude:  126.5,
		VisitTime:  models.TimeOfDay{Hour: 9 + order},
		VisitOrder: order,
	})
	require.NoError(t, err)
	return place
}

func (f *fixture) orders(t *testing.T, day *models.TripDay) map[string]int {
	t.Helper()
	places, err := f.places.GetTripPlaces(context.Background(), f.alice.ID, day.ID)
	require.NoError(t, err)
	out := map[string]int{}
	for _, p := range places {
		out[p.PlaceName] = p.VisitOrder
	}
	return out
}

type fakeSearcher struct {
	keyword string
}

func (s *fakeSearcher) SearchPlaces(_ context.Context, keyword string, lat, lng float64, page, size int) (*models.PlaceSearchResult, error) {
	s.keyword = keyword
	return &models.PlaceSearchResult{
		Places: []models.Place{{ID: "8", Name: "Udo", Latitude: lat, Longitude: lng}},
		Page:   page,
		Size:   size,
	}, nil
}
