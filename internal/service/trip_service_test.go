package service

import (
	"context"
	"testing"
	"time"

	"tripplanner-api/internal/apperr"
	"tripplanner-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnershipGate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	trip := f.jejuTrip(t)

	got, err := f.trips.GetTrip(ctx, f.alice.ID, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jeju", got.Title)

	_, err = f.trips.GetTrip(ctx, f.bob.ID, trip.ID)
	assert.True(t, apperr.Is(err, apperr.TripAccessDenied))

	_, err = f.trips.GetTrip(ctx, f.alice.ID, 9999)
	assert.True(t, apperr.Is(err, apperr.TripNotFound))
}

func TestCreateTripUnknownMember(t *testing.T) {
	f := newFixture(t)

	_, err := f.trips.CreateTrip(context.Background(), 424242, TripInput{Title: "Ghost"})
	assert.True(t, apperr.Is(err, apperr.MemberNotFound))
}

func TestModifyTripKeepsOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	trip := f.jejuTrip(t)

	updated, err := f.trips.ModifyTrip(ctx, f.alice.ID, trip.ID, TripInput{
		Title:     "Jeju again",
		StartDate: models.NewDate(2025, time.February, 1),
		EndDate:   models.NewDate(2025, time.February, 3),
	})
	require.NoError(t, err)
	assert.Equal(t, "Jeju again", updated.Title)
	assert.Nil(t, updated.Region)
	assert.Equal(t, f.alice.ID, updated.MemberID)

	_, err = f.trips.ModifyTrip(ctx, f.bob.ID, trip.ID, TripInput{Title: "stolen"})
	assert.True(t, apperr.Is(err, apperr.TripAccessDenied))
}

func TestGetTripsOnlyReturnsOwn(t *testing.T) {
	f := newFixture(t)
	f.jejuTrip(t)

	mine, err := f.trips.GetTrips(context.Background(), f.alice.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	theirs, err := f.trips.GetTrips(context.Background(), f.bob.ID)
	require.NoError(t, err)
	assert.Empty(t, theirs)
}

func TestDeleteTripCascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	trip := f.jejuTrip(t)
	day := f.day(t, trip, 1)
	place := f.place(t, day, "Seongsan", 1)

	assert.True(t, apperr.Is(f.trips.DeleteTrip(ctx, f.bob.ID, trip.ID), apperr.TripAccessDenied))
	require.NoError(t, f.trips.DeleteTrip(ctx, f.alice.ID, trip.ID))

	_, err := f.days.GetTripDays(ctx, f.alice.ID, trip.ID)
	assert.True(t, apperr.Is(err, apperr.TripNotFound))
	err = f.places.DeleteTripPlace(ctx, f.alice.ID, 0, place.ID)
	assert.True(t, apperr.Is(err, apperr.TripPlaceNotFound))
}

func TestTripDayGateIsTransitive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	trip := f.jejuTrip(t)
	day := f.day(t, trip, 1)
	place := f.place(t, day, "Seongsan", 1)

	_, err := f.days.CreateTripDay(ctx, f.bob.ID, trip.ID, TripDayInput{Day: 2})
	assert.True(t, apperr.Is(err, apperr.TripAccessDenied))

	_, err = f.places.CreateTripPlace(ctx, f.bob.ID, day.ID, TripPlaceInput{PlaceName: "Udo", VisitOrder: 2})
	assert.True(t, apperr.Is(err, apperr.TripAccessDenied))

	_, err = f.places.UpdateVisitOrder(ctx, f.bob.ID, 0, place.ID, 2)
	assert.True(t, apperr.Is(err, apperr.TripAccessDenied))

	err = f.places.DeleteTripPlace(ctx, f.bob.ID, 0, place.ID)
	assert.True(t, apperr.Is(err, apperr.TripAccessDenied))

	err = f.days.DeleteTripDay(ctx, f.bob.ID, trip.ID, day.ID)
	assert.True(t, apperr.Is(err, apperr.TripAccessDenied))

	_, err = f.places.CreateTripPlace(ctx, f.alice.ID, 9999, TripPlaceInput{PlaceName: "Udo", VisitOrder: 2})
	assert.True(t, apperr.Is(err, apperr.TripDayNotFound))
}

func TestTripDaysOrderedByDay(t *testing.T) {
	f := newFixture(t)
	trip := f.jejuTrip(t)
	f.day(t, trip, 3)
	f.day(t, trip, 1)
	f.day(t, trip, 1)

	days, err := f.days.GetTripDays(context.Background(), f.alice.ID, trip.ID)
	require.NoError(t, err)
	require.Len(t, days, 3)
	assert.Equal(t, []int{1, 1, 3}, []int{days[0].Day, days[1].Day, days[2].Day})
	assert.Less(t, days[0].ID, days[1].ID)
}

func TestDeleteTripDayWrongTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tripA := f.jejuTrip(t)
	tripB := f.jejuTrip(t)
	day := f.day(t, tripA, 1)

	err := f.days.DeleteTripDay(ctx, f.alice.ID, tripB.ID, day.ID)
	assert.True(t, apperr.Is(err, apperr.TripDayNotFound))

	require.NoError(t, f.days.DeleteTripDay(ctx, f.alice.ID, tripA.ID, day.ID))
	err = f.days.DeleteTripDay(ctx, f.alice.ID, tripA.ID, day.ID)
	assert.True(t, apperr.Is(err, apperr.TripDayNotFound))
}
