package service

import (
	"context"
	"testing"
	"time"

	"tripplanner-api/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSharedTripViewCountIncrements(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	trip := f.jejuTrip(t)

	share, err := f.shares.CreateSharingLink(ctx, f.alice.ID, trip.ID, TripShareInput{IsPublic: true})
	require.NoError(t, err)
	assert.Equal(t, "https://trip.example.com/shared/"+share.ShareToken, share.ShareURL)
	assert.Len(t, share.ShareToken, 36)
	assert.Equal(t, 0, share.ViewCount)

	for i := 1; i <= 3; i++ {
		got, err := f.shares.GetSharedTrip(ctx, share.ShareToken)
		require.NoError(t, err)
		assert.Equal(t, i, got.ViewCount)
		assert.Equal(t, "Jeju", got.Trip.Title)
	}
}

func TestPrivateShareDeniedWithoutCounting(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	trip := f.jejuTrip(t)

	share, err := f.shares.CreateSharingLink(ctx, f.alice.ID, trip.ID, TripShareInput{IsPublic: false})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = f.shares.GetSharedTrip(ctx, share.ShareToken)
		assert.True(t, apperr.Is(err, apperr.TripShareAccessDenied))
	}

	mine, err := f.shares.GetMySharedTrips(ctx, f.alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, 0, mine[0].ViewCount)
}

func TestExpiredShareDeniedWithoutCounting(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	trip := f.jejuTrip(t)
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	f.shares.now = func() time.Time { return now }

	expiry := now.Add(time.Hour)
	share, err := f.shares.CreateSharingLink(ctx, f.alice.ID, trip.ID, TripShareInput{IsPublic: true, ExpiryDate: &expiry})
	require.NoError(t, err)
	assert.False(t, share.IsExpired)

	f.shares.now = func() time.Time { return now.Add(2 * time.Hour) }
	_, err = f.shares.GetSharedTrip(ctx, share.ShareToken)
	assert.True(t, apperr.Is(err, apperr.TripShareAccessDenied))

	mine, err := f.shares.GetMySharedTrips(ctx, f.alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, mine[0].ViewCount)
	assert.True(t, mine[0].IsExpired)
}

func TestUnknownShareToken(t *testing.T) {
	f := newFixture(t)

	_, err := f.shares.GetSharedTrip(context.Background(), "no-such-token")
	assert.True(t, apperr.Is(err, apperr.TripShareNotFound))
}

func TestCreateSharingLinkTwiceConflicts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	trip := f.jejuTrip(t)

	_, err := f.shares.CreateSharingLink(ctx, f.alice.ID, trip.ID, TripShareInput{IsPublic: true})
	require.NoError(t, err)

	_, err = f.shares.CreateSharingLink(ctx, f.alice.ID, trip.ID, TripShareInput{IsPublic: false})
	assert.True(t, apperr.Is(err, apperr.TripShareAlreadyExists))

	_, err = f.shares.CreateSharingLink(ctx, f.bob.ID, trip.ID, TripShareInput{IsPublic: true})
	assert.True(t, apperr.Is(err, apperr.TripAccessDenied))
}

func TestShareCanBeRecreatedAfterDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	trip := f.jejuTrip(t)

	first, err := f.shares.CreateSharingLink(ctx, f.alice.ID, trip.ID, TripShareInput{IsPublic: true})
	require.NoError(t, err)
	require.NoError(t, f.shares.DeleteTripShare(ctx, f.alice.ID, trip.ID))

	err = f.shares.DeleteTripShare(ctx, f.alice.ID, trip.ID)
	assert.True(t, apperr.Is(err, apperr.TripShareNotFound))

	second, err := f.shares.CreateSharingLink(ctx, f.alice.ID, trip.ID, TripShareInput{IsPublic: true})
	require.NoError(t, err)
	assert.NotEqual(t, first.ShareToken, second.ShareToken)
}

func TestUpdateTripShare(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	trip := f.jejuTrip(t)

	_, err := f.shares.UpdateTripShare(ctx, f.alice.ID, trip.ID, TripShareInput{IsPublic: true})
	assert.True(t, apperr.Is(err, apperr.TripShareNotFound))

	share, err := f.shares.CreateSharingLink(ctx, f.alice.ID, trip.ID, TripShareInput{IsPublic: false})
	require.NoError(t, err)

	updated, err := f.shares.UpdateTripShare(ctx, f.alice.ID, trip.ID, TripShareInput{IsPublic: true})
	require.NoError(t, err)
	assert.True(t, updated.IsPublic)
	assert.Equal(t, share.ShareToken, updated.ShareToken)

	_, err = f.shares.GetSharedTrip(ctx, share.ShareToken)
	assert.NoError(t, err)
}

func TestPublicSharedTripsFilterAndSort(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	past := time.Now().Add(-time.Hour)

	quiet := f.jejuTrip(t)
	popular := f.jejuTrip(t)
	hidden := f.jejuTrip(t)
	expired := f.jejuTrip(t)

	_, err := f.shares.CreateSharingLink(ctx, f.alice.ID, quiet.ID, TripShareInput{IsPublic: true})
	require.NoError(t, err)
	pop, err := f.shares.CreateSharingLink(ctx, f.alice.ID, popular.ID, TripShareInput{IsPublic: true})
	require.NoError(t, err)
	_, err = f.shares.CreateSharingLink(ctx, f.alice.ID, hidden.ID, TripShareInput{IsPublic: false})
	require.NoError(t, err)
	_, err = f.shares.CreateSharingLink(ctx, f.alice.ID, expired.ID, TripShareInput{IsPublic: true, ExpiryDate: &past})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = f.shares.GetSharedTrip(ctx, pop.ShareToken)
		require.NoError(t, err)
	}

	page, err := f.shares.GetPublicSharedTrips(ctx, 0, 0, "popular")
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	assert.Equal(t, 20, page.Size)
	require.Len(t, page.Items, 2)
	assert.Equal(t, popular.ID, page.Items[0].TripID)

	latest, err := f.shares.GetPublicSharedTrips(ctx, 0, 1, "bogus")
	require.NoError(t, err)
	require.Len(t, latest.Items, 1)
	assert.True(t, latest.HasMore)

	capped, err := f.shares.GetPublicSharedTrips(ctx, 0, 1000, "latest")
	require.NoError(t, err)
	assert.Equal(t, 100, capped.Size)
}
