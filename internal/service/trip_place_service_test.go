package service

import (
	"context"
	"fmt"
	"testing"

	"tripplanner-api/internal/apperr"
	"tripplanner-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJejuReorderScenario(t *testing.T) {
	f := newFixture(t)
	trip := f.jejuTrip(t)
	day := f.day(t, trip, 1)
	seongsan := f.place(t, day, "Seongsan", 1)
	f.place(t, day, "Udo", 2)

	moved, err := f.places.UpdateVisitOrder(context.Background(), f.alice.ID, day.ID, seongsan.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, moved.VisitOrder)
	assert.Equal(t, map[string]int{"Seongsan": 2, "Udo": 1}, f.orders(t, day))
}

func TestReorderMoveUp(t *testing.T) {
	f := newFixture(t)
	trip := f.jejuTrip(t)
	day := f.day(t, trip, 1)
	for i, name := range []string{"A", "B", "C"} {
		f.place(t, day, name, i+1)
	}
	d := f.place(t, day, "D", 4)

	_, err := f.places.UpdateVisitOrder(context.Background(), f.alice.ID, day.ID, d.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"A": 1, "D": 2, "B": 3, "C": 4}, f.orders(t, day))
}

func TestReorderSameOrderWritesNothing(t *testing.T) {
	f := newFixture(t)
	trip := f.jejuTrip(t)
	day := f.day(t, trip, 1)
	a := f.place(t, day, "A", 1)
	f.place(t, day, "B", 2)

	before := f.store.PlaceWrites()
	got, err := f.places.UpdateVisitOrder(context.Background(), f.alice.ID, day.ID, a.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, *a, *got)
	assert.Equal(t, before, f.store.PlaceWrites())
}

func TestReorderRejectsNonPositiveOrder(t *testing.T) {
	f := newFixture(t)
	trip := f.jejuTrip(t)
	day := f.day(t, trip, 1)
	a := f.place(t, day, "A", 1)

	_, err := f.places.UpdateVisitOrder(context.Background(), f.alice.ID, day.ID, a.ID, 0)
	assert.True(t, apperr.Is(err, apperr.InvalidVisitOrder))
}

func TestReorderPlaceFromAnotherDay(t *testing.T) {
	f := newFixture(t)
	trip := f.jejuTrip(t)
	day1 := f.day(t, trip, 1)
	day2 := f.day(t, trip, 2)
	a := f.place(t, day1, "A", 1)

	_, err := f.places.UpdateVisitOrder(context.Background(), f.alice.ID, day2.ID, a.ID, 2)
	assert.True(t, apperr.Is(err, apperr.TripPlaceNotFound))
}

func TestReorderWithGaps(t *testing.T) {
	f := newFixture(t)
	trip := f.jejuTrip(t)
	day := f.day(t, trip, 1)
	f.place(t, day, "A", 1)
	f.place(t, day, "B", 3)
	c := f.place(t, day, "C", 5)

	_, err := f.places.UpdateVisitOrder(context.Background(), f.alice.ID, day.ID, c.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"C": 1, "A": 2, "B": 4}, f.orders(t, day))
}

// Every move inside a dense day behaves like remove-and-reinsert, and the
// store rejects any intermediate step that would duplicate an order.
func TestReorderMatchesRemoveAndInsert(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for from := 1; from <= n; from++ {
			for to := 1; to <= n; to++ {
				t.Run(fmt.Sprintf("n%d_%d_to_%d", n, from, to), func(t *testing.T) {
					f := newFixture(t)
					trip := f.jejuTrip(t)
					day := f.day(t, trip, 1)

					names := make([]string, n)
					var target *models.TripPlace
					for i := 0; i < n; i++ {
						names[i] = fmt.Sprintf("P%d", i+1)
						p := f.place(t, day, names[i], i+1)
						if i+1 == from {
							target = p
						}
					}

					_, err := f.places.UpdateVisitOrder(context.Background(), f.alice.ID, day.ID, target.ID, to)
					require.NoError(t, err)

					expected := append([]string{}, names[:from-1]...)
					expected = append(expected, names[from:]...)
					expected = append(expected[:to-1], append([]string{names[from-1]}, expected[to-1:]...)...)

					want := map[string]int{}
					for i, name := range expected {
						want[name] = i + 1
					}
					assert.Equal(t, want, f.orders(t, day))
				})
			}
		}
	}
}

func TestPlanVisitOrderParksBelowExistingOrders(t *testing.T) {
	places := []models.TripPlace{{ID: 1, VisitOrder: 0}, {ID: 2, VisitOrder: 1}, {ID: 3, VisitOrder: 2}}

	changes, err := planVisitOrder(places, 3, 1)
	require.NoError(t, err)
	require.NotEmpty(t, changes)
	assert.Equal(t, -1, changes[0].VisitOrder)
	assert.Equal(t, 1, changes[len(changes)-1].VisitOrder)
}

func TestPlanVisitOrderMissingTarget(t *testing.T) {
	_, err := planVisitOrder([]models.TripPlace{{ID: 1, VisitOrder: 1}}, 2, 1)
	assert.True(t, apperr.Is(err, apperr.TripPlaceNotFound))
}

func TestCreateTripPlaceDuplicateOrder(t *testing.T) {
	f := newFixture(t)
	trip := f.jejuTrip(t)
	day := f.day(t, trip, 1)
	f.place(t, day, "A", 1)

	_, err := f.places.CreateTripPlace(context.Background(), f.alice.ID, day.ID, TripPlaceInput{PlaceName: "B", VisitOrder: 1})
	assert.True(t, apperr.Is(err, apperr.DuplicateVisitOrder))
}

func TestUpdateTripPlaceBypassesShift(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	trip := f.jejuTrip(t)
	day := f.day(t, trip, 1)
	a := f.place(t, day, "A", 1)
	f.place(t, day, "B", 2)

	memo := "sunrise"
	_, err := f.places.UpdateTripPlace(ctx, f.alice.ID, day.ID, a.ID, TripPlaceInput{PlaceName: "A", Memo: &memo, VisitOrder: 2})
	assert.True(t, apperr.Is(err, apperr.DuplicateVisitOrder))

	updated, err := f.places.UpdateTripPlace(ctx, f.alice.ID, day.ID, a.ID, TripPlaceInput{PlaceName: "A2", Memo: &memo, VisitOrder: 3})
	require.NoError(t, err)
	assert.Equal(t, "sunrise", *updated.Memo)
	assert.Equal(t, map[string]int{"A2": 3, "B": 2}, f.orders(t, day))
}

func TestDeleteTripPlaceLeavesGap(t *testing.T) {
	f := newFixture(t)
	trip := f.jejuTrip(t)
	day := f.day(t, trip, 1)
	f.place(t, day, "A", 1)
	b := f.place(t, day, "B", 2)
	f.place(t, day, "C", 3)

	require.NoError(t, f.places.DeleteTripPlace(context.Background(), f.alice.ID, day.ID, b.ID))
	assert.Equal(t, map[string]int{"A": 1, "C": 3}, f.orders(t, day))
}
