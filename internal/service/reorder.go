package service

import (
	"sort"

	"tripplanner-api/internal/apperr"
	"tripplanner-api/internal/models"
	"tripplanner-api/internal/repository"
)

// planVisitOrder moves target to newOrder and makes room among its siblings.
// Moving down shifts (cur, new] up by one slot (order-1); moving up shifts
// [new, cur) down by one slot (order+1). The target is first parked on an
// order no sibling holds, and siblings are shifted in an order that never
// lands two rows on the same value, so every individual write keeps the
// per-day unique index satisfied. Gaps in the sequence are tolerated.
func planVisitOrder(places []models.TripPlace, targetID int64, newOrder int) ([]repository.OrderChange, error) {
	var target *models.TripPlace
	park := 0
	for i := range places {
		if places[i].ID == targetID {
			target = &places[i]
		}
		if places[i].VisitOrder <= park {
			park = places[i].VisitOrder - 1
		}
	}
	if target == nil {
		return nil, apperr.New(apperr.TripPlaceNotFound)
	}

	current := target.VisitOrder
	if current == newOrder {
		return nil, nil
	}

	var siblings []models.TripPlace
	for _, p := range places {
		if p.ID == targetID {
			continue
		}
		if newOrder > current && p.VisitOrder > current && p.VisitOrder <= newOrder {
			siblings = append(siblings, p)
		}
		if newOrder < current && p.VisitOrder >= newOrder && p.VisitOrder < current {
			siblings = append(siblings, p)
		}
	}

	changes := make([]repository.OrderChange, 0, len(siblings)+2)
	changes = append(changes, repository.OrderChange{PlaceID: targetID, VisitOrder: park})

	if newOrder > current {
		sort.Slice(siblings, func(i, j int) bool { return siblings[i].VisitOrder < siblings[j].VisitOrder })
		for _, p := range siblings {
			changes = append(changes, repository.OrderChange{PlaceID: p.ID, VisitOrder: p.VisitOrder - 1})
		}
	} else {
		sort.Slice(siblings, func(i, j int) bool { return siblings[i].VisitOrder > siblings[j].VisitOrder })
		for _, p := range siblings {
			changes = append(changes, repository.OrderChange{PlaceID: p.ID, VisitOrder: p.VisitOrder + 1})
		}
	}

	changes = append(changes, repository.OrderChange{PlaceID: targetID, VisitOrder: newOrder})
	return changes, nil
}
