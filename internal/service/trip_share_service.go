package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tripplanner-api/internal/apperr"
	"tripplanner-api/internal/constants"
	"tripplanner-api/internal/models"
	"tripplanner-api/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TripShareService struct {
	shares  repository.TripShareRepository
	trips   *TripService
	baseURL string
	now     func() time.Time
	logger  *zap.Logger
}

func NewTripShareService(shares repository.TripShareRepository, trips *TripService, baseURL string, logger *zap.Logger) *TripShareService {
	return &TripShareService{
		shares:  shares,
		trips:   trips,
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
		logger:  logger,
	}
}

type TripShareInput struct {
	IsPublic   bool
	ExpiryDate *time.Time
}

type TripSummary struct {
	ID        int64       `json:"id"`
	Title     string      `json:"title"`
	StartDate models.Date `json:"start_date"`
	EndDate   models.Date `json:"end_date"`
	Region    *string     `json:"region,omitempty"`
}

type TripShareView struct {
	ID         int64       `json:"id"`
	TripID     int64       `json:"trip_id"`
	ShareToken string      `json:"share_token"`
	ShareURL   string      `json:"share_url"`
	IsPublic   bool        `json:"is_public"`
	ExpiryDate *time.Time  `json:"expiry_date,omitempty"`
	IsExpired  bool        `json:"is_expired"`
	ViewCount  int         `json:"view_count"`
	CreatedAt  time.Time   `json:"created_at"`
	Trip       TripSummary `json:"trip"`
}

func (s *TripShareService) view(shared models.SharedTrip) TripShareView {
	share := shared.Share
	return TripShareView{
		ID:         share.ID,
		TripID:     share.TripID,
		ShareToken: share.ShareToken,
		ShareURL:   fmt.Sprintf("%s/shared/%s", s.baseURL, share.ShareToken),
		IsPublic:   share.IsPublic,
		ExpiryDate: share.ExpiryDate,
		IsExpired:  share.IsExpired(s.now()),
		ViewCount:  share.ViewCount,
		CreatedAt:  share.CreatedAt,
		Trip: TripSummary{
			ID:        shared.Trip.ID,
			Title:     shared.Trip.Title,
			StartDate: shared.Trip.StartDate,
			EndDate:   shared.Trip.EndDate,
			Region:    shared.Trip.Region,
		},
	}
}

func (s *TripShareService) views(shared []models.SharedTrip) []TripShareView {
	out := make([]TripShareView, 0, len(shared))
	for _, st := range shared {
		out = append(out, s.view(st))
	}
	return out
}

// CreateSharingLink gives a trip its one share row. A second call fails with
// TripShareAlreadyExists whatever its fields.
func (s *TripShareService) CreateSharingLink(ctx context.Context, callerID, tripID int64, in TripShareInput) (*TripShareView, error) {
	trip, err := s.trips.FindTripWithOwnerValidation(ctx, callerID, tripID)
	if err != nil {
		return nil, err
	}

	exists, err := s.shares.ExistsByTripID(ctx, tripID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if exists {
		return nil, apperr.New(apperr.TripShareAlreadyExists)
	}

	share := &models.TripShare{
		TripID:     tripID,
		ShareToken: uuid.NewString(),
		IsPublic:   in.IsPublic,
		ExpiryDate: in.ExpiryDate,
	}
	if err := s.shares.Create(ctx, share); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.New(apperr.TripShareAlreadyExists)
		}
		return nil, apperr.Internal(err)
	}

	s.logger.Info("trip shared", zap.Int64("trip_id", tripID), zap.Bool("public", share.IsPublic))
	v := s.view(models.SharedTrip{Share: *share, Trip: *trip})
	return &v, nil
}

// GetSharedTrip serves anonymous readers. Private or expired shares fail
// before the view counter is touched.
func (s *TripShareService) GetSharedTrip(ctx context.Context, token string) (*TripShareView, error) {
	shared, err := s.shares.GetByToken(ctx, token)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.New(apperr.TripShareNotFound)
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}

	if !shared.Share.Accessible(s.now()) {
		return nil, apperr.New(apperr.TripShareAccessDenied)
	}

	count, err := s.shares.IncrementViewCount(ctx, shared.Share.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.New(apperr.TripShareNotFound)
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	shared.Share.ViewCount = count

	v := s.view(*shared)
	return &v, nil
}

func (s *TripShareService) GetMySharedTrips(ctx context.Context, memberID int64) ([]TripShareView, error) {
	shared, err := s.shares.ListByMember(ctx, memberID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return s.views(shared), nil
}

// GetPublicSharedTrips pages through live public shares. sortBy "popular"
// orders by views; anything else orders by newest.
func (s *TripShareService) GetPublicSharedTrips(ctx context.Context, page, size int, sortBy string) (models.Page[TripShareView], error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = constants.DefaultPageSize
	}
	if size > constants.MaxPageSize {
		size = constants.MaxPageSize
	}

	sort := repository.ShareSortLatest
	if sortBy == constants.SortPopular {
		sort = repository.ShareSortPopular
	}

	shared, total, err := s.shares.ListPublic(ctx, s.now(), sort, size, page*size)
	if err != nil {
		return models.Page[TripShareView]{}, apperr.Internal(err)
	}
	return models.NewPage(s.views(shared), total, page, size), nil
}

func (s *TripShareService) findShare(ctx context.Context, callerID, tripID int64) (*models.SharedTrip, error) {
	if _, err := s.trips.FindTripWithOwnerValidation(ctx, callerID, tripID); err != nil {
		return nil, err
	}
	shared, err := s.shares.GetByTripID(ctx, tripID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.New(apperr.TripShareNotFound)
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return shared, nil
}

func (s *TripShareService) UpdateTripShare(ctx context.Context, callerID, tripID int64, in TripShareInput) (*TripShareView, error) {
	shared, err := s.findShare(ctx, callerID, tripID)
	if err != nil {
		return nil, err
	}

	shared.Share.IsPublic = in.IsPublic
	shared.Share.ExpiryDate = in.ExpiryDate
	if err := s.shares.Update(ctx, &shared.Share); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.TripShareNotFound)
		}
		return nil, apperr.Internal(err)
	}

	v := s.view(*shared)
	return &v, nil
}

func (s *TripShareService) DeleteTripShare(ctx context.Context, callerID, tripID int64) error {
	shared, err := s.findShare(ctx, callerID, tripID)
	if err != nil {
		return err
	}
	if err := s.shares.Delete(ctx, shared.Share.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.New(apperr.TripShareNotFound)
		}
		return apperr.Internal(err)
	}
	return nil
}
