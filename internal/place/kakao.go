// Package place talks to the Kakao Local keyword search API.
package place

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"

	"tripplanner-api/internal/apperr"
	"tripplanner-api/internal/config"
	"tripplanner-api/internal/models"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	keywordSearchPath = "/v2/local/search/keyword.json"
	searchRadius      = 20000

	maxPage     = 45
	maxSize     = 15
	defaultPage = 1
	defaultSize = 15
)

type keywordResponse struct {
	Meta struct {
		TotalCount    int  `json:"total_count"`
		PageableCount int  `json:"pageable_count"`
		IsEnd         bool `json:"is_end"`
	} `json:"meta"`
	Documents []document `json:"documents"`
}

type document struct {
	ID          string `json:"id"`
	PlaceName   string `json:"place_name"`
	Category    string `json:"category_name"`
	AddressName string `json:"address_name"`
	RoadAddress string `json:"road_address_name"`
	Phone       string `json:"phone"`
	PlaceURL    string `json:"place_url"`
	X           string `json:"x"`
	Y           string `json:"y"`
	Distance    string `json:"distance"`
}

type errorResponse struct {
	ErrorType string `json:"errorType"`
	Message   string `json:"message"`
}

type KakaoClient struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

func NewKakaoClient(cfg config.KakaoConfig, logger *zap.Logger) *KakaoClient {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Authorization", "KakaoAK "+cfg.RestAPIKey).
		SetHeader("Accept", "application/json")

	return &KakaoClient{
		httpClient: client,
		logger:     logger,
	}
}

// ClampPage keeps page inside Kakao's 1..45 window.
func ClampPage(page int) int {
	if page < 1 || page > maxPage {
		return defaultPage
	}
	return page
}

// ClampSize keeps size inside Kakao's 1..15 window.
func ClampSize(size int) int {
	if size < 1 || size > maxSize {
		return defaultSize
	}
	return size
}

// SearchPlaces runs a keyword search centred on lat/lng within 20km.
func (c *KakaoClient) SearchPlaces(ctx context.Context, keyword string, lat, lng float64, page, size int) (*models.PlaceSearchResult, error) {
	page, size = ClampPage(page), ClampSize(size)

	var body keywordResponse
	var failure errorResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"query":  keyword,
			"x":      strconv.FormatFloat(lng, 'f', -1, 64),
			"y":      strconv.FormatFloat(lat, 'f', -1, 64),
			"radius": strconv.Itoa(searchRadius),
			"page":   strconv.Itoa(page),
			"size":   strconv.Itoa(size),
		}).
		SetResult(&body).
		SetError(&failure).
		Get(keywordSearchPath)

	if err != nil {
		c.logger.Error("Kakao API call failed", zap.String("keyword", keyword), zap.Error(err))
		if isTimeout(err) {
			return nil, apperr.Wrap(apperr.ExternalAPITimeout, err)
		}
		return nil, apperr.Wrap(apperr.KakaoAPIError, err)
	}

	if resp.IsError() {
		c.logger.Error("Kakao API returned error",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("error_type", failure.ErrorType),
			zap.String("message", failure.Message),
		)
		return nil, apperr.Wrap(apperr.KakaoAPIError,
			fmt.Errorf("kakao status %d: %s", resp.StatusCode(), failure.Message))
	}

	result := &models.PlaceSearchResult{
		Places:        make([]models.Place, 0, len(body.Documents)),
		TotalCount:    body.Meta.TotalCount,
		PageableCount: body.Meta.PageableCount,
		IsEnd:         body.Meta.IsEnd,
		Page:          page,
		Size:          size,
	}
	for _, doc := range body.Documents {
		result.Places = append(result.Places, doc.toPlace())
	}

	c.logger.Debug("Kakao search finished", zap.String("keyword", keyword), zap.Int("count", len(result.Places)))
	return result, nil
}

func (d document) toPlace() models.Place {
	lng, _ := strconv.ParseFloat(d.X, 64)
	lat, _ := strconv.ParseFloat(d.Y, 64)
	return models.Place{
		ID:          d.ID,
		Name:        d.PlaceName,
		Category:    d.Category,
		Address:     d.AddressName,
		RoadAddress: d.RoadAddress,
		Phone:       d.Phone,
		URL:         d.PlaceURL,
		Latitude:    lat,
		Longitude:   lng,
		Distance:    d.Distance,
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
