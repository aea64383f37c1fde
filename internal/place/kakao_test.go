package place

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tripplanner-api/internal/apperr"
	"tripplanner-api/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newClient(url string, timeout time.Duration) *KakaoClient {
	return NewKakaoClient(config.KakaoConfig{RestAPIKey: "test-key", BaseURL: url, Timeout: timeout}, zap.NewNop())
}

func TestSearchPlacesSendsClampedQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/local/search/keyword.json", r.URL.Path)
		assert.Equal(t, "KakaoAK test-key", r.Header.Get("Authorization"))

		q := r.URL.Query()
		assert.Equal(t, "카페", q.Get("query"))
		assert.Equal(t, "126.53", q.Get("x"))
		assert.Equal(t, "33.49", q.Get("y"))
		assert.Equal(t, "20000", q.Get("radius"))
		assert.Equal(t, "1", q.Get("page"))
		assert.Equal(t, "15", q.Get("size"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"meta": {"total_count": 1, "pageable_count": 1, "is_end": true},
			"documents": [{"id": "123", "place_name": "Jeju Cafe", "address_name": "Jeju-si", "x": "126.531", "y": "33.499", "place_url": "http://place.map.kakao.com/123"}]
		}`))
	}))
	defer server.Close()

	result, err := newClient(server.URL, time.Second).SearchPlaces(context.Background(), "카페", 33.49, 126.53, 99, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 15, result.Size)
	assert.True(t, result.IsEnd)
	require.Len(t, result.Places, 1)
	assert.Equal(t, "Jeju Cafe", result.Places[0].Name)
	assert.InDelta(t, 33.499, result.Places[0].Latitude, 1e-9)
	assert.InDelta(t, 126.531, result.Places[0].Longitude, 1e-9)
}

func TestSearchPlacesUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"errorType":"AccessDeniedError","message":"wrong appKey"}`))
	}))
	defer server.Close()

	_, err := newClient(server.URL, time.Second).SearchPlaces(context.Background(), "cafe", 33.4, 126.5, 1, 15)
	assert.True(t, apperr.Is(err, apperr.KakaoAPIError))
}

func TestSearchPlacesTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	_, err := newClient(server.URL, 20*time.Millisecond).SearchPlaces(context.Background(), "cafe", 33.4, 126.5, 1, 15)
	assert.True(t, apperr.Is(err, apperr.ExternalAPITimeout))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 45, ClampPage(45))
	assert.Equal(t, 1, ClampPage(46))
	assert.Equal(t, 1, ClampPage(0))
	assert.Equal(t, 7, ClampSize(7))
	assert.Equal(t, 15, ClampSize(16))
}
