package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hotel-search-service/internal/adapters/repositories"
	"hotel-search-service/internal/services"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T) (*httptest.Server, *services.HotelService) {
	t.Helper()
	svc := services.NewHotelService(repositories.NewMemoryHotelRepository(), nil, nil, zap.NewNop())
	srv := httptest.NewServer(NewRouter(svc, zap.NewNop(), testSecret))
	t.Cleanup(srv.Close)
	return srv, svc
}

func bearerToken(t *testing.T) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "tester",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, method, url, token string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = res.Body.Close() })
	return res
}

func TestHealthEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	res, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestSearchEndpoint(t *testing.T) {
	srv, svc := newTestServer(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.CreateHotel(ctx, fmt.Sprintf("Hotel %d", i), 100+float64(i)*50, 48.2+float64(i)*0.01, 16.37)
		require.NoError(t, err)
	}

	res, err := http.Get(srv.URL + "/hotels/search?lat=48.19&lon=16.37&page=1&page_size=2")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var page services.SearchPage
	require.NoError(t, json.NewDecoder(res.Body).Decode(&page))
	assert.Equal(t, 3, page.TotalCount)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, "Hotel 0", page.Items[0].Name, "cheapest and closest ranks first")
}

func TestSearchEndpointValidation(t *testing.T) {
	srv, _ := newTestServer(t)

	cases := []struct {
		name  string
		query string
	}{
		{"missing lat", "lon=16.37"},
		{"lat not a number", "lat=abc&lon=16.37"},
		{"lat out of range", "lat=91&lon=16.37"},
		{"bad page", "lat=48.2&lon=16.37&page=0"},
		{"bad page size", "lat=48.2&lon=16.37&page_size=101"},
	}

	for _, tc := range cases {
		res, err := http.Get(srv.URL + "/hotels/search?" + tc.query)
		require.NoError(t, err, tc.name)
		res.Body.Close()
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, tc.name)
	}
}

func TestSearchEndpointEmptyStore(t *testing.T) {
	srv, _ := newTestServer(t)

	res, err := http.Get(srv.URL + "/hotels/search?lat=48.2&lon=16.37")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var page services.SearchPage
	require.NoError(t, json.NewDecoder(res.Body).Decode(&page))
	assert.Equal(t, 0, page.TotalCount)
	assert.Empty(t, page.Items)
}

func TestMutationsRequireToken(t *testing.T) {
	srv, _ := newTestServer(t)

	body := map[string]any{"name": "Hotel", "price": 100, "latitude": 48.2, "longitude": 16.37}

	res := doJSON(t, http.MethodPost, srv.URL+"/hotels", "", body)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res = doJSON(t, http.MethodDelete, srv.URL+"/hotels/some-id", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestCreateGetUpdateDelete(t *testing.T) {
	srv, _ := newTestServer(t)
	token := bearerToken(t)

	created := doJSON(t, http.MethodPost, srv.URL+"/hotels", token,
		map[string]any{"name": "Grand", "price": 120.5, "latitude": 48.2, "longitude": 16.37})
	require.Equal(t, http.StatusCreated, created.StatusCode)

	var hotel struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.NewDecoder(created.Body).Decode(&hotel))
	require.NotEmpty(t, hotel.ID)

	got, err := http.Get(srv.URL + "/hotels/" + hotel.ID)
	require.NoError(t, err)
	got.Body.Close()
	assert.Equal(t, http.StatusOK, got.StatusCode)

	updated := doJSON(t, http.MethodPut, srv.URL+"/hotels/"+hotel.ID, token,
		map[string]any{"name": "Grand Renamed", "price": 130, "latitude": 48.2, "longitude": 16.37})
	assert.Equal(t, http.StatusOK, updated.StatusCode)

	deleted := doJSON(t, http.MethodDelete, srv.URL+"/hotels/"+hotel.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, deleted.StatusCode)

	deletedAgain := doJSON(t, http.MethodDelete, srv.URL+"/hotels/"+hotel.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, deletedAgain.StatusCode)
}

func TestMutationValidationErrors(t *testing.T) {
	srv, _ := newTestServer(t)
	token := bearerToken(t)

	cases := []struct {
		name string
		body map[string]any
	}{
		{"empty name", map[string]any{"name": "", "price": 100, "latitude": 48.2, "longitude": 16.37}},
		{"zero price", map[string]any{"name": "Hotel", "price": 0, "latitude": 48.2, "longitude": 16.37}},
		{"lat out of range", map[string]any{"name": "Hotel", "price": 100, "latitude": 95, "longitude": 16.37}},
	}

	for _, tc := range cases {
		res := doJSON(t, http.MethodPost, srv.URL+"/hotels", token, tc.body)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, tc.name)
	}

	// Unknown fields are rejected outright.
	res := doJSON(t, http.MethodPost, srv.URL+"/hotels", token,
		map[string]any{"name": "Hotel", "price": 100, "latitude": 48.2, "longitude": 16.37, "stars": 5})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestGetMissingHotel(t *testing.T) {
	srv, _ := newTestServer(t)

	res, err := http.Get(srv.URL + "/hotels/does-not-exist")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestUpdateMissingHotel(t *testing.T) {
	srv, _ := newTestServer(t)
	token := bearerToken(t)

	res := doJSON(t, http.MethodPut, srv.URL+"/hotels/does-not-exist", token,
		map[string]any{"name": "Hotel", "price": 100, "latitude": 48.2, "longitude": 16.37})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
