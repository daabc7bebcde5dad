package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-search-service/internal/adapters/repositories"
	"hotel-search-service/internal/domain"
	"hotel-search-service/internal/services"
)

// fakeCache records cache traffic so tests can assert hit/miss/invalidate
// behavior without a running redis.
type fakeCache struct {
	entries     map[string]*services.SearchPage
	gets, sets  int
	invalidates int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]*services.SearchPage{}}
}

func (c *fakeCache) Get(_ context.Context, key string) (*services.SearchPage, error) {
	c.gets++
	return c.entries[key], nil
}

func (c *fakeCache) Set(_ context.Context, key string, page *services.SearchPage) error {
	c.sets++
	c.entries[key] = page
	return nil
}

func (c *fakeCache) InvalidateAll(_ context.Context) error {
	c.invalidates++
	c.entries = map[string]*services.SearchPage{}
	return nil
}

type publishedEvent struct {
	subject string
	payload any
}

type fakePublisher struct {
	events []publishedEvent
}

func (p *fakePublisher) Publish(_ context.Context, subject string, payload any) error {
	p.events = append(p.events, publishedEvent{subject: subject, payload: payload})
	return nil
}

func seedHotels(t *testing.T, svc *services.HotelService, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := svc.CreateHotel(context.Background(), "Hotel", 100+float64(i), 45+float64(i)*0.01, 15)
		require.NoError(t, err)
	}
}

func TestHotelServiceSearchEmptyStore(t *testing.T) {
	svc := services.NewHotelService(repositories.NewMemoryHotelRepository(), nil, nil, nil)

	page, err := svc.SearchHotels(context.Background(), services.SearchHotelsRequest{
		Latitude: 45, Longitude: 15, Page: 1, PageSize: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, page.TotalCount)
	assert.Empty(t, page.Items)
}

func TestHotelServiceSearchPaginates(t *testing.T) {
	svc := services.NewHotelService(repositories.NewMemoryHotelRepository(), nil, nil, nil)
	seedHotels(t, svc, 25)

	for page, wantItems := range map[int]int{1: 10, 2: 10, 3: 5} {
		got, err := svc.SearchHotels(context.Background(), services.SearchHotelsRequest{
			Latitude: 45, Longitude: 15, Page: page, PageSize: 10,
		})
		require.NoError(t, err)
		assert.Len(t, got.Items, wantItems, "page %d", page)
		assert.Equal(t, 25, got.TotalCount)
		assert.Equal(t, 3, got.TotalPages)
	}
}

func TestHotelServiceSearchUsesCache(t *testing.T) {
	cache := newFakeCache()
	svc := services.NewHotelService(repositories.NewMemoryHotelRepository(), cache, nil, nil)
	seedHotels(t, svc, 3)
	cache.invalidates = 0 // ignore the seeding mutations

	req := services.SearchHotelsRequest{Latitude: 45, Longitude: 15, Page: 1, PageSize: 10}

	first, err := svc.SearchHotels(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets, "miss populates the cache")

	second, err := svc.SearchHotels(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets, "hit must not write again")
	assert.Equal(t, first, second)
}

func TestHotelServiceMutationsInvalidateCacheAndPublish(t *testing.T) {
	cache := newFakeCache()
	pub := &fakePublisher{}
	svc := services.NewHotelService(repositories.NewMemoryHotelRepository(), cache, pub, nil)

	ctx := context.Background()
	h, err := svc.CreateHotel(ctx, "Alpha", 100, 45, 15)
	require.NoError(t, err)

	_, err = svc.UpdateHotel(ctx, h.ID, "Alpha Renamed", 120, 45, 15)
	require.NoError(t, err)

	deleted, err := svc.DeleteHotel(ctx, h.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	assert.Equal(t, 3, cache.invalidates)
	require.Len(t, pub.events, 3)
	assert.Equal(t, services.SubjectHotelCreated, pub.events[0].subject)
	assert.Equal(t, services.SubjectHotelUpdated, pub.events[1].subject)
	assert.Equal(t, services.SubjectHotelDeleted, pub.events[2].subject)
}

func TestHotelServiceDeleteAbsentPublishesNothing(t *testing.T) {
	pub := &fakePublisher{}
	svc := services.NewHotelService(repositories.NewMemoryHotelRepository(), nil, pub, nil)

	deleted, err := svc.DeleteHotel(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Empty(t, pub.events, "no event for a no-op delete")
}

func TestHotelServiceUpdateMissing(t *testing.T) {
	svc := services.NewHotelService(repositories.NewMemoryHotelRepository(), nil, nil, nil)

	_, err := svc.UpdateHotel(context.Background(), "missing", "Name", 100, 45, 15)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHotelServiceGetAbsentIsNotAnError(t *testing.T) {
	svc := services.NewHotelService(repositories.NewMemoryHotelRepository(), nil, nil, nil)

	hotel, err := svc.GetHotel(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, hotel)
}
