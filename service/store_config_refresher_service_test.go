package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"bakery-server/availability"
	"bakery-server/dao/redis"
	"bakery-server/db"
	"bakery-server/models"
)

// stubBakeryAPI answers GetStoreConfig with whatever was last configured.
type stubBakeryAPI struct {
	mu       sync.Mutex
	response *models.StoreConfigResponse
	err      error
	calls    int
}

func (s *stubBakeryAPI) set(resp *models.StoreConfigResponse, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.response, s.err = resp, err
}

func (s *stubBakeryAPI) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *stubBakeryAPI) GetStoreConfig(ctx context.Context) (*models.StoreConfigResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.response, s.err
}

func (s *stubBakeryAPI) CreateOrder(ctx context.Context, payload []byte, headers map[string]string) (int, []byte, error) {
	return 0, nil, errors.New("not implemented")
}

func newTestRefresher(t *testing.T, now time.Time) (*StoreConfigRefresherService, *StoreStatusService, *stubBakeryAPI, *db.MockRedisClient) {
	t.Helper()
	client := db.NewMockRedisClient()
	dao := redis.NewRedisStoreDAO(client)
	status := NewStoreStatusService(dao, jakarta, language.English)
	status.SetClock(func() time.Time { return now })
	api := &stubBakeryAPI{}
	return NewStoreConfigRefresherService(status, dao, api), status, api, client
}

func TestRefreshStoreConfig_ReplacesAndCachesSnapshot(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 12, 23, 22, 0, 0, 0, jakarta) // Monday, after close
	refresher, status, api, client := newTestRefresher(t, now)

	hours := availability.DefaultWeeklyHours()
	hours[1].CloseTime = "23:00"
	api.set(&models.StoreConfigResponse{Data: models.StoreConfig{OperatingHours: hours, WhatsappNumber: " 628111 "}}, nil)

	require.NoError(t, refresher.RefreshStoreConfig(ctx))

	assert.Equal(t, hours, status.Snapshot().Hours)
	assert.Equal(t, "628111", status.Snapshot().WhatsappNumber)
	assert.True(t, status.Status(language.English).IsOpen)

	cached, err := redis.NewRedisStoreDAO(client).GetStoreSnapshot(ctx)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, hours, cached.Hours)
}

func TestRefreshStoreConfig_BackendDownKeepsPreviousSnapshot(t *testing.T) {
	ctx := context.Background()
	refresher, status, api, _ := newTestRefresher(t, time.Date(2024, 12, 23, 10, 0, 0, 0, jakarta))

	previous := models.StoreSnapshot{Hours: availability.DefaultWeeklyHours(), WhatsappNumber: "628111"}
	status.ReplaceSnapshot(previous)
	api.set(nil, errors.New("connection refused"))

	assert.Error(t, refresher.RefreshStoreConfig(ctx))
	assert.Equal(t, previous, status.Snapshot())
}

func TestRefreshStoreConfig_RedisDownStillServesFreshConfig(t *testing.T) {
	ctx := context.Background()
	refresher, status, api, client := newTestRefresher(t, time.Date(2024, 12, 23, 10, 0, 0, 0, jakarta))
	client.SetFailure(errors.New("connection refused"))

	api.set(&models.StoreConfigResponse{Data: models.StoreConfig{OperatingHours: availability.DefaultWeeklyHours()}}, nil)

	require.NoError(t, refresher.RefreshStoreConfig(ctx))
	assert.Len(t, status.Snapshot().Hours, 7)
}

func TestRefreshStoreConfig_ReloadsManualOverride(t *testing.T) {
	ctx := context.Background()
	refresher, status, api, client := newTestRefresher(t, time.Date(2024, 12, 25, 10, 0, 0, 0, jakarta))
	api.set(nil, errors.New("backend down"))

	require.NoError(t, redis.NewRedisStoreDAO(client).SetClosureOverride(ctx,
		models.ClosureOverride{IsActive: true, StartDate: "2024-12-24", EndDate: "2024-12-26"}))

	assert.Error(t, refresher.RefreshStoreConfig(ctx))
	assert.NotNil(t, status.ClosureOverride())
	assert.False(t, status.Status(language.English).IsOpen)
}

func TestBootstrap_UsesCachedSnapshotWhenBackendDown(t *testing.T) {
	ctx := context.Background()
	refresher, status, api, client := newTestRefresher(t, time.Date(2024, 12, 23, 10, 0, 0, 0, jakarta))

	cached := availability.DefaultWeeklyHours()
	cached[1].IsOpen = false
	require.NoError(t, redis.NewRedisStoreDAO(client).SetStoreSnapshot(ctx, models.StoreSnapshot{Hours: cached}))
	api.set(nil, errors.New("backend down"))

	refresher.Bootstrap(ctx)

	assert.Equal(t, cached, status.Snapshot().Hours)
	assert.Equal(t, STATE_CLOSED, status.State())
}

func TestStartPeriodicJob_RefreshesUntilCancelled(t *testing.T) {
	refresher, status, api, _ := newTestRefresher(t, time.Date(2024, 12, 23, 10, 0, 0, 0, jakarta))
	api.set(&models.StoreConfigResponse{Data: models.StoreConfig{OperatingHours: availability.DefaultWeeklyHours()}}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	refresher.StartPeriodicJob(ctx, 10*time.Millisecond)

	require.Eventually(t, func() bool { return api.callCount() >= 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, STATE_OPEN, status.State())

	cancel()
	time.Sleep(30 * time.Millisecond)
	calls := api.callCount()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, calls, api.callCount())
}

func TestSnapshotFromConfig(t *testing.T) {
	now := time.Date(2024, 12, 24, 9, 0, 0, 0, jakarta)

	tests := []struct {
		name    string
		cfg     models.StoreConfig
		closure *models.ClosureOverride
	}{
		{
			name: "open store",
			cfg:  models.StoreConfig{IsTutup: false, TglBuka: "2024-12-27"},
		},
		{
			name:    "closed until reopening date",
			cfg:     models.StoreConfig{IsTutup: true, TglBuka: "2024-12-27"},
			closure: &models.ClosureOverride{IsActive: true, StartDate: "2024-12-24", EndDate: "2024-12-26"},
		},
		{
			name:    "reopening date with time part",
			cfg:     models.StoreConfig{IsTutup: true, TglBuka: "2024-12-27 00:00:00"},
			closure: &models.ClosureOverride{IsActive: true, StartDate: "2024-12-24", EndDate: "2024-12-26"},
		},
		{
			name:    "reopening tomorrow",
			cfg:     models.StoreConfig{IsTutup: true, TglBuka: "2024-12-25"},
			closure: &models.ClosureOverride{IsActive: true, StartDate: "2024-12-24", EndDate: "2024-12-24"},
		},
		{
			name:    "closed without reopening date",
			cfg:     models.StoreConfig{IsTutup: true},
			closure: &models.ClosureOverride{IsActive: true, StartDate: "2024-12-24"},
		},
		{
			name:    "unparsable reopening date",
			cfg:     models.StoreConfig{IsTutup: true, TglBuka: "soon"},
			closure: &models.ClosureOverride{IsActive: true, StartDate: "2024-12-24"},
		},
		{
			name: "reopening date already reached",
			cfg:  models.StoreConfig{IsTutup: true, TglBuka: "2024-12-24"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := SnapshotFromConfig(test.cfg, now)
			assert.Equal(t, test.closure, got.BackendClosure)
			assert.NotNil(t, got.Hours)
			assert.Equal(t, now, got.FetchedAt)
		})
	}
}
