package services

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"bakery-server/api/bakery"
	"bakery-server/availability"
	"bakery-server/dao/redis"
	"bakery-server/models"
)

// StoreConfigRefresherService periodically refreshes the store config from
// the bakery backend and re-evaluates the store state.
type StoreConfigRefresherService struct {
	statusService *StoreStatusService
	storeDao      *redis.RedisStoreDAO
	bakeryAPI     bakery.BakeryAPI
	logger        zerolog.Logger
}

// NewStoreConfigRefresherService constructs a new refresher with dependencies.
func NewStoreConfigRefresherService(
	statusService *StoreStatusService,
	storeDao *redis.RedisStoreDAO,
	bakeryAPI bakery.BakeryAPI,
) *StoreConfigRefresherService {
	return &StoreConfigRefresherService{
		statusService: statusService,
		storeDao:      storeDao,
		bakeryAPI:     bakeryAPI,
		logger:        log.With().Str("component", "StoreConfigRefresherService").Logger(),
	}
}

// Bootstrap restores the last-known snapshot and the manual override from
// Redis, then tries a first fetch. Every step is best effort.
func (r *StoreConfigRefresherService) Bootstrap(ctx context.Context) {
	if err := r.statusService.LoadLastKnownSnapshot(ctx); err != nil {
		r.logger.Warn().Err(err).Msg("Could not restore last-known snapshot")
	}
	if err := r.RefreshStoreConfig(ctx); err != nil {
		r.logger.Warn().Err(err).Msg("Initial store config fetch failed, serving last-known schedule")
	}
	r.statusService.TrackState()
}

// StartPeriodicJob launches the background loop at the given interval. The
// loop stops when ctx is cancelled.
func (r *StoreConfigRefresherService) StartPeriodicJob(ctx context.Context, interval time.Duration) {
	go r.startPeriodicJob(ctx, interval)
}

func (r *StoreConfigRefresherService) startPeriodicJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info().Msg("Stopping periodic store config refresher")
			return
		case <-ticker.C:
			r.logger.Debug().Msg("Running periodic store config refresher job")
			if err := r.RefreshStoreConfig(ctx); err != nil {
				r.logger.Warn().Err(err).Msg("RefreshStoreConfig failed, keeping previous snapshot")
			}
			r.statusService.TrackState()
		}
	}
}

// RefreshStoreConfig fetches GET /config, swaps the snapshot and caches it.
// The manual override is reloaded even when the backend is unreachable.
func (r *StoreConfigRefresherService) RefreshStoreConfig(ctx context.Context) error {
	if err := r.statusService.ReloadClosureOverride(ctx); err != nil {
		r.logger.Warn().Err(err).Msg("Could not reload closure override, keeping in-memory copy")
	}

	resp, err := r.bakeryAPI.GetStoreConfig(ctx)
	if err != nil {
		return err
	}

	now := r.statusService.Now()
	snapshot := SnapshotFromConfig(resp.Data, now)
	if err := availability.ValidateWeeklyHours(snapshot.Hours); err != nil {
		r.logger.Warn().Err(err).Msg("Backend operating hours unusable, default schedule applies")
	}

	r.statusService.ReplaceSnapshot(snapshot)

	if err := r.storeDao.SetStoreSnapshot(ctx, snapshot); err != nil {
		r.logger.Warn().Err(err).Msg("Could not cache store snapshot")
	}

	r.logger.Debug().
		Int("days", len(snapshot.Hours)).
		Bool("backend_closed", snapshot.BackendClosure != nil).
		Msg("Store config refreshed")
	return nil
}

// SnapshotFromConfig converts the backend config into a snapshot. The
// backend's is_tutup flag becomes a closure running from today until the day
// before tgl_buka, or open-ended when tgl_buka is missing or unparsable. A
// tgl_buka of today or earlier means the store has already reopened.
func SnapshotFromConfig(cfg models.StoreConfig, now time.Time) models.StoreSnapshot {
	snapshot := models.StoreSnapshot{
		Hours:          cfg.OperatingHours,
		WhatsappNumber: strings.TrimSpace(cfg.WhatsappNumber),
		FetchedAt:      now,
	}
	if snapshot.Hours == nil {
		snapshot.Hours = models.WeeklyHours{}
	}
	if !cfg.IsTutup {
		return snapshot
	}

	today := now.Format(models.DATE_LAYOUT)
	closure := &models.ClosureOverride{IsActive: true, StartDate: today}

	reopen := strings.TrimSpace(cfg.TglBuka)
	if len(reopen) >= len(models.DATE_LAYOUT) {
		reopen = reopen[:len(models.DATE_LAYOUT)]
	}
	if reopenDate, err := time.ParseInLocation(models.DATE_LAYOUT, reopen, now.Location()); err == nil {
		if reopen <= today {
			return snapshot
		}
		closure.EndDate = reopenDate.AddDate(0, 0, -1).Format(models.DATE_LAYOUT)
	}

	snapshot.BackendClosure = closure
	return snapshot
}
