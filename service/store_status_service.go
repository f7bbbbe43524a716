package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"bakery-server/availability"
	"bakery-server/dao/redis"
	"bakery-server/models"
)

// Store states as tracked between evaluations.
const (
	STATE_UNKNOWN = "unknown"
	STATE_OPEN    = "open"
	STATE_CLOSED  = "closed"
)

// StoreStatusService holds the current store snapshot and answers
// "can customers order right now".
type StoreStatusService struct {
	storeDao   *redis.RedisStoreDAO
	location   *time.Location
	defaultTag language.Tag
	now        func() time.Time
	logger     zerolog.Logger

	mu             sync.RWMutex
	snapshot       models.StoreSnapshot
	manualOverride *models.ClosureOverride
	state          string
}

// NewStoreStatusService constructs a StoreStatusService. Until a snapshot is
// loaded the default schedule applies.
func NewStoreStatusService(
	storeDao *redis.RedisStoreDAO,
	location *time.Location,
	defaultTag language.Tag) *StoreStatusService {

	if location == nil {
		location = time.UTC
	}
	return &StoreStatusService{
		storeDao:   storeDao,
		location:   location,
		defaultTag: defaultTag,
		now:        time.Now,
		logger:     log.With().Str("component", "StoreStatusService").Logger(),
		state:      STATE_UNKNOWN,
	}
}

// SetClock replaces the time source.
func (s *StoreStatusService) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Now returns the current time in the store's time zone.
func (s *StoreStatusService) Now() time.Time {
	s.mu.RLock()
	now := s.now
	s.mu.RUnlock()
	return now().In(s.location)
}

func (s *StoreStatusService) Location() *time.Location {
	return s.location
}

func (s *StoreStatusService) DefaultTag() language.Tag {
	return s.defaultTag
}

// Snapshot returns the current store snapshot.
func (s *StoreStatusService) Snapshot() models.StoreSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// ReplaceSnapshot swaps in a freshly fetched snapshot.
func (s *StoreStatusService) ReplaceSnapshot(snapshot models.StoreSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = snapshot
}

// LoadLastKnownSnapshot restores the snapshot cached in Redis, if any.
func (s *StoreStatusService) LoadLastKnownSnapshot(ctx context.Context) error {
	snapshot, err := s.storeDao.GetStoreSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("load last-known snapshot: %w", err)
	}
	if snapshot == nil {
		s.logger.Info().Msg("No cached store snapshot, using default schedule until the backend answers")
		return nil
	}
	s.ReplaceSnapshot(*snapshot)
	s.logger.Info().Time("fetched_at", snapshot.FetchedAt).Msg("Restored last-known store snapshot")
	return nil
}

// ClosureOverride returns the manual closure override, or nil.
func (s *StoreStatusService) ClosureOverride() *models.ClosureOverride {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.manualOverride == nil {
		return nil
	}
	o := *s.manualOverride
	return &o
}

// SetClosureOverride validates and persists a manual closure override.
func (s *StoreStatusService) SetClosureOverride(ctx context.Context, o models.ClosureOverride) error {
	if err := availability.ValidateClosureOverride(o); err != nil {
		return err
	}
	if err := s.storeDao.SetClosureOverride(ctx, o); err != nil {
		return err
	}

	s.mu.Lock()
	s.manualOverride = &o
	s.mu.Unlock()

	s.logger.Info().
		Bool("is_active", o.IsActive).
		Str("start_date", o.StartDate).
		Str("end_date", o.EndDate).
		Str("reason", o.Reason).
		Msg("Closure override saved")
	return nil
}

// ClearClosureOverride removes the manual closure override.
func (s *StoreStatusService) ClearClosureOverride(ctx context.Context) error {
	if err := s.storeDao.DeleteClosureOverride(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.manualOverride = nil
	s.mu.Unlock()

	s.logger.Info().Msg("Closure override cleared")
	return nil
}

// ReloadClosureOverride re-reads the manual override from Redis so changes
// made through another instance are picked up. On error the in-memory copy
// is kept.
func (s *StoreStatusService) ReloadClosureOverride(ctx context.Context) error {
	o, err := s.storeDao.GetClosureOverride(ctx)
	if err != nil {
		return fmt.Errorf("reload closure override: %w", err)
	}

	s.mu.Lock()
	s.manualOverride = o
	s.mu.Unlock()
	return nil
}

// Status evaluates the store at the current time with labels in tag.
func (s *StoreStatusService) Status(tag language.Tag) models.StoreStatus {
	return s.StatusAt(s.Now(), tag)
}

// StatusAt evaluates the store at now with labels in tag.
func (s *StoreStatusService) StatusAt(now time.Time, tag language.Tag) models.StoreStatus {
	s.mu.RLock()
	snapshot := s.snapshot
	manual := s.manualOverride
	s.mu.RUnlock()

	now = now.In(s.location)
	override := snapshot.BackendClosure
	if availability.OverrideCovers(manual, now) {
		override = manual
	}

	result := availability.NewEvaluator(tag).Evaluate(now, snapshot.Hours, override)
	return models.StoreStatus{
		EvaluationResult: result,
		WhatsappNumber:   snapshot.WhatsappNumber,
		Language:         tag.String(),
	}
}

// EffectiveHours returns the weekly hours in use and whether they are the
// default schedule.
func (s *StoreStatusService) EffectiveHours() (models.WeeklyHours, bool) {
	return availability.EffectiveWeeklyHours(s.Snapshot().Hours)
}

// State returns the state recorded by the last TrackState call.
func (s *StoreStatusService) State() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// TrackState re-evaluates the store and logs open/closed transitions.
func (s *StoreStatusService) TrackState() models.StoreStatus {
	status := s.Status(s.defaultTag)

	next := STATE_CLOSED
	if status.IsOpen {
		next = STATE_OPEN
	}

	s.mu.Lock()
	previous := s.state
	s.state = next
	s.mu.Unlock()

	if previous != next {
		event := s.logger.Info().
			Str("from", previous).
			Str("to", next).
			Str("source", status.Source)
		if !status.IsOpen {
			event = event.Str("next_open", status.NextOpenLabel)
		}
		event.Msg("Store state changed")
	}
	return status
}
