package syncer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gzclp/internal/gzclp/program"
	"github.com/2beens/gzclp/internal/gzclp/progression"
	"github.com/2beens/gzclp/internal/hevy"
	"github.com/2beens/gzclp/internal/telemetry/metrics"
	"github.com/2beens/gzclp/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=syncer_mocks_test.go -package=syncer_test

type workoutsProvider interface {
	FetchAllWorkouts(ctx context.Context) ([]hevy.Workout, error)
}

type configStore interface {
	ListDefinitions(ctx context.Context) ([]program.ExerciseDefinition, error)
	GetSettings(ctx context.Context) (*program.Settings, error)
}

type progressionStore interface {
	ListEntries(ctx context.Context) ([]progression.Entry, error)
	UpsertEntry(ctx context.Context, entry progression.Entry) error
	AddPendingChanges(ctx context.Context, changes []progression.PendingChange) (int, error)
	ListPendingChanges(ctx context.Context) ([]progression.PendingChange, error)
	DeletePendingChange(ctx context.Context, id string) error
	ProcessedWorkoutIDs(ctx context.Context) (map[string]struct{}, error)
	GetSyncState(ctx context.Context) (*progression.SyncState, error)
	SetSyncState(ctx context.Context, state progression.SyncState) error
}

type historyStore interface {
	WorkoutIDs(ctx context.Context) (map[string]struct{}, error)
}

type changeRecorder interface {
	RecordChange(ctx context.Context, change progression.PendingChange) error
}

type stateNotifier interface {
	StateChanged(ctx context.Context, partition string)
}

// CycleStats sums up one finished sync cycle.
type CycleStats struct {
	WorkoutsFetched  int `json:"workoutsFetched"`
	WorkoutsAnalyzed int `json:"workoutsAnalyzed"`
	ChangesCreated   int `json:"changesCreated"`
	ChangesApplied   int `json:"changesApplied"`
}

// Syncer drives the fetch -> analyze -> queue cycle. Cycles are
// single-flight: triggering while one is in flight cancels it and waits
// for it to stop before the new one starts, so two cycles never race on
// progression state. A failed or cancelled cycle mutates nothing - all
// writes happen only after the full fetch and batch analysis succeeded.
type Syncer struct {
	workouts    workoutsProvider
	config      configStore
	progression progressionStore
	history     historyStore
	recorder    changeRecorder
	notifier    stateNotifier
	metrics     *metrics.Manager

	// a cycle taking longer than this is cancelled; zero means no limit
	cycleTimeout time.Duration

	mu          sync.Mutex
	cancelCycle context.CancelFunc
	cycleDone   chan struct{}
}

type NewSyncerParams struct {
	Workouts     workoutsProvider
	Config       configStore
	Progression  progressionStore
	History      historyStore
	Recorder     changeRecorder
	Notifier     stateNotifier
	Metrics      *metrics.Manager
	CycleTimeout time.Duration
}

func NewSyncer(params NewSyncerParams) *Syncer {
	return &Syncer{
		workouts:     params.Workouts,
		config:       params.Config,
		progression:  params.Progression,
		history:      params.History,
		recorder:     params.Recorder,
		notifier:     params.Notifier,
		metrics:      params.Metrics,
		cycleTimeout: params.CycleTimeout,
	}
}

// TriggerSync starts a sync cycle in the background. An in-flight cycle
// is cancelled first and fully stopped before the new one begins -
// overlapping triggers are never queued up.
func (s *Syncer) TriggerSync() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancelCycle != nil {
		s.cancelCycle()
		// the cycle goroutine never takes s.mu, safe to wait here
		<-s.cycleDone
	}

	var ctx context.Context
	var cancel context.CancelFunc
	if s.cycleTimeout > 0 {
		ctx, cancel = context.WithTimeout(context.Background(), s.cycleTimeout)
	} else {
		ctx, cancel = context.WithCancel(context.Background())
	}
	done := make(chan struct{})
	s.cancelCycle = cancel
	s.cycleDone = done

	go func() {
		defer close(done)
		defer cancel()
		if _, err := s.Sync(ctx); err != nil {
			log.Errorf("sync cycle: %s", err)
		}
	}()
}

// CancelSync stops the in-flight cycle, waiting until its state is
// persisted. Reports whether there was anything to cancel.
func (s *Syncer) CancelSync() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.runningLocked() {
		return false
	}
	s.cancelCycle()
	<-s.cycleDone
	return true
}

// Running reports whether a sync cycle is currently in flight.
func (s *Syncer) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runningLocked()
}

func (s *Syncer) runningLocked() bool {
	if s.cycleDone == nil {
		return false
	}
	select {
	case <-s.cycleDone:
		return false
	default:
		return true
	}
}

// LastState returns the persisted outcome of the most recent cycle.
func (s *Syncer) LastState(ctx context.Context) (*progression.SyncState, error) {
	return s.progression.GetSyncState(ctx)
}

// Sync runs one full cycle synchronously and persists its outcome in
// the sync state row. There are no automatic retries - a failed cycle
// stays failed until explicitly re-triggered.
func (s *Syncer) Sync(ctx context.Context) (CycleStats, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "syncer.sync")
	defer span.End()

	s.metrics.CounterSyncRuns.Inc()
	startedAt := time.Now()

	stats, err := s.cycle(ctx)
	s.metrics.HistSyncDuration.Observe(time.Since(startedAt).Seconds())
	span.SetAttributes(
		attribute.Int("workoutsAnalyzed", stats.WorkoutsAnalyzed),
		attribute.Int("changesCreated", stats.ChangesCreated),
	)

	now := time.Now()
	state := progression.SyncState{
		LastSyncAt:       &now,
		LastStatus:       progression.SyncStatusOK,
		WorkoutsAnalyzed: stats.WorkoutsAnalyzed,
		ChangesCreated:   stats.ChangesCreated,
	}
	switch {
	case errors.Is(err, context.Canceled):
		state.LastStatus = progression.SyncStatusCancelled
		state.LastError = err.Error()
	case err != nil:
		state.LastStatus = progression.SyncStatusFailed
		state.LastError = err.Error()
		s.metrics.CounterSyncFailures.Inc()
	}

	// the cycle context may already be cancelled, persist with a fresh one
	persistCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if stateErr := s.progression.SetSyncState(persistCtx, state); stateErr != nil {
		log.Errorf("persist sync state: %s", stateErr)
	}
	s.notifier.StateChanged(persistCtx, "progression")

	return stats, err
}

// cycle does the actual work. Nothing is persisted until the whole
// fetch plus batch analysis succeeded, so a mid-flight failure or
// cancellation leaves all stored state untouched.
func (s *Syncer) cycle(ctx context.Context) (CycleStats, error) {
	var stats CycleStats

	workouts, err := s.workouts.FetchAllWorkouts(ctx)
	if err != nil {
		return stats, fmt.Errorf("fetch workouts: %w", err)
	}
	stats.WorkoutsFetched = len(workouts)

	// the processed set is recomputed fresh from durable state every
	// cycle, never cached across cycles
	processed, err := s.processedWorkoutIDs(ctx)
	if err != nil {
		return stats, err
	}

	fresh := make([]hevy.Workout, 0, len(workouts))
	for _, workout := range workouts {
		if _, ok := processed[workout.ID]; ok {
			continue
		}
		fresh = append(fresh, workout)
	}
	if len(fresh) == 0 {
		log.Tracef("sync: all %d fetched workouts already processed", len(workouts))
		return stats, nil
	}

	definitions, err := s.config.ListDefinitions(ctx)
	if err != nil {
		return stats, fmt.Errorf("list definitions: %w", err)
	}
	settings, err := s.config.GetSettings(ctx)
	if err != nil {
		return stats, fmt.Errorf("get settings: %w", err)
	}
	entries, err := s.progression.ListEntries(ctx)
	if err != nil {
		return stats, fmt.Errorf("list progression entries: %w", err)
	}

	batch := progression.AnalyzeWorkouts(fresh, definitions, progression.EntriesMap(entries), *settings, time.Now())
	stats.WorkoutsAnalyzed = len(fresh)
	s.metrics.CounterWorkoutsAnalyzed.Add(float64(len(fresh)))

	// analysis done - last bail-out point before writes
	if err := ctx.Err(); err != nil {
		return stats, err
	}

	added, err := s.progression.AddPendingChanges(ctx, batch.Changes)
	if err != nil {
		return stats, fmt.Errorf("queue pending changes: %w", err)
	}
	stats.ChangesCreated = added
	s.metrics.CounterPendingChangesCreated.Add(float64(added))
	log.Debugf("sync: %d workouts analyzed, %d changes queued", len(fresh), added)

	applied, pendingLeft, err := s.autoApply(ctx, *settings, entries)
	if err != nil {
		return stats, err
	}
	stats.ChangesApplied = applied
	s.metrics.GaugePendingChanges.Set(float64(pendingLeft))

	return stats, nil
}

func (s *Syncer) processedWorkoutIDs(ctx context.Context) (map[string]struct{}, error) {
	processed, err := s.progression.ProcessedWorkoutIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list processed workout ids: %w", err)
	}
	historyIDs, err := s.history.WorkoutIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list history workout ids: %w", err)
	}
	for id := range historyIDs {
		processed[id] = struct{}{}
	}
	return processed, nil
}

// autoApply applies every queued change that carries no discrepancy,
// when the settings ask for it. Discrepant changes always stay queued
// for user review. Returns how many were applied and how many are left.
func (s *Syncer) autoApply(
	ctx context.Context,
	settings program.Settings,
	entries []progression.Entry,
) (applied, pendingLeft int, err error) {
	pending, err := s.progression.ListPendingChanges(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("list pending changes: %w", err)
	}
	if !settings.AutoApplyChanges {
		return 0, len(pending), nil
	}

	entriesByKey := progression.EntriesMap(entries)
	for _, change := range pending {
		if change.Discrepancy != nil {
			continue
		}
		entry, ok := entriesByKey[change.ProgressionKey]
		if !ok {
			log.Warnf("auto apply %s: no progression entry for %s, leaving queued", change.ID, change.ProgressionKey)
			continue
		}

		// same sequence as a manual apply: entry, history, dequeue -
		// each step idempotent so a mid-way failure is retryable
		updated := progression.ApplyChange(entry, change)
		if err := s.progression.UpsertEntry(ctx, updated); err != nil {
			return applied, len(pending) - applied, fmt.Errorf("auto apply %s, upsert entry: %w", change.ID, err)
		}
		if err := s.recorder.RecordChange(ctx, change); err != nil {
			return applied, len(pending) - applied, fmt.Errorf("auto apply %s, record history: %w", change.ID, err)
		}
		if err := s.progression.DeletePendingChange(ctx, change.ID); err != nil &&
			!errors.Is(err, progression.ErrChangeNotFound) {
			return applied, len(pending) - applied, fmt.Errorf("auto apply %s, dequeue: %w", change.ID, err)
		}

		entriesByKey[change.ProgressionKey] = updated
		s.metrics.CounterChangesApplied.Inc()
		applied++
	}

	return applied, len(pending) - applied, nil
}
