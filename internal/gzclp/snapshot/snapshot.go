package snapshot

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/2beens/gzclp/internal/gzclp/history"
	"github.com/2beens/gzclp/internal/gzclp/program"
	"github.com/2beens/gzclp/internal/gzclp/progression"
	"github.com/2beens/gzclp/internal/telemetry/tracing"
)

type configStore interface {
	ListDefinitions(ctx context.Context) ([]program.ExerciseDefinition, error)
	GetSettings(ctx context.Context) (*program.Settings, error)
	ReplaceDefinitions(ctx context.Context, defs []program.ExerciseDefinition) error
	SaveSettings(ctx context.Context, settings program.Settings) error
}

type progressionStore interface {
	ListEntries(ctx context.Context) ([]progression.Entry, error)
	ListPendingChanges(ctx context.Context) ([]progression.PendingChange, error)
	ReplaceEntries(ctx context.Context, entries []progression.Entry) error
	ReplacePendingChanges(ctx context.Context, changes []progression.PendingChange) error
}

type historyStore interface {
	List(ctx context.Context, params history.ListParams) ([]history.Entry, error)
	ReplaceAll(ctx context.Context, entries []history.Entry) error
}

type stateNotifier interface {
	StateChanged(ctx context.Context, partition string)
}

// Snapshot is the full persisted state of the program: all three
// partitions in one document.
type Snapshot struct {
	ExportedAt     time.Time                    `json:"exportedAt"`
	Exercises      []program.ExerciseDefinition `json:"exercises"`
	Settings       program.Settings             `json:"settings"`
	Entries        []progression.Entry          `json:"entries"`
	PendingChanges []progression.PendingChange  `json:"pendingChanges"`
	History        []history.Entry              `json:"history"`
}

// Service moves whole-state snapshots in and out of the three persisted
// partitions. Import replaces all of them; when a later partition write
// fails, the earlier ones are rolled back to their pre-import state, so
// a half-imported snapshot never survives.
type Service struct {
	config      configStore
	progression progressionStore
	history     historyStore
	notifier    stateNotifier
}

func NewService(
	config configStore,
	progressionStore progressionStore,
	historyStore historyStore,
	notifier stateNotifier,
) *Service {
	return &Service{
		config:      config,
		progression: progressionStore,
		history:     historyStore,
		notifier:    notifier,
	}
}

func (s *Service) Export(ctx context.Context) (_ *Snapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "snapshot.export")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	defs, err := s.config.ListDefinitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list definitions: %w", err)
	}
	settings, err := s.config.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	entries, err := s.progression.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	changes, err := s.progression.ListPendingChanges(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending changes: %w", err)
	}
	historyEntries, err := s.history.List(ctx, history.ListParams{})
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}

	return &Snapshot{
		ExportedAt:     time.Now(),
		Exercises:      defs,
		Settings:       *settings,
		Entries:        entries,
		PendingChanges: changes,
		History:        historyEntries,
	}, nil
}

// Import replaces all three partitions with the snapshot's content. The
// partitions live in separate stores, so there is no single transaction
// spanning them - instead each successfully replaced partition is rolled
// back to its captured pre-import state when a later one fails. A failed
// rollback is reported alongside the original failure.
func (s *Service) Import(ctx context.Context, snap Snapshot) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "snapshot.import")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if !snap.Settings.Unit.Valid() {
		return fmt.Errorf("snapshot settings: invalid unit %q", snap.Settings.Unit)
	}
	for _, entry := range snap.Entries {
		if !entry.Stage.Valid() {
			return fmt.Errorf("snapshot entry %s: invalid stage %d", entry.Key, entry.Stage)
		}
	}

	prior, err := s.Export(ctx)
	if err != nil {
		return fmt.Errorf("capture pre-import state: %w", err)
	}

	var undo []func(context.Context) error

	rollback := func(importErr error) error {
		// undo in reverse order of the writes
		for i := len(undo) - 1; i >= 0; i-- {
			if undoErr := undo[i](ctx); undoErr != nil {
				importErr = multierr.Append(importErr, fmt.Errorf("rollback: %w", undoErr))
			}
		}
		return importErr
	}

	if err := s.config.ReplaceDefinitions(ctx, snap.Exercises); err != nil {
		return rollback(fmt.Errorf("replace definitions: %w", err))
	}
	undo = append(undo, func(ctx context.Context) error {
		return s.config.ReplaceDefinitions(ctx, prior.Exercises)
	})

	if err := s.config.SaveSettings(ctx, snap.Settings); err != nil {
		return rollback(fmt.Errorf("save settings: %w", err))
	}
	undo = append(undo, func(ctx context.Context) error {
		return s.config.SaveSettings(ctx, prior.Settings)
	})

	if err := s.progression.ReplaceEntries(ctx, snap.Entries); err != nil {
		return rollback(fmt.Errorf("replace entries: %w", err))
	}
	undo = append(undo, func(ctx context.Context) error {
		return s.progression.ReplaceEntries(ctx, prior.Entries)
	})

	if err := s.progression.ReplacePendingChanges(ctx, snap.PendingChanges); err != nil {
		return rollback(fmt.Errorf("replace pending changes: %w", err))
	}
	undo = append(undo, func(ctx context.Context) error {
		return s.progression.ReplacePendingChanges(ctx, prior.PendingChanges)
	})

	if err := s.history.ReplaceAll(ctx, snap.History); err != nil {
		return rollback(fmt.Errorf("replace history: %w", err))
	}

	log.Infof(
		"snapshot imported: %d exercises, %d entries, %d pending changes, %d history entries",
		len(snap.Exercises), len(snap.Entries), len(snap.PendingChanges), len(snap.History),
	)

	s.notifier.StateChanged(ctx, "config")
	s.notifier.StateChanged(ctx, "progression")
	s.notifier.StateChanged(ctx, "history")

	return nil
}
