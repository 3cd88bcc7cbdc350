package history

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/gzclp/internal/gzclp/program"
	"github.com/2beens/gzclp/internal/gzclp/progression"
)

//go:generate mockgen -source=$GOFILE -destination=recorder_mocks_test.go -package=history_test

type historyStore interface {
	Add(ctx context.Context, entry Entry) (bool, error)
}

type definitionsProvider interface {
	ListDefinitions(ctx context.Context) ([]program.ExerciseDefinition, error)
}

// Recorder turns applied pending changes into history entries. It backs
// the apply flow, which must be safe to retry, so recording the same
// change twice leaves a single entry.
type Recorder struct {
	store       historyStore
	definitions definitionsProvider
}

func NewRecorder(store historyStore, definitions definitionsProvider) *Recorder {
	return &Recorder{
		store:       store,
		definitions: definitions,
	}
}

func (r *Recorder) RecordChange(ctx context.Context, change progression.PendingChange) error {
	definitions, err := r.definitions.ListDefinitions(ctx)
	if err != nil {
		// the entry is still worth keeping without the exercise name
		log.Warnf("record change %s: list definitions: %s", change.ID, err)
		definitions = nil
	}

	entry := NewEntry(change, definitions, time.Now())
	added, err := r.store.Add(ctx, entry)
	if err != nil {
		return fmt.Errorf("add history entry: %w", err)
	}
	if !added {
		log.Tracef("history entry for %s already recorded", change.ID)
	}
	return nil
}
