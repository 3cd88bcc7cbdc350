package progression

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gzclp/internal/gzclp/program"
	"github.com/2beens/gzclp/internal/telemetry/metrics"
	"github.com/2beens/gzclp/internal/telemetry/tracing"
	"github.com/2beens/gzclp/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progression_test

type progressionRepo interface {
	UpsertEntry(ctx context.Context, entry Entry) error
	GetEntry(ctx context.Context, key Key) (*Entry, error)
	ListEntries(ctx context.Context) ([]Entry, error)
	ListPendingChanges(ctx context.Context) ([]PendingChange, error)
	GetPendingChange(ctx context.Context, id string) (*PendingChange, error)
	DeletePendingChange(ctx context.Context, id string) error
	RejectPendingChange(ctx context.Context, id string) error
}

type historyRecorder interface {
	RecordChange(ctx context.Context, change PendingChange) error
}

type stateNotifier interface {
	StateChanged(ctx context.Context, partition string)
}

type ListEntriesResponse struct {
	Entries []Entry `json:"entries"`
	Total   int     `json:"total"`
}

type ListChangesResponse struct {
	Changes []PendingChange `json:"changes"`
	Total   int             `json:"total"`
}

type UpdateEntryRequest struct {
	ProgressionKey Key           `json:"progressionKey"`
	CurrentWeight  float64       `json:"currentWeight"`
	Stage          program.Stage `json:"stage"`
	BaseWeight     *float64      `json:"baseWeight,omitempty"`
}

type ApplyChangeResponse struct {
	Applied PendingChange `json:"applied"`
	Entry   Entry         `json:"entry"`
}

type RejectChangeResponse struct {
	RejectedID string `json:"rejectedId"`
}

type ApplyAllChangesResponse struct {
	AppliedIDs []string `json:"appliedIds"`
	// discrepant changes stay queued for an explicit per-change decision
	SkippedIDs []string `json:"skippedIds,omitempty"`
}

type Handler struct {
	repo           progressionRepo
	history        historyRecorder
	notifier       stateNotifier
	metricsManager *metrics.Manager
}

func NewHandler(
	repo progressionRepo,
	history historyRecorder,
	notifier stateNotifier,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:           repo,
		history:        history,
		notifier:       notifier,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleListEntries(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.list")
	defer span.End()

	entries, err := handler.repo.ListEntries(ctx)
	if err != nil {
		log.Errorf("failed to list progression entries: %s", err)
		http.Error(w, "failed to get progression entries", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ListEntriesResponse{
		Entries: entries,
		Total:   len(entries),
	})
	if err != nil {
		log.Errorf("failed to marshal progression entries: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleGetEntry(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.get")
	defer span.End()

	vars := mux.Vars(r)
	key := vars["key"]
	if key == "" {
		http.Error(w, "error, progression key empty", http.StatusBadRequest)
		return
	}

	entry, err := handler.repo.GetEntry(ctx, Key(key))
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			http.Error(w, "progression entry not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get progression entry %s: %s", key, err)
		http.Error(w, "failed to get progression entry", http.StatusInternalServerError)
		return
	}

	entryJson, err := json.Marshal(entry)
	if err != nil {
		log.Errorf("failed to marshal progression entry: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, entryJson, http.StatusOK)
}

// HandleUpdateEntry is the manual override: set a record's weight and
// stage directly, e.g. after a gym-floor decision to jump weights.
// Record bookkeeping (AMRAP record, last workout) stays untouched.
func (handler *Handler) HandleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.update")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req UpdateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update progression entry, unmarshal json params: %s", err)
		http.Error(w, "update progression entry failed", http.StatusBadRequest)
		return
	}

	if req.ProgressionKey == "" {
		http.Error(w, "error, progression key empty", http.StatusBadRequest)
		return
	}
	if req.CurrentWeight < 0 {
		http.Error(w, "error, weight must not be negative", http.StatusBadRequest)
		return
	}
	if !req.Stage.Valid() {
		http.Error(w, "error, invalid stage", http.StatusBadRequest)
		return
	}

	entry, err := handler.repo.GetEntry(ctx, req.ProgressionKey)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			http.Error(w, "progression entry not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get progression entry %s: %s", req.ProgressionKey, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	entry.CurrentWeight = req.CurrentWeight
	entry.Stage = req.Stage
	if req.BaseWeight != nil {
		entry.BaseWeight = *req.BaseWeight
	}

	if err := handler.repo.UpsertEntry(ctx, *entry); err != nil {
		log.Errorf("failed to update progression entry %s: %s", req.ProgressionKey, err)
		http.Error(w, "error, failed to update progression entry", http.StatusInternalServerError)
		return
	}

	handler.notifier.StateChanged(ctx, "progression")

	entryJson, err := json.Marshal(entry)
	if err != nil {
		log.Errorf("failed to marshal progression entry: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.Debugf("progression entry updated: %s", entryJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, entryJson, http.StatusOK)
}

func (handler *Handler) HandleListChanges(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.changes.list")
	defer span.End()

	changes, err := handler.repo.ListPendingChanges(ctx)
	if err != nil {
		log.Errorf("failed to list pending changes: %s", err)
		http.Error(w, "failed to get pending changes", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ListChangesResponse{
		Changes: changes,
		Total:   len(changes),
	})
	if err != nil {
		log.Errorf("failed to marshal pending changes: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

// HandleApplyChange commits a queued change: the entry moves to the new
// weight and stage, the change lands in history and leaves the queue.
// Every step is idempotent, a failed apply can simply be retried.
func (handler *Handler) HandleApplyChange(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.changes.apply")
	defer span.End()

	vars := mux.Vars(r)
	changeID := vars["id"]
	if changeID == "" {
		http.Error(w, "error, change id empty", http.StatusBadRequest)
		return
	}

	change, err := handler.repo.GetPendingChange(ctx, changeID)
	if err != nil {
		if errors.Is(err, ErrChangeNotFound) {
			http.Error(w, "pending change not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get pending change %s: %s", changeID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	entry, err := handler.repo.GetEntry(ctx, change.ProgressionKey)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			log.Warnf("apply change %s: progression entry %s is gone", changeID, change.ProgressionKey)
			http.Error(w, "progression entry not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get progression entry %s: %s", change.ProgressionKey, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	updated := ApplyChange(*entry, *change)
	if err := handler.repo.UpsertEntry(ctx, updated); err != nil {
		log.Errorf("failed to apply change %s to entry %s: %s", changeID, change.ProgressionKey, err)
		http.Error(w, "error, failed to apply change", http.StatusInternalServerError)
		return
	}

	if err := handler.history.RecordChange(ctx, *change); err != nil {
		log.Errorf("failed to record history for change %s: %s", changeID, err)
		http.Error(w, "error, failed to record history", http.StatusInternalServerError)
		return
	}

	if err := handler.repo.DeletePendingChange(ctx, changeID); err != nil && !errors.Is(err, ErrChangeNotFound) {
		log.Errorf("failed to remove applied change %s: %s", changeID, err)
		http.Error(w, "error, failed to remove applied change", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterChangesApplied.Inc()
	handler.notifier.StateChanged(ctx, "progression")

	respJson, err := json.Marshal(ApplyChangeResponse{
		Applied: *change,
		Entry:   updated,
	})
	if err != nil {
		log.Errorf("failed to marshal apply change response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.Debugf("pending change applied: %s -> %s", changeID, change.Type)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

// HandleApplyAllChanges commits every clean queued change in one go.
// Changes flagged with a discrepancy are skipped and stay queued, same
// as during an automatic sync apply. Each change commits independently,
// so a mid-batch failure leaves the earlier applies in place and the
// endpoint can simply be called again.
func (handler *Handler) HandleApplyAllChanges(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.changes.applyAll")
	defer span.End()

	changes, err := handler.repo.ListPendingChanges(ctx)
	if err != nil {
		log.Errorf("apply all changes, list pending: %s", err)
		http.Error(w, "failed to get pending changes", http.StatusInternalServerError)
		return
	}

	resp := ApplyAllChangesResponse{AppliedIDs: []string{}}
	for i := range changes {
		change := changes[i]
		if change.Discrepancy != nil {
			resp.SkippedIDs = append(resp.SkippedIDs, change.ID)
			continue
		}

		entry, err := handler.repo.GetEntry(ctx, change.ProgressionKey)
		if err != nil {
			if errors.Is(err, ErrEntryNotFound) {
				log.Warnf("apply all changes: progression entry %s is gone, skipping %s", change.ProgressionKey, change.ID)
				resp.SkippedIDs = append(resp.SkippedIDs, change.ID)
				continue
			}
			log.Errorf("apply all changes, get entry %s: %s", change.ProgressionKey, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		updated := ApplyChange(*entry, change)
		if err := handler.repo.UpsertEntry(ctx, updated); err != nil {
			log.Errorf("apply all changes, apply %s to entry %s: %s", change.ID, change.ProgressionKey, err)
			http.Error(w, "error, failed to apply change", http.StatusInternalServerError)
			return
		}
		if err := handler.history.RecordChange(ctx, change); err != nil {
			log.Errorf("apply all changes, record history for %s: %s", change.ID, err)
			http.Error(w, "error, failed to record history", http.StatusInternalServerError)
			return
		}
		if err := handler.repo.DeletePendingChange(ctx, change.ID); err != nil && !errors.Is(err, ErrChangeNotFound) {
			log.Errorf("apply all changes, remove applied change %s: %s", change.ID, err)
			http.Error(w, "error, failed to remove applied change", http.StatusInternalServerError)
			return
		}

		handler.metricsManager.CounterChangesApplied.Inc()
		resp.AppliedIDs = append(resp.AppliedIDs, change.ID)
	}

	if len(resp.AppliedIDs) > 0 {
		handler.notifier.StateChanged(ctx, "progression")
	}

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal apply all changes response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.Debugf("pending changes applied: %d, skipped: %d", len(resp.AppliedIDs), len(resp.SkippedIDs))
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

// HandleRejectChange dismisses a queued change. The record stays where
// it is and the change is never suggested again for that workout.
func (handler *Handler) HandleRejectChange(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.changes.reject")
	defer span.End()

	vars := mux.Vars(r)
	changeID := vars["id"]
	if changeID == "" {
		http.Error(w, "error, change id empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.RejectPendingChange(ctx, changeID); err != nil {
		if errors.Is(err, ErrChangeNotFound) {
			http.Error(w, "pending change not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to reject pending change %s: %s", changeID, err)
		http.Error(w, "error, failed to reject pending change", http.StatusInternalServerError)
		return
	}

	handler.notifier.StateChanged(ctx, "progression")

	respJson, err := json.Marshal(RejectChangeResponse{RejectedID: changeID})
	if err != nil {
		log.Errorf("failed to marshal reject change response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.Debugf("pending change rejected: %s", changeID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
