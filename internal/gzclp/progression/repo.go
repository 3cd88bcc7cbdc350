package progression

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gzclp/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrEntryNotFound  = errors.New("progression entry not found")
	ErrChangeNotFound = errors.New("pending change not found")
)

// ChangeStatus is the lifecycle state of a queued change. Rejected
// changes are kept (not deleted) so a later sync never re-suggests the
// same (progressionKey, workoutId) pair.
type ChangeStatus string

const (
	ChangeStatusPending  ChangeStatus = "pending"
	ChangeStatusRejected ChangeStatus = "rejected"
)

// SyncStatus is how the last finished sync cycle ended.
type SyncStatus string

const (
	SyncStatusOK        SyncStatus = "ok"
	SyncStatusFailed    SyncStatus = "failed"
	SyncStatusCancelled SyncStatus = "cancelled"
)

// SyncState is the sync metadata persisted with the progression
// partition: when the last cycle finished, how it went, what it did.
type SyncState struct {
	LastSyncAt       *time.Time `json:"lastSyncAt,omitempty"`
	LastStatus       SyncStatus `json:"lastStatus,omitempty"`
	LastError        string     `json:"lastError,omitempty"`
	WorkoutsAnalyzed int        `json:"workoutsAnalyzed"`
	ChangesCreated   int        `json:"changesCreated"`
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) UpsertEntry(ctx context.Context, entry Entry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.entries.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("progression_key", string(entry.Key)))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO progression_entry
				(progression_key, linked_exercise_id, current_weight, stage, base_weight,
				 amrap_record, amrap_record_date, last_workout_id, last_workout_date)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (progression_key) DO UPDATE SET
				linked_exercise_id = EXCLUDED.linked_exercise_id,
				current_weight = EXCLUDED.current_weight,
				stage = EXCLUDED.stage,
				base_weight = EXCLUDED.base_weight,
				amrap_record = EXCLUDED.amrap_record,
				amrap_record_date = EXCLUDED.amrap_record_date,
				last_workout_id = EXCLUDED.last_workout_id,
				last_workout_date = EXCLUDED.last_workout_date;`,
		entry.Key, entry.LinkedExerciseID, entry.CurrentWeight, entry.Stage, entry.BaseWeight,
		entry.AmrapRecord, entry.AmrapRecordDate, entry.LastWorkoutID, entry.LastWorkoutDate,
	)
	return err
}

func (r *Repo) GetEntry(ctx context.Context, key Key) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.entries.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("progression_key", string(key)))

	rows, err := r.db.Query(
		ctx,
		`SELECT
			progression_key, linked_exercise_id, current_weight, stage, base_weight,
			amrap_record, amrap_record_date, last_workout_id, last_workout_date
		FROM progression_entry
		WHERE progression_key = $1;`,
		key,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	entries, err := r.rows2entries(rows)
	if err != nil {
		return nil, err
	}

	if len(entries) != 1 {
		return nil, ErrEntryNotFound
	}

	return &entries[0], nil
}

func (r *Repo) ListEntries(ctx context.Context) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.entries.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT
			progression_key, linked_exercise_id, current_weight, stage, base_weight,
			amrap_record, amrap_record_date, last_workout_id, last_workout_date
		FROM progression_entry
		ORDER BY progression_key;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	entries, err := r.rows2entries(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2entries: %w", err)
	}

	span.SetAttributes(attribute.Int("count", len(entries)))
	return entries, nil
}

func (r *Repo) DeleteEntry(ctx context.Context, key Key) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.entries.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("progression_key", string(key)))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM progression_entry WHERE progression_key = $1`,
		key,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// ReplaceEntries swaps the whole entries table for the given set in one
// transaction. Used by snapshot import.
func (r *Repo) ReplaceEntries(ctx context.Context, entries []Entry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.entries.replaceall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("count", len(entries)))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM progression_entry;`); err != nil {
		return fmt.Errorf("clear entries: %w", err)
	}
	for _, entry := range entries {
		_, err = tx.Exec(
			ctx,
			`INSERT INTO progression_entry
				(progression_key, linked_exercise_id, current_weight, stage, base_weight,
				 amrap_record, amrap_record_date, last_workout_id, last_workout_date)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
			entry.Key, entry.LinkedExerciseID, entry.CurrentWeight, entry.Stage, entry.BaseWeight,
			entry.AmrapRecord, entry.AmrapRecordDate, entry.LastWorkoutID, entry.LastWorkoutDate,
		)
		if err != nil {
			return fmt.Errorf("insert entry %s: %w", entry.Key, err)
		}
	}

	return tx.Commit(ctx)
}

// AddPendingChanges stores new changes, silently skipping ones whose
// deterministic id is already present, and reports how many were
// actually added.
func (r *Repo) AddPendingChanges(ctx context.Context, changes []PendingChange) (added int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.pending.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("count", len(changes)))

	for _, change := range changes {
		discrepancyJson, err := marshalDiscrepancy(change.Discrepancy)
		if err != nil {
			return added, fmt.Errorf("marshal discrepancy for %s: %w", change.ID, err)
		}
		tag, err := r.db.Exec(
			ctx,
			`INSERT INTO pending_change
				(id, progression_key, exercise_id, tier, change_type, status,
				 current_weight, new_weight, current_stage, new_stage, reason,
				 amrap_reps, discrepancy, workout_id, workout_date, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
			ON CONFLICT (id) DO NOTHING;`,
			change.ID, change.ProgressionKey, change.ExerciseID, change.Tier, change.Type, ChangeStatusPending,
			change.CurrentWeight, change.NewWeight, change.CurrentStage, change.NewStage, change.Reason,
			change.AmrapReps, discrepancyJson, change.WorkoutID, change.WorkoutDate, change.CreatedAt,
		)
		if err != nil {
			return added, fmt.Errorf("insert change %s: %w", change.ID, err)
		}
		added += int(tag.RowsAffected())
	}

	span.SetAttributes(attribute.Int("added", added))
	return added, nil
}

// ListPendingChanges returns the live (not rejected) queue, oldest
// workout first.
func (r *Repo) ListPendingChanges(ctx context.Context) (_ []PendingChange, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.pending.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		pendingChangeSelect+`WHERE status = $1 ORDER BY workout_date, progression_key;`,
		ChangeStatusPending,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	changes, err := r.rows2changes(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2changes: %w", err)
	}

	span.SetAttributes(attribute.Int("count", len(changes)))
	return changes, nil
}

func (r *Repo) GetPendingChange(ctx context.Context, id string) (_ *PendingChange, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.pending.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	rows, err := r.db.Query(
		ctx,
		pendingChangeSelect+`WHERE id = $1 AND status = $2;`,
		id, ChangeStatusPending,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	changes, err := r.rows2changes(rows)
	if err != nil {
		return nil, err
	}

	if len(changes) != 1 {
		return nil, ErrChangeNotFound
	}

	return &changes[0], nil
}

// DeletePendingChange removes an applied change from the queue.
func (r *Repo) DeletePendingChange(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.pending.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM pending_change WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrChangeNotFound
	}
	return nil
}

// RejectPendingChange marks a queued change as rejected. The row is kept
// so the workout stays processed and the change is never re-suggested.
func (r *Repo) RejectPendingChange(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.pending.reject")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE pending_change SET status = $1 WHERE id = $2 AND status = $3;`,
		ChangeStatusRejected, id, ChangeStatusPending,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrChangeNotFound
	}
	return nil
}

// ReplacePendingChanges swaps the whole queue for the given set in one
// transaction. Used by snapshot import.
func (r *Repo) ReplacePendingChanges(ctx context.Context, changes []PendingChange) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.pending.replaceall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("count", len(changes)))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM pending_change;`); err != nil {
		return fmt.Errorf("clear pending changes: %w", err)
	}
	for _, change := range changes {
		discrepancyJson, err := marshalDiscrepancy(change.Discrepancy)
		if err != nil {
			return fmt.Errorf("marshal discrepancy for %s: %w", change.ID, err)
		}
		status := change.Status
		if status == "" {
			status = ChangeStatusPending
		}
		_, err = tx.Exec(
			ctx,
			`INSERT INTO pending_change
				(id, progression_key, exercise_id, tier, change_type, status,
				 current_weight, new_weight, current_stage, new_stage, reason,
				 amrap_reps, discrepancy, workout_id, workout_date, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);`,
			change.ID, change.ProgressionKey, change.ExerciseID, change.Tier, change.Type, status,
			change.CurrentWeight, change.NewWeight, change.CurrentStage, change.NewStage, change.Reason,
			change.AmrapReps, discrepancyJson, change.WorkoutID, change.WorkoutDate, change.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert change %s: %w", change.ID, err)
		}
	}

	return tx.Commit(ctx)
}

// ProcessedWorkoutIDs returns the ids of every workout that already
// produced a change, applied or not. Recomputed fresh per sync cycle.
func (r *Repo) ProcessedWorkoutIDs(ctx context.Context) (_ map[string]struct{}, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.pending.workoutids")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT DISTINCT workout_id FROM pending_change;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	workoutIDs := make(map[string]struct{})
	for rows.Next() {
		var workoutID string
		if err := rows.Scan(&workoutID); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		workoutIDs[workoutID] = struct{}{}
	}

	span.SetAttributes(attribute.Int("count", len(workoutIDs)))
	return workoutIDs, nil
}

func (r *Repo) GetSyncState(ctx context.Context) (_ *SyncState, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.syncstate.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT last_sync_at, last_status, last_error, workouts_analyzed, changes_created
			FROM sync_state WHERE id = 1;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		// no sync ran yet
		return &SyncState{}, nil
	}

	var state SyncState
	if err := rows.Scan(
		&state.LastSyncAt, &state.LastStatus, &state.LastError,
		&state.WorkoutsAnalyzed, &state.ChangesCreated,
	); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	return &state, nil
}

func (r *Repo) SetSyncState(ctx context.Context, state SyncState) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.syncstate.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("status", string(state.LastStatus)))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO sync_state (id, last_sync_at, last_status, last_error, workouts_analyzed, changes_created)
				VALUES (1, $1, $2, $3, $4, $5)
			ON CONFLICT (id) DO UPDATE SET
				last_sync_at = EXCLUDED.last_sync_at,
				last_status = EXCLUDED.last_status,
				last_error = EXCLUDED.last_error,
				workouts_analyzed = EXCLUDED.workouts_analyzed,
				changes_created = EXCLUDED.changes_created;`,
		state.LastSyncAt, state.LastStatus, state.LastError,
		state.WorkoutsAnalyzed, state.ChangesCreated,
	)
	return err
}

const pendingChangeSelect = `SELECT
		id, progression_key, exercise_id, tier, change_type, status,
		current_weight, new_weight, current_stage, new_stage, reason,
		amrap_reps, discrepancy, workout_id, workout_date, created_at
	FROM pending_change `

func (r *Repo) rows2entries(rows pgx.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(
			&entry.Key, &entry.LinkedExerciseID, &entry.CurrentWeight, &entry.Stage, &entry.BaseWeight,
			&entry.AmrapRecord, &entry.AmrapRecordDate, &entry.LastWorkoutID, &entry.LastWorkoutDate,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if entries == nil {
		entries = make([]Entry, 0)
	}

	return entries, nil
}

func (r *Repo) rows2changes(rows pgx.Rows) ([]PendingChange, error) {
	var changes []PendingChange
	for rows.Next() {
		var change PendingChange
		var discrepancyBytes []byte
		if err := rows.Scan(
			&change.ID, &change.ProgressionKey, &change.ExerciseID, &change.Tier, &change.Type, &change.Status,
			&change.CurrentWeight, &change.NewWeight, &change.CurrentStage, &change.NewStage, &change.Reason,
			&change.AmrapReps, &discrepancyBytes, &change.WorkoutID, &change.WorkoutDate, &change.CreatedAt,
		); err != nil {
			return nil, err
		}

		if len(discrepancyBytes) > 0 {
			var discrepancy Discrepancy
			if err := json.Unmarshal(discrepancyBytes, &discrepancy); err != nil {
				return nil, fmt.Errorf("unmarshal discrepancy for change %s: %w", change.ID, err)
			}
			change.Discrepancy = &discrepancy
		}

		changes = append(changes, change)
	}

	if changes == nil {
		changes = make([]PendingChange, 0)
	}

	return changes, nil
}

func marshalDiscrepancy(discrepancy *Discrepancy) ([]byte, error) {
	if discrepancy == nil {
		return nil, nil
	}
	return json.Marshal(discrepancy)
}
