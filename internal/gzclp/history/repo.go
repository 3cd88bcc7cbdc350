package history

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gzclp/internal/telemetry/tracing"
)

var ErrEntryNotFound = errors.New("history entry not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// ListParams narrows a history listing. Zero value lists everything,
// ascending by workout date.
type ListParams struct {
	ProgressionKey string
	Limit          int
}

const historySelect = `
	SELECT
		progression_key, exercise_id, exercise_name, tier, change_type,
		old_weight, new_weight, old_stage, new_stage, amrap_reps,
		workout_id, workout_date, recorded_at
	FROM progression_history`

// Add persists the entry and reports whether it was actually inserted.
// An entry for the same (progression_key, workout_id) pair is left
// untouched, so replaying an applied change is a no-op. After a real
// insert the key's oldest entries beyond the cap are pruned.
func (r *Repo) Add(ctx context.Context, entry Entry) (added bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.add")
	span.SetAttributes(attribute.String("progressionKey", string(entry.ProgressionKey)))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		INSERT INTO progression_history (
			progression_key, exercise_id, exercise_name, tier, change_type,
			old_weight, new_weight, old_stage, new_stage, amrap_reps,
			workout_id, workout_date, recorded_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (progression_key, workout_id) DO NOTHING`,
		entry.ProgressionKey, entry.ExerciseID, entry.ExerciseName, entry.Tier, entry.ChangeType,
		entry.OldWeight, entry.NewWeight, entry.OldStage, entry.NewStage, entry.AmrapReps,
		entry.WorkoutID, entry.WorkoutDate, entry.RecordedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert history entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	if err := r.pruneKey(ctx, string(entry.ProgressionKey)); err != nil {
		return true, fmt.Errorf("prune history for %s: %w", entry.ProgressionKey, err)
	}
	return true, nil
}

func (r *Repo) pruneKey(ctx context.Context, key string) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM progression_history
		WHERE progression_key = $1 AND workout_id NOT IN (
			SELECT workout_id FROM progression_history
			WHERE progression_key = $1
			ORDER BY workout_date DESC, workout_id DESC
			LIMIT $2
		)`,
		key, maxEntriesPerKey,
	)
	return err
}

func (r *Repo) List(ctx context.Context, params ListParams) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	query := historySelect
	var args []interface{}
	if params.ProgressionKey != "" {
		query += ` WHERE progression_key = $1`
		args = append(args, params.ProgressionKey)
	}
	query += ` ORDER BY workout_date, workout_id`
	if params.Limit > 0 {
		query += fmt.Sprintf(` LIMIT $%d`, len(args)+1)
		args = append(args, params.Limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	entries, err := rows2entries(rows)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("entries", len(entries)))
	return entries, nil
}

// WorkoutIDs returns the distinct workout ids present in the history.
// Together with the pending change queue it makes up the set of
// workouts already analyzed.
func (r *Repo) WorkoutIDs(ctx context.Context) (_ map[string]struct{}, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.workoutIds")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT DISTINCT workout_id FROM progression_history`)
	if err != nil {
		return nil, fmt.Errorf("list history workout ids: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan workout id: %w", err)
		}
		ids[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

// ReplaceAll swaps the whole history for the given entries in one
// transaction. Used by snapshot import.
func (r *Repo) ReplaceAll(ctx context.Context, entries []Entry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.replaceAll")
	span.SetAttributes(attribute.Int("entries", len(entries)))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				err = fmt.Errorf("%w [rollback err: %s]", err, rollbackErr)
			}
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM progression_history`); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	for _, entry := range entries {
		if _, err = tx.Exec(ctx, `
			INSERT INTO progression_history (
				progression_key, exercise_id, exercise_name, tier, change_type,
				old_weight, new_weight, old_stage, new_stage, amrap_reps,
				workout_id, workout_date, recorded_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			entry.ProgressionKey, entry.ExerciseID, entry.ExerciseName, entry.Tier, entry.ChangeType,
			entry.OldWeight, entry.NewWeight, entry.OldStage, entry.NewStage, entry.AmrapReps,
			entry.WorkoutID, entry.WorkoutDate, entry.RecordedAt,
		); err != nil {
			return fmt.Errorf("insert history entry %s/%s: %w", entry.ProgressionKey, entry.WorkoutID, err)
		}
	}

	return tx.Commit(ctx)
}

func rows2entries(rows pgx.Rows) ([]Entry, error) {
	entries := make([]Entry, 0)
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(
			&entry.ProgressionKey, &entry.ExerciseID, &entry.ExerciseName, &entry.Tier, &entry.ChangeType,
			&entry.OldWeight, &entry.NewWeight, &entry.OldStage, &entry.NewStage, &entry.AmrapReps,
			&entry.WorkoutID, &entry.WorkoutDate, &entry.RecordedAt,
		); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
