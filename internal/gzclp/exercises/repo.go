package exercises

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gzclp/internal/gzclp/program"
	"github.com/2beens/gzclp/internal/telemetry/tracing"
)

var ErrExerciseNotFound = errors.New("exercise not found")

// Repo persists the configuration partition: exercise definitions and
// the single program settings row.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

const definitionSelect = `
	SELECT id, external_template_id, name, role, muscle_group, custom_increment
	FROM exercise`

func (r *Repo) AddDefinition(ctx context.Context, def program.ExerciseDefinition) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	span.SetAttributes(attribute.String("id", def.ID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx, `
		INSERT INTO exercise (id, external_template_id, name, role, muscle_group, custom_increment)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		def.ID, def.ExternalTemplateID, def.Name, def.Role, def.MuscleGroup, def.CustomIncrement,
	)
	if err != nil {
		return fmt.Errorf("insert exercise %s: %w", def.ID, err)
	}
	return nil
}

func (r *Repo) GetDefinition(ctx context.Context, id string) (_ *program.ExerciseDefinition, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	span.SetAttributes(attribute.String("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, definitionSelect+` WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get exercise %s: %w", id, err)
	}
	defer rows.Close()

	defs, err := rows2definitions(rows)
	if err != nil {
		return nil, err
	}
	if len(defs) != 1 {
		return nil, ErrExerciseNotFound
	}
	return &defs[0], nil
}

func (r *Repo) ListDefinitions(ctx context.Context) (_ []program.ExerciseDefinition, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, definitionSelect+` ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	defs, err := rows2definitions(rows)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("exercises", len(defs)))
	return defs, nil
}

func (r *Repo) UpdateDefinition(ctx context.Context, def program.ExerciseDefinition) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.update")
	span.SetAttributes(attribute.String("id", def.ID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		UPDATE exercise
		SET external_template_id = $2, name = $3, role = $4, muscle_group = $5, custom_increment = $6
		WHERE id = $1`,
		def.ID, def.ExternalTemplateID, def.Name, def.Role, def.MuscleGroup, def.CustomIncrement,
	)
	if err != nil {
		return fmt.Errorf("update exercise %s: %w", def.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

func (r *Repo) DeleteDefinition(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.delete")
	span.SetAttributes(attribute.String("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM exercise WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete exercise %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

// ReplaceDefinitions swaps all definitions in one transaction. Used by
// snapshot import.
func (r *Repo) ReplaceDefinitions(ctx context.Context, defs []program.ExerciseDefinition) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.replaceAll")
	span.SetAttributes(attribute.Int("exercises", len(defs)))
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

	if _, err = tx.Exec(ctx, `DELETE FROM exercise`); err != nil {
		return fmt.Errorf("clear exercises: %w", err)
	}
	for _, def := range defs {
		if _, err = tx.Exec(ctx, `
			INSERT INTO exercise (id, external_template_id, name, role, muscle_group, custom_increment)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			def.ID, def.ExternalTemplateID, def.Name, def.Role, def.MuscleGroup, def.CustomIncrement,
		); err != nil {
			return fmt.Errorf("insert exercise %s: %w", def.ID, err)
		}
	}

	return tx.Commit(ctx)
}

// GetSettings returns the program settings, or kg defaults when none
// were saved yet.
func (r *Repo) GetSettings(ctx context.Context) (_ *program.Settings, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.settings.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT unit, active_day, auto_apply_changes, routine_to_day
		FROM program_settings WHERE id = 1`,
	)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return &program.Settings{Unit: program.UnitKg}, nil
	}

	var settings program.Settings
	var routineToDay []byte
	if err := rows.Scan(&settings.Unit, &settings.ActiveDay, &settings.AutoApplyChanges, &routineToDay); err != nil {
		return nil, fmt.Errorf("scan settings: %w", err)
	}
	if len(routineToDay) > 0 {
		if err := json.Unmarshal(routineToDay, &settings.RoutineToDay); err != nil {
			return nil, fmt.Errorf("unmarshal routine to day map: %w", err)
		}
	}
	return &settings, nil
}

func (r *Repo) SaveSettings(ctx context.Context, settings program.Settings) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.settings.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	routineToDay, err := json.Marshal(settings.RoutineToDay)
	if err != nil {
		return fmt.Errorf("marshal routine to day map: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO program_settings (id, unit, active_day, auto_apply_changes, routine_to_day)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			unit = EXCLUDED.unit,
			active_day = EXCLUDED.active_day,
			auto_apply_changes = EXCLUDED.auto_apply_changes,
			routine_to_day = EXCLUDED.routine_to_day`,
		settings.Unit, settings.ActiveDay, settings.AutoApplyChanges, routineToDay,
	)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func rows2definitions(rows pgx.Rows) ([]program.ExerciseDefinition, error) {
	defs := make([]program.ExerciseDefinition, 0)
	for rows.Next() {
		var def program.ExerciseDefinition
		if err := rows.Scan(
			&def.ID, &def.ExternalTemplateID, &def.Name, &def.Role, &def.MuscleGroup, &def.CustomIncrement,
		); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		defs = append(defs, def)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return defs, nil
}
