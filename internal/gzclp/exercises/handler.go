package exercises

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gzclp/internal/gzclp/program"
	"github.com/2beens/gzclp/internal/gzclp/progression"
	"github.com/2beens/gzclp/internal/hevy"
	"github.com/2beens/gzclp/internal/telemetry/tracing"
	"github.com/2beens/gzclp/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=exercises_test

type exercisesRepo interface {
	AddDefinition(ctx context.Context, def program.ExerciseDefinition) error
	GetDefinition(ctx context.Context, id string) (*program.ExerciseDefinition, error)
	ListDefinitions(ctx context.Context) ([]program.ExerciseDefinition, error)
	UpdateDefinition(ctx context.Context, def program.ExerciseDefinition) error
	DeleteDefinition(ctx context.Context, id string) error
	GetSettings(ctx context.Context) (*program.Settings, error)
	SaveSettings(ctx context.Context, settings program.Settings) error
}

type progressionStore interface {
	GetEntry(ctx context.Context, key progression.Key) (*progression.Entry, error)
	UpsertEntry(ctx context.Context, entry progression.Entry) error
	DeleteEntry(ctx context.Context, key progression.Key) error
}

type stateNotifier interface {
	StateChanged(ctx context.Context, partition string)
}

type routinesProvider interface {
	FetchRoutines(ctx context.Context) ([]hevy.Routine, error)
}

// Handler owns the configuration partition endpoints: exercise
// definitions, role assignment, program settings, plus the routines
// listing clients use to build the routine to day mapping. Assigning a
// role is the only place progression records get created.
type Handler struct {
	repo        exercisesRepo
	progression progressionStore
	notifier    stateNotifier
	routines    routinesProvider
}

func NewHandler(
	repo exercisesRepo,
	progressionStore progressionStore,
	notifier stateNotifier,
	routines routinesProvider,
) *Handler {
	return &Handler{
		repo:        repo,
		progression: progressionStore,
		notifier:    notifier,
		routines:    routines,
	}
}

type ListResponse struct {
	Exercises []program.ExerciseDefinition `json:"exercises"`
	Total     int                          `json:"total"`
}

type RoutinesListResponse struct {
	Routines []hevy.Routine `json:"routines"`
	Total    int            `json:"total"`
}

type NewExerciseRequest struct {
	ID                 string              `json:"id,omitempty"`
	ExternalTemplateID string              `json:"externalTemplateId"`
	Name               string              `json:"name"`
	MuscleGroup        program.MuscleGroup `json:"muscleGroup,omitempty"`
	CustomIncrement    *float64            `json:"customIncrement,omitempty"`
}

type UpdateExerciseRequest struct {
	ExternalTemplateID string              `json:"externalTemplateId"`
	Name               string              `json:"name"`
	MuscleGroup        program.MuscleGroup `json:"muscleGroup,omitempty"`
	CustomIncrement    *float64            `json:"customIncrement,omitempty"`
}

type AssignRoleRequest struct {
	Role program.Role `json:"role"`
	// starting weights for freshly created progression records; ignored
	// for records that already exist (role swaps keep their progression)
	T1Weight float64 `json:"t1Weight,omitempty"`
	T2Weight float64 `json:"t2Weight,omitempty"`
	Weight   float64 `json:"weight,omitempty"`
}

type AssignRoleResponse struct {
	Exercise program.ExerciseDefinition `json:"exercise"`
	// progression keys created or relinked by this assignment
	Keys []progression.Key `json:"keys"`
	// set when another exercise previously held the assigned role; its
	// role is cleared, never silently demoted, and the client decides
	// what the displaced exercise becomes
	DisplacedExerciseID string `json:"displacedExerciseId,omitempty"`
}

type DeleteExerciseResponse struct {
	DeletedID   string            `json:"deletedId"`
	DeletedKeys []progression.Key `json:"deletedKeys,omitempty"`
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	defs, err := h.repo.ListDefinitions(ctx)
	if err != nil {
		log.Errorf("list exercises: %s", err)
		http.Error(w, "failed to list exercises", http.StatusInternalServerError)
		return
	}

	writeJSON(w, ListResponse{Exercises: defs, Total: len(defs)}, http.StatusOK)
}

// HandleListRoutines serves the account's routines so clients can map
// routine ids to training days in the settings.
func (h *Handler) HandleListRoutines(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.routines.list")
	defer span.End()

	routines, err := h.routines.FetchRoutines(ctx)
	if err != nil {
		if errors.Is(err, hevy.ErrUnauthorized) {
			http.Error(w, "hevy api rejected the configured key", http.StatusBadGateway)
			return
		}
		log.Errorf("list routines: %s", err)
		http.Error(w, "failed to list routines", http.StatusInternalServerError)
		return
	}

	writeJSON(w, RoutinesListResponse{Routines: routines, Total: len(routines)}, http.StatusOK)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	def, err := h.repo.GetDefinition(ctx, id)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("get exercise %s: %s", id, err)
		http.Error(w, "failed to get exercise", http.StatusInternalServerError)
		return
	}

	writeJSON(w, def, http.StatusOK)
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.add")
	defer span.End()

	if contentType := r.Header.Get("Content-Type"); contentType != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req NewExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("add exercise, unmarshal json params: %s", err)
		http.Error(w, "add exercise failed", http.StatusBadRequest)
		return
	}

	if err := validateExerciseFields(req.ExternalTemplateID, req.Name, req.MuscleGroup, req.CustomIncrement); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	def := program.ExerciseDefinition{
		ID:                 strings.TrimSpace(req.ID),
		ExternalTemplateID: req.ExternalTemplateID,
		Name:               req.Name,
		MuscleGroup:        req.MuscleGroup,
		CustomIncrement:    req.CustomIncrement,
	}
	if def.ID == "" {
		id, err := pkg.GenerateRandomString(16)
		if err != nil {
			log.Errorf("add exercise, generate id: %s", err)
			http.Error(w, "add exercise failed", http.StatusInternalServerError)
			return
		}
		def.ID = id
	}

	if err := h.repo.AddDefinition(ctx, def); err != nil {
		log.Errorf("add exercise %s: %s", def.ID, err)
		http.Error(w, "add exercise failed", http.StatusInternalServerError)
		return
	}

	h.notifier.StateChanged(ctx, "config")
	writeJSON(w, def, http.StatusCreated)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.update")
	defer span.End()

	if contentType := r.Header.Get("Content-Type"); contentType != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	id := mux.Vars(r)["id"]
	var req UpdateExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("update exercise, unmarshal json params: %s", err)
		http.Error(w, "update exercise failed", http.StatusBadRequest)
		return
	}

	if err := validateExerciseFields(req.ExternalTemplateID, req.Name, req.MuscleGroup, req.CustomIncrement); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	def, err := h.repo.GetDefinition(ctx, id)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("update exercise, get %s: %s", id, err)
		http.Error(w, "update exercise failed", http.StatusInternalServerError)
		return
	}

	// role changes go through the assign role endpoint only
	def.ExternalTemplateID = req.ExternalTemplateID
	def.Name = req.Name
	def.MuscleGroup = req.MuscleGroup
	def.CustomIncrement = req.CustomIncrement

	if err := h.repo.UpdateDefinition(ctx, *def); err != nil {
		log.Errorf("update exercise %s: %s", id, err)
		http.Error(w, "update exercise failed", http.StatusInternalServerError)
		return
	}

	h.notifier.StateChanged(ctx, "config")
	writeJSON(w, def, http.StatusOK)
}

// HandleDelete removes the definition together with the progression
// records it owns: the accessory record keyed by its id, plus the two
// role records when it currently holds a primary role.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	def, err := h.repo.GetDefinition(ctx, id)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete exercise, get %s: %s", id, err)
		http.Error(w, "delete exercise failed", http.StatusInternalServerError)
		return
	}

	keys := []progression.Key{progression.AccessoryKey(def.ID)}
	if def.Role.IsPrimary() {
		keys = append(keys,
			progression.PrimaryKey(def.Role, program.TierT1),
			progression.PrimaryKey(def.Role, program.TierT2),
		)
	}

	var deletedKeys []progression.Key
	for _, key := range keys {
		if err := h.progression.DeleteEntry(ctx, key); err != nil {
			if errors.Is(err, progression.ErrEntryNotFound) {
				continue
			}
			log.Errorf("delete exercise %s, delete progression %s: %s", id, key, err)
			http.Error(w, "delete exercise failed", http.StatusInternalServerError)
			return
		}
		deletedKeys = append(deletedKeys, key)
	}

	if err := h.repo.DeleteDefinition(ctx, id); err != nil && !errors.Is(err, ErrExerciseNotFound) {
		log.Errorf("delete exercise %s: %s", id, err)
		http.Error(w, "delete exercise failed", http.StatusInternalServerError)
		return
	}

	h.notifier.StateChanged(ctx, "config")
	h.notifier.StateChanged(ctx, "progression")
	writeJSON(w, DeleteExerciseResponse{DeletedID: id, DeletedKeys: deletedKeys}, http.StatusOK)
}

// HandleAssignRole gives the exercise a program role and makes sure the
// backing progression records exist: two for a primary lift (T1 and
// T2), one for an accessory. Records that already exist for the role
// are relinked to this exercise and keep their weights, so swapping the
// squat variant does not reset the squat progression.
func (h *Handler) HandleAssignRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.assignRole")
	defer span.End()

	if contentType := r.Header.Get("Content-Type"); contentType != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	id := mux.Vars(r)["id"]
	var req AssignRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("assign role, unmarshal json params: %s", err)
		http.Error(w, "assign role failed", http.StatusBadRequest)
		return
	}
	if !req.Role.Valid() {
		http.Error(w, fmt.Sprintf("invalid role %q", req.Role), http.StatusBadRequest)
		return
	}

	def, err := h.repo.GetDefinition(ctx, id)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("assign role, get exercise %s: %s", id, err)
		http.Error(w, "assign role failed", http.StatusInternalServerError)
		return
	}

	settings, err := h.repo.GetSettings(ctx)
	if err != nil {
		log.Errorf("assign role, get settings: %s", err)
		http.Error(w, "assign role failed", http.StatusInternalServerError)
		return
	}

	displacedID, err := h.displaceRoleHolder(ctx, req.Role, def.ID)
	if err != nil {
		log.Errorf("assign role %s to %s, displace current holder: %s", req.Role, id, err)
		http.Error(w, "assign role failed", http.StatusInternalServerError)
		return
	}

	def.Role = req.Role
	if err := h.repo.UpdateDefinition(ctx, *def); err != nil {
		log.Errorf("assign role %s to %s: %s", req.Role, id, err)
		http.Error(w, "assign role failed", http.StatusInternalServerError)
		return
	}

	keys, err := h.ensureProgressionRecords(ctx, *def, req, settings.Unit)
	if err != nil {
		log.Errorf("assign role %s to %s, ensure progression records: %s", req.Role, id, err)
		http.Error(w, "assign role failed", http.StatusInternalServerError)
		return
	}

	h.notifier.StateChanged(ctx, "config")
	h.notifier.StateChanged(ctx, "progression")
	writeJSON(w, AssignRoleResponse{
		Exercise:            *def,
		Keys:                keys,
		DisplacedExerciseID: displacedID,
	}, http.StatusOK)
}

// displaceRoleHolder clears the role from the definition currently
// holding it, if any. Primary roles are exclusive; any number of
// exercises can be accessories.
func (h *Handler) displaceRoleHolder(ctx context.Context, role program.Role, newHolderID string) (string, error) {
	if !role.IsPrimary() {
		return "", nil
	}

	defs, err := h.repo.ListDefinitions(ctx)
	if err != nil {
		return "", fmt.Errorf("list definitions: %w", err)
	}
	for _, other := range defs {
		if other.Role != role || other.ID == newHolderID {
			continue
		}
		other.Role = ""
		if err := h.repo.UpdateDefinition(ctx, other); err != nil {
			return "", fmt.Errorf("clear role of %s: %w", other.ID, err)
		}
		return other.ID, nil
	}
	return "", nil
}

func (h *Handler) ensureProgressionRecords(
	ctx context.Context,
	def program.ExerciseDefinition,
	req AssignRoleRequest,
	unit program.Unit,
) ([]progression.Key, error) {
	type record struct {
		key    progression.Key
		weight float64
	}

	var records []record
	if def.Role.IsPrimary() {
		records = []record{
			{key: progression.PrimaryKey(def.Role, program.TierT1), weight: req.T1Weight},
			{key: progression.PrimaryKey(def.Role, program.TierT2), weight: req.T2Weight},
		}
	} else {
		records = []record{
			{key: progression.AccessoryKey(def.ID), weight: req.Weight},
		}
	}

	keys := make([]progression.Key, 0, len(records))
	for _, rec := range records {
		existing, err := h.progression.GetEntry(ctx, rec.key)
		switch {
		case err == nil:
			// role swap: keep the progression, just relink the exercise
			existing.LinkedExerciseID = def.ID
			if err := h.progression.UpsertEntry(ctx, *existing); err != nil {
				return nil, fmt.Errorf("relink %s: %w", rec.key, err)
			}
		case errors.Is(err, progression.ErrEntryNotFound):
			weight := rec.weight
			if weight <= 0 {
				weight = program.MinBarWeight(unit)
			}
			entry := progression.Entry{
				Key:              rec.key,
				LinkedExerciseID: def.ID,
				CurrentWeight:    weight,
				Stage:            program.MinStage,
				BaseWeight:       weight,
			}
			if err := h.progression.UpsertEntry(ctx, entry); err != nil {
				return nil, fmt.Errorf("create %s: %w", rec.key, err)
			}
		default:
			return nil, fmt.Errorf("get %s: %w", rec.key, err)
		}
		keys = append(keys, rec.key)
	}
	return keys, nil
}

func (h *Handler) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.settings.get")
	defer span.End()

	settings, err := h.repo.GetSettings(ctx)
	if err != nil {
		log.Errorf("get settings: %s", err)
		http.Error(w, "failed to get settings", http.StatusInternalServerError)
		return
	}

	writeJSON(w, settings, http.StatusOK)
}

func (h *Handler) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.settings.update")
	defer span.End()

	if contentType := r.Header.Get("Content-Type"); contentType != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var settings program.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		log.Errorf("update settings, unmarshal json params: %s", err)
		http.Error(w, "update settings failed", http.StatusBadRequest)
		return
	}

	if !settings.Unit.Valid() {
		http.Error(w, fmt.Sprintf("invalid unit %q", settings.Unit), http.StatusBadRequest)
		return
	}
	if settings.ActiveDay != program.DayUnknown && !settings.ActiveDay.Valid() {
		http.Error(w, fmt.Sprintf("invalid active day %d", settings.ActiveDay), http.StatusBadRequest)
		return
	}
	for routineID, day := range settings.RoutineToDay {
		if !day.Valid() {
			http.Error(w, fmt.Sprintf("invalid day %d for routine %s", day, routineID), http.StatusBadRequest)
			return
		}
	}

	if err := h.repo.SaveSettings(ctx, settings); err != nil {
		log.Errorf("update settings: %s", err)
		http.Error(w, "update settings failed", http.StatusInternalServerError)
		return
	}

	h.notifier.StateChanged(ctx, "config")
	writeJSON(w, settings, http.StatusOK)
}

func validateExerciseFields(templateID, name string, muscleGroup program.MuscleGroup, customIncrement *float64) error {
	if strings.TrimSpace(templateID) == "" {
		return errors.New("externalTemplateId is required")
	}
	if strings.TrimSpace(name) == "" {
		return errors.New("name is required")
	}
	if muscleGroup != "" && !muscleGroup.Valid() {
		return fmt.Errorf("invalid muscle group %q", muscleGroup)
	}
	if customIncrement != nil && *customIncrement <= 0 {
		return errors.New("customIncrement must be positive")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, payload interface{}, status int) {
	resp, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("marshal response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resp, status)
}
