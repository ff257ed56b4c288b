package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/samuelassuncao1/fitprogress/internal/fitness/identity"
	"github.com/samuelassuncao1/fitprogress/internal/telemetry/metrics"
	"github.com/samuelassuncao1/fitprogress/internal/telemetry/tracing"
	"github.com/samuelassuncao1/fitprogress/pkg"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts

type workoutsRepo interface {
	ListForOwner(ctx context.Context, ownerID string) ([]Workout, error)
	GetWorkout(ctx context.Context, id string) (*Workout, error)
	AddWorkout(ctx context.Context, workout Workout) (*Workout, error)
	RenameWorkout(ctx context.Context, id, name string) error
	AddExercise(ctx context.Context, exercise Exercise) (*Exercise, error)
	UpdateExercise(ctx context.Context, exercise Exercise) error
	DeleteExercise(ctx context.Context, id string) error
}

const (
	workoutsCacheSize       = 512 * 1024
	workoutsCacheExpireSecs = 60
)

type Handler struct {
	repo    workoutsRepo
	seeder  *Seeder
	metrics *metrics.Manager
	cache   *freecache.Cache
}

func NewHandler(repo workoutsRepo, seeder *Seeder, m *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		seeder:  seeder,
		metrics: m,
		cache:   freecache.NewCache(workoutsCacheSize),
	}
}

// HandleList returns the owner's workouts with exercises in order. The
// default A/B/C routines get seeded first if the owner has none yet.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	ownerID, ok := identity.FromContext(ctx)
	if !ok {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	created, err := h.seeder.EnsureDefaults(ctx, ownerID)
	if err != nil {
		log.Errorf("list workouts: seed defaults for owner [%s]: %s", ownerID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if created > 0 {
		h.metrics.CounterWorkoutsSeeded.Add(float64(created))
		h.cache.Del([]byte(ownerID))
	}

	if cached, err := h.cache.Get([]byte(ownerID)); err == nil {
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, cached, http.StatusOK)
		return
	}

	workouts, err := h.repo.ListForOwner(ctx, ownerID)
	if err != nil {
		log.Errorf("list workouts for owner [%s]: %s", ownerID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if workouts == nil {
		workouts = []Workout{}
	}

	workoutsJson, err := json.Marshal(workouts)
	if err != nil {
		log.Errorf("list workouts, marshal: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := h.cache.Set([]byte(ownerID), workoutsJson, workoutsCacheExpireSecs); err != nil {
		log.Warnf("list workouts, cache set for owner [%s]: %s", ownerID, err)
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, workoutsJson, http.StatusOK)
}

// HandleGet returns a single workout with its exercises.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	workout, err := h.repo.GetWorkout(ctx, id)
	if errors.Is(err, ErrWorkoutNotFound) {
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("get workout [%s]: %s", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	workoutJson, err := json.Marshal(workout)
	if err != nil {
		log.Errorf("get workout, marshal: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, workoutJson, http.StatusOK)
}

type renameWorkoutRequest struct {
	Name string `json:"name"`
}

// HandleRename changes a workout's display name. The slot label is fixed.
func (h *Handler) HandleRename(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.rename")
	defer span.End()

	var req renameWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warnf("rename workout, decode request: %s", err)
		http.Error(w, "malformed request", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "workout name cannot be empty", http.StatusBadRequest)
		return
	}

	id := mux.Vars(r)["id"]
	err := h.repo.RenameWorkout(ctx, id, req.Name)
	if errors.Is(err, ErrWorkoutNotFound) {
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("rename workout [%s]: %s", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.invalidateOwnerCache(ctx)
	pkg.WriteTextResponseOK(w, fmt.Sprintf("renamed:%s", id))
}

type addExerciseRequest struct {
	Name        string `json:"name"`
	OrderIndex  *int   `json:"orderIndex"`
	DefaultSets int    `json:"defaultSets"`
	DefaultReps int    `json:"defaultReps"`
}

// HandleAddExercise appends an exercise to a workout. When no order index is
// given the exercise goes to the end of the routine.
func (h *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.add")
	defer span.End()

	var req addExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warnf("add exercise, decode request: %s", err)
		http.Error(w, "malformed request", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "exercise name cannot be empty", http.StatusBadRequest)
		return
	}

	workoutID := mux.Vars(r)["id"]

	orderIndex := 0
	if req.OrderIndex != nil {
		orderIndex = *req.OrderIndex
		if orderIndex < 0 {
			orderIndex = 0
		}
	} else {
		workout, err := h.repo.GetWorkout(ctx, workoutID)
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Errorf("add exercise, get workout [%s]: %s", workoutID, err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		orderIndex = len(workout.Exercises)
	}

	exercise := Exercise{
		WorkoutID:   workoutID,
		Name:        req.Name,
		OrderIndex:  orderIndex,
		DefaultSets: req.DefaultSets,
		DefaultReps: req.DefaultReps,
	}
	if exercise.DefaultSets <= 0 {
		exercise.DefaultSets = DefaultSeedSets
	}
	if exercise.DefaultReps <= 0 {
		exercise.DefaultReps = DefaultSeedReps
	}

	added, err := h.repo.AddExercise(ctx, exercise)
	if errors.Is(err, ErrWorkoutNotFound) {
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("add exercise to workout [%s]: %s", workoutID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.invalidateOwnerCache(ctx)

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("add exercise, marshal: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

type updateExerciseRequest struct {
	Name        string `json:"name"`
	OrderIndex  int    `json:"orderIndex"`
	DefaultSets int    `json:"defaultSets"`
	DefaultReps int    `json:"defaultReps"`
}

func (h *Handler) HandleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.update")
	defer span.End()

	var req updateExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warnf("update exercise, decode request: %s", err)
		http.Error(w, "malformed request", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "exercise name cannot be empty", http.StatusBadRequest)
		return
	}
	if req.OrderIndex < 0 {
		req.OrderIndex = 0
	}
	if req.DefaultSets <= 0 {
		req.DefaultSets = DefaultSeedSets
	}
	if req.DefaultReps <= 0 {
		req.DefaultReps = DefaultSeedReps
	}

	id := mux.Vars(r)["id"]
	err := h.repo.UpdateExercise(ctx, Exercise{
		ID:          id,
		Name:        req.Name,
		OrderIndex:  req.OrderIndex,
		DefaultSets: req.DefaultSets,
		DefaultReps: req.DefaultReps,
	})
	if errors.Is(err, ErrExerciseNotFound) {
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("update exercise [%s]: %s", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.invalidateOwnerCache(ctx)
	pkg.WriteTextResponseOK(w, fmt.Sprintf("updated:%s", id))
}

// HandleDeleteExercise removes an exercise from its workout. Logs already
// recorded against the exercise stay in history.
func (h *Handler) HandleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	err := h.repo.DeleteExercise(ctx, id)
	if errors.Is(err, ErrExerciseNotFound) {
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("delete exercise [%s]: %s", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.invalidateOwnerCache(ctx)
	pkg.WriteTextResponseOK(w, fmt.Sprintf("deleted:%s", id))
}

func (h *Handler) invalidateOwnerCache(ctx context.Context) {
	if ownerID, ok := identity.FromContext(ctx); ok {
		h.cache.Del([]byte(ownerID))
	}
}
