package workouts

import (
	"context"
	"sort"

	"github.com/samuelassuncao1/fitprogress/internal/fitness/storage"
	"github.com/samuelassuncao1/fitprogress/internal/localstore"
	"github.com/samuelassuncao1/fitprogress/internal/telemetry/tracing"

	"github.com/google/uuid"
)

var _ workoutsRepo = (*LocalRepo)(nil)

// LocalRepo keeps all workouts (with their exercises nested) as one JSON
// document in the local store, the same shape the web client keeps in
// browser local storage.
type LocalRepo struct {
	store *localstore.Store
}

func NewLocalRepo(store *localstore.Store) *LocalRepo {
	return &LocalRepo{store: store}
}

func (r *LocalRepo) readAll() ([]Workout, error) {
	var all []Workout
	if _, err := r.store.Read(localstore.KeyWorkouts, &all); err != nil {
		return nil, storage.NewError("localstore.workouts.read", err)
	}
	return all, nil
}

func (r *LocalRepo) writeAll(all []Workout) error {
	if err := r.store.Write(localstore.KeyWorkouts, all); err != nil {
		return storage.NewError("localstore.workouts.write", err)
	}
	return nil
}

func (r *LocalRepo) ListForOwner(ctx context.Context, ownerID string) (_ []Workout, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "localrepo.workouts.listforowner")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	all, err := r.readAll()
	if err != nil {
		return nil, err
	}

	var workouts []Workout
	for _, w := range all {
		if w.OwnerID != ownerID {
			continue
		}
		sort.Slice(w.Exercises, func(i, j int) bool {
			return w.Exercises[i].OrderIndex < w.Exercises[j].OrderIndex
		})
		workouts = append(workouts, w)
	}
	sort.Slice(workouts, func(i, j int) bool {
		return workouts[i].Slot < workouts[j].Slot
	})

	return workouts, nil
}

func (r *LocalRepo) GetWorkout(ctx context.Context, id string) (_ *Workout, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "localrepo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	all, err := r.readAll()
	if err != nil {
		return nil, err
	}

	for _, w := range all {
		if w.ID == id {
			sort.Slice(w.Exercises, func(i, j int) bool {
				return w.Exercises[i].OrderIndex < w.Exercises[j].OrderIndex
			})
			return &w, nil
		}
	}
	return nil, ErrWorkoutNotFound
}

func (r *LocalRepo) AddWorkout(ctx context.Context, workout Workout) (_ *Workout, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "localrepo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	all, err := r.readAll()
	if err != nil {
		return nil, err
	}

	if workout.ID == "" {
		workout.ID = uuid.NewString()
	}
	all = append(all, workout)

	if err := r.writeAll(all); err != nil {
		return nil, err
	}
	return &workout, nil
}

func (r *LocalRepo) RenameWorkout(ctx context.Context, id, name string) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "localrepo.workouts.rename")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	all, err := r.readAll()
	if err != nil {
		return err
	}

	for i := range all {
		if all[i].ID == id {
			all[i].Name = name
			return r.writeAll(all)
		}
	}
	return ErrWorkoutNotFound
}

func (r *LocalRepo) AddExercise(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "localrepo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	all, err := r.readAll()
	if err != nil {
		return nil, err
	}

	if exercise.ID == "" {
		exercise.ID = uuid.NewString()
	}

	for i := range all {
		if all[i].ID == exercise.WorkoutID {
			all[i].Exercises = append(all[i].Exercises, exercise)
			if err := r.writeAll(all); err != nil {
				return nil, err
			}
			return &exercise, nil
		}
	}
	return nil, ErrWorkoutNotFound
}

func (r *LocalRepo) UpdateExercise(ctx context.Context, exercise Exercise) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "localrepo.exercises.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	all, err := r.readAll()
	if err != nil {
		return err
	}

	for i := range all {
		for j := range all[i].Exercises {
			if all[i].Exercises[j].ID == exercise.ID {
				exercise.WorkoutID = all[i].ID
				all[i].Exercises[j] = exercise
				return r.writeAll(all)
			}
		}
	}
	return ErrExerciseNotFound
}

func (r *LocalRepo) DeleteExercise(ctx context.Context, id string) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "localrepo.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	all, err := r.readAll()
	if err != nil {
		return err
	}

	for i := range all {
		for j := range all[i].Exercises {
			if all[i].Exercises[j].ID == id {
				all[i].Exercises = append(all[i].Exercises[:j], all[i].Exercises[j+1:]...)
				return r.writeAll(all)
			}
		}
	}
	return ErrExerciseNotFound
}
