package workouts

import (
	"context"
	"errors"

	"github.com/samuelassuncao1/fitprogress/internal/fitness/storage"
	"github.com/samuelassuncao1/fitprogress/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var _ workoutsRepo = (*Repo)(nil)

// Repo is the postgres backend for workouts and exercises.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) ListForOwner(ctx context.Context, ownerID string) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listforowner")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner.id", ownerID))

	rows, err := r.db.Query(ctx,
		`SELECT id, owner_id, slot, name FROM workout WHERE owner_id = $1 ORDER BY slot`,
		ownerID,
	)
	if err != nil {
		return nil, storage.NewError("workouts.list", err)
	}
	defer rows.Close()

	var workouts []Workout
	for rows.Next() {
		var w Workout
		if err := rows.Scan(&w.ID, &w.OwnerID, &w.Slot, &w.Name); err != nil {
			return nil, storage.NewError("workouts.list.scan", err)
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, storage.NewError("workouts.list.rows", err)
	}

	for i := range workouts {
		exercises, err := r.exercisesForWorkout(ctx, workouts[i].ID)
		if err != nil {
			return nil, err
		}
		workouts[i].Exercises = exercises
	}

	return workouts, nil
}

func (r *Repo) GetWorkout(ctx context.Context, id string) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var w Workout
	err = r.db.QueryRow(ctx,
		`SELECT id, owner_id, slot, name FROM workout WHERE id = $1`,
		id,
	).Scan(&w.ID, &w.OwnerID, &w.Slot, &w.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrWorkoutNotFound
	}
	if err != nil {
		return nil, storage.NewError("workouts.get", err)
	}

	exercises, err := r.exercisesForWorkout(ctx, w.ID)
	if err != nil {
		return nil, err
	}
	w.Exercises = exercises

	return &w, nil
}

func (r *Repo) exercisesForWorkout(ctx context.Context, workoutID string) ([]Exercise, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, workout_id, name, order_index, default_sets, default_reps
			FROM exercise
			WHERE workout_id = $1
			ORDER BY order_index`,
		workoutID,
	)
	if err != nil {
		return nil, storage.NewError("exercises.list", err)
	}
	defer rows.Close()

	var exercises []Exercise
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(
			&e.ID, &e.WorkoutID, &e.Name, &e.OrderIndex, &e.DefaultSets, &e.DefaultReps,
		); err != nil {
			return nil, storage.NewError("exercises.list.scan", err)
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storage.NewError("exercises.list.rows", err)
	}

	return exercises, nil
}

func (r *Repo) AddWorkout(ctx context.Context, workout Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if workout.ID == "" {
		workout.ID = uuid.NewString()
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO workout (id, owner_id, slot, name) VALUES ($1, $2, $3, $4)`,
		workout.ID, workout.OwnerID, workout.Slot, workout.Name,
	)
	if err != nil {
		return nil, storage.NewError("workouts.add", err)
	}

	return &workout, nil
}

func (r *Repo) RenameWorkout(ctx context.Context, id, name string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.rename")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx,
		`UPDATE workout SET name = $1 WHERE id = $2`,
		name, id,
	)
	if err != nil {
		return storage.NewError("workouts.rename", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

func (r *Repo) AddExercise(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if exercise.ID == "" {
		exercise.ID = uuid.NewString()
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO exercise (id, workout_id, name, order_index, default_sets, default_reps)
			VALUES ($1, $2, $3, $4, $5, $6)`,
		exercise.ID, exercise.WorkoutID, exercise.Name,
		exercise.OrderIndex, exercise.DefaultSets, exercise.DefaultReps,
	)
	if err != nil {
		return nil, storage.NewError("exercises.add", err)
	}

	return &exercise, nil
}

func (r *Repo) UpdateExercise(ctx context.Context, exercise Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx,
		`UPDATE exercise
			SET name = $1, order_index = $2, default_sets = $3, default_reps = $4
			WHERE id = $5`,
		exercise.Name, exercise.OrderIndex, exercise.DefaultSets, exercise.DefaultReps,
		exercise.ID,
	)
	if err != nil {
		return storage.NewError("exercises.update", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

func (r *Repo) DeleteExercise(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM exercise WHERE id = $1`, id)
	if err != nil {
		return storage.NewError("exercises.delete", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}
