package sessions

import (
	"context"
	"fmt"
	"time"

	"github.com/samuelassuncao1/fitprogress/internal/fitness/workouts"
	"github.com/samuelassuncao1/fitprogress/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// DefaultRestSeconds is used when a set entry carries no usable rest time.
const DefaultRestSeconds = 90

//go:generate mockgen -source=$GOFILE -destination=recorder_mocks_test.go -package=sessions

type sessionsRepo interface {
	AddSession(ctx context.Context, session Session) (*Session, error)
	MarkCompleted(ctx context.Context, id string) error
	GetSession(ctx context.Context, id string) (*Session, error)
	ListCompletedForOwner(ctx context.Context, ownerID string) ([]Session, error)
	AddLog(ctx context.Context, exerciseLog ExerciseLog) (*ExerciseLog, error)
	LogsForSession(ctx context.Context, sessionID string) ([]ExerciseLog, error)
	LogsForExercise(ctx context.Context, exerciseID string) ([]ExerciseLog, error)
}

type workoutGetter interface {
	GetWorkout(ctx context.Context, id string) (*workouts.Workout, error)
}

// SetEntry is one set as the user entered it, before clamping.
type SetEntry struct {
	Weight      float64 `json:"weight"`
	Reps        int     `json:"reps"`
	Completed   bool    `json:"completed"`
	RestSeconds int     `json:"restSeconds"`
}

// RecordParams is the recorder input: which workout was run, when, and the
// ordered set entries per exercise id.
type RecordParams struct {
	OwnerID   string
	WorkoutID string
	Date      time.Time
	Sets      map[string][]SetEntry
}

// Recorder turns a finished workout run into a persisted session with its
// per-set logs.
type Recorder struct {
	repo     sessionsRepo
	workouts workoutGetter
}

func NewRecorder(repo sessionsRepo, workouts workoutGetter) *Recorder {
	return &Recorder{
		repo:     repo,
		workouts: workouts,
	}
}

// Record creates the session incomplete, writes one log per set (exercises
// in order_index order, sets in input order, 1-based set numbers), then
// marks the session completed. A log write failure leaves the session
// incomplete and its already-written logs in place; there is no rollback,
// the completed flag alone keeps the session out of history and progress.
func (rec *Recorder) Record(ctx context.Context, params RecordParams) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "recorder.sessions.record")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("owner.id", params.OwnerID),
		attribute.String("workout.id", params.WorkoutID),
	)

	workout, err := rec.workouts.GetWorkout(ctx, params.WorkoutID)
	if err != nil {
		return nil, fmt.Errorf("get workout: %w", err)
	}

	session, err := rec.repo.AddSession(ctx, Session{
		OwnerID:     params.OwnerID,
		WorkoutID:   workout.ID,
		WorkoutName: workout.Name,
		WorkoutSlot: workout.Slot,
		Date:        params.Date,
		Completed:   false,
	})
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	logged := 0
	for _, exercise := range workout.Exercises {
		entries := params.Sets[exercise.ID]
		for i, entry := range entries {
			clamped := clampSetEntry(entry)
			if _, err := rec.repo.AddLog(ctx, ExerciseLog{
				SessionID:   session.ID,
				ExerciseID:  exercise.ID,
				SetNumber:   i + 1,
				Weight:      clamped.Weight,
				Reps:        clamped.Reps,
				Completed:   clamped.Completed,
				RestSeconds: clamped.RestSeconds,
			}); err != nil {
				return nil, fmt.Errorf(
					"write log %d for exercise [%s], session stays incomplete: %w",
					i+1, exercise.ID, err,
				)
			}
			logged++
		}
	}

	if err := rec.repo.MarkCompleted(ctx, session.ID); err != nil {
		return nil, fmt.Errorf("mark session completed: %w", err)
	}
	session.Completed = true

	log.Debugf(
		"recorded session [%s] for owner [%s]: workout [%s], %d logs",
		session.ID, params.OwnerID, workout.Name, logged,
	)

	return session, nil
}

// clampSetEntry coerces invalid numeric input to valid minimums instead of
// rejecting it.
func clampSetEntry(entry SetEntry) SetEntry {
	if entry.Weight < 0 {
		entry.Weight = 0
	}
	if entry.Reps < 0 {
		entry.Reps = 0
	}
	if entry.RestSeconds <= 0 {
		entry.RestSeconds = DefaultRestSeconds
	}
	return entry
}
