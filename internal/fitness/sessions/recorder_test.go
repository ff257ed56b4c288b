package sessions

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/samuelassuncao1/fitprogress/internal/fitness/workouts"
	"github.com/samuelassuncao1/fitprogress/internal/localstore"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testWorkout = &workouts.Workout{
	ID:      "w1",
	OwnerID: "samuel",
	Slot:    workouts.SlotA,
	Name:    "Pernas e Ombros",
	Exercises: []workouts.Exercise{
		{ID: "ex-squat", WorkoutID: "w1", Name: "Agachamento Livre", OrderIndex: 0},
		{ID: "ex-leg-press", WorkoutID: "w1", Name: "Leg Press 45°", OrderIndex: 1},
	},
}

func TestRecorder_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repoMock := NewMocksessionsRepo(ctrl)
	workoutsMock := NewMockworkoutGetter(ctrl)
	recorder := NewRecorder(repoMock, workoutsMock)

	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local)

	workoutsMock.EXPECT().
		GetWorkout(gomock.Any(), "w1").
		Return(testWorkout, nil)
	repoMock.EXPECT().
		AddSession(gomock.Any(), Session{
			OwnerID:     "samuel",
			WorkoutID:   "w1",
			WorkoutName: "Pernas e Ombros",
			WorkoutSlot: workouts.SlotA,
			Date:        date,
			Completed:   false,
		}).
		DoAndReturn(func(_ context.Context, s Session) (*Session, error) {
			s.ID = "s1"
			return &s, nil
		})

	var written []ExerciseLog
	repoMock.EXPECT().
		AddLog(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, l ExerciseLog) (*ExerciseLog, error) {
			written = append(written, l)
			return &l, nil
		}).
		Times(3)
	repoMock.EXPECT().
		MarkCompleted(gomock.Any(), "s1").
		Return(nil)

	session, err := recorder.Record(context.Background(), RecordParams{
		OwnerID:   "samuel",
		WorkoutID: "w1",
		Date:      date,
		Sets: map[string][]SetEntry{
			// input order within an exercise is preserved, exercises go by order index
			"ex-leg-press": {{Weight: 100, Reps: 10, Completed: true, RestSeconds: 60}},
			"ex-squat": {
				{Weight: 60, Reps: 8, Completed: true, RestSeconds: 90},
				{Weight: 62.5, Reps: 8, Completed: true, RestSeconds: 90},
			},
		},
	})
	require.NoError(t, err)
	assert.True(t, session.Completed)

	require.Len(t, written, 3)
	assert.Equal(t, "ex-squat", written[0].ExerciseID)
	assert.Equal(t, 1, written[0].SetNumber)
	assert.Equal(t, 60.0, written[0].Weight)
	assert.Equal(t, "ex-squat", written[1].ExerciseID)
	assert.Equal(t, 2, written[1].SetNumber)
	assert.Equal(t, "ex-leg-press", written[2].ExerciseID)
	assert.Equal(t, 1, written[2].SetNumber)
	for _, l := range written {
		assert.Equal(t, "s1", l.SessionID)
	}
}

func TestRecorder_Record_ClampsInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repoMock := NewMocksessionsRepo(ctrl)
	workoutsMock := NewMockworkoutGetter(ctrl)
	recorder := NewRecorder(repoMock, workoutsMock)

	workoutsMock.EXPECT().
		GetWorkout(gomock.Any(), "w1").
		Return(testWorkout, nil)
	repoMock.EXPECT().
		AddSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s Session) (*Session, error) {
			s.ID = "s1"
			return &s, nil
		})

	var written ExerciseLog
	repoMock.EXPECT().
		AddLog(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, l ExerciseLog) (*ExerciseLog, error) {
			written = l
			return &l, nil
		})
	repoMock.EXPECT().
		MarkCompleted(gomock.Any(), "s1").
		Return(nil)

	_, err := recorder.Record(context.Background(), RecordParams{
		OwnerID:   "samuel",
		WorkoutID: "w1",
		Date:      time.Now(),
		Sets: map[string][]SetEntry{
			"ex-squat": {{Weight: -20, Reps: -3, Completed: true, RestSeconds: 0}},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, written.Weight)
	assert.Equal(t, 0, written.Reps)
	assert.Equal(t, DefaultRestSeconds, written.RestSeconds)
}

func TestRecorder_Record_LogWriteFailureLeavesSessionIncomplete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repoMock := NewMocksessionsRepo(ctrl)
	workoutsMock := NewMockworkoutGetter(ctrl)
	recorder := NewRecorder(repoMock, workoutsMock)

	workoutsMock.EXPECT().
		GetWorkout(gomock.Any(), "w1").
		Return(testWorkout, nil)
	repoMock.EXPECT().
		AddSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s Session) (*Session, error) {
			s.ID = "s1"
			return &s, nil
		})

	bang := errors.New("disk full")
	first := repoMock.EXPECT().
		AddLog(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, l ExerciseLog) (*ExerciseLog, error) {
			return &l, nil
		})
	repoMock.EXPECT().
		AddLog(gomock.Any(), gomock.Any()).
		After(first).
		Return(nil, bang)
	// MarkCompleted must never be called

	_, err := recorder.Record(context.Background(), RecordParams{
		OwnerID:   "samuel",
		WorkoutID: "w1",
		Date:      time.Now(),
		Sets: map[string][]SetEntry{
			"ex-squat": {
				{Weight: 60, Reps: 8, Completed: true, RestSeconds: 90},
				{Weight: 60, Reps: 8, Completed: true, RestSeconds: 90},
			},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, bang)
}

// A session that failed mid-write must stay out of the completed listing,
// while remaining reachable by direct id.
func TestRecorder_Record_FailedSessionInvisibleToReadSide(t *testing.T) {
	ctx := context.Background()
	store, err := localstore.NewStore(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)
	repo := NewLocalRepo(store)

	session, err := repo.AddSession(ctx, Session{
		OwnerID:     "samuel",
		WorkoutID:   "w1",
		WorkoutName: "Pernas e Ombros",
		WorkoutSlot: workouts.SlotA,
		Date:        time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local),
	})
	require.NoError(t, err)

	// one orphan log written before the simulated failure
	_, err = repo.AddLog(ctx, ExerciseLog{
		SessionID: session.ID, ExerciseID: "ex-squat",
		SetNumber: 1, Weight: 60, Reps: 8, Completed: true, RestSeconds: 90,
	})
	require.NoError(t, err)

	completed, err := repo.ListCompletedForOwner(ctx, "samuel")
	require.NoError(t, err)
	assert.Empty(t, completed)

	ownerLogs, err := repo.LogsForOwner(ctx, "samuel")
	require.NoError(t, err)
	assert.Empty(t, ownerLogs)

	got, err := repo.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.False(t, got.Completed)
}
