package sessions

import (
	"errors"
	"time"

	"github.com/samuelassuncao1/fitprogress/internal/fitness/workouts"
)

var ErrSessionNotFound = errors.New("session not found")

// Session is one execution of a workout on a given date. The parent
// workout's name and slot are carried along for the history views.
// Completed is flipped to true only after every log of the session has been
// durably saved, and is the sole signal that the session counts toward
// history and progress.
type Session struct {
	ID          string        `json:"id"`
	OwnerID     string        `json:"ownerId"`
	WorkoutID   string        `json:"workoutId"`
	WorkoutName string        `json:"workoutName"`
	WorkoutSlot workouts.Slot `json:"workoutSlot"`
	Date        time.Time     `json:"date"`
	Completed   bool          `json:"completed"`
}

// ExerciseLog is one performed set.
type ExerciseLog struct {
	ID          string  `json:"id"`
	SessionID   string  `json:"sessionId"`
	ExerciseID  string  `json:"exerciseId"`
	SetNumber   int     `json:"setNumber"`
	Weight      float64 `json:"weight"`
	Reps        int     `json:"reps"`
	Completed   bool    `json:"completed"`
	RestSeconds int     `json:"restSeconds"`
}
