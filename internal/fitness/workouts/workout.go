package workouts

import "errors"

var (
	ErrWorkoutNotFound  = errors.New("workout not found")
	ErrExerciseNotFound = errors.New("exercise not found")
)

// Slot is one of the three fixed routine labels.
type Slot string

const (
	SlotA Slot = "A"
	SlotB Slot = "B"
	SlotC Slot = "C"
)

func (s Slot) IsValid() bool {
	switch s {
	case SlotA, SlotB, SlotC:
		return true
	default:
		return false
	}
}

type Workout struct {
	ID        string     `json:"id"`
	OwnerID   string     `json:"ownerId"`
	Slot      Slot       `json:"slot"`
	Name      string     `json:"name"`
	Exercises []Exercise `json:"exercises,omitempty"`
}

type Exercise struct {
	ID          string `json:"id"`
	WorkoutID   string `json:"workoutId"`
	Name        string `json:"name"`
	OrderIndex  int    `json:"orderIndex"`
	DefaultSets int    `json:"defaultSets"`
	DefaultReps int    `json:"defaultReps"`
}

const (
	DefaultSeedSets = 4
	DefaultSeedReps = 8
)

type defaultWorkout struct {
	Slot      Slot
	Name      string
	Exercises []string
}

// The canonical A/B/C routines every new owner starts with.
var defaultWorkouts = []defaultWorkout{
	{
		Slot: SlotA,
		Name: "Pernas e Ombros",
		Exercises: []string{
			"Agachamento Livre",
			"Leg Press 45°",
			"Cadeira Extensora",
			"Cadeira Flexora",
			"Desenvolvimento com Halteres",
			"Elevação Lateral",
		},
	},
	{
		Slot: SlotB,
		Name: "Peito e Tríceps",
		Exercises: []string{
			"Supino Reto",
			"Supino Inclinado",
			"Crucifixo Inclinado",
			"Tríceps Testa",
			"Tríceps Corda",
		},
	},
	{
		Slot: SlotC,
		Name: "Costas e Bíceps",
		Exercises: []string{
			"Barra Fixa",
			"Remada Curvada",
			"Pulldown",
			"Rosca Direta",
			"Rosca Alternada",
		},
	},
}
