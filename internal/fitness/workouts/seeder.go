package workouts

import (
	"context"
	"fmt"

	"github.com/samuelassuncao1/fitprogress/internal/telemetry/tracing"
	"github.com/samuelassuncao1/fitprogress/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// Seeder creates the default A/B/C routines for an owner that has none yet.
type Seeder struct {
	repo workoutsRepo
}

func NewSeeder(repo workoutsRepo) *Seeder {
	return &Seeder{
		repo: repo,
	}
}

// EnsureDefaults populates the three canonical workouts for the owner if the
// owner has no workouts at all. Idempotent: a second call is a no-op. Only
// the emptiness check guards against duplication - two racing activations
// can both pass it, in which case the storage unique constraint (postgres)
// settles the race, and the duplicate insert is ignored.
// Returns the number of workouts created.
func (s *Seeder) EnsureDefaults(ctx context.Context, ownerID string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "seeder.workouts.ensuredefaults")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner.id", ownerID))

	existing, err := s.repo.ListForOwner(ctx, ownerID)
	if err != nil {
		return 0, fmt.Errorf("list workouts: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	created := 0
	for _, dw := range defaultWorkouts {
		workout, err := s.repo.AddWorkout(ctx, Workout{
			OwnerID: ownerID,
			Slot:    dw.Slot,
			Name:    dw.Name,
		})
		if err != nil {
			if pkg.IsUniqueViolationError(err) {
				// another activation won the race for this slot
				log.Debugf("seed workout [%s] for owner [%s]: already there", dw.Slot, ownerID)
				continue
			}
			return created, fmt.Errorf("seed workout [%s]: %w", dw.Slot, err)
		}

		for i, name := range dw.Exercises {
			if _, err := s.repo.AddExercise(ctx, Exercise{
				WorkoutID:   workout.ID,
				Name:        name,
				OrderIndex:  i,
				DefaultSets: DefaultSeedSets,
				DefaultReps: DefaultSeedReps,
			}); err != nil {
				return created, fmt.Errorf("seed exercise [%s]: %w", name, err)
			}
		}

		created++
	}

	log.Debugf("seeded %d default workouts for owner [%s]", created, ownerID)
	return created, nil
}
