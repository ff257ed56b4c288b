package progress

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/samuelassuncao1/fitprogress/internal/fitness/sessions"
	"github.com/samuelassuncao1/fitprogress/internal/fitness/workouts"
	"github.com/samuelassuncao1/fitprogress/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=progress

type sessionsSource interface {
	ListCompletedForOwner(ctx context.Context, ownerID string) ([]sessions.Session, error)
	LogsForOwner(ctx context.Context, ownerID string) ([]sessions.ExerciseLog, error)
}

type workoutsSource interface {
	ListForOwner(ctx context.Context, ownerID string) ([]workouts.Workout, error)
}

// ExerciseSummary is the per-exercise aggregate over all completed sessions.
type ExerciseSummary struct {
	ExerciseID string  `json:"exerciseId"`
	Name       string  `json:"name"`
	MaxWeight  float64 `json:"maxWeight"`
	AvgWeight  float64 `json:"avgWeight"`
	TotalSets  int     `json:"totalSets"`
	LastDate   string  `json:"lastDate"`
}

// FrequencyStats counts completed sessions. AvgRestSeconds and
// CompletionRate are configuration defaults, not derived from log data.
type FrequencyStats struct {
	TotalSessions     int `json:"totalSessions"`
	SessionsThisMonth int `json:"sessionsThisMonth"`
	AvgRestSeconds    int `json:"avgRestSeconds"`
	CompletionRate    int `json:"completionRate"`
}

type Report struct {
	Exercises []ExerciseSummary `json:"exercises"`
	Stats     FrequencyStats    `json:"stats"`
}

// Analyzer computes the progress report from completed sessions and their
// logs. Incomplete sessions never contribute.
type Analyzer struct {
	sessions       sessionsSource
	workouts       workoutsSource
	avgRestSeconds int
	completionRate int
	now            func() time.Time
}

func NewAnalyzer(sessionsSrc sessionsSource, workoutsSrc workoutsSource, avgRestSeconds int) *Analyzer {
	return &Analyzer{
		sessions:       sessionsSrc,
		workouts:       workoutsSrc,
		avgRestSeconds: avgRestSeconds,
		completionRate: 100,
		now:            time.Now,
	}
}

// ReportForOwner builds per-exercise summaries for every exercise in the
// owner's current workouts that has at least one log, sorted descending by
// max weight, plus the frequency stats. Empty collections yield an empty
// report, never an error.
func (a *Analyzer) ReportForOwner(ctx context.Context, ownerID string) (_ *Report, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.progress.report")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner.id", ownerID))

	completed, err := a.sessions.ListCompletedForOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list completed sessions: %w", err)
	}

	logs, err := a.sessions.LogsForOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}

	ownerWorkouts, err := a.workouts.ListForOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	dateBySession := make(map[string]time.Time, len(completed))
	for _, s := range completed {
		dateBySession[s.ID] = s.Date
	}

	type exerciseAcc struct {
		maxWeight float64
		sumWeight float64
		totalSets int
		lastDate  time.Time
	}
	accByExercise := make(map[string]*exerciseAcc)
	for _, l := range logs {
		acc, ok := accByExercise[l.ExerciseID]
		if !ok {
			acc = &exerciseAcc{}
			accByExercise[l.ExerciseID] = acc
		}
		if l.Weight > acc.maxWeight {
			acc.maxWeight = l.Weight
		}
		acc.sumWeight += l.Weight
		acc.totalSets++
		if date, ok := dateBySession[l.SessionID]; ok && date.After(acc.lastDate) {
			acc.lastDate = date
		}
	}

	summaries := []ExerciseSummary{}
	for _, w := range ownerWorkouts {
		for _, e := range w.Exercises {
			acc, ok := accByExercise[e.ID]
			if !ok {
				continue
			}
			summaries = append(summaries, ExerciseSummary{
				ExerciseID: e.ID,
				Name:       e.Name,
				MaxWeight:  acc.maxWeight,
				AvgWeight:  acc.sumWeight / float64(acc.totalSets),
				TotalSets:  acc.totalSets,
				LastDate:   acc.lastDate.Format(dateLayout),
			})
		}
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].MaxWeight > summaries[j].MaxWeight
	})

	// Session dates are calendar dates; the postgres DATE column scans as
	// midnight UTC, so compare calendar fields, never instants.
	now := a.now()
	thisMonth := 0
	for _, s := range completed {
		if s.Date.Year() == now.Year() && s.Date.Month() == now.Month() && s.Date.Day() <= now.Day() {
			thisMonth++
		}
	}

	return &Report{
		Exercises: summaries,
		Stats: FrequencyStats{
			TotalSessions:     len(completed),
			SessionsThisMonth: thisMonth,
			AvgRestSeconds:    a.avgRestSeconds,
			CompletionRate:    a.completionRate,
		},
	}, nil
}
