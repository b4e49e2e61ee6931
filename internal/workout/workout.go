// Package workout builds daily exercise plans around an expensive intensity
// calculation that is memoized per input.
package workout

import (
	"fmt"
	"time"

	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"

	"github.com/on-the-ground/pure_ive_go/internal/logging"
	"github.com/on-the-ground/pure_ive_go/pure"
)

const (
	// LowIntensityLimit is the intensity below which the plan is strength work.
	LowIntensityLimit uint32 = 25

	// RestDayNumber is the random number that turns a high-intensity day into rest.
	RestDayNumber uint32 = 3
)

type Plan struct {
	Intensity uint32
	Steps     []string
	Rest      bool
	Span      timespan.TimeSpan
}

type Generator struct {
	calc   *pure.Cacher[uint32, uint32]
	logger *zap.Logger
}

// NewGenerator memoizes calc for the generator's lifetime.
func NewGenerator(calc func(uint32) uint32, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		calc:   pure.NewCacher(calc, pure.WithLogger(logger)),
		logger: logger,
	}
}

// SimulatedCalculation stands in for an expensive computation: it sleeps for
// delay and returns its input.
func SimulatedCalculation(delay time.Duration, logger *zap.Logger) func(uint32) uint32 {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(intensity uint32) uint32 {
		logging.Log(logger, logging.LogInfo, "calculating slowly...", map[string]interface{}{
			"intensity": intensity,
			"delay":     delay,
		})
		time.Sleep(delay)
		return intensity
	}
}

func (g *Generator) Generate(intensity, randomNumber uint32) Plan {
	start := time.Now()
	plan := Plan{Intensity: intensity}

	switch {
	case intensity < LowIntensityLimit:
		plan.Steps = []string{
			fmt.Sprintf("Today, do %d pushups!", g.calc.Value(intensity)),
			fmt.Sprintf("Next, do %d situps!", g.calc.Value(intensity)),
		}
	case randomNumber == RestDayNumber:
		plan.Rest = true
		plan.Steps = []string{"Take a break today! Remember to stay hydrated!"}
	default:
		plan.Steps = []string{
			fmt.Sprintf("Today, run for %d minutes!", g.calc.Value(intensity)),
		}
	}

	plan.Span = timespan.BetweenTimes(start, time.Now())
	logging.Log(g.logger, logging.LogDebug, "workout generated", map[string]interface{}{
		"intensity": intensity,
		"rest":      plan.Rest,
		"took":      plan.Span.Duration(),
	})
	return plan
}
