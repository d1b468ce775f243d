package sensor

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"fittrack/internal/workout"
)

// Package is one raw sensor reading: a short activity code plus the
// positional values for that activity's fields.
type Package struct {
	Type string    `json:"workout_type"`
	Data []float64 `json:"data"`
}

// ErrUnknownActivity is returned when no activity code matches
var ErrUnknownActivity = errors.New("unknown activity")

// ErrBadPackage is returned when the values don't fit the matched activity
var ErrBadPackage = errors.New("invalid workout data")

// ErrInvalidDuration is returned for a zero or negative duration
var ErrInvalidDuration = errors.New("duration must be positive")

// Field counts per activity: action, duration, weight, plus
// height (walking) or pool length and laps (swimming).
const (
	runningArgs  = 3
	walkingArgs  = 4
	swimmingArgs = 5
)

// builders maps activity codes to record constructors. Order matters:
// codes are matched by substring containment and the first match wins.
var builders = []struct {
	code  string
	build func(data []float64) (workout.Record, error)
}{
	{"RUN", buildRunning},
	{"WLK", buildWalking},
	{"SWM", buildSwimming},
}

// ReadPackage constructs the workout record matching an activity code.
// The code matches an entry when it contains that entry's code, so
// "MORNING_RUN_01" is a running package.
func ReadPackage(workoutType string, data []float64) (workout.Record, error) {
	for _, b := range builders {
		if !strings.Contains(workoutType, b.code) {
			continue
		}
		rec, err := b.build(data)
		if err != nil {
			return nil, err
		}
		return rec, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownActivity, workoutType)
}

// DecodePackages reads a JSON array of sensor packages
func DecodePackages(r io.Reader) ([]Package, error) {
	var packages []Package
	if err := json.NewDecoder(r).Decode(&packages); err != nil {
		return nil, fmt.Errorf("decoding packages: %w", err)
	}
	return packages, nil
}

func buildRunning(data []float64) (workout.Record, error) {
	if len(data) != runningArgs {
		return nil, fmt.Errorf("%w: running takes %d values, got %d", ErrBadPackage, runningArgs, len(data))
	}

	action, err := countArg("action", data[0])
	if err != nil {
		return nil, err
	}
	duration, err := positiveDuration(data[1])
	if err != nil {
		return nil, err
	}

	return workout.Running{
		Action:   action,
		Duration: duration,
		Weight:   data[2],
	}, nil
}

func buildWalking(data []float64) (workout.Record, error) {
	if len(data) != walkingArgs {
		return nil, fmt.Errorf("%w: walking takes %d values, got %d", ErrBadPackage, walkingArgs, len(data))
	}

	action, err := countArg("action", data[0])
	if err != nil {
		return nil, err
	}
	duration, err := positiveDuration(data[1])
	if err != nil {
		return nil, err
	}
	height, err := positiveArg("height", data[3])
	if err != nil {
		return nil, err
	}

	return workout.SportsWalking{
		Action:   action,
		Duration: duration,
		Weight:   data[2],
		Height:   height,
	}, nil
}

func buildSwimming(data []float64) (workout.Record, error) {
	if len(data) != swimmingArgs {
		return nil, fmt.Errorf("%w: swimming takes %d values, got %d", ErrBadPackage, swimmingArgs, len(data))
	}

	action, err := countArg("action", data[0])
	if err != nil {
		return nil, err
	}
	duration, err := positiveDuration(data[1])
	if err != nil {
		return nil, err
	}
	laps, err := countArg("pool laps", data[4])
	if err != nil {
		return nil, err
	}

	return workout.Swimming{
		Action:     action,
		Duration:   duration,
		Weight:     data[2],
		PoolLength: data[3],
		PoolLaps:   laps,
	}, nil
}

// countArg converts a counter field, rejecting fractional values
func countArg(name string, v float64) (int, error) {
	if v != math.Trunc(v) {
		return 0, fmt.Errorf("%w: %s must be a whole number, got %v", ErrBadPackage, name, v)
	}
	return int(v), nil
}

// positiveArg validates a field the formulas divide by
func positiveArg(name string, v float64) (float64, error) {
	if v <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive, got %v", ErrBadPackage, name, v)
	}
	return v, nil
}

func positiveDuration(v float64) (float64, error) {
	if v <= 0 {
		return 0, fmt.Errorf("%w, got %v", ErrInvalidDuration, v)
	}
	return v, nil
}
