package workout

import "math"

// Record is a single parsed sensor reading. It is immutable and is
// consumed exactly once to produce a Summary.
type Record interface {
	Info() Summary
}

// Summary holds the derived metrics for one workout
type Summary struct {
	ActivityName string
	Duration     float64 // hours
	Distance     float64 // km
	Speed        float64 // km/h
	Calories     float64 // kcal
}

// Running is a running session reading
type Running struct {
	Action   int     // steps
	Duration float64 // hours
	Weight   float64 // kg
}

// Info computes the running summary.
// The calorie estimate scales with speed and goes negative below
// the formula's break-even speed; that is kept as-is.
func (r Running) Info() Summary {
	distance := distanceKm(r.Action, StepLength)
	speed := meanSpeedKmh(distance, r.Duration)

	calories := (RunSpeedMultiplier*speed - RunSpeedShift) *
		r.Weight / MetersPerKm * (r.Duration * MinPerHour)

	return Summary{
		ActivityName: ActivityRunning,
		Duration:     r.Duration,
		Distance:     distance,
		Speed:        speed,
		Calories:     calories,
	}
}

// SportsWalking is a race walking session reading
type SportsWalking struct {
	Action   int     // steps
	Duration float64 // hours
	Weight   float64 // kg
	Height   float64 // cm
}

// Info computes the walking summary.
// The speed²/height quotient keeps only its integer part. Callers
// guarantee a positive height.
func (w SportsWalking) Info() Summary {
	distance := distanceKm(w.Action, StepLength)
	speed := meanSpeedKmh(distance, w.Duration)

	calories := (WalkWeightMultiplier*w.Weight +
		math.Floor(speed*speed/w.Height)*WalkSpeedHeightMultiplier*w.Weight) *
		(w.Duration * MinPerHour)

	return Summary{
		ActivityName: ActivityWalking,
		Duration:     w.Duration,
		Distance:     distance,
		Speed:        speed,
		Calories:     calories,
	}
}

// Swimming is a pool swimming session reading
type Swimming struct {
	Action     int     // strokes
	Duration   float64 // hours
	Weight     float64 // kg
	PoolLength float64 // meters
	PoolLaps   int
}

// Info computes the swimming summary.
// Speed comes from pool geometry, not from stroke count; the stroke
// count only determines the distance shown in the summary.
func (s Swimming) Info() Summary {
	distance := distanceKm(s.Action, StrokeLength)
	speed := s.PoolLength * float64(s.PoolLaps) / MetersPerKm / s.Duration

	calories := (speed + SwimSpeedShift) * SwimWeightMultiplier * s.Weight

	return Summary{
		ActivityName: ActivitySwimming,
		Duration:     s.Duration,
		Distance:     distance,
		Speed:        speed,
		Calories:     calories,
	}
}

// distanceKm converts an action count to kilometers covered
func distanceKm(action int, strideLength float64) float64 {
	return float64(action) * strideLength / MetersPerKm
}

// meanSpeedKmh is the average speed over the whole session.
// Callers guarantee a positive duration.
func meanSpeedKmh(distance, hours float64) float64 {
	return distance / hours
}
