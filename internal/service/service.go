package service

import (
	"fittrack/internal/sensor"
	"fittrack/internal/workout"
)

// Result pairs one sensor package with its summary or its decode error
type Result struct {
	Package sensor.Package
	Summary workout.Summary
	Err     error
}

// Chart metrics selectable via display.chart_metric
const (
	MetricCalories = "calories"
	MetricSpeed    = "speed"
	MetricDistance = "distance"
)

// Process converts a batch of sensor packages, one result per package,
// in input order. Entries are independent; a failed package never
// stops the batch.
func Process(packages []sensor.Package) []Result {
	results := make([]Result, 0, len(packages))
	for _, p := range packages {
		rec, err := sensor.ReadPackage(p.Type, p.Data)
		if err != nil {
			results = append(results, Result{Package: p, Err: err})
			continue
		}
		results = append(results, Result{Package: p, Summary: rec.Info()})
	}
	return results
}

// BatchTotals aggregates one processed batch for display
type BatchTotals struct {
	Entries  int
	Failed   int
	Duration float64 // hours
	Distance float64 // km
	Calories float64 // kcal
}

// Totals sums the decoded entries of a batch
func Totals(results []Result) BatchTotals {
	totals := BatchTotals{Entries: len(results)}
	for _, r := range results {
		if r.Err != nil {
			totals.Failed++
			continue
		}
		totals.Duration += r.Summary.Duration
		totals.Distance += r.Summary.Distance
		totals.Calories += r.Summary.Calories
	}
	return totals
}

// Series extracts one per-entry metric for charting. Failed entries
// are skipped so the series stays plottable.
func Series(results []Result, metric string) []float64 {
	var series []float64
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		switch metric {
		case MetricSpeed:
			series = append(series, r.Summary.Speed)
		case MetricDistance:
			series = append(series, r.Summary.Distance)
		default:
			series = append(series, r.Summary.Calories)
		}
	}
	return series
}
