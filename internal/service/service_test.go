package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittrack/internal/sensor"
	"fittrack/internal/workout"
)

func TestProcess(t *testing.T) {
	packages := []sensor.Package{
		{Type: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{Type: "RUN", Data: []float64{15000, 1, 75}},
		{Type: "WLK", Data: []float64{9000, 1, 75, 180}},
	}

	results := Process(packages)
	require.Len(t, results, 3)

	for i, res := range results {
		require.NoError(t, res.Err, "package %d", i)
		assert.Equal(t, packages[i], res.Package)
	}

	assert.Equal(t, workout.ActivitySwimming, results[0].Summary.ActivityName)
	assert.InDelta(t, 336.0, results[0].Summary.Calories, 1e-9)

	assert.Equal(t, workout.ActivityRunning, results[1].Summary.ActivityName)
	assert.InDelta(t, 9.75, results[1].Summary.Distance, 1e-9)
	assert.InDelta(t, 699.75, results[1].Summary.Calories, 1e-9)

	assert.Equal(t, workout.ActivityWalking, results[2].Summary.ActivityName)
	assert.InDelta(t, 157.5, results[2].Summary.Calories, 1e-9)
}

func TestProcessKeepsOrderAndFailures(t *testing.T) {
	packages := []sensor.Package{
		{Type: "RUN", Data: []float64{15000, 1, 75}},
		{Type: "XYZ", Data: []float64{100, 1, 70}},
		{Type: "SWM", Data: []float64{720, 1, 80, 25, 40}},
	}

	results := Process(packages)
	require.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, sensor.ErrUnknownActivity)
	assert.NoError(t, results[2].Err)

	// The failed entry stays in place with its package attached.
	assert.Equal(t, "XYZ", results[1].Package.Type)
	assert.Equal(t, workout.ActivitySwimming, results[2].Summary.ActivityName)
}

func TestTotals(t *testing.T) {
	results := Process([]sensor.Package{
		{Type: "RUN", Data: []float64{15000, 1, 75}},
		{Type: "WLK", Data: []float64{9000, 1, 75, 180}},
		{Type: "XYZ", Data: []float64{1, 1, 1}},
	})

	totals := Totals(results)
	assert.Equal(t, 3, totals.Entries)
	assert.Equal(t, 1, totals.Failed)
	assert.InDelta(t, 2.0, totals.Duration, 1e-9)
	assert.InDelta(t, 15.6, totals.Distance, 1e-9)   // 9.75 + 5.85
	assert.InDelta(t, 857.25, totals.Calories, 1e-9) // 699.75 + 157.5
}

func TestSeries(t *testing.T) {
	// The half-hour run keeps speed and distance distinguishable.
	results := Process([]sensor.Package{
		{Type: "RUN", Data: []float64{6000, 0.5, 70}},
		{Type: "XYZ", Data: []float64{1, 1, 1}},
		{Type: "WLK", Data: []float64{9000, 1, 75, 180}},
	})

	tests := []struct {
		metric string
		want   []float64
	}{
		{MetricSpeed, []float64{7.8, 5.85}},
		{MetricDistance, []float64{3.9, 5.85}},
		{MetricCalories, []float64{252.84, 157.5}},
	}

	for _, tt := range tests {
		t.Run(tt.metric, func(t *testing.T) {
			got := Series(results, tt.metric)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.InDelta(t, tt.want[i], got[i], 1e-9)
			}
		})
	}
}
