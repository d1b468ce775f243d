package sensor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittrack/internal/workout"
)

func TestReadPackage(t *testing.T) {
	tests := []struct {
		name        string
		workoutType string
		data        []float64
		want        workout.Record
	}{
		{
			name:        "swimming package",
			workoutType: "SWM",
			data:        []float64{720, 1, 80, 25, 40},
			want:        workout.Swimming{Action: 720, Duration: 1, Weight: 80, PoolLength: 25, PoolLaps: 40},
		},
		{
			name:        "running package",
			workoutType: "RUN",
			data:        []float64{15000, 1, 75},
			want:        workout.Running{Action: 15000, Duration: 1, Weight: 75},
		},
		{
			name:        "walking package",
			workoutType: "WLK",
			data:        []float64{9000, 1, 75, 180},
			want:        workout.SportsWalking{Action: 9000, Duration: 1, Weight: 75, Height: 180},
		},
		{
			name:        "code matched by containment",
			workoutType: "MORNING_RUN_01",
			data:        []float64{5000, 0.5, 70},
			want:        workout.Running{Action: 5000, Duration: 0.5, Weight: 70},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadPackage(tt.workoutType, tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadPackageMatchOrder(t *testing.T) {
	// Both RUN and SWM are contained in the code; RUN sits earlier in
	// the mapping, so it wins.
	got, err := ReadPackage("SWM_RUN", []float64{1000, 1, 70})
	require.NoError(t, err)
	assert.IsType(t, workout.Running{}, got)
}

func TestReadPackageErrors(t *testing.T) {
	tests := []struct {
		name        string
		workoutType string
		data        []float64
		wantErr     error
	}{
		{"unknown code", "XYZ", []float64{100, 1, 70}, ErrUnknownActivity},
		{"too few values", "RUN", []float64{15000, 1}, ErrBadPackage},
		{"too many values", "RUN", []float64{15000, 1, 75, 180}, ErrBadPackage},
		{"fractional action count", "RUN", []float64{15000.5, 1, 75}, ErrBadPackage},
		{"fractional pool laps", "SWM", []float64{720, 1, 80, 25, 40.5}, ErrBadPackage},
		{"zero height", "WLK", []float64{9000, 1, 75, 0}, ErrBadPackage},
		{"negative height", "WLK", []float64{9000, 1, 75, -170}, ErrBadPackage},
		{"zero duration", "RUN", []float64{15000, 0, 75}, ErrInvalidDuration},
		{"negative duration", "WLK", []float64{9000, -1, 75, 180}, ErrInvalidDuration},
		{"empty code", "", []float64{100, 1, 70}, ErrUnknownActivity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadPackage(tt.workoutType, tt.data)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, got)
		})
	}
}

func TestDecodePackages(t *testing.T) {
	input := `[
		{"workout_type": "SWM", "data": [720, 1, 80, 25, 40]},
		{"workout_type": "RUN", "data": [15000, 1, 75]}
	]`

	packages, err := DecodePackages(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, packages, 2)
	assert.Equal(t, Package{Type: "SWM", Data: []float64{720, 1, 80, 25, 40}}, packages[0])
	assert.Equal(t, Package{Type: "RUN", Data: []float64{15000, 1, 75}}, packages[1])
}

func TestDecodePackagesMalformed(t *testing.T) {
	_, err := DecodePackages(strings.NewReader(`{"workout_type":`))
	require.Error(t, err)
}
