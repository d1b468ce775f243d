package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fittrack/internal/workout"
)

func TestLine(t *testing.T) {
	tests := []struct {
		name    string
		summary workout.Summary
		want    string
	}{
		{
			name: "swimming summary",
			summary: workout.Summary{
				ActivityName: workout.ActivitySwimming,
				Duration:     1,
				Distance:     0.9936,
				Speed:        1,
				Calories:     336,
			},
			want: "Activity type: Swimming; Duration: 1.000 h; Distance: 0.994 km; Avg speed: 1.000 km/h; Calories burned: 336.000.",
		},
		{
			name: "running summary",
			summary: workout.Summary{
				ActivityName: workout.ActivityRunning,
				Duration:     1,
				Distance:     9.75,
				Speed:        9.75,
				Calories:     699.75,
			},
			want: "Activity type: Running; Duration: 1.000 h; Distance: 9.750 km; Avg speed: 9.750 km/h; Calories burned: 699.750.",
		},
		{
			name: "walking summary",
			summary: workout.Summary{
				ActivityName: workout.ActivityWalking,
				Duration:     1,
				Distance:     5.85,
				Speed:        5.85,
				Calories:     157.5,
			},
			want: "Activity type: SportsWalking; Duration: 1.000 h; Distance: 5.850 km; Avg speed: 5.850 km/h; Calories burned: 157.500.",
		},
		{
			name: "negative calories are printed as-is",
			summary: workout.Summary{
				ActivityName: workout.ActivityRunning,
				Duration:     1,
				Distance:     0.65,
				Speed:        0.65,
				Calories:     -37.35,
			},
			want: "Activity type: Running; Duration: 1.000 h; Distance: 0.650 km; Avg speed: 0.650 km/h; Calories burned: -37.350.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Line(tt.summary))
		})
	}
}
