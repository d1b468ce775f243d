package report

import (
	"fmt"

	"fittrack/internal/workout"
)

// Line renders one workout summary as a report line, with all four
// numeric fields in three-decimal fixed point.
func Line(s workout.Summary) string {
	return fmt.Sprintf(
		"Activity type: %s; Duration: %.3f h; Distance: %.3f km; Avg speed: %.3f km/h; Calories burned: %.3f.",
		s.ActivityName, s.Duration, s.Distance, s.Speed, s.Calories)
}
