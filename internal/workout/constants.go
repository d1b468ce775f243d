package workout

const (
	// Unit conversions
	MetersPerKm = 1000
	MinPerHour  = 60

	// Distance covered per action unit, in meters
	StepLength   = 0.65 // one step, running and walking
	StrokeLength = 1.38 // one stroke, swimming

	// Running calorie coefficients
	RunSpeedMultiplier = 18
	RunSpeedShift      = 20

	// Walking calorie coefficients
	WalkWeightMultiplier      = 0.035
	WalkSpeedHeightMultiplier = 0.029

	// Swimming calorie coefficients
	SwimSpeedShift       = 1.1
	SwimWeightMultiplier = 2
)

// Activity display names
const (
	ActivityRunning  = "Running"
	ActivityWalking  = "SportsWalking"
	ActivitySwimming = "Swimming"
)
