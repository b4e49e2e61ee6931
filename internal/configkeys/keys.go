package configkeys

const (
	delimiter = "."

	EnvPrefix = "PUREIVE"

	ConfigLogPrefix = "log"
	ConfigLogLevel  = ConfigLogPrefix + delimiter + "level"

	ConfigWorkoutPrefix       = "workout"
	ConfigWorkoutIntensity    = ConfigWorkoutPrefix + delimiter + "intensity"
	ConfigWorkoutRandomNumber = ConfigWorkoutPrefix + delimiter + "random_number"
	ConfigWorkoutDelay        = ConfigWorkoutPrefix + delimiter + "delay"

	ConfigCounterPrefix = "counter"
	ConfigCounterBound  = ConfigCounterPrefix + delimiter + "bound"
	ConfigCounterSkip   = ConfigCounterPrefix + delimiter + "skip"
	ConfigCounterStream = ConfigCounterPrefix + delimiter + "stream"
)
