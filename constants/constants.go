package constants

// viper keys
const (
	ConfigFolder = "CONFIG_FOLDER"
	LogLevel     = "LOG_LEVEL"
	LogFile      = "LOG_FILE"
	NoSave       = "NO_SAVE"
	OutputPath   = "OUTPUT_PATH"
)

const (
	// DefaultSyncMode is assigned to streams that arrive without a sync mode.
	DefaultSyncMode = "full_refresh"
	// ManualFrequency is the frequency value for jobs that only run on demand.
	ManualFrequency = "manual"
	// FrequencyField is the single field held by the frequency form.
	FrequencyField = "frequency"
)
