package config

const (
	defaultScheme         = "https"
	defaultRequestTimeout = 0
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Environment variables consulted when a value is not given on the command line.
const (
	EnvHost        = "PHAROS_HOST"
	EnvAPIUser     = "PHAROS_API_USER"
	EnvAPIKey      = "PHAROS_API_KEY"
	EnvLegacyToken = "PHAROS_API_TOKEN"
)

// OptionNames lists every notification the server can be asked to send, in
// display order.
var OptionNames = []string{"fixity", "restore", "snapshot", "deletion"}

// DefaultOptions is the notification set used when none is requested.
var DefaultOptions = []string{"fixity", "restore"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		API: API{
			Scheme: defaultScheme,
		},
		Notify: Notify{
			Options:        append([]string(nil), DefaultOptions...),
			RequestTimeout: defaultRequestTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
