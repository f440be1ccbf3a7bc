package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/aztfmod/cafmerge/pkg/constants"
	"github.com/aztfmod/cafmerge/pkg/errors"
)

// envPrefix namespaces cafmerge settings in the environment,
// e.g. CAFMERGE_UNKNOWN_NAMESPACE.
const envPrefix = "CAFMERGE"

// Config holds the application configuration loaded from config files,
// environment variables and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool

	// Format is the listing format; empty picks one from the terminal.
	Format string

	// ConfigFile is the config file that was read, if any.
	ConfigFile string

	// Enrichment settings
	UnknownNamespace string
	LabelPrefix      string
	StripPrefix      string

	// Logging configuration. LogLevel is only set by --log-level;
	// DefaultLogLevel comes from LOG_LEVEL or the config file.
	LogLevel        string
	DefaultLogLevel string
	LogFormat       string
	LogOutput       string
	LogTimeFormat   string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables
// 3. .env files
// 4. Config file (~/.cafmerge.yaml or ./.cafmerge.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	return LoadConfigFile("")
}

// LoadConfigFile is LoadConfig with an explicit config file. An empty path
// searches the standard locations and tolerates a missing file; an explicit
// path must exist.
func LoadConfigFile(path string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	// Logging honours the unprefixed variables used by pkg/logging.
	_ = v.BindEnv("log_level", envPrefix+"_LOG_LEVEL", "LOG_LEVEL")
	_ = v.BindEnv("log_format", envPrefix+"_LOG_FORMAT", "LOG_FORMAT")
	_ = v.BindEnv("log_output", envPrefix+"_LOG_OUTPUT", "LOG_OUTPUT")
	_ = v.BindEnv("log_time_format", envPrefix+"_LOG_TIME_FORMAT", "LOG_TIME_FORMAT")
	_ = v.BindEnv("no-color", envPrefix+"_NO_COLOR", "NO_COLOR")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigName(constants.ConfigName)
		v.SetConfigType(constants.ConfigType)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, errors.NewConfigError("config", "failed to read config file", err)
		}
	}

	return &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no-color"),
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		UnknownNamespace: v.GetString("unknown_namespace"),
		LabelPrefix:      v.GetString("label_prefix"),
		StripPrefix:      v.GetString("strip_prefix"),

		DefaultLogLevel: v.GetString("log_level"),
		LogFormat:       v.GetString("log_format"),
		LogOutput:       v.GetString("log_output"),
		LogTimeFormat:   v.GetString("log_time_format"),
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("unknown_namespace", constants.UnknownNamespace)
	v.SetDefault("label_prefix", constants.LabelPrefix)
	v.SetDefault("strip_prefix", constants.ResourceTypePrefix)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")
	v.SetDefault("log_time_format", "kitchen")
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags so flag values take
// precedence over the config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, logLevel string) {
	c.Verbose = c.Verbose || verbose
	c.Quiet = c.Quiet || quiet
	c.NoColor = c.NoColor || noColor
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
// Variables already set in the environment are not overridden.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}
