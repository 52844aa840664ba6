package config

import (
	"os"
	"path/filepath"

	"codeberg.org/mutker/droidpulse/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultBridgePath     = "adb"
	defaultCommandTimeout = 30 // seconds
	defaultProbeTimeout   = 5  // seconds
	defaultPort           = 5555
	defaultReportsDir     = "reports"
	defaultModel          = "llama-3.3-70b-versatile"
	defaultTemperature    = 0.3
)

type Config struct {
	Device        string  `mapstructure:"device"`
	Verbose       bool    `mapstructure:"verbose"`
	Debug         bool    `mapstructure:"debug"`
	JSON          bool    `mapstructure:"json"`
	Report        bool    `mapstructure:"report"`
	Diagnostics   bool    `mapstructure:"diagnostics"`
	Wireless      bool    `mapstructure:"wireless"`
	Wired         bool    `mapstructure:"wired"`
	Port          int     `mapstructure:"port"`
	BridgePath    string  `mapstructure:"bridge_path"`
	Timeout       int     `mapstructure:"command_timeout"`
	ProbeWait     int     `mapstructure:"probe_timeout"`
	ReportsDir    string  `mapstructure:"reports_dir"`
	History       bool    `mapstructure:"history"`
	HistoryDB     string  `mapstructure:"history_db"`
	HistoryRecent int     `mapstructure:"history_recent"`
	Model         string  `mapstructure:"model"`
	Temperature   float64 `mapstructure:"temperature"`
	APIKey        string  `mapstructure:"api_key"`
}

// Load parses command line flags, merges the optional TOML config file and
// environment, and returns the resolved configuration. Flags take precedence
// over environment variables, which take precedence over the config file.
func Load() (*Config, error) {
	errFactory := errors.New()

	flags := pflag.NewFlagSet("droidpulse", pflag.ContinueOnError)
	// Tolerate unknown flags so the test runner's own flags pass through
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.StringP("device", "d", "", "Target device ID (default: first found)")
	flags.BoolP("verbose", "v", false, "Show raw collected data before the dashboard")
	flags.BoolP("json", "j", false, "Output JSON only")
	flags.BoolP("report", "r", false, "Generate an HTML report")
	flags.Bool("diagnostics", false, "Include network diagnostics in the scan")
	flags.Bool("wireless", false, "Switch the device bridge to wireless mode and exit")
	flags.Bool("wired", false, "Switch the device bridge back to USB mode and exit")
	flags.Int("port", defaultPort, "TCP port for wireless bridge mode")
	flags.Bool("debug", false, "Enable debug logging")
	flags.Bool("history", false, "Record scan results to the history database")
	flags.Int("history-recent", 0, "Print the N most recent recorded scans and exit")

	if err := flags.Parse(os.Args[1:]); err != nil {
		return nil, errFactory.Wrap(errors.ErrBindFlags, err)
	}

	v := viper.New()
	v.SetDefault("port", defaultPort)
	v.SetDefault("bridge_path", defaultBridgePath)
	v.SetDefault("command_timeout", defaultCommandTimeout)
	v.SetDefault("probe_timeout", defaultProbeTimeout)
	v.SetDefault("reports_dir", defaultReportsDir)
	v.SetDefault("history_db", defaultHistoryDB())
	v.SetDefault("model", defaultModel)
	v.SetDefault("temperature", defaultTemperature)

	// Load configuration from file
	explicit := os.Getenv("DROIDPULSE_CONFIG")
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.SetConfigName("droidpulse")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "droidpulse"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if explicit != "" || !notFound {
			return nil, errFactory.Wrap(errors.ErrReadConfig, err)
		}
	}

	v.SetEnvPrefix("DROIDPULSE")
	v.AutomaticEnv()
	if err := v.BindEnv("api_key", "GROQ_API_KEY", "DROIDPULSE_API_KEY"); err != nil {
		return nil, errFactory.Wrap(errors.ErrBindFlags, err)
	}

	// Command line flags override everything else
	if err := v.BindPFlags(flags); err != nil {
		return nil, errFactory.Wrap(errors.ErrBindFlags, err)
	}
	if err := v.BindPFlag("history_recent", flags.Lookup("history-recent")); err != nil {
		return nil, errFactory.Wrap(errors.ErrBindFlags, err)
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Validate() error {
	errFactory := errors.New()

	if c.Wireless && c.Wired {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "wireless and wired modes are mutually exclusive")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "port must be between 1 and 65535")
	}
	if c.Timeout <= 0 {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "command timeout must be positive")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "temperature must be between 0 and 2")
	}
	if c.HistoryRecent < 0 {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "history-recent must not be negative")
	}

	return nil
}

func defaultHistoryDB() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "droidpulse.db"
	}

	return filepath.Join(home, ".local", "share", "droidpulse", "history.db")
}
