package history

import "codeberg.org/mutker/droidpulse/internal/errors"

const (
	defaultDirPerm = 0o755
)

type Config struct {
	DBPath  string
	Enabled bool
}

func DefaultConfig() Config {
	return Config{
		Enabled: false, // Disabled by default
	}
}

func (c Config) Validate() error {
	errFactory := errors.New()

	// Only validate DBPath if history is enabled
	if c.Enabled && c.DBPath == "" {
		return errFactory.New(ErrInvalidDBPath)
	}

	return nil
}
