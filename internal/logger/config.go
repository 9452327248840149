// internal/logger/config.go
package logger

// Config controls log output destinations and rotation.
type Config struct {
	Development bool
	LogFile     string
	MaxSize     int // megabytes
	MaxBackups  int
	MaxAge      int // days
	Compress    bool
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() *Config {
	return &Config{
		Development: false,
		LogFile:     "logs/dexboard.log",
		MaxSize:     25,
		MaxBackups:  3,
		MaxAge:      14,
		Compress:    true,
	}
}
