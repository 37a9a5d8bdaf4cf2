package conductance

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config manages pipeline configuration using Viper
type Config struct {
	v *viper.Viper
}

// NewConfig creates a new configuration with defaults
func NewConfig() *Config {
	v := viper.New()

	// Input parameters
	v.SetDefault("graph.num_nodes", 0)

	// Analysis parameters
	v.SetDefault("analysis.validate", true)
	v.SetDefault("analysis.modularity", true)

	// Output parameters
	v.SetDefault("output.precision", 6)
	v.SetDefault("output.membership_file", "")

	// Logging parameters
	v.SetDefault("logging.level", "info")

	v.SetEnvPrefix("conductance")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFromFile loads configuration from file
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	return c.v.ReadInConfig()
}

func (c *Config) NumNodes() int { return c.v.GetInt("graph.num_nodes") }

func (c *Config) Validate() bool   { return c.v.GetBool("analysis.validate") }
func (c *Config) Modularity() bool { return c.v.GetBool("analysis.modularity") }

func (c *Config) Precision() int         { return c.v.GetInt("output.precision") }
func (c *Config) MembershipFile() string { return c.v.GetString("output.membership_file") }

func (c *Config) LogLevel() string { return c.v.GetString("logging.level") }

// Set allows dynamic configuration changes
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// Viper exposes the underlying store so command-line flags can be bound to it
func (c *Config) Viper() *viper.Viper {
	return c.v
}

// CreateLogger creates a zerolog logger based on config
func (c *Config) CreateLogger() zerolog.Logger {
	return c.NewLogger(os.Stdout)
}

// NewLogger creates a console logger writing to out
func (c *Config) NewLogger(out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", "conductance").Logger()
}
