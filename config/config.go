package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// EnvPrefix is the prefix of environment variables that override file
// values, e.g. HTTPLITE_PORT or HTTPLITE_STATS_ADDR.
const EnvPrefix = "HTTPLITE_"

// Environments
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds all application configuration. It is parsed once at
// startup and handed to the server by value.
type Config struct {
	Directory string `config:"directory"`
	Host      string `config:"host"`
	Port      int    `config:"port"`
	StatsAddr string `config:"stats.addr"`
	LogLevel  string `config:"log.level"`
	Env       string `config:"env"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Host:     "127.0.0.1",
		Port:     4221,
		LogLevel: "info",
		Env:      EnvDevelopment,
	}
}

// Load builds the configuration from args (without the program name).
// Sources are layered, later ones winning: defaults, the JSON file named
// by --config, HTTPLITE_ environment variables, flags given explicitly.
func Load(args []string) (*Config, error) {
	def := Default()

	fs := flag.NewFlagSet("http-lite", flag.ContinueOnError)
	fs.String("directory", def.Directory, "Directory served by /files/")
	fs.String("host", def.Host, "Listen host")
	fs.Int("port", def.Port, "Listen port")
	fs.String("stats-addr", def.StatsAddr, "Admin stats address (disabled when empty)")
	fs.String("log-level", def.LogLevel, "Log level (debug/info/warn/error)")
	fs.String("env", def.Env, "Environment (development/production)")
	configFile := fs.String("config", "", "Optional JSON configuration file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	m := NewManager()
	m.Set("directory", def.Directory)
	m.Set("host", def.Host)
	m.Set("port", def.Port)
	m.Set("stats.addr", def.StatsAddr)
	m.Set("log.level", def.LogLevel)
	m.Set("env", def.Env)

	if *configFile != "" {
		if err := m.LoadFromJSON(*configFile); err != nil {
			return nil, err
		}
	}
	m.LoadFromEnv(EnvPrefix)

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			return
		}
		m.Set(strings.ReplaceAll(f.Name, "-", "."), f.Value.String())
	})

	cfg := &Config{}
	if err := m.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges. Port 0 asks the OS for a free port.
func (c *Config) Validate() error {
	var errs []error
	if c.Port < 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}
	if c.Host == "" {
		errs = append(errs, errors.New("host is empty"))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil || c.LogLevel == "" {
		errs = append(errs, fmt.Errorf("unknown log level %q", c.LogLevel))
	}
	if c.Env != EnvDevelopment && c.Env != EnvProduction {
		errs = append(errs, fmt.Errorf("unknown env %q", c.Env))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Addr returns the core listen address
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
