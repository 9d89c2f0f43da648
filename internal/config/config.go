// Package config provides configuration loading for the kova CLI.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Config holds all client settings.
type Config struct {
	// APIBaseURL is the backend origin (api.base_url / KOVA_API_BASE_URL).
	APIBaseURL string
	// DataDir holds the local database (data_dir / KOVA_DATA_DIR).
	DataDir string
	// LogLevel is the zerolog level name (log_level / KOVA_LOG_LEVEL).
	LogLevel string
	// NoColor disables colored plain output (no_color / KOVA_NO_COLOR).
	NoColor bool
}

// Load initializes Viper and reads the configuration. If configFile is
// empty, ~/.kova/kova.yaml is used when present; a missing config file is
// not an error, defaults and environment variables apply.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else if found := findConfigFile(); found != "" {
		v.SetConfigFile(found)
	} else {
		v.SetConfigName("kova")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("KOVA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("api.base_url", "http://127.0.0.1:8000")
	v.SetDefault("data_dir", GetPaths().Data)
	v.SetDefault("log_level", "warn")
	v.SetDefault("no_color", false)
	_ = v.BindEnv("api.base_url")
	_ = v.BindEnv("data_dir")
	_ = v.BindEnv("log_level")
	_ = v.BindEnv("no_color")

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine unless one was named explicitly.
		if configFile != "" {
			return nil, err
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, err
		}
	}

	return &Config{
		APIBaseURL: v.GetString("api.base_url"),
		DataDir:    v.GetString("data_dir"),
		LogLevel:   v.GetString("log_level"),
		NoColor:    v.GetBool("no_color"),
	}, nil
}

// findConfigFile searches standard locations for a kova config file with an
// explicit YAML extension.
func findConfigFile() string {
	home, _ := os.UserHomeDir()
	paths := []string{
		".",
		filepath.Join(home, ".kova"),
	}
	for _, dir := range paths {
		for _, ext := range []string{".yaml", ".yml"} {
			path := filepath.Join(dir, "kova"+ext)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	return ""
}

// Paths holds the standard kova directory layout.
type Paths struct {
	// Home is the kova home directory (~/.kova)
	Home string
	// Data is the local database directory (~/.kova/data)
	Data string
}

var (
	paths     *Paths
	pathsOnce sync.Once
)

// GetPaths returns the singleton paths configuration.
func GetPaths() *Paths {
	pathsOnce.Do(func() {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		kovaHome := filepath.Join(home, ".kova")
		paths = &Paths{
			Home: kovaHome,
			Data: filepath.Join(kovaHome, "data"),
		}
	})
	return paths
}
