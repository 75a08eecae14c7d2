// Package config loads settings from .todo.yaml and TODO_* environment
// variables.
package config

import (
	"fmt"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/todo/pkg/task"
)

const (
	DefaultLogPath = "~/.todo/debug.log"
	DefaultAccent  = "#FF5FAF"
)

// Config is the resolved application configuration.
type Config struct {
	LogEnabled bool
	LogPath    string
	LogLevel   string

	StartTab  task.Tab
	Accent    string
	AltScreen bool
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		LogEnabled: true,
		LogPath:    DefaultLogPath,
		LogLevel:   "info",
		StartTab:   task.Pending,
		Accent:     DefaultAccent,
		AltScreen:  true,
	}
}

// Load reads the first .todo.yaml found in $TODO_CONFIG_PATH, the working
// directory or the home directory. A missing file is not an error.
func Load() (*Config, error) {
	return LoadWith(viper.New())
}

// LoadWith is Load against a caller supplied viper instance.
func LoadWith(v *viper.Viper) (*Config, error) {
	v.SetDefault("log.enabled", true)
	v.SetDefault("log.path", DefaultLogPath)
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.start_tab", "pending")
	v.SetDefault("ui.accent", DefaultAccent)
	v.SetDefault("ui.alt_screen", true)

	v.SetConfigName(".todo") // .yaml is implicit
	v.SetEnvPrefix("TODO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("TODO_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	tab, err := task.ParseTab(v.GetString("ui.start_tab"))
	if err != nil {
		return nil, fmt.Errorf("ui.start_tab: %w", err)
	}

	logPath, err := homedir.Expand(v.GetString("log.path"))
	if err != nil {
		return nil, fmt.Errorf("log.path: %w", err)
	}

	return &Config{
		LogEnabled: v.GetBool("log.enabled"),
		LogPath:    logPath,
		LogLevel:   v.GetString("log.level"),
		StartTab:   tab,
		Accent:     v.GetString("ui.accent"),
		AltScreen:  v.GetBool("ui.alt_screen"),
	}, nil
}
