package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/todo/pkg/task"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	homedir.DisableCache = true
	t.Setenv("HOME", dir)
	t.Setenv("TODO_CONFIG_PATH", dir)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := LoadWith(viper.New())
	if err != nil {
		t.Fatalf("LoadWith: %v", err)
	}
	if !cfg.LogEnabled {
		t.Errorf("logging should default on")
	}
	if want := filepath.Join(home, ".todo", "debug.log"); cfg.LogPath != want {
		t.Errorf("LogPath = %q, want %q", cfg.LogPath, want)
	}
	if cfg.StartTab != task.Pending {
		t.Errorf("StartTab = %v", cfg.StartTab)
	}
	if cfg.Accent != DefaultAccent {
		t.Errorf("Accent = %q", cfg.Accent)
	}
	if !cfg.AltScreen {
		t.Errorf("AltScreen should default on")
	}
}

func TestLoadFile(t *testing.T) {
	dir := isolate(t)
	body := strings.Join([]string{
		"log:",
		"  level: debug",
		"  path: ~/logs/todo.log",
		"ui:",
		"  start_tab: completed",
		"  accent: \"#00AFFF\"",
		"  alt_screen: false",
		"",
	}, "\n")
	if err := os.WriteFile(filepath.Join(dir, ".todo.yaml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadWith(viper.New())
	if err != nil {
		t.Fatalf("LoadWith: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if want := filepath.Join(dir, "logs", "todo.log"); cfg.LogPath != want {
		t.Errorf("LogPath = %q, want %q", cfg.LogPath, want)
	}
	if cfg.StartTab != task.Completed {
		t.Errorf("StartTab = %v", cfg.StartTab)
	}
	if cfg.Accent != "#00AFFF" {
		t.Errorf("Accent = %q", cfg.Accent)
	}
	if cfg.AltScreen {
		t.Errorf("AltScreen should be off")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("TODO_LOG_ENABLED", "false")
	t.Setenv("TODO_UI_START_TAB", "done")

	cfg, err := LoadWith(viper.New())
	if err != nil {
		t.Fatalf("LoadWith: %v", err)
	}
	if cfg.LogEnabled {
		t.Errorf("TODO_LOG_ENABLED=false should disable logging")
	}
	if cfg.StartTab != task.Completed {
		t.Errorf("StartTab = %v", cfg.StartTab)
	}
}

func TestLoadRejectsUnknownTab(t *testing.T) {
	isolate(t)
	t.Setenv("TODO_UI_START_TAB", "archive")
	if _, err := LoadWith(viper.New()); err == nil {
		t.Fatalf("expected an error for an unknown start tab")
	}
}
