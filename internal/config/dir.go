// Package config resolves clocky's configuration directory and loads its
// config file.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "clocky"

// Dir returns the clocky configuration directory.
//
// Resolution:
//   - $CLOCKY_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/clocky if set (respects XDG on any platform)
//   - %AppData%/clocky on Windows
//   - ~/.config/clocky on macOS and Linux
//
// Returns "" when no home directory can be determined.
func Dir() string {
	if dir := os.Getenv("CLOCKY_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// Path returns the config file location, or "" when Dir is unknown.
func Path() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// EnvPath returns the env file location, or "" when Dir is unknown.
// It may set CLOCKY_HOST and CLOCKY_COLOR without touching the shell profile.
func EnvPath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "env")
}
