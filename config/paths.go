package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// GetPath returns the path to the user's config directory.
func GetPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting user home directory: %w", err)
	}
	return filepath.Join(homeDir, LogSubDir), nil
}

// GetSettingsFilename returns the default path of the settings file.
func GetSettingsFilename() (string, error) {
	dir, err := GetPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// GetLogDir returns the directory release builds write their log file to:
// the user cache directory on windows, the config directory elsewhere.
func GetLogDir() (string, error) {
	if runtime.GOOS == "windows" {
		cacheDir, err := os.UserCacheDir()
		if err != nil {
			return "", fmt.Errorf("getting user cache directory: %w", err)
		}
		return filepath.Join(cacheDir, LogWinSubDir), nil
	}
	return GetPath()
}

// GetLogFilename returns the path of the release log file.
func GetLogFilename() (string, error) {
	dir, err := GetLogDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName+LogExt), nil
}
