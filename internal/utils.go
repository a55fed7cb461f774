package internal

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const (
	ConfigHomeEnv     = "ADVENTURE_CONFIG_HOME"
	CacheHomeEnv      = "ADVENTURE_CACHE_HOME"
	DefaultConfigDir  = ".adventure-agent"
	DefaultCacheDir   = "cache"
	SlugPostfixLength = 4
)

// GenerateRunSlug names a run directory: prefix plus a short uuid tail.
func GenerateRunSlug(prefix string) string {
	guid := uuid.New()
	return prefix + guid.String()[:SlugPostfixLength]
}

func GetConfigHome() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	result := filepath.Join(homeDir, DefaultConfigDir)

	if tmp := os.Getenv(ConfigHomeEnv); tmp != "" {
		result = tmp
	}

	return result, nil
}

func GetCacheHome() (string, error) {
	configHome, err := GetConfigHome()
	if err != nil {
		return "", err
	}

	result := filepath.Join(configHome, DefaultCacheDir)

	if tmp := os.Getenv(CacheHomeEnv); tmp != "" {
		result = tmp
	}

	return result, nil
}
