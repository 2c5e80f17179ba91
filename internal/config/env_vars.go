package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	appNameVar   = "APP_NAME"
	baseURLVar   = "BASE_URL"
	folderEnvVar = "FOLDER"
	timeoutVar   = "HTTP_TIMEOUT"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Seller Console")
}

// GetBaseURL returns the backend base URL (e.g. "https://api.example.com").
// It is read once at startup and prefixed to every request path.
func (EnvVars) GetBaseURL() string {
	return strings.TrimRight(GetEnv(baseURLVar, "http://localhost:5000"), "/")
}

func (EnvVars) GetDataFolder() string {
	return GetEnv(folderEnvVar, defaultDataFolder())
}

func (EnvVars) GetHTTPTimeout() string {
	return GetEnv(timeoutVar, "30s")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

func defaultDataFolder() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./data"
	}
	return filepath.Join(home, ".sellerctl")
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
