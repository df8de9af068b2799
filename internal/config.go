package internal

import "os"

// Config holds all configuration values.
type Config struct {
	ServerURL string
	StorePath string
	CacheDir  string
	ExportDir string
}

// LoadConfig reads configuration from environment variables, falling back
// to the defaults the reference client used.
func LoadConfig() Config {
	return Config{
		ServerURL: getEnv("WANDERSYNC_SERVER_URL", "http://127.0.0.1:5000"),
		StorePath: getEnv("WANDERSYNC_STORE_PATH", ""),
		CacheDir:  getEnv("WANDERSYNC_CACHE_DIR", ""),
		ExportDir: getEnv("WANDERSYNC_EXPORT_DIR", "./exports"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
