package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application-wide configuration populated from environment variables.
type Config struct {
	Port         string
	OutputDir    string
	FFmpegBin    string
	FFprobeBin   string
	TTSEndpoint  string
	DefaultVoice string

	ComposeTimeout time.Duration

	SecretsDir         string
	CredentialsPath    string
	TokenPath          string
	DriveUploadEnabled bool
	DriveFolderID      string
	DriveDebug         bool
}

// Load reads environment variables and returns Config with defaults applied.
func Load() *Config {
	// read root .env if present
	_ = godotenv.Load()
	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		OutputDir:          getEnv("OUTPUT_DIR", "output"),
		FFmpegBin:          getEnv("FFMPEG_BIN", "ffmpeg"),
		FFprobeBin:         getEnv("FFPROBE_BIN", "ffprobe"),
		TTSEndpoint:        getEnv("TTS_ENDPOINT", ""),
		DefaultVoice:       getEnv("TTS_VOICE", "en-US-GuyNeural"),
		ComposeTimeout:     time.Duration(getEnvInt("COMPOSE_TIMEOUT_SEC", 600)) * time.Second,
		SecretsDir:         getEnv("SECRETS_DIR", "secrets"),
		CredentialsPath:    getEnv("GOOGLE_CREDENTIALS", ""),
		TokenPath:          getEnv("GOOGLE_TOKEN", ""),
		DriveUploadEnabled: getEnvBool("DRIVE_UPLOAD_ENABLED", false),
		DriveFolderID:      getEnv("DRIVE_FOLDER_ID", ""),
		DriveDebug:         getEnvBool("DRIVE_DEBUG", false),
	}
	if cfg.CredentialsPath == "" {
		cfg.CredentialsPath = filepath.Join(cfg.SecretsDir, "credentials.json")
	}
	if cfg.TokenPath == "" {
		cfg.TokenPath = filepath.Join(cfg.SecretsDir, "token.json")
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getEnvBool(key string, def bool) bool {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	default:
		return def
	}
}
