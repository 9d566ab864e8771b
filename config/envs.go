package config

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Application modes.
const (
	ModeCLI  = "cli"
	ModeHTTP = "http"
)

// Config holds the application's configuration values.
type Config struct {
	AppMode           string        // Driver to run: cli or http
	BoardWidth        int           // Columns of a generated board
	BoardHeight       int           // Rows of a generated board
	WallChance        float64       // Probability of an interior wall
	BoardSeed         int64         // Seed for board generation, 0 for time based
	SearchMode        string        // Path cost mode: legacy or accumulated
	MaxBoardDimension int           // Largest width or height accepted over HTTP
	MaxBoards         int           // Boards kept in memory at once, 0 for unlimited
	HostIP            string        // Host IP for the server
	RESTPort          int           // Port for the REST API
	GinMode           string        // Mode for the Gin framework (e.g., release, debug, test)
	JWTSecret         string        // Secret key for JWT signing
	JWTIssuer         string        // Issuer claim for JWTs
	TokenTTL          time.Duration // Lifetime of a board token
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig loads the .env file if present and builds the configuration.
// Invalid values are reported and replaced by their defaults.
func initConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		log.Printf("[APP] [WARNING] %v; falling back to defaults", err)
		cfg = Default()
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = randomSecret()
		log.Printf("[APP] [WARNING] JWT_SECRET is not set, using a random secret for this run")
	}
	return cfg
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		AppMode:           ModeCLI,
		BoardWidth:        10,
		BoardHeight:       10,
		WallChance:        0.15,
		SearchMode:        "legacy",
		MaxBoardDimension: 64,
		MaxBoards:         1024,
		HostIP:            "0.0.0.0",
		RESTPort:          8080,
		GinMode:           "release",
		JWTIssuer:         "vinom-pathfinder",
		TokenTTL:          60 * time.Minute,
	}
}

// Load reads the configuration from the environment. Unset variables keep
// their defaults; set but malformed ones are an error.
func Load() (Config, error) {
	cfg := Default()
	var err error

	cfg.AppMode = getEnvWithDefault("APP_MODE", cfg.AppMode)
	if cfg.AppMode != ModeCLI && cfg.AppMode != ModeHTTP {
		return cfg, fmt.Errorf("APP_MODE must be %q or %q, got %q", ModeCLI, ModeHTTP, cfg.AppMode)
	}
	if cfg.BoardWidth, err = getEnvAsInt("BOARD_WIDTH", cfg.BoardWidth); err != nil {
		return cfg, err
	}
	if cfg.BoardHeight, err = getEnvAsInt("BOARD_HEIGHT", cfg.BoardHeight); err != nil {
		return cfg, err
	}
	if cfg.WallChance, err = getEnvAsFloat("WALL_CHANCE", cfg.WallChance); err != nil {
		return cfg, err
	}
	if cfg.BoardSeed, err = getEnvAsInt64("BOARD_SEED", cfg.BoardSeed); err != nil {
		return cfg, err
	}
	if cfg.MaxBoardDimension, err = getEnvAsInt("MAX_BOARD_DIMENSION", cfg.MaxBoardDimension); err != nil {
		return cfg, err
	}
	if cfg.MaxBoards, err = getEnvAsInt("MAX_BOARDS", cfg.MaxBoards); err != nil {
		return cfg, err
	}
	if cfg.RESTPort, err = getEnvAsInt("REST_PORT", cfg.RESTPort); err != nil {
		return cfg, err
	}
	ttlMinutes, err := getEnvAsInt("TOKEN_TTL_MINUTES", int(cfg.TokenTTL/time.Minute))
	if err != nil {
		return cfg, err
	}
	cfg.TokenTTL = time.Duration(ttlMinutes) * time.Minute

	cfg.SearchMode = getEnvWithDefault("SEARCH_MODE", cfg.SearchMode)
	cfg.HostIP = getEnvWithDefault("HOST_IP", cfg.HostIP)
	cfg.GinMode = getEnvWithDefault("GIN_MODE", cfg.GinMode)
	cfg.JWTSecret = getEnvWithDefault("JWT_SECRET", cfg.JWTSecret)
	cfg.JWTIssuer = getEnvWithDefault("JWT_ISSUER", cfg.JWTIssuer)

	return cfg, nil
}

// Addr returns the listen address of the REST API.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.HostIP, c.RESTPort)
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer, or the default when unset.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}

func getEnvAsInt64(key string, defaultValue int64) (int64, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return defaultValue, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}

func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue, fmt.Errorf("environment variable %s must be a number: %w", key, err)
	}
	return value, nil
}

// randomSecret returns 32 random bytes, base64 encoded.
func randomSecret() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatalf("[APP] [FATAL] generating JWT secret: %v", err)
	}
	return base64.URLEncoding.EncodeToString(bytes)
}
