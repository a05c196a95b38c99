package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Game  GameConfig
	DB    DBConfig
	Log   LogConfig
	Debug DebugConfig
}

type GameConfig struct {
	Player        string
	TickRate      time.Duration
	MaxFrames     int
	SpawnEvery    int
	QueueCapacity int
}

type DBConfig struct {
	// Empty disables score persistence.
	Path string
}

type LogConfig struct {
	Level  string
	Format string // text | json
}

type DebugConfig struct {
	Enabled bool
	Addr    string
}

// Load reads the given .env files (".env" by default) and builds a Config from the
// environment. Missing files are ignored, real environment variables win.
func Load(envFiles ...string) *Config {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env may not exist
	_ = godotenv.Load(files...)

	return &Config{
		Game: GameConfig{
			Player:        env("GAME_PLAYER", "player-one"),
			TickRate:      envDuration("GAME_TICK_RATE", time.Second/60),
			MaxFrames:     envInt("GAME_MAX_FRAMES", 0),
			SpawnEvery:    envInt("GAME_SPAWN_EVERY", 30),
			QueueCapacity: envInt("GAME_QUEUE_CAPACITY", 256),
		},
		DB: DBConfig{
			Path: env("DB_PATH", "./arcade.db"),
		},
		Log: LogConfig{
			Level:  env("LOG_LEVEL", "info"),
			Format: env("LOG_FORMAT", "text"),
		},
		Debug: DebugConfig{
			Enabled: envBool("DEBUG_ENABLED", true),
			Addr:    env("DEBUG_ADDR", ":8080"),
		},
	}
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return i
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
