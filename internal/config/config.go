package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	PincodeAPIURL string
	CityAPIURL    string

	Debounce      time.Duration
	BlurDelay     time.Duration
	LookupTimeout time.Duration
	ResetDelay    time.Duration

	// Optional backends; empty disables them.
	DatabaseURL string
	RabbitURL   string
	RedisURL    string
	CacheTTL    time.Duration

	LogLevel  string
	LogFormat string

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port: getEnv("PORT", "8080"),

		PincodeAPIURL: getEnv("PINCODE_API_URL", "https://api.postalpincode.in"),
		CityAPIURL:    getEnv("CITY_API_URL", "https://api.teleport.org"),

		Debounce:      getDuration("SUGGEST_DEBOUNCE", 300*time.Millisecond),
		BlurDelay:     getDuration("SUGGEST_BLUR_DELAY", 150*time.Millisecond),
		LookupTimeout: getDuration("LOOKUP_TIMEOUT", 5*time.Second),
		ResetDelay:    getDuration("FORM_RESET_DELAY", 1200*time.Millisecond),

		DatabaseURL: getEnv("DB_URL", ""),
		RabbitURL:   getEnv("RABBITMQ_URL", ""),
		RedisURL:    getEnv("REDIS_URL", ""),
		CacheTTL:    getDuration("CACHE_TTL", 10*time.Minute),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),

		HTTPReadTimeout:  getDuration("HTTP_READ_TIMEOUT", 10*time.Second),
		HTTPWriteTimeout: getDuration("HTTP_WRITE_TIMEOUT", 20*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// getDuration accepts Go duration strings ("300ms") or a bare integer of milliseconds.
func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if ms, err := strconv.Atoi(v); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	return fallback
}
