package config

import "time"

type Config struct {
	HTTPAddr    string
	DatabaseDSN string
	RedisURL    string

	AdminJWTSecret string
	UserJWTSecret  string
	SessionTTL     time.Duration

	EmailAPIKey string
	EmailSender string

	// Login rate limiting, per client IP.
	LoginRatePerMinute int
	LoginBurst         int
}

// Load reads the configuration from the environment. Callers are expected to
// have loaded a .env file beforehand (godotenv in cmd/server).
func Load() *Config {
	return &Config{
		HTTPAddr:    GetEnvAsString("HTTP_ADDR", ":8080"),
		DatabaseDSN: GetEnvAsString("DATABASE_DSN", ""),
		RedisURL:    GetEnvAsString("REDIS_URL", "redis://localhost:6379"),

		AdminJWTSecret: GetEnvAsString("ADMIN_JWT_SECRET", ""),
		UserJWTSecret:  GetEnvAsString("USER_JWT_SECRET", ""),
		SessionTTL:     GetEnvAsDuration("SESSION_TTL", 24*time.Hour),

		EmailAPIKey: GetEnvAsString("EMAIL_API_KEY", ""),
		EmailSender: GetEnvAsString("EMAIL_SENDER", ""),

		LoginRatePerMinute: GetEnvAsInt("LOGIN_RATE_PER_MINUTE", 10),
		LoginBurst:         GetEnvAsInt("LOGIN_BURST", 5),
	}
}
