package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port                    string
	Env                     string
	LogLevel                string
	PostgresConnStr         string
	MongoURI                string
	MongoDatabase           string
	RedisAddr               string
	ProfileCacheTTL         time.Duration
	FirebaseCredentialsPath string
	StorageBucket           string
	MediaPrefix             string
	FrontendURL             string
	SentryDSN               string
	RateLimitRPS            float64
	AutoMigrate             bool
}

// Load reads configuration from the environment, after loading .env if present
func Load() *Config {
	// A missing .env is fine, the variables may be set directly.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MONGO_DATABASE", "socialmedia")
	v.SetDefault("PROFILE_CACHE_TTL", "10m")
	v.SetDefault("MEDIA_BUCKET_PREFIX", "post-images")
	v.SetDefault("RATE_LIMIT_RPS", 20)
	v.SetDefault("AUTO_MIGRATE", true)

	return &Config{
		Port:                    getEnv(v, "PORT"),
		Env:                     getEnv(v, "ENV"),
		LogLevel:                getEnv(v, "LOG_LEVEL"),
		PostgresConnStr:         getEnv(v, "POSTGRES_CONN_STR"),
		MongoURI:                getEnv(v, "MONGO_URI"),
		MongoDatabase:           getEnv(v, "MONGO_DATABASE"),
		RedisAddr:               getEnv(v, "REDIS_ADDR"),
		ProfileCacheTTL:         v.GetDuration("PROFILE_CACHE_TTL"),
		FirebaseCredentialsPath: getEnv(v, "FIREBASE_CREDENTIALS_PATH"),
		StorageBucket:           getEnv(v, "STORAGE_BUCKET"),
		MediaPrefix:             getEnv(v, "MEDIA_BUCKET_PREFIX"),
		FrontendURL:             getEnv(v, "FRONTEND_URL"),
		SentryDSN:               getEnv(v, "SENTRY_DSN"),
		RateLimitRPS:            v.GetFloat64("RATE_LIMIT_RPS"),
		AutoMigrate:             v.GetBool("AUTO_MIGRATE"),
	}
}

// Validate checks the settings the server cannot start without
func (c *Config) Validate() error {
	var errs []error
	if c.PostgresConnStr == "" {
		errs = append(errs, errors.New("POSTGRES_CONN_STR environment variable not set"))
	}
	if c.MongoURI == "" {
		errs = append(errs, errors.New("MONGO_URI environment variable not set"))
	}
	return errors.Join(errs...)
}

// IsProduction reports whether ENV is production
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// getEnv returns a trimmed value with any UTF-8 byte order mark removed.
// Files saved by some Windows editors start with one.
func getEnv(v *viper.Viper, key string) string {
	return strings.TrimSpace(strings.TrimPrefix(v.GetString(key), "\ufeff"))
}
