package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	devJWTSecret = "dev-only-insecure-secret"
)

// Config agrupa la configuración del proceso. Se construye una vez en main
// y se pasa explícitamente a quien la necesite.
type Config struct {
	Port        string
	Environment string

	// DBDSN vacío => stores in-memory (modo dev).
	DBDSN string

	JWTSecret  string
	BcryptCost int

	LogLevel  string
	LogFormat string
	AppName   string

	LoginURL        string
	RegistrationURL string
	StaticDir       string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

func (c Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

func (c Config) Addr() string {
	return ":" + c.Port
}

// Load lee .env (si existe) y luego variables de entorno.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.LookupEnv)
}

// FromEnv arma la config desde un lookup arbitrario (os.LookupEnv en prod, map en tests).
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return fallback
	}

	cfg := Config{
		Port:            get("PORT", "8080"),
		Environment:     strings.ToLower(get("APP_ENV", EnvDevelopment)),
		DBDSN:           get("DB_DSN", ""),
		JWTSecret:       get("JWT_SECRET", ""),
		LogLevel:        get("LOG_LEVEL", "info"),
		LogFormat:       get("LOG_FORMAT", "text"),
		AppName:         get("APP_NAME", "cow-inspection"),
		LoginURL:        get("LOGIN_URL", "/login.html"),
		RegistrationURL: get("REGISTRATION_URL", "/cow-registration.html"),
		StaticDir:       get("STATIC_DIR", ""),
	}

	cost, err := strconv.Atoi(get("BCRYPT_COST", "12"))
	if err != nil || cost < 4 || cost > 31 {
		return Config{}, fmt.Errorf("BCRYPT_COST must be an integer between 4 and 31")
	}
	cfg.BcryptCost = cost

	durations := []struct {
		key      string
		fallback string
		dst      *time.Duration
	}{
		{"READ_TIMEOUT", "5s", &cfg.ReadTimeout},
		{"WRITE_TIMEOUT", "10s", &cfg.WriteTimeout},
		{"SHUTDOWN_TIMEOUT", "10s", &cfg.ShutdownTimeout},
	}
	for _, d := range durations {
		v, err := time.ParseDuration(get(d.key, d.fallback))
		if err != nil || v <= 0 {
			return Config{}, fmt.Errorf("%s must be a positive duration", d.key)
		}
		*d.dst = v
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			return Config{}, errors.New("JWT_SECRET environment variable is required in production")
		}
		cfg.JWTSecret = devJWTSecret
	}

	return cfg, nil
}
