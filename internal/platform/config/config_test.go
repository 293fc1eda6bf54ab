package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(lookupFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, EnvDevelopment, cfg.Environment)
	assert.False(t, cfg.IsProduction())
	assert.Empty(t, cfg.DBDSN)
	assert.Equal(t, devJWTSecret, cfg.JWTSecret)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, "/login.html", cfg.LoginURL)
	assert.Equal(t, "/cow-registration.html", cfg.RegistrationURL)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.WriteTimeout)
}

func TestFromEnv_ProductionRequiresSecret(t *testing.T) {
	_, err := FromEnv(lookupFrom(map[string]string{"APP_ENV": "production"}))
	require.Error(t, err)

	cfg, err := FromEnv(lookupFrom(map[string]string{
		"APP_ENV":    "Production",
		"JWT_SECRET": "s3cret",
		"PORT":       "9090",
		"DB_DSN":     "postgres://localhost/cows",
	}))
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "postgres://localhost/cows", cfg.DBDSN)
}

func TestFromEnv_RejectsBadValues(t *testing.T) {
	_, err := FromEnv(lookupFrom(map[string]string{"BCRYPT_COST": "abc"}))
	assert.Error(t, err)

	_, err = FromEnv(lookupFrom(map[string]string{"BCRYPT_COST": "2"}))
	assert.Error(t, err)

	_, err = FromEnv(lookupFrom(map[string]string{"READ_TIMEOUT": "soon"}))
	assert.Error(t, err)

	_, err = FromEnv(lookupFrom(map[string]string{"SHUTDOWN_TIMEOUT": "-1s"}))
	assert.Error(t, err)
}
