package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"alcyxob/fitness-coach/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "fitness_coach", cfg.Database.Name)
	assert.Equal(t, time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, 60, cfg.Schedule.CompletionLookbackDays)
	assert.True(t, cfg.Schedule.CycleWeeks)
	assert.Equal(t, 30*time.Second, cfg.Schedule.CacheTTL)
	assert.Equal(t, 1500*time.Millisecond, cfg.Autosave.Delay)
	assert.Empty(t, cfg.Redis.Addr)

	loc, err := cfg.Schedule.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  address: ":9090"
jwt:
  secret: "file-secret"
  expiration: "15m"
schedule:
  completion_lookback_days: 30
  cycle_weeks: false
  timezone: "Europe/Belgrade"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("AUTOSAVE_DELAY", "250ms")

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, 15*time.Minute, cfg.JWT.Expiration)
	assert.Equal(t, 30, cfg.Schedule.CompletionLookbackDays)
	assert.False(t, cfg.Schedule.CycleWeeks)
	assert.Equal(t, 250*time.Millisecond, cfg.Autosave.Delay)

	loc, err := cfg.Schedule.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Belgrade", loc.String())
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "non-positive lookback", env: map[string]string{"SCHEDULE_COMPLETION_LOOKBACK_DAYS": "0"}},
		{name: "unknown time zone", env: map[string]string{"SCHEDULE_TIMEZONE": "Mars/Olympus_Mons"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := config.LoadConfig(t.TempDir())
			assert.Error(t, err)
		})
	}
}
