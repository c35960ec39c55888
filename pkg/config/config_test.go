package config_test

import (
	"testing"

	"github.com/limbo/wellness/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestGetters(t *testing.T) {
	cfg := config.New()
	t.Setenv("WATER_GOAL_LITERS", "2.5")
	t.Setenv("CONFLICT_RETRY_ATTEMPTS", "5")
	t.Setenv("TIMEZONE", "Asia/Kolkata")
	t.Setenv("EMPTY_KEY", "")

	assert.Equal(t, 2.5, cfg.GetFloatOr("WATER_GOAL_LITERS", 2))
	assert.Equal(t, 2.0, cfg.GetFloatOr("UNSET_FLOAT_KEY", 2))
	assert.Equal(t, 5, cfg.GetIntOr("CONFLICT_RETRY_ATTEMPTS", 3))
	assert.Equal(t, 3, cfg.GetIntOr("UNSET_INT_KEY", 3))
	assert.Equal(t, "fallback", cfg.GetStringOr("EMPTY_KEY", "fallback"))
	assert.Equal(t, "Asia/Kolkata", cfg.GetLocation("TIMEZONE").String())
	assert.Equal(t, "UTC", cfg.GetLocation("UNSET_ZONE_KEY").String())
}

func TestSingleton(t *testing.T) {
	assert.Same(t, config.New(), config.New())
}
