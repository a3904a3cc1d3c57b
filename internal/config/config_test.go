package config

import (
	"errors"
	"testing"

	"github.com/npillmayer/pointwise/satellite"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetViper clears all viper state between tests to avoid cross-contamination.
func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	viper.SetEnvPrefix("PWINSPECT")
	viper.AutomaticEnv()
}

func TestLoadDefaults(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	resetViper(t)
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "F", cfg.Type)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, 64, cfg.OffsetSamples)
	assert.True(t, cfg.Mirror)
	assert.False(t, cfg.Extremes.Active)
	proto := cfg.Prototype()
	assert.Equal(t, satellite.Fillet, proto.Type)
	assert.True(t, proto.Active)
	assert.True(t, proto.HasMirror)
}

func TestLoadEnvOverrides(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	resetViper(t)
	t.Setenv("PWINSPECT_TYPE", "bspline")
	t.Setenv("PWINSPECT_AMOUNT", "0.25")
	t.Setenv("PWINSPECT_IS_TIME", "true")
	t.Setenv("PWINSPECT_FORMAT", "toml")
	cfg, err := Load()
	require.NoError(t, err)
	proto := cfg.Prototype()
	assert.Equal(t, satellite.BSpline, proto.Type)
	assert.Equal(t, 0.25, proto.Amount)
	assert.True(t, proto.IsTime)
	assert.Equal(t, FormatTOML, cfg.Format)
}

func TestLoadExtremes(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	resetViper(t)
	viper.Set("extremes.active", true)
	viper.Set("extremes.amount", 2.5)
	cfg, err := Load()
	require.NoError(t, err)
	x := cfg.ExtremesStyle()
	assert.True(t, x.Active)
	assert.False(t, x.Hidden)
	assert.Equal(t, 2.5, x.Amount)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tests := []struct {
		key   string
		value any
	}{
		{"type", "spiral"},
		{"format", "yaml"},
		{"offset_samples", 0},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			resetViper(t)
			viper.Set(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
	resetViper(t)
	viper.Set("type", "spiral")
	_, err := Load()
	assert.True(t, errors.Is(err, satellite.ErrUnknownSatelliteType))
}
