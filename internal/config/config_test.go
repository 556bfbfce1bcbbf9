package config

import (
	"bytes"
	"errors"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	cfg, err := Parse("efind", []string{"4.7", "2200", "0.01"}, &buf)
	require.NoError(t, err)

	assert.InDelta(t, 0.01, cfg.MaxError, 1e-12) // 1% default
	assert.False(t, cfg.RatioMode)
	assert.False(t, cfg.JSONOutput)
	assert.Equal(t, []float64{4.7, 2200, 0.01}, cfg.Values)
}

func TestParse_Flags(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	cfg, err := Parse("efind", []string{"-err", "5", "-ratio", "-json", "-no-color", "-v", "2.0"}, &buf)
	require.NoError(t, err)

	assert.InDelta(t, 0.05, cfg.MaxError, 1e-12) // percent divided by 100
	assert.True(t, cfg.RatioMode)
	assert.True(t, cfg.JSONOutput)
	assert.True(t, cfg.NoColor)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, []float64{2.0}, cfg.Values)
}

func TestParse_ErrFlagWithoutValue(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	_, err := Parse("efind", []string{"4.7", "-err"}, &buf)
	require.Error(t, err)
}

func TestParse_InvalidValue(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	_, err := Parse("efind", []string{"4.7k"}, &buf)
	require.Error(t, err) // no unit-suffix parsing
}

func TestParse_Help(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	_, err := Parse("efind", []string{"-h"}, &buf)
	assert.True(t, errors.Is(err, flag.ErrHelp))
	assert.Contains(t, buf.String(), "Usage")
}

func TestParse_NoValues(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	cfg, err := Parse("efind", nil, &buf)
	require.NoError(t, err)
	assert.Empty(t, cfg.Values) // the app layer decides this is fatal
}
