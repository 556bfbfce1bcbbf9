package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmarvin/efind/internal/config"
)

func run(t *testing.T, cfg *config.Config) (code int, out, errOut string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code = Run(context.Background(), cfg, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_NearestValues(t *testing.T) {
	code, out, _ := run(t, &config.Config{
		MaxError: 0.01,
		Values:   []float64{4.7, 2200},
	})

	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "best series: E3")
	assert.Contains(t, out, "largest error: 0.00 %")
}

func TestRun_RatioMode(t *testing.T) {
	code, out, _ := run(t, &config.Config{
		MaxError:  0.01,
		RatioMode: true,
		Values:    []float64{2.0},
	})

	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "best series: E24")
}

func TestRun_JSONOutput(t *testing.T) {
	code, out, _ := run(t, &config.Config{
		MaxError:   0.01,
		JSONOutput: true,
		Values:     []float64{4.7},
	})

	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, `"found": true`)
	assert.Contains(t, out, `"series": "E3"`)
}

func TestRun_NoValues(t *testing.T) {
	code, out, errOut := run(t, &config.Config{MaxError: 0.01})

	assert.Equal(t, ExitUsage, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "at least one value")
}

func TestRun_RatioWantsOneValue(t *testing.T) {
	code, _, errOut := run(t, &config.Config{
		MaxError:  0.01,
		RatioMode: true,
		Values:    []float64{2.0, 3.0},
	})

	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, errOut, "exactly one value")
}

func TestRun_InvalidInput(t *testing.T) {
	code, _, errOut := run(t, &config.Config{
		MaxError: 0.01,
		Values:   []float64{-4.7},
	})

	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, errOut, "error:")
}

func TestRun_InvalidMaxError(t *testing.T) {
	code, _, _ := run(t, &config.Config{
		MaxError: 0,
		Values:   []float64{4.7},
	})
	assert.Equal(t, ExitUsage, code)
}

func TestRun_ExhaustionIsNotAnError(t *testing.T) {
	code, out, _ := run(t, &config.Config{
		MaxError: 1e-9,
		Values:   []float64{1.00051},
	})

	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "unable to satisfy conditions")
}
