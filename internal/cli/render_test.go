package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmarvin/efind/internal/eseries"
	"github.com/mmarvin/efind/internal/ui"
)

func withPlainTheme(t *testing.T) {
	t.Helper()
	original := ui.GetCurrentTheme()
	ui.SetTheme("none")
	t.Cleanup(func() { ui.SetCurrentTheme(original) })
}

func TestRenderValues_Table(t *testing.T) {
	withPlainTheme(t)
	var buf bytes.Buffer

	res := &eseries.Result{
		Found:      true,
		Series:     12,
		WorstError: 0.0153,
		Matches: map[float64]float64{
			4.56: 4.7,
			1.23: 1.2,
		},
	}

	require.NoError(t, NewRenderer(&buf, false).RenderValues(res))
	out := buf.String()

	assert.Contains(t, out, "best series: E12")
	assert.Contains(t, out, "largest error: 1.53 %")
	// rows sorted by normalized value
	assert.Less(t, indexOf(out, "1.23"), indexOf(out, "4.56"))
}

func TestRenderValues_NoMatch(t *testing.T) {
	withPlainTheme(t)
	var buf bytes.Buffer

	require.NoError(t, NewRenderer(&buf, false).RenderValues(&eseries.Result{Found: false}))
	assert.Contains(t, buf.String(), "unable to satisfy conditions")
}

func TestRenderValues_JSON(t *testing.T) {
	withPlainTheme(t)
	var buf bytes.Buffer

	res := &eseries.Result{
		Found:      true,
		Series:     3,
		WorstError: 0,
		Matches:    map[float64]float64{4.7: 4.7},
	}
	require.NoError(t, NewRenderer(&buf, true).RenderValues(res))

	var doc struct {
		Found   bool   `json:"found"`
		Series  string `json:"series"`
		Matches []struct {
			Value   float64 `json:"value"`
			Nearest float64 `json:"nearest"`
		} `json:"matches"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.True(t, doc.Found)
	assert.Equal(t, "E3", doc.Series)
	require.Len(t, doc.Matches, 1)
	assert.Equal(t, 4.7, doc.Matches[0].Value)
	assert.Equal(t, 4.7, doc.Matches[0].Nearest)
}

func TestRenderRatio_Table(t *testing.T) {
	withPlainTheme(t)
	var buf bytes.Buffer

	res := &eseries.Result{
		Found:      true,
		Series:     24,
		WorstError: 0,
		Value1:     2.0,
		Value2:     1.0,
	}
	require.NoError(t, NewRenderer(&buf, false).RenderRatio(res))
	out := buf.String()

	assert.Contains(t, out, "best series: E24")
	assert.Contains(t, out, "2 / 1")
}

func TestRenderRatio_JSON_NoMatch(t *testing.T) {
	withPlainTheme(t)
	var buf bytes.Buffer

	require.NoError(t, NewRenderer(&buf, true).RenderRatio(&eseries.Result{Found: false}))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, false, doc["found"])
	assert.NotContains(t, doc, "series")
}

func indexOf(s, sub string) int {
	return bytes.Index([]byte(s), []byte(sub))
}
