// Package cli renders search results for the terminal and drives the
// interactive progress display.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/mmarvin/efind/internal/eseries"
	"github.com/mmarvin/efind/internal/ui"
)

// Renderer writes search results to a terminal or machine-readable stream.
type Renderer struct {
	out  io.Writer
	json bool
}

// NewRenderer creates a Renderer. When jsonOutput is set, results are
// encoded as a single JSON document instead of a themed table.
func NewRenderer(out io.Writer, jsonOutput bool) *Renderer {
	return &Renderer{out: out, json: jsonOutput}
}

// jsonResult is the wire shape of a rendered result.
type jsonResult struct {
	Found      bool        `json:"found"`
	Series     string      `json:"series,omitempty"`
	WorstError float64     `json:"worstError,omitempty"`
	Matches    []jsonMatch `json:"matches,omitempty"`
	Value1     float64     `json:"value1,omitempty"`
	Value2     float64     `json:"value2,omitempty"`
}

type jsonMatch struct {
	Value   float64 `json:"value"`
	Nearest float64 `json:"nearest"`
	Error   float64 `json:"error"`
}

// RenderValues writes the result of a nearest-value search.
func (r *Renderer) RenderValues(res *eseries.Result) error {
	if r.json {
		return r.renderJSON(res, false)
	}

	t := ui.GetCurrentTheme()
	if !res.Found {
		fmt.Fprintf(r.out, "%sunable to satisfy conditions%s\n", t.Error, t.Reset)
		return nil
	}

	fmt.Fprintf(r.out, "%sbest series:%s %sE%d%s\n", t.Bold, t.Reset, t.Success, res.Series, t.Reset)
	fmt.Fprintf(r.out, "%slargest error:%s %.2f %%\n", t.Bold, t.Reset, res.WorstError*100)

	keys := make([]float64, 0, len(res.Matches))
	for k := range res.Matches {
		keys = append(keys, k)
	}
	sort.Float64s(keys)

	for _, k := range keys {
		near := res.Matches[k]
		errPct := relErrorPercent(near, k)
		fmt.Fprintf(r.out, "  %s%8.4g%s -> %s%-8.4g%s (%.2f %%)\n",
			t.Primary, k, t.Reset, t.Success, near, t.Reset, errPct)
	}
	return nil
}

// RenderRatio writes the result of a ratio-pair search.
func (r *Renderer) RenderRatio(res *eseries.Result) error {
	if r.json {
		return r.renderJSON(res, true)
	}

	t := ui.GetCurrentTheme()
	if !res.Found {
		fmt.Fprintf(r.out, "%sunable to satisfy conditions%s\n", t.Error, t.Reset)
		return nil
	}

	fmt.Fprintf(r.out, "%sbest series:%s %sE%d%s\n", t.Bold, t.Reset, t.Success, res.Series, t.Reset)
	fmt.Fprintf(r.out, "%sratio:%s %s%g / %g%s = %.6g (%.2f %% off)\n",
		t.Bold, t.Reset, t.Primary, res.Value1, res.Value2, t.Reset,
		res.Value1/res.Value2, res.WorstError*100)
	return nil
}

func (r *Renderer) renderJSON(res *eseries.Result, ratio bool) error {
	doc := jsonResult{Found: res.Found}
	if res.Found {
		doc.Series = fmt.Sprintf("E%d", res.Series)
		doc.WorstError = res.WorstError
		if ratio {
			doc.Value1 = res.Value1
			doc.Value2 = res.Value2
		} else {
			keys := make([]float64, 0, len(res.Matches))
			for k := range res.Matches {
				keys = append(keys, k)
			}
			sort.Float64s(keys)
			for _, k := range keys {
				near := res.Matches[k]
				doc.Matches = append(doc.Matches, jsonMatch{
					Value:   k,
					Nearest: near,
					Error:   relErrorPercent(near, k) / 100,
				})
			}
		}
	}

	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func relErrorPercent(approx, exact float64) float64 {
	if exact == 0 {
		return 0
	}
	pct := (approx/exact - 1) * 100
	if pct < 0 {
		return -pct
	}
	return pct
}
