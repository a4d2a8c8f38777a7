package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kobun-yomi/refmap/rewrite"
	"github.com/kobun-yomi/refmap/stat"
)

// JSONRenderer collects the results of a run and writes them as one JSON
// object when the run ends.
type JSONRenderer struct {
	W io.Writer

	report Report
}

// Report is the JSON form of a run.
type Report struct {
	Files []rewrite.FileResult `json:"files"`
	Total stat.Stats           `json:"total"`
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w, report: Report{Files: []rewrite.FileResult{}}}
}

func (r *JSONRenderer) Begin() {}

func (r *JSONRenderer) File(res rewrite.FileResult) {
	r.report.Files = append(r.report.Files, res)
}

func (r *JSONRenderer) End(total stat.Stats) error {
	r.report.Total = total

	enc := json.NewEncoder(r.W)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r.report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// compile-time interface check
var _ Renderer = (*JSONRenderer)(nil)
