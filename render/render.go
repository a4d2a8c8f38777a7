package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/kobun-yomi/refmap/rewrite"
	"github.com/kobun-yomi/refmap/stat"
)

const (
	DefaultFormat = "text"

	title = "Grammar Reference ID Updater"
)

var (
	Yellow = "\033[0;33m"
	Green  = "\033[1;32m"
	Off    = "\033[0m"
)

func SupportedFormats() []string {
	return []string{"text", "json"}
}

// Renderer reports a run as it goes: Begin once, File per location, End
// with the totals. End returns the first error writing the report.
type Renderer interface {
	Begin()
	File(res rewrite.FileResult)
	End(total stat.Stats) error
}

// New returns the renderer for format, writing to w.
func New(format string, w io.Writer) (Renderer, error) {
	switch format {
	case "", "text":
		return NewTextRenderer(w), nil
	case "json":
		return NewJSONRenderer(w), nil
	}
	return nil, fmt.Errorf("unknown format %q, allowed values are %s", format, strings.Join(SupportedFormats(), ", "))
}

// TextRenderer writes the human readable report.
type TextRenderer struct {
	W io.Writer

	HasColor bool

	// first write error
	err error
}

func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{W: w}
}

func (r *TextRenderer) rule() string {
	return strings.Repeat("=", 60)
}

func (r *TextRenderer) color(c, s string) string {
	if !r.HasColor {
		return s
	}
	return c + s + Off
}

func (r *TextRenderer) printf(format string, a ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.W, format, a...)
}

func (r *TextRenderer) Begin() {
	r.printf("%s\n%s\n%s\n", r.rule(), title, r.rule())
}

func (r *TextRenderer) File(res rewrite.FileResult) {
	if res.Skipped {
		r.printf("\n%s File not found: %s\n", r.color(Yellow, "[SKIP]"), res.Location)
		return
	}

	r.printf("\n--- Processing: %s ---\n", res.Name)
	r.printf("  Total tokens scanned: %d\n", res.Stats.NumTokens)
	r.printf("  Tokens updated:       %d\n", res.Stats.NumChanged)

	keys := res.Stats.Keys()
	if len(keys) == 0 {
		r.printf("  No changes needed.\n")
		return
	}

	r.printf("  Changes breakdown:\n")
	for _, k := range keys {
		r.printf("    %s x%d\n", r.color(Green, fmt.Sprintf("%-50s", k)), res.Stats.Transitions[k])
	}
}

func (r *TextRenderer) End(total stat.Stats) error {
	r.printf("\n%s\n", r.rule())
	r.printf("GRAND TOTAL\n")
	r.printf("  Tokens scanned: %d\n", total.NumTokens)
	r.printf("  Tokens updated: %d\n", total.NumChanged)
	r.printf("%s\n", r.rule())

	if r.err != nil {
		return fmt.Errorf("failed to write report: %w", r.err)
	}
	return nil
}

// compile-time interface check
var _ Renderer = (*TextRenderer)(nil)
