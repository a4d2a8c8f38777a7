// Package explain is an interactive explorer of the remap rule table: type
// a legacy id and some tag fields, see which id the token would get.
package explain

import (
	"errors"
	"fmt"
	"io"
	"strings"

	prompt "github.com/c-bata/go-prompt"

	"github.com/kobun-yomi/refmap/remap"
	sent "github.com/kobun-yomi/refmap/sentence"
)

// keys accepted in the input, with their short forms.
var keys = map[string]string{
	"pos":             "pos",
	"conj":            "conjugationType",
	"conjugationType": "conjugationType",
	"base":            "baseForm",
	"baseForm":        "baseForm",
	"meaning":         "meaning",
	"text":            "text",
}

var keySuggestions = []prompt.Suggest{
	{Text: "pos=", Description: "part of speech"},
	{Text: "conj=", Description: "conjugation type"},
	{Text: "base=", Description: "base form"},
	{Text: "meaning=", Description: "meaning"},
	{Text: "text=", Description: "surface text"},
}

type Handler struct {
	Out io.Writer
}

func NewHandler(out io.Writer) *Handler {
	return &Handler{Out: out}
}

func (h *Handler) Run() error {

	fmt.Fprintln(h.Out, "🔑 <legacy-id> [pos=..] [conj=..] [base=..] [meaning=..] [text=..], 🔧 quit")

	// initialize prompt history
	history := []string{}

	for {

		in := prompt.Input("      🔖 ", h.completer(),
			prompt.OptionTitle("refmap explain"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionHistory(history),
		)

		in = strings.TrimSpace(in)
		if in == "quit" {
			return nil
		}

		if in == "" {
			continue
		}

		history = append(history, in)
		fmt.Fprintln(h.Out, h.Eval(in))
	}
}

// Eval resolves one input line and returns the line to print.
func (h *Handler) Eval(in string) string {
	tk, err := Parse(in)
	if err != nil {
		return fmt.Sprintf("❌ %s", err)
	}

	r, ok := remap.Match(tk)
	if !ok {
		return fmt.Sprintf("∅ %s: no mapping", tk.GrammarRefId)
	}

	return fmt.Sprintf("✅ %s -> %s   (%s)", tk.GrammarRefId, r.Target, r.Condition())
}

// Parse reads `<grammarRefId> key=value ...` into a token.
func Parse(in string) (sent.Token, error) {
	var tk sent.Token

	fields := strings.Fields(in)
	if len(fields) == 0 {
		return tk, errors.New("no grammarRefId given")
	}

	tk.GrammarRefId = fields[0]

	for _, f := range fields[1:] {
		k, v, found := strings.Cut(f, "=")
		if !found {
			return tk, fmt.Errorf("expected key=value, got %q", f)
		}

		name, ok := keys[k]
		if !ok {
			return tk, fmt.Errorf("unknown key %q", k)
		}

		switch name {
		case "pos":
			tk.GrammarTag.Pos = v
		case "conjugationType":
			tk.GrammarTag.ConjugationType = v
		case "baseForm":
			tk.GrammarTag.BaseForm = v
		case "meaning":
			tk.GrammarTag.Meaning = v
		case "text":
			tk.Text = v
		}
	}

	return tk, nil
}

func (h *Handler) completer() func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {
		return Suggest(in.TextBeforeCursor())
	}
}

// Suggest returns the completions for the text before the cursor: legacy
// ids for the first word, tag keys after it.
func Suggest(befCursor string) []prompt.Suggest {
	s := []prompt.Suggest{}

	if befCursor == "" {
		return s
	}

	tokens := strings.Split(befCursor, " ")
	word := tokens[len(tokens)-1]

	if len(tokens) == 1 {
		for _, id := range remap.LegacyIds() {
			if strings.HasPrefix(string(id), word) {
				s = append(s, prompt.Suggest{Text: string(id), Description: fmt.Sprintf("%d rules", len(remap.Rules(id)))})
			}
		}
		return s
	}

	if word == "" || strings.Contains(word, "=") {
		return s
	}

	return prompt.FilterHasPrefix(keySuggestions, word, false)
}
