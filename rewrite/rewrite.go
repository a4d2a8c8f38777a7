// Package rewrite applies the remap rule table to text documents and drives
// a run over a list of document locations.
package rewrite

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/kobun-yomi/refmap/remap"
	sent "github.com/kobun-yomi/refmap/sentence"
	"github.com/kobun-yomi/refmap/stat"
	"github.com/kobun-yomi/refmap/storage"
)

type Handler struct {
	Repo   storage.DocRepository
	Logger *zap.Logger

	// DryRun computes the statistics without writing documents back.
	DryRun bool
}

// FileResult is the outcome of one location of a run.
type FileResult struct {
	Location string     `json:"location"`
	Name     string     `json:"name"`
	Skipped  bool       `json:"skipped"`
	Stats    stat.Stats `json:"stats"`
}

func NewHandler(repo storage.DocRepository, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Repo:   repo,
		Logger: logger,
	}
}

// Doc remaps the grammarRefId of every token of doc in place.
func (h *Handler) Doc(doc *sent.Doc) stat.Stats {
	hdl := stat.NewHandler()

	for _, s := range doc.Sentences() {
		for _, node := range s.Tokens() {
			hdl.Token()

			tk := node.Token()
			if tk.GrammarRefId == "" {
				continue
			}

			newId, ok := remap.Resolve(tk)
			if !ok || newId == tk.GrammarRefId {
				continue
			}

			node.SetGrammarRefId(newId)
			hdl.Changed(tk.GrammarRefId, newId)

			h.Logger.Debug("remapped token",
				zap.String("doc", doc.Id()),
				zap.String("sentence", s.Id()),
				zap.String("token", tk.Id),
				zap.String("text", tk.Text),
				zap.String("pos", tk.GrammarTag.Pos),
				zap.String("conjugation_type", tk.GrammarTag.ConjugationType),
				zap.String("conjugation_form", tk.GrammarTag.ConjugationForm),
				zap.String("base_form", tk.GrammarTag.BaseForm),
				zap.String("from", tk.GrammarRefId),
				zap.String("to", newId))
		}
	}

	return hdl.Get()
}

// File remaps the document at location and writes it back to the same
// location, replacing it.
func (h *Handler) File(ctx context.Context, location string) (stat.Stats, error) {
	doc, err := h.Repo.Read(ctx, location)
	if err != nil {
		return stat.Stats{}, err
	}

	stats := h.Doc(doc)
	h.Logger.Debug("remapped document",
		zap.String("location", location),
		zap.String("doc", doc.Id()),
		zap.Int("changed", stats.NumChanged))

	if h.DryRun {
		return stats, nil
	}

	if err := h.Repo.Write(ctx, location, doc); err != nil {
		return stat.Stats{}, fmt.Errorf("%s: %w", location, err)
	}

	return stats, nil
}

// Run processes the locations in order. Locations that do not exist are
// reported as skipped and the run goes on. Any other error ends the run;
// documents already written stay written.
//
// onFile, if not nil, is called after each location. The returned Stats
// are the totals over all processed locations.
func (h *Handler) Run(ctx context.Context, locations []string, onFile func(FileResult)) (stat.Stats, error) {
	total := stat.NewHandler()

	for _, loc := range locations {
		if err := ctx.Err(); err != nil {
			return total.Get(), err
		}

		loc = absolute(loc)
		res := FileResult{Location: loc, Name: baseName(loc)}

		ok, err := h.Repo.Exists(ctx, loc)
		if err != nil {
			return total.Get(), err
		}

		if !ok {
			h.Logger.Info("file not found, skipping", zap.String("location", loc))
			res.Skipped = true
			res.Stats = stat.NewHandler().Get()
			if onFile != nil {
				onFile(res)
			}
			continue
		}

		stats, err := h.File(ctx, loc)
		if err != nil {
			return total.Get(), err
		}

		h.Logger.Debug("processed file",
			zap.String("location", loc),
			zap.Int("tokens", stats.NumTokens),
			zap.Int("changed", stats.NumChanged),
			zap.Bool("dry_run", h.DryRun))

		total.Aggregate(stats)
		res.Stats = stats
		if onFile != nil {
			onFile(res)
		}
	}

	return total.Get(), nil
}

// absolute makes plain paths absolute. URLs are returned as they are.
func absolute(location string) string {
	if strings.Contains(location, "://") {
		return location
	}
	abs, err := filepath.Abs(location)
	if err != nil {
		return location
	}
	return abs
}

func baseName(location string) string {
	if strings.Contains(location, "://") {
		return path.Base(location)
	}
	return filepath.Base(location)
}
