package stat

import (
	"maps"
	"slices"
)

type Handler struct {
	stats Stats
}

// Stats counts the tokens of a rewrite and the id transitions applied.
type Stats struct {
	NumTokens  int `json:"tokens"`
	NumChanged int `json:"changed"`

	// Number of changed tokens per "old -> new" key
	Transitions map[string]int `json:"transitions"`
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{Transitions: map[string]int{}}
	return &Handler{
		stats: stats,
	}
}

// Token counts a scanned token.
func (h *Handler) Token() {
	h.stats.NumTokens++
}

// Changed counts a token whose id went from one id to another.
func (h *Handler) Changed(from, to string) {
	h.stats.NumChanged++
	h.stats.Transitions[TransitionKey(from, to)]++
}

// Aggregate adds the counts of s.
func (h *Handler) Aggregate(s Stats) {
	h.stats.NumTokens += s.NumTokens
	h.stats.NumChanged += s.NumChanged
	for k, n := range s.Transitions {
		h.stats.Transitions[k] += n
	}
}

func TransitionKey(from, to string) string {
	return from + " -> " + to
}

// Keys returns the transition keys sorted.
func (s Stats) Keys() []string {
	return slices.Sorted(maps.Keys(s.Transitions))
}
