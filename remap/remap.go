// Package remap holds the rule table that turns a generic grammar reference
// id into the id of a more specific reference page.
package remap

import (
	"fmt"
	"slices"
	"strings"

	sent "github.com/kobun-yomi/refmap/sentence"
)

// LegacyId is a generic category id that can be remapped.
type LegacyId string

const (
	DoushiKatsuyo            LegacyId = "doushi-katsuyo"
	KeiyoshiKatsuyo          LegacyId = "keiyoshi-katsuyo"
	JodoshiJisei             LegacyId = "jodoshi-jisei"
	JodoshiSuiryo            LegacyId = "jodoshi-suiryo"
	JodoshiHitei             LegacyId = "jodoshi-hitei"
	JodoshiUkemiShiekiSonkei LegacyId = "jodoshi-ukemi-shieki-sonkei"
	Keigo                    LegacyId = "keigo"
)

// legacyIds is the table order.
var legacyIds = []LegacyId{
	DoushiKatsuyo,
	KeiyoshiKatsuyo,
	JodoshiJisei,
	JodoshiSuiryo,
	JodoshiHitei,
	JodoshiUkemiShiekiSonkei,
	Keigo,
}

// Field is a token attribute a condition inspects.
type Field int

const (
	Pos Field = iota
	ConjugationType
	BaseForm
	Meaning
	Text
)

func (f Field) String() string {
	switch f {
	case Pos:
		return "pos"
	case ConjugationType:
		return "conjugationType"
	case BaseForm:
		return "baseForm"
	case Meaning:
		return "meaning"
	case Text:
		return "text"
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

func (f Field) value(t sent.Token) string {
	switch f {
	case Pos:
		return t.GrammarTag.Pos
	case ConjugationType:
		return t.GrammarTag.ConjugationType
	case BaseForm:
		return t.GrammarTag.BaseForm
	case Meaning:
		return t.GrammarTag.Meaning
	case Text:
		return t.Text
	}
	return ""
}

// Op is the comparison of a condition.
type Op int

const (
	Equals Op = iota
	Contains
)

// Condition compares one token field against a literal.
type Condition struct {
	Field Field
	Op    Op
	Value string
}

func (c Condition) Matches(t sent.Token) bool {
	v := c.Field.value(t)
	if c.Op == Contains {
		return strings.Contains(v, c.Value)
	}
	return v == c.Value
}

func (c Condition) String() string {
	op := "=="
	if c.Op == Contains {
		op = "~"
	}
	return fmt.Sprintf("%s %s %q", c.Field, op, c.Value)
}

// Clause holds when any of its conditions holds.
type Clause []Condition

func (c Clause) matches(t sent.Token) bool {
	for _, cond := range c {
		if cond.Matches(t) {
			return true
		}
	}
	return false
}

// Rule maps a legacy id to Target when all of its clauses hold. A rule
// without clauses always holds.
type Rule struct {
	When   []Clause
	Target string
}

func (r Rule) Matches(t sent.Token) bool {
	for _, c := range r.When {
		if !c.matches(t) {
			return false
		}
	}
	return true
}

// Condition renders the rule's clauses, e.g.
// `pos == "助動詞" && (baseForm == "す" || baseForm == "さす")`.
func (r Rule) Condition() string {
	if len(r.When) == 0 {
		return "always"
	}

	parts := make([]string, 0, len(r.When))
	for _, c := range r.When {
		alts := make([]string, 0, len(c))
		for _, cond := range c {
			alts = append(alts, cond.String())
		}
		s := strings.Join(alts, " || ")
		if len(r.When) > 1 && len(alts) > 1 {
			s = "(" + s + ")"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " && ")
}

func eq(f Field, v string) Clause { return Clause{{Field: f, Op: Equals, Value: v}} }

func contains(f Field, v string) Clause { return Clause{{Field: f, Op: Contains, Value: v}} }

// oneOf holds when field f equals any of values.
func oneOf(f Field, values ...string) Clause {
	c := make(Clause, 0, len(values))
	for _, v := range values {
		c = append(c, Condition{Field: f, Op: Equals, Value: v})
	}
	return c
}

var table = map[LegacyId][]Rule{
	DoushiKatsuyo: {
		{When: []Clause{contains(ConjugationType, "四段活用")}, Target: "doushi-yodan"},
		{When: []Clause{contains(ConjugationType, "下二段活用")}, Target: "doushi-shimo-nidan"},
		{When: []Clause{contains(ConjugationType, "上一段活用")}, Target: "doushi-kami-ichidan"},
		{When: []Clause{contains(ConjugationType, "カ行変格活用")}, Target: "doushi-kahen"},
		{When: []Clause{contains(ConjugationType, "サ行変格活用")}, Target: "doushi-sahen"},
		{When: []Clause{contains(ConjugationType, "ラ行変格活用")}, Target: "doushi-rahen"},
	},
	KeiyoshiKatsuyo: {
		{When: []Clause{eq(ConjugationType, "ク活用")}, Target: "keiyoshi-ku"},
		{When: []Clause{eq(ConjugationType, "シク活用")}, Target: "keiyoshi-shiku"},
	},
	JodoshiJisei: {
		{When: []Clause{eq(BaseForm, "けり")}, Target: "jodoshi-keri"},
		{When: []Clause{eq(BaseForm, "たり")}, Target: "jodoshi-tari"},
		{When: []Clause{eq(BaseForm, "ぬ")}, Target: "jodoshi-nu"},
		{When: []Clause{eq(BaseForm, "つ")}, Target: "jodoshi-tsu"},
		{When: []Clause{eq(BaseForm, "なり")}, Target: "jodoshi-nari"},
		{When: []Clause{eq(BaseForm, "り")}, Target: "jodoshi-ri"},
	},
	JodoshiSuiryo: {
		{When: []Clause{{
			{Field: BaseForm, Op: Equals, Value: "む"},
			{Field: Text, Op: Equals, Value: "む"},
		}}, Target: "jodoshi-mu"},
		{When: []Clause{eq(BaseForm, "べし")}, Target: "jodoshi-beshi"},
	},
	JodoshiHitei: {
		{Target: "jodoshi-zu"},
	},
	JodoshiUkemiShiekiSonkei: {
		{When: []Clause{oneOf(BaseForm, "る", "らる")}, Target: "jodoshi-ru"},
		{When: []Clause{eq(Pos, "助動詞"), oneOf(BaseForm, "す", "さす")}, Target: "jodoshi-su"},
	},
	Keigo: {
		{When: []Clause{contains(Meaning, "尊敬語")}, Target: "keigo-sonkei"},
		{When: []Clause{contains(Meaning, "謙譲語")}, Target: "keigo-kenjou"},
		{When: []Clause{contains(Meaning, "丁寧語")}, Target: "keigo-teinei"},
	},
}

// ParseLegacyId returns the legacy id named by s.
func ParseLegacyId(s string) (LegacyId, bool) {
	id := LegacyId(s)
	_, ok := table[id]
	return id, ok
}

// LegacyIds returns the remappable ids in table order.
func LegacyIds() []LegacyId {
	ids := make([]LegacyId, len(legacyIds))
	copy(ids, legacyIds)
	return ids
}

// Rules returns a copy of the ordered rules of a legacy id.
func Rules(id LegacyId) []Rule {
	rules := table[id]
	out := make([]Rule, len(rules))
	for i, r := range rules {
		when := make([]Clause, len(r.When))
		for j, c := range r.When {
			when[j] = slices.Clone(c)
		}
		out[i] = Rule{When: when, Target: r.Target}
	}
	return out
}

// Match returns the first rule of the token's legacy id that holds for the
// token. Tokens without a grammarRefId, or with an id that is not a legacy
// id, never match.
func Match(t sent.Token) (Rule, bool) {
	if t.GrammarRefId == "" {
		return Rule{}, false
	}

	id, ok := ParseLegacyId(t.GrammarRefId)
	if !ok {
		return Rule{}, false
	}

	for _, r := range table[id] {
		if r.Matches(t) {
			return r, true
		}
	}

	return Rule{}, false
}

// Resolve returns the specific id for the token, or false when no rule
// applies.
func Resolve(t sent.Token) (string, bool) {
	r, ok := Match(t)
	if !ok {
		return "", false
	}
	return r.Target, true
}
