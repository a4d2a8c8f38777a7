package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kobun-yomi/refmap/rewrite"
	"github.com/kobun-yomi/refmap/stat"
)

func results() ([]rewrite.FileResult, stat.Stats) {
	files := []rewrite.FileResult{
		{
			Location: "/data/texts/chigo-no-sorane.json",
			Name:     "chigo-no-sorane.json",
			Stats: stat.Stats{NumTokens: 120, NumChanged: 3, Transitions: map[string]int{
				"keigo -> keigo-sonkei":       1,
				"jodoshi-hitei -> jodoshi-zu": 2,
			}},
		},
		{
			Location: "/data/texts/ebutsu-shi-ryoshu.json",
			Name:     "ebutsu-shi-ryoshu.json",
			Skipped:  true,
		},
		{
			Location: "/data/texts/uji.json",
			Name:     "uji.json",
			Stats:    stat.Stats{NumTokens: 7, Transitions: map[string]int{}},
		},
	}
	return files, stat.Stats{NumTokens: 127, NumChanged: 3}
}

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf)

	files, total := results()
	r.Begin()
	for _, f := range files {
		r.File(f)
	}
	require.NoError(t, r.End(total))

	want := `============================================================
Grammar Reference ID Updater
============================================================

--- Processing: chigo-no-sorane.json ---
  Total tokens scanned: 120
  Tokens updated:       3
  Changes breakdown:
    jodoshi-hitei -> jodoshi-zu                        x2
    keigo -> keigo-sonkei                              x1

[SKIP] File not found: /data/texts/ebutsu-shi-ryoshu.json

--- Processing: uji.json ---
  Total tokens scanned: 7
  Tokens updated:       0
  No changes needed.

============================================================
GRAND TOTAL
  Tokens scanned: 127
  Tokens updated: 3
============================================================
`
	assert.Equal(t, want, buf.String())
}

func TestTextRendererColor(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf)
	r.HasColor = true

	r.File(rewrite.FileResult{Location: "/x.json", Skipped: true})
	assert.Contains(t, buf.String(), Yellow+"[SKIP]"+Off)
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)

	files, total := results()
	r.Begin()
	for _, f := range files {
		r.File(f)
	}
	require.NoError(t, r.End(total))

	var got Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	require.Len(t, got.Files, 3)
	assert.Equal(t, "chigo-no-sorane.json", got.Files[0].Name)
	assert.Equal(t, 2, got.Files[0].Stats.Transitions["jodoshi-hitei -> jodoshi-zu"])
	assert.True(t, got.Files[1].Skipped)
	assert.Equal(t, 127, got.Total.NumTokens)
	assert.Contains(t, buf.String(), `"transitions"`)
}

func TestJSONRendererEmptyRun(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	r.Begin()
	require.NoError(t, r.End(stat.NewHandler().Get()))

	assert.JSONEq(t, `{"files": [], "total": {"tokens": 0, "changed": 0, "transitions": {}}}`, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestEndReportsWriteError(t *testing.T) {
	files, total := results()

	for _, format := range SupportedFormats() {
		t.Run(format, func(t *testing.T) {
			r, err := New(format, failingWriter{})
			require.NoError(t, err)

			r.Begin()
			for _, f := range files {
				r.File(f)
			}
			err = r.End(total)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "broken pipe")
		})
	}
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer

	r, err := New("", &buf)
	require.NoError(t, err)
	assert.IsType(t, &TextRenderer{}, r)

	r, err = New("json", &buf)
	require.NoError(t, err)
	assert.IsType(t, &JSONRenderer{}, r)

	_, err = New("yaml", &buf)
	assert.Error(t, err)
}
