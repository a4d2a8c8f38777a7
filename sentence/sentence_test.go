package sentence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `{
  "id": "chigo-no-sorane",
  "title": "児のそら寝",
  "sentences": [
    {
      "id": "s1",
      "tokens": [
        {"id": "t1", "text": "けり", "grammarTag": {"pos": "助動詞", "baseForm": "けり", "meaning": "過去"}, "grammarRefId": "jodoshi-jisei"},
        {"id": "t2", "text": "。", "grammarTag": {"pos": "記号"}}
      ]
    },
    "not a sentence",
    {"id": "s2"}
  ]
}`

func TestParseAndReadTokens(t *testing.T) {
	doc, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "chigo-no-sorane", doc.Id())

	sentences := doc.Sentences()
	require.Len(t, sentences, 2)
	assert.Equal(t, "s1", sentences[0].Id())
	assert.Empty(t, sentences[1].Tokens())

	nodes := sentences[0].Tokens()
	require.Len(t, nodes, 2)

	tk := nodes[0].Token()
	assert.Equal(t, Token{
		Id:           "t1",
		Text:         "けり",
		GrammarRefId: "jodoshi-jisei",
		GrammarTag:   GrammarTag{Pos: "助動詞", BaseForm: "けり", Meaning: "過去"},
	}, tk)

	assert.Equal(t, "", nodes[1].Token().GrammarRefId)
}

func TestParseRejectsNonObject(t *testing.T) {
	_, err := Parse([]byte(`[1, 2]`))
	assert.Error(t, err)

	_, err = Parse([]byte(`{"sentences": [`))
	assert.Error(t, err)
}

func TestMissingFieldsReadAsEmpty(t *testing.T) {
	doc, err := Parse([]byte(`{"sentences": [{"tokens": [{"grammarRefId": 3, "grammarTag": null}]}]}`))
	require.NoError(t, err)

	tk := doc.Sentences()[0].Tokens()[0].Token()
	assert.Equal(t, Token{}, tk)

	empty, err := Parse([]byte(`{"title": "x"}`))
	require.NoError(t, err)
	assert.Empty(t, empty.Sentences())
}

func TestSetGrammarRefIdKeepsFieldOrder(t *testing.T) {
	doc, err := Parse([]byte(`{"sentences":[{"tokens":[{"text":"む","grammarRefId":"jodoshi-suiryo","layer":2}]}]}`))
	require.NoError(t, err)

	doc.Sentences()[0].Tokens()[0].SetGrammarRefId("jodoshi-mu")

	out, err := doc.Marshal()
	require.NoError(t, err)

	want := `{
  "sentences": [
    {
      "tokens": [
        {
          "text": "む",
          "grammarRefId": "jodoshi-mu",
          "layer": 2
        }
      ]
    }
  ]
}
`
	assert.Equal(t, want, string(out))
}
