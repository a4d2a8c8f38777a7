package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kobun-yomi/refmap/storage"
)

func TestDocStoreReadWrite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ebutsu-shi-ryoshu.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"id":"ebutsu","sentences":[{"tokens":[{"text":"ず","grammarRefId":"jodoshi-hitei"}]}]}`), 0o644))

	s := NewDocStore()

	ok, err := s.Exists(ctx, path)
	require.NoError(t, err)
	assert.True(t, ok)

	doc, err := s.Read(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "ebutsu", doc.Id())

	doc.Sentences()[0].Tokens()[0].SetGrammarRefId("jodoshi-zu")
	require.NoError(t, s.Write(ctx, path, doc))

	got, err := os.ReadFile(path)
	require.NoError(t, err)

	want := `{
  "id": "ebutsu",
  "sentences": [
    {
      "tokens": [
        {
          "text": "ず",
          "grammarRefId": "jodoshi-zu"
        }
      ]
    }
  ]
}
`
	assert.Equal(t, want, string(got))
}

func TestDocStoreReadMissing(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "missing.json")

	s := NewDocStore()

	ok, err := s.Exists(ctx, path)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.Read(ctx, path)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDocStoreReadMalformed(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"sentences": [`), 0o644))

	_, err := NewDocStore().Read(ctx, path)
	require.Error(t, err)
	assert.NotErrorIs(t, err, storage.ErrNotFound)
}
