package seed

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jsboigeEpita/2025-Epita-Intelligence-Symbolique-sub023/internal/domain"
	"github.com/jsboigeEpita/2025-Epita-Intelligence-Symbolique-sub023/internal/jtms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const birds = `
beliefs: [bird, penguin]
justifications:
  - in: [bird]
    out: [penguin]
    conclusion: flies
forced:
  - belief: bird
    validity: "true"
`

func TestParseAndApply(t *testing.T) {
	doc, err := Parse(strings.NewReader(birds))
	require.NoError(t, err)
	assert.False(t, doc.Strict)
	assert.Equal(t, []string{"bird", "penguin"}, doc.Beliefs)
	require.Len(t, doc.Justifications, 1)
	assert.Equal(t, "flies", doc.Justifications[0].Conclusion)

	n := jtms.New(nil)
	require.NoError(t, doc.Apply(n))
	assert.Equal(t, []string{"bird", "penguin", "flies"}, n.Beliefs())

	v, err := n.Validity("flies")
	require.NoError(t, err)
	assert.Equal(t, domain.ValidityTrue, v)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"missing conclusion", "justifications:\n  - in: [a]\n", ErrEmptyConclusion},
		{"bad validity", "forced:\n  - belief: a\n    validity: maybe\n", domain.ErrInvalidValidity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("unknown field", func(t *testing.T) {
		_, err := Parse(strings.NewReader("rules: []\n"))
		assert.Error(t, err)
	})
}

func TestParseEmptyDocument(t *testing.T) {
	doc, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, doc.Beliefs)
	assert.Empty(t, doc.Justifications)
}

func TestApplyStrict(t *testing.T) {
	doc, err := Parse(strings.NewReader("strict: true\njustifications:\n  - in: [a]\n    conclusion: b\n"))
	require.NoError(t, err)

	n := jtms.New(nil)
	err = doc.Apply(n)
	assert.ErrorIs(t, err, domain.ErrUnknownBelief)
	assert.Empty(t, n.Beliefs())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(birds), 0o600))

	doc, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, doc.Forced, 1)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWatchReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("beliefs: [a]\n"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	docs := make(chan *Document, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, zap.NewNop(), func(d *Document) {
			select {
			case docs <- d:
			default:
			}
		})
	}()

	// Give the watcher time to register before the write.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("beliefs: [a, b]\n"), 0o600))

	select {
	case doc := <-docs:
		assert.Equal(t, []string{"a", "b"}, doc.Beliefs)
	case <-time.After(5 * time.Second):
		t.Fatal("seed change not observed")
	}

	cancel()
	assert.NoError(t, <-done)
}
