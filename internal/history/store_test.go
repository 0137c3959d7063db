// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-scout/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(types.HistoryConfig{StateDir: t.TempDir(), MaxEntries: 5})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleRecords() []types.PaperRecord {
	return []types.PaperRecord{
		{
			ID:            "a1b2c3d4e5f6",
			Title:         "Attention Is All You Need",
			Authors:       []string{"Ashish Vaswani", "Noam Shazeer"},
			Year:          2017,
			Abstract:      "We propose the Transformer.",
			CitationCount: 100000,
			TLDR:          "We propose the Transformer.",
		},
		{
			ID:            "f6e5d4c3b2a1",
			Title:         "BERT",
			Authors:       []string{"Jacob Devlin"},
			Year:          2019,
			Abstract:      "Bidirectional pretraining.",
			CitationCount: 80000,
			TLDR:          "Bidirectional pretraining.",
		},
	}
}

func TestRecordAndPapers(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	records := sampleRecords()

	searchID, err := store.Record(ctx, "transformer architectures", records)
	require.NoError(t, err)
	require.Greater(t, searchID, int64(0))

	got, err := store.Papers(ctx, searchID)
	require.NoError(t, err)
	require.Equal(t, records, got)
}

func TestListNewestFirst(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	_, err := store.Record(ctx, "first query", nil)
	require.NoError(t, err)
	_, err = store.Record(ctx, "second query", sampleRecords())
	require.NoError(t, err)

	entries, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "second query", entries[0].Query)
	assert.Equal(t, 2, entries[0].ResultCount)
	assert.Equal(t, "first query", entries[1].Query)
	assert.Equal(t, 0, entries[1].ResultCount)
	assert.WithinDuration(t, time.Now().UTC(), entries[0].CreatedAt, time.Minute)
}

func TestListLimit(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	for _, q := range []string{"one", "two", "three"} {
		_, err := store.Record(ctx, q, nil)
		require.NoError(t, err)
	}

	entries, err := store.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "three", entries[0].Query)
}

func TestPapersUnknownSearch(t *testing.T) {
	store := testStore(t)

	records, err := store.Papers(context.Background(), 999)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestExportYAML(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	_, err := store.Record(ctx, "export me", sampleRecords()[:1])
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, store.ExportYAML(ctx, &buf))

	out := buf.String()
	assert.Contains(t, out, "query: export me")
	assert.Contains(t, out, "Attention Is All You Need")
	assert.Contains(t, out, "Ashish Vaswani")
}

func TestReopenExistingDatabase(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(types.HistoryConfig{StateDir: dir})
	require.NoError(t, err)
	_, err = store.Record(ctx, "persisted", nil)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := NewStore(types.HistoryConfig{StateDir: dir})
	require.NoError(t, err)
	defer reopened.Close()

	entries, err := reopened.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "persisted", entries[0].Query)
}
