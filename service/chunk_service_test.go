package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harshilmalhotra/bfhl-internal-hack/types"
)

func TestChunkService_ShortDocumentSingleChunk(t *testing.T) {
	s := NewChunkService(types.DocumentServiceConfig{MaxChunkSize: 30000, OverlapSize: 500})
	doc := &types.NormalizedDocument{Text: strings.Repeat("a", 500)}

	chunks := s.Plan(doc)

	require.Len(t, chunks, 1)
	assert.Equal(t, 0, chunks[0].Index)
	assert.Equal(t, doc.Text, chunks[0].Content)
	assert.Equal(t, 1, chunks[0].StartPage)
	assert.Equal(t, 1, chunks[0].EndPage)
}

func TestChunkService_ShortDocumentKeepsPageRange(t *testing.T) {
	s := NewChunkService(types.DocumentServiceConfig{MaxChunkSize: 30000, OverlapSize: 500})
	doc := &types.NormalizedDocument{
		Text: strings.Repeat("a", 500),
		Pages: []types.PageBoundary{
			{Page: 1, Offset: 0},
			{Page: 2, Offset: 300},
		},
	}

	chunks := s.Plan(doc)

	require.Len(t, chunks, 1)
	assert.Equal(t, 1, chunks[0].StartPage)
	assert.Equal(t, 2, chunks[0].EndPage)
}

func TestChunkService_LongTextThreeChunksWithOverlap(t *testing.T) {
	s := NewChunkService(types.DocumentServiceConfig{MaxChunkSize: 30000, OverlapSize: 500})
	doc := &types.NormalizedDocument{Text: strings.Repeat("a", 80000)}

	chunks := s.Plan(doc)

	require.Len(t, chunks, 3)
	first := chunks[0].Content
	second := chunks[1].Content
	assert.True(t, strings.HasPrefix(second, first[len(first)-500:]),
		"chunk 2 must begin with the last 500 characters of chunk 1")
	assert.True(t, strings.HasPrefix(chunks[2].Content, second[len(second)-500:]))
	for i, c := range chunks {
		assert.Equal(t, i, c.Index)
		assert.LessOrEqual(t, len(c.Content), 30000)
	}
}

func TestChunkService_Deterministic(t *testing.T) {
	s := NewChunkService(types.DocumentServiceConfig{MaxChunkSize: 30000, OverlapSize: 500})
	doc := &types.NormalizedDocument{Text: strings.Repeat("some sentence. ", 8000)}

	first := s.Plan(doc)
	second := s.Plan(doc)

	assert.Equal(t, first, second)
}

func TestChunkService_PrefersSentenceBoundary(t *testing.T) {
	s := NewChunkService(types.DocumentServiceConfig{MaxChunkSize: 100, OverlapSize: 10})
	text := strings.Repeat("x", 89) + ". " + strings.Repeat("y", 200)
	doc := &types.NormalizedDocument{Text: text}

	chunks := s.Plan(doc)

	require.Greater(t, len(chunks), 1)
	assert.True(t, strings.HasSuffix(chunks[0].Content, "."),
		"first chunk should cut right after the sentence terminator")
}

func TestChunkService_HardCutWithoutSentenceBoundary(t *testing.T) {
	s := NewChunkService(types.DocumentServiceConfig{MaxChunkSize: 100, OverlapSize: 0})
	doc := &types.NormalizedDocument{Text: strings.Repeat("z", 250)}

	chunks := s.Plan(doc)

	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0].Content, 100)
	assert.Len(t, chunks[1].Content, 100)
	assert.Len(t, chunks[2].Content, 50)
}

func TestChunkService_PageAlignedAccumulation(t *testing.T) {
	s := NewChunkService(types.DocumentServiceConfig{MaxChunkSize: 100, OverlapSize: 10})
	text := strings.Repeat("A", 60) + strings.Repeat("B", 60) + strings.Repeat("C", 60)
	doc := &types.NormalizedDocument{
		Text: text,
		Pages: []types.PageBoundary{
			{Page: 1, Offset: 0},
			{Page: 2, Offset: 60},
			{Page: 3, Offset: 120},
		},
	}

	chunks := s.Plan(doc)

	require.Len(t, chunks, 3)
	assert.Equal(t, 1, chunks[0].StartPage)
	assert.Equal(t, 1, chunks[0].EndPage)
	assert.Equal(t, 2, chunks[1].StartPage)
	assert.Equal(t, 3, chunks[2].StartPage)
	// Each later chunk re-includes the tail of its predecessor.
	assert.True(t, strings.HasPrefix(chunks[1].Content, strings.Repeat("A", 10)))
	assert.True(t, strings.HasPrefix(chunks[2].Content, strings.Repeat("B", 10)))
}

func TestChunkService_NearLimitPageStaysWithinLimit(t *testing.T) {
	s := NewChunkService(types.DocumentServiceConfig{MaxChunkSize: 100, OverlapSize: 10})
	text := strings.Repeat("A", 60) + strings.Repeat("B", 95)
	doc := &types.NormalizedDocument{
		Text: text,
		Pages: []types.PageBoundary{
			{Page: 1, Offset: 0},
			{Page: 2, Offset: 60},
		},
	}

	chunks := s.Plan(doc)

	require.Len(t, chunks, 2)
	// Only 5 characters of overlap fit in front of the 95-character page.
	assert.True(t, strings.HasPrefix(chunks[1].Content, strings.Repeat("A", 5)+"B"))
	for _, c := range chunks {
		assert.LessOrEqual(t, len(c.Content), 100,
			"a page that fits on its own must never yield an oversized chunk")
	}
}

func TestChunkService_OversizedPageEmittedWhole(t *testing.T) {
	s := NewChunkService(types.DocumentServiceConfig{MaxChunkSize: 100, OverlapSize: 10})
	text := strings.Repeat("A", 60) + strings.Repeat("B", 150) + strings.Repeat("C", 60)
	doc := &types.NormalizedDocument{
		Text: text,
		Pages: []types.PageBoundary{
			{Page: 1, Offset: 0},
			{Page: 2, Offset: 60},
			{Page: 3, Offset: 210},
		},
	}

	chunks := s.Plan(doc)

	require.Len(t, chunks, 3)
	oversized := chunks[1]
	assert.Equal(t, 2, oversized.StartPage)
	assert.Equal(t, 2, oversized.EndPage)
	assert.Greater(t, len(oversized.Content), 100, "an oversized page stays intact")
	assert.True(t, strings.Contains(oversized.Content, strings.Repeat("B", 150)))
}
