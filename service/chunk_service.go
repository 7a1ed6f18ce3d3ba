package service

import (
	"github.com/Harshilmalhotra/bfhl-internal-hack/types"
)

// sentenceWindow is how far back from the size limit the planner searches for
// a sentence terminator before falling back to a hard cut.
const sentenceWindow = 1000

// ChunkService splits a normalized document into bounded, context-preserving
// chunks for LLM calls. Planning is deterministic: the same document and
// configuration always yield the same chunk sequence.
type ChunkService struct {
	maxChunkSize int
	overlapSize  int
}

func NewChunkService(config types.DocumentServiceConfig) *ChunkService {
	return &ChunkService{
		maxChunkSize: config.MaxChunkSize,
		overlapSize:  config.OverlapSize,
	}
}

// Plan produces the chunk sequence for the document. Short documents become a
// single chunk. Documents with page boundaries are accumulated page by page
// so a cut never lands inside a page unless that page alone exceeds the
// limit; documents without page information are cut at sentence boundaries
// near the limit. Each chunk after the first starts with the trailing
// overlapSize characters of its predecessor.
func (s *ChunkService) Plan(doc *types.NormalizedDocument) []types.Chunk {
	if len(doc.Text) <= s.maxChunkSize {
		return []types.Chunk{{
			Index:     0,
			Content:   doc.Text,
			StartPage: 1,
			EndPage:   doc.TotalPages(),
		}}
	}
	if len(doc.Pages) > 1 {
		return s.planPages(doc)
	}
	return s.planText(doc)
}

// planPages accumulates whole pages until the next page would exceed the
// limit. A single page larger than the limit is emitted as one oversized
// chunk rather than being split mid-page.
func (s *ChunkService) planPages(doc *types.NormalizedDocument) []types.Chunk {
	text := doc.Text
	var chunks []types.Chunk

	var content string
	var startPage, endPage int

	flush := func() {
		if content == "" {
			return
		}
		chunks = append(chunks, types.Chunk{
			Index:     len(chunks),
			Content:   content,
			StartPage: startPage,
			EndPage:   endPage,
		})
		content = ""
	}

	for i, boundary := range doc.Pages {
		end := len(text)
		if i+1 < len(doc.Pages) {
			end = doc.Pages[i+1].Offset
		}
		unit := text[boundary.Offset:end]

		if content != "" && len(content)+len(unit) > s.maxChunkSize {
			flush()
		}
		if content == "" {
			if len(unit) > s.maxChunkSize {
				// Oversized page, keep it intact in its own chunk. No
				// overlap tail, the page already exceeds the limit alone.
				content = unit
				startPage = boundary.Page
				endPage = boundary.Page
				flush()
				continue
			}
			content = s.tailOf(chunks, s.maxChunkSize-len(unit)) + unit
			startPage = boundary.Page
			endPage = boundary.Page
			continue
		}
		content += unit
		endPage = boundary.Page
	}
	flush()

	return chunks
}

// planText walks the raw text, cutting at a sentence terminator within
// sentenceWindow characters of the limit when one exists, at the hard limit
// otherwise.
func (s *ChunkService) planText(doc *types.NormalizedDocument) []types.Chunk {
	text := doc.Text
	var chunks []types.Chunk

	pos := 0
	for pos < len(text) {
		end := pos + s.maxChunkSize
		if end >= len(text) {
			chunks = s.appendTextChunk(chunks, doc, pos, len(text))
			break
		}

		cut := end
		limit := end - sentenceWindow
		if limit < pos {
			limit = pos
		}
		for i := end; i > limit; i-- {
			if text[i-1] == '.' && isSpace(text[i]) {
				cut = i
				break
			}
		}

		chunks = s.appendTextChunk(chunks, doc, pos, cut)

		next := cut - s.overlapSize
		if next <= pos {
			// Ensure we make progress
			next = cut
		}
		pos = next
	}

	return chunks
}

func (s *ChunkService) appendTextChunk(chunks []types.Chunk, doc *types.NormalizedDocument, start, end int) []types.Chunk {
	return append(chunks, types.Chunk{
		Index:     len(chunks),
		Content:   doc.Text[start:end],
		StartPage: doc.PageAt(start),
		EndPage:   doc.PageAt(end - 1),
	})
}

// tailOf returns the trailing overlapSize characters of the last chunk, so
// information spanning a cut point is visible on both sides of it. The tail
// is capped at room so the chunk it prefixes stays within the size limit.
func (s *ChunkService) tailOf(chunks []types.Chunk, room int) string {
	size := s.overlapSize
	if size > room {
		size = room
	}
	if size <= 0 || len(chunks) == 0 {
		return ""
	}
	prev := chunks[len(chunks)-1].Content
	if len(prev) <= size {
		return prev
	}
	return prev[len(prev)-size:]
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\n' || b == '\t'
}
