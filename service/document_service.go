package service

import (
	"context"
	"log"
	"sort"
	"time"

	"github.com/Harshilmalhotra/bfhl-internal-hack/cache"
)

// ProgressFunc receives pipeline stage updates. It may be nil.
type ProgressFunc func(stage, message string)

// DocumentService runs the full pipeline for one request:
// cache lookup -> download -> extract -> chunk -> answer -> cache store.
type DocumentService struct {
	cache      *cache.ResponseCache
	downloader *DownloadService
	extractor  *ExtractPool
	planner    *ChunkService
	answerer   *AnswerService
}

func NewDocumentService(
	responseCache *cache.ResponseCache,
	downloader *DownloadService,
	extractor *ExtractPool,
	planner *ChunkService,
	answerer *AnswerService,
) *DocumentService {
	return &DocumentService{
		cache:      responseCache,
		downloader: downloader,
		extractor:  extractor,
		planner:    planner,
		answerer:   answerer,
	}
}

// Run answers every question against the document at the given URL. The
// returned slice always has one entry per question. Download and extraction
// failures are returned as typed errors; gateway failures are absorbed into
// error-marker answers.
func (s *DocumentService) Run(ctx context.Context, documentURL string, questions []string, progress ProgressFunc) ([]string, error) {
	start := time.Now()

	fingerprint := cache.Fingerprint(documentURL, questions)
	if cached, ok := s.cache.Lookup(fingerprint); ok {
		// Cached answers are stored in sorted-question order so a request
		// asking the same questions in a different order still hits and
		// gets every answer at the right position.
		if answers, ok := fromSortedOrder(cached, questions); ok {
			report(progress, "cache", "Serving cached answers")
			return answers, nil
		}
	}

	report(progress, "download", "Downloading document")
	data, err := s.downloader.Download(ctx, documentURL)
	if err != nil {
		return nil, err
	}

	report(progress, "extract", "Extracting text")
	doc, err := s.extractor.Extract(ctx, data)
	if err != nil {
		return nil, err
	}

	chunks := s.planner.Plan(doc)
	log.Printf("Planned %d chunk(s) for %d characters", len(chunks), len(doc.Text))

	report(progress, "answer", "Answering questions")
	answers := s.answerer.Answer(ctx, chunks, questions)

	if !allErrors(answers) {
		s.cache.Store(fingerprint, toSortedOrder(questions, answers))
	}

	log.Printf("Total processing time: %.2fs", time.Since(start).Seconds())
	return answers, nil
}

// CacheSize exposes the cache entry count for the health endpoint.
func (s *DocumentService) CacheSize() int {
	return s.cache.Size()
}

func report(progress ProgressFunc, stage, message string) {
	if progress != nil {
		progress(stage, message)
	}
}

// sortedIndices returns the question indices ordered by question text, the
// same ordering the fingerprint uses.
func sortedIndices(questions []string) []int {
	idx := make([]int, len(questions))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return questions[idx[a]] < questions[idx[b]]
	})
	return idx
}

// toSortedOrder reorders answers from request order into sorted-question
// order for storage.
func toSortedOrder(questions, answers []string) []string {
	idx := sortedIndices(questions)
	out := make([]string, len(answers))
	for rank, i := range idx {
		out[rank] = answers[i]
	}
	return out
}

// fromSortedOrder maps cached sorted-order answers back to the request's
// question order.
func fromSortedOrder(cached []string, questions []string) ([]string, bool) {
	if len(cached) != len(questions) {
		return nil, false
	}
	idx := sortedIndices(questions)
	out := make([]string, len(questions))
	for rank, i := range idx {
		out[i] = cached[rank]
	}
	return out, true
}

func allErrors(answers []string) bool {
	for _, a := range answers {
		if a != AnswerError {
			return false
		}
	}
	return len(answers) > 0
}
