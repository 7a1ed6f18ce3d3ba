package service

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/Harshilmalhotra/bfhl-internal-hack/types"
)

const (
	// AnswerNotFound is the sentinel for a question the document does not
	// answer.
	AnswerNotFound = "Information not found in the document"

	// AnswerError marks a question whose answer computation itself failed.
	// It is deliberately distinct from AnswerNotFound so a failed call is
	// never mistaken for a confirmed negative.
	AnswerError = "Error processing question"
)

var answerLinePattern = regexp.MustCompile(`^Answer\s*(\d+)\s*:\s*(.+)$`)

// AnswerService drives LLM calls for the planned chunks and merges the
// per-chunk replies into one answer per question.
type AnswerService struct {
	ai      AIService
	limiter *rate.Limiter
	timeout time.Duration
}

func NewAnswerService(ai AIService, requestsPerSecond float64, timeout time.Duration) *AnswerService {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 1
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &AnswerService{
		ai:      ai,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		timeout: timeout,
	}
}

// Answer returns exactly one answer per question, in question order,
// regardless of chunk count or gateway failures. A single chunk is answered
// with one batch call; multiple chunks are queried concurrently and merged in
// chunk-index order afterwards.
func (s *AnswerService) Answer(ctx context.Context, chunks []types.Chunk, questions []string) []string {
	if len(questions) == 0 {
		return []string{}
	}
	if len(chunks) == 0 {
		return filledAnswers(len(questions), AnswerNotFound)
	}

	if len(chunks) == 1 {
		return s.answerChunk(ctx, chunks[0].Content, questions, buildDocumentPrompt)
	}

	results := make([][]string, len(chunks))
	var wg sync.WaitGroup
	for i := range chunks {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = s.answerChunk(ctx, chunks[i].Content, questions, buildExcerptPrompt)
		}(i)
	}
	wg.Wait()

	// The merge depends only on chunk index order, never on which call
	// finished first.
	return mergeAnswers(results, len(questions))
}

func (s *AnswerService) answerChunk(ctx context.Context, text string, questions []string, buildPrompt func(string, []string) string) []string {
	if err := s.limiter.Wait(ctx); err != nil {
		return filledAnswers(len(questions), AnswerError)
	}

	// Every gateway call carries a deadline so an unresponsive endpoint
	// produces error markers instead of hanging the request.
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reply, err := s.ai.Complete(callCtx, buildPrompt(text, questions))
	if err != nil {
		log.Printf("Question answering failed: %v", err)
		return filledAnswers(len(questions), AnswerError)
	}
	return parseAnswers(reply, len(questions))
}

// parseAnswers applies the strict "Answer N: text" line grammar. Lines that
// do not match but follow a matched line continue that answer. Missing
// indices are padded with the sentinel, indices beyond the question count are
// dropped.
func parseAnswers(reply string, count int) []string {
	answers := make([]string, count)
	last := -1
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := answerLinePattern.FindStringSubmatch(line); m != nil {
			idx, err := strconv.Atoi(m[1])
			if err != nil || idx < 1 || idx > count {
				last = -1
				continue
			}
			answers[idx-1] = strings.TrimSpace(m[2])
			last = idx - 1
			continue
		}
		if last >= 0 && answers[last] != "" {
			answers[last] += " " + line
		}
	}
	for i := range answers {
		if answers[i] == "" {
			answers[i] = AnswerNotFound
		}
	}
	return answers
}

// mergeAnswers folds per-chunk answer sets in chunk order. A real answer
// always wins the slot, an error marker only fills a slot that still holds
// the sentinel, and a sentinel never overrides anything.
func mergeAnswers(results [][]string, count int) []string {
	merged := filledAnswers(count, AnswerNotFound)
	for _, rs := range results {
		for i := 0; i < count && i < len(rs); i++ {
			a := rs[i]
			switch {
			case a == "" || a == AnswerNotFound:
			case a == AnswerError:
				if merged[i] == AnswerNotFound {
					merged[i] = a
				}
			default:
				merged[i] = a
			}
		}
	}
	return merged
}

func filledAnswers(count int, value string) []string {
	answers := make([]string, count)
	for i := range answers {
		answers[i] = value
	}
	return answers
}

func numberedQuestions(questions []string) string {
	var sb strings.Builder
	for i, q := range questions {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, q)
	}
	return sb.String()
}

// buildDocumentPrompt asks all questions against the full document in one
// call.
func buildDocumentPrompt(text string, questions []string) string {
	return fmt.Sprintf(`You are analyzing a document. Answer each question with specific details from the document.

QUESTIONS:
%s
DOCUMENT:
%s

INSTRUCTIONS:
1. Answer using ONLY information in the document
2. Include specific numbers, dates, percentages, amounts
3. If not found, say "%s"
4. Be precise and complete

Format exactly as:
Answer 1: [detailed answer]
Answer 2: [detailed answer]
... continue for all questions`, numberedQuestions(questions), text, AnswerNotFound)
}

// buildExcerptPrompt asks all questions against one chunk of a longer
// document.
func buildExcerptPrompt(text string, questions []string) string {
	return fmt.Sprintf(`You are analyzing one part of a longer document. Answer each question using only this part.

QUESTIONS TO ANSWER:
%s
DOCUMENT PART:
%s

INSTRUCTIONS:
1. Search this part for relevant information
2. Include ALL specific details: numbers, dates, percentages, amounts, periods
3. If the information is not in this part, say "%s"
4. Quote exact phrases when answering about specific terms or conditions

Format your response EXACTLY as:
Answer 1: [your detailed answer]
Answer 2: [your detailed answer]
... continue for all questions

BE VERY SPECIFIC. Include numbers, percentages, time periods, and amounts.`, numberedQuestions(questions), text, AnswerNotFound)
}
