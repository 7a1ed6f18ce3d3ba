package service

import (
	"context"

	"github.com/Harshilmalhotra/bfhl-internal-hack/types"
)

// Extractor produces a NormalizedDocument from raw document bytes.
type Extractor interface {
	Extract(data []byte) (*types.NormalizedDocument, error)
}

type extractJob struct {
	data  []byte
	reply chan extractResult
}

type extractResult struct {
	doc *types.NormalizedDocument
	err error
}

// ExtractPool runs CPU-bound text extraction on a fixed set of workers so it
// never blocks request handling. Submitting callers queue for a free worker.
type ExtractPool struct {
	extractor Extractor
	jobs      chan extractJob
	done      chan struct{}
}

func NewExtractPool(extractor Extractor, workers int) *ExtractPool {
	if workers < 1 {
		workers = 1
	}
	p := &ExtractPool{
		extractor: extractor,
		jobs:      make(chan extractJob),
		done:      make(chan struct{}),
	}
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

func (p *ExtractPool) worker() {
	for {
		select {
		case job := <-p.jobs:
			doc, err := p.extractor.Extract(job.data)
			job.reply <- extractResult{doc: doc, err: err}
		case <-p.done:
			return
		}
	}
}

// Extract hands the document bytes to a pool worker and waits for the result
// or for the context to expire.
func (p *ExtractPool) Extract(ctx context.Context, data []byte) (*types.NormalizedDocument, error) {
	reply := make(chan extractResult, 1)
	select {
	case p.jobs <- extractJob{data: data, reply: reply}:
	case <-ctx.Done():
		return nil, &types.ExtractionError{Err: ctx.Err()}
	}

	select {
	case res := <-reply:
		if res.err != nil {
			return nil, res.err
		}
		return res.doc, nil
	case <-ctx.Done():
		return nil, &types.ExtractionError{Err: ctx.Err()}
	}
}

// Close stops the pool workers. In-flight extractions finish first.
func (p *ExtractPool) Close() {
	close(p.done)
}
