package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/Harshilmalhotra/bfhl-internal-hack/types"
)

const downloadUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// DownloadService fetches document bytes over HTTP(S), retrying a fixed
// number of times with linear backoff.
type DownloadService struct {
	client     *http.Client
	maxRetries int
	backoff    time.Duration
}

func NewDownloadService(timeout time.Duration, maxRetries int) *DownloadService {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &DownloadService{
		client:     &http.Client{Timeout: timeout},
		maxRetries: maxRetries,
		backoff:    2 * time.Second,
	}
}

func (s *DownloadService) Download(ctx context.Context, url string) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		log.Printf("Downloading document (attempt %d/%d)", attempt, s.maxRetries)
		data, err := s.fetch(ctx, url)
		if err == nil {
			log.Printf("Document downloaded: %d bytes", len(data))
			return data, nil
		}
		lastErr = err
		if attempt < s.maxRetries {
			select {
			case <-ctx.Done():
				return nil, &types.DownloadError{URL: url, Err: ctx.Err()}
			case <-time.After(s.backoff):
			}
		}
	}
	return nil, &types.DownloadError{URL: url, Err: lastErr}
}

func (s *DownloadService) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", downloadUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return data, nil
}
