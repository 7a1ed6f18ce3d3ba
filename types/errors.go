package types

import "fmt"

// DownloadError reports a failure to fetch the document bytes. Surfaced to
// the client as a 400.
type DownloadError struct {
	URL string
	Err error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("failed to download %s: %v", e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }

// ExtractionError reports that no usable text could be extracted from the
// downloaded document. Surfaced to the client as a 400.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// GatewayError reports a failed LLM completion call. It is recovered inside
// the answer aggregator by substituting the error marker for the affected
// chunk, never as an HTTP error.
type GatewayError struct {
	Provider string
	Err      error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s completion failed: %v", e.Provider, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }
