package types

// RunRequest is the body of POST /api/v1/hackrx/run. Answers map positionally
// to Questions, so question order is significant.
type RunRequest struct {
	Documents string   `json:"documents"`
	Questions []string `json:"questions"`
}
