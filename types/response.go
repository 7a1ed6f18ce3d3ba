package types

// RunResponse carries one answer per question, in question order.
type RunResponse struct {
	Answers []string `json:"answers"`
}

type ErrorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	CacheSize int    `json:"cache_size"`
}

type ServiceInfoResponse struct {
	Message  string   `json:"message"`
	Version  string   `json:"version"`
	Features []string `json:"features"`
}

// ProcessingStatus is streamed over the websocket endpoint while a run is in
// progress.
type ProcessingStatus struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
}
