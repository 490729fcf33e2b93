package cosmic

import "time"

const (
	providerName       = "cosmic"
	defaultBaseURL     = "https://api.cosmicjs.com/v3"
	defaultHTTPTimeout = 10 * time.Second
	// Upper bound on error body bytes echoed into error messages.
	maxErrorBody = 512
)
