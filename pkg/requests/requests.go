package requests

import (
	"fmt"
	"net/http"
	"time"
)

// Default client with a sane timeout for the feed and backend calls.
var client = &http.Client{Timeout: 10 * time.Second}

// Request creates a simple request and returns the response.
func Request(url string, method string) (*http.Response, error) {
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	return client.Do(req)
}
