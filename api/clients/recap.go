package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"riftrewind/pkg/messages"
	"riftrewind/pkg/models/recap"
)

// RecapClient is the boundary with the recap backend collaborator.
type RecapClient interface {
	GetYearSummary(ctx context.Context, region string, gameName string, gameTag string) (*recap.YearResponse, error)
}

// recapClient is the HTTP implementation.
type recapClient struct {
	baseURL string
	http    *http.Client
}

// NewRecapClient creates a client for the given backend base URL.
func NewRecapClient(baseURL string) RecapClient {
	return &recapClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// GetYearSummary fetches and decodes the year-summary payload.
func (c *recapClient) GetYearSummary(ctx context.Context, region string, gameName string, gameTag string) (*recap.YearResponse, error) {
	riotId := gameName + "#" + gameTag
	reqURL := fmt.Sprintf("%s/api/year-summary?region=%s&riotId=%s",
		c.baseURL, url.QueryEscape(region), url.QueryEscape(riotId))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf(messages.RequestFailedMsg+": %w", reqURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(messages.BadStatusCodeMsg, resp.StatusCode, reqURL)
	}

	var summary recap.YearResponse
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return nil, fmt.Errorf("%s: %w", messages.FailedToParseMsg, err)
	}

	return &summary, nil
}
