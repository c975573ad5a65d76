package imagestore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Client talks to the eCare file service, which issues short-lived SAS URLs
// for stored cheque images.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// sasResponse is the file-service payload. Only the url field matters here;
// anything without a usable url is treated as a failed lookup.
type sasResponse struct {
	BlobName string `json:"blobName"`
	URL      string `json:"url"`
}

func New(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Resolve returns a temporary access URL for the given blob. Any transport
// failure, non-2xx status or malformed body is an error; the caller decides
// what a failed lookup means for its response.
func (c *Client) Resolve(ctx context.Context, blobName string) (string, error) {
	endpoint := fmt.Sprintf("%s/files/%s/sas", c.baseURL, url.PathEscape(blobName))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build sas request: %w", err)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("sas request: %w", err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("blob", blobName).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("sas lookup")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("sas request returned status %d", resp.StatusCode)
	}

	var payload sasResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode sas response: %w", err)
	}
	if payload.URL == "" {
		return "", fmt.Errorf("sas response has no url field")
	}
	return payload.URL, nil
}
