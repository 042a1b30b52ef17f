package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// envelopeKeys are the wrapper keys the collaborator is known to use, tried in
// this order.
var envelopeKeys = []string{"data", "content", "items"}

// Client fetches catalog entries from the portal's content collaborator.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a client for the given entries endpoint.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchEntries retrieves the current catalog collection. Transport and status
// failures are returned as errors; an unrecognized response shape is not an
// error and normalizes to an empty collection.
func (c *Client) FetchEntries(ctx context.Context) ([]Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch catalog: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read catalog response: %w", err)
	}
	return NormalizeEnvelope(body), nil
}

// NormalizeEnvelope reduces every response shape the collaborator produces to
// a flat entry collection: a bare array, or an object wrapping the array under
// one of the recognized keys. Anything else (null, an empty object, a wrapper
// holding a non-array) degrades to an empty collection rather than an error.
func NormalizeEnvelope(raw []byte) []Entry {
	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err == nil {
		if entries == nil {
			return []Entry{}
		}
		return entries
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return []Entry{}
	}
	for _, key := range envelopeKeys {
		inner, ok := wrapper[key]
		if !ok {
			continue
		}
		var entries []Entry
		if err := json.Unmarshal(inner, &entries); err == nil && entries != nil {
			return entries
		}
	}
	return []Entry{}
}
