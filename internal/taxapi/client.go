// internal/taxapi/client.go
package taxapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"taxfilter-core/taxonomy"
)

// lineageResponse is the wire shape of the taxonomy service's answer.
type lineageResponse struct {
	Taxon   string   `json:"taxon"`
	Lineage []string `json:"lineage"`
}

// Client implements taxonomy.Service over HTTP:
// GET {base}/lineage/{taxon} → {"taxon": "...", "lineage": ["...", ...]}.
// 404 means the taxon is unknown; any other non-200 is a service fault.
type Client struct {
	base string
	hc   *http.Client
	log  *slog.Logger
}

// NewClient returns a Client for the service rooted at base. A nil hc gets a
// client with a 30 s timeout so one slow lookup cannot stall a batch
// indefinitely; a nil log discards.
func NewClient(base string, hc *http.Client, log *slog.Logger) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{base: strings.TrimRight(base, "/"), hc: hc, log: log}
}

// Lineage fetches t's ancestor chain, nearest ancestor first.
func (c *Client) Lineage(ctx context.Context, t taxonomy.Taxon) ([]taxonomy.Taxon, error) {
	u := c.base + "/lineage/" + url.PathEscape(string(t))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("taxapi: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("taxapi: lookup %q: %w", t, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		c.log.Debug("taxon unknown upstream", "taxon", t)
		return nil, taxonomy.ErrUnknownTaxon
	default:
		return nil, fmt.Errorf("taxapi: lookup %q: unexpected status %s", t, resp.Status)
	}

	var body lineageResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("taxapi: lookup %q: decode: %w", t, err)
	}
	out := make([]taxonomy.Taxon, 0, len(body.Lineage))
	for _, a := range body.Lineage {
		if a != "" {
			out = append(out, taxonomy.Taxon(a))
		}
	}
	c.log.Debug("lineage resolved", "taxon", t, "depth", len(out))
	return out, nil
}
