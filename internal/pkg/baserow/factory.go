package baserow

import (
	"net/http"
)

// Factory builds per-workspace clients that share one http.Client.
type Factory struct {
	baseURL    string
	httpClient *http.Client
	opts       []Option
}

// NewFactory creates a client factory
func NewFactory(baseURL string, httpClient *http.Client, opts ...Option) *Factory {
	return &Factory{baseURL: baseURL, httpClient: httpClient, opts: opts}
}

// ForToken returns a client authenticated with the given database token.
func (f *Factory) ForToken(apiToken string) *Client {
	return NewClient(f.baseURL, apiToken, f.httpClient, f.opts...)
}
