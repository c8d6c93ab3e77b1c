package resolvers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/contextwire/mentions/internal/resolver"
)

// DefaultHTTPTimeout bounds remote resolution. The engine imposes no
// timeout of its own; the latency policy belongs to the resolver.
const DefaultHTTPTimeout = 30 * time.Second

// userAgent identifies resolver requests to remote servers.
const userAgent = "mentions/1.0"

// HTTPOption configures an HTTP resolver.
type HTTPOption func(*HTTP)

// WithHTTPClient replaces the default client, e.g. to adjust the
// timeout or transport.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(h *HTTP) {
		h.client = client
	}
}

// WithHostMapping maps a logical server name to a concrete host:port.
// Unmapped servers are used as hosts directly.
func WithHostMapping(server, hostport string) HTTPOption {
	return func(h *HTTP) {
		h.hosts[server] = hostport
	}
}

// WithInsecureHTTP switches requests to plain HTTP. Intended for
// tests against local listeners.
func WithInsecureHTTP() HTTPOption {
	return func(h *HTTP) {
		h.scheme = "http"
	}
}

// HTTP resolves resources by issuing a GET to https://<server><path>.
// A non-2xx response resolves to "not found"; transport failures are
// internal faults. The response's declared content type is passed
// through on the resolved resource.
type HTTP struct {
	client *http.Client
	scheme string
	hosts  map[string]string
}

// NewHTTP creates an HTTP resolver with a default timeout.
func NewHTTP(opts ...HTTPOption) *HTTP {
	h := &HTTP{
		client: &http.Client{Timeout: DefaultHTTPTimeout},
		scheme: "https",
		hosts:  make(map[string]string),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Resolve implements resolver.Func.
func (h *HTTP) Resolve(ctx context.Context, server, path string, query map[string]string) (*resolver.Resource, error) {
	host := server
	if mapped, ok := h.hosts[server]; ok {
		host = mapped
	}

	url := h.scheme + "://" + host + path
	if len(query) > 0 {
		url += "?" + encodeQuery(query)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.ReadAll(resp.Body)
		return nil, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", url, err)
	}

	return &resolver.Resource{
		Content:  string(body),
		MIMEType: resp.Header.Get("Content-Type"),
	}, nil
}

// encodeQuery serializes query parameters with sorted keys so the
// request URL is deterministic for a given mapping.
func encodeQuery(query map[string]string) string {
	keys := make([]string, 0, len(query))
	for k := range query {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString("&")
		}
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(query[k])
	}
	return b.String()
}
