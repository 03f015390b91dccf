package depverify

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// prober issues the registry-specific HTTP GET and maps the response
// to an outcome. 200 maps to outcomeExists, 404 (and 410 from the Go
// proxy) to outcomeNotFound; any other status, transport error, or
// context cancellation maps to outcomeUnknown.
type prober struct {
	client *http.Client
}

func newProber(timeout time.Duration) *prober {
	return &prober{client: &http.Client{Timeout: timeout}}
}

func (p *prober) probe(ctx context.Context, reg registry, canonical string) outcome {
	u := probeURL(reg, canonical)
	if u == "" {
		return outcomeUnknown
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return outcomeUnknown
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return outcomeUnknown
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return outcomeExists
	case http.StatusNotFound:
		return outcomeNotFound
	case http.StatusGone:
		if reg == registryGo {
			return outcomeNotFound
		}
		return outcomeUnknown
	default:
		return outcomeUnknown
	}
}

func probeURL(reg registry, canonical string) string {
	switch reg {
	case registryPyPI:
		return "https://pypi.org/pypi/" + url.PathEscape(canonical) + "/json"
	case registryNPM:
		return "https://registry.npmjs.org/" + npmPathEscape(canonical)
	case registryCrates:
		return "https://crates.io/api/v1/crates/" + url.PathEscape(canonical)
	case registryGo:
		return "https://proxy.golang.org/" + canonical + "/@v/list"
	default:
		return ""
	}
}

// npmPathEscape path-escapes a package name; for a scoped name the "/"
// between scope and name is encoded as %2F (the "@" is left as is).
func npmPathEscape(name string) string {
	if !strings.HasPrefix(name, "@") {
		return url.PathEscape(name)
	}
	parts := strings.SplitN(name, "/", 2)
	if len(parts) != 2 {
		return url.PathEscape(name)
	}
	return url.PathEscape(parts[0]) + "%2F" + url.PathEscape(parts[1])
}
