package scanner

import (
	"context"
	"errors"
	"strings"

	"github.com/maxvaer/pather/pkg/version"
)

var defaultUserAgent = "pather/" + version.Version

// Prober turns a URL into a classified Outcome.
type Prober interface {
	Probe(ctx context.Context, url string) Outcome
}

// HTTPProber probes over HTTP, downgrading https to http once when the
// secure attempt fails TLS negotiation.
type HTTPProber struct {
	req *Requester
}

// NewHTTPProber returns a prober backed by req.
func NewHTTPProber(req *Requester) *HTTPProber {
	return &HTTPProber{req: req}
}

// Probe issues at most two requests: the original one and, only after a TLS
// failure, the same URL over plain http.
func (p *HTTPProber) Probe(ctx context.Context, url string) Outcome {
	resp, err := p.req.Fetch(ctx, url)
	if err != nil && errors.Is(err, ErrTLS) && strings.HasPrefix(url, "https://") {
		url = "http://" + strings.TrimPrefix(url, "https://")
		resp, err = p.req.Fetch(ctx, url)
		if err != nil {
			return Outcome{URL: url, Class: Unreachable, Downgraded: true, Err: err}
		}
		return classify(url, resp, true)
	}
	if err != nil {
		return Outcome{URL: url, Class: Unreachable, Err: err}
	}
	return classify(url, resp, false)
}

func classify(url string, resp *Response, downgraded bool) Outcome {
	o := Outcome{
		URL:        url,
		Class:      Classify(resp.StatusCode),
		StatusCode: resp.StatusCode,
		Downgraded: downgraded,
	}
	if o.Class == Redirect {
		o.Location = resp.Location
		if o.Location == "" {
			o.Location = UnknownLocation
		}
	}
	return o
}
