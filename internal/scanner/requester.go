package scanner

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"

	"github.com/maxvaer/pather/internal/config"
)

// Sentinel error kinds returned by Requester.Fetch.
// Callers should use errors.Is() to check for these.
var (
	// ErrTLS indicates a TLS handshake or certificate verification failure.
	ErrTLS = errors.New("scanner: TLS negotiation failed")

	// ErrNetwork covers every other transport failure: refused connections,
	// DNS errors, timeouts and malformed URLs.
	ErrNetwork = errors.New("scanner: request failed")
)

// drainLimit caps how much of a response body is read so the connection
// can be reused. Bodies are never inspected.
const drainLimit = 64 << 10

// Doer sends a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Response holds the parts of an HTTP response the prober classifies on.
type Response struct {
	StatusCode int
	Location   string
}

// Requester issues GET requests with redirects disabled.
type Requester struct {
	client    Doer
	userAgent string
}

// NewRequester creates a Requester from the provided options. Certificate
// verification stays on so that TLS failures surface as ErrTLS.
func NewRequester(opts *config.Options) *Requester {
	return newRequester(opts, &tls.Config{MinVersion: tls.VersionTLS10})
}

func newRequester(opts *config.Options, tlsConfig *tls.Config) *Requester {
	dialer := &net.Dialer{Timeout: opts.Timeout}
	transport := &http.Transport{
		DialContext: dialer.DialContext,
		DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			return dialTLS(ctx, dialer, tlsConfig, network, addr)
		},
		MaxIdleConnsPerHost: opts.Threads,
		MaxIdleConns:        opts.Threads,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   opts.Timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return NewRequesterWithClient(client, opts.UserAgent)
}

// dialTLS connects and runs the handshake itself so that every handshake
// failure, whatever its concrete error type, is reported as ErrTLS.
// Timeouts and cancellation stay network errors.
func dialTLS(ctx context.Context, dialer *net.Dialer, base *tls.Config, network, addr string) (net.Conn, error) {
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	cfg := base.Clone()
	if cfg.ServerName == "" {
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			host = addr
		}
		cfg.ServerName = host
	}

	tlsConn := tls.Client(conn, cfg)
	if err := tlsConn.HandshakeContext(ctx); err != nil {
		conn.Close()
		if isTimeout(err) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrTLS, err)
	}
	return tlsConn, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// NewRequesterWithClient wraps an existing client. An empty userAgent falls
// back to "pather/<version>".
func NewRequesterWithClient(client Doer, userAgent string) *Requester {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Requester{client: client, userAgent: userAgent}
}

// Fetch sends a GET request for rawURL. Any failure is wrapped in either
// ErrTLS or ErrNetwork.
func (r *Requester) Fetch(ctx context.Context, rawURL string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		if errors.Is(err, ErrTLS) {
			return nil, err
		}
		if isTLSError(err) {
			return nil, fmt.Errorf("%w: %w", ErrTLS, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, drainLimit))

	return &Response{
		StatusCode: resp.StatusCode,
		Location:   resp.Header.Get("Location"),
	}, nil
}

// isTLSError reports whether err was caused by TLS negotiation or
// certificate verification rather than by the network. crypto/tls reports
// alerts received from the peer as a *net.OpError with Op "remote error";
// with TLS 1.3 these can arrive after the client side of the handshake has
// completed.
func isTLSError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "remote error" {
		return true
	}
	var (
		recordErr    tls.RecordHeaderError
		verifyErr    *tls.CertificateVerificationError
		authorityErr x509.UnknownAuthorityError
		hostErr      x509.HostnameError
		invalidErr   x509.CertificateInvalidError
	)
	switch {
	case errors.Is(err, http.ErrSchemeMismatch),
		errors.As(err, &recordErr),
		errors.As(err, &verifyErr),
		errors.As(err, &authorityErr),
		errors.As(err, &hostErr),
		errors.As(err, &invalidErr):
		return true
	}
	return false
}
