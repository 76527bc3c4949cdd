package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/klokku/taskfeed/internal/config"
	"github.com/klokku/taskfeed/pkg/ics"
	log "github.com/sirupsen/logrus"
)

type Fetcher interface {
	Fetch(ctx context.Context, link string) (Feed, error)
}

// HTTPFetcher downloads a calendar and cuts it into header and events.
type HTTPFetcher struct {
	client       *http.Client
	userAgent    string
	maxBodyBytes int64
	strict       bool
}

func NewHTTPFetcher(cfg config.Feed) *HTTPFetcher {
	return &HTTPFetcher{
		client:       &http.Client{Timeout: cfg.Timeout},
		userAgent:    cfg.UserAgent,
		maxBodyBytes: cfg.MaxBodyBytes,
		strict:       cfg.Strict,
	}
}

// WithClient uses a copy of client with the configured timeout. The caller's
// client is left untouched.
func (f *HTTPFetcher) WithClient(client *http.Client) *HTTPFetcher {
	c := *client
	c.Timeout = f.client.Timeout
	f.client = &c
	return f
}

func (f *HTTPFetcher) Fetch(ctx context.Context, link string) (Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return Feed{}, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	req.Header.Set("Accept", "text/calendar, text/plain;q=0.9, */*;q=0.8")
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	log.Debugf("Fetching feed %s", redactLink(link))
	resp, err := f.client.Do(req)
	if err != nil {
		log.Errorf("Failed to fetch feed %s: %v", redactLink(link), err)
		return Feed{}, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Errorf("Feed %s returned non-OK status: %d", redactLink(link), resp.StatusCode)
		return Feed{}, fmt.Errorf("%w: unexpected status %s", ErrFetch, resp.Status)
	}

	body, err := f.readBody(resp.Body)
	if err != nil {
		return Feed{}, err
	}

	segments, err := ics.SplitCalendar(strings.TrimSpace(body), f.strict)
	if err != nil {
		return Feed{}, fmt.Errorf("%w: %w", ErrMalformedFeed, err)
	}
	log.Debugf("Fetched feed %s (%d bytes)", redactLink(link), len(body))

	return Feed{Header: segments.Header, Events: segments.Events}, nil
}

func (f *HTTPFetcher) readBody(r io.Reader) (string, error) {
	if f.maxBodyBytes > 0 {
		r = io.LimitReader(r, f.maxBodyBytes+1)
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read body: %w", ErrFetch, err)
	}
	if f.maxBodyBytes > 0 && int64(len(body)) > f.maxBodyBytes {
		return "", fmt.Errorf("%w: body exceeds %d bytes", ErrFetch, f.maxBodyBytes)
	}
	if !utf8.Valid(body) {
		return "", fmt.Errorf("%w: body is not text", ErrFetch)
	}
	return string(body), nil
}

// redactLink keeps only scheme and host. Calendar links usually embed a
// private token in the path or query.
func redactLink(link string) string {
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return "(redacted)"
	}
	return u.Scheme + "://" + u.Host + "/...(redacted)"
}
