package extension

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/knightsbridge/faqsite/internal/progress"
)

var (
	// ErrRejected marks a fetched payload that looks like an error or login
	// page instead of the archive.
	ErrRejected = errors.New("extension: payload rejected")
	// ErrTooLarge is returned when a payload exceeds the fetch limit.
	ErrTooLarge = errors.New("extension: payload too large")
)

// Kind is the way a delivery reaches the user.
type Kind string

const (
	// KindPayload carries the archive bytes to be offered as an attachment.
	KindPayload Kind = "payload"
	// KindLink points the user directly at the remote URL in a new browsing context.
	KindLink Kind = "link"
	// KindFrame is KindLink plus a hidden frame loading the same URL.
	KindFrame Kind = "frame"
)

// Delivery is the result of a successful strategy.
type Delivery struct {
	Kind        Kind
	Strategy    string
	URL         string
	Filename    string
	ContentType string
	Payload     []byte
	// Linger keeps the download marked in progress after dispatch, while an
	// auxiliary helper (the hidden frame) is still alive.
	Linger time.Duration
}

// Strategy is one way of getting the archive to the user. Strategies are
// tried in order until one returns a delivery.
type Strategy interface {
	Name() string
	Attempt(ctx context.Context, src Source) (*Delivery, error)
}

// LooksLikeArchive is the best-effort check that a fetched payload is the
// real file: it must be larger than minBytes and must not be HTML.
func LooksLikeArchive(size int64, contentType string, minBytes int64) bool {
	return size > minBytes && !strings.Contains(strings.ToLower(contentType), "text/html")
}

// FetchStrategy retrieves the archive itself so it can be served as an
// attachment with the suggested filename.
type FetchStrategy struct {
	Client   *http.Client
	MinBytes int64
	MaxBytes int64
	// Progress, when set, receives byte counts while the body is read.
	Progress progress.Reporter
}

func (f *FetchStrategy) Name() string { return "fetch" }

func (f *FetchStrategy) Attempt(ctx context.Context, src Source) (*Delivery, error) {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	minBytes, maxBytes := f.MinBytes, f.MaxBytes
	if minBytes == 0 {
		minBytes = DefaultMinBytes
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL(), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", src.URL(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetching %s: status code %d", src.URL(), resp.StatusCode)
	}

	var body io.Reader = io.LimitReader(resp.Body, maxBytes+1)
	if f.Progress != nil {
		f.Progress.Start(resp.ContentLength)
		defer f.Progress.Finish()
		body = io.TeeReader(body, reporterWriter{f.Progress})
	}

	payload, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("reading payload: %w", err)
	}
	if int64(len(payload)) > maxBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, maxBytes)
	}

	contentType := resp.Header.Get("Content-Type")
	if !LooksLikeArchive(int64(len(payload)), contentType, minBytes) {
		return nil, fmt.Errorf("%w: %d bytes of %q", ErrRejected, len(payload), contentType)
	}

	return &Delivery{
		Kind:        KindPayload,
		URL:         src.URL(),
		Filename:    src.Filename,
		ContentType: contentType,
		Payload:     payload,
	}, nil
}

type reporterWriter struct {
	r progress.Reporter
}

func (w reporterWriter) Write(p []byte) (int, error) {
	w.r.Add(len(p))
	return len(p), nil
}

// LinkStrategy sends the user straight to the remote URL. The file host
// handles the download itself, so this never fails.
type LinkStrategy struct{}

func (LinkStrategy) Name() string { return "link" }

func (LinkStrategy) Attempt(_ context.Context, src Source) (*Delivery, error) {
	return &Delivery{Kind: KindLink, URL: src.URL(), Filename: src.Filename}, nil
}

// FrameStrategy is the link fallback plus a hidden frame pointed at the same
// URL. The frame is removed after Linger.
type FrameStrategy struct {
	Linger time.Duration
}

func (FrameStrategy) Name() string { return "frame" }

func (f FrameStrategy) Attempt(_ context.Context, src Source) (*Delivery, error) {
	return &Delivery{Kind: KindFrame, URL: src.URL(), Filename: src.Filename, Linger: f.Linger}, nil
}

// Fallback selects the strategy used when fetching fails.
type Fallback string

const (
	FallbackLink  Fallback = "link"
	FallbackFrame Fallback = "frame"
)

// Strategies returns fetch followed by the chosen fallback.
func Strategies(fetch *FetchStrategy, fallback Fallback, linger time.Duration) []Strategy {
	if fallback == FallbackFrame {
		return []Strategy{fetch, FrameStrategy{Linger: linger}}
	}
	return []Strategy{fetch, LinkStrategy{}}
}
