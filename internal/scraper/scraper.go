package scraper

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/edunsouza/meeting-workbook/internal/workbook"
)

const (
	userAgent      = "meeting-workbook/1.0 (github.com/edunsouza/meeting-workbook)"
	defaultTimeout = 30 * time.Second
)

// ErrAllCandidatesFailed reports that every URL guess for the week was
// tried and none produced a usable page.
var ErrAllCandidatesFailed = errors.New("workbook page not found at any candidate URL")

// Scraper fetches and parses weekly program pages.
type Scraper struct {
	client  *http.Client
	baseURL string
	log     *zap.Logger
}

// New creates a Scraper against the given publication base URL. A zero
// timeout falls back to the default.
func New(baseURL string, timeout time.Duration, log *zap.Logger) *Scraper {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Scraper{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		log:     log,
	}
}

// FetchWorkbook resolves the candidate URLs for week and walks them strictly
// in order, returning the workbook extracted from the first page that loads
// and parses. Later candidates are lower-confidence guesses, so attempts are
// never raced against each other.
func (s *Scraper) FetchWorkbook(ctx context.Context, week workbook.Week) (*workbook.Workbook, error) {
	candidates := Candidates(s.baseURL, week)

	var lastErr error
	for _, candidate := range candidates {
		doc, err := s.fetchDocument(ctx, candidate)
		if err != nil {
			s.log.Warn("workbook candidate failed",
				zap.String("url", candidate),
				zap.Error(err))
			lastErr = err
			continue
		}
		s.log.Info("workbook page fetched", zap.String("url", candidate))
		return workbook.New(week.Key(), buildSections(doc)), nil
	}

	return nil, fmt.Errorf("%w (week %s, tried %s): %v",
		ErrAllCandidatesFailed, week.Key(), strings.Join(candidates, ", "), lastErr)
}

func (s *Scraper) fetchDocument(ctx context.Context, rawURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return doc, nil
}
