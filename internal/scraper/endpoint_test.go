package scraper

import (
	"strings"
	"testing"
	"time"

	"github.com/edunsouza/meeting-workbook/internal/workbook"
)

func weekOf(t *testing.T, y int, m time.Month, d int) workbook.Week {
	t.Helper()
	return workbook.NewResolver(time.UTC).WeekOf(time.Date(y, m, d, 12, 0, 0, 0, time.UTC))
}

func TestCandidatesSameMonth(t *testing.T) {
	week := weekOf(t, 2020, time.May, 4) // 4-10 May

	urls := Candidates(DefaultBaseURL, week)
	if len(urls) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(urls))
	}

	// single-month week: the "from" token is the bare day number
	if !strings.Contains(urls[0], "Programa-da-semana-de-4-10-de-maio-de-2020") {
		t.Errorf("primary candidate = %q, expected bare from-day with year on to-token", urls[0])
	}
	if strings.Contains(urls[0], "4-de-maio") {
		t.Errorf("primary candidate = %q, from token must not spell the month", urls[0])
	}
	if !strings.Contains(urls[0], "maio-junho-2020-mwb") {
		t.Errorf("primary candidate = %q, expected May inside the maio-junho bucket", urls[0])
	}
}

func TestCandidatesCrossMonth(t *testing.T) {
	week := weekOf(t, 2025, time.July, 2) // 30 Jun - 6 Jul

	urls := Candidates(DefaultBaseURL, week)

	if !strings.Contains(urls[0], "Programa-da-semana-de-30-de-junho-6-de-julho-de-2025") {
		t.Errorf("primary candidate = %q, expected from token with month name", urls[0])
	}
	// the bucket follows the start month
	if !strings.Contains(urls[0], "maio-junho-2025-mwb") {
		t.Errorf("primary candidate = %q, expected June's maio-junho bucket", urls[0])
	}
}

func TestCandidatesCrossYear(t *testing.T) {
	week := weekOf(t, 2024, time.December, 31) // 30 Dec 2024 - 5 Jan 2025

	urls := Candidates(DefaultBaseURL, week)

	if !strings.Contains(urls[0], "novembro-dezembro-2024-mwb") {
		t.Errorf("primary candidate = %q, expected the start date's year and bucket", urls[0])
	}
	if !strings.Contains(urls[1], "30-de-dezembro-de-2024-5-de-janeiro-de-2025") {
		t.Errorf("second candidate = %q, expected a year suffix on both tokens", urls[1])
	}
	if !strings.Contains(urls[2], "30-de-dezembro-5-de-janeiro-na-") {
		t.Errorf("third candidate = %q, expected no year suffix on either token", urls[2])
	}
}

func TestCandidatesAreOrderedAndDistinct(t *testing.T) {
	week := weekOf(t, 2020, time.May, 4)

	urls := Candidates(DefaultBaseURL, week)
	seen := make(map[string]bool)
	for _, u := range urls {
		if seen[u] {
			t.Errorf("duplicate candidate %q", u)
		}
		seen[u] = true
	}
}

func TestCandidatesPercentEncoding(t *testing.T) {
	week := weekOf(t, 2021, time.March, 10) // 8-14 March

	urls := Candidates(DefaultBaseURL, week)

	// the bucket label is accent-stripped, the day tokens are not
	if !strings.Contains(urls[0], "marco-abril-2021-mwb") {
		t.Errorf("primary candidate = %q, expected accent-free bucket label", urls[0])
	}
	if !strings.Contains(urls[0], "mar%C3%A7o") {
		t.Errorf("primary candidate = %q, expected percent-encoded month name", urls[0])
	}
	if !strings.Contains(urls[0], "Reuni%C3%A3o-Vida-e-Minist%C3%A9rio") {
		t.Errorf("primary candidate = %q, expected percent-encoded page title", urls[0])
	}
	if strings.ContainsAny(urls[0], "çãé") {
		t.Errorf("primary candidate = %q, raw accented characters must not appear", urls[0])
	}
}
