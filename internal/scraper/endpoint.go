package scraper

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/edunsouza/meeting-workbook/internal/workbook"
)

// DefaultBaseURL is the publication library root the weekly program pages
// hang off.
const DefaultBaseURL = "https://www.jw.org/pt/biblioteca/jw-apostila-do-mes"

// months are the Portuguese month names as printed inside the page URLs.
var months = [12]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// monthPair returns the bimonthly publication bucket holding m (jan-feb,
// mar-apr, ... nov-dec) as two lowercased accent-free names.
func monthPair(m time.Month) string {
	i := (int(m) - 1) / 2 * 2
	return workbook.Normalize(months[i] + "-" + months[i+1])
}

// dayToken renders one bound of the week range: the bare day number, or
// "D-de-month" when the month must be spelled out.
func dayToken(d time.Time, withMonth bool) string {
	if !withMonth {
		return strconv.Itoa(d.Day())
	}
	return fmt.Sprintf("%d-de-%s", d.Day(), months[d.Month()-1])
}

// Candidates returns the publisher URL guesses for week, most likely first.
// The publisher is inconsistent about year suffixes on the day tokens,
// especially near year boundaries, so three variants are emitted: the year
// suffixed to the "to" token (the usual format), to both tokens, and to
// neither. The "from" token spells out its month only when the week spans
// two months.
func Candidates(base string, week workbook.Week) []string {
	from := dayToken(week.Start, week.Start.Month() != week.End.Month())
	to := dayToken(week.End, true)
	year := week.Start.Year()
	publication := fmt.Sprintf("%s-%d-mwb", monthPair(week.Start.Month()), year)

	variants := [][2]string{
		{from, fmt.Sprintf("%s-de-%d", to, year)},
		{fmt.Sprintf("%s-de-%d", from, year), fmt.Sprintf("%s-de-%d", to, week.End.Year())},
		{from, to},
	}

	urls := make([]string, 0, len(variants))
	for _, v := range variants {
		program := fmt.Sprintf("Programa-da-semana-de-%s-%s-na-Apostila-da-Reunião-Vida-e-Ministério", v[0], v[1])
		urls = append(urls, strings.Join([]string{
			strings.TrimRight(base, "/"),
			url.PathEscape(publication),
			url.PathEscape(program),
		}, "/")+"/")
	}
	return urls
}
