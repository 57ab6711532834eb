package workbook

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Predicate decides an item property from the normalized full fragment.
// Predicates always receive the untruncated text: phrases like "oração" or
// "comentários finais" can sit past the point where the display text is cut.
type Predicate func(normalized string) bool

var (
	// pairPattern marks items rendered with a second participant slot.
	// noPairPattern overrides it: a talk or Bible reading never has a pair
	// even when the fragment superficially matches the positive trigger.
	pairPattern   = regexp.MustCompile(`(\(melhore licao)|(estudo biblico de congregacao)`)
	noPairPattern = regexp.MustCompile(`(discurso \()|(leitura da biblia \()`)

	colonQuotes   = regexp.MustCompile(`[:"']`)
	slugStrip     = regexp.MustCompile(`["'“”‘’:?()]+`)
	ordinalPrefix = regexp.MustCompile(`^\d+\.\s*`)
	whitespaceRun = regexp.MustCompile(`\s+`)

	curlyQuotes = strings.NewReplacer("“", `"`, "”", `"`)

	stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Normalize strips diacritics, lowercases, trims and collapses internal
// whitespace. The result is used only for pattern matching, never display.
func Normalize(text string) string {
	plain, _, err := transform.String(stripMarks, text)
	if err != nil {
		plain = text
	}
	plain = strings.ToLower(strings.TrimSpace(plain))
	return whitespaceRun.ReplaceAllString(plain, " ")
}

// ClassifyItem turns one raw page fragment into an Item. position is the
// 1-based slot within the owning section; the id carries it as a suffix
// because the base slug alone can repeat within a week (two Bible readings,
// for instance).
func ClassifyItem(fragment string, position int, isAssignable, chairmanAssigned Predicate) Item {
	raw := strings.TrimSpace(colonQuotes.ReplaceAllString(fragment, ""))
	normalized := Normalize(raw)

	return Item{
		ID:               fmt.Sprintf("%s_%d", Slug(raw), position),
		Text:             DisplayText(raw),
		Position:         position,
		HasPair:          pairPattern.MatchString(normalized) && !noPairPattern.MatchString(normalized),
		IsAssignable:     isAssignable(normalized),
		ChairmanAssigned: chairmanAssigned(normalized),
	}
}

// Slug derives the stable base identifier: the text through the first "(",
// or the whole text when there is none, with quotes and parentheses
// stripped, whitespace joined by underscores, diacritics removed and
// lowercased. A leading "3." style ordinal is dropped since ordering is
// already carried by the position suffix.
func Slug(text string) string {
	head := text
	if i := strings.Index(text, "("); i >= 0 {
		head = text[:i+1]
	}
	head = ordinalPrefix.ReplaceAllString(head, "")
	head = strings.TrimSpace(slugStrip.ReplaceAllString(head, ""))
	return Normalize(whitespaceRun.ReplaceAllString(head, "_"))
}

// DisplayText keeps the human-readable text through the first ")", or the
// whole text when there is none, with curly quotes straightened.
func DisplayText(text string) string {
	if i := strings.Index(text, ")"); i >= 0 {
		text = text[:i+1]
	}
	return curlyQuotes.Replace(text)
}
