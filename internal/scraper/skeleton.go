package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/edunsouza/meeting-workbook/internal/workbook"
)

var (
	openingOrPrayer = regexp.MustCompile(`(comentarios iniciais)|(oracao)`)
	openingComments = regexp.MustCompile(`comentarios iniciais`)
	studyGuideRef   = regexp.MustCompile(`\(melhore licao`)
	songOnly        = regexp.MustCompile(`cantico`)
	prayer          = regexp.MustCompile(`oracao`)
	closingComments = regexp.MustCompile(`comentarios finais`)
)

// sectionPlan binds one program section to its extraction strategy: a title
// query, an item selector, and the two predicates over normalized text that
// the classifier delegates to.
type sectionPlan struct {
	id               workbook.SectionID
	title            func(doc *goquery.Document) string
	itemsSelector    string
	isAssignable     workbook.Predicate
	chairmanAssigned workbook.Predicate
}

// newSkeleton returns a fresh plan slice for every call. Nothing extracted
// from one page may ever leak into another scrape, so no skeleton instance
// is shared across calls.
func newSkeleton() []sectionPlan {
	return []sectionPlan{
		{
			id:            workbook.SectionIntro,
			title:         introTitle,
			itemsSelector: "#p3,#p4",
			isAssignable: func(s string) bool {
				return openingOrPrayer.MatchString(s)
			},
			chairmanAssigned: func(s string) bool {
				return openingComments.MatchString(s)
			},
		},
		{
			id:            workbook.SectionTreasures,
			title:         shadedHeader("#section2"),
			itemsSelector: ".treasures + .pGroup > ul > li",
			isAssignable: func(string) bool {
				return true
			},
			chairmanAssigned: func(string) bool {
				return false
			},
		},
		{
			id:            workbook.SectionMinistry,
			title:         shadedHeader("#section3"),
			itemsSelector: ".ministry + .pGroup > ul > li",
			isAssignable: func(string) bool {
				return true
			},
			chairmanAssigned: func(s string) bool {
				// student parts reference a study guide lesson; anything
				// without one is introduced by the chairman
				return !studyGuideRef.MatchString(s)
			},
		},
		{
			id:            workbook.SectionLiving,
			title:         shadedHeader("#section4"),
			itemsSelector: ".christianLiving + .pGroup > ul > li",
			isAssignable: func(s string) bool {
				return !songOnly.MatchString(s) || prayer.MatchString(s)
			},
			chairmanAssigned: func(s string) bool {
				return closingComments.MatchString(s)
			},
		},
	}
}

// introTitle joins the week span and the scripture theme headers. Either
// side may be missing; a page with neither yields an empty title.
func introTitle(doc *goquery.Document) string {
	span := strings.TrimSpace(doc.Find("#p1").Text())
	theme := strings.TrimSpace(doc.Find("#p2").Text())
	if span == "" && theme == "" {
		return ""
	}
	return span + " | " + theme
}

func shadedHeader(sectionID string) func(doc *goquery.Document) string {
	return func(doc *goquery.Document) string {
		return strings.TrimSpace(doc.Find(sectionID + " .shadedHeader").Text())
	}
}
