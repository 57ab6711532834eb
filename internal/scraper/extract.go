package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/edunsouza/meeting-workbook/internal/workbook"
)

// buildSections walks the fixed skeleton over a parsed document and returns
// the four sections in document order, fully classified. A selector matching
// zero nodes is a valid outcome (some weeks omit a section's extra items),
// so the section simply carries no items.
func buildSections(doc *goquery.Document) []workbook.Section {
	plans := newSkeleton()
	sections := make([]workbook.Section, 0, len(plans))

	for i, plan := range plans {
		look := workbook.AppearanceOf(plan.id)
		section := workbook.Section{
			ID:        plan.id,
			Title:     plan.title(doc),
			Color:     look.Color,
			Tone:      look.Tone,
			ItemsTone: look.ItemsTone,
			Position:  i + 1,
		}

		position := 0
		doc.Find(plan.itemsSelector).Not(".noMarker").Each(func(_ int, sel *goquery.Selection) {
			fragment := strings.TrimSpace(strings.ReplaceAll(sel.Text(), "\n", " "))
			if fragment == "" {
				return
			}
			position++
			section.Items = append(section.Items,
				workbook.ClassifyItem(fragment, position, plan.isAssignable, plan.chairmanAssigned))
		})

		sections = append(sections, section)
	}
	return sections
}
