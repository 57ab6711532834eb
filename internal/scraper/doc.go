// Package scraper acquires the weekly meeting workbook from the publisher's
// site: it derives the candidate page URLs for a target week, fetches them
// in a strict fallback order, and extracts the fixed four-section program
// out of the page HTML.
package scraper
