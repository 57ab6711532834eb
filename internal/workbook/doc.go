// Package workbook defines the meeting workbook model and the pure logic
// around it: ISO week resolution for scraping targets, text normalization,
// and the classification of raw program fragments into assignable items.
//
// The model mirrors what the assignment sheet consumes: a workbook holds
// exactly four sections (intro, treasures, ministry, living) in fixed order,
// each with positioned items carrying the flags the form renderer needs
// (assignable, chairman-assigned, needs a pair).
package workbook
