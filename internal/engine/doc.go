// Package engine drives the resolve, fetch, extract, classify and store
// pipeline behind the single workbook entry point consumed by the rest of
// the application.
package engine
