// Package store persists scraped workbooks keyed by week. The contract is
// deliberately narrow: find by key, create-only store, delete by key, and a
// purge of every other week. Create never upserts; a duplicate-key failure
// means a concurrent scrape of the same week already won and callers should
// re-read instead of erroring.
package store
