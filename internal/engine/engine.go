package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/edunsouza/meeting-workbook/internal/scraper"
	"github.com/edunsouza/meeting-workbook/internal/store"
	"github.com/edunsouza/meeting-workbook/internal/workbook"
)

// Engine is the workbook acquisition pipeline. The expensive scrape runs at
// most once per week in the common case: the cache is consulted first, and
// losing a first-scrape race is absorbed by re-reading the winner's result.
type Engine struct {
	resolver *workbook.Resolver
	scraper  *scraper.Scraper
	store    store.Store
	log      *zap.Logger
	now      func() time.Time
}

// New wires an Engine. now defaults to time.Now and exists as a seam for
// tests.
func New(resolver *workbook.Resolver, sc *scraper.Scraper, st store.Store, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		resolver: resolver,
		scraper:  sc,
		store:    st,
		log:      log,
		now:      time.Now,
	}
}

// GetWorkbook returns the workbook for the requested week, scraping it when
// the cache has no entry. A nil target means "now" in the engine's zone;
// allowWeekSkip applies the Friday/Saturday/Sunday roll-forward and is
// ignored when an explicit target is given, which always resolves to the
// exact ISO week containing it.
func (e *Engine) GetWorkbook(ctx context.Context, target *time.Time, allowWeekSkip bool) (*workbook.Workbook, error) {
	week := e.resolveWeek(target, allowWeekSkip)

	cached, err := e.store.Find(ctx, week.Key())
	if err == nil {
		e.log.Debug("workbook cache hit", zap.String("week", week.Key()))
		return cached, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("reading workbook cache: %w", err)
	}

	wb, err := e.scraper.FetchWorkbook(ctx, week)
	if err != nil {
		return nil, err
	}

	if err := e.store.Create(ctx, wb); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			// a concurrent request scraped the same week first; its result
			// is equivalent, so return that instead of failing
			e.log.Info("absorbed duplicate scrape", zap.String("week", week.Key()))
			return e.store.Find(ctx, week.Key())
		}
		return nil, fmt.Errorf("storing workbook: %w", err)
	}

	if err := e.store.PurgeOthers(ctx, week.Key()); err != nil {
		e.log.Warn("purging stale workbooks failed", zap.Error(err))
	}

	e.log.Info("workbook scraped and stored", zap.String("week", week.Key()))
	return wb, nil
}

// Refresh forces a full replacement scrape for the resolved week, dropping
// any cached entry first. Items are never mutated in place; replacement is
// always whole-workbook.
func (e *Engine) Refresh(ctx context.Context, target *time.Time, allowWeekSkip bool) (*workbook.Workbook, error) {
	week := e.resolveWeek(target, allowWeekSkip)
	if err := e.store.Delete(ctx, week.Key()); err != nil {
		return nil, fmt.Errorf("dropping cached workbook: %w", err)
	}
	return e.GetWorkbook(ctx, target, allowWeekSkip)
}

func (e *Engine) resolveWeek(target *time.Time, allowWeekSkip bool) workbook.Week {
	if target != nil {
		return e.resolver.WeekOf(*target)
	}
	return e.resolver.Resolve(e.now(), allowWeekSkip)
}
