package workbook

import (
	"fmt"
	"time"
)

// Week is one ISO week, Monday through Sunday, in the engine's zone.
type Week struct {
	Start time.Time
	End   time.Time
}

// Key returns the canonical cache identity for the week, "DD/MM-DD/MM".
func (w Week) Key() string {
	return fmt.Sprintf("%s-%s", w.Start.Format("02/01"), w.End.Format("02/01"))
}

// Resolver computes scraping target weeks. The weekday abbreviations are
// explicit configuration rather than host locale: the roll-forward rule
// compares the current day's abbreviation against SkipDays, so deployments
// keep the publisher's wall-clock behavior regardless of server locale.
type Resolver struct {
	Location *time.Location
	Weekdays [7]string // abbreviations indexed by time.Weekday (Sunday first)
	SkipDays []string  // abbreviations on which "this week" rolls forward
}

// NewResolver returns a Resolver with the Brazilian Portuguese weekday
// abbreviations and the Friday/Saturday/Sunday roll-forward set.
func NewResolver(loc *time.Location) *Resolver {
	return &Resolver{
		Location: loc,
		Weekdays: [7]string{"dom", "seg", "ter", "qua", "qui", "sex", "sab"},
		SkipDays: []string{"sex", "sab", "dom"},
	}
}

// Resolve returns the target week for now. When allowSkip is set and now
// falls on a skip day (the meeting already happened), the following ISO week
// is returned instead.
func (r *Resolver) Resolve(now time.Time, allowSkip bool) Week {
	local := now.In(r.Location)
	if allowSkip && r.shouldSkip(local) {
		local = local.AddDate(0, 0, 7)
	}
	return r.WeekOf(local)
}

// WeekOf returns the ISO week containing date. No roll-forward is applied.
func (r *Resolver) WeekOf(date time.Time) Week {
	local := date.In(r.Location)
	daysFromMonday := (int(local.Weekday()) + 6) % 7
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, r.Location).
		AddDate(0, 0, -daysFromMonday)
	return Week{Start: start, End: start.AddDate(0, 0, 6)}
}

func (r *Resolver) shouldSkip(local time.Time) bool {
	abbrev := r.Weekdays[int(local.Weekday())]
	for _, day := range r.SkipDays {
		if day == abbrev {
			return true
		}
	}
	return false
}
