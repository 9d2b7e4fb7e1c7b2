package store

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/JolyGolfqw/CashControlFront/internal/core"
	"github.com/JolyGolfqw/CashControlFront/internal/log"
)

// loadEntry drives one resource load. A fresh, unforced entry is a no-op with
// no side effects. Otherwise the entry is marked loading with its error
// cleared, the fetch runs outside the lock (reads during this window see the
// previous value), and on failure the previous value is retained.
func loadEntry[T any](s *Store, e *entry[T], force bool, resource string, fetch func() (T, error)) error {
	s.mu.Lock()
	if !force && s.freshLocked(e.fetchedAt) {
		s.mu.Unlock()
		return nil
	}
	e.loading = true
	e.err = nil
	s.mu.Unlock()

	value, err := fetch()

	s.mu.Lock()
	defer s.mu.Unlock()
	e.loading = false
	if err != nil {
		e.err = err
		s.log.Warn("resource load failed",
			log.FieldOperation, log.OpLoad,
			log.FieldResource, resource,
			log.FieldError, err)
		return err
	}
	e.value = value
	e.fetchedAt = s.now()
	return nil
}

// LoadExpenses fetches the expense list unless the cache is fresh.
func (s *Store) LoadExpenses(ctx context.Context, force bool) error {
	return loadEntry(s, &s.expenses, force, "expenses", func() ([]core.Expense, error) {
		return s.api.ListExpenses(ctx, nil)
	})
}

// LoadCategories fetches the category list unless the cache is fresh.
func (s *Store) LoadCategories(ctx context.Context, force bool) error {
	return loadEntry(s, &s.categories, force, "categories", func() ([]core.Category, error) {
		return s.api.ListCategories(ctx)
	})
}

// LoadBudget fetches the current budget unless the cache is fresh.
func (s *Store) LoadBudget(ctx context.Context, force bool) error {
	return loadEntry(s, &s.budget, force, "budget", func() (*core.CurrentBudget, error) {
		return s.api.CurrentBudget(ctx)
	})
}

// LoadAnalytics fetches the analytics series for the given period and range
// unless the cache is fresh. The cache does not key on the query: a fresh
// series from a different range is still served until forced or invalidated.
func (s *Store) LoadAnalytics(ctx context.Context, period core.AnalyticsPeriod, start, end string, force bool) error {
	return loadEntry(s, &s.analytics, force, "analytics", func() ([]core.AnalyticsPoint, error) {
		return s.api.Analytics(ctx, period, start, end)
	})
}

// LoadStatistics fetches the statistics snapshot unless the cache is fresh.
func (s *Store) LoadStatistics(ctx context.Context, period core.StatisticsPeriod, force bool) error {
	return loadEntry(s, &s.statistics, force, "statistics", func() (*core.Statistics, error) {
		return s.api.Statistics(ctx, period)
	})
}

// LoadRecurring fetches the recurring-expense list unless the cache is fresh.
func (s *Store) LoadRecurring(ctx context.Context, force bool) error {
	return loadEntry(s, &s.recurring, force, "recurring", func() ([]core.RecurringExpense, error) {
		return s.api.ListRecurring(ctx)
	})
}

// PreloadParams parameterizes the analytics and statistics queries of a
// dashboard preload.
type PreloadParams struct {
	AnalyticsPeriod  core.AnalyticsPeriod
	AnalyticsStart   string
	AnalyticsEnd     string
	StatisticsPeriod core.StatisticsPeriod
	Force            bool
}

// Preload warms the dashboard set (expenses, categories, budget, analytics,
// statistics) concurrently. No shared cancellation ties the loads together:
// each runs to completion even when a sibling fails, so per-resource errors
// are recorded as usual and the first one is returned.
func (s *Store) Preload(ctx context.Context, params PreloadParams) error {
	var g errgroup.Group

	g.Go(func() error { return s.LoadExpenses(ctx, params.Force) })
	g.Go(func() error { return s.LoadCategories(ctx, params.Force) })
	g.Go(func() error { return s.LoadBudget(ctx, params.Force) })
	g.Go(func() error {
		return s.LoadAnalytics(ctx, params.AnalyticsPeriod, params.AnalyticsStart, params.AnalyticsEnd, params.Force)
	})
	g.Go(func() error { return s.LoadStatistics(ctx, params.StatisticsPeriod, params.Force) })

	return g.Wait()
}
