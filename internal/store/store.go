// Package store is the central client-side cache: per-resource values with
// loading flags, error values and fetch timestamps, optimistic local
// mutations, and a fixed freshness window that keeps unforced reads from
// hitting the network.
//
// Loads are not de-duplicated: two racing loads of the same resource may both
// fetch, and whichever response lands last wins. This is a known,
// deliberately accepted race.
package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/JolyGolfqw/CashControlFront/internal/api"
	"github.com/JolyGolfqw/CashControlFront/internal/core"
	"github.com/JolyGolfqw/CashControlFront/internal/log"
)

// DefaultTTL is the freshness window during which unforced loads are served
// from memory.
const DefaultTTL = 30 * time.Second

// Backend is the slice of the API client the store loads through.
// *api.Client satisfies it.
type Backend interface {
	ListExpenses(ctx context.Context, filter *api.ExpenseFilter) ([]core.Expense, error)
	ListCategories(ctx context.Context) ([]core.Category, error)
	CurrentBudget(ctx context.Context) (*core.CurrentBudget, error)
	Analytics(ctx context.Context, period core.AnalyticsPeriod, start, end string) ([]core.AnalyticsPoint, error)
	Statistics(ctx context.Context, period core.StatisticsPeriod) (*core.Statistics, error)
	ListRecurring(ctx context.Context) ([]core.RecurringExpense, error)
}

// State is a per-resource status snapshot. Flags are strictly
// resource-scoped; a budget failure never shadows an expense read.
type State struct {
	Loading   bool
	Err       error
	FetchedAt time.Time
}

// entry holds one resource's cached value and status. A zero fetchedAt means
// never fetched or invalidated.
type entry[T any] struct {
	value     T
	loading   bool
	err       error
	fetchedAt time.Time
}

func (e *entry[T]) state() State {
	return State{Loading: e.loading, Err: e.err, FetchedAt: e.fetchedAt}
}

// touch stamps the entry fresh and clears its loading flag, so an optimistic
// mutation is never shadowed by a late-arriving loading state.
func (e *entry[T]) touch(now time.Time) {
	e.fetchedAt = now
	e.loading = false
}

// Store caches the six remote resources. One Store is constructed at
// application start and shared by every consumer; all methods are safe for
// concurrent use.
type Store struct {
	mu  sync.Mutex
	api Backend
	ttl time.Duration
	now func() time.Time
	log *log.Logger

	expenses   entry[[]core.Expense]
	categories entry[[]core.Category]
	budget     entry[*core.CurrentBudget]
	analytics  entry[[]core.AnalyticsPoint]
	statistics entry[*core.Statistics]
	recurring  entry[[]core.RecurringExpense]
}

// New creates an empty store backed by the given API. A non-positive ttl
// falls back to DefaultTTL.
func New(backend Backend, ttl time.Duration, logger *log.Logger) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = log.New(log.Config{Component: log.ComponentStore})
	}
	return &Store{
		api: backend,
		ttl: ttl,
		now: time.Now,
		log: logger.WithComponent(log.ComponentStore),
	}
}

// freshLocked reports whether a resource fetched at t is still inside the
// freshness window. Callers hold s.mu.
func (s *Store) freshLocked(t time.Time) bool {
	return !t.IsZero() && s.now().Sub(t) < s.ttl
}

// Expenses returns the cached expense list. During an in-flight load the
// previous value is returned, never a placeholder.
func (s *Store) Expenses() []core.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.expenses.value)
}

func (s *Store) ExpensesState() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expenses.state()
}

// Categories returns the cached category list.
func (s *Store) Categories() []core.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.categories.value)
}

func (s *Store) CategoriesState() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.categories.state()
}

// Budget returns the cached current-budget response, nil when never loaded.
func (s *Store) Budget() *core.CurrentBudget {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.budget.value
}

func (s *Store) BudgetState() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.budget.state()
}

// Analytics returns the cached analytics series.
func (s *Store) Analytics() []core.AnalyticsPoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.analytics.value)
}

func (s *Store) AnalyticsState() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.analytics.state()
}

// Statistics returns the cached statistics snapshot, nil when never loaded.
func (s *Store) Statistics() *core.Statistics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statistics.value
}

func (s *Store) StatisticsState() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statistics.state()
}

// Recurring returns the cached recurring-expense list.
func (s *Store) Recurring() []core.RecurringExpense {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.recurring.value)
}

func (s *Store) RecurringState() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recurring.state()
}

// Invalidate operations zero the cache timestamp only; the value stays until
// the next load replaces it.

func (s *Store) InvalidateExpenses() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses.fetchedAt = time.Time{}
}

func (s *Store) InvalidateCategories() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories.fetchedAt = time.Time{}
}

func (s *Store) InvalidateBudget() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.budget.fetchedAt = time.Time{}
}

func (s *Store) InvalidateAnalytics() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analytics.fetchedAt = time.Time{}
}

func (s *Store) InvalidateStatistics() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statistics.fetchedAt = time.Time{}
}

func (s *Store) InvalidateRecurring() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recurring.fetchedAt = time.Time{}
}

// ClearAll resets every resource to its empty initial state. This is the
// sign-out path.
func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = entry[[]core.Expense]{}
	s.categories = entry[[]core.Category]{}
	s.budget = entry[*core.CurrentBudget]{}
	s.analytics = entry[[]core.AnalyticsPoint]{}
	s.statistics = entry[*core.Statistics]{}
	s.recurring = entry[[]core.RecurringExpense]{}
	s.log.Info("store cleared", log.FieldOperation, log.OpClear)
}
