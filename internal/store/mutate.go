package store

import (
	"slices"

	"github.com/JolyGolfqw/CashControlFront/internal/core"
)

// Optimistic mutations mirror the expected post-write state so the UI feels
// instantaneous while the real write is in flight. They never call the
// network; callers drive the API write themselves, and on a failed write they
// resynchronize with a forced load rather than rolling back.

// categoryRefLocked resolves the embeddable snapshot for a category id from
// the currently loaded category set. Callers hold s.mu.
func (s *Store) categoryRefLocked(id int64) *core.CategoryRef {
	for _, category := range s.categories.value {
		if category.ID == id {
			return category.Ref()
		}
	}
	return nil
}

// AddExpense prepends an expense. When the loaded category set contains the
// expense's category, its snapshot is embedded; an unknown category id just
// leaves the snapshot off.
func (s *Store) AddExpense(expense core.Expense) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if expense.CategoryID != 0 {
		if ref := s.categoryRefLocked(expense.CategoryID); ref != nil {
			expense.Category = ref
		}
	}
	s.expenses.value = append([]core.Expense{expense}, s.expenses.value...)
	s.expenses.touch(s.now())
}

// RemoveExpense drops an expense by id. Removing an absent id is a no-op.
func (s *Store) RemoveExpense(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses.value = slices.DeleteFunc(s.expenses.value, func(e core.Expense) bool {
		return e.ID == id
	})
	s.expenses.touch(s.now())
}

// UpdateExpense merges a patch into the expense with the given id. A changed
// category re-resolves the embedded snapshot from the loaded category set.
func (s *Store) UpdateExpense(id int64, patch core.ExpensePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.expenses.value {
		if s.expenses.value[i].ID != id {
			continue
		}
		e := &s.expenses.value[i]
		if patch.Amount != nil {
			e.Amount = *patch.Amount
		}
		if patch.Description != nil {
			e.Description = *patch.Description
		}
		if patch.Date != nil {
			e.Date = *patch.Date
		}
		if patch.CategoryID != nil {
			e.CategoryID = *patch.CategoryID
			e.Category = s.categoryRefLocked(*patch.CategoryID)
		}
		break
	}
	s.expenses.touch(s.now())
}

// AddCategory appends a category.
func (s *Store) AddCategory(category core.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories.value = append(s.categories.value, category)
	s.categories.touch(s.now())
}

// RemoveCategory drops a category by id.
func (s *Store) RemoveCategory(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories.value = slices.DeleteFunc(s.categories.value, func(c core.Category) bool {
		return c.ID == id
	})
	s.categories.touch(s.now())
}

// UpdateCategory merges a patch into the category with the given id.
func (s *Store) UpdateCategory(id int64, patch core.CategoryPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories.value {
		if s.categories.value[i].ID != id {
			continue
		}
		c := &s.categories.value[i]
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.Color != nil {
			c.Color = *patch.Color
		}
		if patch.Icon != nil {
			c.Icon = *patch.Icon
		}
		break
	}
	s.categories.touch(s.now())
}

// AddRecurring prepends a recurring expense, embedding the category snapshot
// when the loaded category set contains it.
func (s *Store) AddRecurring(item core.RecurringExpense) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item.CategoryID != 0 {
		if ref := s.categoryRefLocked(item.CategoryID); ref != nil {
			item.Category = ref
		}
	}
	s.recurring.value = append([]core.RecurringExpense{item}, s.recurring.value...)
	s.recurring.touch(s.now())
}

// RemoveRecurring drops a recurring expense by id.
func (s *Store) RemoveRecurring(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recurring.value = slices.DeleteFunc(s.recurring.value, func(r core.RecurringExpense) bool {
		return r.ID == id
	})
	s.recurring.touch(s.now())
}

// UpdateRecurring merges a patch into the recurring expense with the given
// id, re-resolving the category snapshot when the category changes.
func (s *Store) UpdateRecurring(id int64, patch core.RecurringExpensePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.recurring.value {
		if s.recurring.value[i].ID != id {
			continue
		}
		r := &s.recurring.value[i]
		if patch.Amount != nil {
			r.Amount = *patch.Amount
		}
		if patch.Description != nil {
			r.Description = *patch.Description
		}
		if patch.Type != nil {
			r.Type = *patch.Type
		}
		if patch.DayOfMonth != nil {
			r.DayOfMonth = patch.DayOfMonth
		}
		if patch.DayOfWeek != nil {
			r.DayOfWeek = patch.DayOfWeek
		}
		if patch.IsActive != nil {
			r.IsActive = *patch.IsActive
		}
		if patch.CategoryID != nil {
			r.CategoryID = *patch.CategoryID
			r.Category = s.categoryRefLocked(*patch.CategoryID)
		}
		break
	}
	s.recurring.touch(s.now())
}

// SetBudget replaces the cached current-budget value, e.g. after a budget
// write confirmed by the server.
func (s *Store) SetBudget(budget *core.CurrentBudget) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.budget.value = budget
	s.budget.touch(s.now())
}
