// Package core defines the domain model shared by the API clients and the
// cache store: expenses, categories, budgets, analytics, statistics and
// recurring expenses, in the exact wire shapes the backend emits.
package core

import (
	"encoding/json"
)

// Category is a user-defined expense category.
type Category struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon,omitempty"`
}

// CategoryRef is the denormalized category snapshot embedded in expenses and
// recurring expenses.
type CategoryRef struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

// Ref returns the embeddable snapshot of c.
func (c Category) Ref() *CategoryRef {
	return &CategoryRef{ID: c.ID, Name: c.Name, Color: c.Color, Icon: c.Icon}
}

// Expense is a single recorded expense.
//
// The backend is inconsistent about the identifier casing ("ID" vs "id");
// encoding/json matches object keys case-insensitively, so both decode into
// the one ID field.
type Expense struct {
	ID          int64        `json:"id"`
	Amount      Amount       `json:"amount"`
	Description string       `json:"description"`
	Date        string       `json:"date"`
	CategoryID  int64        `json:"category_id"`
	Category    *CategoryRef `json:"category,omitempty"`
	CreatedAt   string       `json:"created_at,omitempty"`
}

// ExpensePatch carries the changed fields of a PATCH request or an optimistic
// merge. Nil fields are left untouched.
type ExpensePatch struct {
	CategoryID  *int64  `json:"category_id,omitempty"`
	Amount      *Amount `json:"amount,omitempty"`
	Description *string `json:"description,omitempty"`
	Date        *string `json:"date,omitempty"`
}

// CategoryPatch carries the changed fields of a category update.
type CategoryPatch struct {
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
	Icon  *string `json:"icon,omitempty"`
}

// Budget is a monthly spending limit.
type Budget struct {
	ID        int64  `json:"id"`
	Amount    Amount `json:"amount"`
	Month     int    `json:"month"`
	Year      int    `json:"year"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// BudgetPatch carries the changed fields of a budget update.
type BudgetPatch struct {
	Amount *Amount `json:"amount,omitempty"`
	Month  *int    `json:"month,omitempty"`
	Year   *int    `json:"year,omitempty"`
}

// BudgetStatus is the server-computed state of the current period's budget.
type BudgetStatus struct {
	Budget      Budget  `json:"budget"`
	Spent       Amount  `json:"spent"`
	Remaining   Amount  `json:"remaining"`
	Percentage  float64 `json:"percentage"`
	IsExceeded  bool    `json:"is_exceeded"`
	IsNearLimit bool    `json:"is_near_limit"`
}

// CurrentBudget is the "current budget" response: either the {"empty":true}
// sentinel meaning no budget is configured for the period, or a full status.
// The two stay distinguishable across a JSON round trip.
type CurrentBudget struct {
	Empty  bool
	Status *BudgetStatus
}

func (c *CurrentBudget) UnmarshalJSON(data []byte) error {
	var probe struct {
		Empty bool `json:"empty"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	if probe.Empty {
		c.Empty = true
		c.Status = nil
		return nil
	}
	var status BudgetStatus
	if err := json.Unmarshal(data, &status); err != nil {
		return err
	}
	c.Empty = false
	c.Status = &status
	return nil
}

func (c CurrentBudget) MarshalJSON() ([]byte, error) {
	if c.Empty {
		return json.Marshal(struct {
			Empty bool `json:"empty"`
		}{Empty: true})
	}
	return json.Marshal(c.Status)
}

// AnalyticsPeriod is the grouping granularity of an analytics query.
type AnalyticsPeriod string

const (
	AnalyticsDay   AnalyticsPeriod = "day"
	AnalyticsWeek  AnalyticsPeriod = "week"
	AnalyticsMonth AnalyticsPeriod = "month"
)

// AnalyticsPoint is one bucket of the spending-over-time series.
type AnalyticsPoint struct {
	Date  string `json:"date"`
	Total Amount `json:"total"`
	Count int    `json:"count"`
}

// StatisticsPeriod is the window of a statistics query.
type StatisticsPeriod string

const (
	StatisticsDay   StatisticsPeriod = "day"
	StatisticsWeek  StatisticsPeriod = "week"
	StatisticsMonth StatisticsPeriod = "month"
	StatisticsYear  StatisticsPeriod = "year"
)

// CategoryStat is one row of the per-category spending breakdown.
type CategoryStat struct {
	CategoryID    int64   `json:"category_id"`
	CategoryName  string  `json:"category_name"`
	CategoryColor string  `json:"category_color"`
	TotalAmount   Amount  `json:"total_amount"`
	Percentage    float64 `json:"percentage"`
}

// Statistics is the wholesale-recomputed spending snapshot.
type Statistics struct {
	TotalAmount Amount         `json:"total_amount"`
	ByCategory  []CategoryStat `json:"by_category"`
}

// RecurrenceType is how often a recurring expense fires.
type RecurrenceType string

const (
	RecurDaily   RecurrenceType = "daily"
	RecurWeekly  RecurrenceType = "weekly"
	RecurMonthly RecurrenceType = "monthly"
	RecurYearly  RecurrenceType = "yearly"
)

// RecurringExpense is a scheduled charge. DayOfMonth applies to monthly and
// yearly schedules, DayOfWeek to weekly ones.
type RecurringExpense struct {
	ID          int64          `json:"id"`
	UserID      int64          `json:"user_id,omitempty"`
	CategoryID  int64          `json:"category_id"`
	Amount      Amount         `json:"amount"`
	Description string         `json:"description"`
	Type        RecurrenceType `json:"type"`
	DayOfMonth  *int           `json:"day_of_month,omitempty"`
	DayOfWeek   *int           `json:"day_of_week,omitempty"`
	IsActive    bool           `json:"is_active"`
	NextDate    string         `json:"next_date,omitempty"`
	Category    *CategoryRef   `json:"category,omitempty"`
	CreatedAt   string         `json:"created_at,omitempty"`
	UpdatedAt   string         `json:"updated_at,omitempty"`
}

// RecurringExpensePatch carries the changed fields of a recurring-expense
// update.
type RecurringExpensePatch struct {
	CategoryID  *int64          `json:"category_id,omitempty"`
	Amount      *Amount         `json:"amount,omitempty"`
	Description *string         `json:"description,omitempty"`
	Type        *RecurrenceType `json:"type,omitempty"`
	DayOfMonth  *int            `json:"day_of_month,omitempty"`
	DayOfWeek   *int            `json:"day_of_week,omitempty"`
	IsActive    *bool           `json:"is_active,omitempty"`
}
