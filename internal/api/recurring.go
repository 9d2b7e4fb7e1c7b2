package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/JolyGolfqw/CashControlFront/internal/core"
)

// CreateRecurringInput is the body of a recurring-expense creation.
// DayOfMonth applies to monthly and yearly schedules, DayOfWeek to weekly.
type CreateRecurringInput struct {
	CategoryID  int64               `json:"category_id"`
	Amount      core.Amount         `json:"amount"`
	Description string              `json:"description,omitempty"`
	Type        core.RecurrenceType `json:"type"`
	DayOfMonth  *int                `json:"day_of_month,omitempty"`
	DayOfWeek   *int                `json:"day_of_week,omitempty"`
}

// ListRecurring fetches the user's recurring expenses, scoped by the
// token-derived user id when one is available.
func (c *Client) ListRecurring(ctx context.Context) ([]core.RecurringExpense, error) {
	var items []core.RecurringExpense
	if err := c.doJSON(ctx, http.MethodGet, "/recurring-expenses", c.userIDQuery(), nil, &items, true); err != nil {
		return nil, err
	}
	return items, nil
}

// ListActiveRecurring fetches only the active recurring expenses.
func (c *Client) ListActiveRecurring(ctx context.Context) ([]core.RecurringExpense, error) {
	var items []core.RecurringExpense
	if err := c.doJSON(ctx, http.MethodGet, "/recurring-expenses/active", c.userIDQuery(), nil, &items, true); err != nil {
		return nil, err
	}
	return items, nil
}

// GetRecurring fetches a single recurring expense by id.
func (c *Client) GetRecurring(ctx context.Context, id int64) (*core.RecurringExpense, error) {
	var item core.RecurringExpense
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/recurring-expenses/%d", id), nil, nil, &item, true); err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateRecurring creates a recurring expense and returns the server's copy.
func (c *Client) CreateRecurring(ctx context.Context, input CreateRecurringInput) (*core.RecurringExpense, error) {
	var item core.RecurringExpense
	if err := c.doJSON(ctx, http.MethodPost, "/recurring-expenses", c.userIDQuery(), input, &item, true); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateRecurring patches a recurring expense and returns the server's copy.
func (c *Client) UpdateRecurring(ctx context.Context, id int64, patch core.RecurringExpensePatch) (*core.RecurringExpense, error) {
	var item core.RecurringExpense
	if err := c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/recurring-expenses/%d", id), nil, patch, &item, true); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteRecurring removes a recurring expense by id.
func (c *Client) DeleteRecurring(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/recurring-expenses/%d", id), nil, nil, nil, true)
}

// ActivateRecurring re-enables a recurring expense.
func (c *Client) ActivateRecurring(ctx context.Context, id int64) (*core.RecurringExpense, error) {
	var item core.RecurringExpense
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/recurring-expenses/%d/activate", id), nil, nil, &item, true); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeactivateRecurring pauses a recurring expense.
func (c *Client) DeactivateRecurring(ctx context.Context, id int64) (*core.RecurringExpense, error) {
	var item core.RecurringExpense
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/recurring-expenses/%d/deactivate", id), nil, nil, &item, true); err != nil {
		return nil, err
	}
	return &item, nil
}
