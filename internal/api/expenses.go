package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/JolyGolfqw/CashControlFront/internal/core"
)

// ExpenseFilter narrows an expense listing. Zero-valued fields are omitted
// from the request.
type ExpenseFilter struct {
	CategoryID int64
	StartDate  string
	EndDate    string
	Limit      int
	Offset     int
}

func (f *ExpenseFilter) query() url.Values {
	query := url.Values{}
	if f == nil {
		return query
	}
	if f.CategoryID != 0 {
		query.Set("category_id", strconv.FormatInt(f.CategoryID, 10))
	}
	if f.StartDate != "" {
		query.Set("start_date", f.StartDate)
	}
	if f.EndDate != "" {
		query.Set("end_date", f.EndDate)
	}
	if f.Limit != 0 {
		query.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset != 0 {
		query.Set("offset", strconv.Itoa(f.Offset))
	}
	return query
}

// CreateExpenseInput is the body of an expense creation.
type CreateExpenseInput struct {
	CategoryID  int64       `json:"category_id"`
	Amount      core.Amount `json:"amount"`
	Description string      `json:"description,omitempty"`
	Date        string      `json:"date"`
}

// ListExpenses fetches expenses, optionally narrowed by filter.
func (c *Client) ListExpenses(ctx context.Context, filter *ExpenseFilter) ([]core.Expense, error) {
	var expenses []core.Expense
	if err := c.doJSON(ctx, http.MethodGet, "/expenses", filter.query(), nil, &expenses, true); err != nil {
		return nil, err
	}
	return expenses, nil
}

// GetExpense fetches a single expense by id.
func (c *Client) GetExpense(ctx context.Context, id int64) (*core.Expense, error) {
	var expense core.Expense
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/expenses/%d", id), nil, nil, &expense, true); err != nil {
		return nil, err
	}
	return &expense, nil
}

// CreateExpense records a new expense and returns the server's copy.
func (c *Client) CreateExpense(ctx context.Context, input CreateExpenseInput) (*core.Expense, error) {
	var expense core.Expense
	if err := c.doJSON(ctx, http.MethodPost, "/expenses", nil, input, &expense, true); err != nil {
		return nil, err
	}
	return &expense, nil
}

// UpdateExpense patches an expense and returns the server's copy.
func (c *Client) UpdateExpense(ctx context.Context, id int64, patch core.ExpensePatch) (*core.Expense, error) {
	var expense core.Expense
	if err := c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/expenses/%d", id), nil, patch, &expense, true); err != nil {
		return nil, err
	}
	return &expense, nil
}

// DeleteExpense removes an expense by id.
func (c *Client) DeleteExpense(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/expenses/%d", id), nil, nil, nil, true)
}
