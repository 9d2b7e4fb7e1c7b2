package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/JolyGolfqw/CashControlFront/internal/core"
)

// CreateBudgetInput is the body of a budget creation.
type CreateBudgetInput struct {
	Amount core.Amount `json:"amount"`
	Month  int         `json:"month"`
	Year   int         `json:"year"`
}

// ListBudgets fetches the user's budgets, scoped by the token-derived user id
// when one is available.
func (c *Client) ListBudgets(ctx context.Context) ([]core.Budget, error) {
	var budgets []core.Budget
	if err := c.doJSON(ctx, http.MethodGet, "/budgets", c.userIDQuery(), nil, &budgets, true); err != nil {
		return nil, err
	}
	return budgets, nil
}

// GetBudget fetches a single budget by id.
func (c *Client) GetBudget(ctx context.Context, id int64) (*core.Budget, error) {
	var budget core.Budget
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/budgets/%d", id), nil, nil, &budget, true); err != nil {
		return nil, err
	}
	return &budget, nil
}

// CurrentBudget fetches the current period's budget status, or the
// {empty:true} sentinel when none is configured.
func (c *Client) CurrentBudget(ctx context.Context) (*core.CurrentBudget, error) {
	var current core.CurrentBudget
	if err := c.doJSON(ctx, http.MethodGet, "/budgets/current", nil, nil, &current, true); err != nil {
		return nil, err
	}
	return &current, nil
}

// CreateBudget creates a budget. The endpoint requires an explicit user_id
// parameter, so the call fails locally with ErrNoUserID when the stored token
// does not decode to one.
func (c *Client) CreateBudget(ctx context.Context, input CreateBudgetInput) (*core.Budget, error) {
	id, ok := c.tokens.UserID()
	if !ok {
		return nil, ErrNoUserID
	}
	query := url.Values{}
	query.Set("user_id", strconv.FormatInt(id, 10))

	var budget core.Budget
	if err := c.doJSON(ctx, http.MethodPost, "/budgets", query, input, &budget, true); err != nil {
		return nil, err
	}
	return &budget, nil
}

// UpdateBudget patches a budget and returns the server's copy.
func (c *Client) UpdateBudget(ctx context.Context, id int64, patch core.BudgetPatch) (*core.Budget, error) {
	var budget core.Budget
	if err := c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/budgets/%d", id), nil, patch, &budget, true); err != nil {
		return nil, err
	}
	return &budget, nil
}

// DeleteBudget removes a budget by id.
func (c *Client) DeleteBudget(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/budgets/%d", id), nil, nil, nil, true)
}
