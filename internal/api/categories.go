package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/JolyGolfqw/CashControlFront/internal/core"
)

// CreateCategoryInput is the body of a category creation.
type CreateCategoryInput struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

// ListCategories fetches the user's categories.
func (c *Client) ListCategories(ctx context.Context) ([]core.Category, error) {
	var categories []core.Category
	if err := c.doJSON(ctx, http.MethodGet, "/categories", nil, nil, &categories, true); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory creates a category and returns the server's copy.
func (c *Client) CreateCategory(ctx context.Context, input CreateCategoryInput) (*core.Category, error) {
	var category core.Category
	if err := c.doJSON(ctx, http.MethodPost, "/categories", nil, input, &category, true); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory patches a category and returns the server's copy.
func (c *Client) UpdateCategory(ctx context.Context, id int64, patch core.CategoryPatch) (*core.Category, error) {
	var category core.Category
	if err := c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/categories/%d", id), nil, patch, &category, true); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes a category by id.
func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/categories/%d", id), nil, nil, nil, true)
}
