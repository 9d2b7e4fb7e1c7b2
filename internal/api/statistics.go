package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/JolyGolfqw/CashControlFront/internal/core"
)

// Statistics fetches the per-category spending breakdown for the given
// period.
func (c *Client) Statistics(ctx context.Context, period core.StatisticsPeriod) (*core.Statistics, error) {
	query := url.Values{}
	query.Set("period", string(period))

	var stats core.Statistics
	if err := c.doJSON(ctx, http.MethodGet, "/statistics", query, nil, &stats, true); err != nil {
		return nil, err
	}
	return &stats, nil
}
