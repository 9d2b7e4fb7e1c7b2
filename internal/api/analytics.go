package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/JolyGolfqw/CashControlFront/internal/core"
)

// Analytics fetches the spending-over-time series for the given period and
// date range (inclusive, YYYY-MM-DD).
func (c *Client) Analytics(ctx context.Context, period core.AnalyticsPeriod, start, end string) ([]core.AnalyticsPoint, error) {
	query := url.Values{}
	query.Set("period", string(period))
	query.Set("start", start)
	query.Set("end", end)

	var points []core.AnalyticsPoint
	if err := c.doJSON(ctx, http.MethodGet, "/analytics", query, nil, &points, true); err != nil {
		return nil, err
	}
	return points, nil
}
