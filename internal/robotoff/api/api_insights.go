package api

import (
	"context"

	"github.com/AnotherFullstackDev/robotoff-ctl/internal/robotoff/api/insights"
)

func (c *Client) InsightDetail(ctx context.Context, id string) (*insights.Insight, error) {
	return get[insights.Insight](ctx, c, request{
		path:       "/insights/detail/{id}",
		pathParams: map[string]string{"id": id},
	})
}

// Insights lists insights matching query. Only the fields set on query are sent.
func (c *Client) Insights(ctx context.Context, query insights.Query) (*insights.Response, error) {
	return get[insights.Response](ctx, c, request{
		path:  "/insights",
		query: query.Values(),
	})
}
