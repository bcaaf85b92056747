package api

import (
	"context"
	"net/http"

	"github.com/AnotherFullstackDev/robotoff-ctl/internal/robotoff/api/annotations"
)

// SubmitAnnotation posts the annotation form and hands back the whole result,
// status included. Callers decide what a non-2xx answer means for them, see
// MapResultToError.
func (c *Client) SubmitAnnotation(ctx context.Context, body annotations.Request) (*Result[annotations.Response], error) {
	return do[annotations.Response](ctx, c, request{
		method: http.MethodPost,
		path:   "/insights/annotate",
		form:   body.Form(),
	})
}
