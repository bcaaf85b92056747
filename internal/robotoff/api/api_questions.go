package api

import (
	"context"
	"strconv"

	"github.com/AnotherFullstackDev/robotoff-ctl/internal/robotoff/api/questions"
)

func (c *Client) QuestionsByProduct(ctx context.Context, code int64) (*questions.Response, error) {
	return get[questions.Response](ctx, c, request{
		path:       "/questions/{barcode}",
		pathParams: map[string]string{"barcode": strconv.FormatInt(code, 10)},
	})
}
