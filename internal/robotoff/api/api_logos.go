package api

import (
	"context"

	"github.com/AnotherFullstackDev/robotoff-ctl/internal/robotoff/api/logos"
)

// LoadLogo fetches a logo by id.
//
// The endpoint is undocumented upstream and the payload shape is not
// verified: see logos.Logo.Raw for the untouched response.
func (c *Client) LoadLogo(ctx context.Context, logoID string) (*logos.Logo, error) {
	return get[logos.Logo](ctx, c, request{
		path:       "/images/logos/{logoId}",
		pathParams: map[string]string{"logoId": logoID},
	})
}
