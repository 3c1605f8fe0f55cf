package api

import (
	"context"
	"encoding/json"

	"github.com/nicolai5965/finassist"
)

// call is the shared shape of every service function: one bounded fetch,
// one envelope. Transport failures, non-2xx statuses and malformed bodies
// all collapse into a failed Result; nothing escapes as an error value.
func call[T any](c *Client, ctx context.Context, method, path string, payload any, identifier string) finassist.Result[T] {
	rsp, err := c.do(ctx, method, path, payload)
	if err != nil {
		return finassist.Fail[T](identifier, err.Error())
	}
	if !rsp.success() {
		return finassist.Fail[T](identifier, normalizeErrorMessage(rsp, identifier))
	}
	var data T
	if err := json.Unmarshal(rsp.body, &data); err != nil {
		c.log.Error("malformed response body",
			"request_id", rsp.requestID, "path", path, "cause", err)
		return finassist.Failf[T](identifier, "invalid response from server: %v", err)
	}
	return finassist.Ok(data)
}
