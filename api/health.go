package api

import (
	"context"
	"encoding/json"
	"net/http"
)

// CheckHealth probes GET /api/health. It answers one question, "can the app
// talk to its backend right now": every failure mode, from a connection
// refusal to a well-formed body claiming anything but "healthy", is false.
func (c *Client) CheckHealth(ctx context.Context) bool {
	rsp, err := c.do(ctx, http.MethodGet, "/api/health", nil)
	if err != nil {
		return false
	}
	if !rsp.success() {
		return false
	}
	var payload struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(rsp.body, &payload); err != nil {
		c.log.Warn("health body is not JSON", "request_id", rsp.requestID, "cause", err)
		return false
	}
	return payload.Status == "healthy"
}
