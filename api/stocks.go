package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/nicolai5965/finassist"
)

// FetchDashboardData asks for the composite dashboard payload: chart, KPI
// groups, market hours and company info, in one round trip.
func (c *Client) FetchDashboardData(ctx context.Context, req finassist.DashboardRequest) finassist.Result[finassist.DashboardData] {
	if err := req.Validate(); err != nil {
		return finassist.Fail[finassist.DashboardData](req.Ticker, err.Error())
	}
	return call[finassist.DashboardData](c, ctx, http.MethodPost, "/api/stocks/dashboard-data", req, req.Ticker)
}

// FetchMarketHours asks for the current session state of a ticker's venue.
func (c *Client) FetchMarketHours(ctx context.Context, ticker string) finassist.Result[json.RawMessage] {
	payload := struct {
		Ticker string `json:"ticker"`
	}{ticker}
	return call[json.RawMessage](c, ctx, http.MethodPost, "/api/stocks/market-hours", payload, ticker)
}

// FetchCompanyInfo asks for the company profile behind a ticker.
func (c *Client) FetchCompanyInfo(ctx context.Context, ticker string) finassist.Result[json.RawMessage] {
	payload := struct {
		Ticker string `json:"ticker"`
	}{ticker}
	return call[json.RawMessage](c, ctx, http.MethodPost, "/api/stocks/company-info", payload, ticker)
}

// AnalyzeTicker asks for the chart analysis alone.
func (c *Client) AnalyzeTicker(ctx context.Context, req finassist.AnalyzeRequest) finassist.Result[json.RawMessage] {
	return call[json.RawMessage](c, ctx, http.MethodPost, "/api/stocks/analyze", req, req.Ticker)
}

// FetchKpiData asks for KPI groups alone.
func (c *Client) FetchKpiData(ctx context.Context, req finassist.KpiRequest) finassist.Result[json.RawMessage] {
	return call[json.RawMessage](c, ctx, http.MethodPost, "/api/stocks/kpi", req, req.Ticker)
}
