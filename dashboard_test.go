package finassist

import (
	"encoding/json"
	"testing"
)

func sampleDashboard() DashboardData {
	return DashboardData{
		ChartData: json.RawMessage(`{
			"ticker": "AAPL",
			"points": [
				{"date": "2026-08-24", "open": 230.0, "close": 231.5},
				{"date": "2026-08-25", "open": 231.0, "close": 233.25}
			]
		}`),
		KpiData: json.RawMessage(`{
			"price": {"current_price": 233.25, "day_high": 234.1, "day_low": 229.8},
			"volume": {"latest": 51200000}
		}`),
		MarketHours: json.RawMessage(`{"is_open": true, "exchange": "NASDAQ"}`),
		CompanyInfo: json.RawMessage(`{"name": "Apple Inc.", "sector": "Technology"}`),
	}
}

func TestDashboardData_Kpi(t *testing.T) {
	data := sampleDashboard()

	v, err := data.Kpi("$.price.current_price")
	if err != nil {
		t.Fatalf("Kpi failed: %v", err)
	}
	if v != 233.25 {
		t.Errorf("current_price = %v, want 233.25", v)
	}

	if _, err := data.Kpi("$.momentum.rsi"); err == nil {
		t.Error("expected an error for a missing group")
	}
}

func TestDashboardData_KpiGroup(t *testing.T) {
	data := sampleDashboard()
	metrics, err := data.KpiGroup("price")
	if err != nil {
		t.Fatalf("KpiGroup failed: %v", err)
	}
	if len(metrics) != 3 {
		t.Errorf("price group has %d metrics, want 3", len(metrics))
	}
	if _, err := data.KpiGroup("sentiment"); err == nil {
		t.Error("expected an error for an absent group")
	}
}

func TestDashboardData_LatestClose(t *testing.T) {
	close, err := sampleDashboard().LatestClose()
	if err != nil {
		t.Fatalf("LatestClose failed: %v", err)
	}
	if close != 233.25 {
		t.Errorf("LatestClose = %v, want the last point's close 233.25", close)
	}

	empty := DashboardData{ChartData: json.RawMessage(`{"points": []}`)}
	if _, err := empty.LatestClose(); err == nil {
		t.Error("expected an error on an empty chart")
	}
}

func TestDashboardData_MarketOpenAndCompanyName(t *testing.T) {
	data := sampleDashboard()
	if !data.MarketOpen() {
		t.Error("MarketOpen = false, want true")
	}
	if got := data.CompanyName(); got != "Apple Inc." {
		t.Errorf("CompanyName = %q, want \"Apple Inc.\"", got)
	}

	var zero DashboardData
	if zero.MarketOpen() {
		t.Error("empty payload claims the market is open")
	}
	if zero.CompanyName() != "" {
		t.Error("empty payload has a company name")
	}
}

func TestDashboardRequest_Validate(t *testing.T) {
	valid := DashboardRequest{Ticker: "AAPL", Days: 10, KpiGroups: []string{"price"}}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	testCases := []struct {
		name string
		req  DashboardRequest
	}{
		{"no ticker", DashboardRequest{Days: 10}},
		{"no window", DashboardRequest{Ticker: "AAPL"}},
		{"unknown group", DashboardRequest{Ticker: "AAPL", Days: 10, KpiGroups: []string{"astrology"}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.req.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}
