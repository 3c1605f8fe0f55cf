package finassist

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// DashboardRequest is the composite query behind the main dashboard view:
// one ticker, a chart window, the indicators to overlay, and which KPI
// groups to compute.
type DashboardRequest struct {
	Ticker       string      `json:"ticker"`
	Days         int         `json:"days"`
	Interval     string      `json:"interval"`
	Indicators   []Indicator `json:"indicators"`
	ChartType    string      `json:"chart_type"`
	KpiGroups    []string    `json:"kpi_groups"`
	KpiTimeframe string      `json:"kpi_timeframe"`
	UseCache     bool        `json:"use_cache"`
}

// Validate rejects requests the backend would bounce anyway.
func (r DashboardRequest) Validate() error {
	if r.Ticker == "" {
		return fmt.Errorf("dashboard request has no ticker")
	}
	if r.Days <= 0 {
		return fmt.Errorf("dashboard request days must be positive, got %d", r.Days)
	}
	for _, g := range r.KpiGroups {
		if !KnownGroup(g) {
			return fmt.Errorf("unknown KPI group %q, available: %v", g, KnownGroups())
		}
	}
	return nil
}

// DashboardData is the composite payload of POST /api/stocks/dashboard-data.
// Chart and KPI sections stay raw: their exact shape belongs to the backend
// and varies per indicator and group; values are dug out with JSONPath.
type DashboardData struct {
	ChartData   json.RawMessage `json:"chart_data"`
	KpiData     json.RawMessage `json:"kpi_data"`
	MarketHours json.RawMessage `json:"market_hours"`
	CompanyInfo json.RawMessage `json:"company_info"`
}

// Kpi evaluates a JSONPath expression against the KPI section, e.g.
// "$.price.current_price.value".
func (d DashboardData) Kpi(path string) (any, error) {
	return evalPath(d.KpiData, path)
}

// KpiGroup returns one group's metric map from the KPI section.
func (d DashboardData) KpiGroup(group string) (map[string]any, error) {
	v, err := evalPath(d.KpiData, "$."+group)
	if err != nil {
		return nil, fmt.Errorf("KPI group %q not in payload: %w", group, err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("KPI group %q is not an object: %v", group, v)
	}
	return m, nil
}

// LatestClose returns the close of the last chart point.
func (d DashboardData) LatestClose() (float64, error) {
	v, err := evalPath(d.ChartData, "$.points[-1:].close")
	if err != nil {
		return 0, fmt.Errorf("chart has no closing price: %w", err)
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("closing price is not a number: %v", v)
	}
	return f, nil
}

// MarketOpen reports the market_hours "is_open" flag.
func (d DashboardData) MarketOpen() bool {
	v, err := evalPath(d.MarketHours, "$.is_open")
	if err != nil {
		return false
	}
	open, _ := v.(bool)
	return open
}

// CompanyName returns the company_info display name, empty when absent.
func (d DashboardData) CompanyName() string {
	v, err := evalPath(d.CompanyInfo, "$.name")
	if err != nil {
		return ""
	}
	name, _ := v.(string)
	return name
}

// evalPath runs a JSONPath query over a raw section. The library sometimes
// answers with a one-element list instead of a scalar; keep the first.
func evalPath(raw json.RawMessage, path string) (any, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("section is empty")
	}
	var jobj any
	if err := json.Unmarshal(raw, &jobj); err != nil {
		return nil, fmt.Errorf("section is not valid JSON: %w", err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("path %q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	return jval, nil
}

// KpiRequest asks for KPI groups alone, without the chart.
type KpiRequest struct {
	Ticker    string   `json:"ticker"`
	Groups    []string `json:"kpi_groups"`
	Timeframe string   `json:"kpi_timeframe"`
	UseCache  bool     `json:"use_cache"`
}

// AnalyzeRequest asks for a chart analysis alone, without KPIs.
type AnalyzeRequest struct {
	Ticker     string      `json:"ticker"`
	Days       int         `json:"days"`
	Interval   string      `json:"interval"`
	Indicators []Indicator `json:"indicators"`
	ChartType  string      `json:"chart_type"`
}
