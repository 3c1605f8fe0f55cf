// Package renderer turns backend payloads into markdown for the terminal.
package renderer

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// formatValue renders one KPI metric value. Numbers get two decimals,
// everything else its plain form.
func formatValue(v any) string {
	switch n := v.(type) {
	case float64:
		return fmt.Sprintf("%.2f", n)
	case nil:
		return "-"
	default:
		return fmt.Sprintf("%v", n)
	}
}

// formatDecimal renders an exact decimal without trailing zeros.
func formatDecimal(d decimal.Decimal) string {
	return d.String()
}

// sortedKeys returns the map keys in a stable order.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
