package finassist

import "slices"

// A KPI group is a named family of metrics the backend computes per ticker
// (current price and ranges, volume profile, volatility, momentum,
// fundamentals, sentiment). The dashboard shows a card per visible group,
// in the user's chosen order.

// CustomView is the ActiveView value once the user has diverged from every
// named view by adding, removing or reordering groups manually.
const CustomView = "custom"

// kpiViews are the named views offered by the preference editor. Each maps
// to the groups it shows, in the order it shows them.
var kpiViews = map[string][]string{
	"default":     {"price", "volume", "volatility"},
	"technical":   {"volatility", "momentum"},
	"fundamental": {"price", "fundamental", "sentiment"},
	"all":         {"price", "volume", "volatility", "momentum", "fundamental", "sentiment"},
}

// ViewGroups returns the group list of a named view, in its defined order.
func ViewGroups(view string) ([]string, bool) {
	groups, ok := kpiViews[view]
	if !ok {
		return nil, false
	}
	return slices.Clone(groups), true
}

// ViewNames returns the available view names, sorted.
func ViewNames() []string {
	names := make([]string, 0, len(kpiViews))
	for name := range kpiViews {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// KnownGroups returns every group any view can show.
func KnownGroups() []string {
	groups, _ := ViewGroups("all")
	return groups
}

// KnownGroup reports whether the backend knows this group tag.
func KnownGroup(group string) bool {
	return slices.Contains(kpiViews["all"], group)
}

// KpiPreferences is the persisted KPI configuration. GroupOrder is always a
// permutation of VisibleGroups: same members, no duplicates. ActiveView is a
// named view key only while VisibleGroups and GroupOrder exactly equal that
// view's group list; any manual edit degrades it to CustomView.
type KpiPreferences struct {
	VisibleGroups  []string `json:"visibleGroups"`
	ExpandedGroups []string `json:"expandedGroups"`
	ActiveView     string   `json:"activeView"`
	GroupOrder     []string `json:"groupOrder"`
}

// DefaultKpiPreferences returns the "default" view, fully expanded.
func DefaultKpiPreferences() KpiPreferences {
	groups, _ := ViewGroups("default")
	return KpiPreferences{
		VisibleGroups:  groups,
		ExpandedGroups: slices.Clone(groups),
		ActiveView:     "default",
		GroupOrder:     slices.Clone(groups),
	}
}

// Normalize re-establishes the GroupOrder/VisibleGroups invariant: order
// entries not visible anymore are dropped, visible groups missing from the
// order are appended, duplicates are removed. Used when loading persisted
// preferences that may predate the invariant.
func (p KpiPreferences) Normalize() KpiPreferences {
	out := p
	out.GroupOrder = nil
	seen := make(map[string]bool)
	for _, g := range p.GroupOrder {
		if !seen[g] && slices.Contains(p.VisibleGroups, g) {
			out.GroupOrder = append(out.GroupOrder, g)
			seen[g] = true
		}
	}
	for _, g := range p.VisibleGroups {
		if !seen[g] {
			out.GroupOrder = append(out.GroupOrder, g)
			seen[g] = true
		}
	}
	if out.ActiveView != CustomView {
		if groups, ok := ViewGroups(out.ActiveView); !ok || !slices.Equal(groups, out.GroupOrder) {
			out.ActiveView = CustomView
		}
	}
	return out
}

// Expanded reports whether a group's card shows its full metric table.
func (p KpiPreferences) Expanded(group string) bool {
	return slices.Contains(p.ExpandedGroups, group)
}

// clone returns a deep copy so staged edits never alias the source slices.
func (p KpiPreferences) clone() KpiPreferences {
	return KpiPreferences{
		VisibleGroups:  slices.Clone(p.VisibleGroups),
		ExpandedGroups: slices.Clone(p.ExpandedGroups),
		ActiveView:     p.ActiveView,
		GroupOrder:     slices.Clone(p.GroupOrder),
	}
}
