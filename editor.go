package finassist

import (
	"fmt"
	"slices"
)

// Direction moves a group one slot within the order.
type Direction int

const (
	Up Direction = iota
	Down
)

// Editor is the staging area behind the KPI settings dialog. It copies the
// source preferences on open, applies edits locally, and only hands them
// back on Save. Closing without saving loses every staged edit: the next
// Open re-reads the source.
type Editor struct {
	source KpiPreferences
	staged KpiPreferences
	open   bool
}

// NewEditor creates an editor over the caller's current preferences.
func NewEditor(source KpiPreferences) *Editor {
	e := &Editor{source: source.Normalize()}
	e.Open()
	return e
}

// Open (re-)syncs the staging area from the source preferences.
func (e *Editor) Open() {
	e.staged = e.source.clone()
	e.open = true
}

// Staged returns the current staged preferences.
func (e *Editor) Staged() KpiPreferences { return e.staged.clone() }

// SelectView replaces the visible groups and their order with a named
// view's list. Selecting the already-active view is a no-op.
func (e *Editor) SelectView(view string) error {
	groups, ok := ViewGroups(view)
	if !ok {
		return fmt.Errorf("unknown view %q, available: %v", view, ViewNames())
	}
	e.staged.VisibleGroups = groups
	e.staged.GroupOrder = slices.Clone(groups)
	e.staged.ActiveView = view
	return nil
}

// Add appends a group to the visible set and to the end of the order.
// Adding an already-visible group changes nothing.
func (e *Editor) Add(group string) error {
	if !KnownGroup(group) {
		return fmt.Errorf("unknown KPI group %q, available: %v", group, KnownGroups())
	}
	if slices.Contains(e.staged.VisibleGroups, group) {
		return nil
	}
	e.staged.VisibleGroups = append(e.staged.VisibleGroups, group)
	e.staged.GroupOrder = append(e.staged.GroupOrder, group)
	e.staged.ActiveView = CustomView
	return nil
}

// Remove drops a group from both the visible set and the order. It reports
// whether anything was removed, so the consumer can clear any detail
// selection that pointed at the group.
func (e *Editor) Remove(group string) bool {
	i := slices.Index(e.staged.VisibleGroups, group)
	if i < 0 {
		return false
	}
	e.staged.VisibleGroups = slices.Delete(e.staged.VisibleGroups, i, i+1)
	if j := slices.Index(e.staged.GroupOrder, group); j >= 0 {
		e.staged.GroupOrder = slices.Delete(e.staged.GroupOrder, j, j+1)
	}
	e.staged.ActiveView = CustomView
	return true
}

// Move swaps a group with its neighbor in the order. Moving the first group
// up or the last group down changes nothing, not even the active view.
func (e *Editor) Move(group string, dir Direction) {
	order := e.staged.GroupOrder
	i := slices.Index(order, group)
	if i < 0 {
		return
	}
	j := i - 1
	if dir == Down {
		j = i + 1
	}
	if j < 0 || j >= len(order) {
		return
	}
	order[i], order[j] = order[j], order[i]
	e.staged.ActiveView = CustomView
}

// ToggleExpanded flips whether a group's card shows the full metric table.
func (e *Editor) ToggleExpanded(group string) {
	if i := slices.Index(e.staged.ExpandedGroups, group); i >= 0 {
		e.staged.ExpandedGroups = slices.Delete(e.staged.ExpandedGroups, i, i+1)
		return
	}
	e.staged.ExpandedGroups = append(e.staged.ExpandedGroups, group)
}

// Save re-enforces the order invariant, commits the staged preferences as
// the new source, closes the editor and returns the final object for the
// caller to persist.
func (e *Editor) Save() KpiPreferences {
	e.staged.GroupOrder = slices.DeleteFunc(e.staged.GroupOrder, func(g string) bool {
		return !slices.Contains(e.staged.VisibleGroups, g)
	})
	e.source = e.staged.clone()
	e.open = false
	return e.staged.clone()
}

// Cancel discards every staged edit and closes the editor.
func (e *Editor) Cancel() {
	e.staged = e.source.clone()
	e.open = false
}
