package finassist

import (
	"slices"
	"testing"
)

func defaultEditor(t *testing.T) *Editor {
	t.Helper()
	return NewEditor(DefaultKpiPreferences())
}

func TestEditor_MoveBoundariesAreNoOps(t *testing.T) {
	e := defaultEditor(t)
	before := e.Staged()

	e.Move(before.GroupOrder[0], Up)
	e.Move(before.GroupOrder[len(before.GroupOrder)-1], Down)

	after := e.Staged()
	if !slices.Equal(before.GroupOrder, after.GroupOrder) {
		t.Errorf("boundary moves changed the order: %v -> %v", before.GroupOrder, after.GroupOrder)
	}
	if after.ActiveView != before.ActiveView {
		t.Errorf("boundary moves changed the active view: %q -> %q", before.ActiveView, after.ActiveView)
	}
}

func TestEditor_MoveSwapsNeighbors(t *testing.T) {
	e := defaultEditor(t)
	order := e.Staged().GroupOrder // price, volume, volatility

	e.Move(order[1], Up)
	got := e.Staged()
	want := []string{order[1], order[0], order[2]}
	if !slices.Equal(got.GroupOrder, want) {
		t.Errorf("Move(%q, Up) = %v, want %v", order[1], got.GroupOrder, want)
	}
	if got.ActiveView != CustomView {
		t.Errorf("Move left ActiveView = %q, want %q", got.ActiveView, CustomView)
	}
}

func TestEditor_AddThenRemoveRoundTrips(t *testing.T) {
	e := defaultEditor(t)
	before := e.Staged()

	if err := e.Add("momentum"); err != nil {
		t.Fatalf("Add(momentum) failed: %v", err)
	}
	if !e.Remove("momentum") {
		t.Fatal("Remove(momentum) reported nothing removed")
	}

	after := e.Staged()
	if !slices.Equal(after.VisibleGroups, before.VisibleGroups) {
		t.Errorf("VisibleGroups = %v, want %v", after.VisibleGroups, before.VisibleGroups)
	}
	if !slices.Equal(after.GroupOrder, before.GroupOrder) {
		t.Errorf("GroupOrder = %v, want %v", after.GroupOrder, before.GroupOrder)
	}
	if after.ActiveView != CustomView {
		t.Errorf("ActiveView = %q, want %q", after.ActiveView, CustomView)
	}
}

func TestEditor_AddExistingIsNoOp(t *testing.T) {
	e := defaultEditor(t)
	before := e.Staged()

	if err := e.Add(before.VisibleGroups[0]); err != nil {
		t.Fatalf("Add of a visible group failed: %v", err)
	}
	after := e.Staged()
	if !slices.Equal(after.VisibleGroups, before.VisibleGroups) {
		t.Errorf("VisibleGroups = %v, want unchanged %v", after.VisibleGroups, before.VisibleGroups)
	}
	if after.ActiveView != before.ActiveView {
		t.Errorf("ActiveView = %q, want unchanged %q", after.ActiveView, before.ActiveView)
	}
}

func TestEditor_AddUnknownGroup(t *testing.T) {
	e := defaultEditor(t)
	if err := e.Add("astrology"); err == nil {
		t.Fatal("expected an error adding an unknown group")
	}
}

func TestEditor_RemoveAbsentIsNoOp(t *testing.T) {
	e := defaultEditor(t)
	before := e.Staged()
	if e.Remove("momentum") {
		t.Fatal("Remove of a hidden group reported a removal")
	}
	after := e.Staged()
	if after.ActiveView != before.ActiveView {
		t.Errorf("ActiveView = %q, want unchanged %q", after.ActiveView, before.ActiveView)
	}
}

func TestEditor_SelectViewThenSave(t *testing.T) {
	for _, view := range ViewNames() {
		t.Run(view, func(t *testing.T) {
			e := defaultEditor(t)
			if err := e.SelectView(view); err != nil {
				t.Fatalf("SelectView(%q) failed: %v", view, err)
			}
			saved := e.Save()

			want, _ := ViewGroups(view)
			if !slices.Equal(saved.GroupOrder, want) {
				t.Errorf("saved GroupOrder = %v, want the view's list %v", saved.GroupOrder, want)
			}
			if !slices.Equal(saved.VisibleGroups, want) {
				t.Errorf("saved VisibleGroups = %v, want %v", saved.VisibleGroups, want)
			}
			if saved.ActiveView != view {
				t.Errorf("saved ActiveView = %q, want %q", saved.ActiveView, view)
			}
		})
	}
}

func TestEditor_SelectUnknownView(t *testing.T) {
	e := defaultEditor(t)
	if err := e.SelectView("galactic"); err == nil {
		t.Fatal("expected an error selecting an unknown view")
	}
}

func TestEditor_CancelDiscardsEdits(t *testing.T) {
	source := DefaultKpiPreferences()
	e := NewEditor(source)

	if err := e.Add("momentum"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	e.Cancel()
	e.Open()

	got := e.Staged()
	if !slices.Equal(got.VisibleGroups, source.VisibleGroups) {
		t.Errorf("after Cancel+Open, VisibleGroups = %v, want the source %v", got.VisibleGroups, source.VisibleGroups)
	}
	if got.ActiveView != source.ActiveView {
		t.Errorf("after Cancel+Open, ActiveView = %q, want %q", got.ActiveView, source.ActiveView)
	}
}

func TestEditor_SaveEnforcesOrderInvariant(t *testing.T) {
	// A preferences object that drifted out of invariant: the order still
	// names a group no longer visible, and misses a visible one.
	drifted := KpiPreferences{
		VisibleGroups: []string{"price", "momentum"},
		ActiveView:    "default",
		GroupOrder:    []string{"price", "volume"},
	}
	e := NewEditor(drifted)

	saved := e.Save()
	want := []string{"price", "momentum"}
	if !slices.Equal(saved.GroupOrder, want) {
		t.Errorf("saved GroupOrder = %v, want normalized %v", saved.GroupOrder, want)
	}
	if saved.ActiveView != CustomView {
		t.Errorf("drifted preferences kept ActiveView = %q, want %q", saved.ActiveView, CustomView)
	}
}

func TestKpiPreferences_Normalize(t *testing.T) {
	testCases := []struct {
		name      string
		prefs     KpiPreferences
		wantOrder []string
		wantView  string
	}{
		{
			name:      "already consistent preset",
			prefs:     DefaultKpiPreferences(),
			wantOrder: []string{"price", "volume", "volatility"},
			wantView:  "default",
		},
		{
			name: "orphaned order entries dropped",
			prefs: KpiPreferences{
				VisibleGroups: []string{"price"},
				ActiveView:    CustomView,
				GroupOrder:    []string{"volume", "price"},
			},
			wantOrder: []string{"price"},
			wantView:  CustomView,
		},
		{
			name: "missing visible groups appended",
			prefs: KpiPreferences{
				VisibleGroups: []string{"price", "volume"},
				ActiveView:    CustomView,
				GroupOrder:    []string{"volume"},
			},
			wantOrder: []string{"volume", "price"},
			wantView:  CustomView,
		},
		{
			name: "duplicates removed",
			prefs: KpiPreferences{
				VisibleGroups: []string{"price", "volume"},
				ActiveView:    CustomView,
				GroupOrder:    []string{"price", "price", "volume"},
			},
			wantOrder: []string{"price", "volume"},
			wantView:  CustomView,
		},
		{
			name: "preset claim revoked when order diverged",
			prefs: KpiPreferences{
				VisibleGroups: []string{"volume", "price", "volatility"},
				ActiveView:    "default",
				GroupOrder:    []string{"volume", "price", "volatility"},
			},
			wantOrder: []string{"volume", "price", "volatility"},
			wantView:  CustomView,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.prefs.Normalize()
			if !slices.Equal(got.GroupOrder, tc.wantOrder) {
				t.Errorf("GroupOrder = %v, want %v", got.GroupOrder, tc.wantOrder)
			}
			if got.ActiveView != tc.wantView {
				t.Errorf("ActiveView = %q, want %q", got.ActiveView, tc.wantView)
			}
		})
	}
}
