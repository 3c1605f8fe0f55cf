package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/nicolai5965/finassist"
)

// kpiCmd implements the "kpi" command: the preference editor over the
// persisted KPI selection. Edits are staged on an Editor and only written
// back when every requested operation succeeded.
type kpiCmd struct {
	view   string
	add    string
	remove string
	up     string
	down   string
	toggle string
	show   bool
	reset  bool
}

func (*kpiCmd) Name() string     { return "kpi" }
func (*kpiCmd) Synopsis() string { return "choose and order the dashboard's KPI groups" }
func (*kpiCmd) Usage() string {
	return `fa kpi [-view <name>] [-add <groups>] [-remove <groups>] [-up <group>] [-down <group>] [-toggle <group>] [-show] [-reset]

  Edits which KPI groups the dashboard shows and in what order. -add and
  -remove accept comma-separated lists. Without any edit flag, -show is
  implied.
`
}

func (c *kpiCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.view, "view", "", "Replace the selection with a named view: "+strings.Join(finassist.ViewNames(), ", "))
	f.StringVar(&c.add, "add", "", "Groups to append, comma separated")
	f.StringVar(&c.remove, "remove", "", "Groups to drop, comma separated")
	f.StringVar(&c.up, "up", "", "Group to move one slot earlier")
	f.StringVar(&c.down, "down", "", "Group to move one slot later")
	f.StringVar(&c.toggle, "toggle", "", "Group whose card to expand or collapse")
	f.BoolVar(&c.show, "show", false, "Print the current selection")
	f.BoolVar(&c.reset, "reset", false, "Discard stored preferences and return to the default view")
}

func (c *kpiCmd) editing() bool {
	return c.view != "" || c.add != "" || c.remove != "" || c.up != "" || c.down != "" || c.toggle != "" || c.reset
}

// apply runs the requested operations on the staged editor.
func (c *kpiCmd) apply(editor *finassist.Editor) error {
	if c.reset {
		if err := editor.SelectView("default"); err != nil {
			return err
		}
	}
	if c.view != "" {
		if err := editor.SelectView(c.view); err != nil {
			return err
		}
	}
	for _, g := range splitList(c.add) {
		if err := editor.Add(g); err != nil {
			return err
		}
	}
	for _, g := range splitList(c.remove) {
		if !editor.Remove(g) {
			fmt.Fprintf(os.Stderr, "Warning: group %q was not visible\n", g)
		}
	}
	if c.up != "" {
		editor.Move(c.up, finassist.Up)
	}
	if c.down != "" {
		editor.Move(c.down, finassist.Down)
	}
	if c.toggle != "" {
		editor.ToggleExpanded(c.toggle)
	}
	return nil
}

func (c *kpiCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open settings: %v\n", err)
		return subcommands.ExitFailure
	}

	prefs := store.KpiPreferences()
	if !c.editing() {
		printPreferences(prefs)
		return subcommands.ExitSuccess
	}

	editor := finassist.NewEditor(prefs)
	if err := c.apply(editor); err != nil {
		// Failed edits are discarded whole: the stored preferences are
		// whatever they were before the command ran.
		editor.Cancel()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	saved := editor.Save()
	if err := store.SaveKpiPreferences(saved); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save preferences: %v\n", err)
		return subcommands.ExitFailure
	}

	printPreferences(saved)
	return subcommands.ExitSuccess
}

func printPreferences(p finassist.KpiPreferences) {
	fmt.Printf("View: %s\n", p.ActiveView)
	for i, g := range p.GroupOrder {
		state := "collapsed"
		if p.Expanded(g) {
			state = "expanded"
		}
		fmt.Printf("%2d. %-12s (%s)\n", i+1, g, state)
	}
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
