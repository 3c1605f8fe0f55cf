// Package cmd implements the CLI application around the financial
// assistant backend.
package cmd

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/nicolai5965/finassist"
	"github.com/nicolai5965/finassist/api"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the selected one.
func Register(c *subcommands.Commander) {
	c.Register(&dashboardCmd{}, "stocks")
	c.Register(&analyzeCmd{}, "stocks")
	c.Register(&companyCmd{}, "stocks")
	c.Register(&hoursCmd{}, "stocks")
	c.Register(&watchCmd{}, "stocks")

	c.Register(&tradeAddCmd{}, "journal")
	c.Register(&tradesCmd{}, "journal")
	c.Register(&statsCmd{}, "journal")

	c.Register(&kpiCmd{}, "preferences")

	c.Register(&healthCmd{}, "misc")
	c.Register(&assistCmd{}, "misc")
	c.Register(&topicCmd{}, "misc")
}

// as a CLI application the lifecycle is short, global flags are fine here.

var apiURL = flag.String("api-url", "", "Backend base URL. Defaults to the "+api.EnvBaseURL+" environment variable, then "+api.DefaultBaseURL+".")
var settingsPath = flag.String("settings-dir", defaultSettingsDir(), "Folder holding chart settings and KPI preferences")
var verbose = flag.Bool("v", false, "Log every backend request to stderr")

func defaultSettingsDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "finassist")
	}
	return ".finassist"
}

// NewClient builds the backend client with the app's logging configuration.
func NewClient() *api.Client {
	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return api.New(*apiURL, api.WithLogger(logger))
}

// OpenSettings opens the settings folder, creating it on first run.
func OpenSettings() (*finassist.SettingsStore, error) {
	return finassist.NewSettingsStore(*settingsPath)
}

// render pretty-prints markdown for the terminal, falling back to the raw
// markdown when the terminal cannot be styled.
func render(markdown string) string {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return markdown
	}
	out, err := r.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}

// printJSON pretty-prints a raw backend payload.
func printJSON(raw json.RawMessage) {
	fmt.Println(indentJSON(raw))
}

// indentJSON re-indents a payload, passing it through verbatim when it does
// not parse.
func indentJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

// indicatorsFlag collects repeated -indicator flags. Each value is either a
// bare name ("SMA") or the JSON object form ({"name":"SMA","window":20}).
type indicatorsFlag []finassist.Indicator

func (f *indicatorsFlag) String() string {
	parts := make([]string, len(*f))
	for i, in := range *f {
		parts[i] = in.String()
	}
	return strings.Join(parts, ",")
}

func (f *indicatorsFlag) Set(s string) error {
	var in finassist.Indicator
	if strings.HasPrefix(strings.TrimSpace(s), "{") {
		if err := json.Unmarshal([]byte(s), &in); err != nil {
			return err
		}
	} else {
		in = finassist.SimpleIndicator(s)
	}
	*f = append(*f, in)
	return nil
}
