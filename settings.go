package finassist

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	chartSettingsFile  = "chart-settings.json"
	kpiPreferencesFile = "kpi-preferences.json"

	// chartDebounce coalesces the burst of writes produced while the user
	// is still adjusting chart knobs.
	chartDebounce = 500 * time.Millisecond
)

// ChartSettings is the persisted chart configuration.
type ChartSettings struct {
	Days         int         `json:"days"`
	Interval     string      `json:"interval"`
	ChartType    string      `json:"chartType"`
	Indicators   []Indicator `json:"indicators"`
	KpiTimeframe string      `json:"kpiTimeframe"`
	UseCache     bool        `json:"useCache"`
}

// DefaultChartSettings returns the configuration a fresh install shows.
func DefaultChartSettings() ChartSettings {
	return ChartSettings{
		Days:         10,
		Interval:     "1d",
		ChartType:    "candlestick",
		KpiTimeframe: "1d",
		UseCache:     true,
	}
}

// SettingsStore persists user preferences as JSON files in a settings
// folder. Reads fall back to defaults when a file is missing or corrupt;
// the user never loses the app over a bad preference file. Chart settings
// writes are debounced; KPI preferences are written on explicit save only.
type SettingsStore struct {
	dir      string
	debounce time.Duration

	mu           sync.Mutex
	timer        *time.Timer
	pendingChart *ChartSettings
}

// NewSettingsStore opens (and creates if needed) the settings folder.
func NewSettingsStore(dir string) (*SettingsStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create settings folder %q: %w", dir, err)
	}
	return &SettingsStore{dir: dir, debounce: chartDebounce}, nil
}

// ChartSettings reads the stored chart settings, defaulting when the file
// is absent or corrupt.
func (s *SettingsStore) ChartSettings() ChartSettings {
	var cs ChartSettings
	if !s.read(chartSettingsFile, &cs) {
		return DefaultChartSettings()
	}
	return cs
}

// KpiPreferences reads the stored KPI preferences, defaulting when the file
// is absent or corrupt. The order invariant is re-established on every load.
func (s *SettingsStore) KpiPreferences() KpiPreferences {
	var p KpiPreferences
	if !s.read(kpiPreferencesFile, &p) {
		return DefaultKpiPreferences()
	}
	return p.Normalize()
}

// SaveKpiPreferences writes the preferences immediately.
func (s *SettingsStore) SaveKpiPreferences(p KpiPreferences) error {
	return s.write(kpiPreferencesFile, p.Normalize())
}

// QueueChartSettings schedules a debounced write: only the last settings
// queued within the debounce window reach the disk.
func (s *SettingsStore) QueueChartSettings(cs ChartSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingChart = &cs
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, func() {
		if err := s.flushChart(); err != nil {
			log.Printf("chart settings write failed (ignored): %v", err)
		}
	})
}

// Flush writes any pending chart settings now. Call it before exiting.
func (s *SettingsStore) Flush() error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	return s.flushChart()
}

func (s *SettingsStore) flushChart() error {
	s.mu.Lock()
	pending := s.pendingChart
	s.pendingChart = nil
	s.mu.Unlock()
	if pending == nil {
		return nil
	}
	return s.write(chartSettingsFile, *pending)
}

// read reports whether the file existed and decoded cleanly. On false the
// caller must discard the value: a corrupt file may decode partially.
func (s *SettingsStore) read(name string, data any) bool {
	content, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(content, data); err != nil {
		log.Printf("settings file %q is corrupt, using defaults: %v", name, err)
		return false
	}
	return true
}

func (s *SettingsStore) write(name string, data any) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode settings %q: %w", name, err)
	}
	file := filepath.Join(s.dir, name)
	if err := os.WriteFile(file, content, 0644); err != nil {
		return fmt.Errorf("cannot write settings file %q: %w", file, err)
	}
	return nil
}
