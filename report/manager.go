package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ErrReportExists is returned by Save when the run id is already on disk
var ErrReportExists = errors.New("report already exists")

// Manager handles save/load of run reports under one directory
type Manager struct {
	basePath string
}

// NewManager creates a manager with the given base directory
func NewManager(basePath string) *Manager {
	return &Manager{basePath: basePath}
}

// FilePath returns the path of a report file
func (m *Manager) FilePath(runID string) string {
	return filepath.Join(m.basePath, runID+".toml")
}

// PlotPath returns the path of a convergence plot
func (m *Manager) PlotPath(runID string) string {
	return filepath.Join(m.basePath, runID+".png")
}

// Exists checks if a report file exists
func (m *Manager) Exists(runID string) bool {
	_, err := os.Stat(m.FilePath(runID))
	return err == nil
}

// Save writes the report to disk
func (m *Manager) Save(r *Report) error {
	if r.RunID == "" {
		return fmt.Errorf("save report: empty run id")
	}
	if m.Exists(r.RunID) {
		return fmt.Errorf("save report %s: %w", r.RunID, ErrReportExists)
	}
	if err := os.MkdirAll(m.basePath, 0755); err != nil {
		return fmt.Errorf("save report %s: %w", r.RunID, err)
	}

	f, err := os.Create(m.FilePath(r.RunID))
	if err != nil {
		return fmt.Errorf("save report %s: %w", r.RunID, err)
	}

	if err := toml.NewEncoder(f).Encode(r); err != nil {
		f.Close()
		return fmt.Errorf("save report %s: %w", r.RunID, err)
	}
	return f.Close()
}

// Load reads a report from disk
func (m *Manager) Load(runID string) (*Report, error) {
	var r Report
	if _, err := toml.DecodeFile(m.FilePath(runID), &r); err != nil {
		return nil, fmt.Errorf("load report %s: %w", runID, err)
	}
	return &r, nil
}

// SavePlot renders the convergence curve next to the report and returns its path
func (m *Manager) SavePlot(r *Report) (string, error) {
	if err := os.MkdirAll(m.basePath, 0755); err != nil {
		return "", fmt.Errorf("plot report %s: %w", r.RunID, err)
	}
	path := m.PlotPath(r.RunID)
	if err := PlotCurve(r.Curve, path); err != nil {
		return "", fmt.Errorf("plot report %s: %w", r.RunID, err)
	}
	return path, nil
}
