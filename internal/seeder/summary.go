package seeder

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Summary reports what a run wrote.
type Summary struct {
	Seed     int64           `yaml:"seed"`
	Anchor   string          `yaml:"anchor"`
	Entities []EntitySummary `yaml:"entities"`
}

type EntitySummary struct {
	Name    string `yaml:"name"`
	Level   int    `yaml:"level"`
	Rows    int    `yaml:"rows"`
	Skipped int    `yaml:"skipped,omitempty"`
}

// Rows returns the number of rows written for entity.
func (s *Summary) Rows(entity string) int {
	for _, e := range s.Entities {
		if e.Name == entity {
			return e.Rows
		}
	}
	return 0
}

func (s *Summary) Total() int {
	total := 0
	for _, e := range s.Entities {
		total += e.Rows
	}
	return total
}

// Print writes the per-table row counts.
func (s *Summary) Print(w io.Writer) {
	fmt.Fprintln(w, color.CyanString("\n📊 Summary (seed %d, anchor %s)", s.Seed, s.Anchor))
	for _, e := range s.Entities {
		line := fmt.Sprintf("  %-28s %6d", e.Name, e.Rows)
		if e.Skipped > 0 {
			line += color.YellowString("  (%d duplicates skipped)", e.Skipped)
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, color.GreenString("  %-28s %6d", "total", s.Total()))
}

func (s *Summary) WriteYAML(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}
