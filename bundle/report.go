package bundle

import (
	"encoding/json"
	"os"
)

// Report summarizes one generator run for machine consumption.
type Report struct {
	Name      string          `json:"name"`
	Title     string          `json:"title"`
	URI       string          `json:"uri"`
	BundleDir string          `json:"bundle_dir"`
	Files     []string        `json:"files"`
	Impulses  []ImpulseReport `json:"impulses"`
}

// ImpulseReport is the per-input entry in a run report.
type ImpulseReport struct {
	Slug   string  `json:"slug"`
	Title  string  `json:"title"`
	Index  int     `json:"index"`
	Path   string  `json:"path"`
	Frames int     `json:"frames"`
	Peak   float64 `json:"peak"`
}

// WriteReport writes the report as indented JSON.
func WriteReport(path string, rep *Report) error {
	b, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	return os.WriteFile(path, b, 0o644)
}
