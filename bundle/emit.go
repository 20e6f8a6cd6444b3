package bundle

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

type artifact struct {
	name string
	body []byte
}

// templateData feeds all five artifact templates. Count, Steps, Branches and
// the filter list are all derived from the same impulse list, so the selector
// width, combiner width and parameter range cannot drift apart.
type templateData struct {
	Name      string
	Title     string
	URI       string
	MenuLabel string
	Branches  string
	Count     int // number of impulse responses, parameter maximum
	Steps     int // Count+1, selector/combiner width
	Impulses  []ImpulseResponse
	Filters   []filterData
}

type filterData struct {
	Slug         string
	Coefficients string
}

// Emit renders all five artifacts and writes them under <output>/<name>.lv2/.
// Everything is rendered in memory before any filesystem mutation, so an
// invalid config or render error leaves no partial bundle behind. A write
// error stops subsequent writes without rolling back earlier ones. Existing
// artifacts are overwritten; re-running with identical inputs produces
// byte-identical files.
func Emit(cfg Config, irs []ImpulseResponse, seqs [][]float32) ([]string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(seqs) != len(irs) {
		return nil, fmt.Errorf("have %d impulse responses but %d sample sequences", len(irs), len(seqs))
	}

	arts, err := render(cfg, irs, seqs)
	if err != nil {
		return nil, err
	}

	dir := cfg.BundleDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	written := make([]string, 0, len(arts))
	for _, a := range arts {
		path := filepath.Join(dir, a.name)
		if err := os.WriteFile(path, a.body, 0o644); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

func render(cfg Config, irs []ImpulseResponse, seqs [][]float32) ([]artifact, error) {
	filters := make([]filterData, len(irs))
	for i, ir := range irs {
		filters[i] = filterData{Slug: ir.Slug, Coefficients: formatCoefficients(seqs[i])}
	}
	data := templateData{
		Name:      cfg.Name,
		Title:     cfg.Title,
		URI:       cfg.URI(),
		MenuLabel: menuLabel(irs),
		Branches:  branchList(irs),
		Count:     len(irs),
		Steps:     len(irs) + 1,
		Impulses:  irs,
		Filters:   filters,
	}

	specs := []struct {
		name string
		tmpl *template.Template
	}{
		{cfg.Name + ".dsp", dspTmpl},
		{"manifest.ttl", manifestTmpl},
		{cfg.Name + ".ttl", portsTmpl},
		{"modgui.ttl", modguiTmpl},
		{"Makefile", makefileTmpl},
	}
	arts := make([]artifact, 0, len(specs))
	for _, s := range specs {
		var buf bytes.Buffer
		if err := s.tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("render %s: %w", s.name, err)
		}
		arts = append(arts, artifact{name: s.name, body: buf.Bytes()})
	}
	return arts, nil
}
