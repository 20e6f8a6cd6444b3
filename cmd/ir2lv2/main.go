// Command ir2lv2 generates an LV2 convolution plugin bundle from a list of
// mono WAV impulse responses. Each input becomes one FIR branch of an
// N+1-way selector (branch 0 is a pass-through), and the bundle carries the
// Faust source, the LV2 manifests and a Makefile to build the binary.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/cwbudde/ir2lv2/bundle"
	"github.com/cwbudde/ir2lv2/wavio"
)

func main() {
	var cfg bundle.Config
	flag.StringVar(&cfg.Name, "name", "", "Plugin identifier (letters, digits, underscore; not starting with a digit)")
	flag.StringVar(&cfg.Title, "title", "", "Plugin display title (defaults to the name)")
	flag.StringVar(&cfg.OutputDir, "output", ".", "Directory the <name>.lv2 bundle is created under")
	flag.IntVar(&cfg.SampleLimit, "limit", 1024, "Max FIR coefficients per impulse response (0 = unlimited)")
	report := flag.String("report", "", "Optional path for a JSON run report")
	flag.Parse()

	if cfg.Title == "" {
		cfg.Title = cfg.Name
	}

	if err := run(cfg, flag.Args(), *report); err != nil {
		fmt.Fprintf(os.Stderr, "ir2lv2 error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg bundle.Config, paths []string, reportPath string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no impulse response WAV files given")
	}

	irs := bundle.Impulses(paths)
	seqs := make([][]float32, len(irs))
	for i, ir := range irs {
		samples, _, err := wavio.ReadSamples(ir.Path, cfg.SampleLimit)
		if err != nil {
			return err
		}
		seqs[i] = samples
	}

	files, err := bundle.Emit(cfg, irs, seqs)
	if err != nil {
		return err
	}

	for i, ir := range irs {
		fmt.Printf("IR %d %q (%s): %d frames, peak %.6f\n",
			ir.Index, ir.Title, ir.Path, len(seqs[i]), peak(seqs[i]))
	}
	for _, f := range files {
		fmt.Printf("Wrote %s\n", f)
	}

	if reportPath != "" {
		if err := bundle.WriteReport(reportPath, buildReport(cfg, irs, seqs, files)); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", reportPath)
	}
	return nil
}

func buildReport(cfg bundle.Config, irs []bundle.ImpulseResponse, seqs [][]float32, files []string) *bundle.Report {
	rep := &bundle.Report{
		Name:      cfg.Name,
		Title:     cfg.Title,
		URI:       cfg.URI(),
		BundleDir: cfg.BundleDir(),
		Files:     files,
	}
	for i, ir := range irs {
		rep.Impulses = append(rep.Impulses, bundle.ImpulseReport{
			Slug:   ir.Slug,
			Title:  ir.Title,
			Index:  ir.Index,
			Path:   ir.Path,
			Frames: len(seqs[i]),
			Peak:   peak(seqs[i]),
		})
	}
	return rep
}

// peak returns the maximum absolute sample value.
func peak(samples []float32) float64 {
	var p float64
	for _, s := range samples {
		if a := math.Abs(float64(s)); a > p {
			p = a
		}
	}
	return p
}
