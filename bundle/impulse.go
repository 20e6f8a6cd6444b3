package bundle

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ImpulseResponse describes one input WAV within a generator run.
type ImpulseResponse struct {
	Slug  string // branch identifier in the DSP source, f1..fN
	Path  string // source WAV path
	Title string // human-readable label, basename without extension
	Index int    // 1-based position among the supplied files
}

// Impulses assigns slugs, titles and dense 1-based indices to the given WAV
// paths in argument order. Index 0 is reserved for the pass-through "None"
// branch and is never backed by an impulse response.
func Impulses(paths []string) []ImpulseResponse {
	irs := make([]ImpulseResponse, len(paths))
	for i, p := range paths {
		base := filepath.Base(p)
		irs[i] = ImpulseResponse{
			Slug:  fmt.Sprintf("f%d", i+1),
			Path:  p,
			Title: strings.TrimSuffix(base, filepath.Ext(base)),
			Index: i + 1,
		}
	}
	return irs
}
