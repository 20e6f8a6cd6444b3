package bundle

import (
	"fmt"
	"strconv"
	"strings"
)

// formatCoefficients renders a FIR coefficient vector as a comma-separated
// literal list. FormatFloat with precision -1 picks the shortest decimal
// that round-trips to the same float32, so identical inputs always render
// identical text.
func formatCoefficients(samples []float32) string {
	var b strings.Builder
	for i, v := range samples {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 32))
	}
	return b.String()
}

// menuLabel renders the selector widget label: 'None':0 followed by one
// 'title':index entry per impulse response, joined by ';'.
func menuLabel(irs []ImpulseResponse) string {
	parts := make([]string, 0, len(irs)+1)
	parts = append(parts, "'None':0")
	for _, ir := range irs {
		parts = append(parts, fmt.Sprintf("'%s':%d", ir.Title, ir.Index))
	}
	return fmt.Sprintf("ir[style:menu{%s}]", strings.Join(parts, ";"))
}

// branchList renders the parallel branch tuple between selector and combiner:
// the identity pass-through first, then one filter per impulse response.
func branchList(irs []ImpulseResponse) string {
	parts := make([]string, 0, len(irs)+1)
	parts = append(parts, "_")
	for _, ir := range irs {
		parts = append(parts, ir.Slug)
	}
	return strings.Join(parts, ", ")
}
