package bundle

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteReportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	rep := &Report{
		Name:      "myir",
		Title:     "My IR",
		URI:       Namespace + "myir",
		BundleDir: "out/myir.lv2",
		Files:     []string{"out/myir.lv2/myir.dsp"},
		Impulses: []ImpulseReport{
			{Slug: "f1", Title: "kick", Index: 1, Path: "kick.wav", Frames: 1024, Peak: 0.98},
		},
	}
	if err := WriteReport(path, rep); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	var got Report
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Name != rep.Name || got.URI != rep.URI {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if len(got.Impulses) != 1 || got.Impulses[0] != rep.Impulses[0] {
		t.Fatalf("impulses mismatch: %+v", got.Impulses)
	}
}
