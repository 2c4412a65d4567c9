package naming

import (
	"strings"
	"testing"
)

func TestOutputFilename(t *testing.T) {
	name, err := Output.Filename(map[string]float64{
		"density": 0.8,
		"vzero":   1e-2,
		"number":  1000,
	})
	if err != nil {
		t.Fatal(err)
	}
	// 0.8 -> k8.000, 1e-2 -> j1.000, 1000 -> o1.000
	expect := "out_Dk8.000_Vj1.000_No1.000.out"
	if name != expect {
		t.Fatalf("expected %q, got %q", expect, name)
	}
}

func TestFilenameMissingAttribute(t *testing.T) {
	_, err := Output.Filename(map[string]float64{
		"density": 0.8,
	})
	if err == nil {
		t.Fatal("expected error for missing attributes")
	}
	if !strings.Contains(err.Error(), "vzero") || !strings.Contains(err.Error(), "number") {
		t.Fatalf("error should report every missing attribute: %v", err)
	}
}

func TestFilenameUnencodableValue(t *testing.T) {
	_, err := Output.Filename(map[string]float64{
		"density": 0.8,
		"vzero":   -1,
		"number":  1000,
	})
	if err == nil {
		t.Fatal("expected error for unencodable value")
	}
	if !strings.Contains(err.Error(), "vzero") {
		t.Fatalf("error should name the bad attribute: %v", err)
	}
}

func TestWithExtension(t *testing.T) {
	img := Output.WithExtension(".eps")
	name, err := img.Filename(map[string]float64{
		"density": 0.8,
		"vzero":   1e-2,
		"number":  1000,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(name, ".eps") {
		t.Fatalf("expected .eps suffix, got %q", name)
	}
	if Output.Extension != ".out" {
		t.Fatal("WithExtension must not mutate the original standard")
	}
}
