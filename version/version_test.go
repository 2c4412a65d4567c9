package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	if !strings.Contains(String(), "version: unknown") {
		t.Fatal("unexpected version string:", String())
	}
}

func TestLogFields(t *testing.T) {
	f := LogFields()
	if len(f) != 8 || len(f)%2 != 0 {
		t.Fatal("expected key-value pairs, got", f)
	}
	if f[6] != "Version" || f[7] != "unknown" {
		t.Fatal("unexpected version field", f[6], f[7])
	}
}
