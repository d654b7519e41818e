package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOutputName(t *testing.T) {
	tests := []struct {
		src, ext, want string
	}{
		{"-", ".css", "stdin.css"},
		{"", ".yaml", "stdin.yaml"},
		{filepath.Join("pages", "index.yaml"), ".css", "index.css"},
		{"classes.json", ".yaml", "classes.yaml"},
		{"page candidates.yaml", ".css", "page candidates.css"},
		{"..hidden.yaml", ".css", "hidden.css"},
		{"...yaml", ".css", "output.css"},
		{"bad\x01name.yaml", ".css", "badname.css"},
	}
	for _, tt := range tests {
		if got := OutputName(tt.src, tt.ext); got != tt.want {
			t.Errorf("OutputName(%q, %q) = %q, want %q", tt.src, tt.ext, got, tt.want)
		}
	}
}

func TestEnableColorOutput_NotTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if EnableColorOutput(f) {
		t.Error("regular file reported as color capable terminal")
	}
}
