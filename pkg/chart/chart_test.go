package chart

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDerating(t *testing.T) {
	p, err := Derating(Options{TempRise: 10, Thickness: 0.035, MaxCurrent: 5, Points: 20})
	if err != nil {
		t.Fatalf("Derating: %v", err)
	}
	if p.X.Max < 5 {
		t.Errorf("current axis ends at %v", p.X.Max)
	}
	if p.Y.Min > 0 {
		t.Errorf("width axis starts at %v", p.Y.Min)
	}

	path := filepath.Join(t.TempDir(), "derating.png")
	if err := Save(p, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("empty chart file")
	}
}

func TestDeratingInvalid(t *testing.T) {
	tests := map[string]Options{
		"no current":   {TempRise: 10, Thickness: 0.035},
		"zero rise":    {Thickness: 0.035, MaxCurrent: 1},
		"no thickness": {TempRise: 10, MaxCurrent: 1},
	}
	for name, o := range tests {
		if _, err := Derating(o); err == nil {
			t.Errorf("%s: accepted", name)
		}
	}
}
