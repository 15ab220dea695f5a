package gfont

import "testing"

func TestLoadFonts(t *testing.T) {
	f, err := LoadFonts()
	if err != nil {
		t.Fatal(err)
	}
	if f.Normal == nil || f.Bold == nil {
		t.Fatalf("faces not loaded: %+v", f)
	}
	if f.Bold.Metrics().Height <= f.Normal.Metrics().Height {
		t.Errorf("bold title face must be taller than the normal face")
	}
}

func TestPieceFace(t *testing.T) {
	face, err := PieceFace(60)
	if err != nil {
		t.Fatal(err)
	}
	if h := face.Metrics().Height.Ceil(); h < 25 || h > 60 {
		t.Errorf("piece face height = %d", h)
	}
}
