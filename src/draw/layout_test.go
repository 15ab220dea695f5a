package draw

import (
	"chessview/src/base"
	"chessview/src/scene"
	"testing"
)

func TestScreenPosition(t *testing.T) {
	got := ScreenPosition(base.Point{X: 3, Y: 2}, ZLevelPieces)
	want := scene.Vec3{X: 3 * Resolution, Y: 2 * Resolution, Z: ZLevelPieces.Float()}
	if got != want {
		t.Errorf("ScreenPosition(3,2) = %+v, want %+v", got, want)
	}
	if got.Z <= ZLevelBoard.Float() || got.Z <= ZLevelHighlight.Float() {
		t.Errorf("pieces depth %v must be above board and highlight", got.Z)
	}
}

func TestBoardPoint(t *testing.T) {
	for y := 0; y < base.BoardSize; y++ {
		for x := 0; x < base.BoardSize; x++ {
			p := base.Point{X: x, Y: y}
			if got := BoardPoint(ScreenPosition(p, ZLevelBoard)); got != p {
				t.Errorf("BoardPoint(ScreenPosition(%v)) = %v", p, got)
			}
		}
	}
	if got := BoardPoint(scene.Vec3{X: 59.9, Y: 60}); got != (base.Point{X: 0, Y: 1}) {
		t.Errorf("BoardPoint inside cell = %v", got)
	}
	if got := BoardPoint(scene.Vec3{X: -1, Y: -60}); got != (base.Point{X: -1, Y: -1}) {
		t.Errorf("BoardPoint below origin = %v", got)
	}
}

func TestTileScreenSize(t *testing.T) {
	if s := TileScreenSize(); s.X != Resolution || s.Y != Resolution {
		t.Errorf("TileScreenSize() = %+v", s)
	}
}

func TestWindowSceneRoundTrip(t *testing.T) {
	const ox, oy = 130, 40
	tile := TileScreenSize()
	for y := 0; y < base.BoardSize; y++ {
		for x := 0; x < base.BoardSize; x++ {
			p := base.Point{X: x, Y: y}
			wx, wy := SceneToWindow(ScreenPosition(p, ZLevelPieces), tile.Y, ox, oy)
			// centre of the cell's first pixel
			if got := BoardPoint(WindowToScene(wx+0.5, wy+0.5, ox, oy)); got != p {
				t.Errorf("cell %v drawn at (%v,%v) picks back as %v", p, wx, wy, got)
			}
		}
	}
}

func TestWindowToSceneCorners(t *testing.T) {
	const ox, oy = 130, 40
	last := float64(BoardPixels()) - 0.5
	tests := []struct {
		px, py float64
		want   base.Point
	}{
		{ox + 0.5, oy + 0.5, base.Point{X: 0, Y: 7}},
		{ox + 0.5, oy + last, base.Point{X: 0, Y: 0}},
		{ox + last, oy + 0.5, base.Point{X: 7, Y: 7}},
		{ox + last, oy + last, base.Point{X: 7, Y: 0}},
	}
	for _, tt := range tests {
		if got := BoardPoint(WindowToScene(tt.px, tt.py, ox, oy)); got != tt.want {
			t.Errorf("WindowToScene(%v,%v) picks %v, want %v", tt.px, tt.py, got, tt.want)
		}
	}
	if x, y := SceneToWindow(scene.Vec3{}, Resolution, ox, oy); x != ox || y != oy+float64(BoardPixels()-Resolution) {
		t.Errorf("SceneToWindow(origin) = (%v,%v)", x, y)
	}
}
