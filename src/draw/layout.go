// Package draw holds the layout shared by every visual layer of the board.
package draw

import (
	"chessview/src/base"
	"chessview/src/scene"
)

// screen units per board cell
const Resolution float32 = 60

// TileSize is the on-screen size of one board cell in cells
var TileSize = scene.Vec2{X: 1, Y: 1}

// ZLevel orders the layers; higher values are drawn on top
type ZLevel int

const (
	ZLevelBackground ZLevel = iota
	ZLevelBoard
	ZLevelHighlight
	ZLevelPieces ZLevel = 8
)

func (z ZLevel) Float() float32 {
	return float32(z)
}

// size of one tile in screen units
func TileScreenSize() scene.Vec2 {
	return scene.Vec2{X: TileSize.X * Resolution, Y: TileSize.Y * Resolution}
}

// board cell to screen position on layer z
func ScreenPosition(p base.Point, z ZLevel) scene.Vec3 {
	return scene.Vec3{
		X: float32(p.X) * Resolution,
		Y: float32(p.Y) * Resolution,
		Z: z.Float(),
	}
}

// screen position back to the board cell that contains it
func BoardPoint(v scene.Vec3) base.Point {
	return base.Point{X: floorDiv(v.X, Resolution), Y: floorDiv(v.Y, Resolution)}
}

func floorDiv(v, d float32) int {
	q := int(v / d)
	if v < 0 && float32(q)*d != v {
		q--
	}
	return q
}

// BoardPixels is the side of the whole board in screen units.
func BoardPixels() float32 {
	return Resolution * float32(base.BoardSize)
}

// WindowToScene maps a window pixel to a scene position. The window y axis
// grows down and the board's top-left corner sits at (originX, originY);
// scene y grows up from White's side.
func WindowToScene(px, py, originX, originY float64) scene.Vec3 {
	return scene.Vec3{
		X: float32(px - originX),
		Y: float32(originY + float64(BoardPixels()) - py),
	}
}

// SceneToWindow gives the window pixel of the top-left corner of an item
// whose bottom-left corner is at v and which is height units tall.
func SceneToWindow(v scene.Vec3, height float32, originX, originY float64) (float64, float64) {
	return originX + float64(v.X), originY + float64(BoardPixels()) - float64(v.Y) - float64(height)
}
