package scene

import "chessview/src/assets"

type Vec2 struct {
	X, Y float32
}

type Vec3 struct {
	X, Y, Z float32
}

// Transform places an entity in screen space. Y grows upwards, Z is the draw
// layer: higher values are drawn on top.
type Transform struct {
	Translation Vec3
}

// Sprite draws one cell of an atlas. Size is the rendered size in screen
// units; a zero Size keeps the cell's native size.
type Sprite struct {
	Atlas assets.Handle
	Index int
	Size  Vec2
}

// Name is a human readable label for debugging output
type Name string
