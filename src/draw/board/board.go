package board

import (
	"chessview/src/base"
	"chessview/src/draw"
	"chessview/src/scene"
)

// Tile tags a board square entity
type Tile struct {
	Dark bool
}

// Highlight tags the frame drawn over a selected square
type Highlight struct{}

type Commands interface {
	Spawn(components ...scene.Component) scene.Entity
	Despawn(e scene.Entity)
}

func Tiles(w *scene.World) []scene.Entity {
	return scene.With[Tile](w)
}

func Highlights(w *scene.World) []scene.Entity {
	return scene.With[Highlight](w)
}

// DrawTiles replaces the tile entities with a fresh 8x8 board
func DrawTiles(cmd Commands, existing []scene.Entity) {
	for _, e := range existing {
		cmd.Despawn(e)
	}
	for y := 0; y < base.BoardSize; y++ {
		for x := 0; x < base.BoardSize; x++ {
			cmd.Spawn(
				Tile{Dark: (x+y)%2 == 0},
				scene.Transform{Translation: draw.ScreenPosition(base.Point{X: x, Y: y}, draw.ZLevelBoard)},
				scene.Name("Tile"),
			)
		}
	}
}

// DrawHighlight drops the previous frame and, unless cell is nil or off the
// board, frames the given cell
func DrawHighlight(cmd Commands, existing []scene.Entity, cell *base.Point) {
	for _, e := range existing {
		cmd.Despawn(e)
	}
	if cell == nil || !base.IsValidPoint(*cell) {
		return
	}
	cmd.Spawn(
		Highlight{},
		scene.Transform{Translation: draw.ScreenPosition(*cell, draw.ZLevelHighlight)},
		scene.Name("Highlight"),
	)
}
