// Package pieces keeps the scene's piece sprites in step with the game state.
//
// Every Draw is a full rebuild: all entities tagged with Piece are despawned
// and one entity per piece in the state is spawned again.
package pieces

import (
	"chessview/src/assets"
	"chessview/src/base"
	"chessview/src/draw"
	"chessview/src/logx"
	"chessview/src/scene"
)

// width of the pieces sprite sheet, one column per piece type
const PiecesPerRow int = 5

// both conversions fail to compile unless the enumeration fills a sheet row exactly
const (
	_ = uint(PiecesPerRow - base.PieceTypeCount)
	_ = uint(base.PieceTypeCount - PiecesPerRow)
)

// Piece tags a scene entity as a drawn chess piece
type Piece struct{}

// Commands is the part of the scene the drawer mutates
type Commands interface {
	Spawn(components ...scene.Component) scene.Entity
	Insert(e scene.Entity, components ...scene.Component)
	Despawn(e scene.Entity)
}

// Existing returns the entities currently tagged as pieces
func Existing(w *scene.World) []scene.Entity {
	return scene.With[Piece](w)
}

// SpriteIndex maps a piece to its cell in the sheet: the team picks the row,
// the type picks the column. The result is not checked against the sheet.
func SpriteIndex(t base.Team, pt base.PieceType) int {
	return t.Row()*PiecesPerRow + pt.Column()
}

// Drawer rebuilds the piece entities of a scene from a game state.
type Drawer struct {
	logger logx.Logger
}

// NewDrawer returns a Drawer that reports each rebuild to logger at debug level.
func NewDrawer(logger logx.Logger) *Drawer {
	return &Drawer{logger: logger}
}

// Draw clears the existing piece entities and spawns one per piece of state,
// players first, then pieces, in state order.
func (d *Drawer) Draw(cmd Commands, sheet assets.Handle, state *base.State, existing []scene.Entity) {
	clearPieces(cmd, existing)

	spawned := 0
	for _, player := range state.Players {
		for _, piece := range player.Pieces {
			e := spawnPiece(
				cmd,
				sheet,
				SpriteIndex(player.Team, piece.Type),
				draw.ScreenPosition(piece.Position, draw.ZLevelPieces),
			)
			cmd.Insert(e, scene.Name("Piece"), Piece{})
			spawned++
		}
	}
	d.logger.Debugf("pieces redrawn: cleared %d, spawned %d", len(existing), spawned)
}

func clearPieces(cmd Commands, existing []scene.Entity) {
	for _, e := range existing {
		cmd.Despawn(e)
	}
}

// sprite is sized to one board tile
func spawnPiece(cmd Commands, sheet assets.Handle, index int, translation scene.Vec3) scene.Entity {
	return cmd.Spawn(
		scene.Sprite{
			Atlas: sheet,
			Index: index,
			Size:  draw.TileScreenSize(),
		},
		scene.Transform{Translation: translation},
	)
}
