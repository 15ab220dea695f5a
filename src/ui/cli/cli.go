package cli

import (
	"chessview/src/assets"
	"chessview/src/base"
	"chessview/src/chesslib"
	"chessview/src/draw/board"
	"chessview/src/draw/pieces"
	"chessview/src/logx"
	"chessview/src/scene"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// default sheet layout, the terminal never loads pixels
var PieceAtlas = assets.Atlas{Name: "pieces", Columns: pieces.PiecesPerRow, Rows: 2, CellW: 60, CellH: 60}

type CLIProcessing struct {
	builder  *chesslib.GameBuilder
	world    *scene.World
	sheet    assets.Handle
	drawer   *pieces.Drawer
	out      io.Writer
	color    bool
	entities bool
	selected *base.Point
}

func NewCLI(b *chesslib.GameBuilder, logger logx.Logger, out *os.File, entities bool) *CLIProcessing {
	as := assets.NewServer()
	return &CLIProcessing{
		builder:  b,
		world:    scene.NewWorld(),
		sheet:    as.Add(PieceAtlas),
		drawer:   pieces.NewDrawer(logger),
		out:      out,
		color:    term.IsTerminal(int(out.Fd())),
		entities: entities,
	}
}

// Select marks a square given in algebraic notation, e.g. "e2"
func (c *CLIProcessing) Select(square string) error {
	p, err := base.PointFromAlgebraic(square)
	if err != nil {
		return fmt.Errorf("error select %q: %v", square, err)
	}
	c.selected = &p
	return nil
}

// Run rebuilds the scene once from the builder's position and prints it
func (c *CLIProcessing) Run() error {
	if c.color {
		EnableANSI()
	}
	board.DrawTiles(c.world, board.Tiles(c.world))
	board.DrawHighlight(c.world, board.Highlights(c.world), c.selected)
	c.drawer.Draw(c.world, c.sheet, c.builder.State(), pieces.Existing(c.world))

	PrintScene(c.world, c.out, c.color)
	if c.entities {
		return PrintEntities(c.world, c.out)
	}
	return nil
}
