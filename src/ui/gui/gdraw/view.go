package gdraw

import (
	"chessview/src/base"
	"chessview/src/draw"
	"chessview/src/draw/board"
	"chessview/src/draw/pieces"
	"chessview/src/scene"
	"chessview/src/ui/gui/gbase"
	"chessview/src/ui/gui/gbase/gconf"
	"chessview/src/ui/gui/ghelper"
	"chessview/src/ui/gui/ghelper/gclipboard"
	"chessview/src/ui/gui/ghelper/gdialog"
	"errors"
	"fmt"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// ---- Scene ----

type Scene interface {
	Update(ctx *ghelper.GUIGameContext) error
	Draw(ctx *ghelper.GUIGameContext, screen *ebiten.Image)
}

// GUIBoardDrawer shows the position held by the builder. The scene world is
// rebuilt from the builder whenever its revision moves.
type GUIBoardDrawer struct {
	world  *scene.World
	drawer *pieces.Drawer

	drawnRevision uint64
	drawn         bool

	// layout
	boardX, boardY int // top-left pixel
	boardSize      int // pixel size (square*8)

	selected *base.Point

	status    string
	statusErr bool

	lightTile *ebiten.Image
	darkTile  *ebiten.Image
	highlight *ebiten.Image
}

func NewGUIBoardDrawer(ctx *ghelper.GUIGameContext) *GUIBoardDrawer {
	cell := int(draw.Resolution)
	bd := &GUIBoardDrawer{
		world:     scene.NewWorld(),
		drawer:    pieces.NewDrawer(ctx.Logx),
		lightTile: ghelper.FilledImage(cell, cell, ctx.Theme.LightTile),
		darkTile:  ghelper.FilledImage(cell, cell, ctx.Theme.DarkTile),
		highlight: ghelper.RenderRoundedRect(cell, cell, 6, color.RGBA{}, ctx.Theme.Highlight, 4),
	}
	bd.recalcLayout(ctx)
	board.DrawTiles(bd.world, board.Tiles(bd.world))
	return bd
}

func (bd *GUIBoardDrawer) recalcLayout(ctx *ghelper.GUIGameContext) {
	bd.boardSize = int(draw.BoardPixels())
	bd.boardX = (ctx.Config.WindowW - bd.boardSize) / 2
	bd.boardY = gbase.BoardMargin
}

func (bd *GUIBoardDrawer) Update(ctx *ghelper.GUIGameContext) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return gbase.ErrExit
	}
	bd.recalcLayout(ctx)
	bd.handleKeys(ctx)
	bd.handleMouse()

	if !bd.drawn || ctx.Builder.Revision() != bd.drawnRevision {
		bd.drawer.Draw(bd.world, ctx.AssetsWorker.Sheet(), ctx.Builder.State(), pieces.Existing(bd.world))
		bd.drawnRevision = ctx.Builder.Revision()
		bd.drawn = true
	}
	return nil
}

func (bd *GUIBoardDrawer) handleKeys(ctx *ghelper.GUIGameContext) {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	lang := ctx.AssetsWorker.Lang()

	switch {
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyV):
		fen, err := gclipboard.ReadAll()
		if err != nil {
			bd.fail(ctx, fmt.Errorf("error read clipboard: %v", err))
			return
		}
		bd.load(ctx, fen)
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC):
		if err := gclipboard.WriteAll(ctx.Builder.FEN()); err != nil {
			bd.fail(ctx, fmt.Errorf("error write clipboard: %v", err))
			return
		}
		bd.setStatus(lang.T("status.copied"))
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		res, err := gdialog.OpenFile(lang.T("dialog.open_fen"))
		if errors.Is(err, gdialog.ErrCancelled) {
			return
		}
		if err != nil {
			bd.fail(ctx, fmt.Errorf("error open file: %v", err))
			return
		}
		ctx.Logx.Infof("open position file %s", res.Path)
		bd.load(ctx, string(res.Data))
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		ctx.Builder.CreateClassic()
		bd.setStatus("")
		bd.remember(ctx)
	case inpututil.IsKeyJustPressed(ebiten.KeyE):
		ctx.Builder.CreateEmpty()
		bd.setStatus("")
		bd.remember(ctx)
	}
}

func (bd *GUIBoardDrawer) handleMouse() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if !ghelper.PointInRect(mx, my, bd.boardX, bd.boardY, bd.boardSize, bd.boardSize) {
		return
	}
	// pick by pixel centre
	cell := draw.BoardPoint(draw.WindowToScene(float64(mx)+0.5, float64(my)+0.5, float64(bd.boardX), float64(bd.boardY)))
	if bd.selected != nil && *bd.selected == cell {
		bd.selected = nil
	} else {
		bd.selected = &cell
	}
	board.DrawHighlight(bd.world, board.Highlights(bd.world), bd.selected)
}

func (bd *GUIBoardDrawer) load(ctx *ghelper.GUIGameContext, fen string) {
	if err := ctx.Builder.CreateFromFEN(fen); err != nil {
		ctx.Logx.Errorf("%v", err)
		bd.status = ctx.AssetsWorker.Lang().T("error.fen") + ": " + err.Error()
		bd.statusErr = true
		return
	}
	bd.setStatus("")
	bd.remember(ctx)
}

// remember stores the shown position so the next start opens it
func (bd *GUIBoardDrawer) remember(ctx *ghelper.GUIGameContext) {
	ctx.Config.FEN = ctx.Builder.FEN()
	if err := ctx.Config.Save(gconf.ConfigFile); err != nil {
		ctx.Logx.Warnf("error save config: %v", err)
	}
}

func (bd *GUIBoardDrawer) fail(ctx *ghelper.GUIGameContext, err error) {
	ctx.Logx.Errorf("%v", err)
	bd.status = err.Error()
	bd.statusErr = true
}

func (bd *GUIBoardDrawer) setStatus(s string) {
	bd.status = s
	bd.statusErr = false
}

type drawItem struct {
	img  *ebiten.Image
	tr   scene.Transform
	size scene.Vec2
}

func (bd *GUIBoardDrawer) Draw(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)

	tile := draw.TileScreenSize()
	var items []drawItem
	for _, e := range scene.Query[scene.Transform](bd.world) {
		it := drawItem{tr: e.Value, size: tile}
		if sp, ok := scene.Get[scene.Sprite](bd.world, e.Entity); ok {
			// unknown cells draw nothing
			it.img = ctx.AssetsWorker.SpriteImage(sp.Atlas, sp.Index)
			if sp.Size != (scene.Vec2{}) {
				it.size = sp.Size
			}
		} else if t, ok := scene.Get[board.Tile](bd.world, e.Entity); ok {
			it.img = bd.lightTile
			if t.Dark {
				it.img = bd.darkTile
			}
		} else if scene.Has[board.Highlight](bd.world, e.Entity) {
			it.img = bd.highlight
		}
		if it.img != nil {
			items = append(items, it)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].tr.Translation.Z < items[j].tr.Translation.Z
	})

	for _, it := range items {
		b := it.img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(it.size.X)/float64(b.Dx()), float64(it.size.Y)/float64(b.Dy()))
		op.GeoM.Translate(draw.SceneToWindow(it.tr.Translation, it.size.Y, float64(bd.boardX), float64(bd.boardY)))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(it.img, op)
	}

	bd.drawStatus(ctx, screen)
}

func (bd *GUIBoardDrawer) drawStatus(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	fonts := ctx.AssetsWorker.Fonts()
	lang := ctx.AssetsWorker.Lang()
	x := bd.boardX
	line := gbase.StatusH / 3
	y := bd.boardY + bd.boardSize + line + 4

	text.Draw(screen, lang.T("title"), fonts.Bold, x, bd.boardY-14, ctx.Theme.Text)
	count := fmt.Sprintf(lang.T("status.pieces"), len(pieces.Existing(bd.world)))
	if bd.selected != nil {
		count += "  " + bd.selected.String()
	}
	if ctx.Config.Debug {
		count += fmt.Sprintf("  entities %d  fps %.0f", bd.world.Len(), ebiten.ActualFPS())
	}
	text.Draw(screen, count, fonts.Normal, x, y, ctx.Theme.Text)
	text.Draw(screen, lang.T("status.help"), fonts.Normal, x, y+line, ctx.Theme.Text)
	if bd.status != "" {
		c := ctx.Theme.Text
		if bd.statusErr {
			c = ctx.Theme.ErrorText
		}
		text.Draw(screen, bd.status, fonts.Normal, x, y+2*line, c)
	}
}
