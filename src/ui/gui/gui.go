package gui

import (
	"chessview/src/chesslib"
	"chessview/src/logx"
	"chessview/src/ui/gui/gbase"
	"chessview/src/ui/gui/gbase/gconf"
	"chessview/src/ui/gui/gdraw"
	"chessview/src/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIProcessing struct {
	sc  gdraw.Scene
	ctx *ghelper.GUIGameContext
}

func NewGUI(b *chesslib.GameBuilder, logx logx.Logger) (*GUIProcessing, error) {
	cfg, err := gconf.NewGUIConfig()
	if err != nil {
		return nil, err
	}
	theme := gbase.PaletteFromString(cfg.Theme)
	as, err := ghelper.NewGUIAssetsWorker(cfg, theme)
	if err != nil {
		return nil, err
	}
	if cfg.FEN != "" && b.Revision() == 0 {
		if err := b.CreateFromFEN(cfg.FEN); err != nil {
			logx.Warnf("config position ignored: %v", err)
		}
	}
	if b.Revision() == 0 {
		b.CreateClassic()
	}
	ctx := ghelper.NewGUIGameContext(b, as, cfg, logx)
	return &GUIProcessing{sc: gdraw.NewGUIBoardDrawer(ctx), ctx: ctx}, nil
}

func (gp *GUIProcessing) Run() error {
	ebiten.SetWindowSize(gp.ctx.Config.WindowW, gp.ctx.Config.WindowH)
	ebiten.SetWindowTitle("chessview")
	return ebiten.RunGame(gp)
}

func (gp *GUIProcessing) Update() error {
	return gp.sc.Update(gp.ctx)
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.sc.Draw(gp.ctx, screen)
}

func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return gp.ctx.Config.WindowW, gp.ctx.Config.WindowH
}
