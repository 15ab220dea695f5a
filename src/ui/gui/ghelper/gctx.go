package ghelper

import (
	"chessview/src/chesslib"
	"chessview/src/logx"
	"chessview/src/ui/gui/gbase"
	"chessview/src/ui/gui/gbase/gconf"
)

// ---- GUI Context ----

type GUIGameContext struct {
	Builder      *chesslib.GameBuilder
	AssetsWorker *GUIAssetsWorker
	Config       *gconf.Config
	Theme        gbase.Palette
	Logx         logx.Logger
}

func NewGUIGameContext(b *chesslib.GameBuilder, a *GUIAssetsWorker, c *gconf.Config, l logx.Logger) *GUIGameContext {
	return &GUIGameContext{
		Builder:      b,
		AssetsWorker: a,
		Config:       c,
		Theme:        gbase.PaletteFromString(c.Theme),
		Logx:         l,
	}
}
