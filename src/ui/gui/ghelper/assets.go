package ghelper

import (
	"chessview/src/assets"
	"chessview/src/draw"
	"chessview/src/ui/gui/gbase"
	"chessview/src/ui/gui/gbase/gconf"
	"chessview/src/ui/gui/ghelper/gfont"
	"chessview/src/ui/gui/ghelper/glang"
	"chessview/src/ui/gui/ghelper/gsheet"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIAssetsWorker struct {
	fonts  *gfont.Fonts
	lang   *glang.GUILangWorker
	server *assets.Server
	sheet  assets.Handle
	images map[assets.Handle]*ebiten.Image
}

func NewGUIAssetsWorker(cfg *gconf.Config, theme gbase.Palette) (*GUIAssetsWorker, error) {
	f, err := gfont.LoadFonts()
	if err != nil {
		return nil, err
	}
	l, err := glang.NewGUILangWorker("assets/lang", cfg.Lang)
	if err != nil {
		return nil, err
	}

	var (
		img   image.Image
		atlas assets.Atlas
	)
	if cfg.SheetPath != "" {
		img, atlas, err = gsheet.Load(cfg.SheetPath)
		if err != nil {
			return nil, err
		}
	} else {
		cell := int(draw.Resolution)
		face, err := gfont.PieceFace(cell)
		if err != nil {
			return nil, err
		}
		img = gsheet.Draw(cell, face, theme)
		atlas = gsheet.PieceAtlas(cell)
	}

	server := assets.NewServer()
	h := server.Add(atlas)
	return &GUIAssetsWorker{
		fonts:  f,
		lang:   l,
		server: server,
		sheet:  h,
		images: map[assets.Handle]*ebiten.Image{h: ebiten.NewImageFromImage(img)},
	}, nil
}

func (aw *GUIAssetsWorker) Fonts() *gfont.Fonts {
	return aw.fonts
}

func (aw *GUIAssetsWorker) Lang() *glang.GUILangWorker {
	return aw.lang
}

// handle of the pieces sheet
func (aw *GUIAssetsWorker) Sheet() assets.Handle {
	return aw.sheet
}

// SpriteImage resolves a cell of an atlas to a sub-image; nil when the handle
// or the index are unknown
func (aw *GUIAssetsWorker) SpriteImage(h assets.Handle, index int) *ebiten.Image {
	a, ok := aw.server.Get(h)
	if !ok {
		return nil
	}
	x, y, ok := a.Cell(index)
	if !ok {
		return nil
	}
	img := aw.images[h]
	return img.SubImage(image.Rect(x, y, x+a.CellW, y+a.CellH)).(*ebiten.Image)
}
