// Package gsheet produces the pieces sprite sheet: either a PNG from disk or
// a sheet drawn on the fly.
package gsheet

import (
	"chessview/src/assets"
	"chessview/src/base"
	"chessview/src/draw/pieces"
	"chessview/src/ui/gui/gbase"
	"chessview/src/ui/gui/gbase/gassets"
	"fmt"
	"image"
	_ "image/png"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// rows of the sheet, one per team
const Rows int = 2

// grid of a pieces sheet made of square cells
func PieceAtlas(cell int) assets.Atlas {
	return assets.Atlas{Name: "pieces", Columns: pieces.PiecesPerRow, Rows: Rows, CellW: cell, CellH: cell}
}

// Draw renders a Rows x PiecesPerRow sheet: a disc per cell in the team's
// color with the piece letter on top
func Draw(cell int, face font.Face, theme gbase.Palette) image.Image {
	dc := gg.NewContext(cell*pieces.PiecesPerRow, cell*Rows)
	dc.SetFontFace(face)

	for _, team := range []base.Team{base.White, base.Black} {
		fill, ink := theme.WhitePiece, theme.BlackPiece
		if team == base.Black {
			fill, ink = theme.BlackPiece, theme.WhitePiece
		}
		for col := 0; col < pieces.PiecesPerRow; col++ {
			pt := base.PieceType(col)
			cx := float64(col*cell) + float64(cell)/2
			cy := float64(team.Row()*cell) + float64(cell)/2
			r := float64(cell) * 0.42

			dc.DrawCircle(cx, cy, r)
			dc.SetRGBA255(int(fill.R), int(fill.G), int(fill.B), int(fill.A))
			dc.FillPreserve()
			dc.SetRGBA255(int(theme.Outline.R), int(theme.Outline.G), int(theme.Outline.B), int(theme.Outline.A))
			dc.SetLineWidth(2)
			dc.Stroke()

			dc.SetRGBA255(int(ink.R), int(ink.G), int(ink.B), int(ink.A))
			dc.DrawStringAnchored(string(base.ConvertRuneFromPiece(pt, base.White)), cx, cy, 0.5, 0.35)
		}
	}
	return dc.Image()
}

// Load reads a PNG sheet and returns it with the atlas derived from its size
func Load(path string) (image.Image, assets.Atlas, error) {
	f, err := gassets.OpenAsset(path)
	if err != nil {
		return nil, assets.Atlas{}, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, assets.Atlas{}, fmt.Errorf("error decode sheet %s: %v", path, err)
	}
	b := img.Bounds()
	if b.Dx()%pieces.PiecesPerRow != 0 || b.Dy()%Rows != 0 {
		return nil, assets.Atlas{}, fmt.Errorf("sheet %s is %dx%d, not a %dx%d grid", path, b.Dx(), b.Dy(), pieces.PiecesPerRow, Rows)
	}
	a := assets.Atlas{
		Name:    path,
		Columns: pieces.PiecesPerRow,
		Rows:    Rows,
		CellW:   b.Dx() / pieces.PiecesPerRow,
		CellH:   b.Dy() / Rows,
	}
	return img, a, nil
}
