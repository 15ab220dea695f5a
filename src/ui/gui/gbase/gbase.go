package gbase

import (
	"errors"
	"image/color"
)

// ---- Exit Call ----

var ErrExit = errors.New("exit request")

// --- UI constants ---

const (
	WindowW     int = 760
	WindowH     int = 620
	BoardMargin int = 40
	StatusH     int = 60
)

// ---- Styles (palettes) ----

type Palette struct {
	Bg        color.RGBA
	LightTile color.RGBA
	DarkTile  color.RGBA
	Highlight color.RGBA
	Text      color.RGBA
	ErrorText color.RGBA
	// piece sheet colors, one per team row
	WhitePiece color.RGBA
	BlackPiece color.RGBA
	Outline    color.RGBA
}

// unknown names give the light palette
func PaletteFromString(p string) Palette {
	switch p {
	case "dark":
		return DarkPalette
	default:
	}
	return LightPalette
}

var LightPalette = Palette{
	Bg:         color.RGBA{0xf7, 0xf7, 0xf7, 0xff},
	LightTile:  color.RGBA{0xee, 0xee, 0xd2, 0xff},
	DarkTile:   color.RGBA{0x76, 0x96, 0x56, 0xff},
	Highlight:  color.RGBA{0x22, 0x88, 0xcc, 0xff},
	Text:       color.RGBA{0x22, 0x22, 0x22, 0xff},
	ErrorText:  color.RGBA{0xc0, 0x20, 0x20, 0xff},
	WhitePiece: color.RGBA{0xfa, 0xfa, 0xfa, 0xff},
	BlackPiece: color.RGBA{0x30, 0x30, 0x30, 0xff},
	Outline:    color.RGBA{0x10, 0x10, 0x10, 0xff},
}

var DarkPalette = Palette{
	Bg:         color.RGBA{0x12, 0x12, 0x12, 0xff},
	LightTile:  color.RGBA{0x9e, 0x9e, 0x9e, 0xff},
	DarkTile:   color.RGBA{0x44, 0x4c, 0x5c, 0xff},
	Highlight:  color.RGBA{0x2a, 0xa1, 0xd1, 0xff},
	Text:       color.RGBA{0xee, 0xee, 0xee, 0xff},
	ErrorText:  color.RGBA{0xff, 0x66, 0x66, 0xff},
	WhitePiece: color.RGBA{0xf0, 0xf0, 0xf0, 0xff},
	BlackPiece: color.RGBA{0x1a, 0x1a, 0x1a, 0xff},
	Outline:    color.RGBA{0xdd, 0xdd, 0xdd, 0xff},
}
