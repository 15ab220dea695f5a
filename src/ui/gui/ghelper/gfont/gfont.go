package gfont

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type Fonts struct {
	Normal font.Face
	Bold   font.Face
}

func newFace(ttf []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Go fonts ship inside x/image, nothing is read from disk
func LoadFonts() (*Fonts, error) {
	var err error
	fonts := &Fonts{}

	fonts.Normal, err = newFace(goregular.TTF, 14)
	if err != nil {
		return nil, err
	}
	// for titles
	fonts.Bold, err = newFace(gobold.TTF, 18)
	if err != nil {
		return nil, err
	}
	return fonts, nil
}

// face for the piece letters drawn into a sheet cell of the given size
func PieceFace(cell int) (font.Face, error) {
	return newFace(gobold.TTF, float64(cell)*0.5)
}
