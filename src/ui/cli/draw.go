package cli

import (
	"chessview/src/base"
	"chessview/src/draw"
	"chessview/src/draw/board"
	"chessview/src/draw/pieces"
	"chessview/src/scene"
	"fmt"
	"io"
	"text/tabwriter"
)

// ANSI-code
const (
	reset   = "\033[0m"
	lightBg = "\033[47m"
	darkBg  = "\033[100m"
	whiteF  = "\033[97m"
	blackF  = "\033[30m"
	dimF    = "\033[90m"
	accentB = "\033[46m"
)

var glyphs = [2][pieces.PiecesPerRow]string{
	{"♙", "♘", "♗", "♖", "♔"},
	{"♟", "♞", "♝", "♜", "♚"},
}

// sprite index -> unicode glyph, '?' for cells outside the sheet
func glyphOf(index int) string {
	row, col := index/pieces.PiecesPerRow, index%pieces.PiecesPerRow
	if index < 0 || row >= len(glyphs) {
		return "?"
	}
	return glyphs[row][col]
}

// PrintScene prints what the scene holds: the piece entities placed back on
// their cells through their transforms
func PrintScene(w *scene.World, out io.Writer, color bool) {
	var cells [8][8]string
	var teams [8][8]int
	for _, e := range pieces.Existing(w) {
		sp, ok := scene.Get[scene.Sprite](w, e)
		if !ok {
			continue
		}
		tr, _ := scene.Get[scene.Transform](w, e)
		p := draw.BoardPoint(tr.Translation)
		if !base.IsValidPoint(p) {
			continue
		}
		cells[p.Y][p.X] = glyphOf(sp.Index)
		teams[p.Y][p.X] = sp.Index / pieces.PiecesPerRow
	}

	var marked [8][8]bool
	for _, e := range board.Highlights(w) {
		tr, _ := scene.Get[scene.Transform](w, e)
		if p := draw.BoardPoint(tr.Translation); base.IsValidPoint(p) {
			marked[p.Y][p.X] = true
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "   a  b  c  d  e  f  g  h")
	for rank := base.BoardSize - 1; rank >= 0; rank-- {
		fmt.Fprintf(out, "%d ", rank+1)
		for file := 0; file < base.BoardSize; file++ {
			g := cells[rank][file]
			if !color {
				if g == "" {
					g = "."
				}
				if marked[rank][file] {
					fmt.Fprintf(out, "[%s]", g)
				} else {
					fmt.Fprintf(out, " %s ", g)
				}
				continue
			}
			if g == "" {
				g = " "
			}

			bg := lightBg
			if (rank+file)%2 == 0 {
				bg = darkBg
			}
			if marked[rank][file] {
				bg = accentB
			}
			fg := dimF
			if cells[rank][file] != "" {
				fg = blackF
				if teams[rank][file] == base.White.Row() && bg == darkBg {
					fg = whiteF
				}
			}
			fmt.Fprintf(out, "%s%s %s %s", bg, fg, g, reset)
		}
		fmt.Fprintf(out, " %d\n", rank+1)
	}
	fmt.Fprintln(out, "   a  b  c  d  e  f  g  h")
	fmt.Fprintln(out)
}

// PrintEntities lists the piece entities with their sprite cell and position
func PrintEntities(w *scene.World, out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ENTITY\tNAME\tSPRITE\tX\tY\tZ")
	for _, e := range pieces.Existing(w) {
		name, _ := scene.Get[scene.Name](w, e)
		sp, _ := scene.Get[scene.Sprite](w, e)
		tr, _ := scene.Get[scene.Transform](w, e)
		fmt.Fprintf(tw, "%d\t%s\t%d\t%g\t%g\t%g\n", e, name, sp.Index, tr.Translation.X, tr.Translation.Y, tr.Translation.Z)
	}
	return tw.Flush()
}
