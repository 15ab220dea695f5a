package convfen

import (
	"chessview/src/base"
	"fmt"
	"strconv"
	"strings"
)

// only the placement field is kept, side to move and the rest are ignored
func ConvertFENToState(fen string) (*base.State, error) {
	parts := strings.Fields(fen)
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty FEN")
	}

	ranks := strings.Split(parts[0], "/")
	if len(ranks) != base.BoardSize {
		return nil, fmt.Errorf("must be %d rows, but there are %d", base.BoardSize, len(ranks))
	}

	state := base.NewState()
	// rank 1 first so White's pieces come out in board order
	for y := 0; y < base.BoardSize; y++ {
		row := ranks[base.BoardSize-1-y]
		x := 0
		for _, r := range row {
			if r >= '1' && r <= '8' {
				x += int(r - '0')
				if x > base.BoardSize {
					return nil, fmt.Errorf("rank %d is too long", y+1)
				}
				continue
			}
			if r == 'q' || r == 'Q' {
				return nil, fmt.Errorf("unsupported piece %q on rank %d", r, y+1)
			}
			pt, team, ok := base.ConvertPieceFromRune(r)
			if !ok {
				return nil, fmt.Errorf("unknown piece %q on rank %d", r, y+1)
			}
			if x >= base.BoardSize {
				return nil, fmt.Errorf("rank %d is too long", y+1)
			}
			pl := state.Player(team)
			pl.Pieces = append(pl.Pieces, base.Piece{Type: pt, Team: team, Position: base.Point{X: x, Y: y}})
			x++
		}
		if x != base.BoardSize {
			return nil, fmt.Errorf("rank %d has %d cells, must be %d", y+1, x, base.BoardSize)
		}
	}
	return state, nil
}

// placement field only
func ConvertStateToFEN(state *base.State) string {
	var grid [8][8]rune
	for _, pl := range state.Players {
		for _, pc := range pl.Pieces {
			if base.IsValidPoint(pc.Position) {
				grid[pc.Position.Y][pc.Position.X] = base.ConvertRuneFromPiece(pc.Type, pc.Team)
			}
		}
	}

	var b strings.Builder
	for rank := base.BoardSize - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < base.BoardSize; file++ {
			r := grid[rank][file]
			if r == 0 {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteRune(r)
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			b.WriteByte('/')
		}
	}
	return b.String()
}
