package base

import "fmt"

// Forsyth–Edwards Notation, standard start without queens
const FEN_START_GAME string = "rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNB1KBNR w - - 0 1"

// board side in cells
const BoardSize int = 8

type Team uint8

const (
	White Team = 0
	Black Team = 1
)

// row of the team inside the pieces sprite sheet
func (t Team) Row() int {
	return int(t)
}

func (t Team) String() string {
	switch t {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return fmt.Sprintf("team(%d)", uint8(t))
	}
}

type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	King

	// number of piece types, one sprite sheet column each
	PieceTypeCount int = iota
)

// column of the piece type inside the pieces sprite sheet
func (pt PieceType) Column() int {
	return int(pt)
}

func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case King:
		return "king"
	default:
		return fmt.Sprintf("piece(%d)", uint8(pt))
	}
}

// board cell, X is the file (a..h), Y is the rank (1..8) counted from White's side
type Point struct {
	X int
	Y int
}

func IsValidPoint(p Point) bool {
	return p.X >= 0 && p.X < BoardSize && p.Y >= 0 && p.Y < BoardSize
}

func (p Point) String() string {
	if s, err := AlgebraicFromPoint(p); err == nil {
		return s
	}
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func PointFromAlgebraic(pos string) (Point, error) {
	// 'a' ~ 'h' to 0-7
	// '1' ~ '8' to 0-7
	if len(pos) != 2 || pos[0] < 'a' || pos[0] > 'h' || pos[1] < '1' || pos[1] > '8' {
		return Point{}, fmt.Errorf("invalid position")
	}
	return Point{X: int(pos[0] - 'a'), Y: int(pos[1] - '1')}, nil
}

func AlgebraicFromPoint(p Point) (string, error) {
	if !IsValidPoint(p) {
		return "", fmt.Errorf("invalid square")
	}
	return string([]rune{rune(p.X + 'a'), rune(p.Y + '1')}), nil
}

// upper case is White, lower case is Black
func ConvertPieceFromRune(r rune) (PieceType, Team, bool) {
	switch r {
	case 'P':
		return Pawn, White, true
	case 'N':
		return Knight, White, true
	case 'B':
		return Bishop, White, true
	case 'R':
		return Rook, White, true
	case 'K':
		return King, White, true
	case 'p':
		return Pawn, Black, true
	case 'n':
		return Knight, Black, true
	case 'b':
		return Bishop, Black, true
	case 'r':
		return Rook, Black, true
	case 'k':
		return King, Black, true
	default:
		return 0, 0, false
	}
}

func ConvertRuneFromPiece(pt PieceType, t Team) rune {
	var r rune
	switch pt {
	case Pawn:
		r = 'P'
	case Knight:
		r = 'N'
	case Bishop:
		r = 'B'
	case Rook:
		r = 'R'
	case King:
		r = 'K'
	default:
		return '.'
	}
	if t == Black {
		r += 'a' - 'A'
	}
	return r
}
