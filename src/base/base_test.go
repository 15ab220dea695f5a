package base

import "testing"

func TestPieceRunes(t *testing.T) {
	for _, team := range []Team{White, Black} {
		for pt := PieceType(0); int(pt) < PieceTypeCount; pt++ {
			r := ConvertRuneFromPiece(pt, team)
			gotType, gotTeam, ok := ConvertPieceFromRune(r)
			if !ok || gotType != pt || gotTeam != team {
				t.Errorf("%v %v -> %q -> %v %v %v", team, pt, r, gotTeam, gotType, ok)
			}
		}
	}
	if _, _, ok := ConvertPieceFromRune('q'); ok {
		t.Errorf("queen has no sprite column and must not convert")
	}
}

func TestRowsAndColumns(t *testing.T) {
	if White.Row() != 0 || Black.Row() != 1 {
		t.Errorf("rows: white %d, black %d", White.Row(), Black.Row())
	}
	if Pawn.Column() != 0 || King.Column() != 4 || PieceTypeCount != 5 {
		t.Errorf("columns: pawn %d, king %d, count %d", Pawn.Column(), King.Column(), PieceTypeCount)
	}
}

func TestAlgebraic(t *testing.T) {
	p, err := PointFromAlgebraic("e4")
	if err != nil || p != (Point{X: 4, Y: 3}) {
		t.Fatalf("e4 -> %v, %v", p, err)
	}
	if s, _ := AlgebraicFromPoint(Point{X: 7, Y: 7}); s != "h8" {
		t.Errorf("h8 -> %q", s)
	}
	if _, err := PointFromAlgebraic("i9"); err == nil {
		t.Errorf("i9 must be invalid")
	}
	if (Point{X: 9, Y: 1}).String() != "(9,1)" {
		t.Errorf("off-board point string = %q", Point{X: 9, Y: 1}.String())
	}
}

func TestStatePlayer(t *testing.T) {
	s := NewState()
	s.Player(Black).Pieces = append(s.Player(Black).Pieces, Piece{Type: King, Team: Black})
	if len(s.Players) != 2 || len(s.Players[1].Pieces) != 1 {
		t.Errorf("Player must return the existing team entry: %+v", s.Players)
	}
	s.Player(Team(2))
	if len(s.Players) != 3 {
		t.Errorf("Player must append a missing team")
	}
	if _, ok := s.PieceAt(Point{}); ok {
		t.Errorf("a1 must be empty")
	}
}
