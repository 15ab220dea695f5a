package chesslib

import (
	"chessview/src/logx"
	"testing"
)

func TestGameBuilderRevision(t *testing.T) {
	gb := NewBuilderBoard(logx.NewNopLogx())
	if gb.Revision() != 0 {
		t.Fatalf("fresh builder revision = %d", gb.Revision())
	}
	if gb.State().PieceCount() != 0 {
		t.Fatalf("fresh builder must be empty")
	}

	gb.CreateClassic()
	if gb.Revision() != 1 || gb.State().PieceCount() != 28 {
		t.Errorf("after CreateClassic: revision %d, pieces %d", gb.Revision(), gb.State().PieceCount())
	}

	if err := gb.CreateFromFEN("not a fen"); err == nil {
		t.Fatalf("expected FEN error")
	}
	if gb.Revision() != 1 || gb.State().PieceCount() != 28 {
		t.Errorf("failed import must keep the old position")
	}

	if err := gb.CreateFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1"); err != nil {
		t.Fatalf("CreateFromFEN: %v", err)
	}
	if gb.FEN() != "4k3/8/8/8/8/8/8/4K3" {
		t.Errorf("FEN() = %q", gb.FEN())
	}

	gb.CreateEmpty()
	if gb.Revision() != 3 || gb.State().PieceCount() != 0 {
		t.Errorf("after CreateEmpty: revision %d, pieces %d", gb.Revision(), gb.State().PieceCount())
	}
}
