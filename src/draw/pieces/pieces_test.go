package pieces

import (
	"chessview/src/assets"
	"chessview/src/base"
	"chessview/src/chesslib/convfen"
	"chessview/src/draw"
	"chessview/src/logx"
	"chessview/src/scene"
	"testing"
)

const sheet = assets.Handle(1)

func newDrawer() *Drawer {
	return NewDrawer(logx.NewNopLogx())
}

func twoKingsState() *base.State {
	s := base.NewState()
	s.Players[0].Pieces = []base.Piece{{Type: base.Pawn, Team: base.White, Position: base.Point{X: 0, Y: 0}}}
	s.Players[1].Pieces = []base.Piece{{Type: base.King, Team: base.Black, Position: base.Point{X: 7, Y: 7}}}
	return s
}

func TestSpriteIndex(t *testing.T) {
	tests := []struct {
		team base.Team
		pt   base.PieceType
		want int
	}{
		{base.White, base.Pawn, 0},
		{base.White, base.King, 4},
		{base.Black, base.Pawn, 5},
		{base.Black, base.Rook, 8},
		{base.Black, base.King, 9},
		// no bounds check: a third row is addressed even if the sheet has two
		{base.Team(2), base.Knight, 11},
	}
	for _, tt := range tests {
		if got := SpriteIndex(tt.team, tt.pt); got != tt.want {
			t.Errorf("SpriteIndex(%v, %v) = %d, want %d", tt.team, tt.pt, got, tt.want)
		}
	}
}

func TestDrawScenario(t *testing.T) {
	w := scene.NewWorld()
	newDrawer().Draw(w, sheet, twoKingsState(), Existing(w))

	ents := Existing(w)
	if len(ents) != 2 {
		t.Fatalf("expected 2 piece entities, got %d", len(ents))
	}

	want := []struct {
		index int
		pos   scene.Vec3
	}{
		{0, scene.Vec3{X: 0, Y: 0, Z: draw.ZLevelPieces.Float()}},
		{9, scene.Vec3{X: 7 * draw.Resolution, Y: 7 * draw.Resolution, Z: draw.ZLevelPieces.Float()}},
	}
	for i, e := range ents {
		sp, ok := scene.Get[scene.Sprite](w, e)
		if !ok {
			t.Fatalf("entity %d has no sprite", e)
		}
		tr, ok := scene.Get[scene.Transform](w, e)
		if !ok {
			t.Fatalf("entity %d has no transform", e)
		}
		if sp.Index != want[i].index {
			t.Errorf("entity %d sprite index = %d, want %d", i, sp.Index, want[i].index)
		}
		if sp.Atlas != sheet {
			t.Errorf("entity %d atlas = %v, want %v", i, sp.Atlas, sheet)
		}
		if sp.Size != draw.TileScreenSize() {
			t.Errorf("entity %d size = %+v, want one tile", i, sp.Size)
		}
		if tr.Translation != want[i].pos {
			t.Errorf("entity %d translation = %+v, want %+v", i, tr.Translation, want[i].pos)
		}
		if n, _ := scene.Get[scene.Name](w, e); n != "Piece" {
			t.Errorf("entity %d name = %q", i, n)
		}
	}
}

func TestDrawCardinality(t *testing.T) {
	fens := []string{
		base.FEN_START_GAME,
		"4k3/8/8/8/8/8/8/4K3",
		"8/8/8/8/8/8/8/8",
		"rnb1kbnr/pppppppp/8/8/8/8/8/8",
	}
	d := newDrawer()
	for _, fen := range fens {
		state, err := convfen.ConvertFENToState(fen)
		if err != nil {
			t.Fatalf("%q: %v", fen, err)
		}
		w := scene.NewWorld()
		d.Draw(w, sheet, state, Existing(w))
		if got := len(Existing(w)); got != state.PieceCount() {
			t.Errorf("%q: %d piece entities, want %d", fen, got, state.PieceCount())
		}
	}
}

func TestDrawReplacesNotAccumulates(t *testing.T) {
	state, err := convfen.ConvertFENToState(base.FEN_START_GAME)
	if err != nil {
		t.Fatal(err)
	}
	w := scene.NewWorld()
	d := newDrawer()

	d.Draw(w, sheet, state, Existing(w))
	first := Existing(w)
	d.Draw(w, sheet, state, Existing(w))

	if got := len(Existing(w)); got != 28 {
		t.Errorf("after two rebuilds: %d piece entities, want 28", got)
	}
	for _, e := range first {
		if w.Alive(e) {
			t.Errorf("entity %d from the first rebuild survived", e)
		}
	}
}

func TestDrawKeepsOtherEntities(t *testing.T) {
	w := scene.NewWorld()
	tile := w.Spawn(scene.Name("Tile"))

	d := newDrawer()
	d.Draw(w, sheet, twoKingsState(), Existing(w))
	d.Draw(w, sheet, base.NewState(), Existing(w))

	if len(Existing(w)) != 0 {
		t.Errorf("empty state must leave no piece entities, got %d", len(Existing(w)))
	}
	if !w.Alive(tile) || w.Len() != 1 {
		t.Errorf("non-piece entities must survive, world has %d", w.Len())
	}
}

func TestClearIdempotent(t *testing.T) {
	w := scene.NewWorld()
	newDrawer().Draw(w, sheet, twoKingsState(), Existing(w))

	clearPieces(w, Existing(w))
	if n := len(Existing(w)); n != 0 {
		t.Fatalf("after first clear: %d", n)
	}
	clearPieces(w, Existing(w))
	if n := len(Existing(w)); n != 0 {
		t.Errorf("after second clear: %d", n)
	}
}

type recorder struct {
	*scene.World
	ops []string
}

func (r *recorder) Spawn(components ...scene.Component) scene.Entity {
	r.ops = append(r.ops, "spawn")
	return r.World.Spawn(components...)
}

func (r *recorder) Despawn(e scene.Entity) {
	r.ops = append(r.ops, "despawn")
	r.World.Despawn(e)
}

func TestDrawClearsBeforeSpawning(t *testing.T) {
	r := &recorder{World: scene.NewWorld()}
	d := newDrawer()
	d.Draw(r, sheet, twoKingsState(), Existing(r.World))
	r.ops = nil

	d.Draw(r, sheet, twoKingsState(), Existing(r.World))
	want := []string{"despawn", "despawn", "spawn", "spawn"}
	if len(r.ops) != len(want) {
		t.Fatalf("ops = %v, want %v", r.ops, want)
	}
	for i := range want {
		if r.ops[i] != want[i] {
			t.Fatalf("ops = %v, want %v", r.ops, want)
		}
	}
}

func TestDrawUsesPlayerOrder(t *testing.T) {
	s := twoKingsState()
	s.Players[0], s.Players[1] = s.Players[1], s.Players[0]

	w := scene.NewWorld()
	newDrawer().Draw(w, sheet, s, Existing(w))

	var got []int
	for _, e := range scene.Query[scene.Sprite](w) {
		got = append(got, e.Value.Index)
	}
	if len(got) != 2 || got[0] != 9 || got[1] != 0 {
		t.Errorf("sprite indices in spawn order = %v, want [9 0]", got)
	}
}
