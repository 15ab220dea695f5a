package base

type Piece struct {
	Type     PieceType
	Team     Team
	Position Point
}

type Player struct {
	Team   Team
	Pieces []Piece
}

// snapshot of the board: players in order, each with its pieces in order
type State struct {
	Players []Player
}

func NewState() *State {
	return &State{Players: []Player{{Team: White}, {Team: Black}}}
}

func (s *State) PieceCount() int {
	n := 0
	for _, p := range s.Players {
		n += len(p.Pieces)
	}
	return n
}

// player of the team, created at the end if missing
func (s *State) Player(t Team) *Player {
	for i := range s.Players {
		if s.Players[i].Team == t {
			return &s.Players[i]
		}
	}
	s.Players = append(s.Players, Player{Team: t})
	return &s.Players[len(s.Players)-1]
}

func (s *State) PieceAt(p Point) (Piece, bool) {
	for _, pl := range s.Players {
		for _, pc := range pl.Pieces {
			if pc.Position == p {
				return pc, true
			}
		}
	}
	return Piece{}, false
}
