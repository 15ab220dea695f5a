package chesslib

import (
	"chessview/src/base"
	"chessview/src/chesslib/convfen"
	"chessview/src/logx"
	"fmt"
)

// owner of the current position; every change bumps the revision so
// viewers know when to redraw
type GameBuilder struct {
	state    *base.State
	revision uint64
	logger   logx.Logger
}

func NewBuilderBoard(logger logx.Logger) *GameBuilder {
	return &GameBuilder{state: base.NewState(), logger: logger}
}

func (gb *GameBuilder) CreateFromFEN(fen string) error {
	gb.logger.Debugf("create game by FEN: %v", fen)
	state, err := convfen.ConvertFENToState(fen)
	if err != nil {
		return fmt.Errorf("error parse FEN: %v", err)
	}
	gb.set(state)
	return nil
}

func (gb *GameBuilder) CreateClassic() {
	gb.logger.Debug("create classic game")
	state, err := convfen.ConvertFENToState(base.FEN_START_GAME)
	if err != nil {
		// start position is a constant
		panic(err)
	}
	gb.set(state)
}

func (gb *GameBuilder) CreateEmpty() {
	gb.logger.Debug("create empty board")
	gb.set(base.NewState())
}

// read-only view, do not mutate
func (gb *GameBuilder) State() *base.State {
	return gb.state
}

func (gb *GameBuilder) Revision() uint64 {
	return gb.revision
}

// placement field of the current position
func (gb *GameBuilder) FEN() string {
	return convfen.ConvertStateToFEN(gb.state)
}

func (gb *GameBuilder) set(s *base.State) {
	gb.state = s
	gb.revision++
	gb.logger.Infof("position changed: %d pieces, revision %d", s.PieceCount(), gb.revision)
}
