package game

import "errors"

var (
	ErrTooFewPlayers      = errors.New("need at least two players")
	ErrInvalidConfig      = errors.New("invalid game configuration")
	ErrIllegalAction      = errors.New("illegal action")
	ErrCannotPass         = errors.New("no further eligible attacker to pass to")
	ErrGameOver           = errors.New("game is over")
	ErrBeliefInconsistent = errors.New("belief state inconsistent with game state")
)
