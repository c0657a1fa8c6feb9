package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"durak/game"
)

var ErrNoInput = errors.New("no more input")

// Human asks a person to pick one of the legal actions by its 1-based index.
type Human struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{in: bufio.NewScanner(in), out: out}
}

// Select prompts until a valid index is entered. Only actions from the list can be returned.
func (h *Human) Select(s *game.State, actions []game.Action) (game.Action, error) {
	seat := s.CurrentSeat()
	role := "defend"
	if s.IsAttackerMove() {
		role = "attack"
	}
	for {
		fmt.Fprintf(h.out, "trump %s, talon %d, table %v / %v\n",
			game.SuitSymbol(s.Trump()), s.TalonSize(), s.AttackCards(), s.DefenseCards())
		fmt.Fprintf(h.out, "your hand: %v\n", s.Hand(seat))
		for i, a := range actions {
			fmt.Fprintf(h.out, "  %d) %s\n", i+1, a)
		}
		fmt.Fprintf(h.out, "choose an action to %s [1,%d]: ", role, len(actions))

		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return game.Action{}, err
			}
			return game.Action{}, ErrNoInput
		}
		choice, err := strconv.Atoi(strings.TrimSpace(h.in.Text()))
		if err == nil && choice >= 1 && choice <= len(actions) {
			return actions[choice-1], nil
		}
	}
}
