package game

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
)

// NoPosition marks the absence of a player, e.g. the last mover before the first move.
const NoPosition = -1

type Phase int

const (
	OpenPhase   Phase = iota // attacker to open a round on an empty table
	AttackPhase              // attacker to add, pass or ride
	PickupPhase              // defender is eating; attackers may add to the pickup
	DefendPhase              // defender to beat, transfer or eat
	OverPhase                // terminal
)

var phaseNames = [...]string{"open", "attack", "pickup", "defend", "over"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

type Option func(c *config)

type config struct {
	rng      *rand.Rand
	suits    int
	ranks    int
	handSize int
	trump    int
	talon    []Card
}

func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		if rng != nil {
			c.rng = rng
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

func WithDeck(suits, ranks int) Option {
	return func(c *config) {
		c.suits = suits
		c.ranks = ranks
	}
}

func WithHandSize(size int) Option {
	return func(c *config) {
		c.handSize = size
	}
}

func WithTrump(suit int) Option {
	return func(c *config) {
		c.trump = suit
	}
}

// WithTalon fixes the talon order instead of shuffling. The last card is drawn first.
func WithTalon(talon []Card) Option {
	return func(c *config) {
		c.talon = append([]Card(nil), talon...)
	}
}

// State is the full, omniscient state of a transfer Durak game.
//
// Seats index the currently active players and shift when someone is eliminated;
// Player.Position never changes. All mutable containers are owned by the State,
// so Clone yields a fully independent copy.
type State struct {
	suits    int
	ranks    int
	handSize int
	deck     CardSet
	trump    int

	players  []Player
	talon    []Card // top of the talon is the last element
	discard  CardSet
	attack   []Card
	defense  []Card
	lastAtk  []Card // table snapshot while the defender is eating
	lastDef  []Card
	attacker int // seat
	defender int // seat

	attackerMove   bool
	defenderEating bool
	round          int

	lastPlayer int
	lastAction *Action
}

// New shuffles a deck, picks trump and deals a game for numPlayers players.
func New(numPlayers int, options ...Option) (*State, error) {
	if numPlayers < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPlayers, numPlayers)
	}
	c := &config{
		suits:    DefaultSuits,
		ranks:    DefaultRanks,
		handSize: DefaultHandSize,
		trump:    -1,
	}
	for _, option := range options {
		option(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if err := c.validate(numPlayers); err != nil {
		return nil, err
	}

	deck := Deck(c.suits, c.ranks)
	talon := c.talon
	if talon == nil {
		talon = deck
		c.rng.Shuffle(len(talon), func(i, j int) {
			talon[i], talon[j] = talon[j], talon[i]
		})
	}
	if c.trump < 0 {
		c.trump = c.rng.Intn(c.suits)
	}

	full := NewCardSet(deck...)
	positions := make([]int, numPlayers)
	for i := range positions {
		positions[i] = i
	}
	s := &State{
		suits:        c.suits,
		ranks:        c.ranks,
		handSize:     c.handSize,
		deck:         full,
		trump:        c.trump,
		players:      make([]Player, numPlayers),
		talon:        talon,
		attacker:     0,
		defender:     1,
		attackerMove: true,
		lastPlayer:   NoPosition,
	}
	for i := range s.players {
		s.players[i] = newPlayer(i, full, positions)
	}
	s.deal()
	return s, nil
}

func (c *config) validate(numPlayers int) error {
	if c.suits < 1 || c.suits > MaxSuits || c.ranks < 1 || c.ranks > MaxRanks {
		return fmt.Errorf("%w: deck of %d suits x %d ranks", ErrInvalidConfig, c.suits, c.ranks)
	}
	if c.handSize < 1 {
		return fmt.Errorf("%w: hand size %d", ErrInvalidConfig, c.handSize)
	}
	if numPlayers*c.handSize > c.suits*c.ranks {
		return fmt.Errorf("%w: %d players cannot be dealt %d cards from %d", ErrInvalidConfig, numPlayers, c.handSize, c.suits*c.ranks)
	}
	if c.trump >= c.suits {
		return fmt.Errorf("%w: trump suit %d", ErrInvalidConfig, c.trump)
	}
	if c.talon != nil {
		want := NewCardSet(Deck(c.suits, c.ranks)...)
		if len(c.talon) != want.Len() || NewCardSet(c.talon...) != want {
			return fmt.Errorf("%w: talon is not a permutation of the deck", ErrInvalidConfig)
		}
	}
	return nil
}

func (s *State) deal() {
	for i := 0; i < s.handSize; i++ {
		for seat := range s.players {
			s.privatePickUp(seat, s.draw())
		}
	}
}

func (s *State) draw() Card {
	top := s.talon[len(s.talon)-1]
	s.talon = s.talon[:len(s.talon)-1]
	return top
}

// Clone returns a deep copy sharing no mutable data with s.
func (s *State) Clone() *State {
	clone := *s
	clone.players = make([]Player, len(s.players))
	for i, p := range s.players {
		clone.players[i] = p.clone()
	}
	clone.talon = cloneCards(s.talon)
	clone.attack = cloneCards(s.attack)
	clone.defense = cloneCards(s.defense)
	clone.lastAtk = cloneCards(s.lastAtk)
	clone.lastDef = cloneCards(s.lastDef)
	if s.lastAction != nil {
		a := Action{Kind: s.lastAction.Kind, Cards: cloneCards(s.lastAction.Cards)}
		clone.lastAction = &a
	}
	return &clone
}

func cloneCards(cards []Card) []Card {
	if cards == nil {
		return nil
	}
	out := make([]Card, len(cards))
	copy(out, cards)
	return out
}

func (s *State) Phase() Phase {
	switch {
	case s.IsTerminal():
		return OverPhase
	case !s.attackerMove:
		return DefendPhase
	case s.defenderEating:
		return PickupPhase
	case len(s.attack) == 0:
		return OpenPhase
	default:
		return AttackPhase
	}
}

func (s *State) IsTrump(c Card) bool { return c.Suit == s.trump }
func (s *State) Trump() int          { return s.trump }
func (s *State) Round() int          { return s.round }
func (s *State) HandSizeTarget() int { return s.handSize }
func (s *State) Deck() CardSet       { return s.deck }
func (s *State) TalonSize() int      { return len(s.talon) }
func (s *State) Discard() CardSet    { return s.discard }
func (s *State) NumPlayers() int     { return len(s.players) }
func (s *State) Attacker() int       { return s.attacker }
func (s *State) Defender() int       { return s.defender }
func (s *State) IsAttackerMove() bool {
	return s.attackerMove
}
func (s *State) DefenderEating() bool {
	return s.defenderEating
}

func (s *State) AttackCards() []Card  { return cloneCards(s.attack) }
func (s *State) DefenseCards() []Card { return cloneCards(s.defense) }
func (s *State) LastAttack() []Card   { return cloneCards(s.lastAtk) }
func (s *State) LastDefense() []Card  { return cloneCards(s.lastDef) }

// PlayerNumbers maps each active seat to the position of the player occupying it.
func (s *State) PlayerNumbers() []int {
	numbers := make([]int, len(s.players))
	for i, p := range s.players {
		numbers[i] = p.Position
	}
	return numbers
}

// SeatOf returns the seat of the player at position, or -1 if eliminated.
func (s *State) SeatOf(position int) int {
	for i, p := range s.players {
		if p.Position == position {
			return i
		}
	}
	return -1
}

func (s *State) Hand(seat int) []Card { return cloneCards(s.players[seat].hand) }
func (s *State) HandSize(seat int) int {
	return len(s.players[seat].hand)
}

// TalonBelief is what the player at seat thinks may still be in the talon.
func (s *State) TalonBelief(seat int) CardSet { return s.players[seat].talonBelief }

// HandBelief is what the player at seat knows to be in the hand of the player at other.
func (s *State) HandBelief(seat, other int) CardSet {
	return s.players[seat].handBeliefs[s.players[other].Position]
}

// CurrentSeat is the seat that must act next.
func (s *State) CurrentSeat() int {
	if s.attackerMove {
		return s.attacker
	}
	return s.defender
}

// CurrentPosition is the position of the player that must act next, or NoPosition once nobody is left.
func (s *State) CurrentPosition() int {
	if len(s.players) == 0 {
		return NoPosition
	}
	return s.players[s.CurrentSeat()].Position
}

// LastPlayer is the position of the player that made the most recent move.
func (s *State) LastPlayer() int { return s.lastPlayer }

// LastAction is the most recent move, if any.
func (s *State) LastAction() (Action, bool) {
	if s.lastAction == nil {
		return Action{}, false
	}
	return *s.lastAction, true
}
