package game

import (
	"strings"
)

// ActionKind tags what an action does. Which kinds are available depends on the phase.
type ActionKind int

const (
	PassAction     ActionKind = iota // hand the attack to the next eligible attacker
	RideAction                       // end a defended round, table goes to discard
	AddAction                        // play cards onto the attack (or into a pickup)
	BlockAction                      // end additions to a pickup
	EatAction                        // defender takes the table
	TransferAction                   // defender redirects the attack to the next seat
	DefendAction                     // defender beats attack cards
)

var kindNames = [...]string{"pass", "ride", "add", "block", "eat", "transfer", "defend"}

func (k ActionKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// carriesCards reports whether actions of this kind must list cards.
func (k ActionKind) carriesCards() bool {
	return k == AddAction || k == TransferAction || k == DefendAction
}

// Action is a tagged (kind, cards) pair. For defend the card order is positional.
type Action struct {
	Kind  ActionKind
	Cards []Card
}

func Pass() Action  { return Action{Kind: PassAction} }
func Ride() Action  { return Action{Kind: RideAction} }
func Block() Action { return Action{Kind: BlockAction} }
func Eat() Action   { return Action{Kind: EatAction} }

func Add(cards ...Card) Action      { return Action{Kind: AddAction, Cards: cards} }
func Transfer(cards ...Card) Action { return Action{Kind: TransferAction, Cards: cards} }
func Defend(cards ...Card) Action   { return Action{Kind: DefendAction, Cards: cards} }

// Key identifies the action; two actions with the same key have the same effect.
func (a Action) Key() string {
	var b strings.Builder
	b.WriteString(a.Kind.String())
	for _, c := range a.Cards {
		b.WriteByte(' ')
		b.WriteString(c.String())
	}
	return b.String()
}

func (a Action) Equal(other Action) bool {
	if a.Kind != other.Kind || len(a.Cards) != len(other.Cards) {
		return false
	}
	for i := range a.Cards {
		if a.Cards[i] != other.Cards[i] {
			return false
		}
	}
	return true
}

func (a Action) String() string {
	if len(a.Cards) == 0 {
		return a.Kind.String()
	}
	return a.Kind.String() + " " + formatCards(a.Cards)
}

// ContainsAction reports whether actions holds an action equal to a.
func ContainsAction(actions []Action, a Action) bool {
	for _, candidate := range actions {
		if candidate.Equal(a) {
			return true
		}
	}
	return false
}
