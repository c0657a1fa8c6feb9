package game

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

const (
	MaxSuits = 4
	MaxRanks = 16

	DefaultSuits    = 4
	DefaultRanks    = 9 // 6 through ace
	DefaultHandSize = 6
)

// Card is an immutable (rank, suit) pair. Higher ranks beat lower ranks of the same suit.
type Card struct {
	Rank int
	Suit int
}

var (
	suitSymbols = []string{"♠", "♣", "♥", "♦"}
	shortRanks  = []string{"6", "7", "8", "9", "10", "J", "Q", "K", "A"}
	fullRanks   = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}
)

// String labels the card for the standard 36-card deck.
func (c Card) String() string {
	return c.Label(DefaultRanks)
}

// Label names the card as it reads in a deck with the given number of ranks.
func (c Card) Label(ranks int) string {
	if c.Suit < 0 || c.Suit >= len(suitSymbols) || c.Rank < 0 {
		return fmt.Sprintf("(%d,%d)", c.Rank, c.Suit)
	}
	switch {
	case ranks == len(shortRanks) && c.Rank < ranks:
		return shortRanks[c.Rank] + suitSymbols[c.Suit]
	case ranks == len(fullRanks) && c.Rank < ranks:
		return fullRanks[c.Rank] + suitSymbols[c.Suit]
	}
	return fmt.Sprintf("(%d,%d)", c.Rank, c.Suit)
}

// SuitSymbol names a suit, e.g. for announcing trump.
func SuitSymbol(suit int) string {
	if suit < 0 || suit >= len(suitSymbols) {
		return strconv.Itoa(suit)
	}
	return suitSymbols[suit]
}

func (c Card) bit() uint64 {
	return 1 << (uint(c.Suit)*MaxRanks + uint(c.Rank))
}

// Deck returns every card of a suits x ranks deck, suit-major.
func Deck(suits, ranks int) []Card {
	cards := make([]Card, 0, suits*ranks)
	for suit := 0; suit < suits; suit++ {
		for rank := 0; rank < ranks; rank++ {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}
	return cards
}

// CardSet is an unordered set of cards. It is a plain value: assigning it copies it.
type CardSet uint64

func NewCardSet(cards ...Card) CardSet {
	var s CardSet
	for _, c := range cards {
		s = s.Add(c)
	}
	return s
}

func (s CardSet) Add(c Card) CardSet    { return s | CardSet(c.bit()) }
func (s CardSet) Remove(c Card) CardSet { return s &^ CardSet(c.bit()) }
func (s CardSet) Has(c Card) bool       { return s&CardSet(c.bit()) != 0 }
func (s CardSet) Len() int              { return bits.OnesCount64(uint64(s)) }
func (s CardSet) Union(o CardSet) CardSet {
	return s | o
}
func (s CardSet) Minus(o CardSet) CardSet {
	return s &^ o
}

// Cards lists the set ordered by suit, then rank.
func (s CardSet) Cards() []Card {
	cards := make([]Card, 0, s.Len())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		i := bits.TrailingZeros64(rest)
		cards = append(cards, Card{Rank: i % MaxRanks, Suit: i / MaxRanks})
	}
	return cards
}

func (s CardSet) String() string {
	return formatCards(s.Cards())
}

func formatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
