package domain

import (
	"math/rand"
	"sort"
)

// DeckSize is the card count of a traditional French-suited deck, no jokers.
const DeckSize = 52

// NewDeck returns the full 52-card deck in suit-major, face-ascending order.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, s := range []Suit{Clubs, Diamonds, Hearts, Spades} {
		for v := 1; v <= 13; v++ {
			deck = append(deck, Card{Suit: s, FaceValue: v})
		}
	}
	return deck
}

// Shuffle returns a uniformly shuffled copy of the deck: one remaining card
// is drawn at random and appended to the output until the input is exhausted.
// The input deck is not modified.
func Shuffle(deck []Card, rng *rand.Rand) []Card {
	in := append([]Card(nil), deck...)
	out := make([]Card, 0, len(in))
	for len(in) > 0 {
		i := rng.Intn(len(in))
		out = append(out, in[i])
		in = append(in[:i], in[i+1:]...)
	}
	return out
}

// Deal splits the deck into playerCount hands of floor(len/playerCount)
// contiguous cards each, owners numbered 1..playerCount. Remainder cards are
// dealt to no one. Each hand copies its slice, so the deck and the hands
// share no storage.
func Deal(deck []Card, playerCount int, rules Rules) []*Hand {
	per := len(deck) / playerCount
	hands := make([]*Hand, 0, playerCount)
	for i := 0; i < playerCount; i++ {
		hands = append(hands, NewHand(i+1, deck[per*i:per*(i+1)], rules))
	}
	return hands
}

// SortHand orders cards ascending by effective rank, except that raw aces
// (when AceHigh) and raw twos (when TwoHigh) always end up after every other
// card. reverse flips the ascending sort before the held cards are moved to
// the tail, so their tail position is unaffected by it.
func SortHand(cards []Card, rules Rules, reverse bool) {
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].EffectiveRank(rules) < cards[j].EffectiveRank(rules)
	})
	if reverse {
		for i, j := 0, len(cards)-1; i < j; i, j = i+1, j-1 {
			cards[i], cards[j] = cards[j], cards[i]
		}
	}

	regular := make([]Card, 0, len(cards))
	held := make([]Card, 0, 8)
	for _, c := range cards {
		if (rules.AceHigh && c.FaceValue == 1) || (rules.TwoHigh && c.FaceValue == 2) {
			held = append(held, c)
		} else {
			regular = append(regular, c)
		}
	}
	copy(cards, regular)
	copy(cards[len(regular):], held)
}
