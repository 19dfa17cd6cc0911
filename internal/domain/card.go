package domain

import "fmt"

// Suit of a French-suited playing card.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the suit's display name.
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	default:
		return "Spades"
	}
}

// Card is a single playing card. Identity is plain value equality on the
// (Suit, FaceValue) pair; there is no synthetic id.
type Card struct {
	Suit      Suit
	FaceValue int // 1..13, Ace=1
}

// Rules configures how face values map to comparison ranks.
type Rules struct {
	AceHigh bool // Ace ranks above King (14)
	TwoHigh bool // Two ranks above a high Ace (15)
}

// EffectiveRank maps the card's face value to its comparison rank under the
// given rules. Every ordering and legality decision goes through this; the
// raw face value only drives display.
func (c Card) EffectiveRank(r Rules) int {
	if c.FaceValue < 1 || c.FaceValue > 13 {
		panic(fmt.Sprintf("domain: card face value %d out of range", c.FaceValue))
	}
	switch {
	case c.FaceValue == 1 && r.AceHigh:
		return 14
	case c.FaceValue == 2 && r.TwoHigh:
		return 15
	default:
		return c.FaceValue
	}
}

// FaceName returns the display name of the card's face value.
func (c Card) FaceName() string {
	switch c.FaceValue {
	case 1:
		return "Ace"
	case 11:
		return "Jack"
	case 12:
		return "Queen"
	case 13:
		return "King"
	default:
		return fmt.Sprintf("%d", c.FaceValue)
	}
}

// String renders the card for logs and errors, e.g. "Ace of Spades".
func (c Card) String() string {
	return c.FaceName() + " of " + c.Suit.String()
}

// ImageAsset returns the artwork file name for the card, matching the asset
// naming scheme the display layer ships with (suit letter, then pip letter).
func (c Card) ImageAsset() string {
	var uri string
	switch c.Suit {
	case Clubs:
		uri = "k"
	case Diamonds:
		uri = "l"
	case Hearts:
		uri = "s"
	case Spades:
		uri = "p"
	}

	switch c.FaceValue {
	case 1:
		uri += "a"
	case 11:
		uri += "j"
	case 12:
		uri += "q"
	case 13:
		uri += "k"
	default:
		uri += fmt.Sprintf("%d", c.FaceValue)
	}

	return uri + ".png"
}
