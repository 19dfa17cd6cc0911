package domain

import "testing"

var testRules = Rules{AceHigh: true, TwoHigh: true}

func card(s Suit, v int) Card { return Card{Suit: s, FaceValue: v} }

func pileWithTop(t *testing.T, group ...Card) *Pile {
	t.Helper()
	p := NewPile(testRules)
	if len(group) > 0 {
		p.Place(group)
	}
	return p
}

func TestIsSelectableAgainstSingle(t *testing.T) {
	pile := pileWithTop(t, card(Clubs, 8))
	hand := NewHand(1, []Card{card(Hearts, 9), card(Spades, 5), card(Diamonds, 10)}, testRules)

	tests := []struct {
		name     string
		card     Card
		expected bool
	}{
		{"Higher rank beats", card(Hearts, 9), true},
		{"Lower rank loses", card(Spades, 5), false},
		{"Another higher rank beats", card(Diamonds, 10), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSelectable(tt.card, hand, pile, false); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}

	// With the 9 selected and a single required, nothing else may join the
	// group.
	hand.Select(card(Hearts, 9))
	if IsSelectable(card(Diamonds, 10), hand, pile, false) {
		t.Error("selection must stay capped at the top play's quantity")
	}
	if IsSelectable(card(Spades, 5), hand, pile, false) {
		t.Error("lower card must stay unselectable")
	}
}

func TestIsSelectableUnderRevolution(t *testing.T) {
	pile := pileWithTop(t, card(Clubs, 10))
	hand := NewHand(1, []Card{card(Hearts, 3), card(Spades, 13)}, testRules)

	if !IsSelectable(card(Hearts, 3), hand, pile, true) {
		t.Error("low card must be selectable under revolution")
	}
	if IsSelectable(card(Spades, 13), hand, pile, true) {
		t.Error("high card must not be selectable under revolution")
	}
}

func TestIsSelectableOpeningPlay(t *testing.T) {
	pile := NewPile(testRules)
	hand := NewHand(1, []Card{card(Clubs, 4), card(Hearts, 4), card(Spades, 11)}, testRules)

	// Open pile, empty selection: anything goes.
	for _, c := range hand.Cards() {
		if !IsSelectable(c, hand, pile, false) {
			t.Errorf("%v should open any play", c)
		}
	}

	// Once a card is chosen, only its rank extends the opening group.
	hand.Select(card(Clubs, 4))
	if !IsSelectable(card(Hearts, 4), hand, pile, false) {
		t.Error("same rank should extend the opening group")
	}
	if IsSelectable(card(Spades, 11), hand, pile, false) {
		t.Error("different rank must not extend the opening group")
	}
}

func TestIsSelectableGroupSizeRequired(t *testing.T) {
	pile := pileWithTop(t, card(Clubs, 8), card(Hearts, 8))
	hand := NewHand(1, []Card{
		card(Spades, 9),
		card(Clubs, 10), card(Hearts, 10),
		card(Clubs, 11), card(Hearts, 11), card(Spades, 11),
	}, testRules)

	tests := []struct {
		name     string
		card     Card
		expected bool
	}{
		{"Lone card cannot form a pair", card(Spades, 9), false},
		{"Pair member can", card(Clubs, 10), true},
		{"Trio member can (or better)", card(Spades, 11), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSelectable(tt.card, hand, pile, false); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestIsSelectableSelectedCardStaysEligible(t *testing.T) {
	// A selected card that fails the rank comparison must still be reported
	// selectable while the group has room, so it can be toggled off.
	pile := pileWithTop(t, card(Clubs, 10), card(Hearts, 10))
	hand := NewHand(1, []Card{card(Clubs, 9), card(Diamonds, 9)}, testRules)
	hand.Select(card(Clubs, 9))

	// 9 fails the "strictly greater" check against the 10s, but it is
	// already selected.
	if !IsSelectable(card(Clubs, 9), hand, pile, false) {
		t.Error("selected card should remain eligible despite failing the rank check")
	}
	if !IsSelectable(card(Diamonds, 9), hand, pile, true) {
		t.Error("second pair member should be selectable under revolution")
	}
	if IsSelectable(card(Diamonds, 9), hand, pile, false) {
		t.Error("unselected lower card must fail the normal comparison")
	}
}

func TestIsSelectableSelectionCannotExceedQuota(t *testing.T) {
	pile := pileWithTop(t, card(Clubs, 8), card(Hearts, 8))
	hand := NewHand(1, []Card{
		card(Clubs, 10), card(Hearts, 10), card(Spades, 10),
	}, testRules)

	hand.Select(card(Clubs, 10))
	if !IsSelectable(card(Hearts, 10), hand, pile, false) {
		t.Fatal("second pair member should be selectable")
	}
	hand.Select(card(Hearts, 10))
	if IsSelectable(card(Spades, 10), hand, pile, false) {
		t.Error("selection must not grow past the required quantity")
	}
}
