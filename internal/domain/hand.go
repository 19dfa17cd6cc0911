package domain

// Hand is one player's cards plus the cards tentatively selected to play.
// The selection preserves toggle order and is always a subset of the hand;
// removing a card from the hand also removes it from the selection.
type Hand struct {
	OwnerID  int
	rules    Rules
	cards    []Card
	selected []Card // selection order, oldest first
}

// NewHand builds a hand over a copy of cards; the caller keeps no handle
// into the hand's storage.
func NewHand(ownerID int, cards []Card, rules Rules) *Hand {
	return &Hand{
		OwnerID: ownerID,
		rules:   rules,
		cards:   append([]Card(nil), cards...),
	}
}

// Cards returns a copy of the hand in display order.
func (h *Hand) Cards() []Card {
	return append([]Card(nil), h.cards...)
}

// Count returns the number of cards held.
func (h *Hand) Count() int { return len(h.cards) }

// Empty reports whether the hand has no cards left.
func (h *Hand) Empty() bool { return len(h.cards) == 0 }

// Contains reports whether the card is in the hand.
func (h *Hand) Contains(c Card) bool { return containsCard(h.cards, c) }

// IsSelected reports whether the card is currently selected.
func (h *Hand) IsSelected(c Card) bool { return containsCard(h.selected, c) }

// HasSelection reports whether any card is selected.
func (h *Hand) HasSelection() bool { return len(h.selected) > 0 }

// SelectionSize returns the number of selected cards.
func (h *Hand) SelectionSize() int { return len(h.selected) }

// Selected returns a copy of the selection in toggle order.
func (h *Hand) Selected() []Card {
	return append([]Card(nil), h.selected...)
}

// LastSelected returns the most recently selected card, if any.
func (h *Hand) LastSelected() (Card, bool) {
	if len(h.selected) == 0 {
		return Card{}, false
	}
	return h.selected[len(h.selected)-1], true
}

// Select adds the card to the selection. Selecting a card that is already
// selected, or not in the hand, is a no-op.
func (h *Hand) Select(c Card) {
	if !h.Contains(c) || h.IsSelected(c) {
		return
	}
	h.selected = append(h.selected, c)
}

// Deselect removes the card from the selection. Deselecting an unselected
// card is a no-op.
func (h *Hand) Deselect(c Card) {
	for i, sc := range h.selected {
		if sc == c {
			h.selected = append(h.selected[:i], h.selected[i+1:]...)
			return
		}
	}
}

// CommitSelection removes the selected cards from the hand, clears the
// selection, and returns the removed cards in their selection order. This is
// the only way cards leave a hand.
func (h *Hand) CommitSelection() []Card {
	if len(h.selected) == 0 {
		return nil
	}
	played := h.selected
	h.selected = nil
	h.cards = removeCards(h.cards, played)
	return played
}

// MultiplesOfSize returns every card belonging to a same-effective-rank group
// of exactly quota cards, or of quota or more when orBetter is set. Cards are
// returned in hand order.
func (h *Hand) MultiplesOfSize(quota int, orBetter bool) []Card {
	sizes := make(map[int]int, len(h.cards))
	for _, c := range h.cards {
		sizes[c.EffectiveRank(h.rules)]++
	}

	var out []Card
	for _, c := range h.cards {
		n := sizes[c.EffectiveRank(h.rules)]
		if n == quota || (orBetter && n > quota) {
			out = append(out, c)
		}
	}
	return out
}

// Sort orders the hand for display; see SortHand for the held-card rule.
func (h *Hand) Sort(reverse bool) {
	SortHand(h.cards, h.rules, reverse)
}

func containsCard(cards []Card, c Card) bool {
	for _, x := range cards {
		if x == c {
			return true
		}
	}
	return false
}

// removeCards removes the specified cards from a hand and returns the
// updated hand.
func removeCards(hand []Card, toRemove []Card) []Card {
	if len(toRemove) == 0 || len(hand) == 0 {
		return hand
	}

	removeCounts := make(map[Card]int, len(toRemove))
	for _, card := range toRemove {
		removeCounts[card]++
	}

	updated := make([]Card, 0, len(hand))
	for _, card := range hand {
		if count, ok := removeCounts[card]; ok && count > 0 {
			removeCounts[card] = count - 1
			continue
		}
		updated = append(updated, card)
	}

	return updated
}
