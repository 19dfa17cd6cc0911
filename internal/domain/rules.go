package domain

// IsSelectable reports whether the card may be toggled into the hand's
// selection given the pile's top play. Rules apply in order, first match
// deciding:
//
//  1. a required group size the card's rank cannot satisfy rejects it;
//  2. an open pile with nothing selected accepts any card;
//  3. failing the rank comparison (strictly higher normally, strictly lower
//     under revolution) rejects it, unless the card is already selected and
//     so must stay eligible for de-selection;
//  4. with nothing selected, the rank comparison alone decides;
//  5. with a selection started, the card must match the last-selected rank,
//     and against a non-open pile the selection may not grow past the
//     required group size.
//
// Structural constraints come first so a card that can never form a legal
// group is rejected before any rank comparison runs.
func IsSelectable(c Card, h *Hand, p *Pile, revolution bool) bool {
	topRank, topQty := p.PeekTop()

	if topQty > 1 && !containsCard(h.MultiplesOfSize(topQty, true), c) {
		return false
	}

	if topQty == 0 {
		if !h.HasSelection() {
			return true
		}
		last, _ := h.LastSelected()
		return c.EffectiveRank(h.rules) == last.EffectiveRank(h.rules)
	}

	rank := c.EffectiveRank(h.rules)
	beats := rank > topRank
	if revolution {
		beats = rank < topRank
	}
	if !beats && !h.IsSelected(c) {
		return false
	}

	if !h.HasSelection() {
		return beats
	}

	last, _ := h.LastSelected()
	return rank == last.EffectiveRank(h.rules) && h.SelectionSize() < topQty
}
