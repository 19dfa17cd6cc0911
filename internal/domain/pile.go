package domain

// Pile is the shared discard stack. History is append-only; legality only
// ever depends on the top play, the rank and size of the most recently
// placed group.
type Pile struct {
	rules    Rules
	cards    []Card
	topRank  int // 0 while no top play constrains the next one
	topCount int
}

// NewPile returns an empty pile comparing ranks under the given rules.
func NewPile(rules Rules) *Pile {
	return &Pile{rules: rules}
}

// Place appends a same-rank group and records it as the top play. Callers
// guarantee the group is non-empty and single-rank; Place does not
// re-validate.
func (p *Pile) Place(group []Card) {
	p.cards = append(p.cards, group...)
	p.topRank = group[len(group)-1].EffectiveRank(p.rules)
	p.topCount = len(group)
}

// Clear resets the top play. The card history is retained for audit but no
// longer constrains the next play.
func (p *Pile) Clear() {
	p.topRank = 0
	p.topCount = 0
}

// PeekTop returns the rank and quantity of the top play. Quantity 0 means
// the pile is open and any card may lead.
func (p *Pile) PeekTop() (rank, quantity int) {
	return p.topRank, p.topCount
}

// Empty reports whether no top play constrains the next one.
func (p *Pile) Empty() bool { return p.topCount == 0 }

// TopCards returns the cards of the top play, most recent first.
func (p *Pile) TopCards() []Card {
	out := make([]Card, 0, p.topCount)
	for i := 0; i < p.topCount; i++ {
		out = append(out, p.cards[len(p.cards)-1-i])
	}
	return out
}

// Size returns the total number of cards placed over the round, cleared
// plays included.
func (p *Pile) Size() int { return len(p.cards) }

// History returns a copy of every card placed over the round, oldest first.
// Kept for audit; it never drives legality.
func (p *Pile) History() []Card {
	return append([]Card(nil), p.cards...)
}
