package domain

import "errors"

var (
	ErrUnknownPlayer    = errors.New("player not found")
	ErrNotYourTurn      = errors.New("not this player's turn")
	ErrPlayerFinished   = errors.New("player already finished")
	ErrRoundEnded       = errors.New("round already ended")
	ErrEmptySelection   = errors.New("no cards selected")
	ErrMixedRank        = errors.New("selected cards are not a single rank")
	ErrWrongQuantity    = errors.New("selection does not match the top play's quantity")
	ErrDoesNotBeatPile  = errors.New("selection does not beat the top play")
	ErrSelectionPending = errors.New("cannot pass with cards selected")
)

// EngineConfig carries the per-round rule switches the engine consults on
// each play.
type EngineConfig struct {
	// TerminateRank is the effective rank whose play clears the pile in the
	// same transition.
	TerminateRank int
	// RevolutionsEnabled gates the four-of-a-kind comparison inversion.
	RevolutionsEnabled bool
}

// Engine is the turn state machine for one round: whose turn it is, the pass
// counter, the revolution flag, and the victory order. Play and Pass are the
// only transitions; each mutates the hands, the pile, and the turn state
// together, atomically from the caller's point of view.
type Engine struct {
	rules Rules
	cfg   EngineConfig

	hands []*Hand
	pile  *Pile

	playerCount  int
	current      int
	passCount    int
	remaining    []int // ascending player ids not yet finished
	victoryOrder []int
	revolution   bool
	ended        bool
}

// NewEngine builds an engine over the dealt hands and an empty pile. Hands
// must be owned by players 1..len(hands) in order; player 1 leads.
func NewEngine(hands []*Hand, pile *Pile, rules Rules, cfg EngineConfig) *Engine {
	remaining := make([]int, len(hands))
	for i := range hands {
		remaining[i] = i + 1
	}
	return &Engine{
		rules:       rules,
		cfg:         cfg,
		hands:       hands,
		pile:        pile,
		playerCount: len(hands),
		current:     1,
		remaining:   remaining,
	}
}

// PlayResult describes everything a single play transition did, so callers
// can report it without re-deriving state.
type PlayResult struct {
	Cards             []Card
	Rank              int
	RevolutionToggled bool
	PileCleared       bool
	PlayerFinished    bool
	Place             int // 1-based placing, set when PlayerFinished
	RoundEnded        bool
}

// Play commits the player's current selection onto the pile and advances the
// turn. The selection must be non-empty and single-rank, and is re-checked
// against the pile here: selections are made card by card and the pile or
// the revolution flag may have moved on since, so a stale selection must be
// rejected rather than land. On error no state changes.
func (e *Engine) Play(playerID int) (PlayResult, error) {
	h, err := e.actingHand(playerID)
	if err != nil {
		return PlayResult{}, err
	}

	sel := h.Selected()
	if len(sel) == 0 {
		return PlayResult{}, ErrEmptySelection
	}
	rank := sel[0].EffectiveRank(e.rules)
	for _, c := range sel[1:] {
		if c.EffectiveRank(e.rules) != rank {
			return PlayResult{}, ErrMixedRank
		}
	}

	if topRank, topQty := e.pile.PeekTop(); topQty > 0 {
		if len(sel) != topQty {
			return PlayResult{}, ErrWrongQuantity
		}
		beats := rank > topRank
		if e.revolution {
			beats = rank < topRank
		}
		if !beats {
			return PlayResult{}, ErrDoesNotBeatPile
		}
	}

	played := h.CommitSelection()
	res := PlayResult{Cards: played, Rank: rank}

	if e.cfg.RevolutionsEnabled && len(played) == 4 {
		e.revolution = !e.revolution
		res.RevolutionToggled = true
	}

	e.pile.Place(played)
	if rank == e.cfg.TerminateRank {
		e.pile.Clear()
		res.PileCleared = true
	}

	if h.Empty() {
		res.PlayerFinished = true
		res.Place = len(e.victoryOrder) + 1
		e.finish(playerID)
		res.RoundEnded = e.ended
	}

	if !e.ended {
		e.current = e.nextRemaining(playerID)
	}
	e.passCount = 0

	return res, nil
}

// Pass gives up the turn. The player must have nothing selected. When every
// other remaining player has passed since the last play, the pile clears and
// the pass counter resets; Pass reports whether that happened.
func (e *Engine) Pass(playerID int) (pileCleared bool, err error) {
	h, err := e.actingHand(playerID)
	if err != nil {
		return false, err
	}
	if h.HasSelection() {
		return false, ErrSelectionPending
	}

	e.current = e.nextRemaining(playerID)
	e.passCount++
	if e.passCount == len(e.remaining)-1 {
		e.pile.Clear()
		e.passCount = 0
		return true, nil
	}
	return false, nil
}

// actingHand validates that playerID may act right now and returns its hand.
func (e *Engine) actingHand(playerID int) (*Hand, error) {
	if e.ended {
		return nil, ErrRoundEnded
	}
	h := e.Hand(playerID)
	if h == nil {
		return nil, ErrUnknownPlayer
	}
	if !e.isRemaining(playerID) {
		return nil, ErrPlayerFinished
	}
	if playerID != e.current {
		return nil, ErrNotYourTurn
	}
	return h, nil
}

// finish records the player's placing. When only one player is left, that
// player is placed last automatically and the round ends.
func (e *Engine) finish(playerID int) {
	e.victoryOrder = append(e.victoryOrder, playerID)
	for i, id := range e.remaining {
		if id == playerID {
			e.remaining = append(e.remaining[:i], e.remaining[i+1:]...)
			break
		}
	}

	if len(e.victoryOrder) == e.playerCount-1 {
		e.victoryOrder = append(e.victoryOrder, e.remaining[0])
		e.remaining = nil
		e.ended = true
	}
}

// nextRemaining returns the next unfinished player id after the given one,
// ascending and wrapping modulo the player count.
func (e *Engine) nextRemaining(after int) int {
	id := after
	for i := 0; i < e.playerCount; i++ {
		id = id%e.playerCount + 1
		if e.isRemaining(id) {
			return id
		}
	}
	return after
}

func (e *Engine) isRemaining(playerID int) bool {
	for _, id := range e.remaining {
		if id == playerID {
			return true
		}
	}
	return false
}

// Hand returns the player's hand, or nil for an unknown id.
func (e *Engine) Hand(playerID int) *Hand {
	if playerID < 1 || playerID > len(e.hands) {
		return nil
	}
	return e.hands[playerID-1]
}

// Pile returns the shared pile.
func (e *Engine) Pile() *Pile { return e.pile }

// CurrentPlayer returns whose turn it is.
func (e *Engine) CurrentPlayer() int { return e.current }

// PassCount returns how many players have passed since the last play.
func (e *Engine) PassCount() int { return e.passCount }

// PlayersRemaining returns the unfinished player ids in turn order.
func (e *Engine) PlayersRemaining() []int {
	return append([]int(nil), e.remaining...)
}

// VictoryOrder returns the player ids in the order they emptied their hands.
func (e *Engine) VictoryOrder() []int {
	return append([]int(nil), e.victoryOrder...)
}

// RevolutionActive reports whether the rank comparison is currently
// inverted.
func (e *Engine) RevolutionActive() bool { return e.revolution }

// RoundEnded reports whether the round is over.
func (e *Engine) RoundEnded() bool { return e.ended }

// Scores returns points per player: 2 for first place, 1 for second, 0 for
// everyone else.
func (e *Engine) Scores() map[int]int {
	scores := make(map[int]int, e.playerCount)
	for id := 1; id <= e.playerCount; id++ {
		scores[id] = 0
	}
	for place, id := range e.victoryOrder {
		switch place {
		case 0:
			scores[id] = 2
		case 1:
			scores[id] = 1
		}
	}
	return scores
}
