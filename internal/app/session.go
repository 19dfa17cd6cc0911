package app

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"daifugo/internal/config"
	"daifugo/internal/domain"
)

var (
	ErrCardNotInHand = errors.New("card is not in the player's hand")
	ErrNotSelectable = errors.New("card is not selectable right now")
)

// Session owns one round of the game: the dealt hands, the shared pile, and
// the turn engine. It is the single authority over that state; exactly one
// caller drives it, one command at a time.
type Session struct {
	ID uuid.UUID

	cfg     config.Config
	log     *logrus.Entry
	engine  *domain.Engine
	pile    *domain.Pile
	hands   []*domain.Hand
	undealt int
}

// NewSession validates the config, deals a shuffled deck, and returns the
// session together with one HandDealt event per player. A nil rng gets a
// time-seeded default.
func NewSession(cfg config.Config, rng *rand.Rand) (*Session, []Event, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	rules := domain.Rules{AceHigh: cfg.AceHigh, TwoHigh: cfg.TwoHigh}
	deck := domain.Shuffle(domain.NewDeck(), rng)
	hands := domain.Deal(deck, cfg.PlayerCount, rules)
	pile := domain.NewPile(rules)

	engine := domain.NewEngine(hands, pile, rules, domain.EngineConfig{
		TerminateRank:      cfg.TerminateRank,
		RevolutionsEnabled: cfg.RevolutionsEnabled,
	})

	s := &Session{
		ID:      uuid.New(),
		cfg:     cfg,
		engine:  engine,
		pile:    pile,
		hands:   hands,
		undealt: domain.DeckSize - cfg.PlayerCount*(domain.DeckSize/cfg.PlayerCount),
	}
	s.log = logrus.WithField("session", s.ID.String())

	events := make([]Event, 0, len(hands))
	for _, h := range hands {
		h.Sort(cfg.SortDescending)
		events = append(events, Event{
			Kind:    EventHandDealt,
			Payload: HandDealtPayload{PlayerID: h.OwnerID, Cards: h.Cards()},
		})
	}

	s.log.WithFields(logrus.Fields{
		"players":        cfg.PlayerCount,
		"undealt":        s.undealt,
		"terminate_rank": cfg.TerminateRank,
	}).Info("session started")

	return s, events, nil
}

// Select toggles the card into the player's selection. The card must be in
// that player's hand and pass the selectability rules; selecting a card that
// is already selected is a no-op.
func (s *Session) Select(playerID int, c domain.Card) error {
	h := s.engine.Hand(playerID)
	if h == nil {
		return domain.ErrUnknownPlayer
	}
	if !h.Contains(c) {
		return ErrCardNotInHand
	}
	if h.IsSelected(c) {
		return nil
	}
	if !domain.IsSelectable(c, h, s.pile, s.engine.RevolutionActive()) {
		return ErrNotSelectable
	}
	h.Select(c)
	return nil
}

// Deselect removes the card from the player's selection; removing an
// unselected card is a no-op.
func (s *Session) Deselect(playerID int, c domain.Card) error {
	h := s.engine.Hand(playerID)
	if h == nil {
		return domain.ErrUnknownPlayer
	}
	if !h.Contains(c) {
		return ErrCardNotInHand
	}
	h.Deselect(c)
	return nil
}

// Play commits the player's current selection and emits the resulting
// events. On error no state changes.
func (s *Session) Play(playerID int) ([]Event, error) {
	res, err := s.engine.Play(playerID)
	if err != nil {
		return nil, err
	}
	s.verifyCardConservation()

	s.log.WithFields(logrus.Fields{
		"player": playerID,
		"cards":  len(res.Cards),
		"rank":   res.Rank,
	}).Info("cards played")

	events := []Event{{
		Kind: EventCardPlayed,
		Payload: CardPlayedPayload{
			PlayerID:     playerID,
			Cards:        res.Cards,
			Rank:         res.Rank,
			NextPlayerID: s.engine.CurrentPlayer(),
		},
	}}

	if res.RevolutionToggled {
		s.log.WithField("active", s.engine.RevolutionActive()).Info("revolution toggled")
		events = append(events, Event{
			Kind:    EventRevolution,
			Payload: RevolutionPayload{Active: s.engine.RevolutionActive()},
		})
	}
	if res.PileCleared {
		events = append(events, Event{
			Kind:    EventPileCleared,
			Payload: PileClearedPayload{Reason: ClearReasonTerminateRank},
		})
	}
	if res.PlayerFinished {
		events = append(events, Event{
			Kind:    EventPlayerFinished,
			Payload: PlayerFinishedPayload{PlayerID: playerID, Place: res.Place},
		})
	}
	if res.RoundEnded {
		scores := s.engine.Scores()
		s.log.WithField("victory_order", s.engine.VictoryOrder()).Info("round ended")
		events = append(events, Event{
			Kind:    EventRoundEnded,
			Payload: RoundEndedPayload{VictoryOrder: s.engine.VictoryOrder(), Scores: scores},
		})
	}

	return events, nil
}

// Pass gives up the player's turn and emits the resulting events.
func (s *Session) Pass(playerID int) ([]Event, error) {
	cleared, err := s.engine.Pass(playerID)
	if err != nil {
		return nil, err
	}

	s.log.WithField("player", playerID).Info("turn passed")

	events := []Event{{
		Kind:    EventTurnPassed,
		Payload: TurnPassedPayload{PlayerID: playerID, NextPlayerID: s.engine.CurrentPlayer()},
	}}
	if cleared {
		events = append(events, Event{
			Kind:    EventPileCleared,
			Payload: PileClearedPayload{Reason: ClearReasonAllPassed},
		})
	}
	return events, nil
}

/* ---- query surface ---- */

// Hand returns the player's cards in display order.
func (s *Session) Hand(playerID int) []domain.Card {
	if h := s.engine.Hand(playerID); h != nil {
		return h.Cards()
	}
	return nil
}

// Selected returns the player's current selection in toggle order.
func (s *Session) Selected(playerID int) []domain.Card {
	if h := s.engine.Hand(playerID); h != nil {
		return h.Selected()
	}
	return nil
}

// IsSelected reports whether the player currently has the card selected.
func (s *Session) IsSelected(playerID int, c domain.Card) bool {
	h := s.engine.Hand(playerID)
	return h != nil && h.IsSelected(c)
}

// Selectable reports whether the player could toggle the card into their
// selection right now. Pure read; the display layer calls it per card.
func (s *Session) Selectable(playerID int, c domain.Card) bool {
	h := s.engine.Hand(playerID)
	if h == nil {
		return false
	}
	return domain.IsSelectable(c, h, s.pile, s.engine.RevolutionActive())
}

// PileTop returns the rank and quantity of the pile's top play.
func (s *Session) PileTop() (rank, quantity int) { return s.pile.PeekTop() }

// TopCards returns the displayable cards of the top play, most recent first.
func (s *Session) TopCards() []domain.Card { return s.pile.TopCards() }

// CurrentPlayer returns whose turn it is.
func (s *Session) CurrentPlayer() int { return s.engine.CurrentPlayer() }

// PlayersRemaining returns the unfinished player ids in turn order.
func (s *Session) PlayersRemaining() []int { return s.engine.PlayersRemaining() }

// VictoryOrder returns players in the order they finished.
func (s *Session) VictoryOrder() []int { return s.engine.VictoryOrder() }

// RevolutionActive reports whether rank comparison is inverted.
func (s *Session) RevolutionActive() bool { return s.engine.RevolutionActive() }

// RoundEnded reports whether the round is over.
func (s *Session) RoundEnded() bool { return s.engine.RoundEnded() }

// Scores returns points per player: 2 for first place, 1 for second.
func (s *Session) Scores() map[int]int { return s.engine.Scores() }

// PlayerCount returns the number of seats this session was dealt for.
func (s *Session) PlayerCount() int { return s.cfg.PlayerCount }

// verifyCardConservation checks that every dealt card is in exactly one
// place. A mismatch means a defect in deal or commit logic, not a user
// error, so it halts instead of continuing on corrupt state.
func (s *Session) verifyCardConservation() {
	seen := make(map[domain.Card]int, domain.DeckSize)
	for _, c := range s.pile.History() {
		seen[c]++
	}
	for _, h := range s.hands {
		for _, c := range h.Cards() {
			seen[c]++
		}
	}
	for c, n := range seen {
		if n > 1 {
			panic(fmt.Sprintf("app: card %v counted %d times across hands and pile", c, n))
		}
	}
	if len(seen)+s.undealt != domain.DeckSize {
		panic(fmt.Sprintf("app: card accounting mismatch: %d in play, %d undealt", len(seen), s.undealt))
	}
}
