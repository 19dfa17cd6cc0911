package app

import "daifugo/internal/domain"

// EventKind identifies session events emitted alongside state transitions.
type EventKind string

const (
	EventHandDealt      EventKind = "hand_dealt"
	EventCardPlayed     EventKind = "card_played"
	EventTurnPassed     EventKind = "turn_passed"
	EventPileCleared    EventKind = "pile_cleared"
	EventRevolution     EventKind = "revolution_toggled"
	EventPlayerFinished EventKind = "player_finished"
	EventRoundEnded     EventKind = "round_ended"
)

// Pile-clear reasons carried by PileClearedPayload.
const (
	ClearReasonTerminateRank = "terminate_rank"
	ClearReasonAllPassed     = "all_passed"
)

// Event is a session event the display layer may render or ignore.
type Event struct {
	Kind    EventKind
	Payload any
}

type HandDealtPayload struct {
	PlayerID int
	Cards    []domain.Card
}

type CardPlayedPayload struct {
	PlayerID     int
	Cards        []domain.Card
	Rank         int
	NextPlayerID int
}

type TurnPassedPayload struct {
	PlayerID     int
	NextPlayerID int
}

type PileClearedPayload struct {
	Reason string
}

type RevolutionPayload struct {
	Active bool
}

type PlayerFinishedPayload struct {
	PlayerID int
	Place    int // 1-based placing
}

type RoundEndedPayload struct {
	VictoryOrder []int
	Scores       map[int]int
}
