package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/DukeEngine/internal/game/events"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/rules"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/states"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/tile"
)

// Player chooses moves for one side of a match. NextMove must not mutate gs.
type Player interface {
	Name() string
	NextMove(rng *rand.Rand, gs *GameState) (PossibleMove, bool)
}

// MatchResult summarizes a finished match
type MatchResult struct {
	GameID           string
	TopPlayer        string
	BottomPlayer     string
	Result           rules.GameResult
	Turns            int
	Duration         time.Duration
	TurnLimitReached bool
	Seed             int64
}

// WinnerName is the name of the winning player, empty unless the match was won
func (r MatchResult) WinnerName() string {
	if r.Result.Kind != rules.Won {
		return ""
	}
	if r.Result.Winner == tile.TopPlayer {
		return r.TopPlayer
	}
	return r.BottomPlayer
}

// Match plays two players against each other on one GameState
type Match struct {
	gameID        string
	gs            *GameState
	players       [2]Player
	rng           *rand.Rand
	seed          int64
	maxTurns      int
	logger        zerolog.Logger
	eventBus      *events.EventBus
	stateMachine  *states.StateMachine
	turnProcessor *TurnProcessor

	moves            []PossibleMove
	turnLimitReached bool
}

func (m *Match) GameID() string               { return m.gameID }
func (m *Match) State() *GameState            { return m.gs }
func (m *Match) Phase() states.MatchPhase     { return m.stateMachine.CurrentPhase() }
func (m *Match) EventBus() *events.EventBus   { return m.eventBus }
func (m *Match) History() []states.Transition { return m.stateMachine.History() }

// Moves returns the moves played so far
func (m *Match) Moves() []PossibleMove {
	return append([]PossibleMove(nil), m.moves...)
}

// Run plays turns until the match ends or ctx is done. A match that stops
// on an error is moved to PhaseAborted and the error is returned.
func (m *Match) Run(ctx context.Context) (MatchResult, error) {
	for !m.Phase().IsTerminal() {
		if err := m.Step(ctx); err != nil {
			m.abort(err)
			return m.Result(), err
		}
	}
	return m.Result(), nil
}

// Step plays a single turn
func (m *Match) Step(ctx context.Context) error {
	return m.turnProcessor.ProcessTurn(ctx)
}

// Result reports the match outcome so far
func (m *Match) Result() MatchResult {
	return MatchResult{
		GameID:           m.gameID,
		TopPlayer:        m.players[tile.TopPlayer].Name(),
		BottomPlayer:     m.players[tile.BottomPlayer].Name(),
		Result:           m.gs.GameResult(),
		Turns:            m.gs.Turn(),
		Duration:         m.stateMachine.Context().Elapsed(),
		TurnLimitReached: m.turnLimitReached,
		Seed:             m.seed,
	}
}

// checkGameOver ends the match once a result is reached or the turn limit is hit
func (m *Match) checkGameOver() {
	result := m.gs.GameResult()
	switch {
	case result.IsOver():
		m.end(result, "result reached")
	case m.maxTurns > 0 && m.gs.Turn() >= m.maxTurns:
		m.turnLimitReached = true
		m.end(result, "turn limit reached")
	}
}

func (m *Match) end(result rules.GameResult, reason string) {
	mc := m.stateMachine.Context()
	mc.Turns = m.gs.Turn()
	mc.Result = result.String()
	if err := m.stateMachine.TransitionTo(states.PhaseEnded, reason); err != nil {
		m.logger.Error().Err(err).Msg("Failed to end match")
		return
	}
	m.eventBus.Publish(events.NewMatchEndedEvent(m.gameID, result.String(), mc.Elapsed(), m.gs.Turn()))
}

func (m *Match) abort(err error) {
	if m.Phase().IsTerminal() {
		return
	}
	mc := m.stateMachine.Context()
	mc.Turns = m.gs.Turn()
	mc.Error = err
	if tErr := m.stateMachine.TransitionTo(states.PhaseAborted, err.Error()); tErr != nil {
		m.logger.Error().Err(tErr).Msg("Failed to abort match")
	}
}
