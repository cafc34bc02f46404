package game

import (
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/DukeEngine/internal/game/rules"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/tile"
)

// Stats aggregates the results of many matches
type Stats struct {
	Games         int
	TopWins       int
	BottomWins    int
	Ties          int
	Unfinished    int
	TotalTurns    int
	TotalDuration time.Duration
	// WinsByPlayer counts wins per player name
	WinsByPlayer map[string]int
	// GamesByPlayer counts games played per player name
	GamesByPlayer map[string]int
}

func NewStats() *Stats {
	return &Stats{
		WinsByPlayer:  make(map[string]int),
		GamesByPlayer: make(map[string]int),
	}
}

// Record adds one match result
func (s *Stats) Record(r MatchResult) {
	s.Games++
	s.TotalTurns += r.Turns
	s.TotalDuration += r.Duration
	s.GamesByPlayer[r.TopPlayer]++
	if r.BottomPlayer != r.TopPlayer {
		s.GamesByPlayer[r.BottomPlayer]++
	}

	switch r.Result.Kind {
	case rules.Won:
		if r.Result.Winner == tile.TopPlayer {
			s.TopWins++
		} else {
			s.BottomWins++
		}
		s.WinsByPlayer[r.WinnerName()]++
	case rules.Tie:
		s.Ties++
	default:
		s.Unfinished++
	}
}

// AverageTurns is the mean match length, 0 before any match is recorded
func (s *Stats) AverageTurns() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.TotalTurns) / float64(s.Games)
}

// WinRate is the share of name's games that name won
func (s *Stats) WinRate(name string) float64 {
	played := s.GamesByPlayer[name]
	if played == 0 {
		return 0
	}
	return float64(s.WinsByPlayer[name]) / float64(played)
}

// MarshalZerologObject lets a Stats be embedded in a log line
func (s *Stats) MarshalZerologObject(e *zerolog.Event) {
	e.Int("games", s.Games).
		Int("top_wins", s.TopWins).
		Int("bottom_wins", s.BottomWins).
		Int("ties", s.Ties).
		Int("unfinished", s.Unfinished).
		Float64("avg_turns", s.AverageTurns()).
		Dur("total_duration", s.TotalDuration)

	names := make([]string, 0, len(s.GamesByPlayer))
	for name := range s.GamesByPlayer {
		names = append(names, name)
	}
	sort.Strings(names)
	wins := zerolog.Dict()
	for _, name := range names {
		wins.Int(name, s.WinsByPlayer[name])
	}
	e.Dict("wins", wins)
}
