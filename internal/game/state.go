package game

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/DukeEngine/internal/game/bag"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/board"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/core"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/events"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/rules"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/tile"
)

// GameState owns everything about a game in progress: the board, each
// player's bag and discard pile, whose turn it is, a tile drawn but not yet
// placed, and the progress counter used to declare ties.
//
// A GameState is not safe for concurrent use. Search works on a Clone.
type GameState struct {
	board      *board.GameBoard
	pulledTile *tile.Tile
	current    tile.Owner
	bags       [2]*bag.TileBag
	discards   [2]*bag.DiscardBag
	progress   *rules.ProgressCounter
	turn       int

	gameID       string
	logger       zerolog.Logger
	publisher    events.Publisher
	winCondition *rules.WinConditionChecker
}

type stateOptions struct {
	bag          []*tile.Tile
	hasBag       bool
	tieThreshold int
	logger       zerolog.Logger
	publisher    events.Publisher
	gameID       string
}

// Option configures a GameState at construction
type Option func(*stateOptions)

// WithBag gives each player its own copy of tiles as the starting bag
func WithBag(tiles []*tile.Tile) Option {
	return func(o *stateOptions) {
		o.bag = tiles
		o.hasBag = true
	}
}

// WithTieThreshold sets how many moves without progress end the game in a tie
func WithTieThreshold(n int) Option {
	return func(o *stateOptions) { o.tieThreshold = n }
}

// WithLogger sets the logger used for move tracing
func WithLogger(logger zerolog.Logger) Option {
	return func(o *stateOptions) { o.logger = logger }
}

// WithEventBus publishes tile events for every move and undo
func WithEventBus(p events.Publisher) Option {
	return func(o *stateOptions) { o.publisher = p }
}

// WithGameID tags published events and log lines with the match ID
func WithGameID(id string) Option {
	return func(o *stateOptions) { o.gameID = id }
}

// NewGameState starts a standard game: both dukes and their footmen on the
// board, each player drawing from its own copy of baseBag, TopPlayer to move.
func NewGameState(baseBag []*tile.Tile, top, bottom board.PlayerSetup, opts ...Option) *GameState {
	return FromBoard(board.NewStandardBoard(top, bottom), tile.TopPlayer, append([]Option{WithBag(baseBag)}, opts...)...)
}

// FromBoard wraps an arbitrary position. Bags start empty unless WithBag is given.
func FromBoard(b *board.GameBoard, current tile.Owner, opts ...Option) *GameState {
	o := stateOptions{
		tieThreshold: rules.DefaultTieThreshold,
		logger:       log.Logger,
	}
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger.With().Str("component", "GameState").Logger()
	if o.gameID != "" {
		logger = logger.With().Str("game_id", o.gameID).Logger()
	}

	gs := &GameState{
		board:        b,
		current:      current,
		progress:     rules.NewProgressCounter(o.tieThreshold),
		gameID:       o.gameID,
		logger:       logger,
		publisher:    o.publisher,
		winCondition: rules.NewWinConditionChecker(logger),
	}
	for _, owner := range tile.Owners {
		var tiles []*tile.Tile
		if o.hasBag {
			tiles = o.bag
		}
		gs.bags[owner] = bag.NewTileBag(tiles)
		gs.discards[owner] = bag.NewDiscardBag()
	}
	return gs
}

// CurrentPlayerTurn is the player to move
func (gs *GameState) CurrentPlayerTurn() tile.Owner { return gs.current }

// Board exposes the board for rendering and evaluation. Callers must not mutate it.
func (gs *GameState) Board() *board.GameBoard { return gs.board }

// PulledTile is the tile drawn by the current player and awaiting placement
func (gs *GameState) PulledTile() (*tile.Tile, bool) { return gs.pulledTile, gs.pulledTile != nil }

// Bag is owner's draw pile
func (gs *GameState) Bag(owner tile.Owner) *bag.TileBag { return gs.bags[owner] }

// Discard holds owner's captured tiles, most recent last
func (gs *GameState) Discard(owner tile.Owner) *bag.DiscardBag { return gs.discards[owner] }

// Turn counts completed moves
func (gs *GameState) Turn() int { return gs.turn }

func (gs *GameState) GameID() string { return gs.gameID }

// MovesWithoutProgress counts moves since the last capture or placement
func (gs *GameState) MovesWithoutProgress() int { return gs.progress.Current() }

// TieThreshold is the MovesWithoutProgress count that ends the game in a tie
func (gs *GameState) TieThreshold() int { return gs.progress.Threshold() }

// GetLegalMoves lists the guard-checked destinations of the tile at src
func (gs *GameState) GetLegalMoves(src core.Coordinate) []board.LegalMove {
	if !gs.board.InBounds(src) || gs.board.IsEmpty(src) {
		return nil
	}
	return gs.board.LegalMoves(src)
}

// DukeCoordinate locates owner's duke, false once it has been captured
func (gs *GameState) DukeCoordinate(owner tile.Owner) (core.Coordinate, bool) {
	return gs.board.DukeCoordinate(owner)
}

// TilesFor lists owner's tiles in row-major order
func (gs *GameState) TilesFor(owner tile.Owner) []core.Entry[tile.PlacedTile] {
	return gs.board.TilesFor(owner)
}

// IsGuard reports whether an enemy tile can reach owner's duke
func (gs *GameState) IsGuard(owner tile.Owner) bool { return gs.board.IsGuard(owner) }

// CanPullTileFromBag explains whether the current player may draw a tile now
func (gs *GameState) CanPullTileFromBag() CanPullNewTileResult {
	if gs.bags[gs.current].IsEmpty() {
		return PullEmptyBag
	}
	if !gs.board.CanPlaceNearDuke(gs.current) {
		return PullNoSpaceNearDuke
	}
	for _, offset := range board.AllDukeOffsets {
		if gs.board.IsValidPlacement(gs.current, offset) {
			return PullOK
		}
	}
	return PullDukeAlwaysInGuard
}

// CanPullTileFromBagBool is CanPullTileFromBag() == PullOK, also requiring
// that no tile is already waiting to be placed
func (gs *GameState) CanPullTileFromBagBool() bool {
	return gs.pulledTile == nil && gs.CanPullTileFromBag() == PullOK
}

// IsValidPlacement reports whether the current player may place a tile at offset
func (gs *GameState) IsValidPlacement(offset board.DukeOffset) bool {
	return gs.board.IsValidPlacement(gs.current, offset)
}

// AllValidGameMovesFor lists every legal move of owner: tile actions in board
// order, then one placement per valid duke offset when the bag is not empty.
// A pending pulled tile is not considered.
func (gs *GameState) AllValidGameMovesFor(owner tile.Owner) []PossibleMove {
	var moves []PossibleMove
	for _, e := range gs.board.TilesFor(owner) {
		for _, lm := range gs.board.LegalMoves(e.Coordinate) {
			m := TileActionMove{Src: e.Coordinate, Dst: lm.Dst}
			if victim, ok := gs.board.Get(lm.Dst); ok {
				m.Capturing = &victim
			}
			moves = append(moves, m)
		}
	}
	if !gs.bags[owner].IsEmpty() {
		for _, offset := range board.AllDukeOffsets {
			if gs.board.IsValidPlacement(owner, offset) {
				moves = append(moves, PlacementMove{Offset: offset, Owner: owner})
			}
		}
	}
	return moves
}

// AllValidGameMovesForCurrentPlayer is AllValidGameMovesFor the player to move
func (gs *GameState) AllValidGameMovesForCurrentPlayer() []PossibleMove {
	return gs.AllValidGameMovesFor(gs.current)
}

// HasAnyValidMove reports whether owner has at least one legal move. It
// stops at the first one found.
func (gs *GameState) HasAnyValidMove(owner tile.Owner) bool {
	if gs.board.HasAnyLegalMove(owner) {
		return true
	}
	if gs.bags[owner].IsEmpty() {
		return false
	}
	for _, offset := range board.AllDukeOffsets {
		if gs.board.IsValidPlacement(owner, offset) {
			return true
		}
	}
	return false
}

// CanMakeAMove reports whether MakeAMove would accept move
func (gs *GameState) CanMakeAMove(move GameMove) bool {
	return gs.checkMove(move) == nil
}

func (gs *GameState) checkMove(move GameMove) error {
	switch m := move.(type) {
	case PullAndPlay:
		if gs.pulledTile != nil {
			return core.ErrAwaitingPlacement
		}
		if err := gs.CanPullTileFromBag().Err(); err != nil {
			return err
		}
		if !gs.IsValidPlacement(m.Offset) {
			return core.ErrInvalidPlacement
		}
	case PlaceNewTile:
		if gs.pulledTile == nil {
			return core.ErrNoPulledTile
		}
		if !gs.IsValidPlacement(m.Offset) {
			return core.ErrInvalidPlacement
		}
	case ApplyNonCommandTileAction:
		if gs.pulledTile != nil {
			return core.ErrAwaitingPlacement
		}
		if !gs.board.InBounds(m.Src) || !gs.board.InBounds(m.Dst) {
			return core.ErrOutOfBounds
		}
		mover, ok := gs.board.Get(m.Src)
		if !ok {
			return core.ErrEmptySource
		}
		if mover.Owner.DifferentTeam(gs.current) {
			return core.ErrNotOwned
		}
		if !gs.board.CanMove(m.Src, m.Dst) {
			return core.ErrIllegalMove
		}
	default:
		return fmt.Errorf("unknown game move %T", move)
	}
	return nil
}

func (gs *GameState) IsTie() bool { return gs.progress.IsTie() }

// GameResult scores the position: a tie once the progress counter reaches
// its threshold, a win for the other player when the player to move is
// stuck, otherwise ongoing
func (gs *GameState) GameResult() rules.GameResult {
	return gs.winCondition.Result(gs)
}

// IsOver reports whether GameResult is a win or a tie
func (gs *GameState) IsOver() bool { return gs.GameResult().IsOver() }

// PullTileFromBag draws a random tile for the current player. The tile must
// then be placed with PlaceNewTile.
func (gs *GameState) PullTileFromBag(rng *rand.Rand) *tile.Tile {
	core.Assertf(gs.pulledTile == nil, "%s already pulled %s", gs.current, gs.pulledTile)
	result := gs.CanPullTileFromBag()
	core.Assertf(result == PullOK, "%s cannot pull a tile: %s", gs.current, result)

	t, ok := gs.bags[gs.current].Pull(rng)
	core.Assertf(ok, "bag of %s is empty", gs.current)
	gs.pulledTile = t

	gs.logger.Trace().Stringer("player", gs.current).Str("tile", t.Name()).Msg("Tile pulled")
	gs.publish(events.NewTilePulledEvent(gs.gameID, gs.current, gs.turn, t.Name()))
	return t
}

// MakeAMove applies move for the current player. The move must be legal:
// an illegal move is a caller bug and panics. Use TryMakeAMove for
// unvalidated input.
func (gs *GameState) MakeAMove(move GameMove, rng *rand.Rand) {
	switch m := move.(type) {
	case PullAndPlay:
		core.Assertf(gs.pulledTile == nil, "%s: %s awaits placement", m, gs.pulledTile)
		gs.PullTileFromBag(rng)
		gs.MakeAMove(PlaceNewTile(m), rng)
	case PlaceNewTile:
		core.Assertf(gs.pulledTile != nil, "%s: no pulled tile", m)
		core.Assertf(gs.IsValidPlacement(m.Offset), "%s: invalid placement for %s", m, gs.current)
		placed := gs.pulledTile
		gs.board.MakeAMove(board.PlaceNewTile{Offset: m.Offset, Tile: placed, Owner: gs.current})
		gs.pulledTile = nil
		gs.progress.Push()

		at, _ := gs.board.PlacementCoordinate(gs.current, m.Offset)
		gs.logger.Trace().Stringer("player", gs.current).Str("tile", placed.Name()).Stringer("at", at).Msg("Tile placed")
		gs.publish(events.NewTilePlacedEvent(gs.gameID, gs.current, gs.turn, placed.Name(), at))
		gs.advance()
	case ApplyNonCommandTileAction:
		core.Assertf(gs.pulledTile == nil, "%s: %s awaits placement", m, gs.pulledTile)
		mover, ok := gs.board.Get(m.Src)
		core.Assertf(ok, "%s: no tile at %s", m, m.Src)
		core.Assertf(mover.Owner == gs.current, "%s: %s does not own %s", m, gs.current, mover)
		core.Assertf(gs.board.CanMove(m.Src, m.Dst), "%s: illegal move for %s", m, mover)

		strike := gs.board.CanApply(m.Src, m.Dst) == board.Strike
		captured := gs.board.MakeAMove(board.ApplyNonCommandTileAction{Src: m.Src, Dst: m.Dst})
		if captured != nil {
			gs.discards[captured.Owner].Add(captured.Tile)
			gs.progress.Push()
		} else {
			gs.progress.Increment()
		}
		core.Assertf(!gs.board.IsGuard(gs.current), "%s left %s in guard", m, gs.current)

		gs.logger.Trace().Stringer("player", gs.current).Str("move", m.String()).Bool("capture", captured != nil).Msg("Tile moved")
		gs.publish(events.NewTileMovedEvent(gs.gameID, gs.current, gs.turn, mover.Tile.Name(), m.Src, m.Dst, strike))
		if captured != nil {
			gs.publish(events.NewTileCapturedEvent(gs.gameID, gs.current, gs.turn, captured.Tile.Name(), captured.Owner, m.Dst))
		}
		gs.advance()
	default:
		panic(fmt.Sprintf("unknown game move %T", move))
	}
}

// TryMakeAMove validates move and applies it, returning a wrapped sentinel
// error instead of panicking when the move is not allowed
func (gs *GameState) TryMakeAMove(move GameMove, rng *rand.Rand) error {
	if gs.IsOver() {
		return core.WrapMoveError(gs.current, move, core.ErrGameOver)
	}
	if err := gs.checkMove(move); err != nil {
		return core.WrapMoveError(gs.current, move, err)
	}
	gs.MakeAMove(move, rng)
	return nil
}

// Undo takes back the last move, which must be the one described by move
func (gs *GameState) Undo(move PossibleMove) {
	core.Assertf(gs.pulledTile == nil, "undo %s while %s awaits placement", move, gs.pulledTile)
	core.Assertf(gs.turn > 0, "undo %s with no move played", move)
	gs.current = gs.current.NextPlayer()
	gs.turn--

	switch m := move.(type) {
	case PlacementMove:
		core.Assertf(m.Owner == gs.current, "undo %s on the turn of %s", m, gs.current)
		gs.progress.Undo(true)
		placed := gs.board.Undo(m.ToUndoMove())
		core.Assertf(placed != nil && placed.Owner == m.Owner, "undo %s removed %v", m, placed)
		gs.bags[m.Owner].Push(placed.Tile)
	case TileActionMove:
		gs.progress.Undo(m.IsCapture())
		if m.IsCapture() {
			t, ok := gs.discards[m.Capturing.Owner].RemoveLast()
			core.Assertf(ok && t == m.Capturing.Tile, "undo %s found %v on top of the discard of %s", m, t, m.Capturing.Owner)
		}
		gs.board.Undo(m.ToUndoMove())
	default:
		panic(fmt.Sprintf("unknown possible move %T", move))
	}

	gs.logger.Trace().Stringer("player", gs.current).Str("move", move.String()).Msg("Move undone")
	gs.publish(events.NewMoveUndoneEvent(gs.gameID, gs.current, gs.turn, move.String()))
}

// Clone deep-copies the game. The copy shares tile definitions and the
// logger but publishes no events.
func (gs *GameState) Clone() *GameState {
	c := &GameState{
		board:        gs.board.Clone(),
		pulledTile:   gs.pulledTile,
		current:      gs.current,
		progress:     gs.progress.Clone(),
		turn:         gs.turn,
		gameID:       gs.gameID,
		logger:       gs.logger,
		winCondition: gs.winCondition,
	}
	for _, owner := range tile.Owners {
		c.bags[owner] = gs.bags[owner].Clone()
		c.discards[owner] = gs.discards[owner].Clone()
	}
	return c
}

// Equal compares game positions, ignoring the logger and event wiring
func (gs *GameState) Equal(other *GameState) bool {
	if gs.current != other.current || gs.pulledTile != other.pulledTile || gs.turn != other.turn {
		return false
	}
	if !gs.board.Equal(other.board) || !gs.progress.Equal(other.progress) {
		return false
	}
	for _, owner := range tile.Owners {
		if !gs.bags[owner].Equal(other.bags[owner]) || !gs.discards[owner].Equal(other.discards[owner]) {
			return false
		}
	}
	return true
}

func (gs *GameState) String() string {
	return fmt.Sprintf("turn %d, %s to move\n%s", gs.turn, gs.current, gs.board)
}

func (gs *GameState) advance() {
	gs.current = gs.current.NextPlayer()
	gs.turn++
}

func (gs *GameState) publish(e events.Event) {
	if gs.publisher != nil {
		gs.publisher.Publish(e)
	}
}
