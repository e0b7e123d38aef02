// Package solver computes optimal tic-tac-toe moves by exhaustive minimax.
//
// Game values are from X's point of view: +1 X wins, 0 draw, -1 O wins.
// X maximises, O minimises. Among equally good moves the earliest coordinate
// in declaration order is chosen.
package solver

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

const (
	ValueXWins = 1
	ValueDraw  = 0
	ValueOWins = -1
)

// Move is an optimal move together with the game value it leads to.
type Move struct {
	Coordinate entity.Coordinate `json:"coordinate"`
	Value      int               `json:"value"`
}

type Option func(*Solver)

// WithCache memoises board values. Results are identical with or without it.
func WithCache() Option {
	return func(s *Solver) {
		s.cache = newTranspositions()
	}
}

// Solver is safe for concurrent use.
type Solver struct {
	cache *transpositions
}

func New(opts ...Option) *Solver {
	solver := &Solver{}
	for _, opt := range opts {
		opt(solver)
	}

	return solver
}

var plain = New()

// BestMove returns the optimal coordinate for mover on board, without caching.
func BestMove(board entity.Board, mover entity.Position) (entity.Coordinate, error) {
	return plain.BestMove(board, mover)
}

// Value returns the game value of board with mover to play, without caching.
func Value(board entity.Board, mover entity.Position) (int, error) {
	return plain.Value(board, mover)
}

func (that *Solver) BestMove(board entity.Board, mover entity.Position) (entity.Coordinate, error) {
	move, err := that.Solve(board, mover)
	if err != nil {
		return entity.TopLeft, err
	}

	return move.Coordinate, nil
}

// Solve fails with ErrInvalidMover when mover is not a player and with
// ErrTerminalBoard when the game on board is already over.
func (that *Solver) Solve(board entity.Board, mover entity.Position) (Move, error) {
	if !mover.IsPlayer() {
		return Move{}, fmt.Errorf("%w: %q", apperror.ErrInvalidMover, mover)
	}

	if outcome := board.Outcome(); outcome.IsTerminal() {
		return Move{}, fmt.Errorf("%w: %s\n%s", apperror.ErrTerminalBoard, outcome, board)
	}

	best := Move{Value: worstValue(mover)}
	found := false

	for _, coordinate := range entity.AllCoordinates {
		if board.Get(coordinate) != entity.Unmarked {
			continue
		}

		score := that.value(board.Set(coordinate, mover), mover.Opponent())

		// equal scores keep the incumbent, so the earliest optimal move wins
		if !found || isBetter(mover, score, best.Value) {
			best = Move{Coordinate: coordinate, Value: score}
			found = true
		}
	}

	if !found {
		return Move{}, fmt.Errorf("%w: no unmarked coordinates", apperror.ErrTerminalBoard)
	}

	return best, nil
}

func (that *Solver) Value(board entity.Board, mover entity.Position) (int, error) {
	if !mover.IsPlayer() {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidMover, mover)
	}

	return that.value(board, mover), nil
}

// PrincipalVariation plays BestMove for both sides from board until the game ends.
func (that *Solver) PrincipalVariation(board entity.Board, mover entity.Position) ([]entity.Coordinate, error) {
	if !mover.IsPlayer() {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidMover, mover)
	}

	line := make([]entity.Coordinate, 0, entity.CoordinateCount)
	for !board.Outcome().IsTerminal() {
		coordinate, err := that.BestMove(board, mover)
		if err != nil {
			return nil, fmt.Errorf("failed to find move %d: %w", len(line)+1, err)
		}

		line = append(line, coordinate)
		board = board.Set(coordinate, mover)
		mover = mover.Opponent()
	}

	return line, nil
}

func (that *Solver) value(board entity.Board, mover entity.Position) int {
	switch board.Outcome() {
	case entity.XWins:
		return ValueXWins
	case entity.OWins:
		return ValueOWins
	case entity.Draw:
		return ValueDraw
	case entity.InProgress:
	}

	if that.cache != nil {
		if cached, ok := that.cache.get(board, mover); ok {
			return cached
		}
	}

	best := worstValue(mover)
	for _, coordinate := range entity.AllCoordinates {
		if board.Get(coordinate) != entity.Unmarked {
			continue
		}

		if score := that.value(board.Set(coordinate, mover), mover.Opponent()); isBetter(mover, score, best) {
			best = score
		}
	}

	if that.cache != nil {
		that.cache.put(board, mover, best)
	}

	return best
}

func worstValue(mover entity.Position) int {
	if mover == entity.PlayerX {
		return math.MinInt
	}

	return math.MaxInt
}

func isBetter(mover entity.Position, score, incumbent int) bool {
	if mover == entity.PlayerX {
		return score > incumbent
	}

	return score < incumbent
}
