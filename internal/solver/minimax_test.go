package solver

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/enumerator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.Unmarked
)

func TestBestMove(t *testing.T) {
	t.Run("Empty board picks the first of the equally drawn openings", func(t *testing.T) {
		// Given: the empty board with X to move
		var board entity.Board

		// When: asking for the best move
		move, err := BestMove(board, x)

		// Then: every opening draws, so the earliest coordinate is kept
		require.NoError(t, err)
		assert.Equal(t, entity.TopLeft, move)
	})

	t.Run("O blocks the open row", func(t *testing.T) {
		// Given: X holds top-left and top-center
		board := entity.Board{
			x, x, e,
			e, e, e,
			e, e, e,
		}

		// When: O moves
		move, err := BestMove(board, o)

		// Then: top-right is chosen
		require.NoError(t, err)
		assert.Equal(t, entity.TopRight, move)
	})

	t.Run("X completes a line when it can", func(t *testing.T) {
		board := entity.Board{
			x, x, e,
			o, o, e,
			e, e, e,
		}

		move, err := New().Solve(board, x)

		require.NoError(t, err)
		assert.Equal(t, Move{Coordinate: entity.TopRight, Value: ValueXWins}, move)
	})

	t.Run("O wins from the same board when it is O to move", func(t *testing.T) {
		board := entity.Board{
			x, x, e,
			o, o, e,
			e, e, e,
		}

		move, err := New().Solve(board, o)

		require.NoError(t, err)
		assert.Equal(t, ValueOWins, move.Value)
		assert.Equal(t, entity.TopRight, move.Coordinate)
	})

	t.Run("O answers a center opening in the corner", func(t *testing.T) {
		board := entity.Board{}.Set(entity.Center, x)

		move, err := BestMove(board, o)

		require.NoError(t, err)
		assert.Equal(t, entity.TopLeft, move)
	})

	t.Run("Is deterministic", func(t *testing.T) {
		board := entity.Board{
			x, o, e,
			e, x, e,
			e, e, e,
		}

		first, err := BestMove(board, o)
		require.NoError(t, err)
		second, err := BestMove(board, o)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("Fails on a full board", func(t *testing.T) {
		// Given: a drawn board with no unmarked coordinates
		board := entity.Board{
			x, o, x,
			x, o, o,
			o, x, x,
		}

		// When: asking for a move
		_, err := BestMove(board, x)

		// Then: the precondition violation is reported
		require.ErrorIs(t, err, apperror.ErrTerminalBoard)
	})

	t.Run("Fails on a won board with empty cells", func(t *testing.T) {
		board := entity.Board{
			x, x, x,
			o, o, e,
			e, e, e,
		}

		_, err := BestMove(board, o)

		require.ErrorIs(t, err, apperror.ErrTerminalBoard)
	})

	t.Run("Fails when mover is unmarked", func(t *testing.T) {
		_, err := BestMove(entity.Board{}, e)

		require.ErrorIs(t, err, apperror.ErrInvalidMover)
	})
}

func TestValue(t *testing.T) {
	t.Run("Empty board is a draw", func(t *testing.T) {
		value, err := New(WithCache()).Value(entity.Board{}, x)

		require.NoError(t, err)
		assert.Equal(t, ValueDraw, value)
	})

	t.Run("Terminal boards take their leaf value", func(t *testing.T) {
		won := entity.Board{
			o, o, o,
			x, x, e,
			e, e, x,
		}

		value, err := Value(won, x)

		require.NoError(t, err)
		assert.Equal(t, ValueOWins, value)
	})

	t.Run("Rejects unmarked mover", func(t *testing.T) {
		_, err := Value(entity.Board{}, e)

		require.ErrorIs(t, err, apperror.ErrInvalidMover)
	})
}

func TestSolver_PrincipalVariation(t *testing.T) {
	// Given: a cached solver
	s := New(WithCache())

	// When: both sides play the best move from the empty board
	line, err := s.PrincipalVariation(entity.Board{}, x)
	require.NoError(t, err)

	// Then: the game is a draw along a fixed line
	expected := []entity.Coordinate{
		entity.TopLeft, entity.Center, entity.TopCenter,
		entity.TopRight, entity.BottomLeft, entity.MiddleLeft,
		entity.MiddleRight, entity.BottomCenter, entity.BottomRight,
	}
	assert.Equal(t, expected, line)

	board := entity.Board{}
	mover := x
	for _, coordinate := range line {
		board = board.Set(coordinate, mover)
		mover = mover.Opponent()
	}
	assert.Equal(t, entity.Draw, board.Outcome())
}

func TestSolver_NeverLoses(t *testing.T) {
	s := New(WithCache())

	for _, solverSide := range []entity.Position{x, o} {
		// Given: the solver plays one side and the opponent tries every reply
		lost := playAllReplies(t, s, entity.Board{}, x, solverSide)

		// Then: no line of play ends in a win for the opponent
		assert.Zero(t, lost, "solver playing %s lost", solverSide)
	}
}

// playAllReplies counts the finished games the solver side loses when the
// opponent explores every legal move.
func playAllReplies(t *testing.T, s *Solver, board entity.Board, mover, solverSide entity.Position) int {
	t.Helper()

	outcome := board.Outcome()
	if outcome.IsTerminal() {
		if outcome.Winner() == solverSide.Opponent() {
			return 1
		}
		return 0
	}

	if mover == solverSide {
		coordinate, err := s.BestMove(board, mover)
		require.NoError(t, err)

		return playAllReplies(t, s, board.Set(coordinate, mover), mover.Opponent(), solverSide)
	}

	lost := 0
	for _, coordinate := range board.EmptyCoordinates() {
		lost += playAllReplies(t, s, board.Set(coordinate, mover), mover.Opponent(), solverSide)
	}

	return lost
}

func TestSolver_CacheMatchesPlainSearch(t *testing.T) {
	// Given: a cached and an uncached solver
	cached := New(WithCache())
	uncached := New()

	for board := range enumerator.Ongoing() {
		if _, _, empty := board.Count(); empty > 6 {
			continue
		}

		for _, mover := range []entity.Position{x, o} {
			// When: solving the same board with both
			want, err := uncached.Solve(board, mover)
			require.NoError(t, err)
			got, err := cached.Solve(board, mover)
			require.NoError(t, err)

			// Then: the answers agree
			require.Equal(t, want, got, "board %s mover %s", board.Notation(), mover)
		}
	}

	assert.Positive(t, cached.cache.size())
}
