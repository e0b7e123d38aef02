// Package enumerator generates tic-tac-toe boards by brute force.
package enumerator

import (
	"iter"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

// Total is the number of raw position assignments, 3^9.
const Total = 19683

var variants = [...]entity.Position{entity.Unmarked, entity.PlayerO, entity.PlayerX}

// All yields every raw assignment of positions to coordinates as the Cartesian
// product of variants, with the last coordinate varying fastest. Each call
// starts from scratch and yields the same sequence.
func All() iter.Seq[entity.Board] {
	return func(yield func(entity.Board) bool) {
		var positions [entity.CoordinateCount]entity.Position

		for n := range Total {
			rest := n
			for i := entity.CoordinateCount - 1; i >= 0; i-- {
				positions[i] = variants[rest%len(variants)]
				rest /= len(variants)
			}

			board, err := entity.BoardFromPositions(positions[:]...)
			if err != nil {
				continue
			}

			if !yield(board) {
				return
			}
		}
	}
}

// Valid yields the boards from All that pass Board.IsValid, in the same order.
func Valid() iter.Seq[entity.Board] {
	return func(yield func(entity.Board) bool) {
		for board := range All() {
			if !board.IsValid() {
				continue
			}

			if !yield(board) {
				return
			}
		}
	}
}

// Ongoing yields the valid boards that still have a legal move.
func Ongoing() iter.Seq[entity.Board] {
	return func(yield func(entity.Board) bool) {
		for board := range Valid() {
			if board.Outcome().IsTerminal() {
				continue
			}

			if !yield(board) {
				return
			}
		}
	}
}
